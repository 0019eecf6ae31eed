// Package icons provides the glyphs shown in front of result lines.
package icons

import "github.com/llehouerou/deezer-flow/internal/deezer"

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Set holds the icon characters for one style.
type Set struct {
	Artist   string
	Album    string
	Playlist string
	Track    string
	Control  string // media control entries
	Info     string // help and notice entries
}

var (
	nerdIcons = Set{
		Artist:   "\uf007 ", // nf-fa-user
		Album:    "󰀥 ",      // nf-md-album
		Playlist: "󰲸 ",      // nf-md-playlist_music
		Track:    "\uf001 ", // nf-fa-music
		Control:  "󰐎 ",      // nf-md-play_pause
		Info:     "\uf05a ", // nf-fa-info_circle
	}

	unicodeIcons = Set{
		Artist:   "👤 ",
		Album:    "💿 ",
		Playlist: "📋 ",
		Track:    "🎵 ",
		Control:  "⏯ ",
		Info:     "ℹ ",
	}

	noneIcons = Set{}
)

// For returns the icon set for style. Unknown styles get no icons.
func For(style string) Set {
	switch Style(style) {
	case StyleNerd:
		return nerdIcons
	case StyleUnicode:
		return unicodeIcons
	case StyleNone:
		return noneIcons
	default:
		return noneIcons
	}
}

// Category returns the icon of a catalog category.
func (s Set) Category(c deezer.Category) string {
	switch c {
	case deezer.CategoryArtist:
		return s.Artist
	case deezer.CategoryAlbum:
		return s.Album
	case deezer.CategoryPlaylist:
		return s.Playlist
	case deezer.CategoryTrack:
		return s.Track
	}
	return ""
}

// Format prefixes name with the icon of category c.
// An empty category marks a non-catalog entry; control entries get the
// control icon, others the info icon.
func (s Set) Format(c deezer.Category, control bool, name string) string {
	switch {
	case c != "":
		return s.Category(c) + name
	case control:
		return s.Control + name
	default:
		return s.Info + name
	}
}
