// Package intent turns raw launcher input into a command verb, a search term
// and the catalog categories to query.
package intent

import (
	"strings"
	"unicode"

	"github.com/llehouerou/deezer-flow/internal/deezer"
)

// Verb is the command keyword at the start of a query.
type Verb int

const (
	VerbNone   Verb = iota // empty input
	VerbSearch             // no recognized keyword, implicit general search
	VerbPlay
	VerbArtist
	VerbAlbum
	VerbPlaylist
	VerbStop
	VerbPause
)

var verbs = map[string]Verb{
	"play":     VerbPlay,
	"artist":   VerbArtist,
	"album":    VerbAlbum,
	"playlist": VerbPlaylist,
	"stop":     VerbStop,
	"pause":    VerbPause,
}

func (v Verb) String() string {
	switch v {
	case VerbNone:
		return "none"
	case VerbSearch:
		return "search"
	case VerbPlay:
		return "play"
	case VerbArtist:
		return "artist"
	case VerbAlbum:
		return "album"
	case VerbPlaylist:
		return "playlist"
	case VerbStop:
		return "stop"
	case VerbPause:
		return "pause"
	}
	return "unknown"
}

// Control is the media signal a control intent triggers.
type Control int

const (
	ControlNone Control = iota
	ControlPlayPause
	ControlStop
)

// Intent is the parsed form of one query.
type Intent struct {
	Verb Verb
	Term string
	// Categories lists the categories to search in selection priority order.
	// Callers decide traversal order.
	Categories []deezer.Category
	Control    Control
}

// IsControl reports whether the intent sends a media signal instead of searching.
func (i Intent) IsControl() bool {
	return i.Control != ControlNone
}

// NeedsTerm reports whether a search verb was given without a search term.
func (i Intent) NeedsTerm() bool {
	switch i.Verb {
	case VerbArtist, VerbAlbum, VerbPlaylist:
		return i.Term == ""
	}
	return false
}

// AllCategories is the category set of an implicit general search.
var AllCategories = []deezer.Category{
	deezer.CategoryTrack,
	deezer.CategoryArtist,
	deezer.CategoryAlbum,
	deezer.CategoryPlaylist,
}

// playCategories favors tracks when searching with "play <term>".
var playCategories = []deezer.Category{
	deezer.CategoryTrack,
	deezer.CategoryAlbum,
	deezer.CategoryArtist,
}

// Parse interprets raw input.
//
// The first whitespace-separated word is matched case-insensitively against
// the known verbs. Input that does not start with a verb is searched as a
// whole in every category. Bare "play" and "pause" both toggle playback.
func Parse(raw string) Intent {
	input := strings.TrimSpace(raw)
	if input == "" {
		return Intent{Verb: VerbNone}
	}

	head, rest := splitFirst(input)
	verb, ok := verbs[strings.ToLower(head)]
	if !ok {
		return Intent{
			Verb:       VerbSearch,
			Term:       input,
			Categories: clone(AllCategories),
		}
	}

	switch verb {
	case VerbPlay:
		if rest == "" {
			return Intent{Verb: VerbPlay, Control: ControlPlayPause}
		}
		return Intent{Verb: VerbPlay, Term: rest, Categories: clone(playCategories)}
	case VerbPause:
		return Intent{Verb: VerbPause, Control: ControlPlayPause}
	case VerbStop:
		return Intent{Verb: VerbStop, Control: ControlStop}
	case VerbArtist, VerbAlbum, VerbPlaylist:
		if rest == "" {
			return Intent{Verb: verb}
		}
		return Intent{Verb: verb, Term: rest, Categories: []deezer.Category{deezer.Category(verb.String())}}
	}

	return Intent{Verb: VerbNone}
}

// splitFirst splits s on its first run of whitespace.
// s must already be trimmed.
func splitFirst(s string) (head, rest string) {
	idx := strings.IndexFunc(s, unicode.IsSpace)
	if idx < 0 {
		return s, ""
	}
	return s[:idx], strings.TrimSpace(s[idx:])
}

func clone(cats []deezer.Category) []deezer.Category {
	out := make([]deezer.Category, len(cats))
	copy(out, cats)
	return out
}
