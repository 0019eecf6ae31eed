package launcher

import (
	"github.com/llehouerou/deezer-flow/internal/deezer"
)

// Format turns a search result into a launcher entry.
// Missing names are replaced by "Unknown ..." placeholders. Results without a
// link get no action and a subtitle saying so.
func Format(item deezer.Item, icon string) Entry {
	e := Entry{
		Title:   "Unknown Item",
		IcoPath: icon,
	}

	switch it := item.(type) {
	case deezer.Artist:
		e.Title = orUnknown(it.Name, "Artist")
		e.SubTitle = "Artist"
	case deezer.Album:
		e.Title = orUnknown(it.Title, "Album") + " by " + orUnknown(it.ArtistName, "Artist")
		e.SubTitle = "Album"
	case deezer.Playlist:
		e.Title = orUnknown(it.Title, "Playlist") + " by " + orUnknown(it.CreatorName, "Creator")
		e.SubTitle = "Playlist"
	case deezer.Track:
		e.Title = orUnknown(it.Title, "Track") + " by " + orUnknown(it.ArtistName, "Artist")
		e.SubTitle = "Track from " + orUnknown(it.AlbumTitle, "Album")
	default:
		e.SubTitle = "Unknown Type"
	}

	if url := deezer.ItemURL(item); url != "" {
		e.Action = OpenURL(url)
	} else {
		e.SubTitle += NoURLSuffix
	}

	return e
}

func orUnknown(value, role string) string {
	if value == "" {
		return "Unknown " + role
	}
	return value
}
