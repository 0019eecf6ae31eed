// Package deezer provides a client for the Deezer public search API.
package deezer

// Category is a kind of search result with its own search endpoint.
type Category string

const (
	CategoryTrack    Category = "track"
	CategoryAlbum    Category = "album"
	CategoryArtist   Category = "artist"
	CategoryPlaylist Category = "playlist"
)

// Valid reports whether c is one of the four scoped search categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryTrack, CategoryAlbum, CategoryArtist, CategoryPlaylist:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// Item is a single search result.
// The concrete type is always one of Track, Album, Artist or Playlist.
type Item interface {
	Category() Category
	// WebLink returns the deezer.com page of the item, or "" when the
	// response carried none.
	WebLink() string
	isItem()
}

// Artist is an artist search result.
type Artist struct {
	ID   int64
	Name string
	Link string
	Fans int // nb_fan
}

// Album is an album search result.
type Album struct {
	ID         int64
	Title      string
	ArtistName string
	Link       string
	TrackCount int // nb_tracks
}

// Playlist is a playlist search result.
type Playlist struct {
	ID          int64
	Title       string
	CreatorName string
	Link        string
	TrackCount  int // nb_tracks
}

// Track is a track search result.
type Track struct {
	ID         int64
	Title      string
	ArtistName string
	AlbumTitle string
	Link       string
	Duration   int // seconds
}

func (Artist) Category() Category   { return CategoryArtist }
func (Album) Category() Category    { return CategoryAlbum }
func (Playlist) Category() Category { return CategoryPlaylist }
func (Track) Category() Category    { return CategoryTrack }

func (a Artist) WebLink() string   { return a.Link }
func (a Album) WebLink() string    { return a.Link }
func (p Playlist) WebLink() string { return p.Link }
func (t Track) WebLink() string    { return t.Link }

func (Artist) isItem()   {}
func (Album) isItem()    {}
func (Playlist) isItem() {}
func (Track) isItem()    {}

// ItemURL returns the web link of item, or "" if it has none.
func ItemURL(item Item) string {
	if item == nil {
		return ""
	}
	return item.WebLink()
}

// searchResponse is the raw response of every /search endpoint.
type searchResponse struct {
	Data  []rawItem `json:"data"`
	Total int       `json:"total"`
	Error *apiError `json:"error"`
}

// apiError is the error object Deezer embeds in otherwise successful responses.
type apiError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// rawItem holds the union of the fields used from track, album, artist and
// playlist objects.
type rawItem struct {
	ID       int64      `json:"id"`
	Type     string     `json:"type"`
	Title    string     `json:"title"`
	Name     string     `json:"name"`
	Link     string     `json:"link"`
	Duration int        `json:"duration"`
	NbFan    int        `json:"nb_fan"`
	NbTracks int        `json:"nb_tracks"`
	Artist   *namedRef  `json:"artist"`
	User     *namedRef  `json:"user"`
	Album    *titledRef `json:"album"`
}

type namedRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type titledRef struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}
