// Package search ranks catalog results by how closely they match a query.
package search

import (
	"sort"

	"github.com/llehouerou/deezer-flow/internal/deezer"
)

// Scored pairs a search result with its relevance score (0-100).
type Scored struct {
	Item  deezer.Item
	Score int
}

// CompareString returns the text a result is scored against:
// the artist name, or the title followed by the artist or creator name.
func CompareString(item deezer.Item) string {
	switch it := item.(type) {
	case deezer.Artist:
		return it.Name
	case deezer.Album:
		return it.Title + " " + it.ArtistName
	case deezer.Playlist:
		return it.Title + " " + it.CreatorName
	case deezer.Track:
		return it.Title + " " + it.ArtistName
	}
	return ""
}

// Rank scores items against term and returns them best first.
// Items with equal scores keep their original order.
func Rank(items []deezer.Item, term string) []Scored {
	query := tokenSet(process(term))

	scored := make([]Scored, len(items))
	for i, item := range items {
		scored[i] = Scored{
			Item:  item,
			Score: tokenSetRatio(query, tokenSet(process(CompareString(item)))),
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}

// Top returns at most n of the best ranked items.
func Top(scored []Scored, n int) []Scored {
	if n >= 0 && len(scored) > n {
		return scored[:n]
	}
	return scored
}
