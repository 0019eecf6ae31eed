package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/deezer-flow/internal/deezer"
)

func TestTokenSetRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"identical", "metallica", "metallica", 100},
		{"case insensitive", "metallica", "METALLICA", 100},
		{"order insensitive", "master of puppets", "puppets of master", 100},
		{"duplicates ignored", "fuzzy was a bear", "fuzzy fuzzy was a bear", 100},
		{"query subset of target", "metallica", "metallica tribute band", 100},
		{"target subset of query", "metallica live in paris", "metallica", 100},
		{"partial overlap", "new york mets", "new york yankees", 76},
		{"no overlap", "abc", "xyz", 0},
		{"empty query", "", "metallica", 0},
		{"empty target", "metallica", "", 0},
		{"punctuation only", "!!!", "metallica", 0},
		{"punctuation splits words", "ac dc", "AC/DC", 100},
		{"diacritics folded", "beyonce", "Beyoncé", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TokenSetRatio(tt.a, tt.b))
		})
	}
}

func TestTokenSetRatio_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"new york mets", "new york yankees"},
		{"master of puppets", "master of puppets remastered metallica"},
		{"ride the lightning", "lightning bolt"},
	}
	for _, p := range pairs {
		assert.Equal(t, TokenSetRatio(p[0], p[1]), TokenSetRatio(p[1], p[0]), "%q vs %q", p[0], p[1])
	}
}

func TestTokenSetRatio_Range(t *testing.T) {
	inputs := []string{"", "a", "metallica", "master of puppets", "Ωmega", "123 456", "the the the"}
	for _, a := range inputs {
		for _, b := range inputs {
			score := TokenSetRatio(a, b)
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 100)
		}
	}
}

func TestRatio(t *testing.T) {
	assert.InDelta(t, 100.0, ratio("abc", "abc"), 0.001)
	assert.InDelta(t, 0.0, ratio("", "abc"), 0.001)
	assert.InDelta(t, 0.0, ratio("abc", "xyz"), 0.001)
	// LCS("abcd", "acd") = 3 -> 2*3/7
	assert.InDelta(t, 600.0/7.0, ratio("abcd", "acd"), 0.001)
}

func TestProcess(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Hello", "hello"},
		{"  Multiple   Spaces  ", "multiple   spaces"},
		{"AC/DC", "ac dc"},
		{"Guns N' Roses", "guns n  roses"},
		{"Motörhead", "motorhead"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, process(tt.input))
		})
	}
}

func TestCompareString(t *testing.T) {
	assert.Equal(t, "Metallica", CompareString(deezer.Artist{Name: "Metallica"}))
	assert.Equal(t, "Master of Puppets Metallica",
		CompareString(deezer.Album{Title: "Master of Puppets", ArtistName: "Metallica"}))
	assert.Equal(t, "Thrash dj", CompareString(deezer.Playlist{Title: "Thrash", CreatorName: "dj"}))
	assert.Equal(t, "One Metallica",
		CompareString(deezer.Track{Title: "One", ArtistName: "Metallica", AlbumTitle: "Justice"}))
	assert.Empty(t, CompareString(nil))
}

func TestRank_SortsBestFirst(t *testing.T) {
	items := []deezer.Item{
		deezer.Artist{ID: 1, Name: "Apocalyptica"},
		deezer.Artist{ID: 2, Name: "Metallica Tribute"},
		deezer.Artist{ID: 3, Name: "Metallica"},
	}

	ranked := Rank(items, "Metallica")

	require.Len(t, ranked, 3)
	assert.Equal(t, int64(2), ranked[0].Item.(deezer.Artist).ID)
	assert.Equal(t, int64(3), ranked[1].Item.(deezer.Artist).ID)
	assert.Equal(t, int64(1), ranked[2].Item.(deezer.Artist).ID)
	assert.Equal(t, 100, ranked[0].Score)
	assert.Equal(t, 100, ranked[1].Score)
	assert.Less(t, ranked[2].Score, 100)
}

func TestRank_StableForEqualScores(t *testing.T) {
	items := make([]deezer.Item, 0, 6)
	for i := range 6 {
		items = append(items, deezer.Track{ID: int64(i), Title: "Same Title", ArtistName: "Same Artist"})
	}

	ranked := Rank(items, "unrelated query")

	for i, s := range ranked {
		assert.Equal(t, int64(i), s.Item.(deezer.Track).ID)
	}
}

func TestRank_NonIncreasing(t *testing.T) {
	items := []deezer.Item{
		deezer.Track{Title: "Nothing Else Matters", ArtistName: "Metallica"},
		deezer.Track{Title: "Master of Puppets", ArtistName: "Metallica"},
		deezer.Track{Title: "Puppets", ArtistName: "Someone"},
		deezer.Track{Title: "Master", ArtistName: "Other"},
		deezer.Track{Title: "", ArtistName: ""},
		deezer.Track{Title: "Master of Puppets (Remastered)", ArtistName: "Metallica"},
	}

	ranked := Rank(items, "master of puppets")

	require.Len(t, ranked, len(items))
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
}

func TestRank_Empty(t *testing.T) {
	assert.Empty(t, Rank(nil, "anything"))
}

func TestTop(t *testing.T) {
	scored := []Scored{{Score: 90}, {Score: 80}, {Score: 70}, {Score: 60}}

	assert.Len(t, Top(scored, 3), 3)
	assert.Len(t, Top(scored, 10), 4)
	assert.Empty(t, Top(scored, 0))
	assert.Len(t, Top(scored, -1), 4)
}
