package plugin

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/quarckster/go-mpris-server/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/deezer-flow/internal/deezer"
	"github.com/llehouerou/deezer-flow/internal/launcher"
	"github.com/llehouerou/deezer-flow/internal/mediactl"
)

type searchCall struct {
	term     string
	category deezer.Category
}

// fakeSearcher returns canned items per category and records calls.
type fakeSearcher struct {
	mu    sync.Mutex
	items map[deezer.Category][]deezer.Item
	errs  map[deezer.Category]error
	calls []searchCall
}

func (f *fakeSearcher) Search(_ context.Context, term string, cat deezer.Category) ([]deezer.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, searchCall{term: term, category: cat})
	if err := f.errs[cat]; err != nil {
		return nil, err
	}
	return f.items[cat], nil
}

func (f *fakeSearcher) categories() []deezer.Category {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]deezer.Category, len(f.calls))
	for i, c := range f.calls {
		out[i] = c.category
	}
	return out
}

type fakeMedia struct {
	playPause int
	stop      int
	err       error
	status    types.PlaybackStatus
}

func (m *fakeMedia) PlayPause(context.Context) error { m.playPause++; return m.err }
func (m *fakeMedia) Stop(context.Context) error      { m.stop++; return m.err }
func (m *fakeMedia) Status(context.Context) (types.PlaybackStatus, error) {
	return m.status, m.err
}

type fakeOpener struct {
	opened []string
	err    error
}

func (o *fakeOpener) Open(_ context.Context, link string) error {
	o.opened = append(o.opened, link)
	return o.err
}

func metallicaCatalog() map[deezer.Category][]deezer.Item {
	return map[deezer.Category][]deezer.Item{
		deezer.CategoryArtist: {
			deezer.Artist{ID: 1, Name: "Metalica Tribute Band", Link: "https://www.deezer.com/artist/1"},
			deezer.Artist{ID: 2, Name: "Metallica", Link: "https://www.deezer.com/artist/2"},
			deezer.Artist{ID: 3, Name: "Apocalyptica", Link: "https://www.deezer.com/artist/3"},
			deezer.Artist{ID: 4, Name: "Metal Church", Link: "https://www.deezer.com/artist/4"},
		},
		deezer.CategoryAlbum: {
			deezer.Album{ID: 10, Title: "Master of Puppets", ArtistName: "Metallica", Link: "https://www.deezer.com/album/10"},
		},
		deezer.CategoryPlaylist: {
			deezer.Playlist{ID: 20, Title: "Metallica Essentials", CreatorName: "Deezer Metal"},
		},
		deezer.CategoryTrack: {
			deezer.Track{ID: 30, Title: "One", ArtistName: "Metallica", AlbumTitle: "...And Justice for All", Link: "https://www.deezer.com/track/30"},
			deezer.Track{ID: 31, Title: "Enter Sandman", ArtistName: "Metallica", AlbumTitle: "Metallica", Link: "https://www.deezer.com/track/31"},
		},
	}
}

func TestRunQuery_EmptyInputShowsHelp(t *testing.T) {
	for _, raw := range []string{"", "   ", "\t\n"} {
		s := &fakeSearcher{}
		p := New(s)

		entries := p.RunQuery(t.Context(), raw)
		require.Len(t, entries, 1)
		assert.Equal(t, HelpTitle, entries[0].Title)
		assert.Equal(t, HelpSubTitle, entries[0].SubTitle)
		assert.Equal(t, launcher.DefaultIcon, entries[0].IcoPath)
		assert.Empty(t, s.calls)
	}
}

func TestRunQuery_ControlIntents(t *testing.T) {
	tests := []struct {
		raw    string
		title  string
		method string
	}{
		{"play", "Play/Pause Deezer Desktop App", launcher.MethodPlayPause},
		{"PLAY  ", "Play/Pause Deezer Desktop App", launcher.MethodPlayPause},
		{"pause", "Pause Deezer Desktop App", launcher.MethodPlayPause},
		{"stop", "Stop Deezer Desktop App", launcher.MethodStop},
		{"stop everything", "Stop Deezer Desktop App", launcher.MethodStop},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			s := &fakeSearcher{}
			media := &fakeMedia{}
			p := New(s, WithMedia(media))

			entries := p.RunQuery(t.Context(), tt.raw)
			require.Len(t, entries, 1)
			assert.Equal(t, tt.title, entries[0].Title)
			assert.Contains(t, entries[0].SubTitle, "(must be running)")
			require.NotNil(t, entries[0].Action)
			assert.Equal(t, tt.method, entries[0].Action.Method)
			assert.Empty(t, entries[0].Action.Parameters)

			assert.Empty(t, s.calls)
			// building the entry sends nothing; only the callback does
			assert.Zero(t, media.playPause)
			assert.Zero(t, media.stop)
		})
	}
}

func TestRunQuery_VerbWithoutTerm(t *testing.T) {
	for _, verb := range []string{"artist", "album", "playlist", "Album   "} {
		s := &fakeSearcher{}
		p := New(s)

		entries := p.RunQuery(t.Context(), verb)
		require.Len(t, entries, 1)
		assert.Regexp(t, `^Please provide a search term after '(artist|album|playlist)'\.$`, entries[0].Title)
		assert.Nil(t, entries[0].Action)
		assert.Empty(t, s.calls)
	}
}

func TestRunQuery_ArtistVerbSearchesOneCategory(t *testing.T) {
	s := &fakeSearcher{items: metallicaCatalog()}
	p := New(s)

	results := p.Resolve(t.Context(), "artist metallica")

	assert.Equal(t, []searchCall{{term: "metallica", category: deezer.CategoryArtist}}, s.calls)
	require.Len(t, results, 3)
	assert.Equal(t, "Metallica", results[0].Entry.Title)
	assert.Equal(t, 100, results[0].Score)
	for i, r := range results {
		assert.Equal(t, deezer.CategoryArtist, r.Category)
		if i > 0 {
			assert.LessOrEqual(t, r.Score, results[i-1].Score)
		}
	}
}

func TestRunQuery_SupersetNamesTieWithExactMatch(t *testing.T) {
	// every query word appears in both names, so both score 100 and keep
	// catalog order
	s := &fakeSearcher{items: map[deezer.Category][]deezer.Item{
		deezer.CategoryArtist: {
			deezer.Artist{ID: 1, Name: "Metallica Tribute Band"},
			deezer.Artist{ID: 2, Name: "Metallica"},
			deezer.Artist{ID: 3, Name: "Metalica Tribute"},
		},
	}}
	p := New(s)

	results := p.Resolve(t.Context(), "artist metallica")
	require.Len(t, results, 3)
	assert.Equal(t, "Metallica Tribute Band", results[0].Entry.Title)
	assert.Equal(t, 100, results[0].Score)
	assert.Equal(t, "Metallica", results[1].Entry.Title)
	assert.Equal(t, 100, results[1].Score)
	assert.Equal(t, "Metalica Tribute", results[2].Entry.Title)
	assert.Less(t, results[2].Score, 100)
}

func TestRunQuery_ImplicitSearchUsesCallOrder(t *testing.T) {
	s := &fakeSearcher{items: metallicaCatalog()}
	p := New(s)

	results := p.Resolve(t.Context(), "metallica")

	assert.Equal(t, CallOrder, s.categories())

	var cats []deezer.Category
	for _, r := range results {
		cats = append(cats, r.Category)
	}
	assert.Equal(t, []deezer.Category{
		deezer.CategoryArtist, deezer.CategoryArtist, deezer.CategoryArtist,
		deezer.CategoryAlbum,
		deezer.CategoryPlaylist,
		deezer.CategoryTrack, deezer.CategoryTrack,
	}, cats)

	// playlist has no link
	playlist := results[4].Entry
	assert.Equal(t, "Metallica Essentials by Deezer Metal", playlist.Title)
	assert.Equal(t, "Playlist"+launcher.NoURLSuffix, playlist.SubTitle)
	assert.False(t, playlist.Actionable())
}

func TestRunQuery_PlayVerbSearchesInCallOrder(t *testing.T) {
	s := &fakeSearcher{items: metallicaCatalog()}
	p := New(s)

	p.RunQuery(t.Context(), "play master of puppets")

	assert.Equal(t, []deezer.Category{
		deezer.CategoryArtist, deezer.CategoryAlbum, deezer.CategoryTrack,
	}, s.categories())
	for _, c := range s.calls {
		assert.Equal(t, "master of puppets", c.term)
	}
}

func TestRunQuery_ServiceErrorDropsCategory(t *testing.T) {
	var logs bytes.Buffer
	s := &fakeSearcher{
		items: metallicaCatalog(),
		errs: map[deezer.Category]error{
			deezer.CategoryAlbum: &deezer.ServiceError{Type: "DataException", Message: "no data", Code: 800},
		},
	}
	p := New(s, WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))

	results := p.Resolve(t.Context(), "metallica")

	for _, r := range results {
		assert.NotEqual(t, deezer.CategoryAlbum, r.Category)
	}
	assert.Len(t, results, 6)
	assert.Len(t, s.calls, 4)
	assert.Contains(t, logs.String(), "Failed to search catalog 'album'")
	assert.Contains(t, logs.String(), "DataException")
}

func TestRunQuery_AllCategoriesFail(t *testing.T) {
	boom := &deezer.TransportError{URL: "https://api.deezer.com/search", Err: errors.New("connection refused")}
	s := &fakeSearcher{errs: map[deezer.Category]error{
		deezer.CategoryArtist:   boom,
		deezer.CategoryAlbum:    &deezer.ServiceError{Message: "quota"},
		deezer.CategoryPlaylist: boom,
		deezer.CategoryTrack:    boom,
	}}
	p := New(s)

	entries := p.RunQuery(t.Context(), "metallica")
	require.Len(t, entries, 1)
	assert.Equal(t, "No Deezer results found for 'metallica'", entries[0].Title)
	assert.Equal(t, "Searched types: artist, album, playlist, track", entries[0].SubTitle)
	assert.Nil(t, entries[0].Action)
}

func TestRunQuery_NoResults(t *testing.T) {
	s := &fakeSearcher{}
	p := New(s)

	entries := p.RunQuery(t.Context(), "playlist zzzz qqqq")
	require.Len(t, entries, 1)
	assert.Equal(t, "No Deezer results found for 'zzzz qqqq'", entries[0].Title)
	assert.Equal(t, "Searched types: playlist", entries[0].SubTitle)
}

func TestRunQuery_Idempotent(t *testing.T) {
	p := New(&fakeSearcher{items: metallicaCatalog()})

	first := p.RunQuery(t.Context(), "metallica")
	second := p.RunQuery(t.Context(), "metallica")
	assert.Equal(t, first, second)
}

func TestRunQuery_ConcurrentKeepsOrder(t *testing.T) {
	sequential := New(&fakeSearcher{items: metallicaCatalog()})
	s := &fakeSearcher{items: metallicaCatalog()}
	concurrent := New(s, WithConcurrent(true))

	want := sequential.RunQuery(t.Context(), "metallica")
	got := concurrent.RunQuery(t.Context(), "metallica")

	assert.Equal(t, want, got)
	assert.ElementsMatch(t, CallOrder, s.categories())
}

func TestRunQuery_LimitAndIcon(t *testing.T) {
	p := New(&fakeSearcher{items: metallicaCatalog()}, WithLimit(1), WithIcon("icons/d.png"))

	entries := p.RunQuery(t.Context(), "artist metallica")
	require.Len(t, entries, 1)
	assert.Equal(t, "Metallica", entries[0].Title)
	assert.Equal(t, "icons/d.png", entries[0].IcoPath)

	// non-positive limits keep the default
	p = New(&fakeSearcher{items: metallicaCatalog()}, WithLimit(0))
	assert.Len(t, p.RunQuery(t.Context(), "artist metallica"), DefaultLimit)
}

func TestOrdered(t *testing.T) {
	got := ordered([]deezer.Category{deezer.CategoryTrack, deezer.CategoryArtist, deezer.CategoryAlbum})
	assert.Equal(t, []deezer.Category{deezer.CategoryArtist, deezer.CategoryAlbum, deezer.CategoryTrack}, got)
	assert.Empty(t, ordered(nil))
}

func TestCallbacks(t *testing.T) {
	media := &fakeMedia{status: types.PlaybackStatusPlaying}
	opener := &fakeOpener{}
	p := New(&fakeSearcher{}, WithMedia(media), WithOpener(opener))
	ctx := t.Context()

	require.NoError(t, p.PlayPause(ctx))
	require.NoError(t, p.Stop(ctx))
	require.NoError(t, p.OpenURL(ctx, "https://www.deezer.com/track/3135556"))
	status, err := p.Status(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, media.playPause)
	assert.Equal(t, 1, media.stop)
	assert.Equal(t, []string{"https://www.deezer.com/track/3135556"}, opener.opened)
	assert.Equal(t, types.PlaybackStatusPlaying, status)
}

func TestCallbacks_FailuresAreLoggedAndReturned(t *testing.T) {
	var logs bytes.Buffer
	media := &fakeMedia{err: mediactl.ErrNoPlayer}
	opener := &fakeOpener{err: errors.New("no browser")}
	p := New(&fakeSearcher{},
		WithMedia(media),
		WithOpener(opener),
		WithLogger(slog.New(slog.NewTextHandler(&logs, nil))),
	)
	ctx := t.Context()

	require.ErrorIs(t, p.PlayPause(ctx), mediactl.ErrNoPlayer)
	require.ErrorIs(t, p.Stop(ctx), mediactl.ErrNoPlayer)
	require.Error(t, p.OpenURL(ctx, "https://www.deezer.com"))

	assert.Contains(t, logs.String(), "Failed to toggle playback")
	assert.Contains(t, logs.String(), "Failed to stop playback")
	assert.Contains(t, logs.String(), "Failed to open url")
}

func TestCallbacks_NoController(t *testing.T) {
	p := New(&fakeSearcher{})
	require.ErrorIs(t, p.PlayPause(t.Context()), mediactl.ErrUnsupported)
	require.ErrorIs(t, p.Stop(t.Context()), mediactl.ErrUnsupported)
	_, err := p.Status(t.Context())
	require.ErrorIs(t, err, mediactl.ErrUnsupported)
}

func TestPluginImplementsHandler(t *testing.T) {
	var _ launcher.Handler = New(&fakeSearcher{})
	var _ Searcher = (*deezer.Client)(nil)
}
