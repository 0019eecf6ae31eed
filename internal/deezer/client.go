package deezer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://api.deezer.com"
	userAgent      = "deezer-flow/0.1 (https://github.com/llehouerou/deezer-flow)"

	maxErrorBody = 512
)

// Client provides access to the Deezer search API.
// Every call performs exactly one round trip; nothing is retried.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimSuffix(baseURL, "/")
		}
	}
}

// WithAccessToken sends token as a bearer credential on every request.
func WithAccessToken(token string) Option {
	return func(c *Client) {
		c.accessToken = token
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient creates a new Deezer API client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search runs a search scoped to category.
// An invalid category falls back to the general /search endpoint, whose
// items are mapped according to their own type.
// A response without results yields an empty slice and no error.
func (c *Client) Search(ctx context.Context, term string, category Category) ([]Item, error) {
	endpoint := "/search"
	if category.Valid() {
		endpoint += "/" + string(category)
	}

	params := url.Values{}
	params.Set("q", term)
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, endpoint, params.Encode())

	result, err := c.get(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	return convertItems(result.Data, category), nil
}

// SearchTracks searches for tracks matching the query.
func (c *Client) SearchTracks(ctx context.Context, query string) ([]Item, error) {
	return c.Search(ctx, query, CategoryTrack)
}

// SearchAlbums searches for albums matching the query.
func (c *Client) SearchAlbums(ctx context.Context, query string) ([]Item, error) {
	return c.Search(ctx, query, CategoryAlbum)
}

// SearchArtists searches for artists matching the query.
func (c *Client) SearchArtists(ctx context.Context, query string) ([]Item, error) {
	return c.Search(ctx, query, CategoryArtist)
}

// SearchPlaylists searches for playlists matching the query.
func (c *Client) SearchPlaylists(ctx context.Context, query string) ([]Item, error) {
	return c.Search(ctx, query, CategoryPlaylist)
}

func (c *Client) get(ctx context.Context, reqURL string) (*searchResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{URL: reqURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &TransportError{
			URL:        reqURL,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &TransportError{URL: reqURL, Err: fmt.Errorf("decode response: %w", err)}
	}

	if result.Error != nil {
		return nil, result.Error.toServiceError()
	}

	return &result, nil
}

// setHeaders sets common headers for API requests.
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}
}

// convertItems maps raw results to Items, dropping entries of unknown type.
func convertItems(results []rawItem, category Category) []Item {
	items := make([]Item, 0, len(results))
	for i := range results {
		r := &results[i]
		cat := category
		if !cat.Valid() {
			cat = Category(r.Type)
		}
		if item, ok := r.toItem(cat); ok {
			items = append(items, item)
		}
	}
	return items
}

func (r *rawItem) toItem(category Category) (Item, bool) {
	switch category {
	case CategoryArtist:
		return Artist{
			ID:   r.ID,
			Name: r.Name,
			Link: r.Link,
			Fans: r.NbFan,
		}, true
	case CategoryAlbum:
		return Album{
			ID:         r.ID,
			Title:      r.Title,
			ArtistName: r.artistName(),
			Link:       r.Link,
			TrackCount: r.NbTracks,
		}, true
	case CategoryPlaylist:
		p := Playlist{
			ID:         r.ID,
			Title:      r.Title,
			Link:       r.Link,
			TrackCount: r.NbTracks,
		}
		if r.User != nil {
			p.CreatorName = r.User.Name
		}
		return p, true
	case CategoryTrack:
		t := Track{
			ID:         r.ID,
			Title:      r.Title,
			ArtistName: r.artistName(),
			Link:       r.Link,
			Duration:   r.Duration,
		}
		if r.Album != nil {
			t.AlbumTitle = r.Album.Title
		}
		return t, true
	}
	return nil, false
}

func (r *rawItem) artistName() string {
	if r.Artist == nil {
		return ""
	}
	return r.Artist.Name
}
