// Package plugin wires the intent parser, catalog client, ranker and formatter
// into the launcher query pipeline, and implements the launcher callbacks.
package plugin

import (
	"context"
	"log/slog"

	"github.com/llehouerou/deezer-flow/internal/browser"
	"github.com/llehouerou/deezer-flow/internal/deezer"
	"github.com/llehouerou/deezer-flow/internal/errmsg"
	"github.com/llehouerou/deezer-flow/internal/launcher"
	"github.com/llehouerou/deezer-flow/internal/logging"
	"github.com/llehouerou/deezer-flow/internal/mediactl"
	"github.com/quarckster/go-mpris-server/pkg/types"
)

// DefaultLimit is the number of results kept per category.
const DefaultLimit = 3

// Searcher queries the catalog for one category. *deezer.Client satisfies it.
type Searcher interface {
	Search(ctx context.Context, term string, category deezer.Category) ([]deezer.Item, error)
}

// Plugin answers launcher queries and callbacks.
// It holds no per-query state and is safe for concurrent use.
type Plugin struct {
	searcher   Searcher
	media      mediactl.Controller
	opener     browser.Opener
	logger     *slog.Logger
	icon       string
	limit      int
	concurrent bool
}

// Option configures a Plugin.
type Option func(*Plugin)

// WithMedia sets the desktop player controller.
func WithMedia(c mediactl.Controller) Option {
	return func(p *Plugin) { p.media = c }
}

// WithOpener sets how links are opened.
func WithOpener(o browser.Opener) Option {
	return func(p *Plugin) { p.opener = o }
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Plugin) { p.logger = l }
}

// WithIcon sets the icon attached to every entry.
func WithIcon(path string) Option {
	return func(p *Plugin) { p.icon = path }
}

// WithLimit sets the number of results kept per category.
// Values below 1 keep the default.
func WithLimit(n int) Option {
	return func(p *Plugin) {
		if n > 0 {
			p.limit = n
		}
	}
}

// WithConcurrent makes category searches run in parallel.
func WithConcurrent(on bool) Option {
	return func(p *Plugin) { p.concurrent = on }
}

// New creates a Plugin searching with s.
func New(s Searcher, opts ...Option) *Plugin {
	p := &Plugin{
		searcher: s,
		opener:   browser.System{},
		logger:   logging.Discard(),
		icon:     launcher.DefaultIcon,
		limit:    DefaultLimit,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Query implements launcher.Handler.
func (p *Plugin) Query(ctx context.Context, query string) []launcher.Entry {
	return p.RunQuery(ctx, query)
}

// OpenURL opens link in the browser.
func (p *Plugin) OpenURL(ctx context.Context, link string) error {
	if err := p.opener.Open(ctx, link); err != nil {
		p.logger.Warn(errmsg.FormatWith(errmsg.OpOpenURL, link, err))
		return err
	}
	return nil
}

// PlayPause toggles playback of the desktop player.
// Failures are logged and returned; the player may simply not be running.
func (p *Plugin) PlayPause(ctx context.Context) error {
	if p.media == nil {
		return mediactl.ErrUnsupported
	}
	if err := p.media.PlayPause(ctx); err != nil {
		p.logger.Warn(errmsg.Format(errmsg.OpMediaPlayPause, err))
		return err
	}
	return nil
}

// Stop stops the desktop player.
func (p *Plugin) Stop(ctx context.Context) error {
	if p.media == nil {
		return mediactl.ErrUnsupported
	}
	if err := p.media.Stop(ctx); err != nil {
		p.logger.Warn(errmsg.Format(errmsg.OpMediaStop, err))
		return err
	}
	return nil
}

// Status reports the playback status of the desktop player.
func (p *Plugin) Status(ctx context.Context) (types.PlaybackStatus, error) {
	if p.media == nil {
		return "", mediactl.ErrUnsupported
	}
	status, err := p.media.Status(ctx)
	if err != nil {
		p.logger.Debug(errmsg.Format(errmsg.OpMediaStatus, err))
		return "", err
	}
	return status, nil
}
