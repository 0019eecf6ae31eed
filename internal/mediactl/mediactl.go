// Package mediactl sends play/pause and stop signals to a desktop player.
//
// Linux talks to MPRIS players over the D-Bus session bus, Windows emulates
// the hardware media keys. Other platforms get a controller that reports
// ErrUnsupported.
package mediactl

import (
	"context"
	"errors"

	"github.com/quarckster/go-mpris-server/pkg/types"
)

var (
	// ErrUnsupported is returned when the platform has no way to control a player.
	ErrUnsupported = errors.New("media control not supported on this platform")
	// ErrNoPlayer is returned when no controllable player is running.
	ErrNoPlayer = errors.New("no media player found")
)

// Controller sends media signals. Signals are best effort: the player may
// legitimately not be running, so callers log errors instead of failing.
type Controller interface {
	PlayPause(ctx context.Context) error
	Stop(ctx context.Context) error
	// Status returns the playback status of the controlled player.
	Status(ctx context.Context) (types.PlaybackStatus, error)
}

// stubController is used when no media control backend is available.
type stubController struct {
	err error
}

func (s *stubController) PlayPause(context.Context) error {
	return s.err
}

func (s *stubController) Stop(context.Context) error {
	return s.err
}

func (s *stubController) Status(context.Context) (types.PlaybackStatus, error) {
	return "", s.err
}
