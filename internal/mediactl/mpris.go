//go:build linux

package mediactl

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/types"
)

// mprisController drives an MPRIS player over the session bus.
type mprisController struct {
	conn   *dbus.Conn
	player string // preferred player name, matched against bus names
}

// New creates a Controller for the MPRIS player matching playerName.
// Returns a controller reporting ErrUnsupported if D-Bus is unavailable.
func New(playerName string) (Controller, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		// no session bus: degrade to a controller that explains why
		return &stubController{err: fmt.Errorf("%w: %v", ErrUnsupported, err)}, nil //nolint:nilerr // graceful fallback when D-Bus unavailable
	}
	return &mprisController{conn: conn, player: playerName}, nil
}

func (c *mprisController) PlayPause(ctx context.Context) error {
	return c.call(ctx, "PlayPause")
}

func (c *mprisController) Stop(ctx context.Context) error {
	return c.call(ctx, "Stop")
}

func (c *mprisController) Status(ctx context.Context) (types.PlaybackStatus, error) {
	obj, err := c.object(ctx)
	if err != nil {
		return "", err
	}

	v, err := obj.GetProperty(playerIface + ".PlaybackStatus")
	if err != nil {
		return "", fmt.Errorf("read playback status: %w", err)
	}
	status, ok := v.Value().(string)
	if !ok {
		return "", fmt.Errorf("read playback status: unexpected type %s", v.Signature())
	}
	return types.PlaybackStatus(status), nil
}

func (c *mprisController) call(ctx context.Context, method string) error {
	obj, err := c.object(ctx)
	if err != nil {
		return err
	}
	if call := obj.CallWithContext(ctx, playerIface+"."+method, 0); call.Err != nil {
		return fmt.Errorf("%s: %w", method, call.Err)
	}
	return nil
}

func (c *mprisController) object(ctx context.Context) (dbus.BusObject, error) {
	var names []string
	if err := c.conn.BusObject().CallWithContext(ctx, "org.freedesktop.DBus.ListNames", 0).Store(&names); err != nil {
		return nil, fmt.Errorf("list bus names: %w", err)
	}

	dest, err := pickPlayer(names, c.player)
	if err != nil {
		return nil, err
	}
	return c.conn.Object(dest, mprisPath), nil
}
