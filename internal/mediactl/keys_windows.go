//go:build windows

package mediactl

import (
	"context"
	"fmt"

	"github.com/quarckster/go-mpris-server/pkg/types"
	"golang.org/x/sys/windows"
)

const (
	vkMediaStop      = 0xB2
	vkMediaPlayPause = 0xB3

	keyeventfExtendedKey = 0x0001
	keyeventfKeyUp       = 0x0002
)

var (
	user32         = windows.NewLazySystemDLL("user32.dll")
	procKeybdEvent = user32.NewProc("keybd_event")
)

// keyController emulates the keyboard media keys. The foreground media
// application (or the system media session) receives them.
type keyController struct{}

// New creates a Controller sending media key presses.
// The player name is not used: media keys go to whichever player listens.
func New(_ string) (Controller, error) {
	if err := procKeybdEvent.Find(); err != nil {
		return &stubController{err: fmt.Errorf("%w: %v", ErrUnsupported, err)}, nil //nolint:nilerr // graceful fallback
	}
	return keyController{}, nil
}

func (keyController) PlayPause(context.Context) error {
	return tap(vkMediaPlayPause)
}

func (keyController) Stop(context.Context) error {
	return tap(vkMediaStop)
}

func (keyController) Status(context.Context) (types.PlaybackStatus, error) {
	return "", ErrUnsupported
}

// tap presses and releases a virtual key.
func tap(vk uintptr) error {
	if err := procKeybdEvent.Find(); err != nil {
		return fmt.Errorf("keybd_event: %w", err)
	}
	// keybd_event has no return value
	_, _, _ = procKeybdEvent.Call(vk, 0, keyeventfExtendedKey, 0)
	_, _, _ = procKeybdEvent.Call(vk, 0, keyeventfExtendedKey|keyeventfKeyUp, 0)
	return nil
}
