// Package browser opens web links in the user's default browser.
package browser

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// ErrInvalidURL is returned for links that are not absolute http(s) URLs.
var ErrInvalidURL = errors.New("not an http(s) url")

// Opener opens links.
type Opener interface {
	Open(ctx context.Context, link string) error
}

// System opens links with the platform's URL handler.
type System struct{}

// Open starts the browser for link and returns without waiting for it.
func (System) Open(ctx context.Context, link string) error {
	if err := Validate(link); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	name, args := command(runtime.GOOS, link)
	// not bound to ctx: the handler must survive our exit
	cmd := exec.Command(name, args...) //nolint:gosec // link is validated above
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", name, err)
	}
	// The handler may outlive us; reap it without blocking.
	go func() { _ = cmd.Wait() }()
	return nil
}

// Validate checks that link is an absolute http or https URL.
func Validate(link string) error {
	u, err := url.Parse(link)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidURL, link)
	}
	return nil
}

func command(goos, link string) (string, []string) {
	switch goos {
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", link}
	case "darwin":
		return "open", []string{link}
	default:
		return "xdg-open", []string{link}
	}
}
