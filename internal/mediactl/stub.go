//go:build !linux && !windows

package mediactl

// New returns a controller reporting ErrUnsupported on this platform.
func New(_ string) (Controller, error) {
	return &stubController{err: ErrUnsupported}, nil
}
