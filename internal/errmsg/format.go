// Package errmsg provides consistent error formatting for operator diagnostics.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Catalog operations
	OpCatalogSearch Op = "search catalog"

	// Media control
	OpMediaPlayPause Op = "toggle playback"
	OpMediaStop      Op = "stop playback"
	OpMediaStatus    Op = "read playback status"

	// Launcher callbacks
	OpOpenURL       Op = "open url"
	OpDecodeRequest Op = "decode launcher request"
	OpWriteResponse Op = "write launcher response"

	// Initialization
	OpConfigLoad Op = "load configuration"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
