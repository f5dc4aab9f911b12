// Package errmsg provides consistent error formatting for diagnostic messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants.
const (
	// Start-up
	OpConfigLoad    Op = "load configuration"
	OpLoggerInit    Op = "initialize logging"
	OpStderrCapture Op = "capture audio library output"

	// Asset loading
	OpAssetLoad   Op = "load sound asset"
	OpAssetDecode Op = "initialize player"

	// Playback
	OpPlaybackSeek  Op = "seek"
	OpPlaybackClose Op = "close player"
)

// Format creates a human-readable error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}
