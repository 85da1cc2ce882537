package xosd

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the wrapper's own validation layer. Failures
// reported by libxosd itself surface as *NativeError instead.
var (
	// ErrInvalidLineCount is returned when a window is requested with
	// fewer than one line. No native call is made in that case.
	ErrInvalidLineCount = errors.New("xosd: line count must be at least 1")

	// ErrOutOfRangePercentage is returned when a percentage or slider
	// value falls outside [0, 100].
	ErrOutOfRangePercentage = errors.New("xosd: percentage must be between 0 and 100")

	// ErrNilPointer is returned when a native string query unexpectedly
	// yields a NULL pointer.
	ErrNilPointer = errors.New("xosd: native library returned a nil pointer")

	// ErrStringConversion is returned when a caller-supplied string cannot
	// be handed to the native library, e.g. because it contains an
	// embedded NUL byte.
	ErrStringConversion = errors.New("xosd: string is not representable as a C string")

	// ErrNumericConversion is returned when a native numeric result does
	// not fit the wrapper's narrower return type.
	ErrNumericConversion = errors.New("xosd: native value out of range for result type")

	// ErrClosed is returned by every operation on a closed Osd.
	ErrClosed = errors.New("xosd: session is closed")
)

// NativeError reports a failure inside libxosd. Message is fetched from the
// library's last-error channel immediately after the failing call; that
// channel is process-wide, so under concurrent sessions the message may
// belong to another call.
type NativeError struct {
	// Op is the native entry point that failed, e.g. "xosd_display".
	Op string

	// Message is the library's description of the failure. May be empty
	// when the library did not record one.
	Message string
}

// Error implements the error interface.
func (e *NativeError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("xosd: %s failed", e.Op)
	}
	return fmt.Sprintf("xosd: %s: %s", e.Op, e.Message)
}

// checkCString verifies that s can be converted to a NUL-terminated C
// string.
func checkCString(s string) error {
	for i := 0; i < len(s); i++ {
		if s[i] == 0 {
			return fmt.Errorf("%w: embedded NUL at byte %d", ErrStringConversion, i)
		}
	}
	return nil
}
