//go:build !linux || !cgo

// Skeleton for targets without the native library. libxosd is X11-only and
// reached through cgo, so anywhere else Create reports the backend as
// unavailable and the rest of the module keeps building. The memory session
// remains available on every platform.
package native

// Create always fails on non-linux or non-cgo targets.
func Create(lines int) (Session, error) {
	return nil, ErrUnavailable
}

// DefaultColour reports the default colour name as unavailable.
func DefaultColour() (string, bool) {
	return "", false
}

// DefaultFont reports the default font name as unavailable.
func DefaultFont() (string, bool) {
	return "", false
}
