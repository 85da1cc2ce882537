package xosd

import "github.com/opd-ai/go-xosd/internal/native"

// DefaultColor returns the colour name libxosd uses when none is set,
// normally "green" from X11's rgb.txt. Returns ErrNilPointer when the
// library's global is absent, which includes builds without the native
// backend.
func DefaultColor() (string, error) {
	name, ok := native.DefaultColour()
	if !ok {
		return "", ErrNilPointer
	}
	return name, nil
}

// DefaultFont returns the X logical font description libxosd uses when none
// is set. Returns ErrNilPointer when the library's global is absent, which
// includes builds without the native backend.
func DefaultFont() (string, error) {
	name, ok := native.DefaultFont()
	if !ok {
		return "", ErrNilPointer
	}
	return name, nil
}
