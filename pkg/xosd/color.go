package xosd

import (
	"fmt"
	"math"
)

// Color is an 8-bit-per-channel RGB triple. The X server reports colours at
// 16 bits per channel; GetColor scales those down by integer division.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// String formats the colour as a #rrggbb hex triple.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// scaleChannel narrows one 16-bit channel value to 8 bits. The range check
// cannot trip for values the X server actually hands out, but the native
// result is an int and is checked anyway.
func scaleChannel(v int) (uint8, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: channel value %d", ErrNumericConversion, v)
	}
	scaled := v / 256
	if scaled > math.MaxUint8 {
		return 0, fmt.Errorf("%w: channel value %d", ErrNumericConversion, v)
	}
	return uint8(scaled), nil
}
