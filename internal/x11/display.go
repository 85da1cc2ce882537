// Package x11 probes the X server before an OSD window is created, so the
// CLI can fail with a useful message instead of an opaque native error, and
// so configured offsets can be sanity-checked against the screen size.
package x11

import (
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// DisplayInfo describes the X server a probe reached.
type DisplayInfo struct {
	// Vendor is the server vendor string.
	Vendor string

	// Width and Height are the default screen's size in pixels.
	Width  int
	Height int

	// Screens is the number of screens the server exposes.
	Screens int
}

// Probe connects to the X server named by display (empty means $DISPLAY),
// reads the default screen's geometry, and disconnects.
func Probe(display string) (*DisplayInfo, error) {
	conn, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, fmt.Errorf("connect to X display: %w", err)
	}
	defer conn.Close()

	setup := xproto.Setup(conn)
	screen := setup.DefaultScreen(conn)

	return &DisplayInfo{
		Vendor:  setup.Vendor,
		Width:   int(screen.WidthInPixels),
		Height:  int(screen.HeightInPixels),
		Screens: len(setup.Roots),
	}, nil
}

// OffsetsFit reports whether horizontal and vertical window offsets stay
// inside the probed screen. Offsets outside the screen are not an error to
// xosd, the window just ends up invisible, which is worth a warning.
func (d *DisplayInfo) OffsetsFit(horizontal, vertical int) bool {
	return horizontal >= 0 && horizontal < d.Width &&
		vertical >= 0 && vertical < d.Height
}
