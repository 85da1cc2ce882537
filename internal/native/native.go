// Package native exposes the raw libxosd call surface to the rest of the
// module. It deliberately preserves the C library's integer status-code
// conventions; translating those into typed Go errors is the job of the
// public pkg/xosd package.
//
// Two implementations of Session exist: the cgo-backed one created by
// Create (Linux with cgo only), and the in-memory one created by
// NewMemorySession, which models enough of libxosd's observable behavior
// to back tests and dry runs without an X server.
package native

import "errors"

// ErrUnavailable is returned by Create on targets where the cgo backend is
// not compiled in.
var ErrUnavailable = errors.New("xosd native backend requires linux with cgo enabled")

// Position codes for xosd_set_pos, mirroring the xosd_pos enum in xosd.h.
const (
	PosTop    = 0
	PosBottom = 1
	PosMiddle = 2
)

// Alignment codes for xosd_set_align, mirroring the xosd_align enum in xosd.h.
const (
	AlignLeft   = 0
	AlignCenter = 1
	AlignRight  = 2
)

// Defaults libxosd compiles in. The memory session reports these; the cgo
// session reads the library's own globals instead.
const (
	DefaultColourName = "green"
	DefaultFontName   = "-misc-fixed-medium-r-semicondensed--*-*-*-*-c-*-*-*"
)

// Session is one xosd window. A session is exclusively owned by its creator
// and is not safe for concurrent use; libxosd itself is single-threaded.
//
// Status-code convention: methods returning a bare int yield 0 on success
// and nonzero on failure, except the Display* and NumberLines methods,
// whose return value is meaningful and where only a negative value signals
// failure. After any failure LastError describes it.
type Session interface {
	// DisplayString renders text on the given line and returns the number
	// of characters written, or a negative value on failure.
	DisplayString(line int, text string) int

	// DisplayPercentage renders a percentage bar on the given line and
	// returns the bar value, or a negative value on failure.
	DisplayPercentage(line, percent int) int

	// DisplaySlider renders a slider on the given line and returns the
	// slider value, or a negative value on failure.
	DisplaySlider(line, percent int) int

	// SetBarLength sets the percentage of the display width used by bars
	// and sliders. The value -1 restores the library default.
	SetBarLength(length int) int

	// IsOnscreen reports visibility: 1 when shown, 0 when hidden, any
	// other value on failure.
	IsOnscreen() int

	// WaitUntilNoDisplay blocks until nothing is displayed anymore.
	WaitUntilNoDisplay() int

	Show() int
	Hide() int

	// SetPos sets vertical placement using the Pos* codes.
	SetPos(pos int) int

	// SetAlign sets horizontal placement using the Align* codes.
	SetAlign(align int) int

	SetShadowOffset(px int) int
	SetOutlineOffset(px int) int
	SetHorizontalOffset(px int) int
	SetVerticalOffset(px int) int

	SetColour(name string) int
	SetShadowColour(name string) int
	SetOutlineColour(name string) int
	SetFont(name string) int

	// SetTimeout sets how long a display stays up, in seconds. A negative
	// value disables the timeout.
	SetTimeout(seconds int) int

	// Colour reads back the current text colour as 16-bit-per-channel
	// values. rc is 0 on success.
	Colour() (red, green, blue int, rc int)

	// Scroll moves the display up by the given number of lines.
	Scroll(lines int) int

	// NumberLines returns the line count the session was created with, or
	// a negative value on failure.
	NumberLines() int

	// Uninit destroys the underlying window. Must be called exactly once;
	// the session is unusable afterwards.
	Uninit() int

	// LastError returns the most recent error message. For the cgo session
	// this reads libxosd's process-wide xosd_error channel, which is
	// shared by every session in the process; read it immediately after
	// the failing call or another call may overwrite it.
	LastError() string
}
