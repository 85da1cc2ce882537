package xosd

import (
	"errors"
	"fmt"
	"sync"

	"github.com/opd-ai/go-xosd/internal/native"
)

// Osd owns one on-screen-display window. It has two states: live and
// closed. Every method is valid only while live; after Close they all
// return ErrClosed, so a destroyed native handle is never reachable.
//
// A mutex serializes all calls on one instance because libxosd itself is
// not thread-safe. Note that the library's last-error channel is shared by
// every session in the process, so error messages can be misattributed when
// several instances fail concurrently.
type Osd struct {
	mu      sync.Mutex
	session native.Session
	lines   int
	closed  bool
	log     Logger
}

// New opens an OSD window able to display the given number of lines.
// Returns ErrInvalidLineCount, without touching the native library, when
// lines < 1.
func New(lines int) (*Osd, error) {
	return NewWithOptions(lines, nil)
}

// NewWithOptions opens an OSD window and applies opts to it. If any option
// fails to apply, the window is torn down again and the setter's error is
// returned.
func NewWithOptions(lines int, opts *Options) (*Osd, error) {
	if lines < 1 {
		return nil, ErrInvalidLineCount
	}
	session, err := native.Create(lines)
	if err != nil {
		if errors.Is(err, native.ErrUnavailable) {
			return nil, fmt.Errorf("xosd: %w", err)
		}
		return nil, &NativeError{Op: "xosd_create", Message: err.Error()}
	}
	return newFromSession(session, lines, opts)
}

// NewSimulated opens a window backed by an in-memory session instead of the
// native library. It honors the same contract as NewWithOptions and is
// intended for tests and dry runs on machines without an X server.
func NewSimulated(lines int, opts *Options) (*Osd, error) {
	if lines < 1 {
		return nil, ErrInvalidLineCount
	}
	return newFromSession(native.NewMemorySession(lines), lines, opts)
}

func newFromSession(session native.Session, lines int, opts *Options) (*Osd, error) {
	osd := &Osd{session: session, lines: lines, log: nopLogger{}}
	if opts != nil {
		if opts.Logger != nil {
			osd.log = opts.Logger
		}
		if err := opts.apply(osd); err != nil {
			osd.Close()
			return nil, err
		}
	}
	return osd, nil
}

// do runs one zero-on-success native call under the instance lock.
func (o *Osd) do(op string, call func(native.Session) int) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return ErrClosed
	}
	o.log.Debug("xosd call", "op", op)
	if rc := call(o.session); rc != 0 {
		return &NativeError{Op: op, Message: o.session.LastError()}
	}
	return nil
}

// Display renders cmd on the given line (0-based). For text commands it
// returns the number of characters written; for percentage and slider
// commands it returns the bar value. The window becomes visible as a side
// effect and stays up until the timeout elapses; see SetTimeout and
// WaitUntilNoDisplay.
func (o *Osd) Display(line int, cmd Command) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return 0, ErrClosed
	}
	o.log.Debug("xosd call", "op", "xosd_display", "line", line, "command", cmd.Kind().String())

	var res int
	switch cmd.kind {
	case KindText:
		if err := checkCString(cmd.text); err != nil {
			return 0, err
		}
		res = o.session.DisplayString(line, cmd.text)
	case KindPercentage:
		res = o.session.DisplayPercentage(line, cmd.value)
	case KindSlider:
		res = o.session.DisplaySlider(line, cmd.value)
	default:
		return 0, fmt.Errorf("xosd: invalid command kind %d", int(cmd.kind))
	}
	if res < 0 {
		return 0, &NativeError{Op: "xosd_display", Message: o.session.LastError()}
	}
	return res, nil
}

// SetBarLength fixes the percentage of the display width used by bars and
// sliders, 0-100. Use ResetBarLength to restore the library's automatic
// sizing.
func (o *Osd) SetBarLength(percent int) error {
	if percent < 0 || percent > 100 {
		return fmt.Errorf("%w: got %d", ErrOutOfRangePercentage, percent)
	}
	return o.do("xosd_set_bar_length", func(s native.Session) int {
		return s.SetBarLength(percent)
	})
}

// ResetBarLength restores the library's automatic bar sizing by forwarding
// the -1 sentinel.
func (o *Osd) ResetBarLength() error {
	return o.do("xosd_set_bar_length", func(s native.Session) int {
		return s.SetBarLength(-1)
	})
}

// IsOnscreen reports whether the window is currently visible. It is false
// for a fresh window and becomes true after a successful Display or Show.
func (o *Osd) IsOnscreen() (bool, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return false, ErrClosed
	}
	switch rc := o.session.IsOnscreen(); rc {
	case 1:
		return true, nil
	case 0:
		return false, nil
	default:
		return false, &NativeError{Op: "xosd_is_onscreen", Message: o.session.LastError()}
	}
}

// WaitUntilNoDisplay blocks the calling goroutine until the display timeout
// elapses and nothing is shown anymore. There is no cancellation: the
// native call offers none.
func (o *Osd) WaitUntilNoDisplay() error {
	return o.do("xosd_wait_until_no_display", native.Session.WaitUntilNoDisplay)
}

// Show maps the window. Fails when the window is already visible.
func (o *Osd) Show() error {
	return o.do("xosd_show", native.Session.Show)
}

// Hide unmaps the window. Fails when the window is not visible.
func (o *Osd) Hide() error {
	return o.do("xosd_hide", native.Session.Hide)
}

// SetVerticalAlign places the window at the top, middle, or bottom of the
// screen.
func (o *Osd) SetVerticalAlign(align VerticalAlign) error {
	code, err := align.nativeCode()
	if err != nil {
		return err
	}
	return o.do("xosd_set_pos", func(s native.Session) int {
		return s.SetPos(code)
	})
}

// SetHorizontalAlign places the window at the left, center, or right of the
// screen.
func (o *Osd) SetHorizontalAlign(align HorizontalAlign) error {
	code, err := align.nativeCode()
	if err != nil {
		return err
	}
	return o.do("xosd_set_align", func(s native.Session) int {
		return s.SetAlign(code)
	})
}

// SetShadowOffset sets the drop-shadow offset in pixels.
func (o *Osd) SetShadowOffset(px int) error {
	return o.do("xosd_set_shadow_offset", func(s native.Session) int {
		return s.SetShadowOffset(px)
	})
}

// SetOutlineOffset sets the text outline width in pixels.
func (o *Osd) SetOutlineOffset(px int) error {
	return o.do("xosd_set_outline_offset", func(s native.Session) int {
		return s.SetOutlineOffset(px)
	})
}

// SetHorizontalOffset shifts the window from its horizontal anchor, in
// pixels.
func (o *Osd) SetHorizontalOffset(px int) error {
	return o.do("xosd_set_horizontal_offset", func(s native.Session) int {
		return s.SetHorizontalOffset(px)
	})
}

// SetVerticalOffset shifts the window from its vertical anchor, in pixels.
func (o *Osd) SetVerticalOffset(px int) error {
	return o.do("xosd_set_vertical_offset", func(s native.Session) int {
		return s.SetVerticalOffset(px)
	})
}

// SetColor sets the text colour by X11 colour name.
func (o *Osd) SetColor(name string) error {
	if err := checkCString(name); err != nil {
		return err
	}
	return o.do("xosd_set_colour", func(s native.Session) int {
		return s.SetColour(name)
	})
}

// SetShadowColor sets the drop-shadow colour by X11 colour name.
func (o *Osd) SetShadowColor(name string) error {
	if err := checkCString(name); err != nil {
		return err
	}
	return o.do("xosd_set_shadow_colour", func(s native.Session) int {
		return s.SetShadowColour(name)
	})
}

// SetOutlineColor sets the text outline colour by X11 colour name.
func (o *Osd) SetOutlineColor(name string) error {
	if err := checkCString(name); err != nil {
		return err
	}
	return o.do("xosd_set_outline_colour", func(s native.Session) int {
		return s.SetOutlineColour(name)
	})
}

// SetFont sets the display font from an X logical font description.
func (o *Osd) SetFont(name string) error {
	if err := checkCString(name); err != nil {
		return err
	}
	return o.do("xosd_set_font", func(s native.Session) int {
		return s.SetFont(name)
	})
}

// SetTimeout sets how long each display stays up, in seconds. A negative
// value disables the timeout so displays stay until hidden or replaced.
func (o *Osd) SetTimeout(seconds int) error {
	return o.do("xosd_set_timeout", func(s native.Session) int {
		return s.SetTimeout(seconds)
	})
}

// GetColor reads back the current text colour, scaled from the X server's
// 16-bit channels down to 8 bits.
func (o *Osd) GetColor() (Color, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return Color{}, ErrClosed
	}
	red, green, blue, rc := o.session.Colour()
	if rc != 0 {
		return Color{}, &NativeError{Op: "xosd_get_colour", Message: o.session.LastError()}
	}

	var c Color
	var err error
	if c.R, err = scaleChannel(red); err != nil {
		return Color{}, err
	}
	if c.G, err = scaleChannel(green); err != nil {
		return Color{}, err
	}
	if c.B, err = scaleChannel(blue); err != nil {
		return Color{}, err
	}
	return c, nil
}

// Scroll moves the displayed content up by the given number of lines.
func (o *Osd) Scroll(lines int) error {
	return o.do("xosd_scroll", func(s native.Session) int {
		return s.Scroll(lines)
	})
}

// MaxLines returns the number of lines the window was created with.
func (o *Osd) MaxLines() (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return 0, ErrClosed
	}
	res := o.session.NumberLines()
	if res < 0 {
		return 0, &NativeError{Op: "xosd_get_number_lines", Message: o.session.LastError()}
	}
	return res, nil
}

// Close destroys the window. It is idempotent: the first call runs native
// teardown exactly once and later calls return nil without touching the
// session.
//
// Close panics if native teardown fails. There is no recovery path: the
// window's external resources are in an undefined state and would leak
// silently otherwise.
func (o *Osd) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return nil
	}
	o.closed = true
	o.log.Debug("xosd call", "op", "xosd_uninit")
	if rc := o.session.Uninit(); rc != 0 {
		panic(fmt.Sprintf("xosd: cannot destroy native session: %s", o.session.LastError()))
	}
	return nil
}
