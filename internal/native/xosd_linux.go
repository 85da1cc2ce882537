//go:build linux && cgo

package native

/*
#cgo LDFLAGS: -lxosd
#include <stdlib.h>
#include <xosd.h>

// xosd_display is variadic, which cgo cannot call directly, so each
// command kind gets its own C shim.

static int display_string(xosd *osd, int line, const char *text) {
	return xosd_display(osd, line, XOSD_string, text);
}

static int display_percentage(xosd *osd, int line, int percent) {
	return xosd_display(osd, line, XOSD_percentage, percent);
}

static int display_slider(xosd *osd, int line, int percent) {
	return xosd_display(osd, line, XOSD_slider, percent);
}
*/
import "C"

import (
	"errors"
	"unsafe"
)

// xosdSession is the cgo-backed Session. It holds the one native pointer and
// nothing else; all state lives inside libxosd.
type xosdSession struct {
	ptr *C.xosd
}

// Create opens a new xosd window with the given number of lines. The caller
// must ensure lines >= 1; libxosd misbehaves on zero. On failure the error
// carries the library's last-error message verbatim.
func Create(lines int) (Session, error) {
	ptr := C.xosd_create(C.int(lines))
	if ptr == nil {
		return nil, errors.New(lastError())
	}
	return &xosdSession{ptr: ptr}, nil
}

// DefaultColour reads libxosd's osd_default_colour global. The second return
// is false when the pointer is unexpectedly NULL.
func DefaultColour() (string, bool) {
	if C.osd_default_colour == nil {
		return "", false
	}
	return C.GoString(C.osd_default_colour), true
}

// DefaultFont reads libxosd's osd_default_font global. The second return is
// false when the pointer is unexpectedly NULL.
func DefaultFont() (string, bool) {
	if C.osd_default_font == nil {
		return "", false
	}
	return C.GoString(C.osd_default_font), true
}

func lastError() string {
	if C.xosd_error == nil {
		return ""
	}
	return C.GoString(C.xosd_error)
}

func (s *xosdSession) DisplayString(line int, text string) int {
	ctext := C.CString(text)
	defer C.free(unsafe.Pointer(ctext))
	return int(C.display_string(s.ptr, C.int(line), ctext))
}

func (s *xosdSession) DisplayPercentage(line, percent int) int {
	return int(C.display_percentage(s.ptr, C.int(line), C.int(percent)))
}

func (s *xosdSession) DisplaySlider(line, percent int) int {
	return int(C.display_slider(s.ptr, C.int(line), C.int(percent)))
}

func (s *xosdSession) SetBarLength(length int) int {
	return int(C.xosd_set_bar_length(s.ptr, C.int(length)))
}

func (s *xosdSession) IsOnscreen() int {
	return int(C.xosd_is_onscreen(s.ptr))
}

func (s *xosdSession) WaitUntilNoDisplay() int {
	return int(C.xosd_wait_until_no_display(s.ptr))
}

func (s *xosdSession) Show() int {
	return int(C.xosd_show(s.ptr))
}

func (s *xosdSession) Hide() int {
	return int(C.xosd_hide(s.ptr))
}

func (s *xosdSession) SetPos(pos int) int {
	return int(C.xosd_set_pos(s.ptr, C.xosd_pos(pos)))
}

func (s *xosdSession) SetAlign(align int) int {
	return int(C.xosd_set_align(s.ptr, C.xosd_align(align)))
}

func (s *xosdSession) SetShadowOffset(px int) int {
	return int(C.xosd_set_shadow_offset(s.ptr, C.int(px)))
}

func (s *xosdSession) SetOutlineOffset(px int) int {
	return int(C.xosd_set_outline_offset(s.ptr, C.int(px)))
}

func (s *xosdSession) SetHorizontalOffset(px int) int {
	return int(C.xosd_set_horizontal_offset(s.ptr, C.int(px)))
}

func (s *xosdSession) SetVerticalOffset(px int) int {
	return int(C.xosd_set_vertical_offset(s.ptr, C.int(px)))
}

func (s *xosdSession) SetColour(name string) int {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return int(C.xosd_set_colour(s.ptr, cname))
}

func (s *xosdSession) SetShadowColour(name string) int {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return int(C.xosd_set_shadow_colour(s.ptr, cname))
}

func (s *xosdSession) SetOutlineColour(name string) int {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return int(C.xosd_set_outline_colour(s.ptr, cname))
}

func (s *xosdSession) SetFont(name string) int {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return int(C.xosd_set_font(s.ptr, cname))
}

func (s *xosdSession) SetTimeout(seconds int) int {
	return int(C.xosd_set_timeout(s.ptr, C.int(seconds)))
}

func (s *xosdSession) Colour() (red, green, blue int, rc int) {
	var r, g, b C.int
	rc = int(C.xosd_get_colour(s.ptr, &r, &g, &b))
	return int(r), int(g), int(b), rc
}

func (s *xosdSession) Scroll(lines int) int {
	return int(C.xosd_scroll(s.ptr, C.int(lines)))
}

func (s *xosdSession) NumberLines() int {
	return int(C.xosd_get_number_lines(s.ptr))
}

func (s *xosdSession) Uninit() int {
	rc := int(C.xosd_uninit(s.ptr))
	s.ptr = nil
	return rc
}

func (s *xosdSession) LastError() string {
	return lastError()
}
