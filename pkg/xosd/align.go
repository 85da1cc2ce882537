package xosd

import (
	"fmt"

	"github.com/opd-ai/go-xosd/internal/native"
)

// VerticalAlign places the window at the top, middle, or bottom of the
// screen.
type VerticalAlign int

const (
	Top VerticalAlign = iota
	Middle
	Bottom
)

// String returns a human-readable name for the alignment.
func (a VerticalAlign) String() string {
	switch a {
	case Top:
		return "top"
	case Middle:
		return "middle"
	case Bottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// nativeCode maps the alignment to the xosd_pos enum value.
func (a VerticalAlign) nativeCode() (int, error) {
	switch a {
	case Top:
		return native.PosTop, nil
	case Middle:
		return native.PosMiddle, nil
	case Bottom:
		return native.PosBottom, nil
	default:
		return 0, fmt.Errorf("xosd: invalid vertical alignment %d", int(a))
	}
}

// ParseVerticalAlign converts a configuration string ("top", "middle",
// "center", "bottom") to a VerticalAlign.
func ParseVerticalAlign(s string) (VerticalAlign, error) {
	switch s {
	case "top":
		return Top, nil
	case "middle", "center":
		return Middle, nil
	case "bottom":
		return Bottom, nil
	default:
		return 0, fmt.Errorf("xosd: unknown vertical alignment %q", s)
	}
}

// HorizontalAlign places the window at the left, center, or right of the
// screen.
type HorizontalAlign int

const (
	Left HorizontalAlign = iota
	Center
	Right
)

// String returns a human-readable name for the alignment.
func (a HorizontalAlign) String() string {
	switch a {
	case Left:
		return "left"
	case Center:
		return "center"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// nativeCode maps the alignment to the xosd_align enum value.
func (a HorizontalAlign) nativeCode() (int, error) {
	switch a {
	case Left:
		return native.AlignLeft, nil
	case Center:
		return native.AlignCenter, nil
	case Right:
		return native.AlignRight, nil
	default:
		return 0, fmt.Errorf("xosd: invalid horizontal alignment %d", int(a))
	}
}

// ParseHorizontalAlign converts a configuration string ("left", "center",
// "right") to a HorizontalAlign.
func ParseHorizontalAlign(s string) (HorizontalAlign, error) {
	switch s {
	case "left":
		return Left, nil
	case "center", "centre":
		return Center, nil
	case "right":
		return Right, nil
	default:
		return 0, fmt.Errorf("xosd: unknown horizontal alignment %q", s)
	}
}
