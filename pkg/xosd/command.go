package xosd

import "fmt"

// CommandKind identifies the variant held by a Command.
type CommandKind int

const (
	// KindText displays a line of text.
	KindText CommandKind = iota
	// KindPercentage displays a filled percentage bar.
	KindPercentage
	// KindSlider displays a slider mark.
	KindSlider
)

// String returns a human-readable name for the command kind.
func (k CommandKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindPercentage:
		return "percentage"
	case KindSlider:
		return "slider"
	default:
		return "unknown"
	}
}

// Command is one displayable item: a line of text, a percentage bar, or a
// slider. Construct values through Text, Percentage, or Slider so numeric
// commands are range-checked before they ever reach the native library.
type Command struct {
	kind  CommandKind
	text  string
	value int
}

// Text builds a text command. Any string is accepted here; strings that
// cannot cross into the native library (embedded NUL) are rejected by
// Osd.Display with ErrStringConversion.
func Text(s string) Command {
	return Command{kind: KindText, text: s}
}

// Percentage builds a percentage-bar command. Values outside [0, 100] are
// rejected with ErrOutOfRangePercentage.
func Percentage(value int) (Command, error) {
	if value < 0 || value > 100 {
		return Command{}, fmt.Errorf("%w: got %d", ErrOutOfRangePercentage, value)
	}
	return Command{kind: KindPercentage, value: value}, nil
}

// Slider builds a slider command. Values outside [0, 100] are rejected with
// ErrOutOfRangePercentage.
func Slider(value int) (Command, error) {
	if value < 0 || value > 100 {
		return Command{}, fmt.Errorf("%w: got %d", ErrOutOfRangePercentage, value)
	}
	return Command{kind: KindSlider, value: value}, nil
}

// Kind returns the command's variant.
func (c Command) Kind() CommandKind {
	return c.kind
}

// String describes the command for logs and error messages.
func (c Command) String() string {
	switch c.kind {
	case KindText:
		return fmt.Sprintf("text(%q)", c.text)
	default:
		return fmt.Sprintf("%s(%d)", c.kind, c.value)
	}
}
