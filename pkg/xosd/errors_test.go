package xosd

import (
	"errors"
	"testing"
)

func TestNativeErrorMessage(t *testing.T) {
	err := &NativeError{Op: "xosd_display", Message: "Line out of range"}
	want := "xosd: xosd_display: Line out of range"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	bare := &NativeError{Op: "xosd_scroll"}
	want = "xosd: xosd_scroll failed"
	if got := bare.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestNativeErrorAs(t *testing.T) {
	var err error = &NativeError{Op: "xosd_show", Message: "boom"}
	wrapped := errors.Join(err)

	var nerr *NativeError
	if !errors.As(wrapped, &nerr) {
		t.Fatal("errors.As failed to unwrap *NativeError")
	}
	if nerr.Op != "xosd_show" {
		t.Errorf("Op = %q, want %q", nerr.Op, "xosd_show")
	}
}

func TestCheckCString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"plain", "LawnGreen", false},
		{"empty", "", false},
		{"utf8", "köln", false},
		{"leading NUL", "\x00x", true},
		{"embedded NUL", "a\x00b", true},
		{"trailing NUL", "ab\x00", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkCString(tt.input)
			if tt.wantErr && !errors.Is(err, ErrStringConversion) {
				t.Errorf("checkCString(%q) error = %v, want ErrStringConversion", tt.input, err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("checkCString(%q) unexpected error: %v", tt.input, err)
			}
		})
	}
}
