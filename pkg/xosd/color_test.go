package xosd

import (
	"errors"
	"testing"
)

func TestScaleChannel(t *testing.T) {
	tests := []struct {
		name    string
		input   int
		want    uint8
		wantErr bool
	}{
		{"zero", 0, 0, false},
		{"full", 65535, 255, false},
		{"limegreen red channel", 50 * 257, 50, false},
		{"limegreen green channel", 205 * 257, 205, false},
		{"just under a step", 255, 0, false},
		{"one step", 256, 1, false},
		{"negative", -1, 0, true},
		{"past 16 bit", 65792, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := scaleChannel(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrNumericConversion) {
					t.Errorf("scaleChannel(%d) error = %v, want ErrNumericConversion", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("scaleChannel(%d): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("scaleChannel(%d) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestColorString(t *testing.T) {
	c := Color{R: 50, G: 205, B: 50}
	if got := c.String(); got != "#32cd32" {
		t.Errorf("Color.String() = %q, want %q", got, "#32cd32")
	}
}
