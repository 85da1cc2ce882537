package xosd

import (
	"errors"
	"testing"
)

func TestPercentageBounds(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		wantErr bool
	}{
		{"zero", 0, false},
		{"one", 1, false},
		{"mid", 42, false},
		{"hundred", 100, false},
		{"over", 101, true},
		{"way over", 1000, true},
		{"negative", -1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := Percentage(tt.value)
			if tt.wantErr {
				if !errors.Is(err, ErrOutOfRangePercentage) {
					t.Errorf("Percentage(%d) error = %v, want ErrOutOfRangePercentage", tt.value, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Percentage(%d): %v", tt.value, err)
			}
			if cmd.Kind() != KindPercentage {
				t.Errorf("Kind = %v, want KindPercentage", cmd.Kind())
			}
		})
	}
}

func TestSliderBounds(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		wantErr bool
	}{
		{"zero", 0, false},
		{"hundred", 100, false},
		{"over", 101, true},
		{"negative", -5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := Slider(tt.value)
			if tt.wantErr {
				if !errors.Is(err, ErrOutOfRangePercentage) {
					t.Errorf("Slider(%d) error = %v, want ErrOutOfRangePercentage", tt.value, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Slider(%d): %v", tt.value, err)
			}
			if cmd.Kind() != KindSlider {
				t.Errorf("Kind = %v, want KindSlider", cmd.Kind())
			}
		})
	}
}

func TestTextCommand(t *testing.T) {
	cmd := Text("hello")
	if cmd.Kind() != KindText {
		t.Errorf("Kind = %v, want KindText", cmd.Kind())
	}
	if got := cmd.String(); got != `text("hello")` {
		t.Errorf("String = %q, want %q", got, `text("hello")`)
	}
}

func TestCommandKindString(t *testing.T) {
	tests := []struct {
		kind CommandKind
		want string
	}{
		{KindText, "text"},
		{KindPercentage, "percentage"},
		{KindSlider, "slider"},
		{CommandKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("CommandKind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}
