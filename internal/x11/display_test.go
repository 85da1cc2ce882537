package x11

import "testing"

func TestProbeUnreachableDisplay(t *testing.T) {
	// A display number this high will not have a socket on any sane host.
	if _, err := Probe(":4711"); err == nil {
		t.Error("Probe of unreachable display succeeded")
	}
}

func TestOffsetsFit(t *testing.T) {
	info := &DisplayInfo{Width: 1920, Height: 1080}

	tests := []struct {
		name string
		h, v int
		want bool
	}{
		{"origin", 0, 0, true},
		{"inside", 100, 200, true},
		{"last pixel", 1919, 1079, true},
		{"past right edge", 1920, 0, false},
		{"past bottom edge", 0, 1080, false},
		{"negative horizontal", -5, 0, false},
		{"negative vertical", 0, -5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := info.OffsetsFit(tt.h, tt.v); got != tt.want {
				t.Errorf("OffsetsFit(%d, %d) = %v, want %v", tt.h, tt.v, got, tt.want)
			}
		})
	}
}
