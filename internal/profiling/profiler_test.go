package profiling

import (
	"os"
	"path/filepath"
	"testing"
)

func TestProfilerDisabled(t *testing.T) {
	p := New("", "")
	if p.Enabled() {
		t.Error("Enabled with no paths configured")
	}
	if err := p.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := p.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
}

func TestProfilerWritesProfiles(t *testing.T) {
	dir := t.TempDir()
	cpuPath := filepath.Join(dir, "cpu.pprof")
	heapPath := filepath.Join(dir, "heap.pprof")

	p := New(cpuPath, heapPath)
	if !p.Enabled() {
		t.Fatal("Enabled = false with both paths configured")
	}
	if err := p.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := p.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}

	for _, path := range []string{cpuPath, heapPath} {
		info, err := os.Stat(path)
		if err != nil {
			t.Errorf("profile %s missing: %v", path, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("profile %s is empty", path)
		}
	}
}

func TestProfilerDoubleStart(t *testing.T) {
	p := New("", "")
	if err := p.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := p.Start(); err == nil {
		t.Error("second Start succeeded")
	}
	if err := p.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if err := p.Stop(); err == nil {
		t.Error("second Stop succeeded")
	}
}

func TestProfilerBadPath(t *testing.T) {
	p := New(filepath.Join(t.TempDir(), "missing", "cpu.pprof"), "")
	if err := p.Start(); err == nil {
		p.Stop()
		t.Error("Start with uncreatable path succeeded")
	}
}
