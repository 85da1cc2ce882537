// Package profiling wraps runtime/pprof for the osd-cat CLI, writing an
// optional CPU profile over the program's lifetime and a heap snapshot at
// exit.
package profiling

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"sync"
)

// Profiler writes pprof output to the configured paths. Empty paths disable
// the corresponding profile.
type Profiler struct {
	cpuPath  string
	heapPath string

	mu      sync.Mutex
	cpuFile *os.File
	active  bool
}

// New creates a Profiler. Either path may be empty.
func New(cpuPath, heapPath string) *Profiler {
	return &Profiler{cpuPath: cpuPath, heapPath: heapPath}
}

// Enabled reports whether any profile output is configured.
func (p *Profiler) Enabled() bool {
	return p.cpuPath != "" || p.heapPath != ""
}

// Start begins CPU profiling when a CPU path is configured.
func (p *Profiler) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.active {
		return errors.New("profiling: already started")
	}
	if p.cpuPath == "" {
		p.active = true
		return nil
	}
	f, err := os.Create(p.cpuPath)
	if err != nil {
		return fmt.Errorf("profiling: create cpu profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return fmt.Errorf("profiling: start cpu profile: %w", err)
	}
	p.cpuFile = f
	p.active = true
	return nil
}

// Stop ends CPU profiling and writes the heap snapshot when configured.
func (p *Profiler) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.active {
		return errors.New("profiling: not started")
	}
	p.active = false

	var errs []error
	if p.cpuFile != nil {
		pprof.StopCPUProfile()
		if err := p.cpuFile.Close(); err != nil {
			errs = append(errs, fmt.Errorf("profiling: close cpu profile: %w", err))
		}
		p.cpuFile = nil
	}
	if p.heapPath != "" {
		if err := writeHeapProfile(p.heapPath); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// writeHeapProfile collects garbage first so the snapshot reflects live
// allocations only.
func writeHeapProfile(path string) error {
	runtime.GC()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("profiling: create heap profile: %w", err)
	}
	defer f.Close()

	if err := pprof.WriteHeapProfile(f); err != nil {
		return fmt.Errorf("profiling: write heap profile: %w", err)
	}
	return nil
}
