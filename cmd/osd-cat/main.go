// Package main provides osd-cat, a pipe-to-screen tool built on the go-xosd
// bindings. It reads lines from stdin or a file and scrolls them across an
// on-screen-display window, or shows a single percentage bar or slider.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/opd-ai/go-xosd/internal/config"
	"github.com/opd-ai/go-xosd/internal/follow"
	"github.com/opd-ai/go-xosd/internal/profiling"
	"github.com/opd-ai/go-xosd/internal/x11"
	"github.com/opd-ai/go-xosd/pkg/xosd"
)

// Version is the current version of osd-cat.
// This default value can be overridden at build time using:
//
//	go build -ldflags "-X main.Version=x.y.z"
var Version = "0.1.0-dev"

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("c", "", "Path to YAML configuration file")
	lines := flag.Int("l", config.Default().Lines, "Number of lines the window can display")
	font := flag.String("f", "", "X logical font description")
	colorName := flag.String("color", "", "Text colour (X11 colour name)")
	shadowColor := flag.String("shadow-color", "", "Drop-shadow colour")
	outlineColor := flag.String("outline-color", "", "Outline colour")
	shadowOffset := flag.Int("s", 0, "Drop-shadow offset in pixels")
	outlineOffset := flag.Int("O", 0, "Outline width in pixels")
	indent := flag.Int("i", 0, "Horizontal offset in pixels")
	offset := flag.Int("o", 0, "Vertical offset in pixels")
	pos := flag.String("p", "", "Vertical position: top, middle, bottom")
	align := flag.String("A", "", "Horizontal alignment: left, center, right")
	delay := flag.Int("d", config.Default().Timeout, "Display timeout in seconds (negative disables)")
	barMode := flag.String("b", "", "Bar mode: percentage or slider")
	percent := flag.Int("P", 0, "Bar value for -b, 0-100")
	barLength := flag.Int("barlength", 0, "Fixed bar length as a percentage of the display, 0 = automatic")
	followMode := flag.Bool("follow", false, "Keep the input file open and display appended lines (requires a file argument)")
	dryRun := flag.Bool("dry-run", false, "Use the simulated backend instead of the native library")
	verbose := flag.Bool("v", false, "Log every native call at debug level")
	version := flag.Bool("version", false, "Print version and exit")
	cpuProfile := flag.String("cpuprofile", "", "Write CPU profile to file")
	memProfile := flag.String("memprofile", "", "Write heap profile to file")
	flag.Parse()

	if *version {
		fmt.Printf("osd-cat version %s\n", Version)
		return 0
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	profiler := profiling.New(*cpuProfile, *memProfile)
	if profiler.Enabled() {
		if err := profiler.Start(); err != nil {
			logger.Error("profiling failed to start", "error", err)
			return 1
		}
		defer func() {
			if err := profiler.Stop(); err != nil {
				logger.Warn("profiling failed to stop", "error", err)
			}
		}()
	}

	// File config first, explicitly set flags on top.
	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Error("cannot load config", "path", *configPath, "error", err)
			return 1
		}
		cfg = loaded
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "l":
			cfg.Lines = *lines
		case "f":
			cfg.Font = *font
		case "color":
			cfg.Color = *colorName
		case "shadow-color":
			cfg.ShadowColor = *shadowColor
		case "outline-color":
			cfg.OutlineColor = *outlineColor
		case "s":
			cfg.ShadowOffset = *shadowOffset
		case "O":
			cfg.OutlineOffset = *outlineOffset
		case "i":
			cfg.HorizontalOffset = *indent
		case "o":
			cfg.VerticalOffset = *offset
		case "p":
			cfg.VerticalAlign = *pos
		case "A":
			cfg.HorizontalAlign = *align
		case "d":
			cfg.Timeout = *delay
		case "barlength":
			cfg.BarLength = *barLength
		}
	})
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		return 1
	}

	if !*dryRun {
		info, err := x11.Probe("")
		if err != nil {
			logger.Error("X display unreachable", "error", err)
			return 1
		}
		logger.Debug("X display probed",
			"vendor", info.Vendor, "width", info.Width, "height", info.Height)
		if !info.OffsetsFit(cfg.HorizontalOffset, cfg.VerticalOffset) {
			logger.Warn("configured offsets fall outside the screen; the window may be invisible",
				"horizontal", cfg.HorizontalOffset, "vertical", cfg.VerticalOffset,
				"screen_width", info.Width, "screen_height", info.Height)
		}
	}

	opts, err := cfg.Options()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		return 1
	}
	if *verbose {
		opts.Logger = xosd.NewSlogAdapter(logger)
	}

	var osd *xosd.Osd
	if *dryRun {
		osd, err = xosd.NewSimulated(cfg.Lines, opts)
	} else {
		osd, err = xosd.NewWithOptions(cfg.Lines, opts)
	}
	if err != nil {
		logger.Error("cannot open OSD window", "error", err)
		return 1
	}
	defer osd.Close()

	if *barMode != "" {
		return runBar(osd, logger, *barMode, *percent)
	}
	if *followMode {
		return runFollow(osd, logger, flag.Arg(0))
	}
	return runCat(osd, logger, flag.Arg(0))
}

// runBar displays a single percentage bar or slider and blocks until the
// timeout clears it.
func runBar(osd *xosd.Osd, logger *slog.Logger, mode string, value int) int {
	var cmd xosd.Command
	var err error
	switch mode {
	case "percentage":
		cmd, err = xosd.Percentage(value)
	case "slider":
		cmd, err = xosd.Slider(value)
	default:
		logger.Error("bar mode must be percentage or slider", "mode", mode)
		return 1
	}
	if err != nil {
		logger.Error("invalid bar value", "value", value, "error", err)
		return 1
	}

	if _, err := osd.Display(0, cmd); err != nil {
		logger.Error("display failed", "error", err)
		return 1
	}
	if err := osd.WaitUntilNoDisplay(); err != nil {
		logger.Error("wait failed", "error", err)
		return 1
	}
	return 0
}

// runCat streams lines from a file (or stdin when path is empty) onto the
// window, scrolling once it is full, then lets the last screen age out.
func runCat(osd *xosd.Osd, logger *slog.Logger, path string) int {
	in := os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			logger.Error("cannot open input", "path", path, "error", err)
			return 1
		}
		defer f.Close()
		in = f
	}

	sc := newScroller(osd)
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if err := sc.push(scanner.Text()); err != nil {
			logger.Error("display failed", "error", err)
			return 1
		}
	}
	if err := scanner.Err(); err != nil && !errors.Is(err, io.EOF) {
		logger.Error("read failed", "error", err)
		return 1
	}

	if err := osd.WaitUntilNoDisplay(); err != nil {
		logger.Error("wait failed", "error", err)
		return 1
	}
	return 0
}

// runFollow tails path and displays appended lines until interrupted.
func runFollow(osd *xosd.Osd, logger *slog.Logger, path string) int {
	if path == "" {
		logger.Error("-follow requires a file argument")
		return 1
	}

	sc := newScroller(osd)
	follower, err := follow.New(path, func(lines []string) {
		for _, line := range lines {
			if err := sc.push(line); err != nil {
				logger.Error("display failed", "error", err)
			}
		}
	}, func(err error) {
		logger.Warn("follow error", "error", err)
	})
	if err != nil {
		logger.Error("cannot follow file", "path", path, "error", err)
		return 1
	}
	follower.Start()
	defer follower.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	s := <-sig
	logger.Info("shutting down", "signal", s.String())
	return 0
}

// scroller places each new line on the next free window line and scrolls
// by one once the window is full.
type scroller struct {
	osd  *xosd.Osd
	max  int
	used int
}

func newScroller(osd *xosd.Osd) *scroller {
	max, err := osd.MaxLines()
	if err != nil {
		max = 1
	}
	return &scroller{osd: osd, max: max}
}

func (s *scroller) push(text string) error {
	if s.used == s.max {
		if err := s.osd.Scroll(1); err != nil {
			return err
		}
		s.used--
	}
	if _, err := s.osd.Display(s.used, xosd.Text(text)); err != nil {
		return err
	}
	s.used++
	return nil
}
