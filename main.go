package main

import (
	"fmt"
	"image"
	"math/rand"
	"os"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kbinani/screenshot"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// monitorCount never reports less than one so --screen 0 stays valid on
// headless setups; the bounds fall back the same way.
func monitorCount() int {
	n := screenshot.NumActiveDisplays()
	if n < 1 {
		return 1
	}
	return n
}

func displayBounds(idx int) image.Rectangle {
	if screenshot.NumActiveDisplays() < 1 {
		return image.Rect(0, 0, 1920, 1080)
	}
	return screenshot.GetDisplayBounds(idx)
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger init failed:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	settings, err := ParseArgs(os.Args[1:], monitorCount())
	if err != nil {
		if err == ErrHelp {
			fmt.Print(usageText)
			return
		}
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "run with --help for usage")
		return
	}

	fs := afero.NewOsFs()
	paths := NewScanner(fs, logger, settings).Collect(settings.Patterns)
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, ErrNoFiles)
		return
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	paths = PlaybackOrdering(settings, rng).Apply(paths)

	bounds := displayBounds(settings.Screen)
	logger.Info("starting slideshow",
		zap.Int("files", len(paths)),
		zap.Int("screen", settings.Screen),
		zap.Int("width", bounds.Dx()),
		zap.Int("height", bounds.Dy()),
		zap.Bool("dynamic", settings.DynamicInterval()))

	if err := InitGraphics(); err != nil {
		logger.Fatal("font init failed", zap.Error(err))
	}

	quit := &atomic.Bool{}
	clock := systemClock{}
	ctrl := NewController(paths, quit, logger)
	builder := NewSlideBuilder(fs, logger, bounds.Dx(), bounds.Dy(), clock)
	trans := NewTransitioner(NewSurfaceStack(), fadeSteps, fadeDuration, clock, quit, logger)
	pacer := NewPacer(clock, settings.Interval())
	game := NewGame(ctrl, builder, trans, pacer, quit, logger, bounds.Dx(), bounds.Dy())

	ebiten.SetWindowTitle("slideview")
	ebiten.SetWindowPosition(bounds.Min.X, bounds.Min.Y)
	ebiten.SetWindowSize(bounds.Dx(), bounds.Dy())
	ebiten.SetWindowDecorated(false)
	ebiten.SetFullscreen(true)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("game loop failed", zap.Error(err))
	}
}
