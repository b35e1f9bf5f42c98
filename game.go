package main

import (
	"image/color"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Game glues the controller, the slide builder and the transitioner to the
// ebiten loop. Everything runs on the single game goroutine: input is polled
// each frame, the fade advances one step per frame, and slide builds block
// the frame they happen on (an accepted latency cost).
type Game struct {
	ctrl    *Controller
	builder *SlideBuilder
	trans   *Transitioner
	pacer   *Pacer
	input   *InputHandler
	quit    *atomic.Bool
	logger  *zap.Logger

	screenW int
	screenH int
}

func NewGame(ctrl *Controller, builder *SlideBuilder, trans *Transitioner, pacer *Pacer, quit *atomic.Bool, logger *zap.Logger, screenW, screenH int) *Game {
	return &Game{
		ctrl:    ctrl,
		builder: builder,
		trans:   trans,
		pacer:   pacer,
		input:   NewInputHandler(),
		quit:    quit,
		logger:  logger,
		screenW: screenW,
		screenH: screenH,
	}
}

func (g *Game) Update() error {
	for _, ev := range g.input.Poll() {
		g.apply(ev)
	}

	if g.quit.Load() {
		// A running fade disposes the stack itself on cancellation; the
		// drain covers the no-fade case and is a no-op otherwise.
		g.trans.Step()
		g.trans.Drain()
		return ebiten.Termination
	}

	if g.trans.Step() {
		// Mid-fade: the timer waits until the transition settles.
		return nil
	}

	if g.pacer.Due() {
		g.apply(EventTick)
	}
	return nil
}

// apply runs one event through the controller and executes the resulting
// command.
func (g *Game) apply(ev Event) {
	switch g.ctrl.Handle(ev) {
	case CmdShow:
		g.showCurrent()
	case CmdRestart:
		g.showCurrent()
		g.pacer.Reset()
	case CmdRearm:
		g.pacer.Reset()
	}
}

// showCurrent builds the surface for the current index and starts its
// cross-fade. Build failures surface as an error card; the slideshow never
// stops for one bad file.
func (g *Game) showCurrent() {
	path := g.ctrl.Current()
	surface, build, err := g.builder.Build(path)
	if err != nil {
		g.logger.Warn("slide failed", zap.String("path", path), zap.Error(err))
		surface = g.builder.ErrorCard(path, err)
	}
	g.trans.Begin(surface)
	g.pacer.Advance(build)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	for _, s := range g.trans.Surfaces() {
		s.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}
