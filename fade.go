package main

import (
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

const (
	// At most previous, current and next are ever alive.
	maxLiveSurfaces = 3

	fadeSteps    = 30
	fadeDuration = 600 * time.Millisecond

	// Dynamic pacing: target apparent cadence and the floor the hold time
	// never drops below even when slide building is slow.
	dynamicTarget  = 3 * time.Second
	minDynamicHold = 250 * time.Millisecond
)

// Clock abstracts time so transitions and pacing run in tests without real
// delays.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Surface is one live slide layer: an opacity, a draw and a dispose.
// slideSurface implements it for the ebiten shell; tests use doubles.
type Surface interface {
	SetOpacity(v float64)
	Opacity() float64
	Draw(screen *ebiten.Image)
	Dispose()
}

// SurfaceStack is the bounded ordered set of live surfaces, oldest first.
type SurfaceStack struct {
	surfaces []Surface
}

func NewSurfaceStack() *SurfaceStack {
	return &SurfaceStack{surfaces: make([]Surface, 0, maxLiveSurfaces)}
}

func (s *SurfaceStack) Len() int            { return len(s.surfaces) }
func (s *SurfaceStack) Oldest() Surface     { return s.surfaces[0] }
func (s *SurfaceStack) Newest() Surface     { return s.surfaces[len(s.surfaces)-1] }
func (s *SurfaceStack) Surfaces() []Surface { return s.surfaces }

func (s *SurfaceStack) Push(sf Surface) {
	s.surfaces = append(s.surfaces, sf)
}

// EvictOldest disposes the front surface and removes it.
func (s *SurfaceStack) EvictOldest() {
	if len(s.surfaces) == 0 {
		return
	}
	s.surfaces[0].Dispose()
	s.surfaces = s.surfaces[1:]
}

// DisposeAll drains the stack. Safe to call more than once.
func (s *SurfaceStack) DisposeAll() {
	for _, sf := range s.surfaces {
		sf.Dispose()
	}
	s.surfaces = s.surfaces[:0]
}

// Transitioner runs the cross-fade between consecutive slides as a fixed-step
// animation advanced once per frame from the single game loop. At most one
// surface fades in and one fades out at a time; the oldest surface is evicted
// once its fade-out completes. Every step polls the shared quit flag, so
// cancellation snaps opacities to their final values and drains the stack
// with no surface left undisposed.
type Transitioner struct {
	stack  *SurfaceStack
	steps  int
	dur    time.Duration
	clock  Clock
	quit   *atomic.Bool
	logger *zap.Logger

	fadingIn  Surface
	fadingOut Surface
	step      int
	stepAt    time.Time
	active    bool
}

func NewTransitioner(stack *SurfaceStack, steps int, dur time.Duration, clock Clock, quit *atomic.Bool, logger *zap.Logger) *Transitioner {
	return &Transitioner{
		stack:  stack,
		steps:  steps,
		dur:    dur,
		clock:  clock,
		quit:   quit,
		logger: logger,
	}
}

func (t *Transitioner) Active() bool          { return t.active }
func (t *Transitioner) Surfaces() []Surface   { return t.stack.Surfaces() }
func (t *Transitioner) LiveCount() int        { return t.stack.Len() }
func (t *Transitioner) Drain()                { t.stack.DisposeAll() }
func (t *Transitioner) stepInterval() time.Duration {
	return t.dur / time.Duration(t.steps)
}

// Begin pushes the freshly built surface and starts the cross-fade. When the
// stack is full the oldest surface starts fading out alongside the new
// surface's fade-in. A still-running fade (manual navigation mid-transition)
// is snapped to completion first, so the stack bound holds.
func (t *Transitioner) Begin(next Surface) {
	if t.active {
		t.snap()
	}
	next.SetOpacity(0)
	t.stack.Push(next)
	t.fadingIn = next
	t.fadingOut = nil
	if t.stack.Len() >= maxLiveSurfaces {
		t.fadingOut = t.stack.Oldest()
	}
	t.step = 0
	t.active = true
	t.stepAt = t.clock.Now().Add(t.stepInterval())
}

// Step advances the fade by at most one step and reports whether a
// transition is still running. On cancellation it finishes immediately and
// disposes every live surface.
func (t *Transitioner) Step() bool {
	if !t.active {
		return false
	}
	if t.quit.Load() {
		t.snap()
		t.stack.DisposeAll()
		t.logger.Debug("transition cancelled")
		return false
	}
	if t.clock.Now().Before(t.stepAt) {
		return true
	}

	t.step++
	if t.step >= t.steps {
		t.snap()
		return false
	}

	frac := float64(t.step) / float64(t.steps)
	t.fadingIn.SetOpacity(frac)
	if t.fadingOut != nil {
		t.fadingOut.SetOpacity(1 - frac)
	}
	t.stepAt = t.stepAt.Add(t.stepInterval())
	return true
}

// snap jumps both fades to their final values and evicts the faded-out
// surface. Used at normal completion and on cancellation.
func (t *Transitioner) snap() {
	if t.fadingIn != nil {
		t.fadingIn.SetOpacity(1)
		t.fadingIn = nil
	}
	if t.fadingOut != nil {
		t.fadingOut.SetOpacity(0)
		t.stack.EvictOldest()
		t.fadingOut = nil
	}
	t.active = false
}

// Pacer decides when the next slide is due. With a fixed interval the answer
// is simply "one interval after the last advance". In dynamic mode
// (interval 0) the visible hold shrinks by however long building the next
// surface took, so slow image decoding does not stretch the apparent cadence.
type Pacer struct {
	clock    Clock
	interval time.Duration
	nextAt   time.Time
}

// NewPacer returns a pacer that is due immediately, so the first slide goes
// up on the first frame.
func NewPacer(clock Clock, interval time.Duration) *Pacer {
	p := &Pacer{clock: clock, interval: interval}
	p.nextAt = clock.Now()
	return p
}

func (p *Pacer) hold(build time.Duration) time.Duration {
	if p.interval > 0 {
		return p.interval
	}
	h := dynamicTarget - build
	if h < minDynamicHold {
		h = minDynamicHold
	}
	return h
}

// Due reports whether the next slide should start.
func (p *Pacer) Due() bool {
	return !p.clock.Now().Before(p.nextAt)
}

// Reset restarts a full hold, used after manual navigation so the next
// automatic advance is a whole interval away.
func (p *Pacer) Reset() {
	p.nextAt = p.clock.Now().Add(p.hold(0))
}

// Advance schedules the next slide, accounting for the measured build time
// of the surface that just went up.
func (p *Pacer) Advance(build time.Duration) {
	p.nextAt = p.clock.Now().Add(p.hold(build))
}
