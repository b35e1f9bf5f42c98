package main

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// State is the controller's position in its lifecycle.
type State int

const (
	StateIdle State = iota
	StateDisplaying
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateDisplaying:
		return "Displaying"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// Event is one input delivered to the controller: a timer tick or a key.
type Event int

const (
	EventTick Event = iota
	EventPause
	EventPrevious
	EventNext
	EventEscape
)

// Command tells the shell what to do after an event was handled.
type Command int

const (
	CmdNone Command = iota
	// CmdShow means the slide at the current index should be built and
	// transitioned in.
	CmdShow
	// CmdRestart is CmdShow plus a full interval restart, so the next
	// automatic tick is a whole interval away from the manual navigation.
	CmdRestart
	// CmdRearm restarts the interval without changing the slide, used when
	// resuming from pause.
	CmdRearm
	CmdQuit
)

// Controller owns the current slide index and the pause state. It is driven
// entirely by Handle, so it knows nothing about ebiten, timers or keyboards
// and can be tested with plain events.
type Controller struct {
	paths  []string
	idx    int
	state  State
	quit   *atomic.Bool
	logger *zap.Logger
}

func NewController(paths []string, quit *atomic.Bool, logger *zap.Logger) *Controller {
	return &Controller{
		paths:  paths,
		state:  StateIdle,
		quit:   quit,
		logger: logger,
	}
}

func (c *Controller) State() State    { return c.state }
func (c *Controller) Index() int      { return c.idx }
func (c *Controller) Current() string { return c.paths[c.idx] }
func (c *Controller) Count() int      { return len(c.paths) }

// Handle applies one event to the state machine and returns the command the
// shell should execute. Escape works in every state; Pause toggles the timer
// without touching the index; Previous/Next move exactly one list position
// with wrap-around.
func (c *Controller) Handle(ev Event) Command {
	switch ev {
	case EventEscape:
		// Set once, never reset. Every loop polls this to stop promptly.
		c.quit.Store(true)
		c.logger.Info("exit requested", zap.Int("index", c.idx))
		return CmdQuit

	case EventPause:
		switch c.state {
		case StateDisplaying:
			c.state = StatePaused
			c.logger.Debug("paused", zap.Int("index", c.idx))
		case StatePaused:
			c.state = StateDisplaying
			c.logger.Debug("resumed", zap.Int("index", c.idx))
			return CmdRearm
		}
		return CmdNone

	case EventTick:
		switch c.state {
		case StateIdle:
			// First shown frame: render the first image without advancing.
			c.state = StateDisplaying
			return CmdShow
		case StateDisplaying:
			c.advance(1)
			return CmdShow
		}
		return CmdNone

	case EventNext:
		if c.state != StateDisplaying {
			return CmdNone
		}
		c.advance(1)
		return CmdRestart

	case EventPrevious:
		if c.state != StateDisplaying {
			return CmdNone
		}
		c.advance(-1)
		return CmdRestart
	}
	return CmdNone
}

func (c *Controller) advance(delta int) {
	n := len(c.paths)
	c.idx = ((c.idx+delta)%n + n) % n
}
