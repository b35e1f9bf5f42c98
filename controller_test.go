package main

import (
	"sync/atomic"
	"testing"

	"go.uber.org/zap"
)

func newTestController(paths ...string) (*Controller, *atomic.Bool) {
	quit := &atomic.Bool{}
	return NewController(paths, quit, zap.NewNop()), quit
}

func TestControllerFirstTick(t *testing.T) {
	c, _ := newTestController("a.jpg", "b.jpg")

	if c.State() != StateIdle {
		t.Fatalf("initial state = %v, want Idle", c.State())
	}
	if cmd := c.Handle(EventTick); cmd != CmdShow {
		t.Errorf("first tick command = %v, want CmdShow", cmd)
	}
	if c.State() != StateDisplaying {
		t.Errorf("state = %v, want Displaying", c.State())
	}
	if c.Index() != 0 {
		t.Errorf("first tick must not advance, index = %d", c.Index())
	}
}

func TestControllerTickAdvances(t *testing.T) {
	c, _ := newTestController("a.jpg", "b.jpg", "c.jpg")
	c.Handle(EventTick) // Idle -> Displaying

	steps := []int{1, 2, 0, 1} // wraps after the last slide
	for i, want := range steps {
		if cmd := c.Handle(EventTick); cmd != CmdShow {
			t.Fatalf("tick %d command = %v, want CmdShow", i, cmd)
		}
		if c.Index() != want {
			t.Errorf("tick %d index = %d, want %d", i, c.Index(), want)
		}
	}
}

func TestControllerPauseToggle(t *testing.T) {
	c, _ := newTestController("a.jpg", "b.jpg")
	c.Handle(EventTick)

	c.Handle(EventPause)
	if c.State() != StatePaused {
		t.Fatalf("state = %v, want Paused", c.State())
	}
	if c.Handle(EventTick) != CmdNone {
		t.Error("ticks while paused must be ignored")
	}
	if c.Index() != 0 {
		t.Errorf("pause changed the index to %d", c.Index())
	}

	if cmd := c.Handle(EventPause); cmd != CmdRearm {
		t.Errorf("resume command = %v, want CmdRearm", cmd)
	}
	if c.State() != StateDisplaying {
		t.Fatalf("state after resume = %v, want Displaying", c.State())
	}
}

func TestControllerManualNavigation(t *testing.T) {
	c, _ := newTestController("a.jpg", "b.jpg", "c.jpg")
	c.Handle(EventTick)

	if cmd := c.Handle(EventNext); cmd != CmdRestart {
		t.Errorf("next command = %v, want CmdRestart", cmd)
	}
	if c.Index() != 1 {
		t.Errorf("index after next = %d, want 1", c.Index())
	}

	// Previous retreats exactly one logical step.
	if cmd := c.Handle(EventPrevious); cmd != CmdRestart {
		t.Errorf("previous command = %v, want CmdRestart", cmd)
	}
	if c.Index() != 0 {
		t.Errorf("index after previous = %d, want 0", c.Index())
	}

	// And wraps to the end from the start.
	c.Handle(EventPrevious)
	if c.Index() != 2 {
		t.Errorf("index after wrap-around previous = %d, want 2", c.Index())
	}
}

func TestControllerNavigationIgnoredWhilePaused(t *testing.T) {
	c, _ := newTestController("a.jpg", "b.jpg")
	c.Handle(EventTick)
	c.Handle(EventPause)

	if c.Handle(EventNext) != CmdNone || c.Handle(EventPrevious) != CmdNone {
		t.Error("navigation while paused must be ignored")
	}
	if c.Index() != 0 {
		t.Errorf("index = %d, want 0", c.Index())
	}
}

func TestControllerEscape(t *testing.T) {
	c, quit := newTestController("a.jpg")
	c.Handle(EventTick)

	if cmd := c.Handle(EventEscape); cmd != CmdQuit {
		t.Errorf("escape command = %v, want CmdQuit", cmd)
	}
	if !quit.Load() {
		t.Error("escape must set the shared quit flag")
	}

	// Escape works from any state, including before the first slide.
	c2, quit2 := newTestController("a.jpg")
	c2.Handle(EventEscape)
	if !quit2.Load() {
		t.Error("escape from Idle must set the quit flag")
	}
}
