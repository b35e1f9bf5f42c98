package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// binding maps a controller event to the keys that trigger it.
type binding struct {
	event Event
	keys  []ebiten.Key
}

var defaultBindings = []binding{
	{EventEscape, []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}},
	{EventPause, []ebiten.Key{ebiten.KeySpace}},
	{EventPrevious, []ebiten.Key{ebiten.KeyArrowLeft}},
	{EventNext, []ebiten.Key{ebiten.KeyArrowRight}},
}

// InputHandler translates per-frame keyboard state into controller events.
type InputHandler struct {
	bindings []binding
}

func NewInputHandler() *InputHandler {
	return &InputHandler{bindings: defaultBindings}
}

// Poll returns the events for keys that went down this frame, in binding
// order so Escape always comes first.
func (h *InputHandler) Poll() []Event {
	var events []Event
	for _, b := range h.bindings {
		for _, k := range b.keys {
			if inpututil.IsKeyJustPressed(k) {
				events = append(events, b.event)
				break
			}
		}
	}
	return events
}
