package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestIsKeyPressedOnlyThisFrame(t *testing.T) {
	in := New()
	in.events = append(in.events, Event{Type: EventKeyDown, Key: sdl.SCANCODE_ESCAPE})
	in.held[sdl.SCANCODE_ESCAPE] = true

	if !in.IsKeyPressed(sdl.SCANCODE_ESCAPE) {
		t.Error("IsKeyPressed(ESC) = false, want true on the press frame")
	}

	// Subsequent frames see the key as held but not pressed.
	in.events = in.events[:0]
	if in.IsKeyPressed(sdl.SCANCODE_ESCAPE) {
		t.Error("IsKeyPressed(ESC) = true after the press frame, want false")
	}
	if !in.IsKeyDown(sdl.SCANCODE_ESCAPE) {
		t.Error("IsKeyDown(ESC) = false while held, want true")
	}
}

func TestIsKeyPressedIgnoresOtherKeys(t *testing.T) {
	in := New()
	in.events = append(in.events, Event{Type: EventKeyDown, Key: sdl.SCANCODE_F12})

	if in.IsKeyPressed(sdl.SCANCODE_ESCAPE) {
		t.Error("IsKeyPressed(ESC) = true, want false when only F12 fired")
	}
	if !in.IsKeyPressed(sdl.SCANCODE_F12) {
		t.Error("IsKeyPressed(F12) = false, want true")
	}
}

func TestIsKeyPressedIgnoresKeyUpEvents(t *testing.T) {
	in := New()
	in.events = append(in.events, Event{Type: EventKeyUp, Key: sdl.SCANCODE_ESCAPE})

	if in.IsKeyPressed(sdl.SCANCODE_ESCAPE) {
		t.Error("IsKeyPressed(ESC) = true for a key-up event, want false")
	}
}
