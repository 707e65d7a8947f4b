package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Move is one grid step requested from the keyboard.
type Move struct {
	DX, DY int
}

// InputAdapter collects movement key presses from a GLFW window. Each
// press or key repeat of an arrow or WASD key queues one step; the game
// loop drains them once per frame with Moves.
type InputAdapter struct {
	window *glfw.Window
	moves  []Move
	quit   bool
	dump   bool
}

// NewInputAdapter registers the key callback on window.
func NewInputAdapter(window *glfw.Window) *InputAdapter {
	adapter := &InputAdapter{window: window}
	window.SetKeyCallback(adapter.keyCallback)
	return adapter
}

// Moves returns the steps queued since the last call and clears them.
func (a *InputAdapter) Moves() []Move {
	m := a.moves
	a.moves = nil
	return m
}

// QuitRequested reports whether Escape was pressed.
func (a *InputAdapter) QuitRequested() bool {
	return a.quit
}

// DumpRequested reports whether F12 was pressed since the last call.
func (a *InputAdapter) DumpRequested() bool {
	d := a.dump
	a.dump = false
	return d
}

func (a *InputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press && action != glfw.Repeat {
		return
	}

	switch key {
	case glfw.KeyEscape:
		a.quit = true
		w.SetShouldClose(true)
		return
	case glfw.KeyF12:
		if action == glfw.Press {
			a.dump = true
		}
		return
	}

	if m, ok := keyMove(key); ok {
		a.moves = append(a.moves, m)
	}
}

// keyMove maps arrow and WASD keys to grid steps. Y grows downward.
func keyMove(key glfw.Key) (Move, bool) {
	switch key {
	case glfw.KeyLeft, glfw.KeyA:
		return Move{DX: -1}, true
	case glfw.KeyRight, glfw.KeyD:
		return Move{DX: 1}, true
	case glfw.KeyUp, glfw.KeyW:
		return Move{DY: -1}, true
	case glfw.KeyDown, glfw.KeyS:
		return Move{DY: 1}, true
	default:
		return Move{}, false
	}
}
