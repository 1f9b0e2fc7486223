package glimpse

import (
	"log/slog"
	"maps"
)

type MouseButton uint32

type KeysState struct {
	// the keys that are currently marked as "pressed"
	Pressed map[Key]bool

	// keys that where just pressed after the last call to nextTick(),
	// this includes key repeats of keys held down.
	JustPressed map[Key]bool

	// keys that were just released after the last call to nextTick()
	JustReleased map[Key]bool
}

func (k *KeysState) press(key Key) {
	slog.Debug("Key just pressed", slog.String("key", key.String()))

	setTrue(&k.Pressed, key)
	setTrue(&k.JustPressed, key)
}

func (k *KeysState) repeat(key Key) {
	setTrue(&k.JustPressed, key)
}

func (k *KeysState) release(key Key) {
	setFalse(&k.Pressed, key)
	setTrue(&k.JustReleased, key)
}

func (k *KeysState) nextTick() {
	clear(k.JustPressed)
	clear(k.JustReleased)
}

func (k KeysState) clone() KeysState {
	return KeysState{
		Pressed:      maps.Clone(k.Pressed),
		JustPressed:  maps.Clone(k.JustPressed),
		JustReleased: maps.Clone(k.JustReleased),
	}
}

func (k KeysState) IsPressed(key Key) bool {
	return k.Pressed[key]
}

func (k KeysState) IsJustPressed(key Key) bool {
	return k.JustPressed[key]
}

func (k KeysState) IsShiftPressed() bool {
	return k.Pressed[KeyLeftShift] || k.Pressed[KeyRightShift]
}

type MouseState struct {
	CursorX, CursorY float32

	// movement since last tick
	DeltaX, DeltaY float32

	Pressed map[MouseButton]bool

	// mouse buttons that were just clicked after the last call to nextTick()
	JustPressed map[MouseButton]bool

	// mouse buttons that were just released after the last call to nextTick()
	JustReleased map[MouseButton]bool

	hasPosition bool
}

func (m *MouseState) press(button MouseButton) {
	setTrue(&m.Pressed, button)
	setTrue(&m.JustPressed, button)
}

func (m *MouseState) release(button MouseButton) {
	setFalse(&m.Pressed, button)
	setTrue(&m.JustReleased, button)
}

func (m *MouseState) position(x, y float32) {
	if m.hasPosition {
		m.DeltaX += x - m.CursorX
		m.DeltaY += y - m.CursorY
	}

	m.CursorX = x
	m.CursorY = y
	m.hasPosition = true
}

func (m *MouseState) nextTick() {
	m.DeltaX = 0
	m.DeltaY = 0

	clear(m.JustPressed)
	clear(m.JustReleased)
}

func (m MouseState) clone() MouseState {
	m.Pressed = maps.Clone(m.Pressed)
	m.JustPressed = maps.Clone(m.JustPressed)
	m.JustReleased = maps.Clone(m.JustReleased)
	return m
}

type InputState struct {
	Keys  KeysState
	Mouse MouseState
}

func (s *InputState) nextTick() {
	s.Keys.nextTick()
	s.Mouse.nextTick()
}

// Clone returns a copy that is not affected by future events.
func (s *InputState) Clone() InputState {
	return InputState{
		Keys:  s.Keys.clone(),
		Mouse: s.Mouse.clone(),
	}
}

func setTrue[K comparable](m *map[K]bool, key K) {
	if *m == nil {
		*m = map[K]bool{}
	}

	(*m)[key] = true
}

func setFalse[K comparable](m *map[K]bool, key K) {
	if *m == nil {
		*m = map[K]bool{}
	}

	(*m)[key] = false
}
