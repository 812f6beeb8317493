package winsys

import "time"

// EventType identifies the kind of a windowing-system event.
type EventType uint8

const (
	// EventNone is the zero event type.
	EventNone EventType = iota
	// KeyPress is a key going down. Only KeyPress events carry text
	// through the input-method lookup path.
	KeyPress
	// KeyRelease is a key going up.
	KeyRelease
	// FocusIn is delivered when a window gains input focus.
	FocusIn
	// FocusOut is delivered when a window loses input focus.
	FocusOut
	// Expose is delivered when a window region needs repainting.
	Expose
	// ClientMessage is an application-defined message event.
	ClientMessage
)

// String returns a human-readable name for the event type.
func (t EventType) String() string {
	switch t {
	case EventNone:
		return "None"
	case KeyPress:
		return "KeyPress"
	case KeyRelease:
		return "KeyRelease"
	case FocusIn:
		return "FocusIn"
	case FocusOut:
		return "FocusOut"
	case Expose:
		return "Expose"
	case ClientMessage:
		return "ClientMessage"
	default:
		return "Unknown"
	}
}

// Keycode is a backend-specific key number.
type Keycode uint32

// KeycodeNone is the reserved "no real key" code. Synthetic events fabricated
// by the shim carry this code so they can be told apart from genuine presses.
const KeycodeNone Keycode = 0

// Window identifies a window on the backend.
type Window uint64

// WindowNone is the zero window.
const WindowNone Window = 0

// Modifiers is a bitmask of modifier keys held during an event.
type Modifiers uint16

const (
	// ModShift is the Shift modifier.
	ModShift Modifiers = 1 << iota
	// ModCtrl is the Control modifier.
	ModCtrl
	// ModAlt is the Alt modifier.
	ModAlt
	// ModMeta is the Meta/Super modifier.
	ModMeta

	// ModNone is no modifiers.
	ModNone Modifiers = 0
)

// HasShift returns true if Shift is held.
func (m Modifiers) HasShift() bool { return m&ModShift != 0 }

// HasCtrl returns true if Control is held.
func (m Modifiers) HasCtrl() bool { return m&ModCtrl != 0 }

// HasAlt returns true if Alt is held.
func (m Modifiers) HasAlt() bool { return m&ModAlt != 0 }

// HasMeta returns true if Meta is held.
func (m Modifiers) HasMeta() bool { return m&ModMeta != 0 }

// Event is a single windowing-system event record.
//
// Event has value semantics. The retrieval primitive populates a
// caller-supplied Event in place, mirroring how the modeled systems fill a
// caller-owned record rather than allocating one.
type Event struct {
	// Type is the kind of event.
	Type EventType

	// Window is the window the event was delivered to.
	Window Window

	// Keycode is the backend key number for key events.
	Keycode Keycode

	// Rune is the character the key produces before input-method
	// composition, if the backend knows it. Zero for non-character keys.
	Rune rune

	// Modifiers holds the modifier state at event time.
	Modifiers Modifiers

	// Time is when the event occurred.
	Time time.Time
}

// IsKeyPress returns true for key-press events.
func (e Event) IsKeyPress() bool {
	return e.Type == KeyPress
}

// IsSynthetic returns true for the key-press shape the shim fabricates:
// a KeyPress carrying the reserved "no real key" code.
func (e Event) IsSynthetic() bool {
	return e.Type == KeyPress && e.Keycode == KeycodeNone
}

// Clone returns a copy of the event.
func (e Event) Clone() Event {
	return e
}
