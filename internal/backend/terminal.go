// Package backend provides concrete winsys implementations: a tcell-backed
// terminal display for the demo binary, and a scripted replay display for
// deterministic runs and tests.
package backend

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/iamgreaser/forceime/internal/winsys"
)

// TerminalWindow is the single implicit window a terminal presents.
const TerminalWindow winsys.Window = 1

// Terminal implements the winsys surface over a tcell screen. The terminal
// is its own input method: committed text for a key event is simply the
// UTF-8 encoding of the event's rune.
//
// Terminals expose no queue depth, so EventsQueued reports at most one.
type Terminal struct {
	screen tcell.Screen
}

// NewTerminal creates a terminal backend on a new tcell screen.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewTerminalWithScreen wraps an existing screen, e.g. a simulation screen.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Init initializes the underlying screen.
func (t *Terminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnablePaste()
	return nil
}

// Shutdown restores the terminal.
func (t *Terminal) Shutdown() {
	t.screen.Fini()
}

// Screen exposes the underlying screen for drawing.
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

// Pending reports whether an event can be retrieved without blocking.
func (t *Terminal) Pending() bool {
	return t.screen.HasPendingEvent()
}

// EventsQueued reports 1 when an event is retrievable, else 0; the terminal
// queue's true depth is not observable.
func (t *Terminal) EventsQueued(mode winsys.QueueMode) int {
	if t.screen.HasPendingEvent() {
		return 1
	}
	return 0
}

// NextEvent blocks until the screen delivers an event this surface can
// express, then copies it into ev. A finalized screen yields ClientMessage.
func (t *Terminal) NextEvent(ev *winsys.Event) winsys.Status {
	for {
		raw := t.screen.PollEvent()
		if raw == nil {
			*ev = winsys.Event{Type: winsys.ClientMessage, Window: TerminalWindow}
			return 0
		}
		switch e := raw.(type) {
		case *tcell.EventKey:
			*ev = convertKey(e)
			return 0
		case *tcell.EventResize:
			*ev = winsys.Event{Type: winsys.Expose, Window: TerminalWindow, Time: e.When()}
			return 0
		case *tcell.EventInterrupt:
			*ev = winsys.Event{Type: winsys.ClientMessage, Window: TerminalWindow, Time: e.When()}
			return 0
		default:
			// Mouse, paste markers and focus chatter have no place in
			// this surface; keep polling.
		}
	}
}

// FilterEvent never filters: the terminal has no composition to hide.
func (t *Terminal) FilterEvent(ev *winsys.Event, w winsys.Window) bool {
	return false
}

// OpenInputMethod returns the terminal itself.
func (t *Terminal) OpenInputMethod() (winsys.InputMethod, error) {
	return t, nil
}

// CreateContext returns the terminal itself; cfg carries nothing a
// terminal can honor.
func (t *Terminal) CreateContext(cfg winsys.ContextConfig) (winsys.InputContext, error) {
	return t, nil
}

// Close is a no-op; the screen is owned by Shutdown.
func (t *Terminal) Close() error { return nil }

// LookupString commits the UTF-8 encoding of a key press's rune.
func (t *Terminal) LookupString(ev *winsys.Event, buf []byte) int {
	if ev == nil || ev.Type != winsys.KeyPress || ev.Rune == 0 {
		return 0
	}
	return utf8.EncodeRune(buf, ev.Rune)
}

// Destroy is a no-op.
func (t *Terminal) Destroy() {}

// keycodeOffset keeps special-key codes clear of the rune range and of
// KeycodeNone.
const keycodeOffset = 1 << 21

// IsEscape reports whether ev is the terminal's Escape key.
func IsEscape(ev winsys.Event) bool {
	return ev.Keycode == winsys.Keycode(uint32(tcell.KeyEscape)+keycodeOffset)
}

// convertKey maps a tcell key event onto the winsys event record.
func convertKey(e *tcell.EventKey) winsys.Event {
	ev := winsys.Event{
		Type:   winsys.KeyPress,
		Window: TerminalWindow,
		Time:   e.When(),
	}

	if e.Key() == tcell.KeyRune {
		ev.Rune = e.Rune()
		ev.Keycode = winsys.Keycode(e.Rune())
	} else {
		ev.Keycode = winsys.Keycode(uint32(e.Key()) + keycodeOffset)
		// Control keys still carry their rune where tcell knows one.
		ev.Rune = e.Rune()
	}

	mods := e.Modifiers()
	if mods&tcell.ModShift != 0 {
		ev.Modifiers |= winsys.ModShift
	}
	if mods&tcell.ModCtrl != 0 {
		ev.Modifiers |= winsys.ModCtrl
	}
	if mods&tcell.ModAlt != 0 {
		ev.Modifiers |= winsys.ModAlt
	}
	if mods&tcell.ModMeta != 0 {
		ev.Modifiers |= winsys.ModMeta
	}
	return ev
}
