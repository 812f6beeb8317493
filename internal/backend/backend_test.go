package backend

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iamgreaser/forceime/internal/winsys"
)

func TestConvertKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want winsys.Event
	}{
		{
			name: "plain rune",
			ev:   tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone),
			want: winsys.Event{
				Type:    winsys.KeyPress,
				Window:  TerminalWindow,
				Rune:    'a',
				Keycode: winsys.Keycode('a'),
			},
		},
		{
			name: "multibyte rune",
			ev:   tcell.NewEventKey(tcell.KeyRune, 'é', tcell.ModNone),
			want: winsys.Event{
				Type:    winsys.KeyPress,
				Window:  TerminalWindow,
				Rune:    'é',
				Keycode: winsys.Keycode('é'),
			},
		},
		{
			name: "rune with modifiers",
			ev:   tcell.NewEventKey(tcell.KeyRune, 'A', tcell.ModShift|tcell.ModAlt),
			want: winsys.Event{
				Type:      winsys.KeyPress,
				Window:    TerminalWindow,
				Rune:      'A',
				Keycode:   winsys.Keycode('A'),
				Modifiers: winsys.ModShift | winsys.ModAlt,
			},
		},
		{
			name: "special key sits above rune range",
			ev:   tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModCtrl),
			want: winsys.Event{
				Type:      winsys.KeyPress,
				Window:    TerminalWindow,
				Keycode:   winsys.Keycode(uint32(tcell.KeyUp) + keycodeOffset),
				Modifiers: winsys.ModCtrl,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := convertKey(tt.ev)
			got.Time = time.Time{} // tcell stamps its own time
			if got != tt.want {
				t.Errorf("convertKey() = %+v, want %+v", got, tt.want)
			}
			if got.Keycode == winsys.KeycodeNone {
				t.Error("converted events must never carry the sentinel keycode")
			}
		})
	}
}

func TestTerminal_LookupString(t *testing.T) {
	term := &Terminal{}
	buf := make([]byte, 8)

	ev := &winsys.Event{Type: winsys.KeyPress, Rune: 'é', Keycode: winsys.Keycode('é')}
	n := term.LookupString(ev, buf)
	if string(buf[:n]) != "é" {
		t.Errorf("LookupString() = %q, want %q", buf[:n], "é")
	}

	release := &winsys.Event{Type: winsys.KeyRelease, Rune: 'é'}
	if n := term.LookupString(release, buf); n != 0 {
		t.Errorf("LookupString() for release = %d, want 0", n)
	}

	noRune := &winsys.Event{Type: winsys.KeyPress}
	if n := term.LookupString(noRune, buf); n != 0 {
		t.Errorf("LookupString() without rune = %d, want 0", n)
	}
}

func TestReplay_PlaysScript(t *testing.T) {
	press := winsys.Event{Type: winsys.KeyPress, Keycode: 38, Rune: 'k'}
	r := NewReplay(
		ReplayStep{Event: press, Commit: "かな"},
		ReplayStep{Event: winsys.Event{Type: winsys.KeyRelease, Keycode: 38}},
	)
	r.SetStatus(3)

	if !r.Pending() || r.EventsQueued(winsys.QueuedAlready) != 2 {
		t.Fatal("script should report two pending events")
	}

	var ev winsys.Event
	if status := r.NextEvent(&ev); status != 3 {
		t.Errorf("NextEvent() status = %d, want 3", status)
	}
	if ev != press {
		t.Errorf("NextEvent() = %+v, want scripted press", ev)
	}

	buf := make([]byte, 16)
	n := r.LookupString(&ev, buf)
	if string(buf[:n]) != "かな" {
		t.Errorf("LookupString() = %q, want scripted commit", buf[:n])
	}
	if n := r.LookupString(&ev, buf); n != 0 {
		t.Error("a commit must only be delivered once")
	}

	r.NextEvent(&ev)
	if ev.Type != winsys.KeyRelease {
		t.Errorf("second event type = %v, want KeyRelease", ev.Type)
	}

	if r.Pending() {
		t.Error("exhausted script must not report pending events")
	}
	r.NextEvent(&ev)
	if ev.Type != winsys.ClientMessage {
		t.Errorf("exhausted script yields %v, want ClientMessage", ev.Type)
	}
}

func TestReplay_LookupIgnoresNonPress(t *testing.T) {
	r := NewReplay(ReplayStep{
		Event:  winsys.Event{Type: winsys.FocusIn},
		Commit: "never",
	})

	var ev winsys.Event
	r.NextEvent(&ev)
	if n := r.LookupString(&ev, make([]byte, 8)); n != 0 {
		t.Error("non-press events must not commit text")
	}
}
