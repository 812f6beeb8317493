package winsys

import "testing"

func TestEventType_String(t *testing.T) {
	tests := []struct {
		typ      EventType
		expected string
	}{
		{EventNone, "None"},
		{KeyPress, "KeyPress"},
		{KeyRelease, "KeyRelease"},
		{FocusIn, "FocusIn"},
		{FocusOut, "FocusOut"},
		{Expose, "Expose"},
		{ClientMessage, "ClientMessage"},
		{EventType(200), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.expected {
			t.Errorf("EventType(%d).String() = %q, want %q", tt.typ, got, tt.expected)
		}
	}
}

func TestEvent_IsSynthetic(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
		want bool
	}{
		{
			name: "key press with no real key code",
			ev:   Event{Type: KeyPress, Keycode: KeycodeNone},
			want: true,
		},
		{
			name: "key press with genuine keycode",
			ev:   Event{Type: KeyPress, Keycode: 38},
			want: false,
		},
		{
			name: "key release with no real key code",
			ev:   Event{Type: KeyRelease, Keycode: KeycodeNone},
			want: false,
		},
		{
			name: "non-key event",
			ev:   Event{Type: Expose},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ev.IsSynthetic(); got != tt.want {
				t.Errorf("IsSynthetic() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestModifiers(t *testing.T) {
	m := ModShift | ModCtrl
	if !m.HasShift() || !m.HasCtrl() {
		t.Error("expected shift and ctrl to be set")
	}
	if m.HasAlt() || m.HasMeta() {
		t.Error("alt and meta should not be set")
	}
}
