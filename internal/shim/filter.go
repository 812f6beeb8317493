package shim

import "github.com/iamgreaser/forceime/internal/winsys"

// FilterEvent defers to the wrapped filter for every event except the
// synthetic shape while draining. Input methods legitimately filter real
// key presses during composition; letting them filter the fabricated ones
// would drop whole characters on the floor.
func (s *Session) FilterEvent(ev *winsys.Event, w winsys.Window) bool {
	if !s.buf.Empty() && ev.IsSynthetic() {
		return false
	}
	return s.wrapped().FilterEvent(ev, w)
}
