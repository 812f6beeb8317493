package shim

import "github.com/iamgreaser/forceime/internal/winsys"

// NextEvent is the retrieval interception point.
//
// IDLE (no pending text): blocks on the wrapped call exactly as the
// unmodified system would. A genuine key press replaces the synthesis
// template, and the returned status is cached.
//
// DRAINING (pending text): never touches the wrapped queue. The caller's
// event is filled with a clone of the template, its type forced to KeyPress
// and its keycode to KeycodeNone, and the cached status is replayed.
func (s *Session) NextEvent(ev *winsys.Event) winsys.Status {
	if !s.buf.Empty() {
		*ev = s.lastKey.Clone()
		ev.Type = winsys.KeyPress
		ev.Keycode = winsys.KeycodeNone
		if !s.haveKey {
			// No genuine press ever observed; the zero template still
			// carries the forced type and sentinel code.
			s.log.Debug("synthesizing key press without a template")
		}
		return s.lastStatus
	}

	status := s.wrapped().NextEvent(ev)
	if ev.Type == winsys.KeyPress {
		s.lastKey = *ev
		s.haveKey = true
	}
	s.lastStatus = status
	return status
}
