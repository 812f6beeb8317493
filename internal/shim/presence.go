package shim

import "github.com/iamgreaser/forceime/internal/winsys"

// Pending reports event availability, forced true while pending text
// remains. The host will not poll for the next event, and therefore never
// drain the buffer, unless it believes one is outstanding.
func (s *Session) Pending() bool {
	if !s.buf.Empty() {
		return true
	}
	return s.wrapped().Pending()
}

// EventsQueued reports the wrapped count, inflated by exactly one while
// pending text remains.
func (s *Session) EventsQueued(mode winsys.QueueMode) int {
	n := s.wrapped().EventsQueued(mode)
	if !s.buf.Empty() {
		return n + 1
	}
	return n
}
