package shim

import (
	"sync"

	"github.com/google/uuid"

	"github.com/iamgreaser/forceime/internal/diag"
	"github.com/iamgreaser/forceime/internal/locale"
	"github.com/iamgreaser/forceime/internal/segbuf"
	"github.com/iamgreaser/forceime/internal/winsys"
)

// Session holds the state the fixed external signatures cannot carry:
// the pending-text buffer, the template cloned into synthetic events, and
// the cached retrieval status. One Session serves one host event loop.
//
// Session implements winsys.Display as a drop-in replacement for the
// display it wraps.
type Session struct {
	display winsys.Display
	buf     *segbuf.Buffer

	// lastKey is the most recent genuine key press, kept as the
	// structural template for synthetic events. haveKey records whether
	// one was ever observed; before that, synthesis falls back to the
	// zero event.
	lastKey winsys.Event
	haveKey bool

	// lastStatus is the retrieval status observed on the last genuine
	// NextEvent call, replayed for synthetic events. The status contract
	// is opaque, so replaying a stale value is accepted.
	lastStatus winsys.Status

	localeHost locale.Host
	localeOnce sync.Once

	id  string
	log *diag.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the diagnostics logger.
func WithLogger(l *diag.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithBuffer replaces the default pending-text buffer, e.g. to change
// capacity or chunking mode.
func WithBuffer(b *segbuf.Buffer) Option {
	return func(s *Session) {
		if b != nil {
			s.buf = b
		}
	}
}

// WithLocaleHost sets the locale bootstrap host used by OpenInputMethod.
func WithLocaleHost(h locale.Host) Option {
	return func(s *Session) {
		if h != nil {
			s.localeHost = h
		}
	}
}

// New creates a session wrapping display. The display may be nil only if
// no interception entry point is ever invoked; the first use panics, since
// the shim cannot function without its wrapped counterpart.
func New(display winsys.Display, opts ...Option) *Session {
	s := &Session{
		display:    display,
		localeHost: &locale.EnvHost{},
		id:         uuid.New().String(),
		log:        diag.Default().WithComponent("shim"),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.WithField("session", s.id)
	if s.buf == nil {
		s.buf = segbuf.New(segbuf.WithLogger(s.log))
	}
	return s
}

// ID returns the session's correlation identifier.
func (s *Session) ID() string { return s.id }

// Draining reports whether pending text remains undelivered.
func (s *Session) Draining() bool { return !s.buf.Empty() }

// PendingBytes returns the number of undelivered bytes.
func (s *Session) PendingBytes() int { return s.buf.Len() }

// wrapped returns the underlying display, aborting if it is missing.
// A shim without its wrapped counterpart cannot degrade; it must stop.
func (s *Session) wrapped() winsys.Display {
	if s.display == nil {
		panic("shim: no underlying display primitive")
	}
	return s.display
}
