package winsys

// Status is the opaque value returned by event retrieval. No backend
// documents what it means; the shim caches the last observed value and
// replays it for synthetic events.
type Status int

// QueueMode selects how EventsQueued counts outstanding events, mirroring
// the modes of the modeled queued-count primitive.
type QueueMode int

const (
	// QueuedAlready counts only events already read into the local queue.
	QueuedAlready QueueMode = iota
	// QueuedAfterReading also reads anything waiting on the connection.
	QueuedAfterReading
	// QueuedAfterFlush flushes the output buffer first, then reads.
	QueuedAfterFlush
)

// String returns the queue mode name.
func (m QueueMode) String() string {
	switch m {
	case QueuedAlready:
		return "already"
	case QueuedAfterReading:
		return "after-reading"
	case QueuedAfterFlush:
		return "after-flush"
	default:
		return "unknown"
	}
}

// Display is the event-loop face of a windowing-system connection.
//
// The five methods are the interception points: the shim implements Display
// itself and forwards to a wrapped one, adjusting answers while it has
// pending text to deliver.
type Display interface {
	// Pending reports whether at least one event is available without
	// blocking.
	Pending() bool

	// EventsQueued returns the number of events outstanding under the
	// given counting mode.
	EventsQueued(mode QueueMode) int

	// NextEvent blocks until an event is available and copies it into ev.
	// The returned Status is opaque; see Status.
	NextEvent(ev *Event) Status

	// FilterEvent gives the input method a chance to consume an event
	// before the host dispatches it. It returns true if the event was
	// filtered (consumed) and must not be dispatched.
	FilterEvent(ev *Event, w Window) bool

	// OpenInputMethod connects to the display's input method.
	OpenInputMethod() (InputMethod, error)
}

// InputMethod is an open connection to an input method.
type InputMethod interface {
	// CreateContext creates an input context with the given, already
	// rewritten, configuration.
	CreateContext(cfg ContextConfig) (InputContext, error)

	// Close releases the input method connection.
	Close() error
}

// InputContext is a per-window input-method context. It owns the decoder
// that turns key events plus composition state into committed text.
type InputContext interface {
	// LookupString writes the UTF-8 text committed for the key event into
	// buf and returns the number of bytes written. A single call may
	// produce many characters; that is exactly the behavior the shim
	// repackages for hosts that cannot handle it.
	LookupString(ev *Event, buf []byte) int

	// Destroy releases the context.
	Destroy()
}
