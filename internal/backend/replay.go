package backend

import "github.com/iamgreaser/forceime/internal/winsys"

// ReplayStep is one scripted event and the text the input method commits
// when that event is looked up.
type ReplayStep struct {
	Event  winsys.Event
	Commit string
}

// Replay is a deterministic winsys surface fed from a script. It never
// blocks: once the script is exhausted, NextEvent yields ClientMessage so a
// host loop can shut down cleanly.
type Replay struct {
	steps      []ReplayStep
	next       int
	lastCommit string
	status     winsys.Status
}

// NewReplay creates a replay display over the given steps.
func NewReplay(steps ...ReplayStep) *Replay {
	return &Replay{steps: steps}
}

// SetStatus sets the status value returned by NextEvent.
func (r *Replay) SetStatus(s winsys.Status) { r.status = s }

// Remaining returns the number of unplayed steps.
func (r *Replay) Remaining() int { return len(r.steps) - r.next }

// Pending reports whether a scripted event remains.
func (r *Replay) Pending() bool { return r.next < len(r.steps) }

// EventsQueued reports the number of unplayed steps.
func (r *Replay) EventsQueued(mode winsys.QueueMode) int {
	return r.Remaining()
}

// NextEvent plays the next scripted event, or ClientMessage when done.
func (r *Replay) NextEvent(ev *winsys.Event) winsys.Status {
	if r.next >= len(r.steps) {
		*ev = winsys.Event{Type: winsys.ClientMessage}
		return r.status
	}
	step := r.steps[r.next]
	r.next++
	*ev = step.Event
	r.lastCommit = step.Commit
	return r.status
}

// FilterEvent never filters.
func (r *Replay) FilterEvent(ev *winsys.Event, w winsys.Window) bool {
	return false
}

// OpenInputMethod returns the replay itself.
func (r *Replay) OpenInputMethod() (winsys.InputMethod, error) {
	return r, nil
}

// CreateContext returns the replay itself.
func (r *Replay) CreateContext(cfg winsys.ContextConfig) (winsys.InputContext, error) {
	return r, nil
}

// Close is a no-op.
func (r *Replay) Close() error { return nil }

// LookupString commits the text scripted for the most recently played
// event, once.
func (r *Replay) LookupString(ev *winsys.Event, buf []byte) int {
	if ev == nil || ev.Type != winsys.KeyPress {
		return 0
	}
	commit := r.lastCommit
	r.lastCommit = ""
	return copy(buf, commit)
}

// Destroy is a no-op.
func (r *Replay) Destroy() {}
