// Package shim implements the interception layer that repackages
// multi-character input-method commits into single-character delivery
// rounds for hosts that consume only one character per key event.
//
// A Session wraps a winsys.Display and is itself a winsys.Display; a
// Context wraps a winsys.InputContext likewise. The host talks to the
// wrappers and cannot tell the difference, except that text arrives one
// character at a time.
//
// The session has two implicit states, derived from the pending-text
// buffer on every call, never stored:
//
//	IDLE      buffer empty.    Every call passes straight through.
//	DRAINING  buffer nonempty. Pending() is forced true, EventsQueued()
//	          is inflated by one, NextEvent() fabricates a KeyPress with
//	          KeycodeNone instead of touching the real queue, and
//	          FilterEvent() refuses to filter that fabricated shape.
//
// Each LookupString call in the DRAINING state dequeues exactly one
// character; the state falls back to IDLE the moment the buffer empties.
//
// Hard precondition: every entry point must be invoked sequentially from
// the host's single event thread. There is no locking; a host that calls
// in from two threads gets no ordering guarantee and may lose or duplicate
// appends.
package shim
