// Package winsys defines the windowing-system primitive surface the shim
// interposes on: event records, the display/input-method/input-context
// interfaces, and the open-ended context-creation option list.
//
// The shim (internal/shim) is a drop-in replacement for these primitives.
// It implements Display and InputContext itself, wrapping a real backend,
// so a host written against this surface cannot tell whether it is talking
// to the windowing system directly or through the shim.
//
// The Status value returned by event retrieval is deliberately opaque. Its
// contract is not documented by any backend this package models; consumers
// must not assign meaning to it beyond passing it along.
package winsys
