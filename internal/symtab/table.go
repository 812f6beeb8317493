// Package symtab models the dynamic-symbol redirection that points a host's
// name-based lookups at the shim's entry points instead of the real
// library's. The table is built once, covers exactly the interception and
// setup entry points, and falls back to the original resolver for every
// other name.
package symtab

import (
	"sort"

	"github.com/iamgreaser/forceime/internal/shim"
	"github.com/iamgreaser/forceime/internal/winsys"
)

// Covered entry-point names.
const (
	NameLookupString    = "LookupString"
	NamePending         = "Pending"
	NameEventsQueued    = "EventsQueued"
	NameFilterEvent     = "FilterEvent"
	NameNextEvent       = "NextEvent"
	NameOpenInputMethod = "OpenInputMethod"
	NameCreateContext   = "CreateContext"
)

// Resolver resolves a name the table does not cover. It stands in for the
// original dynamic lookup mechanism.
type Resolver func(name string) (any, bool)

// Table is the fixed name-to-function dispatch table.
type Table struct {
	entries  map[string]any
	fallback Resolver
}

// New builds the table over a session and its lookup context. The context
// may be nil when the host only resolves the setup entry points; resolving
// NameLookupString then yields a function that panics at first use, the
// same contract a missing primitive has everywhere else in the shim.
func New(s *shim.Session, ctx *shim.Context, fallback Resolver) *Table {
	if ctx == nil {
		ctx = s.WrapContext(nil)
	}
	return &Table{
		entries: map[string]any{
			NameLookupString:    ctx.LookupString,
			NamePending:         s.Pending,
			NameEventsQueued:    s.EventsQueued,
			NameFilterEvent:     s.FilterEvent,
			NameNextEvent:       s.NextEvent,
			NameOpenInputMethod: s.OpenInputMethod,
			NameCreateContext: func(im winsys.InputMethod, opts ...winsys.ICOption) (*shim.Context, error) {
				return s.CreateContext(im, opts...)
			},
		},
		fallback: fallback,
	}
}

// Resolve returns the function registered under name, or hands the name to
// the fallback resolver. The second result reports whether anything
// resolved at all.
func (t *Table) Resolve(name string) (any, bool) {
	if fn, ok := t.entries[name]; ok {
		return fn, true
	}
	if t.fallback != nil {
		return t.fallback(name)
	}
	return nil, false
}

// Covers reports whether name is one of the shim's own entry points.
func (t *Table) Covers(name string) bool {
	_, ok := t.entries[name]
	return ok
}

// Names returns the covered entry-point names, sorted.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.entries))
	for name := range t.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
