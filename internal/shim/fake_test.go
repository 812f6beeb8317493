package shim

import (
	"github.com/iamgreaser/forceime/internal/winsys"
)

// fakeDisplay is a scripted winsys.Display for exercising the interceptors.
type fakeDisplay struct {
	pending      bool
	queued       int
	events       []winsys.Event
	statuses     []winsys.Status
	nextCalls    int
	filterCalls  int
	filterResult bool
	method       *fakeMethod
	openErr      error
}

func (d *fakeDisplay) Pending() bool { return d.pending }

func (d *fakeDisplay) EventsQueued(mode winsys.QueueMode) int { return d.queued }

func (d *fakeDisplay) NextEvent(ev *winsys.Event) winsys.Status {
	i := d.nextCalls
	d.nextCalls++
	if i < len(d.events) {
		*ev = d.events[i]
	}
	if i < len(d.statuses) {
		return d.statuses[i]
	}
	return 0
}

func (d *fakeDisplay) FilterEvent(ev *winsys.Event, w winsys.Window) bool {
	d.filterCalls++
	return d.filterResult
}

func (d *fakeDisplay) OpenInputMethod() (winsys.InputMethod, error) {
	if d.openErr != nil {
		return nil, d.openErr
	}
	if d.method == nil {
		d.method = &fakeMethod{}
	}
	return d.method, nil
}

// fakeMethod records the configuration it was handed.
type fakeMethod struct {
	lastCfg   winsys.ContextConfig
	createErr error
	closed    bool
}

func (m *fakeMethod) CreateContext(cfg winsys.ContextConfig) (winsys.InputContext, error) {
	m.lastCfg = cfg
	if m.createErr != nil {
		return nil, m.createErr
	}
	return &fakeContext{}, nil
}

func (m *fakeMethod) Close() error {
	m.closed = true
	return nil
}

// fakeContext commits one scripted string per lookup call, then nothing.
type fakeContext struct {
	commits   []string
	calls     int
	destroyed bool
}

func (c *fakeContext) LookupString(ev *winsys.Event, buf []byte) int {
	i := c.calls
	c.calls++
	if i >= len(c.commits) {
		return 0
	}
	return copy(buf, c.commits[i])
}

func (c *fakeContext) Destroy() { c.destroyed = true }

// fakeLocaleHost satisfies locale.Host without touching the environment.
type fakeLocaleHost struct {
	prepared int
}

func (h *fakeLocaleHost) SetLocale(name string) (string, bool) {
	h.prepared++
	return "en_US.UTF-8", true
}

func (h *fakeLocaleHost) SupportsLocale() bool { return true }

func (h *fakeLocaleHost) SetModifiers(mods string) bool { return true }
