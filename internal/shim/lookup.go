package shim

import (
	"fmt"

	"github.com/iamgreaser/forceime/internal/winsys"
)

// MinLookupBuffer is the smallest output buffer LookupString accepts: the
// longest UTF-8 codepoint. A caller handing over less cannot receive every
// character the decoder can produce, and in the system being modeled would
// be corrupted by the write; that is a contract breach, not an error.
const MinLookupBuffer = 4

// Context wraps a winsys.InputContext, sharing its Session's pending-text
// buffer. It is the lookup interception point.
type Context struct {
	s       *Session
	wrapped winsys.InputContext
}

// WrapContext wraps an already created input context.
func (s *Session) WrapContext(ic winsys.InputContext) *Context {
	return &Context{s: s, wrapped: ic}
}

// LookupString delivers at most one character per call.
//
// When no text is pending, the wrapped decoder is invoked and whatever it
// committed is queued; a commit does not interleave with a previous one
// because refill only happens on an empty buffer. If text is pending
// afterwards, exactly one chunk is copied into buf and its length returned;
// otherwise 0.
//
// Panics if buf is smaller than MinLookupBuffer, or smaller than the chunk
// at the head in grapheme chunking mode.
func (c *Context) LookupString(ev *winsys.Event, buf []byte) int {
	if len(buf) < MinLookupBuffer {
		panic(fmt.Sprintf("shim: lookup output buffer too small: %d < %d", len(buf), MinLookupBuffer))
	}
	if c.wrapped == nil {
		panic("shim: no underlying lookup primitive")
	}

	s := c.s
	if s.buf.Empty() {
		scratch := make([]byte, s.buf.Free())
		n := c.wrapped.LookupString(ev, scratch)
		if n > 0 {
			accepted := s.buf.Append(scratch[:n])
			s.log.Debug("decoder committed %d bytes, queued %d", n, accepted)
		}
	}

	if s.buf.Empty() {
		return 0
	}

	n := s.buf.PeekChunkLen()
	if len(buf) < n {
		panic(fmt.Sprintf("shim: lookup output buffer too small for chunk: %d < %d", len(buf), n))
	}

	chunk := s.buf.DequeueChunk()
	copy(buf, chunk)

	if s.buf.Empty() {
		s.log.Debug("drain complete")
	}
	return len(chunk)
}

// Destroy releases the wrapped context. Pending text is deliberately left
// in place; the host may still be mid-drain through another context.
func (c *Context) Destroy() {
	if c.wrapped != nil {
		c.wrapped.Destroy()
	}
}
