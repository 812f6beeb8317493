package segbuf

import (
	"github.com/iamgreaser/forceime/internal/diag"
)

// DefaultCapacity bounds the pending text between the decoder and the host.
// One input-method commit is rarely more than a sentence; anything beyond
// this is dropped rather than grown.
const DefaultCapacity = 4096

// DefaultPlaceholder replaces an invalid lead byte at the head of the queue.
const DefaultPlaceholder = '?'

// Chunking selects how the scanner decides where one delivered character
// ends.
type Chunking int

const (
	// ChunkCodepoint delivers one UTF-8 codepoint (1-4 bytes) per round.
	ChunkCodepoint Chunking = iota
	// ChunkGrapheme delivers one grapheme cluster per round, so combining
	// sequences and emoji joins stay intact. Chunks may exceed 4 bytes.
	ChunkGrapheme
)

// String returns the chunking mode name.
func (c Chunking) String() string {
	switch c {
	case ChunkCodepoint:
		return "codepoint"
	case ChunkGrapheme:
		return "grapheme"
	default:
		return "unknown"
	}
}

// Buffer is a bounded FIFO byte queue with a character-boundary scanner at
// its head. Append adds decoded text at the tail; DequeueChunk removes one
// character's worth of bytes from the head. Not safe for concurrent use.
type Buffer struct {
	data        []byte
	used        int
	placeholder byte
	chunking    Chunking
	log         *diag.Logger
}

// Option configures a Buffer.
type Option func(*Buffer)

// WithCapacity sets the byte capacity. Values below 4 (the longest UTF-8
// codepoint) are ignored.
func WithCapacity(n int) Option {
	return func(b *Buffer) {
		if n >= 4 {
			b.data = make([]byte, n)
		}
	}
}

// WithPlaceholder sets the byte that replaces an invalid lead byte.
func WithPlaceholder(c byte) Option {
	return func(b *Buffer) {
		b.placeholder = c
	}
}

// WithChunking sets the chunking mode.
func WithChunking(c Chunking) Option {
	return func(b *Buffer) {
		b.chunking = c
	}
}

// WithLogger sets the diagnostics logger. Overflow reports go here.
func WithLogger(l *diag.Logger) Option {
	return func(b *Buffer) {
		if l != nil {
			b.log = l
		}
	}
}

// New creates a buffer with DefaultCapacity unless overridden.
func New(opts ...Option) *Buffer {
	b := &Buffer{
		data:        make([]byte, DefaultCapacity),
		placeholder: DefaultPlaceholder,
		chunking:    ChunkCodepoint,
		log:         diag.NullLogger,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Len returns the number of pending bytes.
func (b *Buffer) Len() int { return b.used }

// Cap returns the byte capacity.
func (b *Buffer) Cap() int { return len(b.data) }

// Free returns the remaining capacity.
func (b *Buffer) Free() int { return len(b.data) - b.used }

// Empty reports whether no text is pending.
func (b *Buffer) Empty() bool { return b.used == 0 }

// Chunking returns the configured chunking mode.
func (b *Buffer) Chunking() Chunking { return b.chunking }

// Append adds p at the tail and returns how many bytes were accepted.
// Bytes beyond the remaining capacity are dropped and reported; there is no
// backpressure. A return value smaller than len(p) means overflow occurred.
func (b *Buffer) Append(p []byte) int {
	accepted := len(p)
	if accepted > b.Free() {
		accepted = b.Free()
		b.log.Warn("pending-text overflow: dropping %d of %d bytes (capacity %d)",
			len(p)-accepted, len(p), len(b.data))
	}
	copy(b.data[b.used:], p[:accepted])
	b.used += accepted
	return accepted
}

// DequeueChunk removes and returns exactly PeekChunkLen bytes from the head.
// The remaining bytes shift down and the vacated tail region is zeroed.
// Returns nil when the buffer is empty.
//
// The returned slice is a copy; it stays valid across later mutations.
func (b *Buffer) DequeueChunk() []byte {
	n := b.PeekChunkLen()
	if n == 0 {
		return nil
	}

	chunk := make([]byte, n)
	copy(chunk, b.data[:n])

	b.used -= n
	copy(b.data, b.data[n:b.used+n])
	for i := b.used; i < b.used+n; i++ {
		b.data[i] = 0
	}

	return chunk
}

// Reset discards all pending bytes. Used by tests and by session teardown;
// the drain path itself never resets, it only dequeues to empty.
func (b *Buffer) Reset() {
	for i := 0; i < b.used; i++ {
		b.data[i] = 0
	}
	b.used = 0
}
