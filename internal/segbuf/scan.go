package segbuf

import "github.com/rivo/uniseg"

// PeekChunkLen returns the byte length of the character at the head of the
// queue without consuming it, repairing an invalid lead byte in place.
// Returns 0 when the buffer is empty.
//
// In codepoint mode the result is 1..4. A continuation-only byte (0x80-0xBF)
// or an out-of-range lead byte (0xF8-0xFF) is not a character start at all;
// it is overwritten with the placeholder and treated as a length-1 fragment.
// The result is clamped to the buffered length so a truncated trailing
// sequence is delivered short rather than read past the logical end.
//
// Repair only ever inspects the head. Malformed bytes further back are
// sanitized lazily, when dequeuing brings them to the head.
func (b *Buffer) PeekChunkLen() int {
	if b.used == 0 {
		return 0
	}

	n := b.scanHead()
	if n > b.used {
		n = b.used
	}
	return n
}

// scanHead classifies the head of the queue under the configured chunking
// mode. Lead-byte repair happens here for both modes.
func (b *Buffer) scanHead() int {
	head := b.data[0]
	switch {
	case head <= 0x7F:
		// ASCII
	case head <= 0xBF:
		// Continuation byte with no lead: a broken fragment.
		b.data[0] = b.placeholder
		return 1
	case head <= 0xDF:
		if b.chunking == ChunkCodepoint {
			return 2
		}
	case head <= 0xEF:
		if b.chunking == ChunkCodepoint {
			return 3
		}
	case head <= 0xF7:
		if b.chunking == ChunkCodepoint {
			return 4
		}
	default:
		// 0xF8-0xFF cannot lead any sequence: a broken fragment.
		b.data[0] = b.placeholder
		return 1
	}

	if b.chunking == ChunkGrapheme {
		cluster, _, _, _ := uniseg.FirstGraphemeCluster(b.data[:b.used], -1)
		if len(cluster) == 0 {
			return 1
		}
		return len(cluster)
	}

	// ASCII in codepoint mode.
	return 1
}
