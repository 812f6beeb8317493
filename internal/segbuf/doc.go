// Package segbuf implements the segmentation buffer at the heart of the
// shim: a bounded byte queue holding decoded text that has not yet been
// delivered to the host, plus the boundary scanner that carves exactly one
// character's worth of bytes off the head per delivery round.
//
// The buffer is not safe for concurrent use. The shim's hard precondition
// is that every entry point is invoked sequentially from the host's single
// event thread, and the buffer inherits it.
package segbuf
