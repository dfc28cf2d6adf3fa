// Package arena implements the bump-allocator discipline a compilation
// session uses for every AST node, symbol, diagnostic, and interned string
// it produces: allocate fast, never free individually, release everything
// at once when the session ends or restarts.
//
// An Arena is a list of fixed-size blocks, each a byte buffer plus a bump
// cursor. Allocation bumps the cursor of the current block; when a request
// doesn't fit, the arena opens a new block (sized to the larger of the
// default block size and the request itself, so an oversize request never
// fails). Reset rewinds every block's cursor to zero without freeing the
// blocks, letting a new session reuse the same backing memory. Destroy
// releases every block.
//
// An Arena is not safe for concurrent use; a session owns exactly one.
package arena

import (
	"fmt"

	"fortio.org/safecast"
)

// DefaultBlockSize is the block size New uses when given zero.
const DefaultBlockSize = 64 * 1024

type block struct {
	buf  []byte
	used uint32
}

// Arena is a bump-block byte allocator.
type Arena struct {
	blockSize uint32
	blocks    []*block
	cur       int // index of the block new allocations bump into
}

// New creates an Arena whose blocks are blockSize bytes, or DefaultBlockSize
// if blockSize is zero.
func New(blockSize uint32) *Arena {
	if blockSize == 0 {
		blockSize = DefaultBlockSize
	}
	a := &Arena{blockSize: blockSize}
	a.blocks = append(a.blocks, &block{buf: make([]byte, blockSize)})
	return a
}

func alignUp(off, align uint32) uint32 {
	if align <= 1 {
		return off
	}
	return (off + align - 1) &^ (align - 1)
}

// Alloc returns a zero-initialized byte slice of size bytes, aligned to
// align within the arena's backing storage. align must be a power of two;
// zero and one both mean "no alignment requirement".
func (a *Arena) Alloc(size, align uint32) []byte {
	if size == 0 {
		return nil
	}

	b := a.blocks[a.cur]
	start := alignUp(b.used, align)
	end, err := safecast.Conv[uint32](uint64(start) + uint64(size))
	if err != nil {
		panic(fmt.Errorf("arena: allocation size overflow: %w", err))
	}

	if end > uint32(len(b.buf)) {
		// Current block can't satisfy this request; open a new one sized
		// to fit it even if that means exceeding blockSize.
		newSize := a.blockSize
		if size > newSize {
			newSize = size
		}
		a.blocks = append(a.blocks, &block{buf: make([]byte, newSize)})
		a.cur = len(a.blocks) - 1
		b = a.blocks[a.cur]
		start = 0
		end = size
	}

	b.used = end
	return b.buf[start:end]
}

// AllocString copies s into the arena and returns a string header backed by
// arena memory, so the caller's original buffer can be discarded.
func (a *Arena) AllocString(s string) string {
	if len(s) == 0 {
		return ""
	}
	n, err := safecast.Conv[uint32](len(s))
	if err != nil {
		panic(fmt.Errorf("arena: string length overflow: %w", err))
	}
	buf := a.Alloc(n, 1)
	copy(buf, s)
	return string(buf)
}

// Reset rewinds every block's bump cursor to zero and zeroes its contents,
// without releasing the underlying buffers. A session calls Reset between
// compilations to reuse the same backing memory for the next one.
func (a *Arena) Reset() {
	for _, b := range a.blocks {
		clear(b.buf)
		b.used = 0
	}
	a.cur = 0
}

// Destroy releases every block. The Arena is unusable afterward except
// through a fresh call to New.
func (a *Arena) Destroy() {
	a.blocks = nil
	a.cur = 0
}

// Used returns the total number of bytes currently bumped across all
// blocks, alignment padding included. The unused tail a block is left
// with when an allocation spills into a new block is not counted.
func (a *Arena) Used() uint64 {
	var total uint64
	for _, b := range a.blocks {
		total += uint64(b.used)
	}
	return total
}

// Blocks returns the number of blocks currently held.
func (a *Arena) Blocks() int {
	return len(a.blocks)
}
