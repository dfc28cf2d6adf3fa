package arena

import "testing"

func TestAllocWithinBlock(t *testing.T) {
	a := New(64)
	b1 := a.Alloc(8, 1)
	b2 := a.Alloc(8, 1)
	if len(b1) != 8 || len(b2) != 8 {
		t.Fatalf("unexpected lengths: %d, %d", len(b1), len(b2))
	}
	if a.Blocks() != 1 {
		t.Fatalf("expected single block, got %d", a.Blocks())
	}
	if a.Used() != 16 {
		t.Fatalf("Used() = %d, want 16", a.Used())
	}
}

func TestAllocSpillsToNewBlock(t *testing.T) {
	a := New(16)
	a.Alloc(12, 1)
	a.Alloc(12, 1) // doesn't fit in the remaining 4 bytes of block 0
	if a.Blocks() != 2 {
		t.Fatalf("expected a second block to open, got %d blocks", a.Blocks())
	}
}

func TestAllocOversizeRequest(t *testing.T) {
	a := New(16)
	big := a.Alloc(100, 1)
	if len(big) != 100 {
		t.Fatalf("oversize allocation truncated: got %d bytes", len(big))
	}
}

func TestAlignUp(t *testing.T) {
	a := New(64)
	a.Alloc(3, 1) // leaves block.used == 3
	aligned := a.Alloc(8, 8)
	start := a.blocks[a.cur].used - 8
	if start%8 != 0 {
		t.Fatalf("allocation not aligned: start offset %d", start)
	}
	if len(aligned) != 8 {
		t.Fatalf("aligned alloc length = %d, want 8", len(aligned))
	}
}

func TestReset(t *testing.T) {
	a := New(16)
	buf := a.Alloc(8, 1)
	buf[0] = 0xFF
	a.Alloc(9, 1) // forces a second block

	a.Reset()
	if a.Used() != 0 {
		t.Fatalf("Used() after Reset = %d, want 0", a.Used())
	}
	if a.Blocks() != 2 {
		t.Fatalf("Reset must not free blocks, got %d", a.Blocks())
	}
	fresh := a.Alloc(1, 1)
	if fresh[0] != 0 {
		t.Fatalf("Reset must zero block contents, got %v", fresh[0])
	}
}

func TestDestroy(t *testing.T) {
	a := New(16)
	a.Alloc(4, 1)
	a.Destroy()
	if a.Blocks() != 0 {
		t.Fatalf("Destroy must release every block, got %d", a.Blocks())
	}
}

func TestAllocStringCopiesContent(t *testing.T) {
	a := New(64)
	src := []byte("hello")
	s := a.AllocString(string(src))
	src[0] = 'X'
	if s != "hello" {
		t.Fatalf("AllocString must not alias the caller's buffer, got %q", s)
	}
}

func TestTypedArenaHandles(t *testing.T) {
	ta := NewTyped[int](0)
	h1 := ta.Alloc(10)
	h2 := ta.Alloc(20)
	if h1 == 0 || h2 == 0 || h1 == h2 {
		t.Fatalf("expected distinct non-zero handles, got %d, %d", h1, h2)
	}
	if got := ta.Get(h1); got == nil || *got != 10 {
		t.Fatalf("Get(h1) = %v, want 10", got)
	}
	if ta.Get(0) != nil {
		t.Fatalf("Get(0) must return nil for the no-value sentinel")
	}
}

func TestTypedArenaReset(t *testing.T) {
	ta := NewTyped[int](0)
	ta.Alloc(1)
	ta.Alloc(2)
	ta.Reset()
	if ta.Len() != 0 {
		t.Fatalf("Len() after Reset = %d, want 0", ta.Len())
	}
}
