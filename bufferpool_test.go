package vtcore

import "testing"

func TestNewBufferPoolDefaultSize(t *testing.T) {
	p := NewBufferPool(0)
	buf := p.Get()
	if len(buf) != 64*1024 {
		t.Errorf("expected the default 64KiB buffer, got %d bytes", len(buf))
	}
}

func TestBufferPoolGetReturnsConfiguredSize(t *testing.T) {
	p := NewBufferPool(128)
	buf := p.Get()
	if len(buf) != 128 || cap(buf) != 128 {
		t.Errorf("expected a 128-byte buffer, got len=%d cap=%d", len(buf), cap(buf))
	}
}

func TestBufferPoolPutRejectsWrongCapacity(t *testing.T) {
	p := NewBufferPool(128)
	wrong := make([]byte, 64)
	p.Put(wrong) // must not panic, and must not get handed back out

	buf := p.Get()
	if cap(buf) != 128 {
		t.Errorf("expected Put to reject a mismatched-capacity buffer rather than pool it, got cap=%d", cap(buf))
	}
}

func TestBufferPoolReusesPutBuffer(t *testing.T) {
	p := NewBufferPool(256)
	first := p.Get()
	first[0] = 0xAB
	p.Put(first)

	second := p.Get()
	if len(second) != 256 {
		t.Errorf("expected a recycled buffer truncated back to full capacity, got len=%d", len(second))
	}
}
