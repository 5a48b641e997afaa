package vtcore

import (
	"testing"
	"time"
)

func TestSetRefreshRateConfiguration(t *testing.T) {
	term := New(WithSize(10, 20))
	rdb := NewRenderDoubleBuffer(term)

	rdb.SetRefreshRate(60)
	if got := rdb.RefreshRate(); got != 60 {
		t.Errorf("expected RefreshRate() == 60, got %v", got)
	}
	if rdb.refreshInterval <= 0 {
		t.Errorf("expected a positive refreshInterval for a positive Hz, got %v", rdb.refreshInterval)
	}

	rdb.SetRefreshRate(0)
	if rdb.refreshInterval != 0 {
		t.Errorf("expected hz<=0 to clear refreshInterval, got %v", rdb.refreshInterval)
	}
}

// TestMarkDirtyCoalescesWithinInterval is the core regression test for
// the refresh-rate gate: a MarkDirty call that lands before the
// configured interval has elapsed since the last rebuild must be a
// no-op, not produce a new back buffer.
func TestMarkDirtyCoalescesWithinInterval(t *testing.T) {
	term := New(WithSize(10, 20))
	rdb := NewRenderDoubleBuffer(term)
	rdb.SetRefreshRate(1) // one rebuild per second

	rdb.MarkDirty(nil)
	if rdb.state != StateRefreshBuffersAndTrySwap {
		t.Fatalf("expected first MarkDirty to always rebuild, state=%v", rdb.state)
	}
	if !rdb.TrySwapBuffers() {
		t.Fatal("expected the first rebuild to be swappable")
	}

	// Immediately mark dirty again: still well within the 1s interval.
	rdb.MarkDirty(nil)
	if rdb.state != StateWaitingForRefresh {
		t.Errorf("expected a too-soon MarkDirty to coalesce and leave state untouched, got %v", rdb.state)
	}
	if rdb.TrySwapBuffers() {
		t.Error("expected no pending buffer after a coalesced MarkDirty")
	}
}

// TestMarkDirtyRebuildsAfterInterval checks the other side: once the
// interval has elapsed, MarkDirty must rebuild again.
func TestMarkDirtyRebuildsAfterInterval(t *testing.T) {
	term := New(WithSize(10, 20))
	rdb := NewRenderDoubleBuffer(term)
	rdb.SetRefreshRate(1)

	rdb.MarkDirty(nil)
	rdb.TrySwapBuffers()

	// Backdate lastUpdate instead of sleeping a full second.
	rdb.lastUpdate = time.Now().Add(-2 * time.Second)

	rdb.MarkDirty(nil)
	if rdb.state != StateRefreshBuffersAndTrySwap {
		t.Errorf("expected MarkDirty to rebuild once the interval elapsed, got %v", rdb.state)
	}
	if !rdb.TrySwapBuffers() {
		t.Error("expected the post-interval rebuild to be swappable")
	}
}

// TestMarkDirtyUncappedByDefault checks that hz<=0 (including the zero
// value of a freshly constructed RenderDoubleBuffer) never coalesces,
// preserving the pre-existing behavior for callers that never opt in
// to a refresh-rate cap.
func TestMarkDirtyUncappedByDefault(t *testing.T) {
	term := New(WithSize(10, 20))
	rdb := NewRenderDoubleBuffer(term)

	rdb.MarkDirty(nil)
	rdb.TrySwapBuffers()

	rdb.MarkDirty(nil)
	if rdb.state != StateRefreshBuffersAndTrySwap {
		t.Errorf("expected an uncapped RenderDoubleBuffer to rebuild on every MarkDirty, got %v", rdb.state)
	}
}

// TestMarkDirtySynchronizedBatchingStillApplies checks the refresh-rate
// gate and the pre-existing synchronized-output batching compose: while
// a sync batch is open, swaps go through StateTrySwapBuffers regardless
// of the refresh-rate cap.
func TestMarkDirtySynchronizedBatchingStillApplies(t *testing.T) {
	term := New(WithSize(10, 20))
	rdb := NewRenderDoubleBuffer(term)
	rdb.SetRefreshRate(1)
	rdb.setSynchronized(true)

	rdb.MarkDirty(nil)
	if rdb.state != StateTrySwapBuffers {
		t.Errorf("expected synchronized batching to take priority over the refresh gate on first mark, got %v", rdb.state)
	}
}

func TestTrySwapBuffersPublishesFrontBuffer(t *testing.T) {
	term := New(WithSize(10, 20))
	rdb := NewRenderDoubleBuffer(term)

	if rdb.Front() != nil {
		t.Fatal("expected no front buffer before the first swap")
	}
	if rdb.TrySwapBuffers() {
		t.Fatal("expected TrySwapBuffers to report no-op before any MarkDirty")
	}

	rdb.MarkDirty(nil)
	if !rdb.TrySwapBuffers() {
		t.Fatal("expected TrySwapBuffers to succeed after MarkDirty")
	}
	if rdb.Front() == nil {
		t.Error("expected a front buffer after a successful swap")
	}
}
