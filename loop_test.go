package vtcore

import (
	"context"
	"errors"
	"io"
	"syscall"
	"testing"
	"time"
)

// fakeRead scripts one return from fakePTY.Read.
type fakeRead struct {
	data []byte
	err  error
}

// fakePTY replays a scripted sequence of reads, one per call. Once the
// script is exhausted it returns io.EOF, so tests terminate deterministically.
type fakePTY struct {
	reads []fakeRead
	idx   int
}

func (f *fakePTY) Read(b []byte) (int, error) {
	if f.idx >= len(f.reads) {
		return 0, io.EOF
	}
	r := f.reads[f.idx]
	f.idx++
	n := copy(b, r.data)
	return n, r.err
}

func (f *fakePTY) Write(b []byte) (int, error) { return len(b), nil }
func (f *fakePTY) Close() error                { return nil }
func (f *fakePTY) Resize(size PTYSize) error   { return nil }

func TestTraceHandlerOrdering(t *testing.T) {
	var h TraceHandler

	h.Enqueue([]byte("1"))
	h.Enqueue([]byte("2"))
	if got := h.Len(); got != 2 {
		t.Fatalf("expected 2 queued chunks, got %d", got)
	}

	if got := h.Dequeue(); string(got) != "1" {
		t.Errorf("expected FIFO order, got %q", got)
	}
	if got := h.Len(); got != 1 {
		t.Fatalf("expected 1 remaining chunk, got %d", got)
	}

	rest := h.Drain()
	if len(rest) != 1 || string(rest[0]) != "2" {
		t.Errorf("expected Drain to return remaining chunk, got %v", rest)
	}
	if got := h.Len(); got != 0 {
		t.Errorf("expected queue empty after Drain, got %d", got)
	}
	if got := h.Dequeue(); got != nil {
		t.Errorf("expected Dequeue on empty queue to return nil, got %v", got)
	}
}

func TestIsTransientPtyError(t *testing.T) {
	if !isTransientPtyError(syscall.EINTR) {
		t.Error("expected EINTR to be classified as transient")
	}
	if !isTransientPtyError(syscall.EAGAIN) {
		t.Error("expected EAGAIN to be classified as transient")
	}
	if isTransientPtyError(io.EOF) {
		t.Error("expected EOF not to be classified as transient")
	}
	if isTransientPtyError(errors.New("boom")) {
		t.Error("expected an unrelated error not to be classified as transient")
	}
}

// TestRunLoopRetriesTransientPtyErrors is a regression test for the bug
// where Run returned on any non-EOF pty error: EINTR/EAGAIN must be
// retried at the next loop iteration instead of ending the loop.
func TestRunLoopRetriesTransientPtyErrors(t *testing.T) {
	term := New(WithSize(5, 20))
	fp := &fakePTY{reads: []fakeRead{
		{err: syscall.EINTR},
		{data: []byte("hi")},
		{err: io.EOF},
	}}
	rl := NewRunLoop(term, fp)

	if err := rl.Run(context.Background()); err != nil {
		t.Fatalf("expected a clean exit on EOF after retrying EINTR, got %v", err)
	}

	snap := term.Snapshot(SnapshotDetailText)
	if snap.Lines[0].Text != "hi" {
		t.Errorf("expected the post-retry read to reach the terminal, got %q", snap.Lines[0].Text)
	}
}

// TestRunLoopReturnsOnFatalError checks the other half: an error that
// isn't EOF and isn't transient still ends the loop and propagates.
func TestRunLoopReturnsOnFatalError(t *testing.T) {
	sentinel := errors.New("pty gone")
	term := New(WithSize(5, 20))
	fp := &fakePTY{reads: []fakeRead{{err: sentinel}}}
	rl := NewRunLoop(term, fp)

	err := rl.Run(context.Background())
	if !errors.Is(err, sentinel) {
		t.Errorf("expected fatal error to propagate, got %v", err)
	}
}

// TestRunLoopWaitIfPausedDrainsBreakAtEmptyQueueBacklog is a regression
// test for ExecutionBreakAtEmptyQueue being handled identically to
// ExecutionWaiting: it must drain whatever is already queued in the
// TraceHandler before parking, not block immediately.
func TestRunLoopWaitIfPausedDrainsBreakAtEmptyQueueBacklog(t *testing.T) {
	term := New(WithSize(5, 20))
	fp := &fakePTY{}
	rl := NewRunLoop(term, fp)

	rl.trace.Enqueue([]byte("A"))
	rl.trace.Enqueue([]byte("B"))
	rl.SetExecutionMode(ExecutionBreakAtEmptyQueue)

	mode, err := rl.waitIfPaused(context.Background())
	if err != nil {
		t.Fatalf("unexpected error while backlog is non-empty: %v", err)
	}
	if mode != ExecutionBreakAtEmptyQueue {
		t.Errorf("expected dispatch mode BreakAtEmptyQueue while backlog remains, got %v", mode)
	}
	if rl.trace.Len() != 2 {
		t.Errorf("waitIfPaused must not itself dequeue, got len %d", rl.trace.Len())
	}

	// Run's loop body is what dequeues one chunk per iteration.
	if got := rl.trace.Dequeue(); string(got) != "A" {
		t.Errorf("expected FIFO dequeue, got %q", got)
	}

	mode, err = rl.waitIfPaused(context.Background())
	if err != nil {
		t.Fatalf("unexpected error with one chunk left: %v", err)
	}
	if mode != ExecutionBreakAtEmptyQueue {
		t.Errorf("expected dispatch mode BreakAtEmptyQueue with one chunk left, got %v", mode)
	}
	rl.trace.Dequeue()

	// Backlog now empty: waitIfPaused should transition to Waiting and
	// block until context cancellation.
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = rl.waitIfPaused(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected context deadline once backlog empty, got %v", err)
	}
	if rl.currentMode() != ExecutionWaiting {
		t.Errorf("expected mode to settle on Waiting once backlog drained, got %v", rl.currentMode())
	}
}

// TestRunLoopWaitingQueuesInsteadOfDispatching checks that bytes read
// while ExecutionWaiting is active are queued rather than written to
// the terminal, and that a Resume flushes them in order.
func TestRunLoopWaitingQueuesInsteadOfDispatching(t *testing.T) {
	term := New(WithSize(5, 20))
	fp := &fakePTY{}
	rl := NewRunLoop(term, fp)
	rl.SetExecutionMode(ExecutionWaiting)

	rl.trace.Enqueue([]byte("queued"))

	done := make(chan struct{})
	go func() {
		_, _ = rl.waitIfPaused(context.Background())
		close(done)
	}()

	// Give the goroutine a moment to park on l.resume before resuming.
	time.Sleep(10 * time.Millisecond)
	rl.Resume()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("waitIfPaused did not return after Resume")
	}

	snap := term.Snapshot(SnapshotDetailText)
	if snap.Lines[0].Text != "queued" {
		t.Errorf("expected queued bytes to flush on resume, got %q", snap.Lines[0].Text)
	}
	if rl.trace.Len() != 0 {
		t.Errorf("expected trace queue to be empty after flush, got %d", rl.trace.Len())
	}
}
