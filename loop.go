package vtcore

import (
	"context"
	"errors"
	"io"
	"sync"
	"syscall"

	"go.uber.org/zap"
)

// ExecutionMode controls how the terminal loop advances through incoming
// bytes, mirroring the trace/debug modes real emulator cores expose for
// deterministic replay and step debugging.
type ExecutionMode int

const (
	// ExecutionNormal processes all available bytes on every read.
	ExecutionNormal ExecutionMode = iota
	// ExecutionWaiting pauses the loop: bytes still get read off the pty
	// (so the child process is never blocked on a full pipe) but are
	// queued in a TraceHandler instead of being dispatched to the
	// terminal, so no Screen mutation occurs until Resume is called.
	ExecutionWaiting
	// ExecutionSingleStep processes exactly one PTY read per Resume call.
	ExecutionSingleStep
	// ExecutionBreakAtEmptyQueue first drains any backlog already queued
	// in the TraceHandler (from a prior ExecutionWaiting period),
	// dispatching it at normal speed, then switches to ExecutionWaiting
	// once the backlog is empty.
	ExecutionBreakAtEmptyQueue
)

// TraceHandler buffers raw pty reads that arrive while the loop is
// paused, so they can be dispatched in original order once execution
// resumes instead of being dropped or applied out of sequence.
type TraceHandler struct {
	mu      sync.Mutex
	pending [][]byte
}

// Enqueue appends a chunk to the back of the queue.
func (h *TraceHandler) Enqueue(chunk []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.pending = append(h.pending, chunk)
}

// Dequeue removes and returns the oldest queued chunk, or nil if empty.
func (h *TraceHandler) Dequeue() []byte {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.pending) == 0 {
		return nil
	}
	chunk := h.pending[0]
	h.pending = h.pending[1:]
	return chunk
}

// Drain removes and returns every queued chunk in order.
func (h *TraceHandler) Drain() [][]byte {
	h.mu.Lock()
	defer h.mu.Unlock()
	chunks := h.pending
	h.pending = nil
	return chunks
}

// Len reports how many chunks are currently queued.
func (h *TraceHandler) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.pending)
}

// RunLoop wires a PTY to a Terminal: a dedicated goroutine reads from the
// pty, feeds bytes to Terminal.Write, and calls MarkDirty on the attached
// RenderDoubleBuffer after each read it dispatches (spec §5 "ordering and
// suspension points" — after a full read, not after each byte).
type RunLoop struct {
	term  *Terminal
	pty   PTY
	pool  *BufferPool
	log   *Logger
	trace TraceHandler

	mu     sync.Mutex
	mode   ExecutionMode
	resume chan struct{}
}

// NewRunLoop creates a loop that reads pty into term on Run, reading into
// buffers from a BufferPool of the default 64KiB size.
func NewRunLoop(term *Terminal, p PTY) *RunLoop {
	return &RunLoop{
		term:   term,
		pty:    p,
		pool:   NewBufferPool(0),
		log:    term.logger,
		mode:   ExecutionNormal,
		resume: make(chan struct{}, 1),
	}
}

// SetExecutionMode changes how the loop advances; see ExecutionMode.
func (l *RunLoop) SetExecutionMode(mode ExecutionMode) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.mode = mode
}

func (l *RunLoop) currentMode() ExecutionMode {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.mode
}

// PendingTraceLen reports how many queued chunks are waiting to be
// dispatched once the loop leaves ExecutionWaiting or drains via
// ExecutionBreakAtEmptyQueue.
func (l *RunLoop) PendingTraceLen() int {
	return l.trace.Len()
}

// Resume unblocks a loop parked in ExecutionWaiting or lets
// ExecutionSingleStep advance by one read.
func (l *RunLoop) Resume() {
	select {
	case l.resume <- struct{}{}:
	default:
	}
}

// waitIfPaused blocks as required by the current mode and returns the
// mode this iteration of Run should dispatch under. It is also where
// mode transitions driven by pausing/resuming happen: SingleStep always
// re-arms into Waiting after letting one iteration through, and
// BreakAtEmptyQueue falls into Waiting only once its backlog is empty.
func (l *RunLoop) waitIfPaused(ctx context.Context) (ExecutionMode, error) {
	l.mu.Lock()
	mode := l.mode
	l.mu.Unlock()

	switch mode {
	case ExecutionNormal:
		return ExecutionNormal, nil

	case ExecutionBreakAtEmptyQueue:
		if l.trace.Len() > 0 {
			return ExecutionBreakAtEmptyQueue, nil
		}
		l.SetExecutionMode(ExecutionWaiting)
		mode = ExecutionWaiting
		fallthrough

	case ExecutionWaiting:
		select {
		case <-ctx.Done():
			return mode, ctx.Err()
		case <-l.resume:
			for _, chunk := range l.trace.Drain() {
				l.term.Write(chunk)
			}
			return ExecutionNormal, nil
		}

	case ExecutionSingleStep:
		select {
		case <-ctx.Done():
			return mode, ctx.Err()
		case <-l.resume:
			if chunk := l.trace.Dequeue(); chunk != nil {
				l.term.Write(chunk)
			}
			l.SetExecutionMode(ExecutionWaiting)
			return ExecutionSingleStep, nil
		}
	}

	return mode, nil
}

// isTransientPtyError reports whether err represents a retryable
// condition (the read was interrupted by a signal, or would have
// blocked on a non-blocking descriptor) rather than the pty actually
// having gone away.
func isTransientPtyError(err error) bool {
	return errors.Is(err, syscall.EINTR) || errors.Is(err, syscall.EAGAIN)
}

// Run reads from the pty until ctx is canceled or the pty is closed. It
// is meant to run in its own goroutine; Terminal itself stays safe to
// read from other goroutines concurrently via its own locking.
func (l *RunLoop) Run(ctx context.Context) error {
	for {
		dispatchMode, err := l.waitIfPaused(ctx)
		if err != nil {
			return err
		}

		// BreakAtEmptyQueue's backlog is drained one chunk per
		// iteration so ctx cancellation and mode changes are still
		// observed between chunks.
		if dispatchMode == ExecutionBreakAtEmptyQueue {
			if chunk := l.trace.Dequeue(); chunk != nil {
				l.term.Write(chunk)
			}
			continue
		}

		buf := l.pool.Get()
		n, err := l.pty.Read(buf)
		if n > 0 {
			data := make([]byte, n)
			copy(data, buf[:n])
			if l.currentMode() == ExecutionWaiting {
				l.trace.Enqueue(data)
			} else {
				l.term.Write(data)
				l.term.mu.RLock()
				rs := l.term.renderState
				l.term.mu.RUnlock()
				if rs != nil {
					rs.MarkDirty(nil)
				}
			}
		}
		l.pool.Put(buf)

		if err != nil {
			if errors.Is(err, io.EOF) {
				l.log.log(ErrPtyFatal, "pty closed")
				return nil
			}
			if isTransientPtyError(err) {
				l.log.log(ErrPtyTransient, "pty read interrupted, retrying", zap.Error(err))
				continue
			}
			l.log.log(ErrPtyFatal, "pty read error", zap.Error(err))
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}
}

// Close releases the underlying pty.
func (l *RunLoop) Close() error {
	return l.pty.Close()
}
