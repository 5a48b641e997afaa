package vtcore

// Viewport tracks how far a renderer has scrolled into a Terminal's
// primary-buffer scrollback. Offset 0 means the viewport shows the live
// screen; a positive offset means the renderer is looking at history,
// with 1 being the line directly above the live screen.
//
// Viewport never touches the grid itself — it only clamps an offset
// against the current scrollback length, the way a renderer asks "what
// should I draw" without the Screen needing to know about scrolling UI.
type Viewport struct {
	offset int
	pinned bool
}

// ScrollUpBy moves the viewport n lines further into history, clamped to
// the available scrollback.
func (t *Terminal) ScrollUpBy(n int) {
	if n <= 0 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	max := t.primaryBuffer.ScrollbackLen()
	t.viewport.offset += n
	if t.viewport.offset > max {
		t.viewport.offset = max
	}
}

// ScrollDownBy moves the viewport n lines back toward the live screen,
// clamped at 0.
func (t *Terminal) ScrollDownBy(n int) {
	if n <= 0 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	t.viewport.offset -= n
	if t.viewport.offset < 0 {
		t.viewport.offset = 0
	}
}

// ScrollToBottom resets the viewport to the live screen. Terminal.Write
// performs the same reset whenever new output arrives while the host hasn't
// pinned the viewport into history (see [Terminal.SetViewportPinned]).
func (t *Terminal) ScrollToBottom() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.viewport.offset = 0
}

// ViewportOffset returns the current scroll offset into history, where 0
// is the live screen.
func (t *Terminal) ViewportOffset() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.viewport.offset
}

// SetViewportPinned controls whether incoming output is allowed to reset
// the viewport to the bottom. Hosts pin the viewport while the user is
// reading scrollback so a noisy background process doesn't yank the view
// out from under them.
func (t *Terminal) SetViewportPinned(pinned bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.viewport.pinned = pinned
}

// ViewportPinned reports whether the viewport is currently pinned.
func (t *Terminal) ViewportPinned() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.viewport.pinned
}

// viewportLine returns the cells for a visible row, accounting for the
// current scroll offset: rows within the offset come from scrollback,
// the rest from the active buffer. Must be called with t.mu held.
func (t *Terminal) viewportLine(row int) []Cell {
	off := t.viewport.offset
	if off == 0 || t.activeBuffer != t.primaryBuffer {
		line := make([]Cell, t.cols)
		for col := 0; col < t.cols; col++ {
			if c := t.activeBuffer.Cell(row, col); c != nil {
				line[col] = *c
			}
		}
		return line
	}

	scrollbackLen := t.primaryBuffer.ScrollbackLen()
	// The viewport's top row maps to scrollback index (scrollbackLen - off).
	sbIndex := scrollbackLen - off + row
	if sbIndex >= 0 && sbIndex < scrollbackLen {
		if line := t.primaryBuffer.ScrollbackLine(sbIndex); line != nil {
			return line
		}
	}

	// Below the scrollback window: map back onto the live grid.
	liveRow := sbIndex - scrollbackLen
	line := make([]Cell, t.cols)
	for col := 0; col < t.cols; col++ {
		if c := t.activeBuffer.Cell(liveRow, col); c != nil {
			line[col] = *c
		}
	}
	return line
}
