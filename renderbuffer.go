package vtcore

import (
	"image/color"
	"sync"
	"time"
)

// RenderCell is a flat, renderer-agnostic snapshot of one visible grid
// position. Unlike Cell it carries no pointers back into the live grid,
// so a renderer can hold a RenderBuffer across frames without racing the
// terminal loop, and it resolves colors/selection/search state that
// would otherwise require the renderer to reach back into Terminal.
type RenderCell struct {
	Char           rune
	Fg, Bg         color.RGBA
	UnderlineColor color.RGBA
	Flags          CellFlags
	Hyperlink      *Hyperlink
	Image          *CellImage

	// Cursor is true if the terminal's cursor currently occupies this cell.
	Cursor bool
	// HyperlinkHover is true if this cell's hyperlink matches the host's
	// currently hovered link (set via RenderBuffer's caller, not Terminal).
	HyperlinkHover bool
	// Selected is true if the cell falls within the active text selection.
	Selected bool
	// SearchMatch is true if the cell is part of the most recent Search
	// or SearchScrollback result set passed to BuildRenderBuffer.
	SearchMatch bool
}

// RenderBuffer is one complete frame: every visible cell plus the cursor
// position/style needed to draw it, built without touching pixels (the
// GPU/font rasterization happens entirely outside this module).
type RenderBuffer struct {
	Rows, Cols    int
	Cells         [][]RenderCell
	CursorRow     int
	CursorCol     int
	CursorVisible bool
	CursorStyle   CursorStyle
	Generation    uint64
}

// BuildRenderBuffer assembles a RenderBuffer from the terminal's current
// state, honoring the viewport's scroll offset so a renderer showing
// scrollback gets the right lines without needing to know about
// scrollback storage itself.
func (t *Terminal) BuildRenderBuffer(searchMatches []Position) *RenderBuffer {
	t.mu.RLock()
	defer t.mu.RUnlock()

	rb := &RenderBuffer{
		Rows:          t.rows,
		Cols:          t.cols,
		Cells:         make([][]RenderCell, t.rows),
		CursorRow:     t.cursor.Row,
		CursorCol:     t.cursor.Col,
		CursorVisible: t.cursor.Visible && t.viewport.offset == 0,
		CursorStyle:   t.cursor.Style,
	}

	selStart, selEnd, hasSel := t.textSelectionRangeLocked()

	matchSet := make(map[Position]bool, len(searchMatches))
	for _, m := range searchMatches {
		matchSet[m] = true
	}

	for row := 0; row < t.rows; row++ {
		line := t.viewportLine(row)
		out := make([]RenderCell, t.cols)
		for col := 0; col < t.cols && col < len(line); col++ {
			c := line[col]
			rc := RenderCell{
				Char:           c.Char,
				Fg:             resolveDefaultColor(c.Fg, true),
				Bg:             resolveDefaultColor(c.Bg, false),
				Flags:          c.Flags,
				Hyperlink:      c.Hyperlink,
				Image:          c.Image,
				Cursor:         row == t.cursor.Row && col == t.cursor.Col && rb.CursorVisible,
				SearchMatch:    matchSet[Position{Row: row, Col: col}],
			}
			if c.UnderlineColor != nil {
				rc.UnderlineColor = resolveDefaultColor(c.UnderlineColor, true)
			}
			if c.HasFlag(CellFlagReverse) {
				rc.Fg, rc.Bg = rc.Bg, rc.Fg
			}
			if hasSel {
				pos := Position{Row: row, Col: col}
				if !pos.Before(selStart) && !selEnd.Before(pos) {
					rc.Selected = true
				}
			}
			out[col] = rc
		}
		rb.Cells[row] = out
	}

	return rb
}

// RenderBufferState is the double-buffer swap protocol a pull-based
// renderer drives by calling TrySwapBuffers once per vsync tick, per
// spec §4.13.
type RenderBufferState int

const (
	// StateWaitingForRefresh: the back buffer hasn't been touched since
	// the last swap; there is nothing new to show.
	StateWaitingForRefresh RenderBufferState = iota
	// StateRefreshBuffersAndTrySwap: new content landed in the back
	// buffer; the next TrySwapBuffers call should publish it.
	StateRefreshBuffersAndTrySwap
	// StateTrySwapBuffers: a swap was attempted and is pending
	// confirmation (used under synchronized-output batching).
	StateTrySwapBuffers
)

// synchronizedOutputCap is the hard upper bound spec §5 "Refresh rate"
// places on how long a DEC mode 2026 synchronized-output batch may defer
// a swap before the renderer shows a frame anyway.
const synchronizedOutputCap = 4 * time.Second

// RenderDoubleBuffer holds two RenderBuffers and exposes the lifecycle a
// renderer polls: mark dirty, try to swap, read the front buffer. It is
// safe for concurrent use by the terminal loop (writer) and a render
// thread (reader) running independently, matching the dual-thread model
// in spec §5.
type RenderDoubleBuffer struct {
	term *Terminal

	mu    sync.Mutex
	state RenderBufferState
	front *RenderBuffer
	back  *RenderBuffer

	synchronized  bool
	syncStartedAt time.Time
	generation    uint64

	refreshRateHz   float64
	refreshInterval time.Duration
	lastUpdate      time.Time
}

// NewRenderDoubleBuffer creates the double-buffer state for term and
// attaches it, so SetMode(synchronized output) can reach it directly.
func NewRenderDoubleBuffer(term *Terminal) *RenderDoubleBuffer {
	rdb := &RenderDoubleBuffer{term: term, state: StateWaitingForRefresh}
	term.mu.Lock()
	term.renderState = rdb
	term.mu.Unlock()
	return rdb
}

// SetRefreshRate caps how often MarkDirty actually rebuilds the back
// buffer. Refresh requests that land within one interval of the last
// rebuild coalesce into a no-op, per spec §6.3's set_refresh_rate(Hz).
// hz <= 0 removes the cap (every MarkDirty call rebuilds immediately,
// the default).
func (rdb *RenderDoubleBuffer) SetRefreshRate(hz float64) {
	rdb.mu.Lock()
	defer rdb.mu.Unlock()
	rdb.refreshRateHz = hz
	if hz <= 0 {
		rdb.refreshInterval = 0
		return
	}
	rdb.refreshInterval = time.Duration(float64(time.Second) / hz)
}

// RefreshRate returns the configured refresh rate in Hz, or 0 if uncapped.
func (rdb *RenderDoubleBuffer) RefreshRate() float64 {
	rdb.mu.Lock()
	defer rdb.mu.Unlock()
	return rdb.refreshRateHz
}

// MarkDirty rebuilds the back buffer from the terminal's current state
// and flags it ready to swap, unless a synchronized-output batch is in
// progress and hasn't exceeded its cap, or the configured refresh rate
// hasn't yet elapsed since the last rebuild (in which case this request
// coalesces with whatever triggers the next one).
func (rdb *RenderDoubleBuffer) MarkDirty(searchMatches []Position) {
	rdb.mu.Lock()
	defer rdb.mu.Unlock()

	now := time.Now()
	if rdb.refreshInterval > 0 && rdb.state == StateWaitingForRefresh &&
		!rdb.lastUpdate.IsZero() && now.Sub(rdb.lastUpdate) < rdb.refreshInterval {
		return
	}

	if rdb.synchronized && now.Sub(rdb.syncStartedAt) < synchronizedOutputCap {
		rdb.state = StateTrySwapBuffers
		rdb.back = rdb.term.BuildRenderBuffer(searchMatches)
		rdb.lastUpdate = now
		return
	}

	rdb.generation++
	buf := rdb.term.BuildRenderBuffer(searchMatches)
	buf.Generation = rdb.generation
	rdb.back = buf
	rdb.state = StateRefreshBuffersAndTrySwap
	rdb.lastUpdate = now
}

// TrySwapBuffers publishes the back buffer as the front buffer if one is
// pending. A buffer built during an open synchronized-output batch stays
// pending until the batch ends or exceeds synchronizedOutputCap. Returns
// true if a swap happened.
func (rdb *RenderDoubleBuffer) TrySwapBuffers() bool {
	rdb.mu.Lock()
	defer rdb.mu.Unlock()

	if rdb.state == StateWaitingForRefresh || rdb.back == nil {
		return false
	}
	if rdb.state == StateTrySwapBuffers && rdb.synchronized &&
		time.Since(rdb.syncStartedAt) < synchronizedOutputCap {
		return false
	}

	rdb.front = rdb.back
	rdb.back = nil
	rdb.state = StateWaitingForRefresh
	return true
}

// Front returns the most recently swapped-in RenderBuffer, or nil if
// nothing has ever been swapped.
func (rdb *RenderDoubleBuffer) Front() *RenderBuffer {
	rdb.mu.Lock()
	defer rdb.mu.Unlock()
	return rdb.front
}

// setSynchronized toggles DEC mode 2026 batching. Disabling it
// immediately allows the next MarkDirty to swap unconditionally.
func (rdb *RenderDoubleBuffer) setSynchronized(on bool) {
	rdb.mu.Lock()
	defer rdb.mu.Unlock()
	rdb.synchronized = on
	if on {
		rdb.syncStartedAt = time.Now()
	}
}
