package vtcore

import "strings"

// SelectionKind distinguishes the shapes a selection drag can take.
type SelectionKind int

const (
	// SelectionLinear selects a contiguous run of text across line breaks,
	// the default for a plain click-drag.
	SelectionLinear SelectionKind = iota
	// SelectionWordWise snaps both endpoints to word boundaries.
	SelectionWordWise
	// SelectionFullLine snaps both endpoints to whole lines.
	SelectionFullLine
	// SelectionRectangular selects a fixed column range on every row it
	// spans (block/column selection).
	SelectionRectangular
)

// SelectionState is the selection drag state machine.
type SelectionState int

const (
	// SelectionWaiting means no drag is in progress.
	SelectionWaiting SelectionState = iota
	// SelectionInProgress means the pointer is down and the anchor is set.
	SelectionInProgress
	// SelectionComplete means the drag ended; the range remains until
	// cleared or a new selection begins.
	SelectionComplete
)

// TextSelection is a richer counterpart to the plain rectangular
// [Selection], which remains available: it tracks a kind, a state machine, and an anchor separate
// from the active endpoint so extending a selection behaves like a real
// terminal emulator (the anchor never moves once the drag starts).
type TextSelection struct {
	Kind   SelectionKind
	State  SelectionState
	Anchor Position
	Active Position
}

func normalizeRange(a, b Position) (start, end Position) {
	if b.Before(a) {
		return b, a
	}
	return a, b
}

// BeginSelection starts a new drag of the given kind anchored at pos.
func (t *Terminal) BeginSelection(pos Position, kind SelectionKind) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.textSelection = TextSelection{
		Kind:   kind,
		State:  SelectionInProgress,
		Anchor: pos,
		Active: pos,
	}
}

// ExtendSelection moves the active endpoint of an in-progress selection.
// A no-op if no drag is in progress.
func (t *Terminal) ExtendSelection(pos Position) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.textSelection.State != SelectionInProgress {
		return
	}
	t.textSelection.Active = pos
}

// EndSelection finalizes the drag, leaving the range selected until
// cleared or replaced.
func (t *Terminal) EndSelection() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.textSelection.State == SelectionInProgress {
		t.textSelection.State = SelectionComplete
	}
}

// ClearTextSelection deactivates the current selection.
func (t *Terminal) ClearTextSelection() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.textSelection = TextSelection{}
}

// HasTextSelection reports whether a selection is in progress or complete.
func (t *Terminal) HasTextSelection() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.textSelection.State != SelectionWaiting
}

// TextSelectionRange returns the normalized, kind-adjusted selection
// bounds. ok is false if there is no active selection.
func (t *Terminal) TextSelectionRange() (start, end Position, ok bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.textSelectionRangeLocked()
}

func (t *Terminal) textSelectionRangeLocked() (start, end Position, ok bool) {
	sel := t.textSelection
	if sel.State == SelectionWaiting {
		return Position{}, Position{}, false
	}

	start, end = normalizeRange(sel.Anchor, sel.Active)

	switch sel.Kind {
	case SelectionFullLine:
		start.Col = 0
		end.Col = t.cols - 1
	case SelectionWordWise:
		start = t.wordStartLocked(start)
		end = t.wordEndLocked(end)
	}

	return start, end, true
}

// wordStartLocked scans left from pos to the beginning of the word it
// sits in. Must be called with t.mu held.
func (t *Terminal) wordStartLocked(pos Position) Position {
	for pos.Col > 0 {
		c := t.activeBuffer.Cell(pos.Row, pos.Col-1)
		if c == nil || !isWordRune(c.Char) {
			break
		}
		pos.Col--
	}
	return pos
}

// wordEndLocked scans right from pos to the end of the word it sits in.
// Must be called with t.mu held.
func (t *Terminal) wordEndLocked(pos Position) Position {
	for pos.Col < t.cols-1 {
		c := t.activeBuffer.Cell(pos.Row, pos.Col+1)
		if c == nil || !isWordRune(c.Char) {
			break
		}
		pos.Col++
	}
	return pos
}

func isWordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '_' || r == '-' || r == '.':
		return true
	}
	return false
}

// SelectedText extracts the text within the active selection, honoring
// its kind. Rectangular selections keep the same column span on every
// row; all other kinds join wrapped lines without inserting a newline
// (matching the buffer's own Wrapped-line bookkeeping) and trim trailing
// blank cells from each emitted line.
func (t *Terminal) SelectedText() string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	start, end, ok := t.textSelectionRangeLocked()
	if !ok {
		return ""
	}

	var b strings.Builder
	for row := start.Row; row <= end.Row && row < t.rows; row++ {
		startCol, endCol := 0, t.cols
		switch t.textSelection.Kind {
		case SelectionRectangular:
			startCol, endCol = start.Col, end.Col+1
		default:
			if row == start.Row {
				startCol = start.Col
			}
			if row == end.Row {
				endCol = end.Col + 1
			}
		}

		line := t.extractRowLocked(row, startCol, endCol)
		b.WriteString(strings.TrimRight(line, " "))

		isWrapContinuation := row < end.Row && t.activeBuffer.IsWrapped(row) &&
			t.textSelection.Kind != SelectionRectangular
		if row < end.Row && !isWrapContinuation {
			b.WriteByte('\n')
		}
	}

	return b.String()
}

func (t *Terminal) extractRowLocked(row, startCol, endCol int) string {
	var runes []rune
	for col := startCol; col < endCol && col < t.cols; col++ {
		cell := t.activeBuffer.Cell(row, col)
		if cell == nil || cell.IsWideSpacer() {
			continue
		}
		if cell.Char == 0 {
			runes = append(runes, ' ')
		} else {
			runes = append(runes, cell.Char)
		}
	}
	return string(runes)
}

// applyScrollToSelection shifts a selection anchored in the scrolling
// region by n rows, called by scrollIfNeeded when output scrolls the
// active buffer up so an in-progress drag tracks the text instead of the screen position.
// Per invariant I6, if either endpoint scrolls out of the retained range
// (off the top of history, or below the bottom of the page) the
// selection is cleared rather than left pointing at content that no
// longer exists. Must be called with t.mu already held.
func (t *Terminal) applyScrollToSelection(n int) {
	if t.textSelection.State == SelectionWaiting {
		return
	}
	t.textSelection.Anchor.Row -= n
	t.textSelection.Active.Row -= n

	historyCap := 0
	if t.activeBuffer != nil && t.activeBuffer.ScrollbackProvider() != nil {
		historyCap = t.activeBuffer.ScrollbackProvider().MaxLines()
	}
	outOfRange := func(row int) bool {
		if row >= t.rows {
			return true
		}
		// A negative MaxLines means unbounded scrollback (no lower bound
		// to enforce); otherwise rows older than -historyCap have
		// already been evicted and can no longer be selected.
		return historyCap >= 0 && row < -historyCap
	}

	if outOfRange(t.textSelection.Anchor.Row) || outOfRange(t.textSelection.Active.Row) {
		t.textSelection = TextSelection{}
	}
}
