package vtcore

import (
	"fmt"
	"strings"
	"time"
)

// StatusDisplayType selects which auxiliary one-line screen, if any, is
// shown alongside the main grid.
type StatusDisplayType int

const (
	// StatusDisplayNone shows no auxiliary line; the main grid uses the
	// full terminal height.
	StatusDisplayNone StatusDisplayType = iota
	// StatusDisplayIndicator shows a system-generated line reporting the
	// insert/replace mode, the viewport scroll offset, whether a selection
	// is active, and the clock.
	StatusDisplayIndicator
	// StatusDisplayHostWritable shows a line the host writes to directly
	// (DECSASD selects it as the active display for subsequent output).
	StatusDisplayHostWritable
)

// StatusDisplayPosition controls whether the auxiliary line is drawn above
// or below the main range.
type StatusDisplayPosition int

const (
	StatusDisplayBottom StatusDisplayPosition = iota
	StatusDisplayTop
)

// SetStatusDisplayType changes which auxiliary line is visible, allocating
// or releasing the one-row status line. The main grid's row count is not
// changed. It is a
// host-callable counterpart to DECSASD/DECSSDT, which go-ansicode's
// Handler interface has no dedicated callback for.
func (t *Terminal) SetStatusDisplayType(kind StatusDisplayType) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if kind == t.statusDisplay {
		return
	}

	hadLine := t.statusDisplay != StatusDisplayNone
	wantsLine := kind != StatusDisplayNone
	t.statusDisplay = kind

	if hadLine == wantsLine {
		return
	}

	if wantsLine {
		t.hostStatusLine = make([]Cell, t.cols)
		for i := range t.hostStatusLine {
			t.hostStatusLine[i] = Cell{Char: ' '}
		}
	} else {
		t.hostStatusLine = nil
	}
}

// StatusDisplayTypeValue returns the currently active status display.
func (t *Terminal) StatusDisplayTypeValue() StatusDisplayType {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.statusDisplay
}

// SetStatusDisplayPosition controls whether the auxiliary line renders
// above or below the main grid.
func (t *Terminal) SetStatusDisplayPosition(pos StatusDisplayPosition) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.statusDisplayPosition = pos
}

// WriteHostStatusLine overwrites the host-writable status line's text.
// Has no effect unless StatusDisplayHostWritable is the active display.
func (t *Terminal) WriteHostStatusLine(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.statusDisplay != StatusDisplayHostWritable {
		return
	}
	if t.hostStatusLine == nil {
		t.hostStatusLine = make([]Cell, t.cols)
	}
	runes := []rune(text)
	for i := range t.hostStatusLine {
		if i < len(runes) {
			t.hostStatusLine[i] = Cell{Char: runes[i]}
		} else {
			t.hostStatusLine[i] = Cell{Char: ' '}
		}
	}
}

// indicatorStatusLineLocked formats the system-generated indicator line:
// insert/replace mode (IRM/REP), the viewport scroll offset, whether a
// selection is active (SEL), and a clock.
// Caller must hold t.mu (read or write).
func (t *Terminal) indicatorStatusLineLocked() []Cell {
	var sb strings.Builder

	mode := "IRM"
	if t.modes&ModeInsert == 0 {
		mode = "REP"
	}
	sb.WriteString(mode)

	if t.viewport.offset > 0 {
		fmt.Fprintf(&sb, " SCROLL:-%d", t.viewport.offset)
	}

	if t.textSelection.State != SelectionWaiting {
		sb.WriteString(" SEL")
	}

	fmt.Fprintf(&sb, " %s", time.Now().Format("15:04:05"))

	runes := []rune(sb.String())
	line := make([]Cell, t.cols)
	for i := range line {
		if i < len(runes) {
			line[i] = Cell{Char: runes[i]}
		} else {
			line[i] = Cell{Char: ' '}
		}
	}
	return line
}

// StatusLineCells returns the current content of the active auxiliary
// line, or nil if no status display is active.
func (t *Terminal) StatusLineCells() []Cell {
	t.mu.RLock()
	defer t.mu.RUnlock()

	switch t.statusDisplay {
	case StatusDisplayHostWritable:
		out := make([]Cell, len(t.hostStatusLine))
		copy(out, t.hostStatusLine)
		return out
	case StatusDisplayIndicator:
		return t.indicatorStatusLineLocked()
	default:
		return nil
	}
}
