package vtcore

// Marked lines let a host jump between shell prompts or other points of
// interest without re-scanning scrollback content on every key press.
// Buffer tracks the flag per row the same way it already tracks Wrapped.

// SetMarked flags or unflags the given row as a jump target.
func (b *Buffer) SetMarked(row int, marked bool) {
	if row < 0 || row >= b.rows {
		return
	}
	if b.marked == nil {
		b.marked = make([]bool, b.rows)
	}
	b.marked[b.physRow(row)] = marked
}

// IsMarked reports whether the given row was flagged with SetMarked.
func (b *Buffer) IsMarked(row int) bool {
	if row < 0 || row >= b.rows || b.marked == nil {
		return false
	}
	return b.marked[b.physRow(row)]
}

// FindMarkerUpwards returns the nearest marked row strictly above from,
// or -1 if none exists.
func (b *Buffer) FindMarkerUpwards(from int) int {
	for row := from - 1; row >= 0; row-- {
		if b.IsMarked(row) {
			return row
		}
	}
	return -1
}

// FindMarkerDownwards returns the nearest marked row strictly below from,
// or -1 if none exists.
func (b *Buffer) FindMarkerDownwards(from int) int {
	for row := from + 1; row < b.rows; row++ {
		if b.IsMarked(row) {
			return row
		}
	}
	return -1
}

// ReflowOnResize re-wraps logical lines to the new column width before the
// physical grid is resized, preserving the invariant that a round trip
// through a width change and back produces the same visible text layout
// for unwrapped lines (I7). It returns the reflowed rows and leaves the
// buffer unchanged; Resize does not call it and still truncates/pads.
//
// Only rows whose Wrapped flag chains them to the next row are joined;
// an explicit newline (Wrapped == false) always starts a new logical line.
func (b *Buffer) ReflowOnResize(newCols int) [][]Cell {
	if newCols <= 0 {
		return nil
	}

	var logical [][]Cell
	var cur []Cell

	for row := 0; row < b.rows; row++ {
		cur = append(cur, b.lineAt(row)...)
		if !b.IsWrapped(row) || row == b.rows-1 {
			logical = append(logical, trimTrailingBlank(cur))
			cur = nil
		}
	}

	var out [][]Cell
	for _, line := range logical {
		if len(line) == 0 {
			out = append(out, make([]Cell, newCols))
			continue
		}
		for start := 0; start < len(line); start += newCols {
			end := start + newCols
			if end > len(line) {
				end = len(line)
			}
			chunk := make([]Cell, newCols)
			copy(chunk, line[start:end])
			for i := len(line[start:end]); i < newCols; i++ {
				chunk[i] = NewCell()
			}
			out = append(out, chunk)
		}
	}
	return out
}

// trimTrailingBlank removes trailing default cells from a reflowed logical
// line so that rewrapping doesn't manufacture runs of empty columns.
func trimTrailingBlank(line []Cell) []Cell {
	last := len(line) - 1
	for last >= 0 {
		c := &line[last]
		fg, fgNamed := c.Fg.(*NamedColor)
		bg, bgNamed := c.Bg.(*NamedColor)
		defaultFg := c.Fg == nil || (fgNamed && fg.Name == NamedColorForeground)
		defaultBg := c.Bg == nil || (bgNamed && bg.Name == NamedColorBackground)
		if c.Char != ' ' || !defaultFg || !defaultBg || c.Flags&^CellFlagDirty != 0 ||
			c.Hyperlink != nil || c.Image != nil {
			break
		}
		last--
	}
	return line[:last+1]
}
