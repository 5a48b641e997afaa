package vtcore

import (
	"strings"
	"testing"
)

func TestSetStatusDisplayTypeAllocatesHostLine(t *testing.T) {
	term := New(WithSize(10, 20))

	if term.StatusDisplayTypeValue() != StatusDisplayNone {
		t.Fatal("expected no status display by default")
	}

	term.SetStatusDisplayType(StatusDisplayHostWritable)
	if term.StatusDisplayTypeValue() != StatusDisplayHostWritable {
		t.Fatal("expected StatusDisplayTypeValue to report HostWritable")
	}
	if got := term.StatusLineCells(); len(got) != 20 {
		t.Errorf("expected a blank %d-wide host status line, got %d cells", 20, len(got))
	}

	term.SetStatusDisplayType(StatusDisplayNone)
	if got := term.StatusLineCells(); got != nil {
		t.Errorf("expected no status line cells once disabled, got %v", got)
	}
}

func TestWriteHostStatusLineOnlyWhenActive(t *testing.T) {
	term := New(WithSize(10, 10))

	term.WriteHostStatusLine("hello")
	if got := term.StatusLineCells(); got != nil {
		t.Fatal("expected WriteHostStatusLine to have no effect while display is None")
	}

	term.SetStatusDisplayType(StatusDisplayHostWritable)
	term.WriteHostStatusLine("hi")

	cells := term.StatusLineCells()
	if cells[0].Char != 'h' || cells[1].Char != 'i' {
		t.Errorf("expected the written text at the start of the line, got %q%q", cells[0].Char, cells[1].Char)
	}
	for i := 2; i < len(cells); i++ {
		if cells[i].Char != ' ' {
			t.Errorf("expected the rest of the line blank-padded, got %q at %d", cells[i].Char, i)
			break
		}
	}
}

func TestWriteHostStatusLineTruncatesToWidth(t *testing.T) {
	term := New(WithSize(10, 5))
	term.SetStatusDisplayType(StatusDisplayHostWritable)
	term.WriteHostStatusLine("abcdefgh")

	cells := term.StatusLineCells()
	if len(cells) != 5 {
		t.Fatalf("expected the status line clamped to terminal width 5, got %d", len(cells))
	}
	if string([]rune{cells[0].Char, cells[1].Char, cells[2].Char, cells[3].Char, cells[4].Char}) != "abcde" {
		t.Errorf("expected truncated content, got %v", cells)
	}
}

func TestIndicatorStatusLineReflectsState(t *testing.T) {
	storage := &testScrollback{lines: make([][]Cell, 0)}
	storage.SetMaxLines(100)
	term := New(WithSize(3, 40), WithScrollback(storage))
	term.SetStatusDisplayType(StatusDisplayIndicator)

	for i := 0; i < 6; i++ {
		term.WriteString("x\n")
	}
	term.ScrollUpBy(2)

	term.BeginSelection(Position{Row: 0, Col: 0}, SelectionLinear)

	cells := term.StatusLineCells()
	line := string(cellsToRunes(cells))
	if want := "REP"; line[:3] != want {
		t.Errorf("expected the indicator to default to REP (replace mode), got %q", line)
	}
	if !strings.Contains(line, "SCROLL:-2") {
		t.Errorf("expected the indicator to report the scroll offset, got %q", line)
	}
	if !strings.Contains(line, "SEL") {
		t.Errorf("expected the indicator to report an active selection, got %q", line)
	}
}

func TestSetStatusDisplayPosition(t *testing.T) {
	term := New(WithSize(10, 20))
	term.SetStatusDisplayPosition(StatusDisplayTop)
}

func cellsToRunes(cells []Cell) []rune {
	out := make([]rune, len(cells))
	for i, c := range cells {
		out[i] = c.Char
	}
	return out
}
