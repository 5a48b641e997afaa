package vtcore

import "testing"

func TestSetMarkedAndFindMarkers(t *testing.T) {
	b := NewBuffer(6, 10)

	b.SetMarked(1, true)
	b.SetMarked(4, true)

	if !b.IsMarked(1) || !b.IsMarked(4) {
		t.Fatal("expected rows 1 and 4 to report marked")
	}
	if b.IsMarked(0) || b.IsMarked(2) || b.IsMarked(3) || b.IsMarked(5) {
		t.Error("expected unmarked rows to report unmarked")
	}

	if got := b.FindMarkerUpwards(4); got != 1 {
		t.Errorf("FindMarkerUpwards(4) = %d, want 1", got)
	}
	if got := b.FindMarkerUpwards(1); got != -1 {
		t.Errorf("FindMarkerUpwards(1) = %d, want -1 (no marker above)", got)
	}
	if got := b.FindMarkerDownwards(1); got != 4 {
		t.Errorf("FindMarkerDownwards(1) = %d, want 4", got)
	}
	if got := b.FindMarkerDownwards(4); got != -1 {
		t.Errorf("FindMarkerDownwards(4) = %d, want -1 (no marker below)", got)
	}
}

func TestIsMarkedOutOfRange(t *testing.T) {
	b := NewBuffer(4, 10)
	if b.IsMarked(-1) || b.IsMarked(100) {
		t.Error("expected out-of-range rows to report unmarked rather than panic")
	}
	b.SetMarked(-1, true)
	b.SetMarked(100, true)
}

// TestSetMarkedSurvivesRingRotation is the regression test for SetMarked
// indexing through physRow: a row marked before a full-page scroll must
// keep tracking the same logical content after the ring rotates, and a
// newly exposed row must start out unmarked.
func TestSetMarkedSurvivesRingRotation(t *testing.T) {
	b := NewBuffer(4, 10)
	for row := 0; row < 4; row++ {
		cell := NewCell()
		cell.Char = rune('A' + row)
		b.SetCell(row, 0, cell)
	}
	b.SetMarked(2, true)

	b.ScrollUp(0, 4, 1)

	if !b.IsMarked(1) {
		t.Error("expected the marked line to track its content after scrolling (now at logical row 1)")
	}
	if b.IsMarked(3) {
		t.Error("expected the newly exposed bottom row to start out unmarked")
	}
}

func TestReflowOnResizeJoinsWrappedLines(t *testing.T) {
	b := NewBuffer(2, 4)
	for col := 0; col < 4; col++ {
		cell := NewCell()
		cell.Char = rune('A' + col)
		b.SetCell(0, col, cell)
	}
	b.SetWrapped(0, true)
	for col := 0; col < 2; col++ {
		cell := NewCell()
		cell.Char = rune('E' + col)
		b.SetCell(1, col, cell)
	}

	out := b.ReflowOnResize(8)
	if len(out) != 1 {
		t.Fatalf("expected the wrapped pair to join into a single logical line, got %d rows", len(out))
	}
	got := string([]rune{out[0][0].Char, out[0][1].Char, out[0][2].Char, out[0][3].Char, out[0][4].Char, out[0][5].Char})
	if got != "ABCDEF" {
		t.Errorf("expected joined content %q, got %q", "ABCDEF", got)
	}
}

func TestReflowOnResizeRewrapsToNarrowerWidth(t *testing.T) {
	b := NewBuffer(1, 6)
	for col := 0; col < 6; col++ {
		cell := NewCell()
		cell.Char = rune('A' + col)
		b.SetCell(0, col, cell)
	}

	out := b.ReflowOnResize(3)
	if len(out) != 2 {
		t.Fatalf("expected a 6-column line to split into 2 rows at width 3, got %d", len(out))
	}
	if string([]rune{out[0][0].Char, out[0][1].Char, out[0][2].Char}) != "ABC" {
		t.Errorf("unexpected first chunk: %q", out[0])
	}
	if string([]rune{out[1][0].Char, out[1][1].Char, out[1][2].Char}) != "DEF" {
		t.Errorf("unexpected second chunk: %q", out[1])
	}
}

func TestReflowOnResizeInvalidWidth(t *testing.T) {
	b := NewBuffer(2, 4)
	if out := b.ReflowOnResize(0); out != nil {
		t.Errorf("expected nil for a non-positive target width, got %v", out)
	}
}
