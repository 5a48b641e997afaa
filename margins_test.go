package vtcore

import "testing"

func TestLeftRightMarginModeGating(t *testing.T) {
	term := New(WithSize(10, 20))

	term.SetLeftRightMargins(2, 8)
	if left, right := term.LeftRightMargins(); left != 0 || right != 20 {
		t.Fatalf("expected DECSLRM to be ignored while DECLRMM is disabled, got (%d,%d)", left, right)
	}

	term.SetLeftRightMarginMode(true)
	term.SetLeftRightMargins(2, 8)
	if left, right := term.LeftRightMargins(); left != 2 || right != 8 {
		t.Errorf("expected margins (2,8), got (%d,%d)", left, right)
	}

	term.SetLeftRightMarginMode(false)
	if left, right := term.LeftRightMargins(); left != 0 || right != 20 {
		t.Errorf("expected disabling DECLRMM to reset margins to full width, got (%d,%d)", left, right)
	}
}

func TestSetLeftRightMarginsRejectsInverted(t *testing.T) {
	term := New(WithSize(10, 20))
	term.SetLeftRightMarginMode(true)

	term.SetLeftRightMargins(10, 3)
	if left, right := term.LeftRightMargins(); left != 0 || right != 20 {
		t.Errorf("expected an inverted left>=right request to be rejected, got (%d,%d)", left, right)
	}
}

// TestInputWrapsAtRightMarginWhenInsideMargins is the regression test for
// wiring inMarginColumns into inputInternal's wrap boundary: a wide
// character that doesn't fit before the right margin must wrap to the
// left margin column, not to column 0 or the full line width.
func TestInputWrapsAtRightMarginWhenInsideMargins(t *testing.T) {
	term := New(WithSize(5, 10))
	term.SetLeftRightMarginMode(true)
	term.SetLeftRightMargins(2, 6)

	term.Goto(0, 5)
	term.Input('世') // width 2, doesn't fit before column 6

	row, col := term.CursorPos()
	if row != 1 {
		t.Fatalf("expected the margin-bound wrap to advance to the next row, got row %d", row)
	}
	if col != 4 {
		t.Errorf("expected the cursor to land at left margin + the wide char + its spacer (4), got %d", col)
	}
	if !term.IsWrapped(0) {
		t.Error("expected row 0 to be flagged as wrapped")
	}
}

// TestInputDoesNotWrapBeforeRightMargin checks the boundary is the
// margin, not the full line width: a character that fits exactly at the
// last margin column should not trigger a wrap at all.
func TestInputDoesNotWrapBeforeRightMargin(t *testing.T) {
	term := New(WithSize(5, 10))
	term.SetLeftRightMarginMode(true)
	term.SetLeftRightMargins(2, 6)

	term.Goto(0, 5)
	term.Input('A')

	row, col := term.CursorPos()
	if row != 0 || col != 6 {
		t.Errorf("expected a single-width char at the last margin column to advance without wrapping, got (%d,%d)", row, col)
	}
	if term.IsWrapped(0) {
		t.Error("expected row 0 not to be flagged as wrapped")
	}
}

func TestInMarginColumnsBoundaries(t *testing.T) {
	term := New(WithSize(10, 20))
	term.SetLeftRightMarginMode(true)
	term.SetLeftRightMargins(3, 9)

	cases := []struct {
		col  int
		want bool
	}{
		{2, false},
		{3, true},
		{8, true},
		{9, false},
	}
	for _, c := range cases {
		if got := term.inMarginColumns(c.col); got != c.want {
			t.Errorf("inMarginColumns(%d) = %v, want %v", c.col, got, c.want)
		}
	}
}
