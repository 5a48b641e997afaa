package vtcore

import (
	"image/color"
	"testing"
)

func TestPushPopColorsRoundTrip(t *testing.T) {
	term := New(WithSize(10, 20))

	term.SetColor(1, color.RGBA{R: 255, A: 255})
	term.PushColors()
	if got := term.PaletteStackDepth(); got != 1 {
		t.Fatalf("expected stack depth 1 after PushColors, got %d", got)
	}

	term.SetColor(1, color.RGBA{G: 255, A: 255})

	term.PopColors()
	if got := term.PaletteStackDepth(); got != 0 {
		t.Errorf("expected stack depth 0 after PopColors, got %d", got)
	}

	term.mu.RLock()
	restored := term.colors[1]
	term.mu.RUnlock()
	if restored != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("expected PopColors to restore the pushed color, got %v", restored)
	}
}

func TestPopColorsOnEmptyStackIsNoop(t *testing.T) {
	term := New(WithSize(10, 20))
	term.PopColors()
	if got := term.PaletteStackDepth(); got != 0 {
		t.Errorf("expected PopColors on an empty stack to stay at depth 0, got %d", got)
	}
}

func TestPushColorsRestoresUnsetSlotOnPop(t *testing.T) {
	term := New(WithSize(10, 20))

	// Slot 2 was never explicitly set: PushColors snapshots "unset" (nil),
	// and after a later SetColor, PopColors must restore that unset state
	// by deleting the slot rather than writing a zero-value color.
	term.PushColors()
	term.SetColor(2, color.RGBA{B: 255, A: 255})
	term.PopColors()

	term.mu.RLock()
	_, ok := term.colors[2]
	term.mu.RUnlock()
	if ok {
		t.Error("expected PopColors to delete a slot that was unset at push time")
	}
}

func TestPaletteStackMultipleLevels(t *testing.T) {
	term := New(WithSize(10, 20))

	term.PushColors()
	term.PushColors()
	term.PushColors()
	if got := term.PaletteStackDepth(); got != 3 {
		t.Fatalf("expected depth 3, got %d", got)
	}

	term.PopColors()
	term.PopColors()
	if got := term.PaletteStackDepth(); got != 1 {
		t.Errorf("expected depth 1 after two pops, got %d", got)
	}
}
