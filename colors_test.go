package vtcore

import (
	"image/color"
	"testing"
)

func TestRGBAToHex(t *testing.T) {
	got := RGBAToHex(color.RGBA{R: 0x1a, G: 0x2b, B: 0x3c, A: 255})
	if got != "#1a2b3c" {
		t.Errorf("expected #1a2b3c, got %s", got)
	}
}

func TestDefaultPaletteSize(t *testing.T) {
	if len(DefaultPalette) != 256 {
		t.Fatalf("expected 256 palette entries, got %d", len(DefaultPalette))
	}
	// Color cube entry 16 is pure black (0,0,0).
	if c := DefaultPalette[16]; c.R != 0 || c.G != 0 || c.B != 0 {
		t.Errorf("expected palette[16] to be black, got %v", c)
	}
	// Grayscale ramp starts at index 232.
	gray := DefaultPalette[232]
	if gray.R != gray.G || gray.G != gray.B {
		t.Errorf("expected grayscale entry to have equal channels, got %v", gray)
	}
}

func TestResolveDefaultColorNil(t *testing.T) {
	if got := resolveDefaultColor(nil, true); got != DefaultForeground {
		t.Errorf("expected default foreground for nil fg color, got %v", got)
	}
	if got := resolveDefaultColor(nil, false); got != DefaultBackground {
		t.Errorf("expected default background for nil bg color, got %v", got)
	}
}

func TestResolveDefaultColorIndexed(t *testing.T) {
	got := resolveDefaultColor(&IndexedColor{Index: 1}, true)
	if got != DefaultPalette[1] {
		t.Errorf("expected palette[1], got %v", got)
	}

	got = resolveDefaultColor(&IndexedColor{Index: 999}, true)
	if got != DefaultForeground {
		t.Errorf("expected fallback to default foreground for out-of-range index, got %v", got)
	}
}

func TestResolveDefaultColorRGBA(t *testing.T) {
	want := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	if got := resolveDefaultColor(want, true); got != want {
		t.Errorf("expected passthrough of concrete RGBA, got %v", got)
	}
}

func TestResolveNamedColorSemantic(t *testing.T) {
	if got := resolveNamedColor(NamedColorForeground, true); got != DefaultForeground {
		t.Errorf("expected default foreground, got %v", got)
	}
	if got := resolveNamedColor(NamedColorBackground, false); got != DefaultBackground {
		t.Errorf("expected default background, got %v", got)
	}
	if got := resolveNamedColor(NamedColorCursor, true); got != DefaultCursorColor {
		t.Errorf("expected default cursor color, got %v", got)
	}
}

func TestResolveNamedColorDim(t *testing.T) {
	base := DefaultPalette[0] // dim black derives from palette[0]
	got := resolveNamedColor(NamedColorDimBlack, true)
	want := uint8(float64(base.R) * 0.66)
	if got.R != want {
		t.Errorf("expected dim red channel %d, got %d", want, got.R)
	}
}

func TestResolveNamedColorUnknownFallsBack(t *testing.T) {
	if got := resolveNamedColor(9999, true); got != DefaultForeground {
		t.Errorf("expected fallback to default foreground, got %v", got)
	}
	if got := resolveNamedColor(9999, false); got != DefaultBackground {
		t.Errorf("expected fallback to default background, got %v", got)
	}
}
