package vtcore

import "image/color"

// PalettePushPop implements XTPUSHCOLORS/XTPOPCOLORS/XTREPORTCOLORS: a
// host-visible save stack for the 0-15 ANSI color slots so a full-screen
// app (vim, tmux) can temporarily recolor the palette and restore exactly
// what was there before, the same way SaveCursorPosition/RestoreCursorPosition
// bracket cursor state.
type PalettePushPop struct {
	stack [][16]color.Color
}

// PushColors saves a copy of the current 16-color palette slots.
func (t *Terminal) PushColors() {
	t.mu.Lock()
	defer t.mu.Unlock()

	var snapshot [16]color.Color
	for i := 0; i < 16; i++ {
		snapshot[i] = t.colors[i]
	}
	t.paletteStack.stack = append(t.paletteStack.stack, snapshot)
}

// PopColors restores the most recently pushed palette. A no-op if the
// stack is empty.
func (t *Terminal) PopColors() {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := len(t.paletteStack.stack)
	if n == 0 {
		return
	}

	snapshot := t.paletteStack.stack[n-1]
	t.paletteStack.stack = t.paletteStack.stack[:n-1]
	for i := 0; i < 16; i++ {
		if snapshot[i] != nil {
			t.colors[i] = snapshot[i]
		} else {
			delete(t.colors, i)
		}
	}
}

// PaletteStackDepth returns the number of palettes currently saved.
func (t *Terminal) PaletteStackDepth() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.paletteStack.stack)
}
