package vtcore

// FreezeMode prevents the named mode from being changed by an incoming
// escape sequence until UnfreezeMode is called. Hosts use this to pin
// behavior a sandboxed child process must not be able to toggle, e.g.
// keeping bracketed paste on regardless of what a hostile payload sends.
// SetMode/UnsetMode silently reject changes to a frozen mode and log
// ErrFrozenMode at Info level.
func (t *Terminal) FreezeMode(mode TerminalMode) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.frozenModes |= mode
}

// UnfreezeMode releases a mode previously frozen with FreezeMode.
func (t *Terminal) UnfreezeMode(mode TerminalMode) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.frozenModes &^= mode
}

// IsModeFrozen reports whether the given mode is currently frozen.
func (t *Terminal) IsModeFrozen(mode TerminalMode) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.frozenModes&mode != 0
}
