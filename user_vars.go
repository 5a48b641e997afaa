package vtcore

import (
	"bytes"
	"encoding/base64"
)

// SetUserVar stores a named variable, as set via OSC 1337 SetUserVar or the
// public API directly. Shell integrations (iTerm2-style) use these to surface
// structured prompt state (current git branch, virtualenv, etc.) to the host.
func (t *Terminal) SetUserVar(name, value string) {
	if t.middleware != nil && t.middleware.SetUserVar != nil {
		t.middleware.SetUserVar(name, value, t.setUserVarInternal)
		return
	}
	t.setUserVarInternal(name, value)
}

func (t *Terminal) setUserVarInternal(name, value string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.userVars == nil {
		t.userVars = make(map[string]string)
	}
	t.userVars[name] = value
}

// GetUserVar returns the value of a user variable, or "" if it was never set.
func (t *Terminal) GetUserVar(name string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.userVars[name]
}

// GetUserVars returns a copy of all currently set user variables.
func (t *Terminal) GetUserVars() map[string]string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make(map[string]string, len(t.userVars))
	for k, v := range t.userVars {
		out[k] = v
	}
	return out
}

// ClearUserVars removes all stored user variables.
func (t *Terminal) ClearUserVars() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.userVars = nil
}

const setUserVarPrefix = "\x1b]1337;SetUserVar="

// stripSetUserVarSequences scans raw input for OSC 1337 SetUserVar payloads,
// applies each one directly, and returns the input with those spans removed
// so the remainder can still be handed to the ANSI decoder unmodified. A
// payload without a recognized terminator is left untouched rather than
// dropped, in case it arrived split across separate Write calls.
func (t *Terminal) stripSetUserVarSequences(data []byte) []byte {
	if !bytes.Contains(data, []byte(setUserVarPrefix)) {
		return data
	}

	var out []byte
	for {
		idx := bytes.Index(data, []byte(setUserVarPrefix))
		if idx < 0 {
			out = append(out, data...)
			break
		}
		out = append(out, data[:idx]...)
		rest := data[idx+len(setUserVarPrefix):]

		payloadLen, termLen := findOSCTerminator(rest)
		if payloadLen < 0 {
			out = append(out, data[idx:]...)
			break
		}

		t.applySetUserVarPayload(rest[:payloadLen])
		data = rest[payloadLen+termLen:]
	}
	return out
}

// applySetUserVarPayload parses a "NAME=BASE64VALUE" payload and records it.
// Malformed base64 is ignored, matching a terminal's general tolerance for
// garbled escape sequences rather than surfacing a parse error mid-stream.
func (t *Terminal) applySetUserVarPayload(payload []byte) {
	eq := bytes.IndexByte(payload, '=')
	if eq < 0 {
		return
	}

	name := string(payload[:eq])
	decoded, err := base64.StdEncoding.DecodeString(string(payload[eq+1:]))
	if err != nil {
		return
	}

	t.SetUserVar(name, string(decoded))
}

// findOSCTerminator locates the terminator ending an OSC payload: BEL (0x07)
// or the two-byte ST (ESC \). Returns payload length and terminator length,
// or -1 if neither terminator appears in data.
func findOSCTerminator(data []byte) (payloadLen, termLen int) {
	for i := 0; i < len(data); i++ {
		if data[i] == 0x07 {
			return i, 1
		}
		if data[i] == 0x1b && i+1 < len(data) && data[i+1] == '\\' {
			return i, 2
		}
	}
	return -1, 0
}
