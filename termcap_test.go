package vtcore

import "testing"

func TestDefaultTermcapConfig(t *testing.T) {
	cfg := DefaultTermcapConfig()
	if cfg.ID != TerminalIDVT220 {
		t.Errorf("expected default ID VT220, got %v", cfg.ID)
	}
	if cfg.Name != "xterm-256color" || cfg.Colors != 256 {
		t.Errorf("unexpected default name/colors: %q/%d", cfg.Name, cfg.Colors)
	}
}

func TestParseTermcapConfigOverridesDefaults(t *testing.T) {
	yamlDoc := []byte(`
id: 4
firmware_version: 95
name: vt525-term
colors: 16
capabilities:
  Co: "16"
`)
	cfg, err := ParseTermcapConfig(yamlDoc)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if cfg.ID != TerminalIDVT525 {
		t.Errorf("expected ID VT525 (4), got %v", cfg.ID)
	}
	if cfg.FirmwareVersion != 95 || cfg.Name != "vt525-term" || cfg.Colors != 16 {
		t.Errorf("unexpected parsed config: %+v", cfg)
	}
}

func TestParseTermcapConfigInvalidYAML(t *testing.T) {
	_, err := ParseTermcapConfig([]byte("{not: valid: yaml"))
	if err == nil {
		t.Error("expected an error parsing malformed YAML")
	}
}

func TestWithTermcapOption(t *testing.T) {
	cfg := TermcapConfig{ID: TerminalIDVT420, Name: "custom", Colors: 8, FirmwareVersion: 3}
	term := New(WithSize(10, 20), WithTermcap(cfg))

	if got := term.TerminalIDLevel(); got != TerminalIDVT420 {
		t.Errorf("expected WithTermcap to set ID VT420, got %v", got)
	}
}

func TestDALevelCode(t *testing.T) {
	cases := []struct {
		id   TerminalID
		want int
	}{
		{TerminalIDVT100, 1},
		{TerminalIDVT220, 62},
		{TerminalIDVT320, 63},
		{TerminalIDVT420, 64},
		{TerminalIDVT525, 65},
	}
	for _, c := range cases {
		if got := daLevelCode(c.id); got != c.want {
			t.Errorf("daLevelCode(%v) = %d, want %d", c.id, got, c.want)
		}
	}
}

func TestSetTerminalIDRuntime(t *testing.T) {
	term := New(WithSize(10, 20))
	term.SetTerminalID(TerminalIDVT320)
	if got := term.TerminalIDLevel(); got != TerminalIDVT320 {
		t.Errorf("expected SetTerminalID to take effect immediately, got %v", got)
	}
}
