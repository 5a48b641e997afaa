package vtcore

import "gopkg.in/yaml.v3"

// TerminalID selects the conformance level reported by DA1/DA2. The level
// only changes those replies; which sequences are accepted does not depend
// on it.
type TerminalID int

const (
	TerminalIDVT100 TerminalID = iota
	TerminalIDVT220
	TerminalIDVT320
	TerminalIDVT420
	TerminalIDVT525
)

// TermcapConfig is a small, host-supplied YAML document describing the
// terminal's reported identity: what DA1/DA2/XTGETTCAP answer with. The
// core never reads a config file itself; hosts load the YAML and pass the
// parsed struct in via WithTermcap, keeping file I/O outside this module.
type TermcapConfig struct {
	// ID is the conformance level reported by DA1 (CSI ?<level>c).
	ID TerminalID `yaml:"id"`
	// FirmwareVersion is the DA2 second parameter (Pv), e.g. 95 for "95".
	FirmwareVersion int `yaml:"firmware_version"`
	// Name is the XTGETTCAP "TN" (termname) capability value.
	Name string `yaml:"name"`
	// Colors is the XTGETTCAP "Co" (max colors) capability value.
	Colors int `yaml:"colors"`
	// Capabilities maps additional termcap/terminfo capability names to
	// their plain values; ReportTermcap hex-encodes them in the reply.
	Capabilities map[string]string `yaml:"capabilities"`
}

// DefaultTermcapConfig reports as a 256-color VT220, matching the
// identifyTerminalInternal default this module inherited.
func DefaultTermcapConfig() TermcapConfig {
	return TermcapConfig{
		ID:              TerminalIDVT220,
		FirmwareVersion: 1,
		Name:            "xterm-256color",
		Colors:          256,
		Capabilities:    map[string]string{},
	}
}

// ParseTermcapConfig decodes a YAML termcap profile, e.g. loaded by the
// host from a config file referenced in its own configuration.
func ParseTermcapConfig(data []byte) (TermcapConfig, error) {
	cfg := DefaultTermcapConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TermcapConfig{}, err
	}
	return cfg, nil
}

// WithTermcap sets the identity reported by device-attribute and
// capability-report responses. Defaults to DefaultTermcapConfig.
func WithTermcap(cfg TermcapConfig) Option {
	return func(t *Terminal) {
		t.termcap = cfg
	}
}

func daLevelCode(id TerminalID) int {
	switch id {
	case TerminalIDVT100:
		return 1
	case TerminalIDVT220:
		return 62
	case TerminalIDVT320:
		return 63
	case TerminalIDVT420:
		return 64
	case TerminalIDVT525:
		return 65
	default:
		return 62
	}
}
