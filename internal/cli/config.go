package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/jmylchreest/koyo/internal/ramp"
)

// fileConfig is the TOML layout for tunable overrides:
//
//	[modes.conservative]
//	max-hue-shift = 12.0
//
//	[modes.painterly]
//	chroma-retention = 0.35
//
// Omitted keys keep the built-in value for the mode.
type fileConfig struct {
	Modes map[string]toml.Primitive `toml:"modes"`
}

// loadModeConfig loads overrides for one mode from a TOML file. Returns
// nil when the file has no section for the mode, so the built-in config
// stays in effect.
func loadModeConfig(path string, mode ramp.Mode) (*ramp.ModeConfig, error) {
	cfg, err := ramp.ConfigFor(mode)
	if err != nil {
		return nil, err
	}

	var fc fileConfig
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	prim, ok := fc.Modes[string(mode)]
	if !ok {
		return nil, nil
	}
	// Decode over the built-in values so omitted keys keep their defaults.
	if err := md.PrimitiveDecode(prim, &cfg); err != nil {
		return nil, fmt.Errorf("invalid tunables for mode %q in %s: %w", mode, path, err)
	}
	return &cfg, nil
}
