package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/l1t.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded default configuration.
// It matches the embedded defaults/l1t.yaml.
func DefaultConfig() Config {
	return Config{
		Levels: LevelsConfig{
			Dir: "~/.l1t/levels",
		},
		Display: DisplayConfig{
			CellWidth:    2,
			ShowBeams:    true,
			OutcomeDelay: 500 * time.Millisecond,
			BeamColor:    "bright-red",
			Theme:        "default",
		},
		Storage: StorageConfig{
			DBPath: "~/.l1t/progress.db",
		},
		Server: ServerConfig{
			Address:     "localhost:23234",
			HostKey:     ".ssh/l1t_ed25519",
			IdleTimeout: 30 * time.Minute,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
