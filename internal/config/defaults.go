package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/connect4.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches the embedded
// defaults/connect4.yaml and is used if that file cannot be parsed.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Height: 6,
			Width:  7,
		},
		Players: PlayersConfig{
			One: "red",
			Two: "yellow",
		},
		Server: ServerConfig{
			Address:     ":23234",
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
