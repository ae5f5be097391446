// Package config provides YAML-based configuration loading for the game,
// with embedded defaults and environment overrides.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidBoard is returned when a configuration asks for a board with
// a non-positive dimension.
var ErrInvalidBoard = errors.New("config: board dimensions must be positive")

// Config contains all configuration for the game and the SSH server.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Players PlayersConfig `yaml:"players"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

// BoardConfig defines the board size. Fixed for the life of a game.
type BoardConfig struct {
	Height int `yaml:"height" env:"CONNECT4_BOARD_HEIGHT"`
	Width  int `yaml:"width" env:"CONNECT4_BOARD_WIDTH"`
}

// PlayersConfig holds the colors prefilled in the setup form.
// Any string is accepted; see `connect4 colors` for the named ones.
type PlayersConfig struct {
	One string `yaml:"one" env:"CONNECT4_PLAYER1_COLOR"`
	Two string `yaml:"two" env:"CONNECT4_PLAYER2_COLOR"`
}

// ServerConfig configures `connect4 serve`.
type ServerConfig struct {
	Address     string        `yaml:"address" env:"CONNECT4_SSH_ADDR"`
	HostKeyPath string        `yaml:"host_key_path" env:"CONNECT4_SSH_HOST_KEY"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"CONNECT4_SSH_IDLE_TIMEOUT"`
}

// LogConfig configures the event logger.
type LogConfig struct {
	Level string `yaml:"level" env:"CONNECT4_LOG_LEVEL"` // debug, info, warn, error
	File  string `yaml:"file" env:"CONNECT4_LOG_FILE"`   // empty: discard when playing locally
}

// Validate checks the values the game cannot run without.
func (c Config) Validate() error {
	if c.Board.Height <= 0 || c.Board.Width <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidBoard, c.Board.Height, c.Board.Width)
	}
	return nil
}
