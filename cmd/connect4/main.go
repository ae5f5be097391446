// connect4 is a two-player Connect Four game for the terminal.
//
// Usage:
//
//	connect4 play            - Play a hot-seat game in this terminal
//	connect4 serve           - Start SSH server for remote play
//	connect4 colors          - List named piece colors
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.connect4, ./configs, embedded)
//	--log-level <level> - debug, info, warn, error
//	--log-file <path>   - Write game events to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-connect4/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "connect4",
	Short: "Connect Four - drop pieces, line up four",
	Long: `Connect Four for two players sharing a terminal. Click a column
(or use the keyboard) to drop a piece; the first to line up four in a
row, column or diagonal wins.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  colors   - List named piece colors

Examples:
  connect4 play
  connect4 play --p1 orange --p2 "#3366ff" --skip-setup
  connect4 serve --ssh :2222
  connect4 colors`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write game events to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(colorsCmd)
}

// loadConfig loads the config and applies the global flags on top.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	return cfg, nil
}

// newLogger creates a logger writing to w at the configured level.
func newLogger(w io.Writer, cfg config.LogConfig, prefix string) (*log.Logger, error) {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})

	if cfg.Level != "" {
		level, err := log.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		logger.SetLevel(level)
	}
	return logger, nil
}

// openLogFile opens the configured log file for appending.
// With no file configured, output is discarded.
func openLogFile(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{io.Discard}, nil
	}

	expanded, err := config.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	f, err := os.OpenFile(expanded, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
