package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-connect4/internal/core"
	"github.com/vovakirdan/tui-connect4/internal/platform/tui"
)

var (
	flagP1        string
	flagP2        string
	flagHeight    int
	flagWidth     int
	flagSkipSetup bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a hot-seat game. Both players share the keyboard and mouse.

Controls:
  Click          - Drop a piece in that column
  Left/Right h/l - Move the column cursor
  Enter/Space    - Drop at the cursor
  1-9            - Drop in that column
  R              - Restart with the same players
  N              - Pick new colors
  ?              - Toggle help
  Q/Ctrl+C       - Quit

Colors can be any name listed by 'connect4 colors', an ANSI code such
as 208, or a hex value such as #ff3366.

Examples:
  connect4 play
  connect4 play --p1 orange --p2 teal
  connect4 play --height 8 --width 9 --skip-setup
  connect4 play --log-file ~/connect4.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagP1, "p1", "", "Color of the first player")
	playCmd.Flags().StringVar(&flagP2, "p2", "", "Color of the second player")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Board rows (default from config)")
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Board columns (default from config)")
	playCmd.Flags().BoolVar(&flagSkipSetup, "skip-setup", false, "Start right away without the color form")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Flags override config
	if flagP1 != "" {
		cfg.Players.One = flagP1
	}
	if flagP2 != "" {
		cfg.Players.Two = flagP2
	}
	if flagHeight != 0 {
		cfg.Board.Height = flagHeight
	}
	if flagWidth != 0 {
		cfg.Board.Width = flagWidth
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logFile, err := openLogFile(cfg.Log.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(logFile, cfg.Log, "connect4")
	if err != nil {
		logFile.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runtime := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}

	runErr := tui.Run(tui.AppOptions{
		Height:       cfg.Board.Height,
		Width:        cfg.Board.Width,
		Player1Color: cfg.Players.One,
		Player2Color: cfg.Players.Two,
		SkipSetup:    flagSkipSetup,
		Runtime:      runtime,
		Logger:       logger,
	})

	// Close log before potential exit
	logFile.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
