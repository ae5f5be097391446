package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-connect4/internal/platform/tui"
)

var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "List named piece colors",
	Long: `Shows the color names the game understands, each with a swatch.

Any other value is passed to the terminal as-is, so ANSI codes such
as 208 and hex values such as #ff3366 work too.`,
	Args: cobra.NoArgs,
	Run:  runColors,
}

func runColors(_ *cobra.Command, _ []string) {
	r := lipgloss.NewRenderer(os.Stdout)
	names := tui.ColorNames()

	// Calculate column width
	maxLen := 0
	for _, name := range names {
		maxLen = max(maxLen, len(name))
	}

	fmt.Println("Named colors:")
	fmt.Println()
	for _, name := range names {
		fmt.Printf("  %-*s  %s\n", maxLen, name, tui.Swatch(r, name))
	}
	fmt.Println()
	fmt.Println("Run 'connect4 play --p1 <color> --p2 <color>' to use them.")
}
