package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/nigellippett2/nrml/internal/tui"
)

var showcaseCmd = &cobra.Command{
	Use:   "showcase",
	Short: "Browse the button variants and menu in the terminal",
	Long: `Launch an interactive terminal view of the design system.

Every button role and size is rendered from the same variant table the
website uses. Press m to open the demo menu, then move with ↑/↓ or the
mouse and select with enter or a click. Press t to switch between the
light and dark schemes and ? for help.`,
	Args: cobra.NoArgs,
	RunE: runShowcase,
}

func init() {
	rootCmd.AddCommand(showcaseCmd)
}

func runShowcase(cmd *cobra.Command, args []string) error {
	p := tea.NewProgram(tui.New(tui.DefaultMenu()), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
