package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/reversi-arena/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available strategies and their parameters",
	Long: `Shows every registered strategy with the params it reads.
Pass params with --param key=value or under params: in the config.`,
	Run: runList,
}

var (
	listIDStyle    = lipgloss.NewStyle().Bold(true)
	listParamStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func runList(_ *cobra.Command, _ []string) {
	infos := registry.List()
	if len(infos) == 0 {
		fmt.Println("No strategies registered.")
		return
	}

	idWidth, keyWidth := 0, 0
	for _, info := range infos {
		idWidth = max(idWidth, len(info.ID))
		for _, p := range info.Params {
			keyWidth = max(keyWidth, len(p.Key))
		}
	}

	fmt.Println("Strategies:")
	for _, info := range infos {
		fmt.Printf("  %s  %s\n", listIDStyle.Render(fmt.Sprintf("%-*s", idWidth, info.ID)), info.Title)
		for _, p := range info.Params {
			fmt.Println(listParamStyle.Render(fmt.Sprintf("  %*s  %-*s  %s (default %s)",
				idWidth, "", keyWidth, p.Key, p.Usage, p.Default)))
		}
	}

	fmt.Println()
	fmt.Println("Run 'reversi match --a <id> --b <id> --param key=value' to play a match.")
}
