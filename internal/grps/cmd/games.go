package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"laptudirm.com/x/grps/pkg/grps"
	"laptudirm.com/x/grps/pkg/library"
)

// grps games
func Games() *cobra.Command {
	return &cobra.Command{
		Use:   "games",
		Short: "Lists the bundled and stored games",
		Args:  cobra.ExactArgs(0),

		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("\x1b[32mBundled Games\x1b[0m:")

			presets := make([]string, 0, len(grps.Presets))
			for preset := range grps.Presets {
				presets = append(presets, preset)
			}
			sort.Strings(presets)

			for _, preset := range presets {
				game := grps.Presets[preset]()
				name := fmt.Sprintf("\x1b[34m%s\x1b[0m:", preset)
				fmt.Printf("- %-20s %d moves, %d counters\n", name, game.Size(), game.EdgeCount())
			}

			stored, err := library.Default().List()
			if err != nil || len(stored) == 0 {
				return nil
			}

			fmt.Println("\n\x1b[32mStored Games\x1b[0m:")
			for _, entry := range stored {
				game, err := library.Default().Load(entry)
				if err != nil {
					continue
				}

				name := fmt.Sprintf("\x1b[34m%s\x1b[0m:", entry)
				fmt.Printf("- %-20s %d moves, %d counters\n", name, game.Size(), game.EdgeCount())
			}

			return nil
		},
	}
}
