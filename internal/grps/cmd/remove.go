package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"laptudirm.com/x/grps/pkg/grps"
	"laptudirm.com/x/grps/pkg/library"
)

// grps remove
func Remove() *cobra.Command {
	return &cobra.Command{
		Use:   "remove game",
		Short: "Remove the given game from your library",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			if _, found := grps.Presets[args[0]]; found {
				return fmt.Errorf("game %s is bundled with grps and can't be removed", args[0])
			}

			if err := library.Default().Remove(args[0]); err != nil {
				return err
			}

			fmt.Printf("\x1b[32mRemoved Game:\x1b[0m %s\n", args[0])
			return nil
		},
	}
}
