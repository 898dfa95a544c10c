package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// grps counters
func Counters() *cobra.Command {
	return &cobra.Command{
		Use:   "counters game",
		Short: "List the counter edges of the given game",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			game, err := loadGame(args[0])
			if err != nil {
				return err
			}

			if game.Names() == nil {
				for _, edge := range game.Edges() {
					fmt.Printf("%d -> %d\n", edge.Winner, edge.Loser)
				}

				return nil
			}

			named, err := game.NamedEdges()
			if err != nil {
				return err
			}

			verbs := game.Verbs()
			for _, edge := range named {
				verb := verbs[edge.Edge]
				if verb == "" {
					verb = "beats"
				}

				fmt.Printf("- \x1b[34m%s\x1b[0m %s \x1b[31m%s\x1b[0m  (%d -> %d)\n",
					edge.Winner, verb, edge.Loser, edge.Edge.Winner, edge.Edge.Loser)
			}

			return nil
		},
	}
}
