package cmd

import (
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"laptudirm.com/x/grps/pkg/export"
)

// grps export
func Export() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export game",
		Short: "Export the game's counter graph in Graphviz DOT format",
		Args:  cobra.ExactArgs(1),
		Long: heredoc.Doc(`export renders the counter graph of the given game in the
			Graphviz DOT format, with moves as nodes and counter edges
			labeled by their verbs. Pipe it into dot to draw the graph:

			    grps export classic | dot -Tsvg -o classic.svg

			The game must have names; bare numeric games can't be
			exported.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			game, err := loadGame(args[0])
			if err != nil {
				return err
			}

			w := os.Stdout
			if output, _ := cmd.Flags().GetString("output"); output != "" {
				if w, err = os.Create(output); err != nil {
					return err
				}
				defer w.Close()
			}

			return export.DOT(game, w)
		},
	}

	cmd.Flags().StringP("output", "o", "", "Write the graph to the given file")

	return cmd
}
