package grps

// VerbSupplier provides the narrative verb for a single counter edge.
// number is the 1-based position of the edge in the enumeration, and
// winner/loser are the configured names of the edge's moves. Returning an
// error aborts the build.
type VerbSupplier func(number int, edge Edge, winner, loser string) (string, error)

// BuildVerbs assembles a complete verb map by asking the supplier for the
// verb of every counter edge in enumeration order, and commits it with
// SetVerbs. It fails with ErrState until names are configured. The Game's
// verbs are untouched if any supplier call fails.
func (game *Game) BuildVerbs(supply VerbSupplier) error {
	named, err := game.NamedEdges()
	if err != nil {
		return err
	}

	verbs := make(map[Edge]string, len(named))
	for i, edge := range named {
		verb, err := supply(i+1, edge.Edge, edge.Winner, edge.Loser)
		if err != nil {
			return err
		}

		verbs[edge.Edge] = verb
	}

	return game.SetVerbs(verbs)
}
