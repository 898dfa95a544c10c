package grps

import "testing"

func TestPresets(t *testing.T) {
	sizes := map[string]int{"classic": 3, "spock": 5, "the-office": 7}

	for name, size := range sizes {
		t.Run(name, func(t *testing.T) {
			preset, found := Presets[name]
			if !found {
				t.Fatalf("preset %s not registered", name)
			}

			game := preset()
			if game.Size() != size {
				t.Errorf("size = %d, want %d", game.Size(), size)
			}

			if len(game.Names()) != size {
				t.Errorf("%d names, want %d", len(game.Names()), size)
			}

			// Every preset must carry a verb for each enumerated edge,
			// keyed exactly by the edge set.
			verbs := game.Verbs()
			if len(verbs) != game.EdgeCount() {
				t.Errorf("%d verbs, want %d", len(verbs), game.EdgeCount())
			}

			for _, edge := range game.Edges() {
				if verbs[edge] == "" {
					t.Errorf("no verb for edge %v", edge)
				}
			}
		})
	}
}
