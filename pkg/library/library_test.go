package library

import (
	"testing"

	"laptudirm.com/x/grps/pkg/grps"
)

func testLibrary(t *testing.T) *Library {
	t.Helper()
	return &Library{Directory: t.TempDir()}
}

func TestSaveLoad(t *testing.T) {
	lib := testLibrary(t)

	if err := lib.Save("spock", grps.SpockVersion()); err != nil {
		t.Fatal(err)
	}

	game, err := lib.Load("spock")
	if err != nil {
		t.Fatal(err)
	}

	if game.Size() != 5 {
		t.Errorf("loaded size = %d, want 5", game.Size())
	}

	names := game.Names()
	if len(names) != 5 || names[4] != "spock" {
		t.Errorf("loaded names = %v", names)
	}

	if verb := game.Verbs()[grps.Edge{Winner: 4, Loser: 2}]; verb != "vaporizes" {
		t.Errorf("loaded verb for (4, 2) = %q", verb)
	}

	// The loaded game must be fully playable.
	result, err := game.PlayNames("spock", "rock")
	if err != nil {
		t.Fatal(err)
	}
	if result.Message != "spock vaporizes rock, player1 wins!" {
		t.Errorf("played message = %q", result.Message)
	}
}

func TestSaveLoadBare(t *testing.T) {
	lib := testLibrary(t)

	bare, _ := grps.New(9)
	if err := lib.Save("bare", bare); err != nil {
		t.Fatal(err)
	}

	game, err := lib.Load("bare")
	if err != nil {
		t.Fatal(err)
	}

	if game.Size() != 9 || game.Names() != nil || game.Verbs() != nil {
		t.Errorf("loaded bare game = size %d, names %v, verbs %v", game.Size(), game.Names(), game.Verbs())
	}
}

func TestLoadMissing(t *testing.T) {
	lib := testLibrary(t)

	if _, err := lib.Load("nonexistent"); err == nil {
		t.Error("loading a missing game succeeded")
	}
}

func TestList(t *testing.T) {
	lib := testLibrary(t)

	games, err := lib.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(games) != 0 {
		t.Fatalf("empty library lists %v", games)
	}

	_ = lib.Save("zulu", grps.Classic())
	_ = lib.Save("alpha", grps.Classic())

	games, err = lib.List()
	if err != nil {
		t.Fatal(err)
	}

	if len(games) != 2 || games[0] != "alpha" || games[1] != "zulu" {
		t.Errorf("List() = %v, want [alpha zulu]", games)
	}
}

func TestRemove(t *testing.T) {
	lib := testLibrary(t)

	_ = lib.Save("doomed", grps.Classic())

	if err := lib.Remove("doomed"); err != nil {
		t.Fatal(err)
	}

	if _, err := lib.Load("doomed"); err == nil {
		t.Error("removed game still loadable")
	}

	if err := lib.Remove("doomed"); err == nil {
		t.Error("removing a missing game succeeded")
	}
}
