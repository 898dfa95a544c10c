package grps

import (
	"errors"
	"testing"
)

// assertWinners plays every scenario in both argument orders and checks
// that the same named move wins each time.
func assertWinners(t *testing.T, game *Game, scenarios map[[2]string]string) {
	t.Helper()

	for moves, expected := range scenarios {
		for _, pair := range [][2]string{moves, {moves[1], moves[0]}} {
			result, err := game.PlayNames(pair[0], pair[1])
			if err != nil {
				t.Fatalf("PlayNames(%q, %q): %v", pair[0], pair[1], err)
			}

			if result.Result.IsTie() {
				t.Errorf("PlayNames(%q, %q): unexpected tie", pair[0], pair[1])
				continue
			}

			if winner := game.Names()[result.Result]; winner != expected {
				t.Errorf("PlayNames(%q, %q): %q wins, want %q", pair[0], pair[1], winner, expected)
			}
		}
	}
}

func TestPlayClassic(t *testing.T) {
	assertWinners(t, Classic(), map[[2]string]string{
		{"scissors", "paper"}: "scissors",
		{"paper", "rock"}:     "paper",
		{"rock", "scissors"}:  "rock",
	})
}

func TestPlaySpockVersion(t *testing.T) {
	assertWinners(t, SpockVersion(), map[[2]string]string{
		{"scissors", "paper"}:  "scissors",
		{"scissors", "lizard"}: "scissors",
		{"paper", "rock"}:      "paper",
		{"paper", "spock"}:     "paper",
		{"paper", "lizard"}:    "lizard",
		{"rock", "scissors"}:   "rock",
		{"rock", "lizard"}:     "rock",
		{"spock", "lizard"}:    "lizard",
		{"spock", "rock"}:      "spock",
		{"spock", "scissors"}:  "spock",
	})
}

func TestPlayTie(t *testing.T) {
	game := Classic()

	result, err := game.PlayNames("rock", "rock")
	if err != nil {
		t.Fatal(err)
	}

	if !result.Result.IsTie() {
		t.Errorf("identical moves: got %v, want tie", result.Result)
	}

	if result.Message != "rock vs. rock, tie!" {
		t.Errorf("tie message = %q", result.Message)
	}
}

func TestPlayMessages(t *testing.T) {
	game := Classic()

	result, err := game.PlayNames("scissors", "paper")
	if err != nil {
		t.Fatal(err)
	}
	if result.Message != "scissors cuts paper, player1 wins!" {
		t.Errorf("player1 win message = %q", result.Message)
	}

	result, err = game.PlayNames("paper", "scissors")
	if err != nil {
		t.Fatal(err)
	}
	if result.Message != "scissors cuts paper, player2 wins!" {
		t.Errorf("player2 win message = %q", result.Message)
	}

	// Pin the random draw so the single-move messages are deterministic.
	game.draw = func(int) int { return 1 } // paper

	result, err = game.PlayName("scissors")
	if err != nil {
		t.Fatal(err)
	}
	if result.Message != "scissors cuts paper, you win!" {
		t.Errorf("you-win message = %q", result.Message)
	}

	result, err = game.PlayName("rock")
	if err != nil {
		t.Fatal(err)
	}
	if result.Message != "paper wraps rock, you lose!" {
		t.Errorf("you-lose message = %q", result.Message)
	}

	game.draw = func(int) int { return 2 } // rock

	result, err = game.PlayName("rock")
	if err != nil {
		t.Fatal(err)
	}
	if result.Message != "rock vs. rock, tie!" {
		t.Errorf("sampled tie message = %q", result.Message)
	}
}

func TestPlayIndexes(t *testing.T) {
	game, _ := New(3)

	result, err := game.PlayIndexes(2, 0)
	if err != nil {
		t.Fatal(err)
	}

	if result.Result != 2 || result.Moves != [2]int{2, 0} {
		t.Errorf("PlayIndexes(2, 0) = %+v", result)
	}

	if result.Message != "" {
		t.Errorf("index play rendered a message: %q", result.Message)
	}
}

func TestPlayRange(t *testing.T) {
	game, _ := New(3)

	if _, err := game.PlayIndexes(5, 0); !errors.Is(err, ErrRange) {
		t.Errorf("PlayIndexes(5, 0): got %v, want ErrRange", err)
	}

	if _, err := game.PlayIndexes(0, -1); !errors.Is(err, ErrRange) {
		t.Errorf("PlayIndexes(0, -1): got %v, want ErrRange", err)
	}

	if _, err := game.PlayIndex(5); !errors.Is(err, ErrRange) {
		t.Errorf("PlayIndex(5): got %v, want ErrRange", err)
	}
}

func TestPlayState(t *testing.T) {
	game, _ := New(3)

	if _, err := game.PlayNames("a", "b"); !errors.Is(err, ErrState) {
		t.Errorf("unset names: got %v, want ErrState", err)
	}

	_ = game.SetNames("a", "b", "c")

	if _, err := game.PlayNames("a", "b"); !errors.Is(err, ErrState) {
		t.Errorf("unset verbs: got %v, want ErrState", err)
	}

	if _, err := game.PlayName("a"); !errors.Is(err, ErrState) {
		t.Errorf("unset verbs, single move: got %v, want ErrState", err)
	}
}

func TestPlayLookup(t *testing.T) {
	game := Classic()

	if _, err := game.PlayNames("rock", "dynamite"); !errors.Is(err, ErrLookup) {
		t.Errorf("unknown second move: got %v, want ErrLookup", err)
	}

	if _, err := game.PlayName("dynamite"); !errors.Is(err, ErrLookup) {
		t.Errorf("unknown single move: got %v, want ErrLookup", err)
	}
}

// The random draw must cover the whole move range, ties included.
func TestPlaySampling(t *testing.T) {
	game, _ := New(5)

	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		result, err := game.PlayIndex(0)
		if err != nil {
			t.Fatal(err)
		}

		opponent := result.Moves[1]
		if opponent < 0 || opponent >= game.Size() {
			t.Fatalf("sampled move %d out of range", opponent)
		}
		seen[opponent] = true
	}

	for move := 0; move < game.Size(); move++ {
		if !seen[move] {
			t.Errorf("move %d never sampled in 1000 draws", move)
		}
	}
}
