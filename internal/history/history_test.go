package history

import (
	"testing"

	"github.com/hailam/chesscore/internal/board"
)

func move(t *testing.T, p *board.Position, s string) board.Move {
	t.Helper()
	for _, m := range p.GenerateLegalMoves().Slice() {
		if m.String() == s {
			return m
		}
	}
	t.Fatalf("move %s not legal", s)
	return board.NoMove
}

func TestThreefoldRepetition(t *testing.T) {
	pos := board.NewPosition()
	h := New(pos)

	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}
	for round := 0; round < 2; round++ {
		for _, s := range shuffle {
			if got := pos.GameResultWithHistory(h); got.Outcome != board.Ongoing {
				t.Fatalf("round %d before %s: %v", round, s, got)
			}
			h.Play(pos, move(t, pos, s))
		}
	}

	if got := h.Repetitions(pos.Hash); got != 3 {
		t.Fatalf("start position seen %d times, want 3", got)
	}
	if got := pos.GameResultWithHistory(h); got.Outcome != board.DrawRepetition {
		t.Errorf("GameResultWithHistory = %v, want DrawRepetition", got)
	}
	if got := pos.GameResult(); got.Outcome != board.Ongoing {
		t.Errorf("GameResult without history = %v, want Ongoing", got)
	}
}

// The first occurrence follows a double push that nobody can take en
// passant, so it must count as the same position as the later two.
func TestRepetitionAfterDoublePush(t *testing.T) {
	pos := board.NewPosition()
	h := New(pos)

	h.Play(pos, move(t, pos, "e2e4"))
	first := pos.Hash
	for _, s := range []string{"g8f6", "g1f3", "f6g8", "f3g1", "g8f6", "g1f3", "f6g8", "f3g1"} {
		h.Play(pos, move(t, pos, s))
	}

	if pos.Hash != first {
		t.Fatalf("hash %016x after the shuffle, want %016x", pos.Hash, first)
	}
	if got := h.Repetitions(pos.Hash); got != 3 {
		t.Fatalf("position after e2e4 seen %d times, want 3", got)
	}
	if got := pos.GameResultWithHistory(h); got.Outcome != board.DrawRepetition {
		t.Errorf("GameResultWithHistory = %v, want DrawRepetition", got)
	}
}

func TestUndoForgetsPosition(t *testing.T) {
	pos := board.NewPosition()
	h := New(pos)
	m := move(t, pos, "e2e4")

	h.Play(pos, m)
	if h.Len() != 2 {
		t.Fatalf("Len = %d after one move", h.Len())
	}
	h.Undo(pos, m)
	if h.Len() != 1 || h.Repetitions(pos.Hash) != 1 {
		t.Errorf("Len = %d, repetitions = %d after undo", h.Len(), h.Repetitions(pos.Hash))
	}

	h.Pop()
	h.Pop()
	if h.Len() != 0 {
		t.Errorf("Len = %d after popping everything", h.Len())
	}
}
