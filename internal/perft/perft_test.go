package perft

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hailam/chesscore/internal/board"
)

const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func mustParse(t *testing.T, fen string) *board.Position {
	t.Helper()
	pos, err := board.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return pos
}

func TestPerft(t *testing.T) {
	tests := []struct {
		fen   string
		depth int
		want  uint64
	}{
		{board.StartFEN, 0, 1},
		{board.StartFEN, 1, 20},
		{board.StartFEN, 2, 400},
		{board.StartFEN, 3, 8902},
		{kiwipete, 1, 48},
		{kiwipete, 2, 2039},
		{"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 3, 2812},
	}

	for _, tc := range tests {
		pos := mustParse(t, tc.fen)
		if got := Perft(pos, tc.depth); got != tc.want {
			t.Errorf("Perft(%s, %d) = %d, want %d", tc.fen, tc.depth, got, tc.want)
		}
		if got := PerftCopy(pos, tc.depth); got != tc.want {
			t.Errorf("PerftCopy(%s, %d) = %d, want %d", tc.fen, tc.depth, got, tc.want)
		}
	}
}

func TestDivide(t *testing.T) {
	pos := board.NewPosition()
	entries := Divide(pos, 2)
	if len(entries) != 20 {
		t.Fatalf("%d root moves, want 20", len(entries))
	}
	if Total(entries) != 400 {
		t.Errorf("divide total %d, want 400", Total(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Move >= entries[i].Move {
			t.Fatalf("entries not sorted: %s before %s", entries[i-1].Move, entries[i].Move)
		}
	}
	if Divide(pos, 0) != nil {
		t.Error("Divide at depth 0 should be empty")
	}
}

func TestParallelDivideMatchesDivide(t *testing.T) {
	pos := mustParse(t, kiwipete)
	want := Divide(pos, 3)

	got, err := ParallelDivide(context.Background(), pos, 3, 4)
	if err != nil {
		t.Fatalf("ParallelDivide: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parallel divide differs (-want +got):\n%s", diff)
	}
	if pos.ToFEN() != kiwipete {
		t.Errorf("ParallelDivide changed the root: %s", pos.ToFEN())
	}
}

func TestParallelDivideCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := ParallelDivide(ctx, board.NewPosition(), 3, 2); err == nil {
		t.Error("expected an error from a cancelled context")
	}
}

func TestCrossCheckAgainstDragontooth(t *testing.T) {
	tests := []struct {
		fen   string
		depth int
	}{
		{board.StartFEN, 3},
		{kiwipete, 2},
		{"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 3},
		{"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 2},
	}
	for _, tc := range tests {
		if mm := CrossCheck(mustParse(t, tc.fen), tc.depth); len(mm) != 0 {
			t.Errorf("%s depth %d: %v", tc.fen, tc.depth, mm)
		}
	}
}

func BenchmarkPerft3(b *testing.B) {
	pos := board.NewPosition()
	for i := 0; i < b.N; i++ {
		Perft(pos, 3)
	}
}
