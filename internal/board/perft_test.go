package board

import (
	"os"
	"testing"
)

// perft counts the leaf nodes of the legal move tree to the given depth.
func perft(p *Position, depth int) int64 {
	if depth == 0 {
		return 1
	}

	moves := p.GenerateLegalMoves()
	if depth == 1 {
		return int64(moves.Len())
	}

	var nodes int64
	for _, m := range moves.Slice() {
		p.MakeMove(m)
		nodes += perft(p, depth-1)
		p.UnmakeMove(m)
	}
	return nodes
}

type perftCase struct {
	depth    int
	expected int64
	slow     bool
}

func runPerft(t *testing.T, fen string, cases []perftCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run("", func(t *testing.T) {
			if tc.slow && testing.Short() {
				t.Skip("slow perft depth skipped in short mode")
			}
			pos, err := ParseFEN(fen)
			if err != nil {
				t.Fatalf("Failed to parse FEN: %v", err)
			}
			before := pos.ToFEN()
			got := perft(pos, tc.depth)
			if got != tc.expected {
				t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
			}
			if after := pos.ToFEN(); after != before {
				t.Errorf("position changed by perft: %s -> %s", before, after)
			}
		})
	}
}

func TestPerftStartingPosition(t *testing.T) {
	runPerft(t, StartFEN, []perftCase{
		{1, 20, false},
		{2, 400, false},
		{3, 8902, false},
		{4, 197281, false},
		{5, 4865609, true},
	})
}

// TestPerftStartingPositionDeep is opt-in: it takes tens of seconds.
func TestPerftStartingPositionDeep(t *testing.T) {
	if os.Getenv("CHESSCORE_PERFT_DEEP") == "" {
		t.Skip("set CHESSCORE_PERFT_DEEP=1 to run perft(6)")
	}
	runPerft(t, StartFEN, []perftCase{{6, 119060324, true}})
}

// Kiwipete exercises castling, promotions, en passant and pins together.
func TestPerftKiwipete(t *testing.T) {
	runPerft(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", []perftCase{
		{1, 48, false},
		{2, 2039, false},
		{3, 97862, false},
		{4, 4085603, true},
	})
}

func TestPerftPosition3(t *testing.T) {
	runPerft(t, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", []perftCase{
		{1, 14, false},
		{2, 191, false},
		{3, 2812, false},
		{4, 43238, false},
		{5, 674624, true},
	})
}

func TestPerftPosition4(t *testing.T) {
	runPerft(t, "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", []perftCase{
		{1, 6, false},
		{2, 264, false},
		{3, 9467, false},
		{4, 422333, true},
	})
}

func TestPerftPosition5(t *testing.T) {
	runPerft(t, "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", []perftCase{
		{1, 44, false},
		{2, 1486, false},
		{3, 62379, false},
	})
}

// The d3 capture would expose the black king on a4 to the rook on h4.
func TestPerftEnPassantPin(t *testing.T) {
	pos, err := ParseFEN("8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1")
	if err != nil {
		t.Fatalf("Failed to parse FEN: %v", err)
	}

	for _, m := range pos.GenerateLegalMoves().Slice() {
		if m.IsEnPassant() {
			t.Errorf("en passant move %v should be illegal (horizontal pin)", m)
		}
	}

	runPerft(t, "8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1", []perftCase{
		{1, 6, false},
		{2, 94, false},
	})
}

func BenchmarkPerft4(b *testing.B) {
	pos := NewPosition()
	for i := 0; i < b.N; i++ {
		perft(pos, 4)
	}
}

func BenchmarkGenerateLegalMoves(b *testing.B) {
	pos, _ := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	for i := 0; i < b.N; i++ {
		pos.GenerateLegalMoves()
	}
}
