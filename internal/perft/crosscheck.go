package perft

import (
	"fmt"
	"sort"

	"github.com/dylhunn/dragontoothmg"

	"github.com/hailam/chesscore/internal/board"
)

// Mismatch is a root move whose subtree size differs from the reference
// generator. A zero count means the move is missing on that side.
type Mismatch struct {
	Move      string
	Ours      uint64
	Reference uint64
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: ours %d, reference %d", m.Move, m.Ours, m.Reference)
}

// CrossCheck compares Divide against the dragontoothmg move generator on the
// same FEN and returns every disagreeing root move, sorted by move text.
func CrossCheck(p *board.Position, depth int) []Mismatch {
	ours := Divide(p, depth)
	ref := referenceDivide(p.ToFEN(), depth)

	seen := make(map[string]bool, len(ours))
	var out []Mismatch
	for _, e := range ours {
		seen[e.Move] = true
		if r := ref[e.Move]; r != e.Nodes {
			out = append(out, Mismatch{Move: e.Move, Ours: e.Nodes, Reference: r})
		}
	}
	for mv, n := range ref {
		if !seen[mv] {
			out = append(out, Mismatch{Move: mv, Reference: n})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Move < out[j].Move })
	return out
}

func referenceDivide(fen string, depth int) map[string]uint64 {
	out := make(map[string]uint64)
	if depth <= 0 {
		return out
	}
	b := dragontoothmg.ParseFen(fen)
	for _, mv := range b.GenerateLegalMoves() {
		undo := b.Apply(mv)
		out[mv.String()] = referencePerft(&b, depth-1)
		undo()
	}
	return out
}

func referencePerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, mv := range moves {
		undo := b.Apply(mv)
		nodes += referencePerft(b, depth-1)
		undo()
	}
	return nodes
}
