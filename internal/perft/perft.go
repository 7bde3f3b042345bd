// Package perft counts the leaves of the legal move tree, the standard
// correctness check for a move generator.
package perft

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/hailam/chesscore/internal/board"
)

// Perft returns the number of leaf nodes depth plies below p. It is 1 at
// depth 0. p is restored before returning.
func Perft(p *board.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}

	moves := p.GenerateLegalMoves()
	if depth == 1 {
		return uint64(moves.Len())
	}

	var nodes uint64
	for _, m := range moves.Slice() {
		p.MakeMove(m)
		nodes += Perft(p, depth-1)
		p.UnmakeMove(m)
	}
	return nodes
}

// PerftCopy is Perft with every child built on a fresh clone instead of
// make/unmake. It is slower and serves as an independent check of UnmakeMove.
func PerftCopy(p *board.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}

	var nodes uint64
	for _, m := range p.GenerateLegalMoves().Slice() {
		child := p.Clone()
		child.MakeMove(m)
		nodes += PerftCopy(child, depth-1)
	}
	return nodes
}

// Entry is the subtree size below one root move.
type Entry struct {
	Move  string `json:"move"`
	Nodes uint64 `json:"nodes"`
}

// Divide returns the perft count of each root move, sorted by move text.
func Divide(p *board.Position, depth int) []Entry {
	if depth <= 0 {
		return nil
	}
	moves := p.GenerateLegalMoves().Slice()
	entries := make([]Entry, len(moves))
	for i, m := range moves {
		p.MakeMove(m)
		entries[i] = Entry{Move: m.String(), Nodes: Perft(p, depth-1)}
		p.UnmakeMove(m)
	}
	sortEntries(entries)
	return entries
}

// ParallelDivide is Divide with root moves spread over at most workers
// goroutines, each on its own clone of p. Cancelling ctx stops root moves
// that have not started yet.
func ParallelDivide(ctx context.Context, p *board.Position, depth, workers int) ([]Entry, error) {
	return parallelDivide(ctx, p, depth, workers, Perft)
}

// HashedDivide is ParallelDivide with subtree counts shared through ht.
func HashedDivide(ctx context.Context, p *board.Position, depth, workers int, ht *HashTable) ([]Entry, error) {
	return parallelDivide(ctx, p, depth, workers, func(child *board.Position, d int) uint64 {
		return PerftHashed(child, d, ht)
	})
}

func parallelDivide(ctx context.Context, p *board.Position, depth, workers int, count func(*board.Position, int) uint64) ([]Entry, error) {
	if depth <= 0 {
		return nil, nil
	}
	if workers < 1 {
		workers = 1
	}

	moves := p.GenerateLegalMoves().Slice()
	entries := make([]Entry, len(moves))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, m := range moves {
		child := p.Clone()
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			child.MakeMove(m)
			entries[i] = Entry{Move: m.String(), Nodes: count(child, depth-1)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sortEntries(entries)
	return entries, nil
}

// Total sums the node counts of a divide.
func Total(entries []Entry) uint64 {
	var n uint64
	for _, e := range entries {
		n += e.Nodes
	}
	return n
}

func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool { return entries[i].Move < entries[j].Move })
}
