// Package history records the position hashes of a game so that repeated
// positions can be detected.
package history

import "github.com/hailam/chesscore/internal/board"

// History is a stack of position hashes, one per position reached in a game.
// It satisfies board.RepetitionCounter.
type History struct {
	hashes []uint64
}

// New returns a history seeded with the hash of the starting position p.
func New(p *board.Position) *History {
	return &History{hashes: []uint64{p.Hash}}
}

// Push records a newly reached position.
func (h *History) Push(hash uint64) {
	h.hashes = append(h.hashes, hash)
}

// Pop forgets the most recent position. It is a no-op on an empty history.
func (h *History) Pop() {
	if len(h.hashes) > 0 {
		h.hashes = h.hashes[:len(h.hashes)-1]
	}
}

// Len returns the number of recorded positions.
func (h *History) Len() int {
	return len(h.hashes)
}

// Repetitions counts how often hash occurs. The hash covers side to move,
// castling rights and an en-passant target only when it can be taken, so
// equal hashes are the same position for repetition purposes.
func (h *History) Repetitions(hash uint64) int {
	n := 0
	for _, x := range h.hashes {
		if x == hash {
			n++
		}
	}
	return n
}

// Play makes m on p and records the resulting position.
func (h *History) Play(p *board.Position, m board.Move) {
	p.MakeMove(m)
	h.Push(p.Hash)
}

// Undo unmakes m on p and forgets the position it led to.
func (h *History) Undo(p *board.Position, m board.Move) {
	p.UnmakeMove(m)
	h.Pop()
}
