package board

// Zobrist keys, drawn from a fixed-seed PRNG so hashes are stable across runs.
var (
	zobristPiece      [2][6][64]uint64 // [Color][PieceType][Square]
	zobristEnPassant  [8]uint64        // one per file
	zobristCastling   [16]uint64       // one per rights combination
	zobristSideToMove uint64           // XORed in when Black is to move
)

type prng struct {
	state uint64
}

// next is xorshift64*.
func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func initZobrist() {
	rng := &prng{state: 0x98F107A2BEEF1234}

	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			for sq := A1; sq <= H8; sq++ {
				zobristPiece[c][pt][sq] = rng.next()
			}
		}
	}
	for file := range zobristEnPassant {
		zobristEnPassant[file] = rng.next()
	}
	for i := range zobristCastling {
		zobristCastling[i] = rng.next()
	}
	zobristSideToMove = rng.next()
}

// ComputeHash computes the Zobrist key of the position from scratch.
func (p *Position) ComputeHash() uint64 {
	var hash uint64

	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			for sq := range p.Pieces[c][pt].All() {
				hash ^= zobristPiece[c][pt][sq]
			}
		}
	}
	if p.SideToMove == Black {
		hash ^= zobristSideToMove
	}
	hash ^= zobristCastling[p.CastlingRights]
	hash ^= p.enPassantKey()

	return hash
}

// enPassantKey returns the en-passant contribution to the hash. The target
// file only counts when a pawn of the side to move stands ready to capture
// onto it, so a double push nobody can answer en passant hashes the same as
// the position without a target.
func (p *Position) enPassantKey() uint64 {
	if p.EnPassant == NoSquare {
		return 0
	}
	if pawnAttacks[p.SideToMove.Other()][p.EnPassant]&p.Pieces[p.SideToMove][Pawn] == 0 {
		return 0
	}
	return zobristEnPassant[p.EnPassant.File()]
}
