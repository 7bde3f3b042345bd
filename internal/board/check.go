package board

// AttackersTo returns the pieces of color by that attack sq given occupancy occupied.
func (p *Position) AttackersTo(sq Square, by Color, occupied Bitboard) Bitboard {
	return (pawnAttacks[by.Other()][sq] & p.Pieces[by][Pawn]) |
		(knightAttacks[sq] & p.Pieces[by][Knight]) |
		(kingAttacks[sq] & p.Pieces[by][King]) |
		(BishopAttacks(sq, occupied) & (p.Pieces[by][Bishop] | p.Pieces[by][Queen])) |
		(RookAttacks(sq, occupied) & (p.Pieces[by][Rook] | p.Pieces[by][Queen]))
}

// IsSquareAttacked reports whether any piece of color by attacks sq.
// A pawn of color by attacks sq exactly when a pawn of the other color on sq
// would attack it, so the opposite color's pawn table is used.
func (p *Position) IsSquareAttacked(sq Square, by Color) bool {
	if pawnAttacks[by.Other()][sq]&p.Pieces[by][Pawn] != 0 {
		return true
	}
	if knightAttacks[sq]&p.Pieces[by][Knight] != 0 {
		return true
	}
	if kingAttacks[sq]&p.Pieces[by][King] != 0 {
		return true
	}
	if BishopAttacks(sq, p.AllOccupied)&(p.Pieces[by][Bishop]|p.Pieces[by][Queen]) != 0 {
		return true
	}
	return RookAttacks(sq, p.AllOccupied)&(p.Pieces[by][Rook]|p.Pieces[by][Queen]) != 0
}

// IsKingInCheck reports whether c's king is attacked. A color without a king
// is never in check.
func (p *Position) IsKingInCheck(c Color) bool {
	kings := p.Pieces[c][King]
	if kings == 0 {
		return false
	}
	return p.IsSquareAttacked(kings.LSB(), c.Other())
}

// InCheck reports whether the side to move is in check.
func (p *Position) InCheck() bool {
	return p.IsKingInCheck(p.SideToMove)
}

// Checkers returns the opposing pieces giving check to the side to move.
func (p *Position) Checkers() Bitboard {
	kings := p.Pieces[p.SideToMove][King]
	if kings == 0 {
		return Empty
	}
	return p.AttackersTo(kings.LSB(), p.SideToMove.Other(), p.AllOccupied)
}
