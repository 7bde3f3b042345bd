package board

import (
	"fmt"
	"log"
)

// MakeMove applies m, which must have been generated for this position, and
// pushes the state needed to take it back onto the undo stack.
func (p *Position) MakeMove(m Move) {
	p.history = append(p.history, p.snapshot(m))
	p.applyMove(m)

	if DebugMoveValidation {
		if err := p.Validate(); err != nil {
			log.Panicf("MAKEMOVE %v left an invalid position: %v\n%v", m, err, p)
		}
	}
}

// snapshot records what applying m will destroy.
func (p *Position) snapshot(m Move) Undo {
	u := Undo{
		Captured:       NoPiece,
		CapturedSquare: NoSquare,
		CastlingRights: p.CastlingRights,
		EnPassant:      p.EnPassant,
		HalfMoveClock:  p.HalfMoveClock,
		FullMoveNumber: p.FullMoveNumber,
		Hash:           p.Hash,
	}
	switch {
	case m.IsEnPassant():
		u.CapturedSquare = enPassantVictim(m.To(), p.SideToMove)
		u.Captured = NewPiece(Pawn, p.SideToMove.Other())
	case p.Occupied[p.SideToMove.Other()].IsSet(m.To()):
		u.CapturedSquare = m.To()
		u.Captured = p.PieceAt(m.To())
	}
	return u
}

// enPassantVictim returns the square of the pawn captured when a pawn of
// color us lands on the en-passant target to.
func enPassantVictim(to Square, us Color) Square {
	dr := -1
	if us == Black {
		dr = 1
	}
	sq, ok := to.Offset(0, dr)
	if !ok {
		panic(fmt.Sprintf("board: en passant victim square behind %v is off the board", to))
	}
	return sq
}

// castlingRookSquares returns the rook's origin and destination for a castling
// king landing on kingTo.
func castlingRookSquares(kingTo Square) (from, to Square) {
	switch kingTo {
	case G1:
		return H1, F1
	case C1:
		return A1, D1
	case G8:
		return H8, F8
	case C8:
		return A8, D8
	default:
		panic(fmt.Sprintf("board: %v is not a castling destination", kingTo))
	}
}

// applyMove mutates the position by m without touching the undo stack.
func (p *Position) applyMove(m Move) {
	us := p.SideToMove
	them := us.Other()
	from, to := m.From(), m.To()
	pt := m.Piece()
	fromBB, toBB := SquareBB(from), SquareBB(to)

	p.Hash ^= zobristCastling[p.CastlingRights]
	p.Hash ^= p.enPassantKey()

	p.Pieces[us][pt] &^= fromBB
	p.Hash ^= zobristPiece[us][pt][from]

	captured := NoPieceType
	if p.Occupied[them]&toBB != 0 {
		captured = p.pieceTypeAt(them, toBB)
		p.Pieces[them][captured] &^= toBB
		p.Hash ^= zobristPiece[them][captured][to]
	}

	placed := pt
	if m.IsPromotion() {
		placed = m.Promotion()
		if !placed.IsPromotionTarget() {
			panic(fmt.Sprintf("board: invalid promotion piece %v in %v", placed, m))
		}
	}
	p.Pieces[us][placed] |= toBB
	p.Hash ^= zobristPiece[us][placed][to]

	switch m.Flag() {
	case FlagEnPassant:
		victim := enPassantVictim(to, us)
		p.Pieces[them][Pawn] &^= SquareBB(victim)
		p.Hash ^= zobristPiece[them][Pawn][victim]
		captured = Pawn
	case FlagCastling:
		rookFrom, rookTo := castlingRookSquares(to)
		p.Pieces[us][Rook] ^= SquareBB(rookFrom) | SquareBB(rookTo)
		p.Hash ^= zobristPiece[us][Rook][rookFrom] ^ zobristPiece[us][Rook][rookTo]
	}

	p.updateOccupied()

	if pt == King {
		p.CastlingRights &^= castleRight(us, true) | castleRight(us, false)
	}
	if pt == Rook {
		p.CastlingRights &^= rookCornerRight(from)
	}
	if captured == Rook {
		p.CastlingRights &^= rookCornerRight(to)
	}
	p.Hash ^= zobristCastling[p.CastlingRights]

	p.EnPassant = NoSquare
	if m.IsDoublePawnPush() {
		p.EnPassant = Square((int(from) + int(to)) / 2)
	}

	if pt == Pawn || captured != NoPieceType {
		p.HalfMoveClock = 0
	} else if p.HalfMoveClock < 255 {
		p.HalfMoveClock++
	}
	if us == Black {
		p.FullMoveNumber++
	}

	p.SideToMove = them
	p.Hash ^= zobristSideToMove
	p.Hash ^= p.enPassantKey()
}

// UnmakeMove reverses m, which must be the most recently made move. It
// panics if the undo stack is empty.
func (p *Position) UnmakeMove(m Move) {
	n := len(p.history)
	if n == 0 {
		panic("board: UnmakeMove with an empty undo stack")
	}
	u := p.history[n-1]
	p.history = p.history[:n-1]

	us := p.SideToMove.Other()
	them := p.SideToMove
	from, to := m.From(), m.To()
	fromBB, toBB := SquareBB(from), SquareBB(to)

	placed := m.Piece()
	if m.IsPromotion() {
		placed = m.Promotion()
	}
	p.Pieces[us][placed] &^= toBB
	p.Pieces[us][m.Piece()] |= fromBB

	if u.Captured != NoPiece {
		p.Pieces[them][u.Captured.Type()] |= SquareBB(u.CapturedSquare)
	}

	if m.IsCastling() {
		rookFrom, rookTo := castlingRookSquares(to)
		p.Pieces[us][Rook] ^= SquareBB(rookFrom) | SquareBB(rookTo)
	}

	p.updateOccupied()
	p.SideToMove = us
	p.CastlingRights = u.CastlingRights
	p.EnPassant = u.EnPassant
	p.HalfMoveClock = u.HalfMoveClock
	p.FullMoveNumber = u.FullMoveNumber
	p.Hash = u.Hash

	if DebugMoveValidation {
		if err := p.Validate(); err != nil {
			log.Panicf("UNMAKEMOVE %v left an invalid position: %v\n%v", m, err, p)
		}
	}
}
