package board

// GenerateLegalMoves returns every legal move for the side to move.
func (p *Position) GenerateLegalMoves() *MoveList {
	pseudo := p.GeneratePseudoLegalMoves()
	legal := NewMoveList()
	for _, m := range pseudo.Slice() {
		if p.IsLegal(m) {
			legal.Add(m)
		}
	}
	return legal
}

// HasLegalMoves reports whether the side to move has at least one legal move.
func (p *Position) HasLegalMoves() bool {
	pseudo := p.GeneratePseudoLegalMoves()
	for _, m := range pseudo.Slice() {
		if p.IsLegal(m) {
			return true
		}
	}
	return false
}

// IsLegal reports whether the pseudo-legal move m keeps the mover's king out
// of check. The move is tried on a scratch copy, so p is never touched.
func (p *Position) IsLegal(m Move) bool {
	us := p.SideToMove
	scratch := *p
	scratch.history = nil
	scratch.applyMove(m)
	return !scratch.IsKingInCheck(us)
}

// GeneratePseudoLegalMoves returns the moves that obey piece movement rules
// but may leave the mover's own king attacked.
func (p *Position) GeneratePseudoLegalMoves() *MoveList {
	ml := NewMoveList()
	for pt := Pawn; pt <= King; pt++ {
		p.generatePieceMoves(ml, pt)
	}
	return ml
}

func (p *Position) generatePieceMoves(ml *MoveList, pt PieceType) {
	switch pt {
	case Pawn:
		p.generatePawnMoves(ml)
	case Knight:
		p.generateLeaperMoves(ml, Knight, knightAttacks[:])
	case Bishop, Rook, Queen:
		p.generateSliderMoves(ml, pt)
	case King:
		p.generateKingMoves(ml)
		p.generateCastlingMoves(ml)
	default:
		panic("board: no move generator for " + pt.String())
	}
}

// addTargets emits a move from from to every square in targets, flagging
// and labeling the ones that land on an enemy piece.
func (p *Position) addTargets(ml *MoveList, pt PieceType, from Square, targets Bitboard) {
	enemies := p.Occupied[p.SideToMove.Other()]
	for targets != 0 {
		to := targets.PopLSB()
		if enemies.IsSet(to) {
			ml.Add(NewMove(from, to, pt, p.PieceAt(to).Type(), NoPieceType, FlagCapture))
		} else {
			ml.Add(NewMove(from, to, pt, NoPieceType, NoPieceType, FlagNormal))
		}
	}
}

func (p *Position) generateLeaperMoves(ml *MoveList, pt PieceType, table []Bitboard) {
	us := p.SideToMove
	for pieces := p.Pieces[us][pt]; pieces != 0; {
		from := pieces.PopLSB()
		p.addTargets(ml, pt, from, table[from]&^p.Occupied[us])
	}
}

func (p *Position) generateSliderMoves(ml *MoveList, pt PieceType) {
	us := p.SideToMove
	for pieces := p.Pieces[us][pt]; pieces != 0; {
		from := pieces.PopLSB()
		p.addTargets(ml, pt, from, SliderAttacks(pt, from, p.AllOccupied)&^p.Occupied[us])
	}
}

// generateKingMoves emits single-step king moves, skipping destinations the
// opponent attacks in the current occupancy.
func (p *Position) generateKingMoves(ml *MoveList) {
	us := p.SideToMove
	them := us.Other()
	kings := p.Pieces[us][King]
	if kings == 0 {
		return
	}
	from := kings.LSB()
	targets := kingAttacks[from] &^ p.Occupied[us]
	for to := range targets.All() {
		if p.IsSquareAttacked(to, them) {
			targets = targets.Clear(to)
		}
	}
	p.addTargets(ml, King, from, targets)
}

// castlingPath describes one castling option for one color.
type castlingPath struct {
	kingFrom, kingTo Square
	rookFrom         Square
	mustBeEmpty      Bitboard
	mustBeSafe       [3]Square
}

var castlingPaths = [2][2]castlingPath{
	White: {
		{E1, G1, H1, SquareBB(F1) | SquareBB(G1), [3]Square{E1, F1, G1}},
		{E1, C1, A1, SquareBB(B1) | SquareBB(C1) | SquareBB(D1), [3]Square{E1, D1, C1}},
	},
	Black: {
		{E8, G8, H8, SquareBB(F8) | SquareBB(G8), [3]Square{E8, F8, G8}},
		{E8, C8, A8, SquareBB(B8) | SquareBB(C8) | SquareBB(D8), [3]Square{E8, D8, C8}},
	},
}

func (p *Position) generateCastlingMoves(ml *MoveList) {
	us := p.SideToMove
	them := us.Other()
	for i, path := range castlingPaths[us] {
		if !p.CastlingRights.CanCastle(us, i == 0) {
			continue
		}
		if !p.Pieces[us][King].IsSet(path.kingFrom) || !p.Pieces[us][Rook].IsSet(path.rookFrom) {
			continue
		}
		if p.AllOccupied&path.mustBeEmpty != 0 {
			continue
		}
		safe := true
		for _, sq := range path.mustBeSafe {
			if p.IsSquareAttacked(sq, them) {
				safe = false
				break
			}
		}
		if safe {
			ml.Add(NewMove(path.kingFrom, path.kingTo, King, NoPieceType, NoPieceType, FlagCastling))
		}
	}
}

func (p *Position) generatePawnMoves(ml *MoveList) {
	us := p.SideToMove
	them := us.Other()
	pawns := p.Pieces[us][Pawn]
	enemies := p.Occupied[them]
	empty := p.EmptySquares

	var push1, push2, attackL, attackR, promotionRank Bitboard
	var pushDir int

	if us == White {
		push1 = pawns.North() & empty
		push2 = (push1 & Rank3).North() & empty
		attackL = pawns.NorthWest() & enemies
		attackR = pawns.NorthEast() & enemies
		promotionRank = Rank8
		pushDir = 8
	} else {
		push1 = pawns.South() & empty
		push2 = (push1 & Rank6).South() & empty
		attackL = pawns.SouthWest() & enemies
		attackR = pawns.SouthEast() & enemies
		promotionRank = Rank1
		pushDir = -8
	}

	for to := range push1.All() {
		from := Square(int(to) - pushDir)
		if promotionRank.IsSet(to) {
			addPromotions(ml, from, to, NoPieceType)
		} else {
			ml.Add(NewMove(from, to, Pawn, NoPieceType, NoPieceType, FlagNormal))
		}
	}

	for to := range push2.All() {
		from := Square(int(to) - 2*pushDir)
		ml.Add(NewMove(from, to, Pawn, NoPieceType, NoPieceType, FlagDoublePawnPush))
	}

	p.addPawnCaptures(ml, attackL, pushDir-1, promotionRank)
	p.addPawnCaptures(ml, attackR, pushDir+1, promotionRank)

	if p.EnPassant != NoSquare {
		attackers := pawnAttacks[them][p.EnPassant] & pawns
		for from := range attackers.All() {
			ml.Add(NewMove(from, p.EnPassant, Pawn, Pawn, NoPieceType, FlagEnPassant))
		}
	}
}

// addPawnCaptures emits captures onto targets; delta is to-from.
func (p *Position) addPawnCaptures(ml *MoveList, targets Bitboard, delta int, promotionRank Bitboard) {
	for to := range targets.All() {
		from := Square(int(to) - delta)
		captured := p.PieceAt(to).Type()
		if promotionRank.IsSet(to) {
			addPromotions(ml, from, to, captured)
		} else {
			ml.Add(NewMove(from, to, Pawn, captured, NoPieceType, FlagCapture))
		}
	}
}

// addPromotions adds the four promotions in the order queen, rook, bishop, knight.
func addPromotions(ml *MoveList, from, to Square, captured PieceType) {
	flag := FlagPromotion
	if captured != NoPieceType {
		flag = FlagPromotionCapture
	}
	for _, promo := range [4]PieceType{Queen, Rook, Bishop, Knight} {
		ml.Add(NewMove(from, to, Pawn, captured, promo, flag))
	}
}
