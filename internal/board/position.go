package board

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// CastlingRights represents the available castling options.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                            // q
	NoCastling           CastlingRights = 0
	AllCastling          CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

// String returns the FEN castling field.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := ""
	if cr&WhiteKingSideCastle != 0 {
		s += "K"
	}
	if cr&WhiteQueenSideCastle != 0 {
		s += "Q"
	}
	if cr&BlackKingSideCastle != 0 {
		s += "k"
	}
	if cr&BlackQueenSideCastle != 0 {
		s += "q"
	}
	return s
}

// CanCastle reports whether c still holds the right on the given wing.
func (cr CastlingRights) CanCastle(c Color, kingSide bool) bool {
	return cr&castleRight(c, kingSide) != 0
}

func castleRight(c Color, kingSide bool) CastlingRights {
	switch {
	case c == White && kingSide:
		return WhiteKingSideCastle
	case c == White:
		return WhiteQueenSideCastle
	case kingSide:
		return BlackKingSideCastle
	default:
		return BlackQueenSideCastle
	}
}

// rookCornerRight returns the right tied to a rook's original corner square.
func rookCornerRight(sq Square) CastlingRights {
	switch sq {
	case H1:
		return WhiteKingSideCastle
	case A1:
		return WhiteQueenSideCastle
	case H8:
		return BlackKingSideCastle
	case A8:
		return BlackQueenSideCastle
	default:
		return NoCastling
	}
}

// DebugMoveValidation runs Validate after every MakeMove and UnmakeMove and
// aborts on the first broken invariant.
var DebugMoveValidation = false

// Position represents a complete chess position.
type Position struct {
	// Piece bitboards: [Color][PieceType]
	Pieces [2][6]Bitboard

	// Occupancy, kept equal to the unions of Pieces
	Occupied     [2]Bitboard
	AllOccupied  Bitboard
	EmptySquares Bitboard

	SideToMove     Color
	CastlingRights CastlingRights
	EnPassant      Square // NoSquare if none
	HalfMoveClock  uint8  // plies since the last pawn move or capture
	FullMoveNumber uint16 // starts at 1, incremented after Black moves

	// Zobrist key, maintained incrementally by MakeMove/UnmakeMove
	Hash uint64

	history []Undo
}

// NewPosition returns the standard starting position.
func NewPosition() *Position {
	p := &Position{
		SideToMove:     White,
		CastlingRights: AllCastling,
		EnPassant:      NoSquare,
		FullMoveNumber: 1,
	}
	p.Pieces[White] = [6]Bitboard{Rank2, SquareBB(B1) | SquareBB(G1), SquareBB(C1) | SquareBB(F1),
		SquareBB(A1) | SquareBB(H1), SquareBB(D1), SquareBB(E1)}
	p.Pieces[Black] = [6]Bitboard{Rank7, SquareBB(B8) | SquareBB(G8), SquareBB(C8) | SquareBB(F8),
		SquareBB(A8) | SquareBB(H8), SquareBB(D8), SquareBB(E8)}
	p.updateOccupied()
	p.Hash = p.ComputeHash()
	return p
}

// NewEmptyPosition returns a board with no pieces, White to move.
func NewEmptyPosition() *Position {
	p := &Position{
		EnPassant:      NoSquare,
		FullMoveNumber: 1,
	}
	p.updateOccupied()
	p.Hash = p.ComputeHash()
	return p
}

// Clone returns an independent copy, undo stack included.
func (p *Position) Clone() *Position {
	c := *p
	c.history = slices.Clone(p.history)
	return &c
}

// UndoDepth returns the number of moves that can currently be unmade.
func (p *Position) UndoDepth() int {
	return len(p.history)
}

// PieceAt returns the piece on sq, or NoPiece if the square is empty.
func (p *Position) PieceAt(sq Square) Piece {
	bb := SquareBB(sq)
	if p.AllOccupied&bb == 0 {
		return NoPiece
	}

	c := White
	if p.Occupied[Black]&bb != 0 {
		c = Black
	}
	return NewPiece(p.pieceTypeAt(c, bb), c)
}

// pieceTypeAt finds which of c's bitboards holds bb. The caller guarantees
// that c occupies bb.
func (p *Position) pieceTypeAt(c Color, bb Bitboard) PieceType {
	for pt := Pawn; pt <= King; pt++ {
		if p.Pieces[c][pt]&bb != 0 {
			return pt
		}
	}
	panic(fmt.Sprintf("board: %v occupancy has a square no %v piece covers", c, c))
}

// IsEmpty reports whether sq holds no piece.
func (p *Position) IsEmpty(sq Square) bool {
	return p.AllOccupied&SquareBB(sq) == 0
}

// AddPiece puts a piece of type pt and color c on sq, replacing any occupant.
func (p *Position) AddPiece(sq Square, pt PieceType, c Color) {
	if !sq.IsValid() {
		panic(fmt.Sprintf("board: AddPiece on invalid square %d", sq))
	}
	NewPiece(pt, c) // validates pt and c
	p.DeletePiece(sq)
	p.Hash ^= p.enPassantKey()
	p.Pieces[c][pt] |= SquareBB(sq)
	p.Hash ^= zobristPiece[c][pt][sq] ^ p.enPassantKey()
	p.updateOccupied()
}

// DeletePiece removes whatever occupies sq and returns it (NoPiece if empty).
func (p *Position) DeletePiece(sq Square) Piece {
	if !sq.IsValid() {
		panic(fmt.Sprintf("board: DeletePiece on invalid square %d", sq))
	}
	piece := p.PieceAt(sq)
	if piece == NoPiece {
		return NoPiece
	}
	c, pt := piece.Color(), piece.Type()
	p.Hash ^= p.enPassantKey()
	p.Pieces[c][pt] &^= SquareBB(sq)
	p.Hash ^= zobristPiece[c][pt][sq] ^ p.enPassantKey()
	p.updateOccupied()
	return piece
}

// updateOccupied recalculates occupancy bitboards from piece bitboards.
func (p *Position) updateOccupied() {
	p.Occupied[White] = Empty
	p.Occupied[Black] = Empty

	for pt := Pawn; pt <= King; pt++ {
		p.Occupied[White] |= p.Pieces[White][pt]
		p.Occupied[Black] |= p.Pieces[Black][pt]
	}

	p.AllOccupied = p.Occupied[White] | p.Occupied[Black]
	p.EmptySquares = ^p.AllOccupied
}

// KingSquare returns c's king square, or NoSquare if c has no king.
func (p *Position) KingSquare(c Color) Square {
	return p.Pieces[c][King].LSB()
}

// String renders the diagnostic dump: the board from rank 8 down with
// uppercase White and lowercase Black letters, followed by the state fields.
func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteByte('\n')
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d  ", rank+1)
		for file := 0; file < 8; file++ {
			piece := p.PieceAt(NewSquare(file, rank))
			if piece == NoPiece {
				sb.WriteString(". ")
			} else {
				sb.WriteString(piece.String() + " ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("\n   a b c d e f g h\n\n")
	fmt.Fprintf(&sb, "Side to move: %s\n", p.SideToMove)
	fmt.Fprintf(&sb, "Castling: %s\n", p.CastlingRights)
	fmt.Fprintf(&sb, "En passant: %s\n", p.EnPassant)
	fmt.Fprintf(&sb, "Half-move clock: %d\n", p.HalfMoveClock)
	fmt.Fprintf(&sb, "Full move: %d\n", p.FullMoveNumber)
	fmt.Fprintf(&sb, "Hash: %016x\n", p.Hash)
	return sb.String()
}

// Validate checks the structural invariants: disjoint piece sets, occupancy
// equal to their unions, at most one king per color, a plausible en-passant
// target and an up-to-date hash.
func (p *Position) Validate() error {
	var errs []error
	var union [2]Bitboard
	var seen Bitboard
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			bb := p.Pieces[c][pt]
			if seen&bb != 0 {
				errs = append(errs, fmt.Errorf("%v %v overlaps another piece set", c, pt))
			}
			seen |= bb
			union[c] |= bb
		}
		if union[c] != p.Occupied[c] {
			errs = append(errs, fmt.Errorf("%v occupancy %#x does not match its pieces %#x", c, uint64(p.Occupied[c]), uint64(union[c])))
		}
		if n := p.Pieces[c][King].PopCount(); n > 1 {
			errs = append(errs, fmt.Errorf("%v has %d kings", c, n))
		}
	}
	if p.Occupied[White]&p.Occupied[Black] != 0 {
		errs = append(errs, errors.New("white and black occupancy intersect"))
	}
	if p.AllOccupied != p.Occupied[White]|p.Occupied[Black] {
		errs = append(errs, errors.New("total occupancy is not the union of both colors"))
	}
	if p.EmptySquares != ^p.AllOccupied {
		errs = append(errs, errors.New("empty set is not the complement of occupancy"))
	}
	if p.EnPassant != NoSquare {
		wantRank := 5
		if p.SideToMove == Black {
			wantRank = 2
		}
		if !p.EnPassant.IsValid() || p.EnPassant.Rank() != wantRank {
			errs = append(errs, fmt.Errorf("en passant square %v on wrong rank for %v to move", p.EnPassant, p.SideToMove))
		}
	}
	if h := p.ComputeHash(); h != p.Hash {
		errs = append(errs, fmt.Errorf("hash %016x differs from recomputed %016x", p.Hash, h))
	}
	return errors.Join(errs...)
}
