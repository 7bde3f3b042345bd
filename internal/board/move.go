package board

// Move encodes a chess move in 32 bits:
// bits 0-5:   from square (0-63)
// bits 6-11:  to square (0-63)
// bits 12-14: moved piece type
// bits 15-17: captured piece type (NoPieceType if none)
// bits 18-20: promotion piece type (NoPieceType if none)
// bits 21-23: flag
type Move uint32

// MoveFlag classifies a move.
type MoveFlag uint8

const (
	FlagNormal MoveFlag = iota
	FlagDoublePawnPush
	FlagEnPassant
	FlagCastling
	FlagCapture
	FlagPromotion
	FlagPromotionCapture
)

func (f MoveFlag) String() string {
	switch f {
	case FlagNormal:
		return "Normal"
	case FlagDoublePawnPush:
		return "DoublePawnPush"
	case FlagEnPassant:
		return "EnPassant"
	case FlagCastling:
		return "Castling"
	case FlagCapture:
		return "Capture"
	case FlagPromotion:
		return "Promotion"
	case FlagPromotionCapture:
		return "PromotionCapture"
	default:
		return "Unknown"
	}
}

// NoMove represents an invalid or null move.
const NoMove Move = 0

// NewMove packs a move. captured and promo take NoPieceType when absent.
func NewMove(from, to Square, piece, captured, promo PieceType, flag MoveFlag) Move {
	return Move(from) | Move(to)<<6 | Move(piece)<<12 | Move(captured)<<15 |
		Move(promo)<<18 | Move(flag)<<21
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & 0x3F)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> 6) & 0x3F)
}

// Piece returns the type of the moving piece.
func (m Move) Piece() PieceType {
	return PieceType((m >> 12) & 7)
}

// Captured returns the captured piece type, or NoPieceType.
func (m Move) Captured() PieceType {
	return PieceType((m >> 15) & 7)
}

// Promotion returns the promotion piece type, or NoPieceType.
func (m Move) Promotion() PieceType {
	return PieceType((m >> 18) & 7)
}

// Flag returns the move flag.
func (m Move) Flag() MoveFlag {
	return MoveFlag((m >> 21) & 7)
}

// IsCapture reports whether the move removes an opposing piece, en passant included.
func (m Move) IsCapture() bool {
	return m.Captured() != NoPieceType
}

// IsPromotion reports whether a pawn promotes with this move.
func (m Move) IsPromotion() bool {
	f := m.Flag()
	return f == FlagPromotion || f == FlagPromotionCapture
}

func (m Move) IsCastling() bool {
	return m.Flag() == FlagCastling
}

func (m Move) IsEnPassant() bool {
	return m.Flag() == FlagEnPassant
}

func (m Move) IsDoublePawnPush() bool {
	return m.Flag() == FlagDoublePawnPush
}

// String returns the coordinate form of the move (e.g. "e2e4", "e7e8q").
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}

	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += string(m.Promotion().Char())
	}
	return s
}

// MoveList is a fixed-size list of moves to avoid allocations.
type MoveList struct {
	moves [256]Move
	count int
}

// NewMoveList creates an empty move list.
func NewMoveList() *MoveList {
	return &MoveList{}
}

// Add appends a move to the list.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.count] = m
	ml.count++
}

// Len returns the number of moves in the list.
func (ml *MoveList) Len() int {
	return ml.count
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Clear empties the list.
func (ml *MoveList) Clear() {
	ml.count = 0
}

// Contains reports whether the list holds m.
func (ml *MoveList) Contains(m Move) bool {
	for i := 0; i < ml.count; i++ {
		if ml.moves[i] == m {
			return true
		}
	}
	return false
}

// Slice returns the moves as a slice backed by the list.
func (ml *MoveList) Slice() []Move {
	return ml.moves[:ml.count]
}

// Undo is the part of the position a move destroys and MakeMove cannot
// re-derive from the move itself.
type Undo struct {
	Captured       Piece  // NoPiece if the move captured nothing
	CapturedSquare Square // differs from the destination for en passant
	CastlingRights CastlingRights
	EnPassant      Square
	HalfMoveClock  uint8
	FullMoveNumber uint16
	Hash           uint64
}
