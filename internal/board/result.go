package board

// Outcome is the termination state of a position.
type Outcome uint8

const (
	Ongoing Outcome = iota
	Checkmate
	Stalemate
	DrawFiftyMove
	DrawRepetition
	DrawInsufficientMaterial
)

func (o Outcome) String() string {
	switch o {
	case Ongoing:
		return "Ongoing"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	case DrawFiftyMove:
		return "DrawFiftyMove"
	case DrawRepetition:
		return "DrawRepetition"
	case DrawInsufficientMaterial:
		return "DrawInsufficientMaterial"
	default:
		return "Unknown"
	}
}

// IsDraw reports whether the outcome is one of the drawn results.
func (o Outcome) IsDraw() bool {
	return o == Stalemate || o == DrawFiftyMove || o == DrawRepetition || o == DrawInsufficientMaterial
}

// GameResult is the classification of a position. Mated names the checkmated
// side and is NoColor for every other outcome.
type GameResult struct {
	Outcome Outcome
	Mated   Color
}

func (r GameResult) String() string {
	if r.Outcome == Checkmate {
		return "Checkmate(" + r.Mated.String() + ")"
	}
	return r.Outcome.String()
}

// FiftyMoveLimit is the halfmove clock value at which the game is drawn.
const FiftyMoveLimit = 100

// RepetitionCounter reports how many times a position hash has occurred in
// the game so far, the current occurrence included.
type RepetitionCounter interface {
	Repetitions(hash uint64) int
}

// GameResult classifies the position without repetition information.
func (p *Position) GameResult() GameResult {
	return p.GameResultWithHistory(nil)
}

// GameResultWithHistory classifies the position. Precedence: no legal moves
// (checkmate if in check, otherwise stalemate), then the fifty-move rule,
// then threefold repetition when history is non-nil, then insufficient
// material.
func (p *Position) GameResultWithHistory(history RepetitionCounter) GameResult {
	if !p.HasLegalMoves() {
		if p.InCheck() {
			return GameResult{Outcome: Checkmate, Mated: p.SideToMove}
		}
		return GameResult{Outcome: Stalemate, Mated: NoColor}
	}
	if p.HalfMoveClock >= FiftyMoveLimit {
		return GameResult{Outcome: DrawFiftyMove, Mated: NoColor}
	}
	if history != nil && history.Repetitions(p.Hash) >= 3 {
		return GameResult{Outcome: DrawRepetition, Mated: NoColor}
	}
	if p.IsInsufficientMaterial() {
		return GameResult{Outcome: DrawInsufficientMaterial, Mated: NoColor}
	}
	return GameResult{Outcome: Ongoing, Mated: NoColor}
}

// IsCheckmate reports whether the side to move is checkmated.
func (p *Position) IsCheckmate() bool {
	return p.InCheck() && !p.HasLegalMoves()
}

// IsStalemate reports whether the side to move has no legal move but is not in check.
func (p *Position) IsStalemate() bool {
	return !p.InCheck() && !p.HasLegalMoves()
}

// IsInsufficientMaterial reports whether neither side can deliver mate:
// no pawns, rooks or queens anywhere, and at most one minor piece in total.
func (p *Position) IsInsufficientMaterial() bool {
	if p.Pieces[White][Pawn]|p.Pieces[Black][Pawn] != 0 ||
		p.Pieces[White][Rook]|p.Pieces[Black][Rook] != 0 ||
		p.Pieces[White][Queen]|p.Pieces[Black][Queen] != 0 {
		return false
	}

	white := (p.Pieces[White][Knight] | p.Pieces[White][Bishop]).PopCount()
	black := (p.Pieces[Black][Knight] | p.Pieces[Black][Bishop]).PopCount()

	switch {
	case white == 0 && black == 0:
		return true
	case white == 1 && black == 0, white == 0 && black == 1:
		return true
	default:
		return false
	}
}
