package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a six-field FEN record. Failures are *FENError values
// wrapping one of the Err* sentinels.
func ParseFEN(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) != 6 {
		return nil, fenError("record", fen, fmt.Errorf("%w: got %d", ErrFieldCount, len(parts)))
	}

	pos := NewEmptyPosition()

	if err := parsePiecePlacement(pos, parts[0]); err != nil {
		return nil, err
	}

	switch parts[1] {
	case "w":
		pos.SideToMove = White
	case "b":
		pos.SideToMove = Black
	default:
		return nil, fenError("active color", parts[1], ErrActiveColor)
	}

	cr, err := parseCastlingRights(parts[2])
	if err != nil {
		return nil, err
	}
	pos.CastlingRights = cr

	ep, err := parseEnPassant(parts[3], pos.SideToMove)
	if err != nil {
		return nil, err
	}
	pos.EnPassant = ep

	hmc, err := strconv.ParseUint(parts[4], 10, 8)
	if err != nil {
		return nil, fenError("halfmove clock", parts[4], ErrHalfMoveClock)
	}
	pos.HalfMoveClock = uint8(hmc)

	fmn, err := strconv.ParseUint(parts[5], 10, 16)
	if err != nil || fmn == 0 {
		return nil, fenError("fullmove number", parts[5], ErrFullMoveNumber)
	}
	pos.FullMoveNumber = uint16(fmn)

	pos.updateOccupied()
	pos.Hash = pos.ComputeHash()

	return pos, nil
}

// parsePiecePlacement fills pos from the first FEN field, rank 8 first.
func parsePiecePlacement(pos *Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fenError("placement", placement, fmt.Errorf("%w: need 8 ranks, got %d", ErrPiecePlacement, len(ranks)))
	}

	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0

		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			if file > 7 {
				return fenError("placement", placement, fmt.Errorf("%w: rank %d is longer than 8 squares", ErrPiecePlacement, rank+1))
			}

			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			if c == '0' || c == '9' {
				return fenError("placement", placement, fmt.Errorf("%w: empty-run digit %c", ErrPiecePlacement, c))
			}

			piece := PieceFromChar(c)
			if piece == NoPiece {
				return fenError("placement", placement, fmt.Errorf("%w: %q", ErrInvalidPiece, c))
			}
			pos.Pieces[piece.Color()][piece.Type()] |= SquareBB(NewSquare(file, rank))
			file++
		}

		if file != 8 {
			return fenError("placement", placement, fmt.Errorf("%w: rank %d covers %d squares", ErrPiecePlacement, rank+1, file))
		}
	}

	return nil
}

// parseCastlingRights parses the third FEN field. Rights start empty and
// each letter may appear at most once.
func parseCastlingRights(castling string) (CastlingRights, error) {
	if castling == "-" {
		return NoCastling, nil
	}

	cr := NoCastling
	for i := 0; i < len(castling); i++ {
		var right CastlingRights
		switch castling[i] {
		case 'K':
			right = WhiteKingSideCastle
		case 'Q':
			right = WhiteQueenSideCastle
		case 'k':
			right = BlackKingSideCastle
		case 'q':
			right = BlackQueenSideCastle
		default:
			return NoCastling, fenError("castling", castling, ErrCastlingRights)
		}
		if cr&right != 0 {
			return NoCastling, fenError("castling", castling, fmt.Errorf("%w: duplicate %c", ErrCastlingRights, castling[i]))
		}
		cr |= right
	}

	return cr, nil
}

// parseEnPassant parses the fourth FEN field. The target must sit on the
// rank a double push of the side that just moved passes over.
func parseEnPassant(field string, stm Color) (Square, error) {
	if field == "-" {
		return NoSquare, nil
	}
	sq, err := ParseSquare(field)
	if err != nil {
		return NoSquare, fenError("en passant", field, ErrEnPassantSquare)
	}
	wantRank := 5
	if stm == Black {
		wantRank = 2
	}
	if sq.Rank() != wantRank {
		return NoSquare, fenError("en passant", field, fmt.Errorf("%w: must be on rank %d", ErrEnPassantSquare, wantRank+1))
	}
	return sq, nil
}

// ToFEN returns the FEN representation of the position.
func (p *Position) ToFEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := p.PieceAt(NewSquare(file, rank))
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(p.CastlingRights.String())
	sb.WriteByte(' ')
	sb.WriteString(p.EnPassant.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(int(p.HalfMoveClock)))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(int(p.FullMoveNumber)))

	return sb.String()
}
