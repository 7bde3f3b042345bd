package board

import (
	"fmt"
	"iter"
)

// Magic holds the magic bitboard data for a single square.
type Magic struct {
	Mask   Bitboard // Relevant blocker mask (edges excluded)
	Magic  uint64   // Multiplier
	Shift  uint8    // 64 - popcount(Mask)
	Offset uint32   // Base index into the shared attack table
}

// index maps an occupancy to a slot of the shared attack table.
func (m *Magic) index(occupied Bitboard) uint32 {
	return uint32((uint64(occupied&m.Mask)*m.Magic)>>m.Shift) + m.Offset
}

var (
	bishopMagics [64]Magic
	rookMagics   [64]Magic

	bishopTable [bishopTableSize]Bitboard
	rookTable   [rookTableSize]Bitboard
)

var (
	rookDirections   = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	bishopDirections = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// initMagics fills the shared attack tables from the fixed feed. A feed
// entry that collides destructively means the generated table is corrupt.
func initMagics() {
	bishopMagics = bishopMagicFeed
	rookMagics = rookMagicFeed
	if err := fillAttackTable(Bishop, &bishopMagics, bishopTable[:]); err != nil {
		panic(err)
	}
	if err := fillAttackTable(Rook, &rookMagics, rookTable[:]); err != nil {
		panic(err)
	}
}

// fillAttackTable stores the true attack set of every blocker subset of every
// square at the slot the feed entry maps it to.
func fillAttackTable(pt PieceType, magics *[64]Magic, table []Bitboard) error {
	filled := make([]bool, len(table))
	for sq := A1; sq <= H8; sq++ {
		m := &magics[sq]
		if m.Mask != RelevantMask(pt, sq) {
			return fmt.Errorf("board: %v magic for %v has wrong mask %#x", pt, sq, uint64(m.Mask))
		}
		for occ := range Subsets(m.Mask) {
			idx := m.index(occ)
			if int(idx) >= len(table) {
				return fmt.Errorf("board: %v magic for %v indexes %d past table end %d", pt, sq, idx, len(table))
			}
			attacks := SlidingAttacks(pt, sq, occ)
			if filled[idx] && table[idx] != attacks {
				return fmt.Errorf("board: %v magic %#x for %v collides at index %d", pt, m.Magic, sq, idx)
			}
			table[idx] = attacks
			filled[idx] = true
		}
	}
	return nil
}

// CheckMagics rebuilds a pt attack table of tableSize slots from magics and
// reports the first entry with a wrong mask, an out-of-range index or a
// destructive collision.
func CheckMagics(pt PieceType, magics [64]Magic, tableSize int) error {
	return fillAttackTable(pt, &magics, make([]Bitboard, tableSize))
}

// RookMagics returns the rook entries of the magic table feed.
func RookMagics() [64]Magic {
	return rookMagicFeed
}

// BishopMagics returns the bishop entries of the magic table feed.
func BishopMagics() [64]Magic {
	return bishopMagicFeed
}

func directions(pt PieceType) [][2]int {
	switch pt {
	case Rook:
		return rookDirections[:]
	case Bishop:
		return bishopDirections[:]
	default:
		panic("board: no magic rays for " + pt.String())
	}
}

// RelevantMask returns the squares strictly between sq and the board edge
// along each ray of a rook or bishop. Edge squares can never hide anything
// behind them, so they do not affect the attack set.
func RelevantMask(pt PieceType, sq Square) Bitboard {
	var mask Bitboard
	for _, d := range directions(pt) {
		cur, ok := sq.Offset(d[0], d[1])
		for ok {
			next, more := cur.Offset(d[0], d[1])
			if !more {
				break
			}
			mask |= SquareBB(cur)
			cur, ok = next, more
		}
	}
	return mask
}

// SlidingAttacks ray-casts the attack set of a rook or bishop on sq. Each ray
// stops at, and includes, the first occupied square.
func SlidingAttacks(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	var attacks Bitboard
	for _, d := range directions(pt) {
		cur, ok := sq.Offset(d[0], d[1])
		for ok {
			attacks |= SquareBB(cur)
			if occupied.IsSet(cur) {
				break
			}
			cur, ok = cur.Offset(d[0], d[1])
		}
	}
	return attacks
}

// Subsets yields every subset of mask, starting with the empty set, using the
// carry-rippler (b - mask) & mask.
func Subsets(mask Bitboard) iter.Seq[Bitboard] {
	return func(yield func(Bitboard) bool) {
		var b Bitboard
		for {
			if !yield(b) {
				return
			}
			b = (b - mask) & mask
			if b == 0 {
				return
			}
		}
	}
}
