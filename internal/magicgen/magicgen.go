// Package magicgen searches for rook and bishop magic multipliers and emits
// them as the Go source of the board package's magic table feed.
package magicgen

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/hailam/chesscore/internal/board"
)

// ErrNoMagic is returned when the search gives up on a square.
var ErrNoMagic = errors.New("magicgen: no magic found")

// DefaultMaxTries bounds the candidates tried per square.
const DefaultMaxTries = 100_000_000

// Table is a full feed for one slider: an entry per square with offsets
// laid out back to back.
type Table struct {
	Piece   board.PieceType
	Entries [64]board.Magic
	Size    int // total slots across all squares
}

// Generator finds magics with a seeded PRNG, so a seed always yields the same table.
type Generator struct {
	rng      *rand.Rand
	MaxTries int
}

// New returns a generator seeded with seed.
func New(seed uint64) *Generator {
	return &Generator{
		rng:      rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15)),
		MaxTries: DefaultMaxTries,
	}
}

// candidate returns a sparse random multiplier.
func (g *Generator) candidate() uint64 {
	return g.rng.Uint64() & g.rng.Uint64() & g.rng.Uint64()
}

// Find searches for a magic for pt on sq that indexes popcount(mask) bits.
// The returned entry has a zero Offset.
func (g *Generator) Find(pt board.PieceType, sq board.Square) (board.Magic, error) {
	mask := board.RelevantMask(pt, sq)
	bits := mask.PopCount()
	entry := board.Magic{Mask: mask, Shift: uint8(64 - bits)}

	var occupancies, attacks []board.Bitboard
	for occ := range board.Subsets(mask) {
		occupancies = append(occupancies, occ)
		attacks = append(attacks, board.SlidingAttacks(pt, sq, occ))
	}

	table := make([]board.Bitboard, 1<<bits)
	epoch := make([]int, 1<<bits)
	for try := 1; try <= g.MaxTries; try++ {
		entry.Magic = g.candidate()
		// Multipliers that spread too few mask bits into the top byte rarely work.
		if board.Bitboard((uint64(mask)*entry.Magic)&0xFF00000000000000).PopCount() < 6 {
			continue
		}
		if fits(&entry, occupancies, attacks, table, epoch, try) {
			return entry, nil
		}
	}
	return board.Magic{}, fmt.Errorf("%w for %v on %v after %d tries", ErrNoMagic, pt, sq, g.MaxTries)
}

// fits reports whether entry maps every occupancy to a slot holding either
// nothing or the same attack set. epoch marks which slots this try has used.
func fits(entry *board.Magic, occupancies, attacks, table []board.Bitboard, epoch []int, try int) bool {
	for i, occ := range occupancies {
		idx := (uint64(occ) * entry.Magic) >> entry.Shift
		if epoch[idx] < try {
			epoch[idx] = try
			table[idx] = attacks[i]
		} else if table[idx] != attacks[i] {
			return false
		}
	}
	return true
}

// Generate finds a magic for every square and assigns offsets in square order.
func (g *Generator) Generate(pt board.PieceType) (*Table, error) {
	if pt != board.Rook && pt != board.Bishop {
		return nil, fmt.Errorf("magicgen: %v is not a magic slider", pt)
	}
	t := &Table{Piece: pt}
	for sq := board.A1; sq <= board.H8; sq++ {
		m, err := g.Find(pt, sq)
		if err != nil {
			return nil, err
		}
		m.Offset = uint32(t.Size)
		t.Entries[sq] = m
		t.Size += 1 << (64 - int(m.Shift))
	}
	if err := board.CheckMagics(pt, t.Entries, t.Size); err != nil {
		return nil, err
	}
	return t, nil
}

// generatedHeader marks WriteTable output as machine-written.
const generatedHeader = "// Code generated by magicgen; DO NOT EDIT.\n"

// WriteTable writes the generated Go source for the rook and bishop feeds.
func WriteTable(w io.Writer, rook, bishop *Table) error {
	ew := &errWriter{w: w}
	ew.printf("%s\npackage board\n\n", generatedHeader)
	ew.printf("const (\n\trookTableSize   = %d\n\tbishopTableSize = %d\n)\n", rook.Size, bishop.Size)
	writeFeed(ew, "rookMagicFeed", rook)
	writeFeed(ew, "bishopMagicFeed", bishop)
	return ew.err
}

func writeFeed(ew *errWriter, name string, t *Table) {
	ew.printf("\nvar %s = [64]Magic{\n", name)
	for _, m := range t.Entries {
		ew.printf("\t{Mask: 0x%016X, Magic: 0x%016X, Shift: %d, Offset: %d},\n",
			uint64(m.Mask), m.Magic, m.Shift, m.Offset)
	}
	ew.printf("}\n")
}

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
