package board

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

// Every blocker subset of every square must map to the ray-cast attack set.
func TestMagicLookupMatchesRayCast(t *testing.T) {
	for sq := A1; sq <= H8; sq++ {
		for occ := range Subsets(RelevantMask(Rook, sq)) {
			if got, want := RookAttacks(sq, occ), SlidingAttacks(Rook, sq, occ); got != want {
				t.Fatalf("rook %v occ %#x: got %#x want %#x", sq, uint64(occ), uint64(got), uint64(want))
			}
		}
		for occ := range Subsets(RelevantMask(Bishop, sq)) {
			if got, want := BishopAttacks(sq, occ), SlidingAttacks(Bishop, sq, occ); got != want {
				t.Fatalf("bishop %v occ %#x: got %#x want %#x", sq, uint64(occ), uint64(got), uint64(want))
			}
		}
	}
}

// Occupancy outside the mask, including edge squares, must not change the answer.
func TestMagicLookupAgainstDragontooth(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 20000; i++ {
		sq := Square(rng.IntN(64))
		occ := Bitboard(rng.Uint64() & rng.Uint64())

		if got, want := uint64(RookAttacks(sq, occ)), dragontoothmg.CalculateRookMoveBitboard(uint8(sq), uint64(occ)); got != want {
			t.Fatalf("rook %v occ %#x: got %#x, dragontooth %#x", sq, uint64(occ), got, want)
		}
		if got, want := uint64(BishopAttacks(sq, occ)), dragontoothmg.CalculateBishopMoveBitboard(uint8(sq), uint64(occ)); got != want {
			t.Fatalf("bishop %v occ %#x: got %#x, dragontooth %#x", sq, uint64(occ), got, want)
		}
		if got, want := QueenAttacks(sq, occ), RookAttacks(sq, occ)|BishopAttacks(sq, occ); got != want {
			t.Fatalf("queen %v: got %#x want %#x", sq, uint64(got), uint64(want))
		}
	}
}

func TestRelevantMask(t *testing.T) {
	tests := []struct {
		pt   PieceType
		sq   Square
		want Bitboard
	}{
		{Rook, A1, 0x000101010101017E},
		{Rook, E4, 0x001010106E101000},
		{Bishop, A1, 0x0040201008040200},
		{Bishop, D4, 0x0040221400142200},
	}
	for _, tc := range tests {
		if got := RelevantMask(tc.pt, tc.sq); got != tc.want {
			t.Errorf("RelevantMask(%v, %v) = %#x, want %#x", tc.pt, tc.sq, uint64(got), uint64(tc.want))
		}
	}
}

func TestMagicFeedShifts(t *testing.T) {
	rooks, bishops := RookMagics(), BishopMagics()
	for sq := A1; sq <= H8; sq++ {
		if want := uint8(64 - rooks[sq].Mask.PopCount()); rooks[sq].Shift != want {
			t.Errorf("rook %v shift %d, want %d", sq, rooks[sq].Shift, want)
		}
		if want := uint8(64 - bishops[sq].Mask.PopCount()); bishops[sq].Shift != want {
			t.Errorf("bishop %v shift %d, want %d", sq, bishops[sq].Shift, want)
		}
	}
}

func TestFillAttackTableRejectsCollision(t *testing.T) {
	feed := RookMagics()
	feed[E4].Magic = 1 // maps nearly every subset to the same slot
	table := make([]Bitboard, rookTableSize)

	err := fillAttackTable(Rook, &feed, table)
	if err == nil || !strings.Contains(err.Error(), "collides") {
		t.Errorf("fillAttackTable with a bad magic returned %v, want a collision error", err)
	}
}

func TestSubsetsCount(t *testing.T) {
	mask := RelevantMask(Rook, A1)
	n := 0
	for range Subsets(mask) {
		n++
	}
	if want := 1 << mask.PopCount(); n != want {
		t.Errorf("Subsets yielded %d sets, want %d", n, want)
	}
}

func TestLeaperTables(t *testing.T) {
	tests := []struct {
		name string
		got  Bitboard
		want []Square
	}{
		{"knight a1", KnightAttacks(A1), []Square{B3, C2}},
		{"knight h8", KnightAttacks(H8), []Square{F7, G6}},
		{"king a1", KingAttacks(A1), []Square{B1, A2, B2}},
		{"white pawn a2", PawnAttacks(A2, White), []Square{B3}},
		{"black pawn e5", PawnAttacks(E5, Black), []Square{D4, F4}},
		{"white pawn h8", PawnAttacks(H8, White), nil},
	}
	for _, tc := range tests {
		var want Bitboard
		for _, sq := range tc.want {
			want |= SquareBB(sq)
		}
		if tc.got != want {
			t.Errorf("%s = %v, want %v", tc.name, tc.got.Squares(), tc.want)
		}
	}
	if n := KnightAttacks(D4).PopCount(); n != 8 {
		t.Errorf("knight d4 has %d targets, want 8", n)
	}
}
