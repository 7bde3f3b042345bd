package diagram

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/hailam/chesscore/internal/board"
)

func mustParse(t *testing.T, fen string) *board.Position {
	t.Helper()
	p, err := board.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return p
}

func TestRenderBoardSquares(t *testing.T) {
	const size = 32
	theme := DefaultTheme()
	img, err := Render(board.NewPosition(), Options{SquareSize: size})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 8*size, 8*size) {
		t.Fatalf("bounds = %v", got)
	}

	// a3 is dark, e4 light; both are empty in the start position.
	a3 := squareRect(board.A3, size)
	if got := img.RGBAAt(a3.Min.X+size/2, a3.Min.Y+size/2); got != theme.DarkSquare {
		t.Errorf("a3 = %v, want %v", got, theme.DarkSquare)
	}
	e4 := squareRect(board.E4, size)
	if got := img.RGBAAt(e4.Min.X+size/2, e4.Min.Y+size/2); got != theme.LightSquare {
		t.Errorf("e4 = %v, want %v", got, theme.LightSquare)
	}
}

func TestRenderDrawsPieces(t *testing.T) {
	const size = 32
	img, err := Render(board.NewPosition(), Options{SquareSize: size})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	theme := DefaultTheme()
	for _, sq := range []board.Square{board.E1, board.D8, board.B1, board.H7} {
		r := squareRect(sq, size)
		bg := theme.LightSquare
		if (sq.File()+sq.Rank())%2 == 0 {
			bg = theme.DarkSquare
		}
		painted := false
		for y := r.Min.Y; y < r.Max.Y && !painted; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				if img.RGBAAt(x, y) != bg {
					painted = true
					break
				}
			}
		}
		if !painted {
			t.Errorf("%v: no glyph drawn", sq)
		}
	}
}

func TestRenderHighlights(t *testing.T) {
	const size = 32
	theme := DefaultTheme()

	// Fool's mate: White is checkmated, the last move was Qd8-h4.
	p := mustParse(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	last := board.NewMove(board.D8, board.H4, board.Queen, board.NoPieceType, board.NoPieceType, board.FlagNormal)
	img, err := Render(p, Options{SquareSize: size, LastMove: last})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	e1 := squareRect(board.E1, size)
	if got := img.RGBAAt(e1.Min.X, e1.Min.Y); got == theme.DarkSquare {
		t.Errorf("e1 corner not tinted for check")
	}
	d8 := squareRect(board.D8, size)
	if got := img.RGBAAt(d8.Min.X+size/2, d8.Min.Y+size/2); got == theme.DarkSquare {
		t.Errorf("d8 not tinted as last-move origin")
	}
}

func TestRenderRejectsTinySquares(t *testing.T) {
	if _, err := Render(board.NewPosition(), Options{SquareSize: 4}); err == nil {
		t.Fatal("expected error for square size 4")
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, board.NewPosition(), Options{SquareSize: 24, Coordinates: true}); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if got := img.Bounds().Dx(); got != 8*24 {
		t.Errorf("width = %d, want %d", got, 8*24)
	}
}
