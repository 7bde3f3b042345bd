// Package diagram renders positions as PNG board diagrams.
package diagram

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/hailam/chesscore/internal/board"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare   color.RGBA
	DarkSquare    color.RGBA
	LastMoveColor color.RGBA
	CheckColor    color.RGBA
	TextColor     color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare:   color.RGBA{240, 217, 181, 255}, // Tan
		DarkSquare:    color.RGBA{181, 136, 99, 255},  // Brown
		LastMoveColor: color.RGBA{180, 190, 100, 90},
		CheckColor:    color.RGBA{255, 100, 100, 180},
		TextColor:     color.RGBA{60, 40, 30, 255},
	}
}

// Options controls how a diagram is drawn.
type Options struct {
	SquareSize  int    // pixels per square; DefaultSquareSize when zero
	Theme       *Theme // DefaultTheme when nil
	LastMove    board.Move
	Coordinates bool // draw file letters and rank digits
}

const (
	DefaultSquareSize = 64
	minSquareSize     = 8
)

// Render draws p with White at the bottom.
func Render(p *board.Position, opts Options) (*image.RGBA, error) {
	size := opts.SquareSize
	if size == 0 {
		size = DefaultSquareSize
	}
	if size < minSquareSize {
		return nil, fmt.Errorf("diagram: square size %d below minimum %d", size, minSquareSize)
	}
	theme := opts.Theme
	if theme == nil {
		theme = DefaultTheme()
	}

	sprites, err := newSpriteSet(size)
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, 8*size, 8*size))
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			c := theme.LightSquare
			if (rank+file)%2 == 0 {
				c = theme.DarkSquare
			}
			draw.Draw(img, squareRect(board.NewSquare(file, rank), size), image.NewUniform(c), image.Point{}, draw.Src)
		}
	}

	if opts.LastMove != board.NoMove {
		highlight(img, opts.LastMove.From(), size, theme.LastMoveColor)
		highlight(img, opts.LastMove.To(), size, theme.LastMoveColor)
	}
	if p.InCheck() {
		highlight(img, p.KingSquare(p.SideToMove), size, theme.CheckColor)
	}

	for sq := range p.AllOccupied.All() {
		sprite := sprites.pieces[p.PieceAt(sq)]
		r := squareRect(sq, size)
		draw.Draw(img, r, sprite, image.Point{}, draw.Over)
	}

	if opts.Coordinates {
		if err := drawCoordinates(img, size, theme.TextColor); err != nil {
			return nil, err
		}
	}

	return img, nil
}

// WritePNG renders p and encodes it to w.
func WritePNG(w io.Writer, p *board.Position, opts Options) error {
	img, err := Render(p, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// squareRect returns the pixel bounds of sq, rank 1 at the bottom.
func squareRect(sq board.Square, size int) image.Rectangle {
	x := sq.File() * size
	y := (7 - sq.Rank()) * size
	return image.Rect(x, y, x+size, y+size)
}

func highlight(img *image.RGBA, sq board.Square, size int, c color.RGBA) {
	if sq == board.NoSquare {
		return
	}
	draw.Draw(img, squareRect(sq, size), image.NewUniform(c), image.Point{}, draw.Over)
}

// drawCoordinates writes file letters along rank 1 and rank digits along the a-file.
func drawCoordinates(img *image.RGBA, size int, c color.RGBA) error {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("diagram: parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size) / 5,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("diagram: font face: %w", err)
	}
	defer face.Close()

	d := &font.Drawer{Dst: img, Src: image.NewUniform(c), Face: face}
	pad := size / 16
	for file := 0; file < 8; file++ {
		label := string(rune('a' + file))
		d.Dot = fixed.P(file*size+size-pad-d.MeasureString(label).Ceil(), 8*size-pad)
		d.DrawString(label)
	}
	ascent := face.Metrics().Ascent.Ceil()
	for rank := 0; rank < 8; rank++ {
		d.Dot = fixed.P(pad, (7-rank)*size+pad+ascent)
		d.DrawString(string(rune('1' + rank)))
	}
	return nil
}
