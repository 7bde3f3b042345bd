package diagram

import (
	"embed"
	"fmt"
	"image"
	"strings"

	"github.com/hailam/chesscore/internal/board"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
)

//go:embed assets/*.svg
var pieceAssets embed.FS

// renderScale oversamples glyphs before scaling them down to the square size.
const renderScale = 3

// pieceFiles maps piece types to their glyph templates.
var pieceFiles = map[board.PieceType]string{
	board.Pawn:   "assets/pawn.svg",
	board.Knight: "assets/knight.svg",
	board.Bishop: "assets/bishop.svg",
	board.Rook:   "assets/rook.svg",
	board.Queen:  "assets/queen.svg",
	board.King:   "assets/king.svg",
}

// pieceColors fills the {{fill}} and {{stroke}} placeholders of a template.
var pieceColors = [2]*strings.Replacer{
	board.White: strings.NewReplacer("{{fill}}", "#ffffff", "{{stroke}}", "#000000"),
	board.Black: strings.NewReplacer("{{fill}}", "#2b2b2b", "{{stroke}}", "#000000"),
}

type spriteSet struct {
	size   int
	pieces map[board.Piece]*image.RGBA
}

func newSpriteSet(size int) (*spriteSet, error) {
	ss := &spriteSet{size: size, pieces: make(map[board.Piece]*image.RGBA, 12)}
	for pt, path := range pieceFiles {
		data, err := pieceAssets.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("diagram: read %s: %w", path, err)
		}
		for _, c := range [2]board.Color{board.White, board.Black} {
			sprite, err := rasterize(pieceColors[c].Replace(string(data)), size)
			if err != nil {
				return nil, fmt.Errorf("diagram: %s: %w", path, err)
			}
			ss.pieces[board.NewPiece(pt, c)] = sprite
		}
	}
	return ss, nil
}

// rasterize renders svg at renderScale times size and scales it down.
func rasterize(svg string, size int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(svg))
	if err != nil {
		return nil, err
	}
	renderSize := size * renderScale
	icon.SetTarget(0, 0, float64(renderSize), float64(renderSize))

	big := image.NewRGBA(image.Rect(0, 0, renderSize, renderSize))
	scanner := rasterx.NewScannerGV(renderSize, renderSize, big, big.Bounds())
	raster := rasterx.NewDasher(renderSize, renderSize, scanner)
	icon.Draw(raster, 1.0)

	small := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(small, small.Bounds(), big, big.Bounds(), draw.Src, nil)
	return small, nil
}
