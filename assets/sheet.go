package assets

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridLayout is a uniform grid over a sheet texture. Tile indices run
// row-major from the top-left cell.
type GridLayout struct {
	TileSize float64
	Rows     int
	Columns  int
}

// Rect returns the pixel rectangle of the given tile index.
func (g GridLayout) Rect(index int) image.Rectangle {
	col := index % g.Columns
	row := index / g.Columns
	x := int(float64(col) * g.TileSize)
	y := int(float64(row) * g.TileSize)
	return image.Rect(x, y, x+int(g.TileSize), y+int(g.TileSize))
}

// Count returns the number of tiles in the grid.
func (g GridLayout) Count() int {
	return g.Rows * g.Columns
}

// SpriteSheet pairs a texture handle with its grid layout. Immutable after
// construction; the sheet registry is the single owner.
type SpriteSheet struct {
	Texture *Texture
	Layout  GridLayout

	frames map[int]*ebiten.Image // one sub-image per tile, reused by every bind
}

func NewSpriteSheet(tex *Texture, layout GridLayout) *SpriteSheet {
	return &SpriteSheet{
		Texture: tex,
		Layout:  layout,
		frames:  make(map[int]*ebiten.Image),
	}
}

// Frame returns the cached sub-image for one tile. The second return is
// false while the underlying texture is still loading.
func (s *SpriteSheet) Frame(index int) (*ebiten.Image, bool) {
	if img, ok := s.frames[index]; ok {
		return img, true
	}
	sheet, ok := s.Texture.Image()
	if !ok {
		return nil, false
	}
	frame := sheet.SubImage(s.Layout.Rect(index)).(*ebiten.Image)
	s.frames[index] = frame
	return frame, true
}
