package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// SpriteMetaData is an entity's lightweight render intent: which sheet it
// displays and which tile of that sheet. The animation tick rewrites Index;
// the binding step turns the pair into a concrete SpriteData.
type SpriteMetaData struct {
	Index     int
	SheetName string
}

// SpriteData is the bound renderable: the resolved sheet tile plus the
// world-unit size it occupies on screen.
type SpriteData struct {
	Frame *ebiten.Image
	Size  float64
}

var SpriteMeta = donburi.NewComponentType[SpriteMetaData]()
var Sprite = donburi.NewComponentType[SpriteData]()
