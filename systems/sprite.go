package systems

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tbeech/molehollow/components"
	"github.com/tbeech/molehollow/config"
	"github.com/tbeech/molehollow/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// displayScale reports the monitor scale factor; swapped out in tests.
var displayScale = func() float64 {
	return ebiten.Monitor().DeviceScaleFactor()
}

// UpdateSprites is the binding step: it reconciles entities whose sprite
// intent changed, or was never bound, against the sheet registry and
// refreshes the renderable the draw pass consumes. Bound entities are
// skipped until the animation tick clears their marker, which makes the
// step idempotent.
func UpdateSprites(e *ecs.ECS) {
	sheets := GetOrCreateSpriteSheets(e)
	size := config.Gfx.SpriteSize * displayScale()

	var unbound []*donburi.Entry
	components.SpriteMeta.Each(e.World, func(entry *donburi.Entry) {
		if entry.HasComponent(components.Transform) && !entry.HasComponent(tags.SpriteBound) {
			unbound = append(unbound, entry)
		}
	})

	for _, entry := range unbound {
		meta := components.SpriteMeta.Get(entry)

		sheet, ok := sheets.Get(meta.SheetName)
		if !ok {
			log.Printf("Warning: unknown sprite sheet %q, entity left unbound", meta.SheetName)
			continue
		}

		frame, ok := sheet.Frame(meta.Index)
		if !ok {
			// Texture still loading; bind on a later frame.
			continue
		}

		if entry.HasComponent(components.Sprite) {
			sprite := components.Sprite.Get(entry)
			sprite.Frame = frame
			sprite.Size = size
		} else {
			donburi.Add(entry, components.Sprite, &components.SpriteData{
				Frame: frame,
				Size:  size,
			})
		}
		entry.AddComponent(tags.SpriteBound)
	}
}
