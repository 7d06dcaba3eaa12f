package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tbeech/molehollow/components"
	cfg "github.com/tbeech/molehollow/config"
	"github.com/tbeech/molehollow/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every sprite quad the renderer would draw, making
// binding state and depth window culling visible at a glance. Sprites
// outside the depth window are skipped exactly like the renderer skips
// them, so a vanishing outline means the window cut the entity.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateDebug(e).Enabled {
		return
	}

	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	ppu := cfg.Gfx.PixelsPerUnit
	halfW := float64(width) / 2
	halfH := float64(height) / 2

	components.Sprite.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Transform) {
			return
		}
		tr := components.Transform.Get(entry)
		if tr.Depth < camera.Near || tr.Depth > camera.Far {
			return
		}
		sprite := components.Sprite.Get(entry)
		if sprite.Frame == nil {
			return
		}

		sizePx := sprite.Size * ppu
		x := halfW + (tr.Position.X-camera.Position.X)*ppu - sizePx/2
		y := halfH - (tr.Position.Y-camera.Position.Y)*ppu - sizePx/2

		c := color.Color(cfg.Moss)
		if entry.HasComponent(tags.CameraFocus) {
			c = cfg.LightBlue
		}

		// Draw outline
		vector.FillRect(screen, float32(x), float32(y), float32(sizePx), 1, c, false)         // Top
		vector.FillRect(screen, float32(x), float32(y+sizePx-1), float32(sizePx), 1, c, false) // Bottom
		vector.FillRect(screen, float32(x), float32(y), 1, float32(sizePx), c, false)         // Left
		vector.FillRect(screen, float32(x+sizePx-1), float32(y), 1, float32(sizePx), c, false) // Right
	})
}

// GetOrCreateDebug returns the singleton overlay switch.
func GetOrCreateDebug(e *ecs.ECS) *components.DebugData {
	entry, ok := components.Debug.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Debug))
	}
	return components.Debug.Get(entry)
}

// ToggleDebug flips the overlay and reports the new state.
func ToggleDebug(e *ecs.ECS) bool {
	dd := GetOrCreateDebug(e)
	dd.Enabled = !dd.Enabled
	return dd.Enabled
}
