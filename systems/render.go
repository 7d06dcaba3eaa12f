package systems

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tbeech/molehollow/components"
	cfg "github.com/tbeech/molehollow/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// Viewport culling skips the matrix setup and draw calls for entities that
// are currently off-screen. A small padding prevents sprites from popping
// in and out at the edges.

type spriteDraw struct {
	entry    *donburi.Entry
	screenX  float64
	screenY  float64
	depth    float64
}

// DrawSprites renders every bound sprite relative to the camera. World
// positions are in tile units with Y up; the screen is pixels with Y down.
func DrawSprites(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	ppu := cfg.Gfx.PixelsPerUnit
	padding := cfg.Gfx.CullPadding
	halfW := float64(width) / 2
	halfH := float64(height) / 2

	var draws []spriteDraw
	components.Sprite.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Transform) {
			return
		}
		tr := components.Transform.Get(entry)

		// Depth window culling
		if tr.Depth < camera.Near || tr.Depth > camera.Far {
			return
		}

		sprite := components.Sprite.Get(entry)
		if sprite.Frame == nil {
			return
		}

		sx := halfW + (tr.Position.X-camera.Position.X)*ppu
		sy := halfH - (tr.Position.Y-camera.Position.Y)*ppu

		// Viewport culling
		half := sprite.Size * ppu / 2
		if sx+half < -padding || sx-half > float64(width)+padding ||
			sy+half < -padding || sy-half > float64(height)+padding {
			return
		}

		draws = append(draws, spriteDraw{entry: entry, screenX: sx, screenY: sy, depth: tr.Depth})
	})

	// Lower depth is farther from the camera and draws first.
	sort.SliceStable(draws, func(i, j int) bool {
		return draws[i].depth < draws[j].depth
	})

	for _, d := range draws {
		sprite := components.Sprite.Get(d.entry)
		frame := sprite.Frame
		fw := float64(frame.Bounds().Dx())
		fh := float64(frame.Bounds().Dy())
		if fw == 0 || fh == 0 {
			continue
		}

		sizePx := sprite.Size * ppu

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()

		// Anchor at the center of the frame, then scale to on-screen size.
		drawOp.GeoM.Translate(-fw/2, -fh/2)
		drawOp.GeoM.Scale(sizePx/fw, sizePx/fh)
		drawOp.GeoM.Translate(d.screenX, d.screenY)

		screen.DrawImage(frame, drawOp)
	}
}
