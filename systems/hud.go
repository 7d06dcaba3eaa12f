package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tbeech/molehollow/components"
	cfg "github.com/tbeech/molehollow/config"
	"github.com/tbeech/molehollow/fonts"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 10
	hudPadding    = 6
	hudLineHeight = 12
	hudPanelWidth = 180
)

// DrawHUD renders resource counters and playback status in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	sheets := GetOrCreateSpriteSheets(e)
	library := GetOrCreateAnimationLibrary(e)
	sounds := GetOrCreateSounds(e)

	lines := []string{
		fmt.Sprintf("FPS %.0f", ebiten.ActualFPS()),
		fmt.Sprintf("Sheets %d  Anims %d  Sounds %d", sheets.Len(), library.Len(), sounds.Len()),
	}

	if cameraEntry, ok := components.Camera.First(e.World); ok {
		camera := components.Camera.Get(cameraEntry)
		lines = append(lines, fmt.Sprintf("Cam %.1f,%.1f  depth %.0f..%.0f",
			camera.Position.X, camera.Position.Y, camera.Near, camera.Far))
	}

	if name, ok := CurrentMusic(e); ok {
		lines = append(lines, "Track "+name)
	} else {
		lines = append(lines, "Track -")
	}

	panelHeight := len(lines)*hudLineHeight + hudPadding*2
	vector.DrawFilledRect(screen,
		float32(hudMargin), float32(hudMargin),
		float32(hudPanelWidth), float32(panelHeight),
		cfg.BlackOverlay, false)

	fontFace := fonts.SansSmall.Get()
	y := hudMargin + hudPadding + hudLineHeight - 2
	for _, line := range lines {
		text.Draw(screen, line, fontFace, hudMargin+hudPadding, y, cfg.White)
		y += hudLineHeight
	}
}
