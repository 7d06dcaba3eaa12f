package scenes

import (
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tbeech/molehollow/assets"
	cfg "github.com/tbeech/molehollow/config"
	"github.com/tbeech/molehollow/systems"
	"github.com/tbeech/molehollow/systems/factory"
	"github.com/tbeech/molehollow/tags"
	"github.com/tbeech/molehollow/ui"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Depth layers of the den. The camera focuses the critter, so everything
// at or below critterDepth falls inside the visible depth window.
const (
	groundDepth  = 0.0
	floraDepth   = 5.0
	critterDepth = 10.0
)

// ShowcaseScene hosts the critter den: a small world rendered from the
// sheet registry with interactive animation and sound controls.
type ShowcaseScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	showcaseUI   *ui.ShowcaseUI
	critter      *donburi.Entry
	sproutSlot   int
	once         sync.Once
}

// NewShowcaseScene creates a new showcase scene
func NewShowcaseScene(sc SceneChanger) *ShowcaseScene {
	return &ShowcaseScene{sceneChanger: sc}
}

func (ss *ShowcaseScene) Update() {
	ss.once.Do(ss.configure)
	ss.ecs.Update()

	// Update ebitenui
	ss.showcaseUI.Update()
}

func (ss *ShowcaseScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Soil)

	if ss.ecs == nil {
		return
	}
	ss.ecs.Draw(screen)

	// Draw ebitenui on top
	ss.showcaseUI.UI.Draw(screen)
}

func (ss *ShowcaseScene) configure() {
	ss.ecs = ecs.NewECS(donburi.NewWorld())

	systems.InitAudioContext(ss.ecs)

	// Resource configs are authoritative; a broken one is fatal.
	if err := systems.LoadSpriteSheets(ss.ecs, assets.FS, assets.GraphicsDir); err != nil {
		panic("failed to load sprite sheets: " + err.Error())
	}
	if err := systems.LoadSounds(ss.ecs, assets.FS, assets.SoundsDir); err != nil {
		panic("failed to load sounds: " + err.Error())
	}

	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(ss.ecs, saved)
	}

	// Animations advance before binding so binding observes final indices.
	ss.ecs.AddSystem(systems.UpdateTime)
	ss.ecs.AddSystem(systems.UpdateAnimations)
	ss.ecs.AddSystem(systems.UpdateSprites)
	ss.ecs.AddSystem(systems.UpdateTweens)
	ss.ecs.AddSystem(systems.UpdateCamera)
	ss.ecs.AddSystem(systems.UpdateAudio)

	ss.ecs.AddRenderer(cfg.Default, systems.DrawSprites)
	ss.ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ss.ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	factory.CreateCamera(ss.ecs)
	ss.buildDen()

	ss.showcaseUI = ui.NewShowcaseUI(ss.ecs, ui.ShowcaseCallbacks{
		OnSetAnimation: ss.setCritterAnimation,
		OnSprout:       ss.spawnSprout,
		OnBurst:        ss.spawnBurst,
	})

	systems.PlayMusic(ss.ecs, "burrow_theme")
}

// buildDen lays out the ground, the focused critter, and some flora.
func (ss *ShowcaseScene) buildDen() {
	for i := -10; i <= 10; i++ {
		x := float64(i) * cfg.Gfx.SpriteSize
		tile := (i + 10) % 2
		factory.CreateStaticSprite(ss.ecs, "tiles", tile, dmath.Vec2{X: x, Y: -3}, groundDepth)
		factory.CreateStaticSprite(ss.ecs, "tiles", 2+tile, dmath.Vec2{X: x, Y: -5}, groundDepth)
	}

	critter, err := factory.CreateAnimatedSprite(ss.ecs, "critter_walk", dmath.Vec2{X: 3, Y: 1}, critterDepth)
	if err != nil {
		panic("failed to spawn critter: " + err.Error())
	}
	critter.AddComponent(tags.CameraFocus)
	ss.critter = critter

	factory.CreateFloater(ss.ecs, "flora", 5, dmath.Vec2{X: -5, Y: 2}, floraDepth, 0.4, 3)
	factory.CreateStaticSprite(ss.ecs, "flora", 4, dmath.Vec2{X: 7, Y: -1}, floraDepth)
}

func (ss *ShowcaseScene) setCritterAnimation(name string) {
	if ss.critter == nil || !ss.critter.Valid() {
		return
	}
	if err := systems.SetAnimation(ss.ecs, ss.critter, name); err != nil {
		log.Printf("Warning: %v", err)
	}
}

// spawnSprout grows a flower in one of five slots along the den floor.
func (ss *ShowcaseScene) spawnSprout() {
	x := float64(ss.sproutSlot%5)*2 - 4
	ss.sproutSlot++
	if _, err := factory.CreateAnimatedSprite(ss.ecs, "sprout_grow", dmath.Vec2{X: x, Y: -1}, floraDepth); err != nil {
		log.Printf("Warning: %v", err)
		return
	}
	systems.PlaySFX(ss.ecs, "rustle")
}

// spawnBurst pops a one-shot puff above the critter that despawns itself.
func (ss *ShowcaseScene) spawnBurst() {
	if _, err := factory.CreateAnimatedSprite(ss.ecs, "burst_pop", dmath.Vec2{X: 3, Y: 2.5}, critterDepth); err != nil {
		log.Printf("Warning: %v", err)
		return
	}
	systems.PlaySFX(ss.ecs, "thump")
}
