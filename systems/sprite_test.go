package systems

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tbeech/molehollow/archetypes"
	"github.com/tbeech/molehollow/assets"
	"github.com/tbeech/molehollow/components"
	"github.com/tbeech/molehollow/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// fixDisplayScale pins the monitor scale to 1 so bound sizes are exact.
func fixDisplayScale(t *testing.T) {
	t.Helper()
	prev := displayScale
	displayScale = func() float64 { return 1 }
	t.Cleanup(func() { displayScale = prev })
}

func insertTestSheet(e *ecs.ECS, name string) {
	sheets := GetOrCreateSpriteSheets(e)
	sheets.Insert(name, assets.NewSpriteSheet(
		assets.ResolvedTexture(ebiten.NewImage(32, 16)),
		assets.GridLayout{TileSize: 8, Rows: 2, Columns: 4},
	))
}

func spawnStatic(e *ecs.ECS, sheet string, index int) *donburi.Entry {
	entry := archetypes.StaticSprite.Spawn(e)
	components.SpriteMeta.SetValue(entry, components.SpriteMetaData{
		SheetName: sheet,
		Index:     index,
	})
	return entry
}

func TestUpdateSpritesBindsResolvedSheet(t *testing.T) {
	fixDisplayScale(t)
	e := newTestECS()
	insertTestSheet(e, "critter")
	entry := spawnStatic(e, "critter", 5)

	UpdateSprites(e)

	if !entry.HasComponent(tags.SpriteBound) {
		t.Fatal("Expected entity to be marked bound")
	}
	sprite := components.Sprite.Get(entry)
	if sprite.Frame == nil {
		t.Fatal("Expected a resolved frame")
	}
	bounds := sprite.Frame.Bounds()
	if bounds.Dx() != 8 || bounds.Dy() != 8 {
		t.Errorf("Expected 8x8 frame, got %dx%d", bounds.Dx(), bounds.Dy())
	}
	if sprite.Size != 2.0 {
		t.Errorf("Expected world size 2.0 at scale 1, got %v", sprite.Size)
	}
}

func TestUpdateSpritesSkipsBoundEntities(t *testing.T) {
	fixDisplayScale(t)
	e := newTestECS()
	insertTestSheet(e, "critter")
	entry := spawnStatic(e, "critter", 0)

	UpdateSprites(e)
	bound := components.Sprite.Get(entry).Frame

	// A stale index without a cleared marker must not rebind.
	components.SpriteMeta.Get(entry).Index = 3
	UpdateSprites(e)

	if components.Sprite.Get(entry).Frame != bound {
		t.Error("Expected bound frame to stay until the marker is cleared")
	}
}

func TestUpdateSpritesRebindsAfterMarkerCleared(t *testing.T) {
	fixDisplayScale(t)
	e := newTestECS()
	insertTestSheet(e, "critter")
	entry := spawnStatic(e, "critter", 0)

	UpdateSprites(e)
	first := components.Sprite.Get(entry).Frame

	components.SpriteMeta.Get(entry).Index = 3
	entry.RemoveComponent(tags.SpriteBound)
	UpdateSprites(e)

	sprite := components.Sprite.Get(entry)
	if sprite.Frame == first {
		t.Error("Expected a different frame after rebinding with a new index")
	}
	if !entry.HasComponent(tags.SpriteBound) {
		t.Error("Expected marker restored after rebinding")
	}
}

func TestUpdateSpritesUnknownSheetLeavesUnbound(t *testing.T) {
	fixDisplayScale(t)
	e := newTestECS()
	entry := spawnStatic(e, "ghost", 0)

	UpdateSprites(e)

	if entry.HasComponent(tags.SpriteBound) {
		t.Error("Expected entity with unknown sheet to stay unbound")
	}
	if components.Sprite.Get(entry).Frame != nil {
		t.Error("Expected no frame resolved for unknown sheet")
	}
}

func TestUpdateSpritesWaitsForPendingTexture(t *testing.T) {
	fixDisplayScale(t)
	e := newTestECS()
	sheets := GetOrCreateSpriteSheets(e)
	sheets.Insert("slow", assets.NewSpriteSheet(
		&assets.Texture{},
		assets.GridLayout{TileSize: 8, Rows: 2, Columns: 4},
	))
	entry := spawnStatic(e, "slow", 0)

	UpdateSprites(e)
	if entry.HasComponent(tags.SpriteBound) {
		t.Fatal("Expected entity to stay unbound while its texture loads")
	}

	// Once the registry resolves, the next pass binds.
	sheets.Insert("slow", assets.NewSpriteSheet(
		assets.ResolvedTexture(ebiten.NewImage(32, 16)),
		assets.GridLayout{TileSize: 8, Rows: 2, Columns: 4},
	))
	UpdateSprites(e)
	if !entry.HasComponent(tags.SpriteBound) {
		t.Error("Expected entity bound once the texture resolved")
	}
}

func TestUpdateSpritesRequiresTransform(t *testing.T) {
	fixDisplayScale(t)
	e := newTestECS()
	insertTestSheet(e, "critter")
	entry := e.World.Entry(e.World.Create(components.SpriteMeta))
	components.SpriteMeta.SetValue(entry, components.SpriteMetaData{
		SheetName: "critter",
	})

	UpdateSprites(e)

	if entry.HasComponent(tags.SpriteBound) {
		t.Error("Expected entity without a position to be skipped")
	}
}
