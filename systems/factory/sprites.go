package factory

import (
	"errors"
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/tbeech/molehollow/archetypes"
	"github.com/tbeech/molehollow/assets/animations"
	"github.com/tbeech/molehollow/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateStaticSprite spawns an entity showing one fixed tile of a sheet.
// The sprite is bound on the next update once the sheet texture resolves.
func CreateStaticSprite(e *ecs.ECS, sheetName string, index int, pos dmath.Vec2, depth float64) *donburi.Entry {
	entry := archetypes.StaticSprite.Spawn(e)
	components.SpriteMeta.SetValue(entry, components.SpriteMetaData{
		SheetName: sheetName,
		Index:     index,
	})
	components.Transform.SetValue(entry, components.TransformData{Position: pos, Depth: depth})
	return entry
}

// CreateAnimatedSprite spawns an entity playing the named catalog animation,
// starting on its first frame.
func CreateAnimatedSprite(e *ecs.ECS, name string, pos dmath.Vec2, depth float64) (*donburi.Entry, error) {
	libEntry, ok := components.AnimationLibrary.First(e.World)
	if !ok {
		return nil, errors.New("animation library not loaded")
	}
	def, ok := components.AnimationLibrary.Get(libEntry).Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown animation %q", name)
	}

	entry := archetypes.AnimatedSprite.Spawn(e)
	components.Animation.SetValue(entry, components.AnimationData{
		Anim: animations.NewAnimation(def),
		Name: name,
	})
	components.SpriteMeta.SetValue(entry, components.SpriteMetaData{
		SheetName: def.SheetName,
		Index:     def.Frames[0],
	})
	components.Transform.SetValue(entry, components.TransformData{Position: pos, Depth: depth})
	return entry, nil
}

// CreateFloater spawns a static tile that bobs vertically around its anchor.
// The bob runs out half a period, sweeps a full period to the other side,
// and returns, so the motion is smooth at both extremes.
func CreateFloater(e *ecs.ECS, sheetName string, index int, pos dmath.Vec2, depth, amplitude float64, period float32) *donburi.Entry {
	entry := archetypes.Floater.Spawn(e)
	components.SpriteMeta.SetValue(entry, components.SpriteMetaData{
		SheetName: sheetName,
		Index:     index,
	})
	components.Transform.SetValue(entry, components.TransformData{Position: pos, Depth: depth})

	amp := float32(amplitude)
	seq := gween.NewSequence(
		gween.New(0, amp, period/2, ease.InOutSine),
		gween.New(amp, -amp, period, ease.InOutSine),
		gween.New(-amp, 0, period/2, ease.InOutSine),
	)
	components.Tween.SetValue(entry, components.TweenData{Seq: seq, Base: pos.Y})
	return entry
}
