package archetypes

import (
	"github.com/tbeech/molehollow/components"
	cfg "github.com/tbeech/molehollow/config"
	"github.com/tbeech/molehollow/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Camera = newArchetype(
		components.Camera,
	)
	// StaticSprite shows a fixed sheet tile; game code sets SpriteMeta
	// directly when it wants a different one.
	StaticSprite = newArchetype(
		components.SpriteMeta,
		components.Transform,
		components.Sprite,
	)
	AnimatedSprite = newArchetype(
		components.SpriteMeta,
		components.Transform,
		components.Sprite,
		components.Animation,
	)
	// Floater is a static sprite bobbing on a tween sequence.
	Floater = newArchetype(
		components.SpriteMeta,
		components.Transform,
		components.Sprite,
		components.Tween,
	)
	Music = newArchetype(
		tags.NowPlaying,
		components.Music,
	)
	Playback = newArchetype(
		components.Playback,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
