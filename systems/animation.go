package systems

import (
	"fmt"

	"github.com/tbeech/molehollow/assets/animations"
	"github.com/tbeech/molehollow/components"
	"github.com/tbeech/molehollow/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations advances every animation instance by this frame's
// delta, rewrites stale sprite indices, and applies completion policies.
// It must run before UpdateSprites so binding observes final indices.
func UpdateAnimations(e *ecs.ECS) {
	dt := Delta(e)

	// Archetype mutations are unsafe inside Each, so marker clears and
	// completions are collected and applied after the pass.
	var unbind []*donburi.Entry
	var detach []*donburi.Entry
	var despawn []*donburi.Entry

	components.Animation.Each(e.World, func(entry *donburi.Entry) {
		ad := components.Animation.Get(entry)
		if ad.Anim == nil {
			return
		}

		index := ad.Anim.Update(dt)

		if entry.HasComponent(components.SpriteMeta) {
			meta := components.SpriteMeta.Get(entry)
			if meta.Index != index {
				meta.Index = index
				if entry.HasComponent(tags.SpriteBound) {
					unbind = append(unbind, entry)
				}
			}
		}

		if ad.Anim.Completed() {
			switch ad.Anim.Definition().Policy {
			case animations.Once:
				detach = append(detach, entry)
			case animations.Despawn:
				despawn = append(despawn, entry)
			}
		}
	})

	for _, entry := range unbind {
		entry.RemoveComponent(tags.SpriteBound)
	}
	for _, entry := range detach {
		entry.RemoveComponent(components.Animation)
	}
	for _, entry := range despawn {
		entry.Remove()
	}
}

// SetAnimation switches an entity to the named catalog animation, restarting
// from its first frame. Switching to the animation already playing is a no-op,
// so callers can set state every frame without stuttering playback.
func SetAnimation(e *ecs.ECS, entry *donburi.Entry, name string) error {
	library := GetOrCreateAnimationLibrary(e)
	def, ok := library.Get(name)
	if !ok {
		return fmt.Errorf("unknown animation %q", name)
	}

	if entry.HasComponent(components.Animation) {
		ad := components.Animation.Get(entry)
		if ad.Name == name && ad.Anim != nil && !ad.Anim.Completed() {
			return nil
		}
		ad.Anim = animations.NewAnimation(def)
		ad.Name = name
	} else {
		// A finished Once animation detaches its component; reattach to replay.
		donburi.Add(entry, components.Animation, &components.AnimationData{
			Anim: animations.NewAnimation(def),
			Name: name,
		})
	}

	if entry.HasComponent(components.SpriteMeta) {
		meta := components.SpriteMeta.Get(entry)
		meta.SheetName = def.SheetName
		meta.Index = def.Frames[0]
	}
	if entry.HasComponent(tags.SpriteBound) {
		entry.RemoveComponent(tags.SpriteBound)
	}
	return nil
}
