package systems

import (
	"github.com/tbeech/molehollow/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTweens advances decorative tween sequences and applies the offset
// on top of each entity's rest height. Sequences restart when they finish.
func UpdateTweens(e *ecs.ECS) {
	dt := float32(Delta(e))
	components.Tween.Each(e.World, func(entry *donburi.Entry) {
		td := components.Tween.Get(entry)
		if td.Seq == nil || !entry.HasComponent(components.Transform) {
			return
		}
		offset, _, done := td.Seq.Update(dt)
		tr := components.Transform.Get(entry)
		tr.Position.Y = td.Base + float64(offset)
		if done {
			td.Seq.Reset()
		}
	})
}
