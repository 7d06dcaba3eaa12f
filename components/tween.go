package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TweenData drives a decorative vertical bob: Seq yields an offset applied
// on top of the entity's rest height each frame.
type TweenData struct {
	Seq  *gween.Sequence
	Base float64
}

var Tween = donburi.NewComponentType[TweenData]()
