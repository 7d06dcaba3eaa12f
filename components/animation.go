package components

import (
	"github.com/tbeech/molehollow/assets/animations"
	"github.com/yohamta/donburi"
)

// AnimationData attaches playback state for one catalog animation to an
// entity. Name is the catalog key the instance was created from.
type AnimationData struct {
	Anim *animations.Animation
	Name string
}

var Animation = donburi.NewComponentType[AnimationData]()
