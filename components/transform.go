package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// TransformData places an entity in the world. Depth orders drawing
// back-to-front and feeds the camera's near/far window.
type TransformData struct {
	Position math.Vec2
	Depth    float64
}

var Transform = donburi.NewComponentType[TransformData]()
