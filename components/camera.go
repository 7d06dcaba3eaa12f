package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the singleton camera state: the world position the view
// centers on and the depth window sprites must fall inside to be drawn.
type CameraData struct {
	Position math.Vec2
	Near     float64
	Far      float64
}

var Camera = donburi.NewComponentType[CameraData]()
