package systems

import (
	"math"

	"github.com/tbeech/molehollow/components"
	"github.com/tbeech/molehollow/config"
	"github.com/tbeech/molehollow/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera snaps the camera onto the focus entity and recomputes the
// depth window sprites must fall inside to be drawn. With no focus entity
// present the camera holds its last position.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	focusEntry, ok := tags.CameraFocus.First(e.World)
	if !ok {
		return
	}
	if !focusEntry.HasComponent(components.Transform) {
		return
	}
	focus := components.Transform.Get(focusEntry)

	camera.Position = focus.Position
	camera.Near = math.Floor(focus.Depth - config.Camera.DepthRange)
	camera.Far = math.Ceil(focus.Depth)
}
