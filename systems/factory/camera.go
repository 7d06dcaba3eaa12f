package factory

import (
	"github.com/tbeech/molehollow/archetypes"
	"github.com/tbeech/molehollow/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns the camera singleton. The depth window starts wide
// open and narrows once a focus target exists.
func CreateCamera(e *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(e)
	components.Camera.SetValue(camera, components.CameraData{
		Near: -1000,
		Far:  1000,
	})
	return camera
}
