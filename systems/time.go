package systems

import (
	"time"

	"github.com/tbeech/molehollow/components"
	"github.com/yohamta/donburi/ecs"
)

// MaxDelta caps the per-frame delta so a stalled process does not dump one
// huge step into animations when it resumes.
const MaxDelta = 0.25

// UpdateTime advances the frame clock singleton. It runs before every
// other system so they all observe the same delta.
func UpdateTime(e *ecs.ECS) {
	td := GetOrCreateTime(e)
	now := td.Source()
	if !td.Started {
		td.Last = now
		td.Started = true
		td.Delta = 0
		return
	}
	dt := now.Sub(td.Last).Seconds()
	if dt < 0 {
		dt = 0
	}
	if dt > MaxDelta {
		dt = MaxDelta
	}
	td.Delta = dt
	td.Last = now
}

// Delta returns the seconds covered by the current frame.
func Delta(e *ecs.ECS) float64 {
	return GetOrCreateTime(e).Delta
}

// GetOrCreateTime returns the singleton clock, creating it against the
// wall clock if needed.
func GetOrCreateTime(e *ecs.ECS) *components.TimeData {
	entry, ok := components.Time.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Time))
		components.Time.SetValue(entry, components.TimeData{
			Source: time.Now,
		})
	}
	return components.Time.Get(entry)
}
