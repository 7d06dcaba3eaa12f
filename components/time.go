package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// TimeData is the singleton frame clock. Source is swappable so tests can
// drive deterministic deltas.
type TimeData struct {
	Source  func() time.Time
	Last    time.Time
	Started bool
	Delta   float64 // seconds since the previous update
}

var Time = donburi.NewComponentType[TimeData]()
