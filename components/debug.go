package components

import "github.com/yohamta/donburi"

// DebugData is the singleton overlay switch. Off by default; the showcase
// panel flips it at runtime.
type DebugData struct {
	Enabled bool
}

var Debug = donburi.NewComponentType[DebugData]()
