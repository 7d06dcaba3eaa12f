package components

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
)

// PlaybackData is a fire-and-forget sound effect in flight. Its entity is
// removed as soon as the player stops.
type PlaybackData struct {
	Name   string
	Player *audio.Player
}

var Playback = donburi.NewComponentType[PlaybackData]()
