package components

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
)

// AudioData stores global audio state (singleton component). Game code
// queues requests here; UpdateAudio drains them once per frame. Context
// stays nil when no audio device is available, in which case dispatch
// degrades to silent bookkeeping.
type AudioData struct {
	Context     *audio.Context
	MusicVolume float64 // 0.0 - 1.0
	SFXVolume   float64 // 0.0 - 1.0
	Muted       bool

	PendingSFX   []string // sound names queued this frame
	PendingMusic []string // music names queued this frame, last wins
	StopMusic    bool
	FadeMusic    bool
}

var Audio = donburi.NewComponentType[AudioData]()
