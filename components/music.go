package components

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MusicData lives on the single NowPlaying entity. Fade is non-nil while a
// fade out is in progress.
type MusicData struct {
	Name   string
	Player *audio.Player
	Fade   *gween.Tween
}

var Music = donburi.NewComponentType[MusicData]()
