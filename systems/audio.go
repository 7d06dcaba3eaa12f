package systems

import (
	"bytes"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/tbeech/molehollow/archetypes"
	"github.com/tbeech/molehollow/assets"
	"github.com/tbeech/molehollow/components"
	cfg "github.com/tbeech/molehollow/config"
	"github.com/tbeech/molehollow/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// The audio context is process-wide and can only be created once.
var (
	globalAudioContext *audio.Context
	audioInitOnce      sync.Once
)

func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
}

// GetOrCreateAudio returns the singleton audio state, creating it with
// default volumes if needed. The playback device is attached separately by
// InitAudioContext, so headless callers stay in silent mode.
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			MusicVolume: cfg.Audio.DefaultMusicVol,
			SFXVolume:   cfg.Audio.DefaultSFXVol,
			PendingSFX:  make([]string, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}

// InitAudioContext attaches the process-wide audio context to the
// singleton. Safe to call on every scene change.
func InitAudioContext(e *ecs.ECS) {
	initGlobalAudio()
	GetOrCreateAudio(e).Context = globalAudioContext
}

// UpdateAudio drains queued sound requests, advances music fades, and
// retires finished sound effect entities.
func UpdateAudio(e *ecs.ECS) {
	ad := GetOrCreateAudio(e)
	sounds := GetOrCreateSounds(e)

	for _, name := range ad.PendingSFX {
		playSFX(e, ad, sounds, name)
	}
	ad.PendingSFX = ad.PendingSFX[:0]

	for _, name := range ad.PendingMusic {
		startMusic(e, ad, sounds, name)
	}
	ad.PendingMusic = ad.PendingMusic[:0]

	if ad.StopMusic {
		stopNowPlaying(e)
		ad.StopMusic = false
	}
	if ad.FadeMusic {
		beginMusicFade(e, ad)
		ad.FadeMusic = false
	}

	updateMusicFade(e)
	sweepPlayback(e)
}

// PlaySFX queues a one-shot sound effect for this frame's dispatch.
func PlaySFX(e *ecs.ECS, name string) {
	ad := GetOrCreateAudio(e)
	ad.PendingSFX = append(ad.PendingSFX, name)
}

// PlayMusic queues the named looping track, replacing whatever is playing
// when the queue is drained.
func PlayMusic(e *ecs.ECS, name string) {
	ad := GetOrCreateAudio(e)
	ad.PendingMusic = append(ad.PendingMusic, name)
}

// StopMusic stops the current track without starting another.
func StopMusic(e *ecs.ECS) {
	GetOrCreateAudio(e).StopMusic = true
}

// FadeOutMusic fades the current track to silence, then stops it.
func FadeOutMusic(e *ecs.ECS) {
	GetOrCreateAudio(e).FadeMusic = true
}

// PauseMusic pauses the current music playback.
func PauseMusic(e *ecs.ECS) {
	tags.NowPlaying.Each(e.World, func(entry *donburi.Entry) {
		md := components.Music.Get(entry)
		if md.Player != nil {
			md.Player.Pause()
		}
	})
}

// ResumeMusic resumes paused music playback.
func ResumeMusic(e *ecs.ECS) {
	tags.NowPlaying.Each(e.World, func(entry *donburi.Entry) {
		md := components.Music.Get(entry)
		if md.Player != nil {
			md.Player.Play()
		}
	})
}

// SetMusicVolume changes the music volume (0.0 - 1.0).
func SetMusicVolume(e *ecs.ECS, volume float64) {
	ad := GetOrCreateAudio(e)
	ad.MusicVolume = volume
	applyMusicVolume(e, ad)
}

// SetSFXVolume changes the sound effect volume (0.0 - 1.0).
func SetSFXVolume(e *ecs.ECS, volume float64) {
	GetOrCreateAudio(e).SFXVolume = volume
}

// SetMuted silences or restores all playback.
func SetMuted(e *ecs.ECS, muted bool) {
	ad := GetOrCreateAudio(e)
	ad.Muted = muted
	applyMusicVolume(e, ad)
}

// CurrentMusic reports the name of the playing track, if any.
func CurrentMusic(e *ecs.ECS) (string, bool) {
	entry, ok := tags.NowPlaying.First(e.World)
	if !ok {
		return "", false
	}
	return components.Music.Get(entry).Name, true
}

func effectiveMusicVolume(ad *components.AudioData) float64 {
	if ad.Muted {
		return 0
	}
	return ad.MusicVolume
}

func applyMusicVolume(e *ecs.ECS, ad *components.AudioData) {
	tags.NowPlaying.Each(e.World, func(entry *donburi.Entry) {
		md := components.Music.Get(entry)
		// A running fade owns the player volume until it finishes.
		if md.Player != nil && md.Fade == nil {
			md.Player.SetVolume(effectiveMusicVolume(ad))
		}
	})
}

func playSFX(e *ecs.ECS, ad *components.AudioData, sounds *components.SoundsData, name string) {
	f, ok := sounds.Get(name)
	if !ok {
		log.Printf("Warning: unknown sound %q, dropping playback", name)
		return
	}
	if ad.Muted || ad.SFXVolume <= 0 {
		return
	}

	var player *audio.Player
	if ad.Context != nil {
		pcm, ok := sounds.PCM(name)
		if !ok {
			decoded, err := assets.DecodePCM(ad.Context.SampleRate(), f.Ext, f.Data)
			if err != nil {
				log.Printf("Warning: sound %q: %v", name, err)
				return
			}
			sounds.SetPCM(name, decoded)
			pcm = decoded
		}
		p, err := ad.Context.NewPlayer(bytes.NewReader(pcm))
		if err != nil {
			log.Printf("Warning: sound %q: %v", name, err)
			return
		}
		p.SetVolume(ad.SFXVolume)
		p.Play()
		player = p
	}

	entry := archetypes.Playback.Spawn(e)
	components.Playback.SetValue(entry, components.PlaybackData{Name: name, Player: player})
}

func startMusic(e *ecs.ECS, ad *components.AudioData, sounds *components.SoundsData, name string) {
	f, ok := sounds.Get(name)
	if !ok {
		log.Printf("Warning: unknown music %q, nothing started", name)
		return
	}

	// Stopping first keeps at most one track alive.
	stopNowPlaying(e)

	var player *audio.Player
	if ad.Context != nil {
		p, err := assets.NewLoopPlayer(ad.Context, f.Ext, f.Data)
		if err != nil {
			log.Printf("Warning: music %q: %v", name, err)
			return
		}
		p.SetVolume(effectiveMusicVolume(ad))
		p.Play()
		player = p
	}

	entry := archetypes.Music.Spawn(e)
	components.Music.SetValue(entry, components.MusicData{Name: name, Player: player})
}

func stopNowPlaying(e *ecs.ECS) {
	var stopped []*donburi.Entry
	tags.NowPlaying.Each(e.World, func(entry *donburi.Entry) {
		md := components.Music.Get(entry)
		if md.Player != nil {
			_ = md.Player.Close()
		}
		stopped = append(stopped, entry)
	})
	for _, entry := range stopped {
		entry.Remove()
	}
}

func beginMusicFade(e *ecs.ECS, ad *components.AudioData) {
	tags.NowPlaying.Each(e.World, func(entry *donburi.Entry) {
		md := components.Music.Get(entry)
		if md.Fade == nil {
			md.Fade = gween.New(float32(effectiveMusicVolume(ad)), 0,
				float32(cfg.Audio.MusicFadeSeconds), ease.Linear)
		}
	})
}

func updateMusicFade(e *ecs.ECS) {
	dt := float32(Delta(e))
	var finished []*donburi.Entry
	tags.NowPlaying.Each(e.World, func(entry *donburi.Entry) {
		md := components.Music.Get(entry)
		if md.Fade == nil {
			return
		}
		v, done := md.Fade.Update(dt)
		if md.Player != nil {
			md.Player.SetVolume(float64(v))
		}
		if done {
			if md.Player != nil {
				_ = md.Player.Close()
			}
			finished = append(finished, entry)
		}
	})
	for _, entry := range finished {
		entry.Remove()
	}
}

func sweepPlayback(e *ecs.ECS) {
	var done []*donburi.Entry
	components.Playback.Each(e.World, func(entry *donburi.Entry) {
		pd := components.Playback.Get(entry)
		if pd.Player == nil || !pd.Player.IsPlaying() {
			done = append(done, entry)
		}
	})
	for _, entry := range done {
		entry.Remove()
	}
}
