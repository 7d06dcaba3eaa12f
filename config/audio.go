package config

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate       int
	DefaultMusicVol  float64
	DefaultSFXVol    float64
	MusicFadeSeconds float64 // duration of a requested music fade out
}

var Audio AudioConfig

func init() {
	Audio = AudioConfig{
		SampleRate:       44100,
		DefaultMusicVol:  0.75,
		DefaultSFXVol:    1.0,
		MusicFadeSeconds: 1.0,
	}
}
