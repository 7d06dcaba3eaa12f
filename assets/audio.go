package assets

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// DecodePCM decodes an audio file into raw samples at the given sample
// rate. The format is chosen by extension; ogg vorbis and wav are
// supported.
func DecodePCM(sampleRate int, ext string, data []byte) ([]byte, error) {
	switch strings.ToLower(ext) {
	case ".ogg":
		stream, err := vorbis.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode ogg: %w", err)
		}
		return io.ReadAll(stream)

	case ".wav":
		stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode wav: %w", err)
		}
		return io.ReadAll(stream)
	}
	return nil, fmt.Errorf("unsupported audio format %q", ext)
}

// NewLoopPlayer builds an infinitely looping player for a music track.
// Music streams from its decoder instead of being cached as raw samples.
func NewLoopPlayer(ctx *audio.Context, ext string, data []byte) (*audio.Player, error) {
	switch strings.ToLower(ext) {
	case ".ogg":
		stream, err := vorbis.DecodeWithSampleRate(ctx.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode ogg: %w", err)
		}
		return ctx.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))

	case ".wav":
		stream, err := wav.DecodeWithSampleRate(ctx.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode wav: %w", err)
		}
		return ctx.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	}
	return nil, fmt.Errorf("unsupported audio format %q", ext)
}
