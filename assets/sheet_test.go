package assets

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestGridLayoutRectRowMajor(t *testing.T) {
	g := GridLayout{TileSize: 8, Rows: 2, Columns: 4}

	cases := []struct {
		index int
		want  image.Rectangle
	}{
		{0, image.Rect(0, 0, 8, 8)},
		{3, image.Rect(24, 0, 32, 8)},
		{4, image.Rect(0, 8, 8, 16)},
		{5, image.Rect(8, 8, 16, 16)},
		{7, image.Rect(24, 8, 32, 16)},
	}
	for _, c := range cases {
		if got := g.Rect(c.index); got != c.want {
			t.Errorf("Rect(%d) = %v, want %v", c.index, got, c.want)
		}
	}
}

func TestGridLayoutCount(t *testing.T) {
	g := GridLayout{TileSize: 8, Rows: 3, Columns: 4}
	if got := g.Count(); got != 12 {
		t.Errorf("Expected 12 tiles, got %d", got)
	}
}

func TestFramePendingTexture(t *testing.T) {
	sheet := NewSpriteSheet(&Texture{}, GridLayout{TileSize: 8, Rows: 1, Columns: 2})

	img, ok := sheet.Frame(0)
	if ok || img != nil {
		t.Error("Expected no frame while the texture is pending")
	}
}

func TestFrameFailedTexture(t *testing.T) {
	tex := &Texture{}
	tex.fail(errors.New("boom"))

	sheet := NewSpriteSheet(tex, GridLayout{TileSize: 8, Rows: 1, Columns: 2})
	if _, ok := sheet.Frame(0); ok {
		t.Error("Expected no frame from a failed texture")
	}
	if tex.Err() == nil {
		t.Error("Expected Err to report the failure")
	}
}

func TestFrameResolvedAndCached(t *testing.T) {
	tex := ResolvedTexture(ebiten.NewImage(32, 16))
	sheet := NewSpriteSheet(tex, GridLayout{TileSize: 8, Rows: 2, Columns: 4})

	frame, ok := sheet.Frame(5)
	if !ok || frame == nil {
		t.Fatal("Expected a frame from a resolved texture")
	}
	b := frame.Bounds()
	if b.Dx() != 8 || b.Dy() != 8 {
		t.Errorf("Expected 8x8 frame, got %dx%d", b.Dx(), b.Dy())
	}

	again, ok := sheet.Frame(5)
	if !ok || again != frame {
		t.Error("Expected the cached sub-image on repeat lookups")
	}
}

func waitForTexture(t *testing.T, tex *Texture) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		tex.mu.Lock()
		done := tex.done
		tex.mu.Unlock()
		if done {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("Texture did not finish loading in time")
}

func TestLoadTextureDecodesAsync(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	src.Set(1, 1, color.RGBA{255, 0, 0, 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("Failed to encode fixture: %v", err)
	}

	fsys := fstest.MapFS{
		"graphics/dot.png": &fstest.MapFile{Data: buf.Bytes()},
	}

	tex := LoadTexture(fsys, "graphics/dot.png")
	waitForTexture(t, tex)

	img, ok := tex.Image()
	if !ok || img == nil {
		t.Fatal("Expected resolved image")
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 4 {
		t.Errorf("Expected 4x4 image, got %dx%d", b.Dx(), b.Dy())
	}
	if err := tex.Err(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
}

func TestLoadTextureMissingFile(t *testing.T) {
	tex := LoadTexture(fstest.MapFS{}, "graphics/nope.png")
	waitForTexture(t, tex)

	if _, ok := tex.Image(); ok {
		t.Error("Expected no image for a missing file")
	}
	if tex.Err() == nil {
		t.Error("Expected Err to report the missing file")
	}
}

func TestLoadTextureUndecodableFile(t *testing.T) {
	fsys := fstest.MapFS{
		"graphics/bad.png": &fstest.MapFile{Data: []byte("not a png")},
	}
	tex := LoadTexture(fsys, "graphics/bad.png")
	waitForTexture(t, tex)

	if _, ok := tex.Image(); ok {
		t.Error("Expected no image for an undecodable file")
	}
	if tex.Err() == nil {
		t.Error("Expected Err to report the decode failure")
	}
}
