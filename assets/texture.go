package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// Texture is a handle to an image that loads in the background. It is
// either pending or resolved; callers poll Image and never block on it.
type Texture struct {
	mu   sync.Mutex
	src  image.Image
	img  *ebiten.Image
	err  error
	done bool
}

// LoadTexture starts reading and decoding path from fsys in a goroutine
// and returns the handle immediately.
func LoadTexture(fsys fs.FS, path string) *Texture {
	t := &Texture{}
	go func() {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			t.fail(fmt.Errorf("read texture %s: %w", path, err))
			return
		}
		src, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			t.fail(fmt.Errorf("decode texture %s: %w", path, err))
			return
		}
		t.resolve(src)
	}()
	return t
}

// ResolvedTexture wraps an already loaded image, mainly for generated
// images and tests.
func ResolvedTexture(img *ebiten.Image) *Texture {
	return &Texture{img: img, done: true}
}

func (t *Texture) resolve(src image.Image) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.src = src
	t.done = true
}

func (t *Texture) fail(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.err = err
	t.done = true
	log.Printf("Warning: %v", err)
}

// Image returns the GPU image once the texture has resolved. The second
// return is false while the load is still in flight or after a failure.
// The ebiten image is materialized on first use so that decoding can
// happen off the game thread.
func (t *Texture) Image() (*ebiten.Image, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.done || t.err != nil {
		return nil, false
	}
	if t.img == nil {
		t.img = ebiten.NewImageFromImage(t.src)
		t.src = nil
	}
	return t.img, true
}

// Err reports a load failure, if any.
func (t *Texture) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}
