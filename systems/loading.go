package systems

import (
	"fmt"
	"io/fs"
	"log"
	"path"

	"github.com/tbeech/molehollow/assets"
	"github.com/tbeech/molehollow/assets/animations"
	"github.com/tbeech/molehollow/components"
	"github.com/tbeech/molehollow/config"
	"github.com/yohamta/donburi/ecs"
)

// LoadSpriteSheets parses the sheet configuration under dir and populates
// the sprite sheet registry and animation catalog singletons. Textures
// keep loading in the background; only the configuration read itself is
// synchronous. A configuration error is returned and must be treated as
// fatal, since the game cannot run without its sprite data.
func LoadSpriteSheets(e *ecs.ECS, fsys fs.FS, dir string) error {
	cfgs, err := config.ParseSheetConfig(fsys, path.Join(dir, assets.ConfigFile))
	if err != nil {
		return err
	}

	sheets := GetOrCreateSpriteSheets(e)
	library := GetOrCreateAnimationLibrary(e)

	for _, sc := range cfgs {
		name := config.TrimExtension(sc.File)
		tex := assets.LoadTexture(fsys, path.Join(dir, sc.File))
		sheets.Insert(name, assets.NewSpriteSheet(tex, assets.GridLayout{
			TileSize: sc.TileSize,
			Rows:     sc.Rows,
			Columns:  sc.Columns,
		}))
		log.Printf("Loaded sprite sheet %q: %vpx tiles, %d row(s), %d column(s)",
			name, sc.TileSize, sc.Rows, sc.Columns)

		for _, ac := range sc.Animations {
			policy, err := animations.ParsePolicy(ac.Policy)
			if err != nil {
				return fmt.Errorf("animation %q: %w", ac.Name, err)
			}
			def, err := animations.NewDefinition(name, ac.Start, ac.End, ac.FrameSeconds, policy)
			if err != nil {
				return fmt.Errorf("animation %q: %w", ac.Name, err)
			}
			library.Insert(ac.Name, def)
			log.Printf("Loaded animation %q: frames %d-%d on %q, policy %s",
				ac.Name, ac.Start, ac.End, name, policy)
		}
	}
	return nil
}

// LoadSounds parses the sound configuration under dir and stores each
// file's raw data in the sound registry singleton. Decoding happens on
// first playback, so no audio device is needed here.
func LoadSounds(e *ecs.ECS, fsys fs.FS, dir string) error {
	files, err := config.ParseSoundConfig(fsys, path.Join(dir, assets.ConfigFile))
	if err != nil {
		return err
	}

	sounds := GetOrCreateSounds(e)
	for _, file := range files {
		data, err := fs.ReadFile(fsys, path.Join(dir, file))
		if err != nil {
			return fmt.Errorf("read sound %s: %w", file, err)
		}
		name := config.TrimExtension(file)
		sounds.Insert(name, path.Ext(file), data)
		log.Printf("Loaded sound %q (%d bytes)", name, len(data))
	}
	return nil
}

// GetOrCreateSpriteSheets returns the singleton sheet registry.
func GetOrCreateSpriteSheets(e *ecs.ECS) *components.SpriteSheetsData {
	entry, ok := components.SpriteSheets.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.SpriteSheets))
	}
	return components.SpriteSheets.Get(entry)
}

// GetOrCreateAnimationLibrary returns the singleton animation catalog.
func GetOrCreateAnimationLibrary(e *ecs.ECS) *components.AnimationLibraryData {
	entry, ok := components.AnimationLibrary.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.AnimationLibrary))
	}
	return components.AnimationLibrary.Get(entry)
}

// GetOrCreateSounds returns the singleton sound registry.
func GetOrCreateSounds(e *ecs.ECS) *components.SoundsData {
	entry, ok := components.Sounds.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Sounds))
	}
	return components.Sounds.Get(entry)
}
