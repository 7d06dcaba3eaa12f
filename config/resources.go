package config

import (
	"fmt"
	"io/fs"
	"path"

	"gopkg.in/yaml.v3"
)

// SheetConfig describes one sprite sheet: the image file it comes from, its
// uniform grid, and the animations cut from that grid.
type SheetConfig struct {
	File       string            `yaml:"file"`
	TileSize   float64           `yaml:"tile_size"`
	Rows       int               `yaml:"rows"`
	Columns    int               `yaml:"columns"`
	Animations []AnimationConfig `yaml:"animations"`
}

// AnimationConfig describes one animation as a closed frame range over its
// sheet. Start and End are both inclusive.
type AnimationConfig struct {
	Name         string  `yaml:"name"`
	Start        int     `yaml:"start"`
	End          int     `yaml:"end"`
	FrameSeconds float64 `yaml:"frame_seconds"`
	Policy       string  `yaml:"policy"`
}

type sheetsFile struct {
	Sheets []SheetConfig `yaml:"sheets"`
}

type soundsFile struct {
	Sounds []string `yaml:"sounds"`
}

// ParseSheetConfig reads and decodes the sprite sheet configuration file.
// Any read or decode failure is returned to the caller; sprite data is
// mandatory, so callers treat it as fatal.
func ParseSheetConfig(fsys fs.FS, name string) ([]SheetConfig, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read sheet config %s: %w", name, err)
	}
	var f sheetsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse sheet config %s: %w", name, err)
	}
	return f.Sheets, nil
}

// ParseSoundConfig reads and decodes the sound configuration file, an
// ordered list of sound file names.
func ParseSoundConfig(fsys fs.FS, name string) ([]string, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read sound config %s: %w", name, err)
	}
	var f soundsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse sound config %s: %w", name, err)
	}
	return f.Sounds, nil
}

// TrimExtension derives the logical resource name from a file name by
// stripping the final extension: "critter.png" -> "critter".
func TrimExtension(name string) string {
	return name[:len(name)-len(path.Ext(name))]
}
