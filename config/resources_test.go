package config

import (
	"testing"
	"testing/fstest"
)

const sheetYAML = `sheets:
  - file: critter.png
    tile_size: 8
    rows: 2
    columns: 4
    animations:
      - name: critter_walk
        start: 0
        end: 3
        frame_seconds: 0.15
        policy: Repeat
      - name: critter_sleep
        start: 4
        end: 7
        frame_seconds: 0.3
        policy: Once
  - file: tiles.png
    tile_size: 16
    rows: 2
    columns: 2
`

func TestParseSheetConfig(t *testing.T) {
	fsys := fstest.MapFS{
		"graphics/config.yaml": &fstest.MapFile{Data: []byte(sheetYAML)},
	}

	sheets, err := ParseSheetConfig(fsys, "graphics/config.yaml")
	if err != nil {
		t.Fatalf("ParseSheetConfig failed: %v", err)
	}
	if len(sheets) != 2 {
		t.Fatalf("Expected 2 sheets, got %d", len(sheets))
	}

	critter := sheets[0]
	if critter.File != "critter.png" {
		t.Errorf("Expected file critter.png, got %q", critter.File)
	}
	if critter.TileSize != 8 || critter.Rows != 2 || critter.Columns != 4 {
		t.Errorf("Unexpected grid: %vpx %dx%d", critter.TileSize, critter.Rows, critter.Columns)
	}
	if len(critter.Animations) != 2 {
		t.Fatalf("Expected 2 animations, got %d", len(critter.Animations))
	}

	walk := critter.Animations[0]
	if walk.Name != "critter_walk" || walk.Start != 0 || walk.End != 3 {
		t.Errorf("Unexpected walk animation: %+v", walk)
	}
	if walk.FrameSeconds != 0.15 || walk.Policy != "Repeat" {
		t.Errorf("Unexpected walk timing/policy: %+v", walk)
	}

	// A sheet without animations is a plain tile source.
	if len(sheets[1].Animations) != 0 {
		t.Errorf("Expected no animations on tiles sheet, got %d", len(sheets[1].Animations))
	}
}

func TestParseSheetConfigMissingFile(t *testing.T) {
	fsys := fstest.MapFS{}
	if _, err := ParseSheetConfig(fsys, "graphics/config.yaml"); err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestParseSheetConfigMalformed(t *testing.T) {
	fsys := fstest.MapFS{
		"config.yaml": &fstest.MapFile{Data: []byte("sheets: [}{")},
	}
	if _, err := ParseSheetConfig(fsys, "config.yaml"); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}

func TestParseSoundConfig(t *testing.T) {
	fsys := fstest.MapFS{
		"sounds/config.yaml": &fstest.MapFile{Data: []byte("sounds:\n  - chime.wav\n  - theme.ogg\n")},
	}

	sounds, err := ParseSoundConfig(fsys, "sounds/config.yaml")
	if err != nil {
		t.Fatalf("ParseSoundConfig failed: %v", err)
	}
	if len(sounds) != 2 {
		t.Fatalf("Expected 2 sounds, got %d", len(sounds))
	}
	if sounds[0] != "chime.wav" || sounds[1] != "theme.ogg" {
		t.Errorf("Unexpected sound list: %v", sounds)
	}
}

func TestTrimExtension(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"critter.png", "critter"},
		{"theme.ogg", "theme"},
		{"noext", "noext"},
		{"dir/nested.wav", "dir/nested"},
		{"two.dots.png", "two.dots"},
	}
	for _, c := range cases {
		if got := TrimExtension(c.in); got != c.want {
			t.Errorf("TrimExtension(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
