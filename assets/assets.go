package assets

import "embed"

// FS holds the demo client's embedded assets. Library code never touches
// it directly; loaders take any fs.FS so tests can substitute fixtures.
//
//go:embed all:graphics all:sounds
var FS embed.FS

// Asset directory conventions, relative to the fs.FS handed to a loader.
const (
	GraphicsDir = "graphics"
	SoundsDir   = "sounds"
	ConfigFile  = "config.yaml"
)
