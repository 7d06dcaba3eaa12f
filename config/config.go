package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// GfxConfig contains sprite presentation configuration values
type GfxConfig struct {
	SpriteSize    float64 // world-unit edge length of a rendered sprite
	PixelsPerUnit float64 // orthographic scale: screen pixels per world unit
	CullPadding   float64 // extra pixels around the viewport before culling
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	DepthRange float64 // how far behind the focus depth the far plane sits
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Gfx GfxConfig
var Camera CameraConfig

// Default is the ecs layer all entities and renderers live on.
var Default = ecs.LayerDefault

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Soil         = color.RGBA{R: 52, G: 38, B: 30, A: 255}
	Moss         = color.RGBA{R: 92, G: 128, B: 72, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Active UI controls
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Idle UI controls
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "molehollow",
	}

	Gfx = GfxConfig{
		SpriteSize:    2.0,
		PixelsPerUnit: 8.0,
		CullPadding:   64.0,
	}

	Camera = CameraConfig{
		DepthRange: 20.0,
	}
}
