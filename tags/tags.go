package tags

import "github.com/yohamta/donburi"

var (
	// SpriteBound marks an entity whose renderable matches its current
	// SpriteMeta. Cleared whenever the displayed index or sheet changes,
	// which forces the binding step to refresh it.
	SpriteBound = donburi.NewTag().SetName("SpriteBound")

	// CameraFocus marks the entity the camera follows.
	CameraFocus = donburi.NewTag().SetName("CameraFocus")

	// NowPlaying marks the looping music entity. Dispatch keeps at most
	// one of these alive.
	NowPlaying = donburi.NewTag().SetName("NowPlaying")
)
