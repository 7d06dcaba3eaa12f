package scenes

import (
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	cfg "github.com/tbeech/molehollow/config"
	"github.com/tbeech/molehollow/ui"
)

// TitleScene displays the title menu. It owns no world of its own; the
// den and its music start once the showcase scene takes over.
type TitleScene struct {
	sceneChanger SceneChanger
	titleUI      *ui.TitleUI
	once         sync.Once
}

// NewTitleScene creates a new title scene
func NewTitleScene(sc SceneChanger) *TitleScene {
	return &TitleScene{sceneChanger: sc}
}

func (ts *TitleScene) Update() {
	ts.once.Do(ts.configure)
	ts.titleUI.Update()
}

func (ts *TitleScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Soil)

	if ts.titleUI == nil {
		return
	}
	ts.titleUI.UI.Draw(screen)
}

func (ts *TitleScene) configure() {
	ts.titleUI = ui.NewTitleUI(ui.TitleCallbacks{
		OnStart: func() {
			ts.sceneChanger.ChangeScene(NewShowcaseScene(ts.sceneChanger))
		},
		OnQuit: func() {
			os.Exit(0)
		},
	})
}
