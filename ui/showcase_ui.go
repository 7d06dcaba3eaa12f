package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tbeech/molehollow/systems"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/gofont/goregular"
)

// ShowcaseCallbacks are invoked by the control panel to mutate the scene.
type ShowcaseCallbacks struct {
	OnSetAnimation func(name string)
	OnSprout       func()
	OnBurst        func()
}

// ShowcaseUI holds the ebitenui control panel for the showcase scene
type ShowcaseUI struct {
	UI        *ebitenui.UI
	ecs       *ecs.ECS
	callbacks ShowcaseCallbacks

	// Widget references for updates
	musicValueLabel *widget.Label
	sfxValueLabel   *widget.Label
	muteButton      *widget.Button

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	// Initialization tracking
	initialized bool
}

// NewShowcaseUI creates the control panel for the showcase scene
func NewShowcaseUI(e *ecs.ECS, callbacks ShowcaseCallbacks) *ShowcaseUI {
	sui := &ShowcaseUI{
		ecs:       e,
		callbacks: callbacks,
	}

	sui.loadFonts()
	sui.buildUI()

	return sui
}

func (sui *ShowcaseUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	// Store as text.Face interface for ebitenui compatibility
	sui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
	sui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   11,
	}
	sui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
}

func (sui *ShowcaseUI) buildUI() {
	// Root container with AnchorLayout so the panel hugs the right edge
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 230})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(6)),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("MOLEHOLLOW", &sui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	panel.AddChild(titleLabel)

	panel.AddChild(sui.buildAnimationSection())
	panel.AddChild(sui.buildSoundSection())
	panel.AddChild(sui.buildMusicSection())
	panel.AddChild(sui.buildVolumeSection())

	rootContainer.AddChild(panel)

	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
	// Note: Don't call UpdateUI() here - widgets aren't validated yet
}

func (sui *ShowcaseUI) buildAnimationSection() *widget.Container {
	container := sui.sectionContainer("ANIMATIONS")

	row := sui.buttonRow()
	row.AddChild(sui.actionButton("Walk", func() {
		if sui.callbacks.OnSetAnimation != nil {
			sui.callbacks.OnSetAnimation("critter_walk")
		}
	}))
	row.AddChild(sui.actionButton("Sleep", func() {
		if sui.callbacks.OnSetAnimation != nil {
			sui.callbacks.OnSetAnimation("critter_sleep")
		}
	}))
	container.AddChild(row)

	row2 := sui.buttonRow()
	row2.AddChild(sui.actionButton("Sprout", func() {
		if sui.callbacks.OnSprout != nil {
			sui.callbacks.OnSprout()
		}
	}))
	row2.AddChild(sui.actionButton("Burst", func() {
		if sui.callbacks.OnBurst != nil {
			sui.callbacks.OnBurst()
		}
	}))
	container.AddChild(row2)

	return container
}

func (sui *ShowcaseUI) buildSoundSection() *widget.Container {
	container := sui.sectionContainer("SOUND")

	row := sui.buttonRow()
	for _, name := range []string{"chime", "thump", "rustle"} {
		sound := name // Capture for closure
		row.AddChild(sui.actionButton(name, func() {
			systems.PlaySFX(sui.ecs, sound)
		}))
	}
	container.AddChild(row)

	return container
}

func (sui *ShowcaseUI) buildMusicSection() *widget.Container {
	container := sui.sectionContainer("MUSIC")

	row := sui.buttonRow()
	row.AddChild(sui.actionButton("Play", func() {
		systems.PlayMusic(sui.ecs, "burrow_theme")
	}))
	row.AddChild(sui.actionButton("Stop", func() {
		systems.StopMusic(sui.ecs)
	}))
	row.AddChild(sui.actionButton("Fade", func() {
		systems.FadeOutMusic(sui.ecs)
	}))
	container.AddChild(row)

	return container
}

func (sui *ShowcaseUI) buildVolumeSection() *widget.Container {
	container := sui.sectionContainer("VOLUME")

	musicRow, musicValue := sui.volumeRow("Music",
		func() { sui.adjustMusicVolume(-0.1) },
		func() { sui.adjustMusicVolume(0.1) },
	)
	sui.musicValueLabel = musicValue
	container.AddChild(musicRow)

	sfxRow, sfxValue := sui.volumeRow("SFX",
		func() { sui.adjustSFXVolume(-0.1) },
		func() { sui.adjustSFXVolume(0.1) },
	)
	sui.sfxValueLabel = sfxValue
	container.AddChild(sfxRow)

	row := sui.buttonRow()
	sui.muteButton = sui.actionButton("Mute", func() {
		ad := systems.GetOrCreateAudio(sui.ecs)
		systems.SetMuted(sui.ecs, !ad.Muted)
		systems.SaveCurrentSettings(sui.ecs)
		sui.UpdateUI()
	})
	row.AddChild(sui.muteButton)
	row.AddChild(sui.actionButton("Debug", func() {
		systems.ToggleDebug(sui.ecs)
	}))
	container.AddChild(row)

	return container
}

// volumeRow builds "<label> [-] <value> [+]" and returns the value label.
func (sui *ShowcaseUI) volumeRow(label string, onDown, onUp func()) (*widget.Container, *widget.Label) {
	row := sui.buttonRow()

	nameLabel := widget.NewLabel(
		widget.LabelOpts.Text(label, &sui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	row.AddChild(nameLabel)
	row.AddChild(sui.actionButton("-", onDown))

	valueLabel := widget.NewLabel(
		widget.LabelOpts.Text("", &sui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 100, 255},
		}),
	)
	row.AddChild(valueLabel)
	row.AddChild(sui.actionButton("+", onUp))

	return row, valueLabel
}

func (sui *ShowcaseUI) adjustMusicVolume(delta float64) {
	ad := systems.GetOrCreateAudio(sui.ecs)
	systems.SetMusicVolume(sui.ecs, clampVolume(ad.MusicVolume+delta))
	systems.SaveCurrentSettings(sui.ecs)
	sui.UpdateUI()
}

func (sui *ShowcaseUI) adjustSFXVolume(delta float64) {
	ad := systems.GetOrCreateAudio(sui.ecs)
	systems.SetSFXVolume(sui.ecs, clampVolume(ad.SFXVolume+delta))
	systems.SaveCurrentSettings(sui.ecs)
	sui.UpdateUI()
}

func clampVolume(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func (sui *ShowcaseUI) sectionContainer(title string) *widget.Container {
	padding := widget.Insets{Top: 3, Bottom: 3, Left: 4, Right: 4}
	container := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 40, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(3),
		)),
	)

	sectionTitle := widget.NewLabel(
		widget.LabelOpts.Text(title, &sui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 255, 255},
		}),
	)
	container.AddChild(sectionTitle)

	return container
}

func (sui *ShowcaseUI) buttonRow() *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)
}

func (sui *ShowcaseUI) actionButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(46, 20)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text(label, &sui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (sui *ShowcaseUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// UpdateUI updates all UI elements to reflect current audio state
func (sui *ShowcaseUI) UpdateUI() {
	ad := systems.GetOrCreateAudio(sui.ecs)

	if sui.musicValueLabel != nil {
		sui.musicValueLabel.Label = fmt.Sprintf("%d%%", int(ad.MusicVolume*100+0.5))
	}
	if sui.sfxValueLabel != nil {
		sui.sfxValueLabel.Label = fmt.Sprintf("%d%%", int(ad.SFXVolume*100+0.5))
	}
	if sui.muteButton != nil {
		if textWidget := sui.muteButton.Text(); textWidget != nil {
			if ad.Muted {
				textWidget.Label = "Unmute"
			} else {
				textWidget.Label = "Mute"
			}
		}
	}
}

// Update calls the UI's Update method
func (sui *ShowcaseUI) Update() {
	sui.UI.Update()
	// Update UI state on first frame after widgets are validated
	if !sui.initialized {
		sui.initialized = true
		sui.UpdateUI()
	}
}
