package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// TitleCallbacks are invoked by the title screen buttons.
type TitleCallbacks struct {
	OnStart func()
	OnQuit  func()
}

// TitleUI holds the ebitenui widgets for the title screen
type TitleUI struct {
	UI        *ebitenui.UI
	callbacks TitleCallbacks

	titleFace  text.Face
	normalFace text.Face
}

// NewTitleUI creates the title screen menu
func NewTitleUI(callbacks TitleCallbacks) *TitleUI {
	tui := &TitleUI{callbacks: callbacks}

	tui.loadFonts()
	tui.buildUI()

	return tui
}

func (tui *TitleUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	tui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   28,
	}
	tui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
}

func (tui *TitleUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	menu := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(10)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	menu.AddChild(widget.NewText(
		widget.TextOpts.Text("MOLEHOLLOW", &tui.titleFace, color.RGBA{255, 255, 255, 255}),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	))
	menu.AddChild(widget.NewText(
		widget.TextOpts.Text("a critter den demo", &tui.normalFace, color.RGBA{170, 170, 190, 255}),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	))

	menu.AddChild(tui.menuButton("Enter the den", func() {
		if tui.callbacks.OnStart != nil {
			tui.callbacks.OnStart()
		}
	}))
	menu.AddChild(tui.menuButton("Quit", func() {
		if tui.callbacks.OnQuit != nil {
			tui.callbacks.OnQuit()
		}
	}))

	rootContainer.AddChild(menu)

	tui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (tui *TitleUI) menuButton(label string, onClick func()) *widget.Button {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})

	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(160, 28),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     idle,
			Hover:    hover,
			Pressed:  pressed,
			Disabled: idle,
		}),
		widget.ButtonOpts.Text(label, &tui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// Update calls the UI's Update method
func (tui *TitleUI) Update() {
	tui.UI.Update()
}
