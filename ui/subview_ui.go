package ui

import (
	"bytes"
	"fmt"

	cfg "github.com/automoto/titlemenu/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// SubViewUI is the panel shown in place of the main menu
type SubViewUI struct {
	UI *ebitenui.UI

	titleLabel *widget.Label
	hintLabel  *widget.Label

	titleFace text.Face
	textFace  text.Face
}

// NewSubViewUI builds the sub-view panel
func NewSubViewUI() (*SubViewUI, error) {
	sv := &SubViewUI{}
	if err := sv.loadFonts(); err != nil {
		return nil, err
	}
	sv.buildUI()
	return sv, nil
}

func (sv *SubViewUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load sub-view font: %w", err)
	}

	sv.titleFace = &text.GoTextFace{Source: fontSource, Size: cfg.SubView.TitleFontSize}
	sv.textFace = &text.GoTextFace{Source: fontSource, Size: cfg.SubView.TextFontSize}
	return nil
}

func (sv *SubViewUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.SubView.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.SubView.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(cfg.SubView.Padding)),
			widget.RowLayoutOpts.Spacing(cfg.SubView.Spacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	sv.titleLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &sv.titleFace, &widget.LabelColor{
			Idle: cfg.SubView.TitleColor,
		}),
	)
	panel.AddChild(sv.titleLabel)

	sv.hintLabel = widget.NewLabel(
		widget.LabelOpts.Text(cfg.SubView.ReturnHint, &sv.textFace, &widget.LabelColor{
			Idle: cfg.SubView.TextColor,
		}),
	)
	panel.AddChild(sv.hintLabel)

	rootContainer.AddChild(panel)

	sv.UI = &ebitenui.UI{Container: rootContainer}
}

// SetTitle changes the heading shown at the top of the panel
func (sv *SubViewUI) SetTitle(title string) {
	sv.titleLabel.Label = title
}

// Title returns the heading currently shown
func (sv *SubViewUI) Title() string {
	return sv.titleLabel.Label
}

func (sv *SubViewUI) Update() {
	sv.UI.Update()
}

func (sv *SubViewUI) Draw(screen *ebiten.Image) {
	sv.UI.Draw(screen)
}
