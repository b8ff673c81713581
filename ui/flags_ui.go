package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/gombli/components"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	flagOn  = color.RGBA{120, 255, 120, 255}
	flagOff = color.RGBA{110, 110, 120, 255}
)

type flagRow struct {
	name  string
	get   func(s *components.SurfaceData) bool
	label *widget.Label
}

// FlagsUI is a corner panel listing the hero's surface flags and motion.
type FlagsUI struct {
	UI *ebitenui.UI

	rows       []*flagRow
	stateLabel *widget.Label

	face text.Face
}

// NewFlagsUI builds the panel anchored to the top-right corner.
func NewFlagsUI() *FlagsUI {
	fui := &FlagsUI{
		rows: []*flagRow{
			{name: "ground", get: func(s *components.SurfaceData) bool { return s.OnGround }},
			{name: "slope", get: func(s *components.SurfaceData) bool { return s.OnSlope }},
			{name: "wall", get: func(s *components.SurfaceData) bool { return s.OnWall }},
			{name: "ladder", get: func(s *components.SurfaceData) bool { return s.OnLadder }},
			{name: "ladder top", get: func(s *components.SurfaceData) bool { return s.OnLadderTop }},
			{name: "underwater", get: func(s *components.SurfaceData) bool { return s.Underwater }},
			{name: "water surface", get: func(s *components.SurfaceData) bool { return s.OnWaterSurface }},
			{name: "moving tile", get: func(s *components.SurfaceData) bool { return s.OnMovingTile }},
			{name: "ozone tile", get: func(s *components.SurfaceData) bool { return s.OnOzoneTile }},
		},
	}

	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	fui.face = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}

	fui.buildUI()
	return fui
}

func (fui *FlagsUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{0, 0, 0, 160})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(6)),
			widget.RowLayoutOpts.Spacing(1),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	for _, row := range fui.rows {
		row.label = widget.NewLabel(
			widget.LabelOpts.Text(row.name, &fui.face, &widget.LabelColor{
				Idle:     flagOn,
				Disabled: flagOff,
			}),
		)
		row.label.GetWidget().Disabled = true
		panel.AddChild(row.label)
	}

	fui.stateLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &fui.face, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	panel.AddChild(fui.stateLabel)

	rootContainer.AddChild(panel)

	fui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// Refresh copies the latest hero state into the labels.
func (fui *FlagsUI) Refresh(surface *components.SurfaceData, body *components.BodyData) {
	for _, row := range fui.rows {
		row.label.GetWidget().Disabled = !row.get(surface)
	}
	fui.stateLabel.Label = fmt.Sprintf("v %.0f, %.0f", body.Velocity.X, body.Velocity.Y)
}
