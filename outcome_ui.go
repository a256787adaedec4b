package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/milk9111/junkfoodwar/common"
	"github.com/milk9111/junkfoodwar/level"
	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	msgLevelComplete = "Level Complete. Well Done!!!"
	msgAllComplete   = "All Levels Complete. Well Done!!!"
	msgFailed        = "Failed. Play Again?"

	dimFrames = 30
)

func outcomeMessage(outcome level.Outcome, last bool) string {
	switch {
	case outcome != level.OutcomeSuccess:
		return msgFailed
	case last:
		return msgAllComplete
	default:
		return msgLevelComplete
	}
}

// NewOutcomeUI builds the end-of-level panel: the result, the score and
// buttons to replay or move on.
func NewOutcomeUI(g *Game, outcome level.Outcome, score float64) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	title := widget.NewText(
		widget.TextOpts.Text(outcomeMessage(outcome, g.lastLevel()), &face, white),
		widget.TextOpts.WidgetOpts(center),
	)
	scoreText := widget.NewText(
		widget.TextOpts.Text(fmt.Sprintf("Score: %d", int(math.Round(score))), &face, white),
		widget.TextOpts.WidgetOpts(center),
	)

	button := func(label string, act action) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnHover, Pressed: btnImg}),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.TextPadding(&widget.Insets{Top: 6, Bottom: 6, Left: 16, Right: 16}),
			widget.ButtonOpts.WidgetOpts(center),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				g.pending = act
			}),
		)
	}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2, common.BaseHeight/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(scoreText)
	panel.AddChild(button("Replay", actionReplay))
	if outcome == level.OutcomeSuccess && !g.lastLevel() {
		panel.AddChild(button("Next Level", actionNext))
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}

var dimPixel *ebiten.Image

// drawDim darkens the scene, fading in over the first frames of the panel.
func drawDim(screen *ebiten.Image, frame int) {
	if dimPixel == nil {
		dimPixel = ebiten.NewImage(1, 1)
		dimPixel.Fill(color.Black)
	}
	t := common.Clamp01(float32(frame) / dimFrames)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(common.BaseWidth, common.BaseHeight)
	op.ColorScale.ScaleAlpha(common.Lerp(0, 0.5, t))
	screen.DrawImage(dimPixel, op)
}
