package render

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/junkfoodwar/level"
	"github.com/milk9111/junkfoodwar/levels"
)

const (
	slingshotImage      = "slingshot.png"
	slingshotFrontImage = "slingshot-front.png"
)

var bandColor = color.RGBA{R: 0x30, G: 0x16, B: 0x08, A: 0xff}

// Scene draws one level: parallax layers, the slingshot, every entity and
// the score.
type Scene struct {
	background *ebiten.Image
	foreground *ebiten.Image
	bgParallax float64
	fgParallax float64

	slingshot      *ebiten.Image
	slingshotFront *ebiten.Image

	screen Screen
}

func NewScene(desc *levels.Description) (*Scene, error) {
	if desc == nil {
		return nil, fmt.Errorf("render: nil level description")
	}
	s := &Scene{
		bgParallax: desc.Background.Factor(levels.DefaultBackgroundParallax),
		fgParallax: desc.Foreground.Factor(1),
	}

	var err error
	if s.background, err = optionalImage(desc.Background.Image); err != nil {
		return nil, err
	}
	if s.foreground, err = optionalImage(desc.Foreground.Image); err != nil {
		return nil, err
	}
	if s.foreground != nil {
		if w := float64(s.foreground.Bounds().Dx()); w != desc.Width() {
			log.Printf("render: %s: foreground is %vpx wide, level width %v", desc.Name, w, desc.Width())
		}
	}
	if s.slingshot, err = LoadImage(slingshotImage); err != nil {
		return nil, err
	}
	if s.slingshotFront, err = LoadImage(slingshotFrontImage); err != nil {
		return nil, err
	}
	return s, nil
}

func optionalImage(key string) (*ebiten.Image, error) {
	if key == "" {
		return nil, nil
	}
	return LoadImage(key)
}

func (s *Scene) Draw(screen *ebiten.Image, lvl *level.Level) {
	if s == nil || screen == nil || lvl == nil {
		return
	}
	offset := lvl.Offset()
	s.screen = Screen{Target: screen, Offset: offset}

	s.drawLayer(screen, s.background, offset*s.bgParallax)
	s.drawLayer(screen, s.foreground, offset*s.fgParallax)

	sling := lvl.Slingshot()
	s.drawAt(screen, s.slingshot, sling.X-offset, sling.Y)

	for _, p := range lvl.Placements() {
		s.screen.DrawEntity(p.Entity, p.Pos, p.Angle)
	}

	if lvl.Mode() == level.ModeFiring {
		if hero := lvl.CurrentHero(); hero != nil {
			if pos, _, ok := lvl.Pose(hero); ok {
				anchor := lvl.LaunchAnchor()
				ebitenutil.DrawLine(screen, anchor.X-offset, anchor.Y, pos.X-offset, pos.Y, bandColor)
			}
		}
	}

	s.drawAt(screen, s.slingshotFront, sling.X-offset, sling.Y)

	score := fmt.Sprintf("Score: %d", int(math.Round(lvl.Score())))
	ebitenutil.DebugPrintAt(screen, score, screen.Bounds().Dx()-len(score)*6-12, 8)
}

// drawLayer draws img scrolled left by shift.
func (s *Scene) drawLayer(screen, img *ebiten.Image, shift float64) {
	if img == nil {
		return
	}
	b := img.Bounds()
	x := int(math.Round(-shift))
	s.screen.DrawSprite(img, b, image.Rect(x, 0, x+b.Dx(), b.Dy()))
}

func (s *Scene) drawAt(screen, img *ebiten.Image, x, y float64) {
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	screen.DrawImage(img, op)
}
