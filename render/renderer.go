package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/junkfoodwar/entity"
)

// Renderer draws into a camera-offset view of the world.
type Renderer interface {
	// DrawSprite copies src of img into dst, both in screen pixels.
	DrawSprite(img *ebiten.Image, src, dst image.Rectangle)
	// DrawEntity draws e centered on pos and rotated by angle.
	DrawEntity(e *entity.Entity, pos cp.Vector, angle float64)
}

// Screen renders onto an ebiten image with a horizontal camera offset.
type Screen struct {
	Target *ebiten.Image
	Offset float64
}

func (s *Screen) DrawSprite(img *ebiten.Image, src, dst image.Rectangle) {
	if s == nil || s.Target == nil || img == nil || src.Empty() || dst.Empty() {
		return
	}
	sub, ok := img.SubImage(src).(*ebiten.Image)
	if !ok {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(dst.Dx())/float64(src.Dx()), float64(dst.Dy())/float64(src.Dy()))
	op.GeoM.Translate(float64(dst.Min.X), float64(dst.Min.Y))
	s.Target.DrawImage(sub, op)
}

func (s *Screen) DrawEntity(e *entity.Entity, pos cp.Vector, angle float64) {
	if s == nil || s.Target == nil || e == nil {
		return
	}
	x := pos.X - s.Offset
	w, h := e.Shape.Size()

	img := s.entityImage(e)
	if img == nil {
		if e.Kind == entity.Ground {
			return
		}
		s.drawPlain(e, x, pos.Y, w, h, angle)
		return
	}

	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Rotate(angle)
	op.GeoM.Translate(x, pos.Y)
	s.Target.DrawImage(img, op)
}

func (s *Screen) entityImage(e *entity.Entity) *ebiten.Image {
	if e.Image == "" {
		return nil
	}
	img, err := LoadImage(e.Image)
	if err != nil {
		return nil
	}
	return img
}

func (s *Screen) drawPlain(e *entity.Entity, x, y, w, h, angle float64) {
	c := kindColor(e.Kind)
	if e.Shape.Type == entity.Circle {
		vector.DrawFilledCircle(s.Target, float32(x), float32(y), float32(e.Shape.Radius), c, true)
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Rotate(angle)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	s.Target.DrawImage(solidPixel(), op)
}

func kindColor(k entity.Kind) color.NRGBA {
	switch k {
	case entity.Block:
		return color.NRGBA{R: 0x9c, G: 0x6b, B: 0x3a, A: 0xff}
	case entity.Hero:
		return color.NRGBA{R: 0x40, G: 0xb0, B: 0x40, A: 0xff}
	case entity.Villain:
		return color.NRGBA{R: 0xc0, G: 0x30, B: 0x30, A: 0xff}
	default:
		return color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	}
}

var _ Renderer = (*Screen)(nil)
