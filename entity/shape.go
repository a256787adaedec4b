package entity

import (
	"fmt"
	"math"
	"strings"
)

type ShapeType uint8

const (
	Circle ShapeType = iota + 1
	Rectangle
)

func (t ShapeType) String() string {
	switch t {
	case Circle:
		return "circle"
	case Rectangle:
		return "rectangle"
	default:
		return fmt.Sprintf("shape(%d)", uint8(t))
	}
}

func ParseShapeType(s string) (ShapeType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "circle":
		return Circle, nil
	case "rectangle", "rect", "box":
		return Rectangle, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownShape, s)
	}
}

// Shape is the collision outline of an entity in world units. Radius is used
// by circles, Width/Height by rectangles. Angle is the initial rotation in
// radians.
type Shape struct {
	Type   ShapeType
	Radius float64
	Width  float64
	Height float64
	Angle  float64
}

func CircleShape(radius float64) Shape {
	return Shape{Type: Circle, Radius: radius}
}

func RectShape(width, height float64) Shape {
	return Shape{Type: Rectangle, Width: width, Height: height}
}

func (s Shape) Validate() error {
	switch s.Type {
	case Circle:
		if s.Radius <= 0 || math.IsNaN(s.Radius) {
			return fmt.Errorf("%w: circle radius %v", ErrInvalidShape, s.Radius)
		}
	case Rectangle:
		if s.Width <= 0 || s.Height <= 0 || math.IsNaN(s.Width) || math.IsNaN(s.Height) {
			return fmt.Errorf("%w: rectangle %vx%v", ErrInvalidShape, s.Width, s.Height)
		}
	default:
		return fmt.Errorf("%w: %v", ErrUnknownShape, s.Type)
	}
	return nil
}

// Extent is the radius of a circle or half the larger side of a rectangle.
func (s Shape) Extent() float64 {
	if s.Type == Circle {
		return s.Radius
	}
	return math.Max(s.Width, s.Height) / 2
}

// Size returns the bounding width and height before rotation.
func (s Shape) Size() (float64, float64) {
	if s.Type == Circle {
		return s.Radius * 2, s.Radius * 2
	}
	return s.Width, s.Height
}
