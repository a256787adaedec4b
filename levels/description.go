package levels

import (
	"fmt"
	"math"

	"github.com/milk9111/junkfoodwar/entity"
)

const (
	DefaultSlingshotX = 140
	DefaultSlingshotY = 280
	DefaultMaxOffset  = 300
	DefaultWidth      = 1000

	// DefaultBackgroundParallax scrolls the sky at a quarter of the camera.
	DefaultBackgroundParallax = 0.25
)

type Description struct {
	Name       string       `yaml:"name"`
	Background Layer        `yaml:"background"`
	Foreground Layer        `yaml:"foreground"`
	Slingshot  *Point       `yaml:"slingshot,omitempty"`
	MaxOffset  float64      `yaml:"max_offset"`
	Entities   []EntitySpec `yaml:"entities"`
}

type Layer struct {
	Image    string   `yaml:"image"`
	Parallax *float64 `yaml:"parallax,omitempty"`
	Width    float64  `yaml:"width"`
}

// Factor returns the parallax factor, or def when none was given.
func (l Layer) Factor(def float64) float64 {
	if l.Parallax == nil {
		return def
	}
	return *l.Parallax
}

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type EntitySpec struct {
	Type       string    `yaml:"type"`
	Name       string    `yaml:"name"`
	Shape      ShapeSpec `yaml:"shape"`
	X          float64   `yaml:"x"`
	Y          float64   `yaml:"y"`
	Definition string    `yaml:"definition"`
	FullHealth *float64  `yaml:"full_health,omitempty"`
	Calories   float64   `yaml:"calories"`
	Image      string    `yaml:"image"`
}

// ShapeSpec is the yaml form of a shape. Angle is in degrees.
type ShapeSpec struct {
	Type   string  `yaml:"type"`
	Radius float64 `yaml:"radius"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Angle  float64 `yaml:"angle"`
}

// Shape converts to an entity.Shape with the angle in radians.
func (s ShapeSpec) Shape() (entity.Shape, error) {
	t, err := entity.ParseShapeType(s.Type)
	if err != nil {
		return entity.Shape{}, err
	}
	shape := entity.Shape{
		Type:   t,
		Radius: s.Radius,
		Width:  s.Width,
		Height: s.Height,
		Angle:  s.Angle * math.Pi / 180,
	}
	if err := shape.Validate(); err != nil {
		return entity.Shape{}, err
	}
	return shape, nil
}

// SlingshotPoint returns the slingshot position, defaulting when unset.
func (d *Description) SlingshotPoint() Point {
	if d == nil || d.Slingshot == nil {
		return Point{X: DefaultSlingshotX, Y: DefaultSlingshotY}
	}
	return *d.Slingshot
}

// Width is the horizontal extent of the level; bodies past it are gone.
func (d *Description) Width() float64 {
	if d == nil || d.Foreground.Width <= 0 {
		return DefaultWidth
	}
	return d.Foreground.Width
}

func (d *Description) applyDefaults() {
	if d.MaxOffset <= 0 {
		d.MaxOffset = DefaultMaxOffset
	}
	if d.Foreground.Width <= 0 {
		d.Foreground.Width = DefaultWidth
	}
}

func (e EntitySpec) String() string {
	name := e.Name
	if name == "" {
		name = e.Definition
	}
	return fmt.Sprintf("%s %q at (%g,%g)", e.Type, name, e.X, e.Y)
}
