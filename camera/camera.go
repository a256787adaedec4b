package camera

import "math"

// Camera scrolls the view horizontally. Offset is the world x shown at the
// left edge of the viewport.
type Camera struct {
	Offset        float64
	Min           float64
	Max           float64
	MaxSpeed      float64
	ViewportWidth float64
}

// Center is the focal x the camera pans toward: a quarter of the viewport
// right of the left edge, where the launcher sits on screen.
func (c *Camera) Center() float64 {
	return c.Offset + c.ViewportWidth/4
}

// PanTo moves the focal point halfway toward target, at most MaxSpeed per
// call, and keeps Offset inside [Min, Max]. It reports true once the camera
// has arrived or hit a bound.
func (c *Camera) PanTo(target float64) bool {
	if c == nil {
		return true
	}

	diff := target - c.Center()
	if diff == 0 || c.Offset < c.Min || c.Offset > c.Max {
		c.Clamp()
		return true
	}

	delta := roundHalfUp(diff / 2)
	if delta == 0 {
		return true
	}
	if c.MaxSpeed > 0 && math.Abs(delta) > c.MaxSpeed {
		delta = math.Copysign(c.MaxSpeed, delta)
	}
	c.Offset += delta

	return c.Clamp()
}

// Clamp forces Offset into [Min, Max] and reports whether it had to.
func (c *Camera) Clamp() bool {
	switch {
	case c.Offset < c.Min:
		c.Offset = c.Min
		return true
	case c.Offset > c.Max:
		c.Offset = c.Max
		return true
	}
	return false
}

func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
