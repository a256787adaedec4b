package level

import "github.com/jakecoffman/cp"

// Config holds the tunables of a level session. Distances are world units.
type Config struct {
	ViewportWidth float64
	MaxSpeed      float64

	// IntroTarget is the x the camera pans toward before the first hero.
	IntroTarget float64

	// LaunchOffset is added to the slingshot position to get the launch
	// anchor. RestOffset gives the point a hero is dropped from when staged.
	LaunchOffset cp.Vector
	RestOffset   cp.Vector

	ImpulseScale    float64
	MaxDrawDistance float64

	// Debug re-raises panics caught inside a tick.
	Debug bool
}

func DefaultConfig() Config {
	return Config{
		ViewportWidth:   640,
		MaxSpeed:        3,
		IntroTarget:     700,
		LaunchOffset:    cp.Vector{X: 35, Y: 25},
		RestOffset:      cp.Vector{X: 40, Y: -80},
		ImpulseScale:    0.75,
		MaxDrawDistance: 130,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.ViewportWidth <= 0 {
		c.ViewportWidth = def.ViewportWidth
	}
	if c.MaxSpeed <= 0 {
		c.MaxSpeed = def.MaxSpeed
	}
	if c.ImpulseScale == 0 {
		c.ImpulseScale = def.ImpulseScale
	}
	if c.MaxDrawDistance <= 0 {
		c.MaxDrawDistance = def.MaxDrawDistance
	}
	return c
}
