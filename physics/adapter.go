package physics

import (
	"errors"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/junkfoodwar/entity"
)

var (
	ErrDestroyedBody = errors.New("physics: query on destroyed or unknown body")
	ErrClosed        = errors.New("physics: space closed")
	ErrHasBody       = errors.New("physics: entity already has a body")
)

const (
	// Scale converts world units (pixels) to physics units (meters).
	Scale = 30.0

	// MaxStep caps a single simulation step, in seconds.
	MaxStep = 1.0 / 30.0

	// NoiseFloor suppresses contact impulses too small to report.
	NoiseFloor = 5.0

	VelocityIterations = 8
	PositionIterations = 3

	Gravity = 9.8
)

// Contact is one resolved collision between two entities in one step.
// Impulse is the magnitude of the normal impulse in physics units.
type Contact struct {
	A       *entity.Entity
	B       *entity.Entity
	Impulse float64
}

// Adapter is everything the level needs from a rigid-body engine. Positions
// and points are world units; impulses are physics units.
type Adapter interface {
	CreateBody(e *entity.Entity) (entity.BodyHandle, error)
	Step(dt float64)

	Position(h entity.BodyHandle) cp.Vector
	Angle(h entity.BodyHandle) float64
	IsAwake(h entity.BodyHandle) bool
	CenterOfMass(h entity.BodyHandle) cp.Vector

	SetPosition(h entity.BodyHandle, p cp.Vector)
	SetVelocity(h entity.BodyHandle, v cp.Vector)
	SetAngularVelocity(h entity.BodyHandle, w float64)
	Wake(h entity.BodyHandle)
	ApplyImpulse(h entity.BodyHandle, impulse, point cp.Vector)

	DestroyBody(h entity.BodyHandle)

	// SetContactListener registers the contact callback. It runs while the
	// solver is active and must not touch the adapter.
	SetContactListener(fn func(Contact))

	Close() error
}

// ContactBuffer queues contacts reported during a step so they can be
// processed after Step returns.
type ContactBuffer struct {
	items []Contact
}

// Push adds a contact.
func (b *ContactBuffer) Push(c Contact) {
	if b == nil {
		return
	}
	b.items = append(b.items, c)
}

// Drain returns all queued contacts and clears the buffer.
func (b *ContactBuffer) Drain() []Contact {
	if b == nil || len(b.items) == 0 {
		return nil
	}
	out := b.items
	b.items = nil
	return out
}

func (b *ContactBuffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.items)
}
