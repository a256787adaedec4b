package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// BodyHandle identifies a physics body. The zero value means no body.
type BodyHandle uint32

func (h BodyHandle) Valid() bool {
	return h != 0
}

// Entity is one simulated object of a level.
//
// Kind and Shape never change after construction. Position and Angle are
// the spawn pose; the live pose belongs to the physics body. Health is nil
// for indestructible entities.
type Entity struct {
	ID       int
	Kind     Kind
	Name     string
	Shape    Shape
	Def      *Definition
	Position cp.Vector

	Health     *float64
	FullHealth float64
	Calories   float64
	Image      string

	Body BodyHandle
}

type Option func(*Entity)

// WithHealth gives the entity a health pool. Ignored for ground and heroes.
func WithHealth(full float64) Option {
	return func(e *Entity) {
		if e.Kind == Ground || e.Kind == Hero {
			return
		}
		h := full
		e.Health = &h
		e.FullHealth = full
	}
}

// WithCalories sets the score value. Only villains carry one.
func WithCalories(c float64) Option {
	return func(e *Entity) {
		if e.Kind != Villain {
			return
		}
		e.Calories = c
	}
}

func WithImage(path string) Option {
	return func(e *Entity) {
		e.Image = path
	}
}

func WithName(name string) Option {
	return func(e *Entity) {
		e.Name = name
	}
}

// New builds an entity. Villains must be given a positive health pool.
func New(id int, kind Kind, shape Shape, def *Definition, pos cp.Vector, opts ...Option) (*Entity, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if def == nil {
		return nil, fmt.Errorf("entity: %s %d has no definition", kind, id)
	}

	e := &Entity{
		ID:       id,
		Kind:     kind,
		Name:     def.Name,
		Shape:    shape,
		Def:      def,
		Position: pos,
		Image:    def.Image,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	if e.Kind == Villain && (e.Health == nil || e.FullHealth <= 0) {
		return nil, fmt.Errorf("%w: %s %d", ErrNoHealth, e.Name, id)
	}
	return e, nil
}

// IsStatic reports whether the entity gets a static body. Only ground does.
func (e *Entity) IsStatic() bool {
	return e != nil && e.Kind == Ground
}

// Destructible reports whether contacts can damage the entity.
func (e *Entity) Destructible() bool {
	return e != nil && e.Health != nil
}

// Alive reports whether the entity still has health left. Indestructible
// entities are always alive.
func (e *Entity) Alive() bool {
	if e == nil {
		return false
	}
	return e.Health == nil || *e.Health > 0
}

// Damage subtracts j from health. It returns false for indestructible entities.
func (e *Entity) Damage(j float64) bool {
	if !e.Destructible() {
		return false
	}
	*e.Health -= j
	return true
}

// HealthValue returns the current health, or 0 when the entity has none.
func (e *Entity) HealthValue() float64 {
	if !e.Destructible() {
		return 0
	}
	return *e.Health
}

func (e *Entity) HasBody() bool {
	return e != nil && e.Body.Valid()
}

func (e *Entity) String() string {
	if e == nil {
		return "<nil>"
	}
	if e.Name != "" {
		return fmt.Sprintf("%s#%d(%s)", e.Kind, e.ID, e.Name)
	}
	return fmt.Sprintf("%s#%d", e.Kind, e.ID)
}
