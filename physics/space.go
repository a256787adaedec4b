package physics

import (
	"fmt"
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/junkfoodwar/entity"
)

const collisionTypeEntity cp.CollisionType = 1

const (
	sleepTimeThreshold = 0.5
	minMass            = 0.01
)

// Space is the Chipmunk2D implementation of Adapter.
type Space struct {
	space *cp.Space
	debug bool

	noiseFloor float64
	listener   func(Contact)

	nextHandle entity.BodyHandle
	bodies     map[entity.BodyHandle]*bodyInfo
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	entity *entity.Entity
	static bool
}

type Option func(*Space)

// WithDebug makes queries on destroyed handles panic instead of being ignored.
func WithDebug(debug bool) Option {
	return func(s *Space) {
		s.debug = debug
	}
}

func WithGravity(g float64) Option {
	return func(s *Space) {
		if s.space != nil {
			s.space.SetGravity(cp.Vector{X: 0, Y: g})
		}
	}
}

// NewSpace creates an empty world with downward gravity.
func NewSpace(opts ...Option) *Space {
	space := cp.NewSpace()
	space.Iterations = VelocityIterations
	space.SetGravity(cp.Vector{X: 0, Y: Gravity})
	space.SleepTimeThreshold = sleepTimeThreshold

	s := &Space{
		space:      space,
		noiseFloor: NoiseFloor,
		bodies:     make(map[entity.BodyHandle]*bodyInfo),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	s.setupHandlers()
	return s
}

func (s *Space) setupHandlers() {
	handler := s.space.NewCollisionHandler(collisionTypeEntity, collisionTypeEntity)
	// cp hands the handler itself to PostSolveFunc instead of UserData, so
	// the closure carries the space.
	handler.PostSolveFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) {
		s.postSolve(arb)
	}
}

func (s *Space) postSolve(arb *cp.Arbiter) {
	if s.listener == nil || arb == nil {
		return
	}
	shapeA, shapeB := arb.Shapes()
	a, _ := shapeA.UserData.(*entity.Entity)
	b, _ := shapeB.UserData.(*entity.Entity)
	if a == nil || b == nil {
		return
	}
	j := math.Abs(arb.TotalImpulse().Dot(arb.Normal()))
	if j < s.noiseFloor {
		return
	}
	s.listener(Contact{A: a, B: b, Impulse: j})
}

func (s *Space) SetContactListener(fn func(Contact)) {
	if s == nil {
		return
	}
	s.listener = fn
}

// CreateBody registers a body matching the entity's shape and material and
// stores the handle on the entity.
func (s *Space) CreateBody(e *entity.Entity) (entity.BodyHandle, error) {
	if s == nil || s.space == nil {
		return 0, ErrClosed
	}
	if e == nil {
		return 0, fmt.Errorf("physics: create body: nil entity")
	}
	if e.HasBody() {
		return 0, fmt.Errorf("%w: %s", ErrHasBody, e)
	}
	if err := e.Shape.Validate(); err != nil {
		return 0, fmt.Errorf("physics: create body %s: %w", e, err)
	}

	pos := e.Position.Mult(1 / Scale)
	info := &bodyInfo{entity: e, static: e.IsStatic()}

	var body *cp.Body
	if info.static {
		body = cp.NewStaticBody()
	} else {
		mass, moment := massFor(e)
		body = cp.NewBody(mass, moment)
	}
	body.SetPosition(pos)
	body.SetAngle(e.Shape.Angle)
	body.UserData = e

	var shape *cp.Shape
	switch e.Shape.Type {
	case entity.Circle:
		shape = cp.NewCircle(body, e.Shape.Radius/Scale, cp.Vector{})
	case entity.Rectangle:
		shape = cp.NewBox(body, e.Shape.Width/Scale, e.Shape.Height/Scale, 0)
	default:
		return 0, fmt.Errorf("%w: %v", entity.ErrUnknownShape, e.Shape.Type)
	}
	if def := e.Def; def != nil {
		shape.SetFriction(def.Friction)
		shape.SetElasticity(def.Restitution)
	}
	shape.SetCollisionType(collisionTypeEntity)
	shape.UserData = e

	s.space.AddBody(body)
	s.space.AddShape(shape)

	info.body = body
	info.shape = shape

	s.nextHandle++
	h := s.nextHandle
	s.bodies[h] = info
	e.Body = h
	return h, nil
}

func massFor(e *entity.Entity) (float64, float64) {
	density := 0.0
	if e.Def != nil {
		density = e.Def.Density
	}

	switch e.Shape.Type {
	case entity.Circle:
		r := e.Shape.Radius / Scale
		mass := math.Max(density*cp.AreaForCircle(0, r), minMass)
		return mass, cp.MomentForCircle(mass, 0, r, cp.Vector{})
	default:
		w := e.Shape.Width / Scale
		h := e.Shape.Height / Scale
		mass := math.Max(density*w*h, minMass)
		return mass, cp.MomentForBox(mass, w, h)
	}
}

// Step advances the simulation. dt is clamped to MaxStep.
func (s *Space) Step(dt float64) {
	if s == nil || s.space == nil || dt <= 0 {
		return
	}
	if dt > MaxStep {
		dt = MaxStep
	}
	s.space.Step(dt)
}

func (s *Space) lookup(h entity.BodyHandle) *bodyInfo {
	if s != nil {
		if info, ok := s.bodies[h]; ok {
			return info
		}
	}
	if s != nil && s.debug {
		panic(fmt.Errorf("%w: handle %d", ErrDestroyedBody, h))
	}
	return nil
}

// Entity returns the entity that owns the handle.
func (s *Space) Entity(h entity.BodyHandle) *entity.Entity {
	info := s.lookup(h)
	if info == nil {
		return nil
	}
	return info.entity
}

func (s *Space) Position(h entity.BodyHandle) cp.Vector {
	info := s.lookup(h)
	if info == nil {
		return cp.Vector{}
	}
	return info.body.Position().Mult(Scale)
}

func (s *Space) Angle(h entity.BodyHandle) float64 {
	info := s.lookup(h)
	if info == nil {
		return 0
	}
	return info.body.Angle()
}

// IsAwake reports whether a dynamic body is still simulating. Static bodies
// never are.
func (s *Space) IsAwake(h entity.BodyHandle) bool {
	info := s.lookup(h)
	if info == nil || info.static {
		return false
	}
	return !info.body.IsSleeping()
}

func (s *Space) CenterOfMass(h entity.BodyHandle) cp.Vector {
	info := s.lookup(h)
	if info == nil {
		return cp.Vector{}
	}
	return info.body.LocalToWorld(info.body.CenterOfGravity()).Mult(Scale)
}

func (s *Space) SetPosition(h entity.BodyHandle, p cp.Vector) {
	info := s.lookup(h)
	if info == nil || info.static {
		return
	}
	info.body.SetPosition(p.Mult(1 / Scale))
}

// SetVelocity sets the linear velocity in world units per second.
func (s *Space) SetVelocity(h entity.BodyHandle, v cp.Vector) {
	info := s.lookup(h)
	if info == nil || info.static {
		return
	}
	info.body.SetVelocityVector(v.Mult(1 / Scale))
}

func (s *Space) SetAngularVelocity(h entity.BodyHandle, w float64) {
	info := s.lookup(h)
	if info == nil || info.static {
		return
	}
	info.body.SetAngularVelocity(w)
}

func (s *Space) Wake(h entity.BodyHandle) {
	info := s.lookup(h)
	if info == nil || info.static {
		return
	}
	info.body.Activate()
}

// ApplyImpulse applies impulse (physics units) at a world point.
func (s *Space) ApplyImpulse(h entity.BodyHandle, impulse, point cp.Vector) {
	info := s.lookup(h)
	if info == nil || info.static {
		return
	}
	info.body.ApplyImpulseAtWorldPoint(impulse, point.Mult(1/Scale))
}

// DestroyBody removes the body and its shape and clears the entity handle.
func (s *Space) DestroyBody(h entity.BodyHandle) {
	info := s.lookup(h)
	if info == nil {
		return
	}
	s.remove(info)
	delete(s.bodies, h)
	if info.entity != nil && info.entity.Body == h {
		info.entity.Body = 0
	}
}

func (s *Space) remove(info *bodyInfo) {
	if s.space == nil {
		return
	}
	if info.shape != nil && s.space.ContainsShape(info.shape) {
		s.space.RemoveShape(info.shape)
	}
	if info.body != nil && s.space.ContainsBody(info.body) {
		s.space.RemoveBody(info.body)
	}
}

// Len returns the number of live bodies.
func (s *Space) Len() int {
	if s == nil {
		return 0
	}
	return len(s.bodies)
}

// Close releases every body and the space. Further calls are no-ops.
func (s *Space) Close() error {
	if s == nil || s.space == nil {
		return nil
	}
	for h, info := range s.bodies {
		s.remove(info)
		if info.entity != nil && info.entity.Body == h {
			info.entity.Body = 0
		}
	}
	if n := len(s.bodies); n > 0 {
		log.Printf("physics: released %d bodies", n)
	}
	s.bodies = make(map[entity.BodyHandle]*bodyInfo)
	s.listener = nil
	s.space = nil
	return nil
}

// DebugDraw renders every shape of the space with the given drawer.
func (s *Space) DebugDraw(drawer cp.Drawer) {
	if s == nil || s.space == nil || drawer == nil {
		return
	}
	cp.DrawSpace(s.space, drawer)
}

var _ Adapter = (*Space)(nil)
