package level

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/junkfoodwar/entity"
	"github.com/milk9111/junkfoodwar/input"
	"github.com/milk9111/junkfoodwar/physics"
)

type fakeBody struct {
	e     *entity.Entity
	pos   cp.Vector
	vel   cp.Vector
	angle float64
	awake bool
}

type impulseCall struct {
	h       entity.BodyHandle
	impulse cp.Vector
	point   cp.Vector
}

// fakePhysics is a scripted physics.Adapter. Bodies never move on their own.
type fakePhysics struct {
	next      entity.BodyHandle
	bodies    map[entity.BodyHandle]*fakeBody
	listener  func(physics.Contact)
	steps     []float64
	impulses  []impulseCall
	destroyed map[entity.BodyHandle]int
	closed    bool

	// onStep runs inside Step, as the solver would.
	onStep func(f *fakePhysics)
}

func newFakePhysics() *fakePhysics {
	return &fakePhysics{
		bodies:    make(map[entity.BodyHandle]*fakeBody),
		destroyed: make(map[entity.BodyHandle]int),
	}
}

func (f *fakePhysics) CreateBody(e *entity.Entity) (entity.BodyHandle, error) {
	if e.HasBody() {
		return 0, physics.ErrHasBody
	}
	f.next++
	f.bodies[f.next] = &fakeBody{e: e, pos: e.Position, angle: e.Shape.Angle, awake: !e.IsStatic()}
	e.Body = f.next
	return f.next, nil
}

func (f *fakePhysics) Step(dt float64) {
	f.steps = append(f.steps, dt)
	if f.onStep != nil {
		f.onStep(f)
	}
}

func (f *fakePhysics) body(h entity.BodyHandle) *fakeBody {
	b, ok := f.bodies[h]
	if !ok {
		panic(physics.ErrDestroyedBody)
	}
	return b
}

func (f *fakePhysics) Position(h entity.BodyHandle) cp.Vector {
	return f.body(h).pos
}

func (f *fakePhysics) Angle(h entity.BodyHandle) float64 {
	return f.body(h).angle
}

func (f *fakePhysics) IsAwake(h entity.BodyHandle) bool {
	return f.body(h).awake
}

func (f *fakePhysics) CenterOfMass(h entity.BodyHandle) cp.Vector {
	return f.body(h).pos
}

func (f *fakePhysics) SetPosition(h entity.BodyHandle, p cp.Vector) {
	f.body(h).pos = p
}

func (f *fakePhysics) SetVelocity(h entity.BodyHandle, v cp.Vector) {
	f.body(h).vel = v
}

func (f *fakePhysics) SetAngularVelocity(h entity.BodyHandle, w float64) {
	_ = f.body(h)
}

func (f *fakePhysics) Wake(h entity.BodyHandle) {
	f.body(h).awake = true
}

func (f *fakePhysics) ApplyImpulse(h entity.BodyHandle, impulse, point cp.Vector) {
	f.body(h).awake = true
	f.impulses = append(f.impulses, impulseCall{h: h, impulse: impulse, point: point})
}

func (f *fakePhysics) DestroyBody(h entity.BodyHandle) {
	b := f.body(h)
	delete(f.bodies, h)
	f.destroyed[h]++
	if b.e.Body == h {
		b.e.Body = 0
	}
}

func (f *fakePhysics) SetContactListener(fn func(physics.Contact)) { f.listener = fn }

func (f *fakePhysics) Close() error {
	f.closed = true
	f.bodies = make(map[entity.BodyHandle]*fakeBody)
	return nil
}

// settle puts every dynamic body to sleep.
func (f *fakePhysics) settle() {
	for _, b := range f.bodies {
		b.awake = false
	}
}

type fakePointer struct {
	snap input.Snapshot
}

func (p *fakePointer) Snapshot() input.Snapshot {
	return p.snap
}

var _ physics.Adapter = (*fakePhysics)(nil)
