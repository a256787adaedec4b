package level

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/junkfoodwar/camera"
	"github.com/milk9111/junkfoodwar/damage"
	"github.com/milk9111/junkfoodwar/entity"
	"github.com/milk9111/junkfoodwar/input"
	"github.com/milk9111/junkfoodwar/levels"
	"github.com/milk9111/junkfoodwar/physics"
)

var ErrClosed = errors.New("level: closed")

// Pointer is the input the level reads once per tick.
type Pointer interface {
	Snapshot() input.Snapshot
}

// ConfigError reports a level entry that was skipped during load.
type ConfigError struct {
	Index int
	Entry string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("level: entity %d (%s): %v", e.Index, e.Entry, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

type Option func(*Level)

// OnEnd registers a callback run once when the level reaches its outcome.
func OnEnd(fn func(Outcome, float64)) Option {
	return func(l *Level) {
		l.onEnd = fn
	}
}

// Level is one play session. It owns the entities, the camera and the
// physics world, and is only ever touched from the goroutine calling Tick.
type Level struct {
	name     string
	cfg      Config
	phys     physics.Adapter
	pointer  Pointer
	cam      camera.Camera
	damage   *damage.Model
	contacts physics.ContactBuffer
	clock    FrameClock

	slingshot cp.Vector
	maxWidth  float64

	entities []*entity.Entity
	heroes   []*entity.Entity
	villains []*entity.Entity
	current  *entity.Entity
	skipped  []*ConfigError
	final    []Placement

	mode    Mode
	ended   bool
	outcome Outcome
	closed  bool
	onEnd   func(Outcome, float64)
}

// New builds a level from its description. Entries that cannot be built are
// logged and skipped; see Skipped.
func New(desc *levels.Description, defs map[string]*entity.Definition, phys physics.Adapter, ptr Pointer, cfg Config, opts ...Option) (*Level, error) {
	if desc == nil {
		return nil, fmt.Errorf("level: nil description")
	}
	if phys == nil {
		return nil, fmt.Errorf("level: %s: nil physics", desc.Name)
	}
	cfg = cfg.withDefaults()

	sling := desc.SlingshotPoint()
	l := &Level{
		name:    desc.Name,
		cfg:     cfg,
		phys:    phys,
		pointer: ptr,
		cam: camera.Camera{
			Min:           0,
			Max:           desc.MaxOffset,
			MaxSpeed:      cfg.MaxSpeed,
			ViewportWidth: cfg.ViewportWidth,
		},
		damage:    damage.NewModel(),
		slingshot: cp.Vector{X: sling.X, Y: sling.Y},
		maxWidth:  desc.Width(),
		mode:      ModeIntro,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}

	phys.SetContactListener(l.contacts.Push)

	for i, spec := range desc.Entities {
		e, err := l.build(i+1, spec, defs)
		if err != nil {
			cerr := &ConfigError{Index: i, Entry: spec.String(), Err: err}
			log.Printf("%v: skipped", cerr)
			l.skipped = append(l.skipped, cerr)
			continue
		}
		l.entities = append(l.entities, e)
		switch e.Kind {
		case entity.Hero:
			l.heroes = append(l.heroes, e)
		case entity.Villain:
			l.villains = append(l.villains, e)
		}
	}

	return l, nil
}

func (l *Level) build(id int, spec levels.EntitySpec, defs map[string]*entity.Definition) (*entity.Entity, error) {
	kind, err := entity.ParseKind(spec.Type)
	if err != nil {
		return nil, err
	}
	shape, err := spec.Shape.Shape()
	if err != nil {
		return nil, err
	}
	def, ok := defs[spec.Definition]
	if !ok {
		return nil, fmt.Errorf("unknown definition %q", spec.Definition)
	}

	opts := []entity.Option{entity.WithCalories(spec.Calories)}
	if spec.FullHealth != nil {
		opts = append(opts, entity.WithHealth(*spec.FullHealth))
	}
	if spec.Name != "" {
		opts = append(opts, entity.WithName(spec.Name))
	}
	if spec.Image != "" {
		opts = append(opts, entity.WithImage(spec.Image))
	}

	e, err := entity.New(id, kind, shape, def, cp.Vector{X: spec.X, Y: spec.Y}, opts...)
	if err != nil {
		return nil, err
	}
	if _, err := l.phys.CreateBody(e); err != nil {
		return nil, err
	}
	return e, nil
}

// Tick advances the level by one frame.
func (l *Level) Tick(now time.Time) error {
	if l == nil || l.closed {
		return ErrClosed
	}
	if l.ended {
		return nil
	}

	var snap input.Snapshot
	if l.pointer != nil {
		snap = l.pointer.Snapshot()
	}

	l.phase("mode", func() { l.runMode(snap) })
	l.phase("step", func() {
		if dt, ok := l.clock.Delta(now); ok {
			l.phys.Step(dt)
		}
	})
	l.phase("damage", func() { l.damage.Apply(l.contacts.Drain()) })
	l.phase("sweep", l.sweep)
	return nil
}

func (l *Level) phase(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			if l.cfg.Debug {
				panic(r)
			}
			log.Printf("level: %s: %s phase: %v", l.name, name, r)
		}
	}()
	fn()
}

// Close releases the physics world. Tick returns ErrClosed afterwards.
func (l *Level) Close() error {
	if l == nil || l.closed {
		return nil
	}
	l.final = l.Placements()
	l.closed = true
	l.current = nil
	l.heroes = nil
	l.villains = nil
	for _, e := range l.entities {
		e.Body = 0
	}
	if err := l.phys.Close(); err != nil {
		return fmt.Errorf("level: close %s: %w", l.name, err)
	}
	return nil
}

func (l *Level) Name() string {
	return l.name
}

func (l *Level) Mode() Mode {
	return l.mode
}

func (l *Level) Offset() float64 {
	return l.cam.Offset
}

func (l *Level) Score() float64 {
	return l.damage.Score()
}

func (l *Level) Ended() bool {
	return l.ended
}

func (l *Level) Outcome() Outcome {
	return l.outcome
}

func (l *Level) Closed() bool {
	return l.closed
}

func (l *Level) MaxWidth() float64 {
	return l.maxWidth
}

func (l *Level) Slingshot() cp.Vector {
	return l.slingshot
}

// LaunchAnchor is the world point heroes are pulled back from.
func (l *Level) LaunchAnchor() cp.Vector {
	return l.slingshot.Add(l.cfg.LaunchOffset)
}

func (l *Level) CurrentHero() *entity.Entity {
	return l.current
}

func (l *Level) Heroes() []*entity.Entity {
	return append([]*entity.Entity(nil), l.heroes...)
}

func (l *Level) Villains() []*entity.Entity {
	return append([]*entity.Entity(nil), l.villains...)
}

// Entities returns every entity that still has a body, in load order.
func (l *Level) Entities() []*entity.Entity {
	out := make([]*entity.Entity, 0, len(l.entities))
	for _, e := range l.entities {
		if e.HasBody() {
			out = append(out, e)
		}
	}
	return out
}

// Skipped returns the entries dropped during load.
func (l *Level) Skipped() []*ConfigError {
	return append([]*ConfigError(nil), l.skipped...)
}

// Placement is an entity with its pose at one instant.
type Placement struct {
	Entity *entity.Entity
	Pos    cp.Vector
	Angle  float64
}

// Placements returns every body-bearing entity with its live pose. After
// Close it returns the poses captured just before the bodies were released.
func (l *Level) Placements() []Placement {
	if l.closed {
		return append([]Placement(nil), l.final...)
	}
	out := make([]Placement, 0, len(l.entities))
	for _, e := range l.entities {
		if !e.HasBody() {
			continue
		}
		out = append(out, Placement{Entity: e, Pos: l.phys.Position(e.Body), Angle: l.phys.Angle(e.Body)})
	}
	return out
}

// Pose returns the live position and angle of e.
func (l *Level) Pose(e *entity.Entity) (cp.Vector, float64, bool) {
	if l.closed || !e.HasBody() {
		return cp.Vector{}, 0, false
	}
	return l.phys.Position(e.Body), l.phys.Angle(e.Body), true
}
