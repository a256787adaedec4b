package damage

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/junkfoodwar/entity"
	"github.com/milk9111/junkfoodwar/physics"
)

var burger = &entity.Definition{Name: "burger", Density: 1, Friction: 0.5, Restitution: 0.4}

func newEntity(t *testing.T, id int, kind entity.Kind, opts ...entity.Option) *entity.Entity {
	t.Helper()
	e, err := entity.New(id, kind, entity.CircleShape(25), burger, cp.Vector{}, opts...)
	if err != nil {
		t.Fatalf("entity.New: %v", err)
	}
	// Damage only lands on entities that are still in the world.
	e.Body = entity.BodyHandle(id)
	return e
}

func TestApplyIgnoresNoise(t *testing.T) {
	villain := newEntity(t, 1, entity.Villain, entity.WithHealth(40))
	block := newEntity(t, 2, entity.Block, entity.WithHealth(100))

	m := NewModel()
	for _, j := range []float64{0, 1, 4.99, 5} {
		if hits := m.Apply([]physics.Contact{{A: villain, B: block, Impulse: j}}); hits != 0 {
			t.Fatalf("impulse %v should not damage, got %d hits", j, hits)
		}
	}
	if villain.HealthValue() != 40 || block.HealthValue() != 100 {
		t.Fatalf("noise changed health: villain=%v block=%v", villain.HealthValue(), block.HealthValue())
	}
}

func TestApplySequentialImpacts(t *testing.T) {
	villain := newEntity(t, 1, entity.Villain, entity.WithHealth(40), entity.WithCalories(590))
	ground := newEntity(t, 2, entity.Ground)

	m := NewModel()
	cases := []struct {
		j     float64
		want  float64
		alive bool
	}{
		{20, 20, true},
		{15, 5, true},
		{10, -5, false},
	}
	for _, c := range cases {
		if hits := m.Apply([]physics.Contact{{A: ground, B: villain, Impulse: c.j}}); hits != 1 {
			t.Fatalf("impulse %v: expected 1 hit, got %d", c.j, hits)
		}
		if villain.HealthValue() != c.want {
			t.Fatalf("impulse %v: expected health %v, got %v", c.j, c.want, villain.HealthValue())
		}
		if villain.Alive() != c.alive {
			t.Fatalf("impulse %v: expected alive=%v", c.j, c.alive)
		}
	}
	if m.Score() != 0 {
		t.Fatalf("damage alone must not score, got %v", m.Score())
	}
}

func TestApplyBothParticipants(t *testing.T) {
	a := newEntity(t, 1, entity.Villain, entity.WithHealth(80))
	b := newEntity(t, 2, entity.Block, entity.WithHealth(50))
	hero := newEntity(t, 3, entity.Hero)

	m := NewModel()
	hits := m.Apply([]physics.Contact{
		{A: a, B: b, Impulse: 30},
		{A: hero, B: a, Impulse: 10},
		{A: nil, B: b, Impulse: 10},
	})
	if hits != 4 {
		t.Fatalf("expected 4 hits, got %d", hits)
	}
	if a.HealthValue() != 40 || b.HealthValue() != 10 {
		t.Fatalf("unexpected health: a=%v b=%v", a.HealthValue(), b.HealthValue())
	}
}

func TestApplySkipsRemovedEntities(t *testing.T) {
	a := newEntity(t, 1, entity.Villain, entity.WithHealth(80))
	b := newEntity(t, 2, entity.Villain, entity.WithHealth(80))
	b.Body = 0

	m := NewModel()
	m.Apply([]physics.Contact{{A: a, B: b, Impulse: 20}})
	if b.HealthValue() != 80 {
		t.Fatalf("removed entity should not take damage, got %v", b.HealthValue())
	}
}

func TestAward(t *testing.T) {
	villain := newEntity(t, 1, entity.Villain, entity.WithHealth(40), entity.WithCalories(590))
	other := newEntity(t, 2, entity.Villain, entity.WithHealth(60), entity.WithCalories(420))
	block := newEntity(t, 3, entity.Block, entity.WithHealth(100))
	ground := newEntity(t, 4, entity.Ground)

	m := NewModel()
	cases := []struct {
		name  string
		e     *entity.Entity
		added float64
		score float64
	}{
		{"villain", villain, 590, 590},
		{"villain_again", villain, 0, 590},
		{"block", block, 0, 590},
		{"ground", ground, 0, 590},
		{"second_villain", other, 420, 1010},
		{"nil", nil, 0, 1010},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := m.Award(c.e); got != c.added {
				t.Fatalf("expected %v added, got %v", c.added, got)
			}
			if m.Score() != c.score {
				t.Fatalf("expected score %v, got %v", c.score, m.Score())
			}
		})
	}
}
