package damage

import (
	"github.com/milk9111/junkfoodwar/entity"
	"github.com/milk9111/junkfoodwar/physics"
)

// Threshold is the impulse at or below which a contact does no damage.
const Threshold = 5.0

// Model turns contact impulses into health loss and removed villains into
// score.
type Model struct {
	score   float64
	awarded map[int]struct{}
}

func NewModel() *Model {
	return &Model{awarded: make(map[int]struct{})}
}

// Apply subtracts each contact's impulse from the health of both
// participants. It must run after the physics step, never inside it. It
// returns the number of health decrements made.
func (m *Model) Apply(contacts []physics.Contact) int {
	hits := 0
	for _, c := range contacts {
		if c.Impulse <= Threshold {
			continue
		}
		for _, e := range [2]*entity.Entity{c.A, c.B} {
			if e == nil || !e.HasBody() {
				continue
			}
			if e.Damage(c.Impulse) {
				hits++
			}
		}
	}
	return hits
}

// Award adds the calories of a removed villain to the score. Each entity is
// counted once; other kinds never score. It returns the amount added.
func (m *Model) Award(e *entity.Entity) float64 {
	if m == nil || e == nil || e.Kind != entity.Villain {
		return 0
	}
	if m.awarded == nil {
		m.awarded = make(map[int]struct{})
	}
	if _, ok := m.awarded[e.ID]; ok {
		return 0
	}
	m.awarded[e.ID] = struct{}{}
	if e.Calories <= 0 {
		return 0
	}
	m.score += e.Calories
	return e.Calories
}

func (m *Model) Score() float64 {
	if m == nil {
		return 0
	}
	return m.score
}
