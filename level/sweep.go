package level

import "github.com/milk9111/junkfoodwar/entity"

// sweep removes dynamic entities that left the playfield or ran out of
// health.
func (l *Level) sweep() {
	for _, e := range l.entities {
		if !e.HasBody() || e.IsStatic() {
			continue
		}
		x := l.phys.Position(e.Body).X
		if x < 0 || x > l.maxWidth || !e.Alive() {
			l.destroy(e)
		}
	}
}

// destroy releases e's body and drops it from the hero queue and villain
// list. Destroyed villains score. Calling it twice is a no-op.
func (l *Level) destroy(e *entity.Entity) {
	if !e.HasBody() {
		return
	}
	l.phys.DestroyBody(e.Body)
	e.Body = 0

	switch e.Kind {
	case entity.Hero:
		l.heroes = remove(l.heroes, e)
	case entity.Villain:
		l.villains = remove(l.villains, e)
		l.damage.Award(e)
	}
}

func remove(list []*entity.Entity, e *entity.Entity) []*entity.Entity {
	for i, v := range list {
		if v == e {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
