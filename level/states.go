package level

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/junkfoodwar/entity"
	"github.com/milk9111/junkfoodwar/input"
)

func (l *Level) runMode(snap input.Snapshot) {
	switch l.mode {
	case ModeIntro:
		if l.cam.PanTo(l.cfg.IntroTarget) {
			l.setMode(ModeLoadNextHero)
		}
	case ModeLoadNextHero:
		l.loadNextHero()
	case ModeWaitForFiring:
		l.waitForFiring(snap)
	case ModeFiring:
		l.firing(snap)
	case ModeFired:
		l.fired()
	default:
		if l.mode.Terminal() && l.cam.PanTo(0) {
			l.finish()
		}
	}
}

func (l *Level) setMode(m Mode) {
	if l.mode == m {
		return
	}
	if l.cfg.Debug {
		log.Printf("level: %s: %s -> %s", l.name, l.mode, m)
	}
	l.mode = m
}

func (l *Level) loadNextHero() {
	if len(l.villains) == 0 {
		l.setMode(ModeLevelSuccess)
		return
	}
	if len(l.heroes) == 0 {
		l.setMode(ModeLevelFailure)
		return
	}

	if l.current == nil || !l.current.HasBody() {
		l.stage(l.heroes[len(l.heroes)-1])
		return
	}
	if !l.phys.IsAwake(l.current.Body) {
		l.setMode(ModeWaitForFiring)
	}
}

// stage drops hero at the rest point above the slingshot.
func (l *Level) stage(hero *entity.Entity) {
	l.current = hero
	h := hero.Body
	l.phys.SetPosition(h, l.slingshot.Add(l.cfg.RestOffset))
	l.phys.SetVelocity(h, cp.Vector{})
	l.phys.SetAngularVelocity(h, 0)
	l.phys.Wake(h)
}

func (l *Level) waitForFiring(snap input.Snapshot) {
	if l.heroLost() {
		return
	}
	if !snap.Dragging {
		l.cam.PanTo(l.slingshot.X)
		return
	}
	if l.pointerOnHero(snap) {
		l.setMode(ModeFiring)
		return
	}
	l.cam.PanTo(snap.X + l.cam.Offset)
}

func (l *Level) firing(snap input.Snapshot) {
	if l.heroLost() {
		return
	}
	h := l.current.Body
	if snap.Down {
		l.cam.PanTo(l.slingshot.X)
		l.phys.SetPosition(h, l.drawPoint(snap))
		l.phys.SetVelocity(h, cp.Vector{})
		l.phys.SetAngularVelocity(h, 0)
		return
	}

	l.phys.ApplyImpulse(h, l.launchImpulse(snap), l.phys.CenterOfMass(h))
	l.setMode(ModeFired)
}

func (l *Level) fired() {
	if l.heroLost() {
		return
	}
	h := l.current.Body
	pos := l.phys.Position(h)
	l.cam.PanTo(pos.X)

	if !l.phys.IsAwake(h) || pos.X < 0 || pos.X > l.maxWidth {
		l.destroy(l.current)
		l.current = nil
		l.setMode(ModeLoadNextHero)
	}
}

// heroLost moves on to the next hero when the current one no longer has a
// body.
func (l *Level) heroLost() bool {
	if l.current != nil && l.current.HasBody() {
		return false
	}
	l.current = nil
	l.setMode(ModeLoadNextHero)
	return true
}

func (l *Level) pointerWorld(snap input.Snapshot) cp.Vector {
	return cp.Vector{X: snap.X + l.cam.Offset, Y: snap.Y}
}

func (l *Level) pointerOnHero(snap input.Snapshot) bool {
	if l.current == nil || !l.current.HasBody() {
		return false
	}
	r := l.current.Shape.Extent()
	return l.pointerWorld(snap).DistanceSq(l.phys.Position(l.current.Body)) <= r*r
}

// drawPoint is the pointer in world space, held within MaxDrawDistance of
// the launch anchor.
func (l *Level) drawPoint(snap input.Snapshot) cp.Vector {
	anchor := l.LaunchAnchor()
	p := l.pointerWorld(snap)
	return anchor.Add(p.Sub(anchor).Clamp(l.cfg.MaxDrawDistance))
}

// launchImpulse uses the raw pointer. The draw clamp only limits where the
// hero is held.
func (l *Level) launchImpulse(snap input.Snapshot) cp.Vector {
	return l.LaunchAnchor().Sub(l.pointerWorld(snap)).Mult(l.cfg.ImpulseScale)
}

func (l *Level) finish() {
	if l.ended {
		return
	}
	l.ended = true
	if l.mode == ModeLevelSuccess {
		l.outcome = OutcomeSuccess
	} else {
		l.outcome = OutcomeFailure
	}
	log.Printf("level: %s: %s, score %.0f", l.name, l.outcome, l.Score())
	if l.onEnd != nil {
		l.onEnd(l.outcome, l.Score())
	}
}
