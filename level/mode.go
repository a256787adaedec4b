package level

import "fmt"

type Mode uint8

const (
	ModeIntro Mode = iota
	ModeLoadNextHero
	ModeWaitForFiring
	ModeFiring
	ModeFired
	ModeLevelSuccess
	ModeLevelFailure
)

func (m Mode) String() string {
	switch m {
	case ModeIntro:
		return "intro"
	case ModeLoadNextHero:
		return "load-next-hero"
	case ModeWaitForFiring:
		return "wait-for-firing"
	case ModeFiring:
		return "firing"
	case ModeFired:
		return "fired"
	case ModeLevelSuccess:
		return "level-success"
	case ModeLevelFailure:
		return "level-failure"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// Terminal reports whether the level has been decided.
func (m Mode) Terminal() bool {
	return m == ModeLevelSuccess || m == ModeLevelFailure
}

type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeSuccess
	OutcomeFailure
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	default:
		return "none"
	}
}
