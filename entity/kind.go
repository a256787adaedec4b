package entity

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownKind  = errors.New("entity: unknown kind")
	ErrUnknownShape = errors.New("entity: unknown shape")
	ErrInvalidShape = errors.New("entity: invalid shape dimensions")
	ErrNoHealth     = errors.New("entity: villain has no full health")
)

// Kind classifies an entity. The set is closed: every consumer switches on it.
type Kind uint8

const (
	Ground Kind = iota + 1
	Block
	Hero
	Villain
)

func (k Kind) String() string {
	switch k {
	case Ground:
		return "ground"
	case Block:
		return "block"
	case Hero:
		return "hero"
	case Villain:
		return "villain"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Valid reports whether k is one of the four known kinds.
func (k Kind) Valid() bool {
	return k >= Ground && k <= Villain
}

// ParseKind maps a level description type name to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ground":
		return Ground, nil
	case "block":
		return Block, nil
	case "hero":
		return Hero, nil
	case "villain":
		return Villain, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}
