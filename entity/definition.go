package entity

// Definition is the physical material of an entity. Entities of the same
// material share one Definition by pointer and never modify it.
type Definition struct {
	Name        string
	Density     float64
	Friction    float64
	Restitution float64
	Image       string
}
