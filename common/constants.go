package common

// Base resolution of the play area. The window scales it.
const (
	BaseWidth  = 640
	BaseHeight = 480
)
