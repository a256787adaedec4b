package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/junkfoodwar/common"
	"github.com/milk9111/junkfoodwar/input"
)

// pollMouse feeds this frame's cursor state into m. Leaving the canvas ends
// any press.
func pollMouse(m *input.Mouse) {
	cx, cy := ebiten.CursorPosition()
	if cx < 0 || cy < 0 || cx >= common.BaseWidth || cy >= common.BaseHeight {
		m.Leave()
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		m.Press()
	}
	m.Move(float64(cx), float64(cy))
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		m.Release()
	}
}
