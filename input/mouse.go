package input

import "sync"

// Snapshot is the pointer state read once per tick. X and Y are screen
// coordinates inside the canvas.
type Snapshot struct {
	X        float64
	Y        float64
	Down     bool
	Dragging bool
}

// Mouse collects pointer events. Events may arrive from any goroutine; the
// level only ever reads a Snapshot.
type Mouse struct {
	mu    sync.Mutex
	state Snapshot
}

func NewMouse() *Mouse {
	return &Mouse{}
}

// Move records a new pointer position. Moving while pressed starts a drag.
func (m *Mouse) Move(x, y float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if x == m.state.X && y == m.state.Y {
		return
	}
	m.state.X = x
	m.state.Y = y
	if m.state.Down {
		m.state.Dragging = true
	}
}

func (m *Mouse) Press() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Down = true
}

func (m *Mouse) Release() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Down = false
	m.state.Dragging = false
}

// Leave handles the pointer leaving the canvas, which ends any press.
func (m *Mouse) Leave() {
	m.Release()
}

func (m *Mouse) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}
