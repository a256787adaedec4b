package input

import (
	"sync"
	"testing"
)

func TestMouseDragLifecycle(t *testing.T) {
	m := NewMouse()

	steps := []struct {
		name string
		do   func()
		want Snapshot
	}{
		{"move_up", func() { m.Move(100, 200) }, Snapshot{X: 100, Y: 200}},
		{"press", m.Press, Snapshot{X: 100, Y: 200, Down: true}},
		{"same_position", func() { m.Move(100, 200) }, Snapshot{X: 100, Y: 200, Down: true}},
		{"drag", func() { m.Move(90, 210) }, Snapshot{X: 90, Y: 210, Down: true, Dragging: true}},
		{"release", m.Release, Snapshot{X: 90, Y: 210}},
		{"move_after_release", func() { m.Move(50, 50) }, Snapshot{X: 50, Y: 50}},
		{"press_again", m.Press, Snapshot{X: 50, Y: 50, Down: true}},
		{"drag_again", func() { m.Move(60, 50) }, Snapshot{X: 60, Y: 50, Down: true, Dragging: true}},
		{"leave", m.Leave, Snapshot{X: 60, Y: 50}},
	}

	for _, s := range steps {
		s.do()
		if got := m.Snapshot(); got != s.want {
			t.Fatalf("%s: expected %+v, got %+v", s.name, s.want, got)
		}
	}
}

func TestMouseConcurrentEvents(t *testing.T) {
	m := NewMouse()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Press()
				m.Move(float64(i), float64(j))
				m.Release()
				_ = m.Snapshot()
			}
		}(i)
	}
	wg.Wait()

	if s := m.Snapshot(); s.Down || s.Dragging {
		t.Fatalf("every press was released, got %+v", s)
	}
}
