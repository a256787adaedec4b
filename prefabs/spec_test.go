package prefabs

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefinitions(t *testing.T) {
	defs, err := LoadDefinitions()
	if err != nil {
		t.Fatalf("LoadDefinitions: %v", err)
	}

	for _, name := range []string{"dirt", "wood", "glass", "burger", "sodacan", "fries", "apple", "orange", "strawberry"} {
		d, ok := defs[name]
		if !ok {
			t.Fatalf("missing definition %q", name)
		}
		if d.Name != name {
			t.Fatalf("definition %q has name %q", name, d.Name)
		}
		if d.Density <= 0 {
			t.Fatalf("definition %q density = %v", name, d.Density)
		}
	}

	if got := defs["glass"].Density; got != 2.4 {
		t.Fatalf("glass density = %v, want 2.4", got)
	}
}

func TestBuildDefinitionsRejectsNegative(t *testing.T) {
	spec := DefinitionsSpec{Definitions: map[string]DefinitionSpec{
		"bad": {Density: 1, Friction: -0.1},
	}}
	if _, err := BuildDefinitions(spec); err == nil {
		t.Fatalf("expected error for negative friction")
	}
}

func TestCleanPrefabPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"definitions.yaml", "definitions.yaml"},
		{"prefabs/definitions.yaml", "definitions.yaml"},
	}
	for _, tt := range tests {
		if got := cleanPrefabPath(tt.in); got != tt.want {
			t.Fatalf("cleanPrefabPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		want Change
		ok   bool
	}{
		{"levels/level1.yaml", Change{Kind: ChangeLevel, Path: "levels/level1.yaml", Name: "level1"}, true},
		{"levels/level2.YML", Change{Kind: ChangeLevel, Path: "levels/level2.YML", Name: "level2"}, true},
		{"prefabs/definitions.yaml", Change{Kind: ChangeDefinitions, Path: "prefabs/definitions.yaml", Name: "definitions"}, true},
		{"assets/burger.png", Change{Kind: ChangeImage, Path: "assets/burger.png", Name: "burger.png"}, true},
		{"levels/notes.txt", Change{}, false},
		{"levels/level1.yaml~", Change{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := Classify(tt.path)
			if ok != tt.ok || got != tt.want {
				t.Fatalf("Classify(%q) = %+v, %v, want %+v, %v", tt.path, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestWatcherReportsChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	target := filepath.Join(dir, "level1.yaml")
	if err := os.WriteFile(target, []byte("name: level1\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case change := <-w.Events:
		if change.Path != target || change.Kind != ChangeLevel || change.Name != "level1" {
			t.Fatalf("change = %+v, want level1 at %q", change, target)
		}
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatalf("no event for %s", target)
	}
}

func TestWatcherCloseWithFullBuffer(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}

	for i := 0; i < 3*eventBuffer; i++ {
		name := filepath.Join(dir, fmt.Sprintf("level%d.yaml", i))
		if err := os.WriteFile(name, []byte("name: x\n"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	deadline := time.Now().Add(2 * time.Second)
	for len(w.Events) < cap(w.Events) && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if len(w.Events) != cap(w.Events) {
		t.Fatalf("queued %d changes, want a full buffer of %d", len(w.Events), cap(w.Events))
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}

	n := 0
	for range w.Events {
		n++
	}
	if n != eventBuffer {
		t.Fatalf("drained %d changes after Close, want %d", n, eventBuffer)
	}
	if _, ok := <-w.Errors; ok {
		t.Fatalf("Errors still open after Close")
	}
}
