package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/milk9111/junkfoodwar/levels"
	"github.com/milk9111/junkfoodwar/prefabs"
)

func TestCheckEmbeddedLevels(t *testing.T) {
	defs, err := prefabs.LoadDefinitions()
	if err != nil {
		t.Fatalf("LoadDefinitions: %v", err)
	}

	for _, name := range levels.Names() {
		var out bytes.Buffer
		if err := check(&out, name, defs, 120); err != nil {
			t.Fatalf("check(%s): %v\n%s", name, err, out.String())
		}
		if !strings.Contains(out.String(), "after 120 frames") {
			t.Fatalf("check(%s) output missing simulation line:\n%s", name, out.String())
		}
	}
}

func TestCheckUnknownLevel(t *testing.T) {
	var out bytes.Buffer
	if err := check(&out, "no-such-level", nil, 0); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
