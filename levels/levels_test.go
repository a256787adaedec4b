package levels

import (
	"errors"
	"math"
	"testing"

	"github.com/milk9111/junkfoodwar/entity"
)

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 2 || names[0] != "level1" || names[1] != "level2" {
		t.Fatalf("Names() = %v, want [level1 level2]", names)
	}
}

func TestLoadEmbedded(t *testing.T) {
	for _, name := range Names() {
		desc, err := Load(name)
		if err != nil {
			t.Fatalf("Load(%q): %v", name, err)
		}
		if desc.Name != name {
			t.Fatalf("Load(%q).Name = %q", name, desc.Name)
		}

		var heroes, villains int
		for _, e := range desc.Entities {
			if _, err := e.Shape.Shape(); err != nil {
				t.Fatalf("%s: %s: %v", name, e, err)
			}
			switch e.Type {
			case "hero":
				heroes++
			case "villain":
				villains++
			}
		}
		if heroes == 0 || villains == 0 {
			t.Fatalf("%s: heroes=%d villains=%d", name, heroes, villains)
		}
	}
}

func TestLoadUnknown(t *testing.T) {
	_, err := Load("no-such-level")
	if !errors.Is(err, ErrUnknownLevel) {
		t.Fatalf("Load(unknown) err = %v, want ErrUnknownLevel", err)
	}
}

func TestParseDefaults(t *testing.T) {
	desc, err := Parse([]byte("entities: []\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if desc.MaxOffset != DefaultMaxOffset {
		t.Fatalf("MaxOffset = %v, want %v", desc.MaxOffset, DefaultMaxOffset)
	}
	if desc.Width() != DefaultWidth {
		t.Fatalf("Width() = %v, want %v", desc.Width(), DefaultWidth)
	}
	if p := desc.SlingshotPoint(); p.X != DefaultSlingshotX || p.Y != DefaultSlingshotY {
		t.Fatalf("SlingshotPoint() = %+v", p)
	}
	if got := desc.Background.Factor(DefaultBackgroundParallax); got != DefaultBackgroundParallax {
		t.Fatalf("Background.Factor = %v", got)
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := Parse([]byte("entities: {")); err == nil {
		t.Fatalf("expected error for malformed yaml")
	}
}

func TestShapeSpec(t *testing.T) {
	tests := []struct {
		name    string
		in      ShapeSpec
		want    entity.ShapeType
		wantErr bool
	}{
		{name: "circle", in: ShapeSpec{Type: "circle", Radius: 25}, want: entity.Circle},
		{name: "rectangle", in: ShapeSpec{Type: "rectangle", Width: 100, Height: 25, Angle: 90}, want: entity.Rectangle},
		{name: "unknown type", in: ShapeSpec{Type: "triangle", Radius: 1}, wantErr: true},
		{name: "zero radius", in: ShapeSpec{Type: "circle"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := tt.in.Shape()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Shape(): %v", err)
			}
			if s.Type != tt.want {
				t.Fatalf("type = %v, want %v", s.Type, tt.want)
			}
			if math.Abs(s.Angle-tt.in.Angle*math.Pi/180) > 1e-12 {
				t.Fatalf("angle = %v", s.Angle)
			}
		})
	}
}

func TestNameFromPath(t *testing.T) {
	if got := NameFromPath("levels/level2.yaml"); got != "level2" {
		t.Fatalf("NameFromPath = %q", got)
	}
	if got := NameFromPath("prefabs/notes.txt"); got != "" {
		t.Fatalf("NameFromPath(txt) = %q", got)
	}
}
