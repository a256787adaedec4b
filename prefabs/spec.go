package prefabs

import (
	"fmt"
	"sort"

	"github.com/milk9111/junkfoodwar/entity"
	"gopkg.in/yaml.v3"
)

const DefinitionsFile = "definitions.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// DefinitionSpec is one named material.
type DefinitionSpec struct {
	Density     float64 `yaml:"density"`
	Friction    float64 `yaml:"friction"`
	Restitution float64 `yaml:"restitution"`
	Image       string  `yaml:"image"`
}

type DefinitionsSpec struct {
	Definitions map[string]DefinitionSpec `yaml:"definitions"`
}

// LoadDefinitions reads definitions.yaml and returns one shared Definition
// per material name.
func LoadDefinitions() (map[string]*entity.Definition, error) {
	spec, err := LoadSpec[DefinitionsSpec](DefinitionsFile)
	if err != nil {
		return nil, err
	}
	return BuildDefinitions(spec)
}

func BuildDefinitions(spec DefinitionsSpec) (map[string]*entity.Definition, error) {
	names := make([]string, 0, len(spec.Definitions))
	for name := range spec.Definitions {
		names = append(names, name)
	}
	sort.Strings(names)

	defs := make(map[string]*entity.Definition, len(names))
	for _, name := range names {
		d := spec.Definitions[name]
		if d.Density < 0 || d.Friction < 0 || d.Restitution < 0 {
			return nil, fmt.Errorf("prefabs: definition %q: negative material value", name)
		}
		defs[name] = &entity.Definition{
			Name:        name,
			Density:     d.Density,
			Friction:    d.Friction,
			Restitution: d.Restitution,
			Image:       d.Image,
		}
	}
	return defs, nil
}
