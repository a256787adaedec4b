package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var LevelsFS embed.FS

// Dir is the on-disk directory checked before the embedded copy.
const Dir = "levels"

var ErrUnknownLevel = errors.New("levels: unknown level")

// Names returns the embedded level names in play order.
func Names() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !isLevelFile(e.Name()) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	sort.Strings(names)
	return names
}

// Load reads and parses the named level. A file of the same name under Dir
// wins over the embedded copy.
func Load(name string) (*Description, error) {
	file := levelFile(name)
	data, err := os.ReadFile(filepath.Join(Dir, file))
	if err != nil {
		data, err = LevelsFS.ReadFile(file)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", ErrUnknownLevel, name)
			}
			return nil, fmt.Errorf("levels: read %s: %w", file, err)
		}
	}
	desc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", name, err)
	}
	if desc.Name == "" {
		desc.Name = strings.TrimSuffix(file, path.Ext(file))
	}
	return desc, nil
}

// Parse decodes a level document and fills in the scene defaults.
func Parse(data []byte) (*Description, error) {
	var desc Description
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	desc.applyDefaults()
	return &desc, nil
}

// NameFromPath maps a watched file path back to a level name, or "" when the
// path is not a level file.
func NameFromPath(p string) string {
	base := filepath.Base(p)
	if !isLevelFile(base) {
		return ""
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func levelFile(name string) string {
	clean := filepath.ToSlash(name)
	clean = strings.TrimPrefix(clean, Dir+"/")
	if isLevelFile(clean) {
		return clean
	}
	return clean + ".yaml"
}

func isLevelFile(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
