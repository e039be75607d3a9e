package extension

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadRegistry builds a Registry from a directory of extension
// definitions. Each extension type is a pair of files named
// "<type>.context.json" and "<type>.schema.json", where <type> is the
// extension type's local name (e.g. "ApplyLink" for
// "extensions:ApplyLink"). An empty dir yields an empty registry — the
// extension mechanism is opt-in (spec.md §4.9 inputs).
func LoadRegistry(dir string) (Registry, error) {
	if dir == "" {
		return NewRegistry(nil), nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return Registry{}, fmt.Errorf("reading extensions directory %s: %w", dir, err)
	}

	var defs []Definition
	seen := map[string]bool{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name, ok := strings.CutSuffix(e.Name(), ".context.json")
		if !ok || seen[name] {
			continue
		}
		seen[name] = true

		context, err := readJSONObject(filepath.Join(dir, name+".context.json"))
		if err != nil {
			return Registry{}, err
		}
		schema, err := readJSONObject(filepath.Join(dir, name+".schema.json"))
		if err != nil {
			return Registry{}, err
		}

		defs = append(defs, Definition{
			Type:    "extensions:" + name,
			Context: context,
			Schema:  schema,
		})
	}

	return NewRegistry(defs), nil
}

func readJSONObject(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return obj, nil
}
