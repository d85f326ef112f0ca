package schema

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// LoadOverrides reads an optional yaml file of extra synonyms per target and
// merges it onto the built-in tables. Built-in candidates keep priority;
// overrides are appended. A missing path returns the built-ins untouched.
func LoadOverrides(path string) (map[Target][]string, error) {
	merged := make(map[Target][]string, len(Synonyms))
	for t, cands := range Synonyms {
		merged[t] = append([]string(nil), cands...)
	}

	if path == "" {
		return merged, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return merged, nil
		}
		return nil, eris.Wrapf(err, "schema: read overrides %s", path)
	}

	var extra map[Target][]string
	if err := yaml.Unmarshal(data, &extra); err != nil {
		return nil, eris.Wrapf(err, "schema: parse overrides %s", path)
	}

	for t, cands := range extra {
		merged[t] = append(merged[t], cands...)
	}

	return merged, nil
}
