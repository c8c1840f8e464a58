package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ManifestFile is the name of the catalog index inside a source.
const ManifestFile = "catalog.yaml"

var defaultTabs = []string{"summaries", "notes", "books"}

type CourseEntry struct {
	Key   string `yaml:"key"`
	Title string `yaml:"title"`
	File  string `yaml:"file"`
}

// Manifest lists the dataset files that make up a catalog.
type Manifest struct {
	Courses   []CourseEntry `yaml:"courses"`
	Materials string        `yaml:"materials"`
	Exams     string        `yaml:"exams"`
	Tabs      []string      `yaml:"tabs"`
}

func ParseManifest(b []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	seen := make(map[string]bool, len(m.Courses))
	for i, c := range m.Courses {
		if c.Key == "" || c.File == "" {
			return nil, fmt.Errorf("parse manifest: course %d needs key and file", i)
		}
		if seen[c.Key] {
			return nil, fmt.Errorf("parse manifest: duplicate course %q", c.Key)
		}
		seen[c.Key] = true
	}
	if len(m.Tabs) == 0 {
		m.Tabs = append([]string(nil), defaultTabs...)
	}
	return &m, nil
}
