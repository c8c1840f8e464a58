package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/kerbaras/lectures/pkg/data"
	"go.uber.org/zap"
)

type Loader struct {
	source Source
	logger *zap.Logger
}

func NewLoader(source Source, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{source: source, logger: logger}
}

func (l *Loader) Source() Source {
	return l.source
}

// Load reads the manifest and every dataset it names. Only a missing or
// broken manifest is an error; a dataset that fails to load is logged and
// left empty so the rest of the catalog stays usable.
func (l *Loader) Load(ctx context.Context) (*data.Catalog, error) {
	raw, err := l.source.ReadFile(ctx, ManifestFile)
	if err != nil {
		return nil, fmt.Errorf("read %s from %s: %w", ManifestFile, l.source, err)
	}
	manifest, err := ParseManifest(raw)
	if err != nil {
		return nil, err
	}

	catalog := &data.Catalog{}
	for _, entry := range manifest.Courses {
		course := &data.Course{Key: entry.Key, Title: entry.Title}
		var payload struct {
			Teachers []data.Teacher `json:"teachers"`
		}
		if l.readJSON(ctx, entry.File, &payload) {
			course.Teachers = payload.Teachers
			if course.Teachers == nil {
				course.Teachers = []data.Teacher{}
			}
		}
		catalog.Courses = append(catalog.Courses, course)
	}

	if manifest.Materials != "" {
		var materials data.Materials
		if l.readJSON(ctx, manifest.Materials, &materials) && materials != nil {
			catalog.Materials = materials
			catalog.MaterialTabs = materialTabs(manifest.Tabs, materials)
		}
	}

	if manifest.Exams != "" {
		var exams data.ExamArchive
		if l.readJSON(ctx, manifest.Exams, &exams) {
			catalog.Exams = &exams
		}
	}

	l.logger.Info("catalog loaded",
		zap.Stringer("source", l.source),
		zap.Int("courses", len(catalog.Courses)),
		zap.Bool("materials", catalog.Materials != nil),
		zap.Bool("exams", catalog.Exams != nil))
	return catalog, nil
}

func (l *Loader) readJSON(ctx context.Context, name string, v any) bool {
	raw, err := l.source.ReadFile(ctx, name)
	if err != nil {
		l.logger.Warn("dataset unavailable", zap.String("file", name), zap.Error(err))
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		l.logger.Warn("dataset malformed", zap.String("file", name), zap.Error(err))
		return false
	}
	return true
}

// materialTabs keeps the manifest order and appends any extra tab found in
// the dataset, sorted.
func materialTabs(declared []string, materials data.Materials) []string {
	tabs := append([]string(nil), declared...)
	known := make(map[string]bool, len(tabs))
	for _, tab := range tabs {
		known[tab] = true
	}
	var extra []string
	for tab := range materials {
		if !known[tab] {
			extra = append(extra, tab)
		}
	}
	sort.Strings(extra)
	return append(tabs, extra...)
}
