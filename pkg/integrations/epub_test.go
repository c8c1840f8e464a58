package integrations

import (
	"archive/zip"
	"io"
	"strings"
	"testing"

	"github.com/kerbaras/lectures/pkg/data"
	"github.com/kerbaras/lectures/pkg/progress"
	"github.com/kerbaras/lectures/pkg/video"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testTeacher() *data.Teacher {
	return &data.Teacher{
		ID:      "1",
		Name:    "Ali",
		Subject: "Physics",
		Classes: []data.Class{
			{Name: "Capacitors", Lectures: []data.Lecture{
				{Title: "Intro <1>", Description: "first", URL: "https://iframe.mediadelivery.net/embed/1/3f2b8c1e-7d4a-4e6b-9a1c-2d5e8f0b7c41"},
				{Title: "No video", URL: "https://example.com/"},
			}},
			{Name: "Induction", Lectures: []data.Lecture{{Title: "Faraday"}}},
		},
	}
}

func readEPub(t *testing.T, path string) string {
	t.Helper()
	r, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	var all strings.Builder
	for _, f := range r.File {
		if !strings.HasSuffix(f.Name, ".xhtml") {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		b, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)
		all.Write(b)
	}
	return all.String()
}

func TestExportSyllabus(t *testing.T) {
	store := progress.NewStore(data.NewMemoryStore(), zap.NewNop())
	store.Toggle("1", 0, "Intro <1>")

	builder := NewSyllabusBuilder(t.TempDir(), video.NewResolver("https://proxy.test"), "en")
	path, err := builder.Export(&data.Course{Title: "2026"}, testTeacher(), store)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, "Ali - 2026.epub"))

	content := readEPub(t, path)
	assert.Contains(t, content, "Capacitors")
	assert.Contains(t, content, "Induction")
	assert.Contains(t, content, "☑ Intro &lt;1&gt;")
	assert.Contains(t, content, "☐ No video")
	assert.Contains(t, content, "https://proxy.test/3f2b8c1e-7d4a-4e6b-9a1c-2d5e8f0b7c41")
	assert.Contains(t, content, "50% (1/2)")
}

func TestExportErrors(t *testing.T) {
	store := progress.NewStore(data.NewMemoryStore(), nil)
	builder := NewSyllabusBuilder(t.TempDir(), video.NewResolver(""), "")

	_, err := builder.Export(nil, nil, store)
	assert.Error(t, err)

	_, err = builder.Export(nil, &data.Teacher{ID: "2", Name: "Empty"}, store)
	assert.Error(t, err)
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "a_b_c", sanitizeFilename("a/b:c"))
	assert.Equal(t, "syllabus", sanitizeFilename(" .. "))
}
