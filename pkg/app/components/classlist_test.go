package components

import (
	"testing"

	"github.com/kerbaras/lectures/pkg/data"
	"github.com/kerbaras/lectures/pkg/locale"
	"github.com/kerbaras/lectures/pkg/progress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func fiveLectureTeacher() *data.Teacher {
	lectures := []data.Lecture{{Title: "L1"}, {Title: "L2"}, {Title: "L3"}, {Title: "L4"}, {Title: "L5"}}
	return &data.Teacher{
		ID: "1",
		Classes: []data.Class{
			{Name: "Mechanics", Lectures: lectures},
			{Name: "Empty"},
		},
	}
}

func TestClassListProgressLabel(t *testing.T) {
	store := progress.NewStore(data.NewMemoryStore(), zap.NewNop())
	store.Toggle("1", 0, "L1")
	store.Toggle("1", 0, "L3")

	list := NewClassList(fiveLectureTeacher())

	view := list.View(store, locale.MustNew(locale.English))
	assert.Contains(t, view, "40% complete (2/5)")
	assert.Contains(t, view, "0% complete (0/0)")

	view = list.View(store, locale.MustNew(locale.Arabic))
	assert.Contains(t, view, "40% مكتمل (2/5)")
}

func TestClassListExpand(t *testing.T) {
	store := progress.NewStore(data.NewMemoryStore(), zap.NewNop())
	store.Toggle("1", 0, "L2")
	list := NewClassList(fiveLectureTeacher())
	tr := locale.MustNew(locale.English)

	assert.Len(t, list.Rows(), 2)
	assert.NotContains(t, list.View(store, tr), "L1")

	list.ToggleExpand()
	assert.Len(t, list.Rows(), 7)
	view := list.View(store, tr)
	assert.Contains(t, view, "L5")
	assert.Contains(t, view, "✓ ▶ L2")
	assert.Contains(t, view, "○ ▶ L1")

	list.Next()
	list.Next()
	row, ok := list.Selected()
	require.True(t, ok)
	assert.Equal(t, Row{Group: 0, Entry: 1}, row)

	// Collapsing from a lecture row returns the cursor to the class header.
	list.ToggleExpand()
	row, _ = list.Selected()
	assert.True(t, row.IsHeader())
	assert.Equal(t, 0, row.Group)
	assert.Len(t, list.Rows(), 2)
}

func TestClassListEmpty(t *testing.T) {
	list := NewClassList(&data.Teacher{ID: "2"})
	assert.Contains(t, list.View(progress.NewStore(data.NewMemoryStore(), nil), locale.MustNew(locale.English)), "No lectures available")

	_, ok := list.Selected()
	assert.False(t, ok)
}

func TestChapterList(t *testing.T) {
	subject := &data.Subject{Name: "Physics", Chapters: []data.Chapter{
		{Name: "Chapter 1", Exams: []data.Exam{{Title: "2024 first round", Description: "capacitors", DownloadURL: "https://x/a.pdf"}}},
		{Name: "Chapter 2"},
	}}
	list := NewChapterList(subject)
	tr := locale.MustNew(locale.English)

	_, ok := list.SelectedExam()
	assert.False(t, ok)

	list.ToggleExpand()
	list.Next()
	exam, ok := list.SelectedExam()
	require.True(t, ok)
	assert.Equal(t, "https://x/a.pdf", exam.DownloadURL)

	view := list.View(tr)
	assert.Contains(t, view, "2024 first round")
	assert.Contains(t, view, "Download")

	list.Next()
	list.ToggleExpand()
	assert.Contains(t, list.View(tr), "No exams available")
}
