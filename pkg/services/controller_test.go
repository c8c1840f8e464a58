package services

import (
	"context"
	"errors"
	"testing"

	"github.com/kerbaras/lectures/pkg/data"
	"github.com/kerbaras/lectures/pkg/progress"
	"github.com/kerbaras/lectures/pkg/video"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockLoader struct {
	loadFunc func(ctx context.Context) (*data.Catalog, error)
	calls    int
}

func (m *mockLoader) Load(ctx context.Context) (*data.Catalog, error) {
	m.calls++
	if m.loadFunc != nil {
		return m.loadFunc(ctx)
	}
	return testCatalog(), nil
}

func testCatalog() *data.Catalog {
	return &data.Catalog{
		Courses: []*data.Course{
			{Key: "abwab2026", Title: "2026", Teachers: []data.Teacher{
				{ID: "1", Name: "Ali", Classes: []data.Class{
					{Name: "Mechanics", Lectures: []data.Lecture{
						{Title: "Intro", URL: "https://iframe.mediadelivery.net/embed/219301/3f2b8c1e-7d4a-4e6b-9a1c-2d5e8f0b7c41"},
						{Title: "Broken", URL: "https://example.com/watch"},
					}},
				}},
			}},
			{Key: "iraq2025", Title: "2025"},
		},
		Exams: &data.ExamArchive{Subjects: []data.Subject{{Name: "Physics"}}},
	}
}

func newTestController(t *testing.T) *LectureController {
	t.Helper()
	store := progress.NewStore(data.NewMemoryStore(), zap.NewNop())
	c := NewLectureController(&mockLoader{}, store, NewPlayer(video.NewResolver("https://proxy.test/")), zap.NewNop())
	require.NoError(t, c.Load(context.Background()))
	return c
}

func TestControllerLoad(t *testing.T) {
	loader := &mockLoader{loadFunc: func(context.Context) (*data.Catalog, error) {
		return nil, errors.New("boom")
	}}
	c := NewLectureController(loader, nil, nil, nil)

	assert.Error(t, c.Load(context.Background()))
	assert.NotNil(t, c.Catalog(), "catalog stays usable after a failed load")
	assert.Equal(t, 1, loader.calls)
}

func TestControllerLookups(t *testing.T) {
	c := newTestController(t)

	course, teacher, err := c.Teacher("abwab2026", "1")
	require.NoError(t, err)
	assert.Equal(t, "abwab2026", course.Key)
	assert.Equal(t, "Ali", teacher.Name)

	_, _, err = c.Teacher("abwab2026", "99")
	assert.ErrorIs(t, err, ErrNotFound)

	_, _, err = c.Teacher("iraq2025", "1")
	assert.ErrorIs(t, err, data.ErrDataUnavailable)

	subject, err := c.Subject("physics")
	require.NoError(t, err)
	assert.Equal(t, "Physics", subject.Name)

	_, err = c.Subject("history")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLectureBounds(t *testing.T) {
	teacher := &testCatalog().Courses[0].Teachers[0]

	lecture, err := Lecture(teacher, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, "Broken", lecture.Title)

	for _, idx := range [][2]int{{-1, 0}, {1, 0}, {0, 2}, {0, -1}} {
		_, err := Lecture(teacher, idx[0], idx[1])
		assert.ErrorIs(t, err, ErrNotFound)
	}
	_, err = Lecture(nil, 0, 0)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestControllerToggleAndMark(t *testing.T) {
	c := newTestController(t)

	done, err := c.Toggle("abwab2026", "1", 0, "Intro")
	require.NoError(t, err)
	assert.True(t, done)
	assert.True(t, c.Progress().IsCompleted("1", 0, "Intro"))

	added, err := c.Mark("abwab2026", "1", 0, "Intro")
	require.NoError(t, err)
	assert.False(t, added)

	_, err = c.Toggle("abwab2026", "1", 0, "Missing")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = c.Mark("abwab2026", "1", 3, "Intro")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestControllerPrepare(t *testing.T) {
	c := newTestController(t)
	_, teacher, err := c.Teacher("abwab2026", "1")
	require.NoError(t, err)

	ref, err := c.Prepare(teacher, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "3f2b8c1e-7d4a-4e6b-9a1c-2d5e8f0b7c41", ref.VideoID)
	assert.Equal(t, "https://proxy.test/3f2b8c1e-7d4a-4e6b-9a1c-2d5e8f0b7c41", ref.StreamURL)
	assert.Equal(t, data.TeacherID("1"), ref.TeacherID)

	_, err = c.Prepare(teacher, 0, 1)
	assert.ErrorIs(t, err, video.ErrNoVideoID)
	assert.False(t, c.Progress().IsCompleted("1", 0, "Broken"))
}
