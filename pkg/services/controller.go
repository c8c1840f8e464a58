package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/kerbaras/lectures/pkg/data"
	"github.com/kerbaras/lectures/pkg/navigation"
	"github.com/kerbaras/lectures/pkg/progress"
	"go.uber.org/zap"
)

var ErrNotFound = errors.New("not found")

type CatalogLoader interface {
	Load(ctx context.Context) (*data.Catalog, error)
}

// LectureController answers catalog lookups and applies completion changes
// for both the TUI and the CLI.
type LectureController struct {
	mu       sync.RWMutex
	catalog  *data.Catalog
	loader   CatalogLoader
	progress *progress.Store
	player   *Player
	logger   *zap.Logger
}

func NewLectureController(loader CatalogLoader, store *progress.Store, player *Player, logger *zap.Logger) *LectureController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LectureController{
		catalog:  &data.Catalog{},
		loader:   loader,
		progress: store,
		player:   player,
		logger:   logger,
	}
}

// Load replaces the catalog with a fresh read from the loader.
func (c *LectureController) Load(ctx context.Context) error {
	catalog, err := c.loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	c.SetCatalog(catalog)
	return nil
}

func (c *LectureController) SetCatalog(catalog *data.Catalog) {
	if catalog == nil {
		return
	}
	c.mu.Lock()
	c.catalog = catalog
	c.mu.Unlock()
}

func (c *LectureController) Catalog() *data.Catalog {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.catalog
}

func (c *LectureController) Progress() *progress.Store {
	return c.progress
}

func (c *LectureController) Player() *Player {
	return c.player
}

func (c *LectureController) Course(key string) (*data.Course, error) {
	return c.Catalog().Course(key)
}

func (c *LectureController) Teacher(courseKey string, id data.TeacherID) (*data.Course, *data.Teacher, error) {
	course, err := c.Course(courseKey)
	if err != nil {
		return nil, nil, err
	}
	teacher := course.Teacher(id)
	if teacher == nil {
		return course, nil, fmt.Errorf("teacher %s in %s: %w", id, courseKey, ErrNotFound)
	}
	return course, teacher, nil
}

func (c *LectureController) Subject(name string) (*data.Subject, error) {
	exams := c.Catalog().Exams
	if exams == nil {
		return nil, data.ErrDataUnavailable
	}
	subject := exams.Subject(name)
	if subject == nil {
		return nil, fmt.Errorf("subject %q: %w", name, ErrNotFound)
	}
	return subject, nil
}

// Lecture looks a lecture up by position.
func Lecture(teacher *data.Teacher, classIndex, lectureIndex int) (data.Lecture, error) {
	if teacher == nil || classIndex < 0 || classIndex >= len(teacher.Classes) {
		return data.Lecture{}, fmt.Errorf("class %d: %w", classIndex, ErrNotFound)
	}
	lectures := teacher.Classes[classIndex].Lectures
	if lectureIndex < 0 || lectureIndex >= len(lectures) {
		return data.Lecture{}, fmt.Errorf("lecture %d of class %d: %w", lectureIndex, classIndex, ErrNotFound)
	}
	return lectures[lectureIndex], nil
}

func findTitle(teacher *data.Teacher, classIndex int, title string) error {
	if teacher == nil || classIndex < 0 || classIndex >= len(teacher.Classes) {
		return fmt.Errorf("class %d: %w", classIndex, ErrNotFound)
	}
	for _, lecture := range teacher.Classes[classIndex].Lectures {
		if lecture.Title == title {
			return nil
		}
	}
	return fmt.Errorf("lecture %q: %w", title, ErrNotFound)
}

// Prepare resolves the stream of a lecture for the video page.
func (c *LectureController) Prepare(teacher *data.Teacher, classIndex, lectureIndex int) (*navigation.LectureRef, error) {
	lecture, err := Lecture(teacher, classIndex, lectureIndex)
	if err != nil {
		return nil, err
	}
	ref, err := c.player.Prepare(teacher.ID, classIndex, lectureIndex, lecture)
	if err != nil {
		c.logger.Warn("cannot play lecture",
			zap.Stringer("teacher", teacher.ID),
			zap.Int("class", classIndex),
			zap.String("url", lecture.URL),
			zap.Error(err))
		return nil, err
	}
	return ref, nil
}

// Toggle flips completion of a lecture named by course, teacher, class
// position and title.
func (c *LectureController) Toggle(courseKey string, teacherID data.TeacherID, classIndex int, title string) (bool, error) {
	_, teacher, err := c.Teacher(courseKey, teacherID)
	if err != nil {
		return false, err
	}
	if err := findTitle(teacher, classIndex, title); err != nil {
		return false, err
	}
	return c.progress.Toggle(teacherID, classIndex, title), nil
}

// Mark records a lecture as completed. It reports whether it was newly
// marked.
func (c *LectureController) Mark(courseKey string, teacherID data.TeacherID, classIndex int, title string) (bool, error) {
	_, teacher, err := c.Teacher(courseKey, teacherID)
	if err != nil {
		return false, err
	}
	if err := findTitle(teacher, classIndex, title); err != nil {
		return false, err
	}
	return c.progress.MarkCompleted(teacherID, classIndex, title), nil
}
