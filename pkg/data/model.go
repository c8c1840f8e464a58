package data

import (
	"encoding/json"
	"fmt"
	"strings"
)

// TeacherID identifies a teacher inside a course dataset. Datasets write it
// either as a JSON number or as a string.
type TeacherID string

func (id *TeacherID) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		*id = ""
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("teacher id: %w", err)
		}
		*id = TeacherID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("teacher id: %w", err)
	}
	*id = TeacherID(n.String())
	return nil
}

func (id TeacherID) String() string {
	return string(id)
}

type Lecture struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url"`
}

// Class is addressed by its position inside Teacher.Classes, not by name.
type Class struct {
	Name     string    `json:"name"`
	Lectures []Lecture `json:"lectures"`
}

type Teacher struct {
	ID      TeacherID `json:"id"`
	Name    string    `json:"name"`
	Image   string    `json:"image"`
	Subject string    `json:"subject"`
	Classes []Class   `json:"classes"`
}

// Course is one teacher-list dataset, e.g. a year of recorded lectures.
type Course struct {
	Key      string    `json:"key"`
	Title    string    `json:"title"`
	Teachers []Teacher `json:"teachers"`
}

// Teacher returns the teacher with the given id, or nil.
func (c *Course) Teacher(id TeacherID) *Teacher {
	if c == nil {
		return nil
	}
	for i := range c.Teachers {
		if c.Teachers[i].ID == id {
			return &c.Teachers[i]
		}
	}
	return nil
}

type Material struct {
	Title       string `json:"title"`
	Subject     string `json:"subject"`
	Image       string `json:"image"`
	DownloadURL string `json:"downloadUrl"`
}

// Materials maps a tab name ("summaries", "notes", ...) to its cards.
type Materials map[string][]Material

type Exam struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DownloadURL string `json:"downloadUrl"`
}

type Chapter struct {
	Name  string `json:"name"`
	Exams []Exam `json:"exams"`
}

type Subject struct {
	Name     string    `json:"name"`
	Chapters []Chapter `json:"chapters"`
}

type ExamArchive struct {
	Subjects []Subject `json:"subjects"`
}

// Subject returns the subject with the given name, or nil.
func (a *ExamArchive) Subject(name string) *Subject {
	if a == nil {
		return nil
	}
	for i := range a.Subjects {
		if strings.EqualFold(a.Subjects[i].Name, name) {
			return &a.Subjects[i]
		}
	}
	return nil
}

// Catalog holds every dataset loaded at startup. A nil field means the
// dataset was not available.
type Catalog struct {
	Courses      []*Course
	Materials    Materials
	MaterialTabs []string
	Exams        *ExamArchive
}

// Course returns the course with the given key. Courses listed in the
// manifest whose dataset failed to load are present with no teachers.
func (c *Catalog) Course(key string) (*Course, error) {
	if c == nil {
		return nil, ErrDataUnavailable
	}
	for _, course := range c.Courses {
		if course != nil && course.Key == key {
			if course.Teachers == nil {
				return nil, fmt.Errorf("course %s: %w", key, ErrDataUnavailable)
			}
			return course, nil
		}
	}
	return nil, fmt.Errorf("course %s: %w", key, ErrDataUnavailable)
}
