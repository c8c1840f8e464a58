package progress

import (
	"math"

	"github.com/kerbaras/lectures/pkg/data"
)

// Checker answers completion lookups. Renderers depend on this rather than
// on *Store so they cannot mutate progress.
type Checker interface {
	IsCompleted(teacherID data.TeacherID, classIndex int, title string) bool
}

type Summary struct {
	Total     int
	Completed int
	Percent   int
}

// Percent rounds completed/total to a whole percentage; 0 when total is 0.
func Percent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

func newSummary(completed, total int) Summary {
	return Summary{Total: total, Completed: completed, Percent: Percent(completed, total)}
}

// ClassSummary counts completed lectures of one class.
func ClassSummary(c Checker, teacherID data.TeacherID, classIndex int, class data.Class) Summary {
	completed := 0
	for _, lecture := range class.Lectures {
		if c.IsCompleted(teacherID, classIndex, lecture.Title) {
			completed++
		}
	}
	return newSummary(completed, len(class.Lectures))
}

// TeacherSummary counts completed lectures across every class of a teacher.
func TeacherSummary(c Checker, teacher *data.Teacher) Summary {
	if teacher == nil {
		return Summary{}
	}
	var completed, total int
	for i, class := range teacher.Classes {
		s := ClassSummary(c, teacher.ID, i, class)
		completed += s.Completed
		total += s.Total
	}
	return newSummary(completed, total)
}

// Aggregate walks every teacher, class and lecture of a course.
func Aggregate(c Checker, course *data.Course) Summary {
	if course == nil {
		return Summary{}
	}
	var completed, total int
	for i := range course.Teachers {
		s := TeacherSummary(c, &course.Teachers[i])
		completed += s.Completed
		total += s.Total
	}
	return newSummary(completed, total)
}

func (s *Store) Aggregate(course *data.Course) Summary {
	return Aggregate(s, course)
}

func (s *Store) ClassSummary(teacherID data.TeacherID, classIndex int, class data.Class) Summary {
	return ClassSummary(s, teacherID, classIndex, class)
}

func (s *Store) TeacherSummary(teacher *data.Teacher) Summary {
	return TeacherSummary(s, teacher)
}
