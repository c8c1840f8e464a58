package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/lectures/pkg/app/components"
	"github.com/kerbaras/lectures/pkg/app/styles"
	"github.com/kerbaras/lectures/pkg/data"
	"github.com/kerbaras/lectures/pkg/locale"
	"github.com/kerbaras/lectures/pkg/navigation"
)

// TeachersScreen shows the teachers of one course with the course progress.
type TeachersScreen struct {
	env    *Env
	course *data.Course
	cursor components.Cursor
	width  int
	height int
}

func NewTeachersScreen(env *Env, course *data.Course) *TeachersScreen {
	s := &TeachersScreen{env: env, course: course, width: 80, height: 20}
	if course != nil {
		s.cursor.SetLen(len(course.Teachers))
	}
	return s
}

func (s *TeachersScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
}

func (s *TeachersScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			s.cursor.Prev()
		case "down", "j":
			s.cursor.Next()
		case "enter":
			if s.cursor.Valid() {
				teacher := &s.course.Teachers[s.cursor.Index]
				return s, send(NavigateMsg{Dest: navigation.ToTeacher(s.course, teacher)})
			}
		}
	}
	return s, nil
}

func (s *TeachersScreen) View() string {
	if s.course == nil {
		return styles.MutedStyle.Render(s.env.Tr.T(locale.KeyDataUnavailable))
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(s.course.Title))
	b.WriteString("\n")
	b.WriteString(components.CourseProgress(s.env.progress().Aggregate(s.course), s.env.Tr, s.width-4))
	b.WriteString("\n\n")

	start, end := components.Window(s.cursor.Index, len(s.course.Teachers), cardsPerPage(s.height-4, 6))
	for i := start; i < end; i++ {
		b.WriteString(components.TeacherCard(&s.course.Teachers[i], s.env.Tr, i == s.cursor.Index, s.width))
		b.WriteString("\n")
	}
	return b.String()
}
