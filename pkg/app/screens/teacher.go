package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/lectures/pkg/app/components"
	"github.com/kerbaras/lectures/pkg/app/styles"
	"github.com/kerbaras/lectures/pkg/data"
	"github.com/kerbaras/lectures/pkg/locale"
)

// TeacherScreen lists a teacher's classes. Enter expands a class or plays
// a lecture; c toggles a lecture's completion and e exports the syllabus.
type TeacherScreen struct {
	env     *Env
	teacher *data.Teacher
	classes *components.ClassList
	width   int
	height  int
}

func NewTeacherScreen(env *Env, teacher *data.Teacher) *TeacherScreen {
	return &TeacherScreen{
		env:     env,
		teacher: teacher,
		classes: components.NewClassList(teacher),
		width:   80,
		height:  20,
	}
}

func (s *TeacherScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.classes.Width = width
	s.classes.Height = height - 6
}

func (s *TeacherScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || s.teacher == nil {
		return s, nil
	}

	switch key.String() {
	case "up", "k":
		s.classes.Prev()
	case "down", "j":
		s.classes.Next()
	case "enter":
		row, ok := s.classes.Selected()
		if !ok {
			return s, nil
		}
		if row.IsHeader() {
			s.classes.ToggleExpand()
			return s, nil
		}
		return s, send(PlayMsg{TeacherID: s.teacher.ID, ClassIndex: row.Group, LectureIndex: row.Entry})
	case "e":
		return s, send(ExportMsg{TeacherID: s.teacher.ID})
	case "c", "x":
		row, ok := s.classes.Selected()
		if !ok || row.IsHeader() {
			return s, nil
		}
		title := s.teacher.Classes[row.Group].Lectures[row.Entry].Title
		return s, send(ToggleMsg{TeacherID: s.teacher.ID, ClassIndex: row.Group, Title: title})
	}
	return s, nil
}

func (s *TeacherScreen) View() string {
	if s.teacher == nil {
		return styles.MutedStyle.Render(s.env.Tr.T(locale.KeyDataUnavailable))
	}

	summary := s.env.progress().TeacherSummary(s.teacher)

	var b strings.Builder
	b.WriteString(styles.TitleStyle.UnsetMarginBottom().Render(s.teacher.Name))
	b.WriteString("\n")
	b.WriteString(styles.SubtitleStyle.Render(s.teacher.Subject))
	b.WriteString("\n")
	b.WriteString(styles.MutedStyle.Render("🖼 " + components.ImageOrPlaceholder(s.teacher.Image, components.TeacherPlaceholder)))
	b.WriteString("\n")
	b.WriteString(components.ProgressBar(summary.Percent, 30))
	b.WriteString(" ")
	b.WriteString(styles.MutedStyle.Render(s.env.Tr.Progress(summary.Percent, summary.Completed, summary.Total)))
	b.WriteString("\n\n")
	b.WriteString(s.classes.View(s.env.progress(), s.env.Tr))
	return b.String()
}
