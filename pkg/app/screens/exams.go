package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/lectures/pkg/app/components"
	"github.com/kerbaras/lectures/pkg/app/styles"
	"github.com/kerbaras/lectures/pkg/data"
	"github.com/kerbaras/lectures/pkg/locale"
	"github.com/kerbaras/lectures/pkg/navigation"
	"github.com/kerbaras/lectures/pkg/services"
)

// ExamsScreen lists the subjects of the exam archive.
type ExamsScreen struct {
	env    *Env
	exams  *data.ExamArchive
	cursor components.Cursor
	width  int
	height int
}

func NewExamsScreen(env *Env, exams *data.ExamArchive) *ExamsScreen {
	s := &ExamsScreen{env: env, exams: exams, width: 80, height: 20}
	if exams != nil {
		s.cursor.SetLen(len(exams.Subjects))
	}
	return s
}

func (s *ExamsScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
}

func (s *ExamsScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			s.cursor.Prev()
		case "down", "j":
			s.cursor.Next()
		case "enter":
			if s.cursor.Valid() {
				subject := &s.exams.Subjects[s.cursor.Index]
				return s, send(NavigateMsg{Dest: navigation.ToSubject(s.exams, subject)})
			}
		}
	}
	return s, nil
}

func (s *ExamsScreen) View() string {
	if s.exams == nil {
		return styles.MutedStyle.Render(s.env.Tr.T(locale.KeyExamsMissing))
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(s.env.Tr.T(locale.KeyHomeExams)))
	b.WriteString("\n")
	if len(s.exams.Subjects) == 0 {
		b.WriteString(styles.MutedStyle.Render(s.env.Tr.T(locale.KeyNoExams)))
		return b.String()
	}
	start, end := components.Window(s.cursor.Index, len(s.exams.Subjects), cardsPerPage(s.height-2, 3))
	for i := start; i < end; i++ {
		b.WriteString(components.SubjectCard(&s.exams.Subjects[i], s.env.Tr, i == s.cursor.Index, s.width))
		b.WriteString("\n")
	}
	return b.String()
}

// SubjectScreen shows the chapters and exams of one subject.
type SubjectScreen struct {
	env      *Env
	subject  *data.Subject
	chapters *components.ChapterList
	width    int
	height   int
}

func NewSubjectScreen(env *Env, subject *data.Subject) *SubjectScreen {
	return &SubjectScreen{
		env:      env,
		subject:  subject,
		chapters: components.NewChapterList(subject),
		width:    80,
		height:   20,
	}
}

func (s *SubjectScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.chapters.Width = width
	s.chapters.Height = height - 3
}

func (s *SubjectScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch key.String() {
	case "up", "k":
		s.chapters.Prev()
	case "down", "j":
		s.chapters.Next()
	case "enter":
		if exam, ok := s.chapters.SelectedExam(); ok {
			return s, send(DownloadMsg{Item: services.DownloadItem{Title: exam.Title, URL: exam.DownloadURL}})
		}
		s.chapters.ToggleExpand()
	}
	return s, nil
}

func (s *SubjectScreen) View() string {
	if s.subject == nil {
		return styles.MutedStyle.Render(s.env.Tr.T(locale.KeyExamsMissing))
	}
	return styles.TitleStyle.Render(components.SubjectIcon(s.subject.Name)+" "+s.env.Tr.T(locale.KeySubjectExams, s.subject.Name)) +
		"\n" + s.chapters.View(s.env.Tr)
}
