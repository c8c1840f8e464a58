package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/lectures/pkg/app/styles"
	"github.com/kerbaras/lectures/pkg/locale"
	"github.com/kerbaras/lectures/pkg/navigation"
)

// VideoScreen shows one lecture and its proxied stream.
type VideoScreen struct {
	env    *Env
	ref    *navigation.LectureRef
	width  int
	height int
}

func NewVideoScreen(env *Env, ref *navigation.LectureRef) *VideoScreen {
	return &VideoScreen{env: env, ref: ref, width: 80, height: 20}
}

func (s *VideoScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
}

func (s *VideoScreen) completed() bool {
	return s.env.progress().IsCompleted(s.ref.TeacherID, s.ref.ClassIndex, s.ref.Lecture.Title)
}

func (s *VideoScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || s.ref == nil {
		return s, nil
	}

	switch key.String() {
	case "m", "enter":
		if s.completed() {
			return s, nil
		}
		return s, send(MarkMsg{TeacherID: s.ref.TeacherID, ClassIndex: s.ref.ClassIndex, Title: s.ref.Lecture.Title})
	case "o":
		return s, send(OpenMsg{URL: s.ref.StreamURL})
	case "y":
		return s, send(CopyMsg{URL: s.ref.StreamURL})
	}
	return s, nil
}

func (s *VideoScreen) View() string {
	if s.ref == nil {
		return styles.MutedStyle.Render(s.env.Tr.T(locale.KeyDataUnavailable))
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("▶ " + s.ref.Lecture.Title))
	b.WriteString("\n")
	if s.ref.Lecture.Description != "" {
		b.WriteString(styles.TextStyle.Width(s.width - 4).Render(s.ref.Lecture.Description))
		b.WriteString("\n\n")
	}
	b.WriteString(styles.LinkStyle.Render(s.ref.StreamURL))
	b.WriteString("\n\n")

	mark := styles.ButtonStyle.Render("m ✓ " + s.env.Tr.T(locale.KeyMarkCompleted))
	if s.completed() {
		mark = styles.DisabledButton.Render("✓ " + s.env.Tr.T(locale.KeyCompleted))
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		mark, "  ",
		styles.ButtonStyle.Render("o ▶ "+s.env.Tr.T(locale.KeyOpenPlayer)), "  ",
		styles.ButtonStyle.Render("y ⧉ "+s.env.Tr.T(locale.KeyCopyURL)),
	)
	b.WriteString(buttons)
	return b.String()
}
