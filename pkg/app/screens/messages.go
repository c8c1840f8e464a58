package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/lectures/pkg/app/components"
	"github.com/kerbaras/lectures/pkg/data"
	"github.com/kerbaras/lectures/pkg/navigation"
	"github.com/kerbaras/lectures/pkg/services"
)

// NavigateMsg asks the root screen for a forward transition.
type NavigateMsg struct {
	Dest navigation.Destination
}

type BackMsg struct{}

// PlayMsg opens the video page of a lecture.
type PlayMsg struct {
	TeacherID    data.TeacherID
	ClassIndex   int
	LectureIndex int
}

// ToggleMsg flips completion of a lecture.
type ToggleMsg struct {
	TeacherID  data.TeacherID
	ClassIndex int
	Title      string
}

// MarkMsg records a lecture as completed; it never un-marks.
type MarkMsg struct {
	TeacherID  data.TeacherID
	ClassIndex int
	Title      string
}

type OpenMsg struct {
	URL string
}

type CopyMsg struct {
	URL string
}

type DownloadMsg struct {
	Item services.DownloadItem
}

// ExportMsg writes the syllabus EPUB of the teacher on screen.
type ExportMsg struct {
	TeacherID data.TeacherID
}

type NotifyMsg struct {
	Level components.Level
	Text  string
}

type transitionDoneMsg struct {
	transition *navigation.Transition
}

type downloadDoneMsg struct {
	item services.DownloadItem
	path string
	err  error
}

type exportDoneMsg struct {
	path string
	err  error
}

type catalogReloadedMsg struct {
	catalog *data.Catalog
}

func send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
