package components

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/lectures/pkg/app/styles"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelError   Level = "error"
)

type Phase int

const (
	PhaseShown Phase = iota
	PhaseLeaving
)

// LeaveDuration is how long a notification fades before it is removed.
const LeaveDuration = 300 * time.Millisecond

type Notification struct {
	ID    int
	Level Level
	Text  string
	Phase Phase
}

type notificationLeaveMsg struct{ id int }
type notificationRemoveMsg struct{ id int }

// Notifier shows transient messages. Each one is displayed for a fixed
// time, then fades, then disappears. They cannot be dismissed early.
type Notifier struct {
	display time.Duration
	nextID  int
	items   []Notification
}

func NewNotifier(display time.Duration) *Notifier {
	return &Notifier{display: display}
}

// Push adds a notification and returns the command driving its lifecycle.
func (n *Notifier) Push(level Level, text string) tea.Cmd {
	n.nextID++
	id := n.nextID
	n.items = append(n.items, Notification{ID: id, Level: level, Text: text, Phase: PhaseShown})
	return tea.Tick(n.display, func(time.Time) tea.Msg {
		return notificationLeaveMsg{id: id}
	})
}

// Update advances notification phases. It reports whether msg belonged to
// the notifier.
func (n *Notifier) Update(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case notificationLeaveMsg:
		for i := range n.items {
			if n.items[i].ID == msg.id {
				n.items[i].Phase = PhaseLeaving
			}
		}
		return tea.Tick(LeaveDuration, func(time.Time) tea.Msg {
			return notificationRemoveMsg{id: msg.id}
		}), true
	case notificationRemoveMsg:
		for i := range n.items {
			if n.items[i].ID == msg.id {
				n.items = append(n.items[:i], n.items[i+1:]...)
				break
			}
		}
		return nil, true
	}
	return nil, false
}

func (n *Notifier) Items() []Notification {
	return n.items
}

func icon(level Level) string {
	switch level {
	case LevelSuccess:
		return "✔"
	case LevelError:
		return "✖"
	default:
		return "ℹ"
	}
}

func (n *Notifier) View() string {
	if len(n.items) == 0 {
		return ""
	}
	var lines []string
	for _, item := range n.items {
		style := styles.StatusStyle(string(item.Level))
		if item.Phase == PhaseLeaving {
			style = style.Faint(true)
		}
		lines = append(lines, style.Render(icon(item.Level)+" "+item.Text))
	}
	return strings.Join(lines, "\n")
}
