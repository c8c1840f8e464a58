package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/lectures/pkg/app/components"
	"github.com/kerbaras/lectures/pkg/app/styles"
	"github.com/kerbaras/lectures/pkg/data"
	"github.com/kerbaras/lectures/pkg/locale"
	"github.com/kerbaras/lectures/pkg/services"
)

// MaterialsScreen shows material cards grouped in tabs. The active tab is
// local to the screen and resets on every visit.
type MaterialsScreen struct {
	env       *Env
	materials data.Materials
	tabs      []string
	tab       int
	cursor    components.Cursor
	width     int
	height    int
}

func NewMaterialsScreen(env *Env, materials data.Materials, tabs []string) *MaterialsScreen {
	if len(tabs) == 0 {
		tabs = []string{"summaries", "notes", "books"}
	}
	s := &MaterialsScreen{env: env, materials: materials, tabs: tabs, width: 80, height: 20}
	s.cursor.SetLen(len(s.items()))
	return s
}

func (s *MaterialsScreen) items() []data.Material {
	return s.materials[s.tabs[s.tab]]
}

func (s *MaterialsScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
}

func (s *MaterialsScreen) switchTab(delta int) {
	s.tab = (s.tab + delta + len(s.tabs)) % len(s.tabs)
	s.cursor = components.Cursor{}
	s.cursor.SetLen(len(s.items()))
}

func (s *MaterialsScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab", "right", "l":
			s.switchTab(1)
		case "shift+tab", "left", "h":
			s.switchTab(-1)
		case "up", "k":
			s.cursor.Prev()
		case "down", "j":
			s.cursor.Next()
		case "enter":
			if s.cursor.Valid() {
				m := s.items()[s.cursor.Index]
				return s, send(DownloadMsg{Item: services.DownloadItem{Title: m.Title, URL: m.DownloadURL}})
			}
		}
	}
	return s, nil
}

func (s *MaterialsScreen) tabLabel(tab string) string {
	if key, ok := locale.TabKey(tab); ok {
		return s.env.Tr.T(key)
	}
	return tab
}

func (s *MaterialsScreen) View() string {
	var tabs []string
	for i, tab := range s.tabs {
		style := styles.InactiveTabStyle
		if i == s.tab {
			style = styles.ActiveTabStyle
		}
		tabs = append(tabs, style.Render(s.tabLabel(tab)))
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(s.env.Tr.T(locale.KeyHomeMaterials)))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")

	items := s.items()
	if len(items) == 0 {
		b.WriteString(styles.MutedStyle.Render(s.env.Tr.T(locale.KeyNoMaterials)))
		return b.String()
	}
	start, end := components.Window(s.cursor.Index, len(items), cardsPerPage(s.height-4, 6))
	for i := start; i < end; i++ {
		b.WriteString(components.MaterialCard(items[i], s.env.Tr, i == s.cursor.Index, s.width))
		b.WriteString("\n")
	}
	return b.String()
}
