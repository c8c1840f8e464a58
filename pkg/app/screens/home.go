package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/lectures/pkg/app/components"
	"github.com/kerbaras/lectures/pkg/data"
	"github.com/kerbaras/lectures/pkg/locale"
	"github.com/kerbaras/lectures/pkg/navigation"
	"github.com/kerbaras/lectures/pkg/progress"
)

type homeItem struct {
	icon     string
	title    string
	subtitle string
	dest     navigation.Destination
}

// HomeScreen lists every course dataset, then materials and exams.
type HomeScreen struct {
	env    *Env
	items  []homeItem
	cursor components.Cursor
	width  int
	height int
}

func NewHomeScreen(env *Env) *HomeScreen {
	s := &HomeScreen{env: env, width: 80, height: 20}
	catalog := env.catalog()

	for _, course := range catalog.Courses {
		subtitle := env.Tr.T(locale.KeyDataUnavailable)
		if course.Teachers != nil {
			summary := progress.Aggregate(env.progress(), course)
			subtitle = env.Tr.T(locale.KeyProgressCourse, itoa(summary.Percent))
		}
		s.items = append(s.items, homeItem{
			icon:     "🎬",
			title:    course.Title,
			subtitle: subtitle,
			dest:     navigation.ToTeachers(course),
		})
	}
	s.items = append(s.items,
		homeItem{
			icon:     "📚",
			title:    env.Tr.T(locale.KeyHomeMaterials),
			subtitle: materialsSubtitle(env, catalog),
			dest:     navigation.ToMaterials(catalog.Materials),
		},
		homeItem{
			icon:     "📝",
			title:    env.Tr.T(locale.KeyHomeExams),
			subtitle: examsSubtitle(env, catalog),
			dest:     navigation.ToExams(catalog.Exams),
		},
	)
	s.cursor.SetLen(len(s.items))
	return s
}

func materialsSubtitle(env *Env, catalog *data.Catalog) string {
	if catalog.Materials == nil {
		return env.Tr.T(locale.KeyMaterialsMissing)
	}
	n := 0
	for _, items := range catalog.Materials {
		n += len(items)
	}
	return itoa(n) + " 📄"
}

func examsSubtitle(env *Env, catalog *data.Catalog) string {
	if catalog.Exams == nil {
		return env.Tr.T(locale.KeyExamsMissing)
	}
	return itoa(len(catalog.Exams.Subjects)) + " 📖"
}

func (s *HomeScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
}

func (s *HomeScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			s.cursor.Prev()
		case "down", "j":
			s.cursor.Next()
		case "enter":
			if s.cursor.Valid() {
				return s, send(NavigateMsg{Dest: s.items[s.cursor.Index].dest})
			}
		}
	}
	return s, nil
}

func (s *HomeScreen) View() string {
	start, end := components.Window(s.cursor.Index, len(s.items), cardsPerPage(s.height, 4))
	out := ""
	for i := start; i < end; i++ {
		item := s.items[i]
		out += components.NavCard(item.icon, item.title, item.subtitle, i == s.cursor.Index, s.width) + "\n"
	}
	return out
}
