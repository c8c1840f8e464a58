package screens

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/lectures/pkg/app/components"
	"github.com/kerbaras/lectures/pkg/app/styles"
	"github.com/kerbaras/lectures/pkg/data"
	"github.com/kerbaras/lectures/pkg/integrations"
	"github.com/kerbaras/lectures/pkg/locale"
	"github.com/kerbaras/lectures/pkg/navigation"
	"github.com/kerbaras/lectures/pkg/progress"
	"github.com/kerbaras/lectures/pkg/services"
	"github.com/kerbaras/lectures/pkg/settings"
	"github.com/kerbaras/lectures/pkg/video"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const lectureURL = "https://iframe.mediadelivery.net/embed/219301/3f2b8c1e-7d4a-4e6b-9a1c-2d5e8f0b7c41"

func testCatalog() *data.Catalog {
	return &data.Catalog{
		Courses: []*data.Course{
			{Key: "abwab2026", Title: "Abwab 2026", Teachers: []data.Teacher{
				{ID: "7", Name: "Ali", Subject: "Physics", Classes: []data.Class{
					{Name: "Mechanics", Lectures: []data.Lecture{
						{Title: "Intro", URL: lectureURL},
						{Title: "Broken", URL: "https://example.com/watch"},
					}},
				}},
			}},
			{Key: "iraq2025", Title: "Iraq 2025"},
		},
		Materials: data.Materials{"summaries": {{Title: "Sheet", DownloadURL: "https://files.test/sheet.pdf"}}},
		Exams:     nil,
	}
}

// readOnlyStore serves reads and rejects every write.
type readOnlyStore struct {
	*data.MemoryStore
}

func (readOnlyStore) Set(string, string) error { return errors.New("disk full") }

func newTestRoot(t *testing.T, introShown bool) *RootScreen {
	t.Helper()
	return newTestRootWithStore(t, data.NewMemoryStore(), introShown)
}

func newTestRootWithStore(t *testing.T, kv data.Store, introShown bool) *RootScreen {
	t.Helper()
	t.Cleanup(func() { styles.Apply(false) })

	prefs := settings.NewPreferences(kv, zap.NewNop())
	if introShown {
		require.NoError(t, prefs.MarkIntroShown())
	}

	lectures := services.NewLectureController(
		nil,
		progress.NewStore(kv, zap.NewNop()),
		services.NewPlayer(video.NewResolver("https://proxy.test")),
		zap.NewNop(),
	)
	lectures.SetCatalog(testCatalog())

	r := NewRootScreen(&Env{
		Lectures:  lectures,
		Nav:       navigation.NewController(0, zap.NewNop()),
		Prefs:     prefs,
		Syllabus:  integrations.NewSyllabusBuilder(t.TempDir(), video.NewResolver("https://proxy.test"), locale.English),
		Tr:        locale.MustNew(locale.English),
		Logger:    zap.NewNop(),
		NotifyFor: time.Millisecond,
	})
	r.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return r
}

// run executes cmd and feeds the application messages it yields back into
// the root screen. Timer driven messages of the spinner and notifier are
// dropped so notifications stay visible.
func run(r *RootScreen, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			run(r, c)
		}
	case NavigateMsg, transitionDoneMsg, BackMsg, PlayMsg, ToggleMsg, MarkMsg, ExportMsg, exportDoneMsg:
		_, next := r.Update(msg)
		run(r, next)
	}
}

func press(r *RootScreen, key string) {
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	_, cmd := r.Update(msg)
	run(r, cmd)
}

func lastNotification(t *testing.T, r *RootScreen) components.Notification {
	t.Helper()
	items := r.notifier.Items()
	require.NotEmpty(t, items)
	return items[len(items)-1]
}

func TestRootBrowseToVideoAndBack(t *testing.T) {
	r := newTestRoot(t, true)
	assert.Equal(t, navigation.Home, r.env.Nav.Page())

	press(r, "enter")
	require.Equal(t, navigation.Teachers, r.env.Nav.Page())
	assert.Contains(t, r.View(), "Ali")

	press(r, "enter")
	require.Equal(t, navigation.Teacher, r.env.Nav.Page())

	press(r, "enter") // expand the class
	press(r, "down")
	press(r, "enter")
	require.Equal(t, navigation.Video, r.env.Nav.Page())
	assert.Contains(t, r.View(), "https://proxy.test/3f2b8c1e-7d4a-4e6b-9a1c-2d5e8f0b7c41")

	press(r, "m")
	assert.True(t, r.env.progress().IsCompleted("7", 0, "Intro"))
	assert.Equal(t, components.LevelSuccess, lastNotification(t, r).Level)

	press(r, "esc")
	assert.Equal(t, navigation.Teacher, r.env.Nav.Page())
	press(r, "esc")
	assert.Equal(t, navigation.Teachers, r.env.Nav.Page())
	press(r, "esc")
	assert.Equal(t, navigation.Home, r.env.Nav.Page())
}

func TestRootToggleFromClassList(t *testing.T) {
	r := newTestRoot(t, true)
	press(r, "enter")
	press(r, "enter")
	press(r, "enter")
	press(r, "down")

	press(r, "c")
	assert.True(t, r.env.progress().IsCompleted("7", 0, "Intro"))
	press(r, "c")
	assert.False(t, r.env.progress().IsCompleted("7", 0, "Intro"))
	assert.Equal(t, components.LevelInfo, lastNotification(t, r).Level)
}

func TestRootExportSyllabus(t *testing.T) {
	r := newTestRoot(t, true)
	press(r, "enter")
	press(r, "enter")
	press(r, "e")

	n := lastNotification(t, r)
	assert.Equal(t, components.LevelSuccess, n.Level)
	assert.Contains(t, n.Text, ".epub")
}

func TestRootLectureWithoutVideoID(t *testing.T) {
	r := newTestRoot(t, true)
	press(r, "enter")
	press(r, "enter")
	press(r, "enter")
	press(r, "down")
	press(r, "down")
	press(r, "enter")

	assert.Equal(t, navigation.Teacher, r.env.Nav.Page())
	n := lastNotification(t, r)
	assert.Equal(t, components.LevelError, n.Level)
	assert.Equal(t, r.env.Tr.T(locale.KeyNoVideoID), n.Text)
}

func TestRootUnavailableDatasets(t *testing.T) {
	r := newTestRoot(t, true)

	press(r, "down") // course with no dataset
	press(r, "enter")
	assert.Equal(t, navigation.Home, r.env.Nav.Page())
	assert.Equal(t, r.env.Tr.T(locale.KeyDataUnavailable), lastNotification(t, r).Text)

	press(r, "down")
	press(r, "down") // exams
	press(r, "enter")
	assert.Equal(t, navigation.Home, r.env.Nav.Page())
	assert.Equal(t, r.env.Tr.T(locale.KeyExamsMissing), lastNotification(t, r).Text)
}

func TestRootMaterials(t *testing.T) {
	r := newTestRoot(t, true)
	press(r, "down")
	press(r, "down")
	press(r, "enter")

	require.Equal(t, navigation.Materials, r.env.Nav.Page())
	assert.Contains(t, r.View(), "Sheet")
	press(r, "tab")
	assert.Contains(t, r.View(), r.env.Tr.T(locale.KeyNoMaterials))

	press(r, "H")
	assert.Equal(t, navigation.Home, r.env.Nav.Page())
	assert.False(t, r.env.Nav.BackVisible())
}

func TestRootIntroBlocksInput(t *testing.T) {
	r := newTestRoot(t, false)
	require.True(t, r.intro.Visible)

	press(r, "j")
	assert.True(t, r.intro.Visible)

	press(r, "enter")
	assert.False(t, r.intro.Visible)
	assert.True(t, r.env.Prefs.IntroShown())
	assert.Equal(t, navigation.Home, r.env.Nav.Page())
}

func TestRootIntroWhenStoreRejectsWrites(t *testing.T) {
	r := newTestRootWithStore(t, readOnlyStore{data.NewMemoryStore()}, false)

	press(r, "enter")
	assert.False(t, r.intro.Visible)
	n := lastNotification(t, r)
	assert.Equal(t, components.LevelError, n.Level)
	assert.Equal(t, r.env.Tr.T(locale.KeySettingsNotSaved), n.Text)
}

func TestRootToggleThemeWhenStoreRejectsWrites(t *testing.T) {
	r := newTestRootWithStore(t, readOnlyStore{data.NewMemoryStore()}, false)
	r.intro.Confirm()

	press(r, "d")
	assert.True(t, styles.Dark())
	press(r, "d")
	assert.False(t, styles.Dark())
	press(r, "d")
	assert.True(t, styles.Dark())
}

func TestRootToggleTheme(t *testing.T) {
	r := newTestRoot(t, true)
	press(r, "d")
	assert.True(t, r.env.Prefs.DarkMode())
	assert.True(t, styles.Dark())
	press(r, "d")
	assert.False(t, styles.Dark())
}

func TestRootIgnoresKeysWhileLoading(t *testing.T) {
	r := newTestRoot(t, true)
	r.loading = true

	_, cmd := r.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.Nil(t, cmd)
	_, cmd = r.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}
