package screens

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/lectures/pkg/app/components"
	"github.com/kerbaras/lectures/pkg/app/styles"
	"github.com/kerbaras/lectures/pkg/data"
	"github.com/kerbaras/lectures/pkg/locale"
	"github.com/kerbaras/lectures/pkg/navigation"
	"github.com/kerbaras/lectures/pkg/services"
	"github.com/kerbaras/lectures/pkg/video"
	"go.uber.org/zap"
)

// RootScreen owns the event loop: it runs navigation, applies user actions
// and hosts notifications, the intro modal and the download tracker.
type RootScreen struct {
	env *Env

	current   Screen
	spinner   spinner.Model
	loading   bool
	notifier  *components.Notifier
	intro     *components.IntroModal
	downloads *components.DownloadTracker

	sessionOnlyNoticed bool

	width  int
	height int
}

func NewRootScreen(env *Env) *RootScreen {
	if env.Logger == nil {
		env.Logger = zap.NewNop()
	}
	if env.NotifyFor <= 0 {
		env.NotifyFor = 3 * time.Second
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Current().Primary)

	styles.Apply(env.Prefs.DarkMode())

	r := &RootScreen{
		env:       env,
		spinner:   s,
		notifier:  components.NewNotifier(env.NotifyFor),
		intro:     components.NewIntroModal(env.Prefs.IntroShown()),
		downloads: components.NewDownloadTracker(80),
	}
	r.current = r.screenFor(env.Nav.State())
	return r
}

func (r *RootScreen) Init() tea.Cmd {
	return tea.Batch(r.listenForProgress(), r.listenForCatalog())
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, ok := r.notifier.Update(msg); ok {
		return r, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height
		r.downloads.SetWidth(msg.Width)
		r.current.SetSize(msg.Width, r.bodyHeight())
		return r, nil

	case tea.KeyMsg:
		return r.handleKey(msg)

	case spinner.TickMsg:
		if !r.loading {
			return r, nil
		}
		var cmd tea.Cmd
		r.spinner, cmd = r.spinner.Update(msg)
		return r, cmd

	case NavigateMsg:
		return r, r.navigate(msg.Dest)

	case transitionDoneMsg:
		r.loading = false
		state, err := r.env.Nav.Commit(msg.transition)
		if err != nil {
			r.env.Logger.Debug("dropped transition", zap.Error(err))
			return r, nil
		}
		r.current = r.screenFor(state)
		return r, nil

	case BackMsg:
		return r, r.back()

	case PlayMsg:
		return r, r.play(msg)

	case ToggleMsg:
		var cmd tea.Cmd
		if r.env.progress().Toggle(msg.TeacherID, msg.ClassIndex, msg.Title) {
			cmd = r.notify(components.LevelSuccess, r.env.Tr.T(locale.KeyLectureCompleted))
		} else {
			cmd = r.notify(components.LevelInfo, r.env.Tr.T(locale.KeyLectureUncomplete))
		}
		return r, tea.Batch(cmd, r.checkSessionOnly())

	case MarkMsg:
		if !r.env.progress().MarkCompleted(msg.TeacherID, msg.ClassIndex, msg.Title) {
			return r, nil
		}
		return r, tea.Batch(
			r.notify(components.LevelSuccess, r.env.Tr.T(locale.KeyLectureMarked)),
			r.checkSessionOnly(),
		)

	case OpenMsg:
		if err := r.env.Lectures.Player().Open(msg.URL); err != nil {
			r.env.Logger.Warn("failed to open player", zap.Error(err))
			return r, r.notify(components.LevelError, r.env.Tr.T(locale.KeyActionFailed))
		}
		return r, r.notify(components.LevelInfo, r.env.Tr.T(locale.KeyPlayerOpened))

	case CopyMsg:
		if err := r.env.Lectures.Player().Copy(msg.URL); err != nil {
			r.env.Logger.Warn("failed to copy link", zap.Error(err))
			return r, r.notify(components.LevelError, r.env.Tr.T(locale.KeyActionFailed))
		}
		return r, r.notify(components.LevelSuccess, r.env.Tr.T(locale.KeyURLCopied))

	case DownloadMsg:
		return r, r.download(msg.Item)

	case downloadDoneMsg:
		if msg.err != nil {
			r.env.Logger.Warn("download failed", zap.String("title", msg.item.Title), zap.Error(msg.err))
			return r, r.notify(components.LevelError, r.env.Tr.T(locale.KeyActionFailed)+": "+msg.item.Title)
		}
		return r, r.notify(components.LevelSuccess, r.env.Tr.T(locale.KeyDownload)+": "+msg.path)

	case services.DownloadProgress:
		r.downloads.Update(msg)
		return r, r.listenForProgress()

	case catalogReloadedMsg:
		r.env.Lectures.SetCatalog(msg.catalog)
		if r.env.Nav.Page() == navigation.Home {
			r.current = r.screenFor(r.env.Nav.State())
		}
		return r, tea.Batch(
			r.notify(components.LevelInfo, r.env.Tr.T(locale.KeyCatalogReloaded)),
			r.listenForCatalog(),
		)

	case ExportMsg:
		return r, r.export(msg.TeacherID)

	case exportDoneMsg:
		if msg.err != nil {
			r.env.Logger.Warn("syllabus export failed", zap.Error(msg.err))
			return r, r.notify(components.LevelError, r.env.Tr.T(locale.KeyActionFailed))
		}
		return r, r.notify(components.LevelSuccess, r.env.Tr.T(locale.KeySyllabusSaved, msg.path))

	case NotifyMsg:
		return r, r.notify(msg.Level, msg.Text)
	}

	var cmd tea.Cmd
	r.current, cmd = r.current.Update(msg)
	return r, cmd
}

func (r *RootScreen) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return r, tea.Quit
	}

	if r.intro.Visible {
		if msg.String() != "enter" {
			return r, nil
		}
		r.intro.Confirm()
		if err := r.env.Prefs.MarkIntroShown(); err != nil {
			return r, r.notify(components.LevelError, r.env.Tr.T(locale.KeySettingsNotSaved))
		}
		return r, nil
	}

	// Input is ignored while a page is loading.
	if r.loading || r.env.Nav.Busy() {
		return r, nil
	}

	switch msg.String() {
	case "q":
		return r, tea.Quit
	case "esc", "backspace":
		return r, r.back()
	case "home", "H":
		if r.env.Nav.Page() == navigation.Home {
			return r, nil
		}
		return r, r.navigate(navigation.ToHome())
	case "d":
		styles.Apply(r.env.Prefs.ToggleDarkMode())
		r.spinner.Style = lipgloss.NewStyle().Foreground(styles.Current().Primary)
		return r, nil
	}

	var cmd tea.Cmd
	r.current, cmd = r.current.Update(msg)
	return r, cmd
}

func (r *RootScreen) navigate(dest navigation.Destination) tea.Cmd {
	t, err := r.env.Nav.Begin(dest)
	if errors.Is(err, navigation.ErrBusy) {
		return nil
	}
	if err != nil {
		key := locale.KeyDataUnavailable
		switch dest.Page() {
		case navigation.Materials:
			key = locale.KeyMaterialsMissing
		case navigation.Exams:
			key = locale.KeyExamsMissing
		}
		return r.notify(components.LevelError, r.env.Tr.T(key))
	}

	r.loading = true
	return tea.Batch(
		r.spinner.Tick,
		tea.Tick(r.env.Nav.MinDisplay(), func(time.Time) tea.Msg {
			return transitionDoneMsg{transition: t}
		}),
	)
}

func (r *RootScreen) back() tea.Cmd {
	state, err := r.env.Nav.Back()
	if err != nil {
		return nil
	}
	r.current = r.screenFor(state)
	return nil
}

func (r *RootScreen) play(msg PlayMsg) tea.Cmd {
	teacher := r.env.Nav.State().Teacher
	if teacher == nil || teacher.ID != msg.TeacherID {
		return r.notify(components.LevelError, r.env.Tr.T(locale.KeyDataUnavailable))
	}
	ref, err := r.env.Lectures.Prepare(teacher, msg.ClassIndex, msg.LectureIndex)
	if errors.Is(err, video.ErrNoVideoID) {
		return r.notify(components.LevelError, r.env.Tr.T(locale.KeyNoVideoID))
	}
	if err != nil {
		return r.notify(components.LevelError, r.env.Tr.T(locale.KeyActionFailed))
	}
	return r.navigate(navigation.ToVideo(teacher, ref))
}

func (r *RootScreen) download(item services.DownloadItem) tea.Cmd {
	if r.env.Downloader == nil {
		return nil
	}
	downloader := r.env.Downloader
	return tea.Batch(
		r.notify(components.LevelInfo, "⬇ "+item.Title),
		func() tea.Msg {
			path, err := downloader.Download(context.Background(), item)
			return downloadDoneMsg{item: item, path: path, err: err}
		},
	)
}

func (r *RootScreen) export(teacherID data.TeacherID) tea.Cmd {
	state := r.env.Nav.State()
	if r.env.Syllabus == nil || state.Teacher == nil || state.Teacher.ID != teacherID {
		return nil
	}
	builder, course, teacher, checker := r.env.Syllabus, state.Course, state.Teacher, r.env.progress()
	return func() tea.Msg {
		path, err := builder.Export(course, teacher, checker)
		return exportDoneMsg{path: path, err: err}
	}
}

func (r *RootScreen) notify(level components.Level, text string) tea.Cmd {
	return r.notifier.Push(level, text)
}

func (r *RootScreen) checkSessionOnly() tea.Cmd {
	if r.sessionOnlyNoticed || !r.env.progress().SessionOnly() {
		return nil
	}
	r.sessionOnlyNoticed = true
	return r.notify(components.LevelError, r.env.Tr.T(locale.KeySessionOnly))
}

func (r *RootScreen) listenForProgress() tea.Cmd {
	if r.env.Downloader == nil {
		return nil
	}
	ch := r.env.Downloader.GetProgressChannel()
	return func() tea.Msg {
		progress, ok := <-ch
		if !ok {
			return nil
		}
		return progress
	}
}

func (r *RootScreen) listenForCatalog() tea.Cmd {
	if r.env.Watcher == nil {
		return nil
	}
	updates := r.env.Watcher.Updates()
	return func() tea.Msg {
		catalog, ok := <-updates
		if !ok {
			return nil
		}
		return catalogReloadedMsg{catalog: catalog}
	}
}

func (r *RootScreen) screenFor(state navigation.State) Screen {
	var s Screen
	switch state.Page {
	case navigation.Teachers:
		s = NewTeachersScreen(r.env, state.Course)
	case navigation.Teacher:
		s = NewTeacherScreen(r.env, state.Teacher)
	case navigation.Video:
		s = NewVideoScreen(r.env, state.Lecture)
	case navigation.Materials:
		s = NewMaterialsScreen(r.env, state.Materials, r.env.catalog().MaterialTabs)
	case navigation.Exams:
		s = NewExamsScreen(r.env, state.Exams)
	case navigation.SubjectExams:
		s = NewSubjectScreen(r.env, state.Subject)
	default:
		s = NewHomeScreen(r.env)
	}
	if r.width > 0 {
		s.SetSize(r.width, r.bodyHeight())
	}
	return s
}

func (r *RootScreen) bodyHeight() int {
	h := r.height - 8
	if h < 5 {
		h = 5
	}
	return h
}

func (r *RootScreen) View() string {
	header := r.renderHeader()

	var body string
	switch {
	case r.intro.Visible:
		body = r.intro.View(r.env.Tr, r.width, r.bodyHeight())
	case r.loading:
		body = fmt.Sprintf("\n  %s %s\n", r.spinner.View(), r.env.Tr.T(locale.KeyLoading))
	default:
		body = r.current.View()
	}

	parts := []string{header, body}
	if v := r.downloads.View(); v != "" {
		parts = append(parts, v)
	}
	if v := r.notifier.View(); v != "" {
		parts = append(parts, v)
	}
	parts = append(parts, styles.HelpStyle.Render(r.env.Tr.T(locale.KeyHelp)))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (r *RootScreen) renderHeader() string {
	title := styles.TitleStyle.UnsetMarginBottom().Render("🎓 " + r.env.Tr.T(locale.KeyAppTitle))
	theme := "☾"
	if styles.Dark() {
		theme = "☀"
	}
	right := styles.MutedStyle.Render(theme)
	if r.env.Nav.BackVisible() {
		right = styles.MutedStyle.Render("← esc "+r.env.Tr.T(locale.KeyBack)) + "  " + right
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "   ", right) + "\n"
}
