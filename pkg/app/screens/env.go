package screens

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/lectures/pkg/data"
	"github.com/kerbaras/lectures/pkg/integrations"
	"github.com/kerbaras/lectures/pkg/locale"
	"github.com/kerbaras/lectures/pkg/navigation"
	"github.com/kerbaras/lectures/pkg/progress"
	"github.com/kerbaras/lectures/pkg/services"
	"github.com/kerbaras/lectures/pkg/settings"
	"go.uber.org/zap"
)

// Env carries the shared services every screen renders from.
type Env struct {
	Lectures   *services.LectureController
	Nav        *navigation.Controller
	Prefs      *settings.Preferences
	Tr         *locale.Translator
	Downloader *services.Downloader
	Syllabus   *integrations.SyllabusBuilder
	Watcher    *services.CatalogWatcher
	Logger     *zap.Logger
	NotifyFor  time.Duration
}

func (e *Env) progress() *progress.Store {
	return e.Lectures.Progress()
}

func (e *Env) catalog() *data.Catalog {
	if c := e.Lectures.Catalog(); c != nil {
		return c
	}
	return &data.Catalog{}
}

// Screen is one page of the application.
type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View() string
	SetSize(width, height int)
}
