package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/lectures/pkg/app/screens"
	"github.com/kerbaras/lectures/pkg/catalog"
	"github.com/kerbaras/lectures/pkg/config"
	"github.com/kerbaras/lectures/pkg/data"
	"github.com/kerbaras/lectures/pkg/integrations"
	"github.com/kerbaras/lectures/pkg/locale"
	"github.com/kerbaras/lectures/pkg/logging"
	"github.com/kerbaras/lectures/pkg/navigation"
	"github.com/kerbaras/lectures/pkg/progress"
	"github.com/kerbaras/lectures/pkg/services"
	"github.com/kerbaras/lectures/pkg/settings"
	"github.com/kerbaras/lectures/pkg/utils"
	"github.com/kerbaras/lectures/pkg/video"
	"go.uber.org/zap"
)

// App wires configuration into the services shared by the TUI and the CLI
// commands.
type App struct {
	Config     *config.Config
	Logger     *zap.Logger
	Store      data.Store
	Loader     *catalog.Loader
	Lectures   *services.LectureController
	Prefs      *settings.Preferences
	Tr         *locale.Translator
	Downloader *services.Downloader
	Syllabus   *integrations.SyllabusBuilder

	logCloser io.Closer
}

type Option func(*options)

type options struct {
	console bool
	store   data.Store
}

// WithConsoleLogs mirrors logs to stderr. Only use it outside the TUI.
func WithConsoleLogs() Option {
	return func(o *options) { o.console = true }
}

// WithStore replaces the configured storage backend.
func WithStore(store data.Store) Option {
	return func(o *options) { o.store = store }
}

// New builds every service from cfg and loads the catalog.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	logger, logCloser, err := logging.New(logging.Options{
		Level:    cfg.Logging.Level,
		FilePath: cfg.Logging.FilePath,
		Console:  o.console,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	store := o.store
	if store == nil {
		store, err = OpenStore(cfg)
		if err != nil {
			logCloser.Close()
			return nil, err
		}
	}

	tr, err := locale.New(cfg.UI.Lang)
	if err != nil {
		store.Close()
		logCloser.Close()
		return nil, err
	}

	resolver := video.NewResolver(cfg.Proxy.BaseURL)
	loader := catalog.NewLoader(CatalogSource(cfg), logger.Named("catalog"))
	lectures := services.NewLectureController(
		loader,
		progress.NewStore(store, logger.Named("progress")),
		services.NewPlayer(resolver),
		logger,
	)

	a := &App{
		Config:     cfg,
		Logger:     logger,
		Store:      store,
		Loader:     loader,
		Lectures:   lectures,
		Prefs:      settings.NewPreferences(store, logger.Named("settings")),
		Tr:         tr,
		Downloader: services.NewDownloader(cfg.Download.Dir),
		Syllabus:   integrations.NewSyllabusBuilder(cfg.Download.Dir, resolver, tr.Lang()),
		logCloser:  logCloser,
	}

	if err := lectures.Load(ctx); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

// OpenStore opens the key-value store selected by storage.driver.
func OpenStore(cfg *config.Config) (data.Store, error) {
	switch cfg.Storage.Driver {
	case config.DriverRedis:
		return data.NewRedisStore(data.RedisConfig{
			Addr:     cfg.Storage.Redis.Addr,
			Password: cfg.Storage.Redis.Password,
			DB:       cfg.Storage.Redis.DB,
		})
	case config.DriverMemory:
		return data.NewMemoryStore(), nil
	default:
		return data.NewDuckDBStore(cfg.Storage.Path)
	}
}

// CatalogSource picks the catalog location: a remote URL, then a local
// directory, then the embedded sample.
func CatalogSource(cfg *config.Config) catalog.Source {
	switch {
	case cfg.Catalog.URL != "":
		return catalog.NewHTTPSource(utils.NewAPI(cfg.Catalog.URL))
	case cfg.Catalog.Dir != "":
		return catalog.NewDirSource(cfg.Catalog.Dir)
	default:
		return catalog.Sample()
	}
}

// Env builds the screen environment for one TUI session.
func (a *App) Env() *screens.Env {
	return &screens.Env{
		Lectures:   a.Lectures,
		Nav:        navigation.NewController(a.Config.UI.Transition, a.Logger.Named("navigation")),
		Prefs:      a.Prefs,
		Tr:         a.Tr,
		Downloader: a.Downloader,
		Syllabus:   a.Syllabus,
		Logger:     a.Logger,
		NotifyFor:  a.Config.UI.Notification,
	}
}

// Run starts the TUI and blocks until the user quits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	env := a.Env()
	if a.Config.Catalog.Watch && a.Config.Catalog.Dir != "" && a.Config.Catalog.URL == "" {
		env.Watcher = services.NewCatalogWatcher(a.Config.Catalog.Dir, a.Loader, a.Logger.Named("watcher"))
		env.Watcher.Start(ctx)
	}

	p := tea.NewProgram(screens.NewRootScreen(env), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func (a *App) Close() error {
	a.Downloader.Close()
	err := a.Store.Close()
	a.Logger.Sync()
	return errors.Join(err, a.logCloser.Close())
}
