package services

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/kerbaras/lectures/pkg/data"
	"go.uber.org/zap"
)

// CatalogWatcher reloads a catalog directory when its files change. It is
// best effort: failures are logged and the last good catalog stays.
type CatalogWatcher struct {
	dir      string
	loader   CatalogLoader
	logger   *zap.Logger
	debounce time.Duration
	updates  chan *data.Catalog
}

func NewCatalogWatcher(dir string, loader CatalogLoader, logger *zap.Logger) *CatalogWatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogWatcher{
		dir:      dir,
		loader:   loader,
		logger:   logger,
		debounce: time.Second,
		updates:  make(chan *data.Catalog, 1),
	}
}

// WithDebounce sets how long the watcher waits for writes to settle.
func (w *CatalogWatcher) WithDebounce(d time.Duration) *CatalogWatcher {
	w.debounce = d
	return w
}

// Updates delivers reloaded catalogs. Only the newest one is kept if the
// reader falls behind.
func (w *CatalogWatcher) Updates() <-chan *data.Catalog {
	return w.updates
}

// Start runs the watcher in the background until ctx is done.
func (w *CatalogWatcher) Start(ctx context.Context) {
	go func() {
		if err := w.Run(ctx); err != nil {
			w.logger.Warn("catalog watcher stopped", zap.Error(err))
		}
	}()
}

func (w *CatalogWatcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	absPath, err := filepath.Abs(w.dir)
	if err != nil {
		return err
	}
	if err := watcher.Add(absPath); err != nil {
		return fmt.Errorf("watch %s: %w", absPath, err)
	}
	w.logger.Debug("watching catalog", zap.String("dir", absPath))

	timer := time.NewTimer(0)
	<-timer.C
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.debounce)
		case <-timer.C:
			catalog, err := w.loader.Load(ctx)
			if err != nil {
				w.logger.Error("failed to reload catalog", zap.Error(err))
				continue
			}
			w.publish(catalog)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("catalog watcher error", zap.Error(err))
		}
	}
}

func (w *CatalogWatcher) publish(catalog *data.Catalog) {
	for {
		select {
		case w.updates <- catalog:
			return
		default:
		}
		select {
		case <-w.updates:
		default:
		}
	}
}
