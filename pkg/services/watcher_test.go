package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kerbaras/lectures/pkg/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWatcherReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	loader := &mockLoader{}
	w := NewCatalogWatcher(dir, loader, zap.NewNop()).WithDebounce(20 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "catalog.yaml"), []byte("courses: []"), 0o644))

	select {
	case catalog := <-w.Updates():
		assert.Len(t, catalog.Courses, 2)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after file change")
	}

	cancel()
	assert.NoError(t, <-done)
}

func TestWatcherKeepsGoingAfterLoadError(t *testing.T) {
	dir := t.TempDir()
	loader := &mockLoader{loadFunc: func(context.Context) (*data.Catalog, error) {
		return nil, errors.New("half written")
	}}
	w := NewCatalogWatcher(dir, loader, nil).WithDebounce(10 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	go func() {
		time.Sleep(100 * time.Millisecond)
		os.WriteFile(filepath.Join(dir, "exams.json"), []byte("{"), 0o644)
	}()

	assert.NoError(t, w.Run(ctx))
	assert.Empty(t, w.Updates())
}

func TestWatcherMissingDir(t *testing.T) {
	w := NewCatalogWatcher(filepath.Join(t.TempDir(), "nope"), &mockLoader{}, nil)
	assert.Error(t, w.Run(context.Background()))
}

func TestPublishKeepsNewest(t *testing.T) {
	w := NewCatalogWatcher(".", &mockLoader{}, nil)
	first := &data.Catalog{}
	second := &data.Catalog{MaterialTabs: []string{"notes"}}

	w.publish(first)
	w.publish(second)

	assert.Same(t, second, <-w.Updates())
}
