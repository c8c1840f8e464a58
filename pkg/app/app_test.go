package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/kerbaras/lectures/pkg/catalog"
	"github.com/kerbaras/lectures/pkg/config"
	"github.com/kerbaras/lectures/pkg/data"
	"github.com/kerbaras/lectures/pkg/navigation"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, args ...string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	config.RegisterFlags(fs)
	args = append([]string{
		"--storage.driver=memory",
		"--logging.file_path=" + filepath.Join(dir, "logs", "lectures.log"),
		"--download.dir=" + filepath.Join(dir, "downloads"),
		"--ui.lang=en",
	}, args...)
	require.NoError(t, fs.Parse(args))

	cfg, err := config.Load(fs)
	require.NoError(t, err)
	return cfg
}

func TestNewLoadsSampleCatalog(t *testing.T) {
	a, err := New(context.Background(), testConfig(t))
	require.NoError(t, err)
	defer a.Close()

	catalog := a.Lectures.Catalog()
	require.NotNil(t, catalog)
	assert.NotEmpty(t, catalog.Courses)
	assert.NotNil(t, catalog.Exams)
	assert.Equal(t, "en", a.Tr.Lang())
	assert.FileExists(t, a.Config.Logging.FilePath)
}

func TestNewWithStore(t *testing.T) {
	store := data.NewMemoryStore()
	require.NoError(t, store.Set(data.DarkModeKey, "true"))

	a, err := New(context.Background(), testConfig(t), WithStore(store))
	require.NoError(t, err)
	defer a.Close()

	assert.True(t, a.Prefs.DarkMode())
}

func TestNewFailsOnUnreachableRedis(t *testing.T) {
	cfg := testConfig(t, "--storage.driver=redis", "--storage.redis.addr=127.0.0.1:1")
	_, err := New(context.Background(), cfg)
	assert.Error(t, err)
}

func TestCatalogSource(t *testing.T) {
	cfg := testConfig(t)
	assert.Equal(t, catalog.Sample().String(), CatalogSource(cfg).String())

	cfg.Catalog.Dir = t.TempDir()
	_, ok := CatalogSource(cfg).(*catalog.FSSource)
	assert.True(t, ok)

	cfg.Catalog.URL = "https://catalog.test"
	_, ok = CatalogSource(cfg).(*catalog.HTTPSource)
	assert.True(t, ok)
}

func TestCatalogFromDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "catalog.yaml"), []byte(`
courses:
  - key: demo
    title: Demo
    file: demo.json
`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "demo.json"), []byte(`{"teachers": [{"id": 1, "name": "Ali", "classes": []}]}`), 0o644))

	a, err := New(context.Background(), testConfig(t, "--catalog.dir="+dir))
	require.NoError(t, err)
	defer a.Close()

	course, err := a.Lectures.Course("demo")
	require.NoError(t, err)
	assert.Equal(t, "Ali", course.Teachers[0].Name)
}

func TestEnv(t *testing.T) {
	a, err := New(context.Background(), testConfig(t, "--ui.transition=0s"))
	require.NoError(t, err)
	defer a.Close()

	env := a.Env()
	assert.Equal(t, navigation.Home, env.Nav.Page())
	assert.Zero(t, env.Nav.MinDisplay())
	assert.Same(t, a.Downloader, env.Downloader)
}
