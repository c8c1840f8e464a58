package settings

import (
	"errors"
	"testing"

	"github.com/kerbaras/lectures/pkg/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type brokenStore struct{}

func (brokenStore) Get(string) (string, error) { return "", errors.New("read failed") }
func (brokenStore) Set(string, string) error   { return errors.New("write failed") }
func (brokenStore) Close() error               { return nil }

func TestDefaults(t *testing.T) {
	prefs := NewPreferences(data.NewMemoryStore(), zap.NewNop())
	assert.False(t, prefs.DarkMode())
	assert.False(t, prefs.IntroShown())
}

func TestDarkModeRoundTrip(t *testing.T) {
	store := data.NewMemoryStore()
	prefs := NewPreferences(store, zap.NewNop())

	require.NoError(t, prefs.SetDarkMode(true))
	assert.True(t, prefs.DarkMode())

	raw, err := store.Get(data.DarkModeKey)
	require.NoError(t, err)
	assert.Equal(t, "true", raw)

	assert.False(t, prefs.ToggleDarkMode())
	raw, _ = store.Get(data.DarkModeKey)
	assert.Equal(t, "false", raw)
}

func TestIntroShownPersists(t *testing.T) {
	store := data.NewMemoryStore()
	require.NoError(t, NewPreferences(store, nil).MarkIntroShown())

	assert.True(t, NewPreferences(store, nil).IntroShown())
}

func TestGarbageValueIsFalse(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	store := data.NewMemoryStore()
	require.NoError(t, store.Set(data.DarkModeKey, "sometimes"))

	prefs := NewPreferences(store, zap.New(core))
	assert.False(t, prefs.DarkMode())
	assert.Equal(t, 1, logs.FilterMessage("invalid preference value").Len())
}

func TestBrokenStore(t *testing.T) {
	prefs := NewPreferences(brokenStore{}, zap.NewNop())

	assert.False(t, prefs.IntroShown())
	assert.Error(t, prefs.MarkIntroShown())
	assert.False(t, prefs.DarkMode())
	assert.True(t, prefs.ToggleDarkMode())
	assert.True(t, prefs.DarkMode())
	assert.False(t, prefs.ToggleDarkMode())
	assert.True(t, prefs.ToggleDarkMode())
}

func TestDarkModeLoadedOnce(t *testing.T) {
	store := data.NewMemoryStore()
	require.NoError(t, store.Set(data.DarkModeKey, "true"))
	prefs := NewPreferences(store, zap.NewNop())

	require.NoError(t, store.Set(data.DarkModeKey, "false"))
	assert.True(t, prefs.DarkMode())
}
