package settings

import (
	"errors"
	"strconv"
	"sync"

	"github.com/kerbaras/lectures/pkg/data"
	"go.uber.org/zap"
)

// Preferences stores the small UI flags that survive restarts. Values are
// written as "true"/"false" strings so the same storage can be shared with
// other clients of the catalog. Dark mode is read once and then served from
// memory, so it keeps working for the session when the store fails.
type Preferences struct {
	store  data.Store
	logger *zap.Logger

	mu   sync.Mutex
	dark bool
}

func NewPreferences(store data.Store, logger *zap.Logger) *Preferences {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Preferences{store: store, logger: logger}
	p.dark = p.flag(data.DarkModeKey)
	return p
}

func (p *Preferences) DarkMode() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.dark
}

// SetDarkMode updates the session value, then persists it.
func (p *Preferences) SetDarkMode(on bool) error {
	p.mu.Lock()
	p.dark = on
	p.mu.Unlock()
	return p.setFlag(data.DarkModeKey, on)
}

// ToggleDarkMode flips dark mode and returns the new value. A failed write
// is logged and the session keeps the new value.
func (p *Preferences) ToggleDarkMode() bool {
	p.mu.Lock()
	p.dark = !p.dark
	on := p.dark
	p.mu.Unlock()
	_ = p.setFlag(data.DarkModeKey, on)
	return on
}

func (p *Preferences) IntroShown() bool {
	return p.flag(data.IntroShownKey)
}

func (p *Preferences) MarkIntroShown() error {
	return p.setFlag(data.IntroShownKey, true)
}

func (p *Preferences) flag(key string) bool {
	raw, err := p.store.Get(key)
	if errors.Is(err, data.ErrKeyNotFound) {
		return false
	}
	if err != nil {
		p.logger.Warn("failed to read preference", zap.String("key", key), zap.Error(err))
		return false
	}
	on, err := strconv.ParseBool(raw)
	if err != nil {
		p.logger.Warn("invalid preference value", zap.String("key", key), zap.String("value", raw))
		return false
	}
	return on
}

func (p *Preferences) setFlag(key string, on bool) error {
	if err := p.store.Set(key, strconv.FormatBool(on)); err != nil {
		p.logger.Warn("failed to save preference", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}
