package data

// Storage keys shared by every backend.
const (
	ProgressKey   = "courseProgress"
	DarkModeKey   = "darkMode"
	IntroShownKey = "introModalShown"
)

// Store is the durable key-value storage behind progress and preferences.
// Get returns ErrKeyNotFound for keys that were never written.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Close() error
}
