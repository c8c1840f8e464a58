package locale

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/locales/ar"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
)

const (
	English = "en"
	Arabic  = "ar"
)

var ErrUnsupportedLanguage = errors.New("unsupported language")

// Translator renders UI strings in one language. Unknown keys render as the
// key itself.
type Translator struct {
	lang  string
	trans ut.Translator
}

func New(lang string) (*Translator, error) {
	uni := ut.New(en.New(), en.New(), ar.New())

	trans, found := uni.GetTranslator(lang)
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}

	for key, text := range catalog[lang] {
		if err := trans.Add(key, text, false); err != nil {
			return nil, fmt.Errorf("register %s/%s: %w", lang, key, err)
		}
	}
	return &Translator{lang: lang, trans: trans}, nil
}

// MustNew is New for the built-in languages.
func MustNew(lang string) *Translator {
	t, err := New(lang)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Translator) Lang() string {
	return t.lang
}

// RTL reports whether the language is written right to left.
func (t *Translator) RTL() bool {
	return t.lang == Arabic
}

func (t *Translator) T(key string, params ...string) string {
	if t == nil {
		return key
	}
	s, err := t.trans.T(key, params...)
	if err != nil || s == "" {
		return key
	}
	return s
}

// Progress renders the per-class completion label.
func (t *Translator) Progress(percent, completed, total int) string {
	return t.T(KeyProgressClass, strconv.Itoa(percent), strconv.Itoa(completed), strconv.Itoa(total))
}

// Count renders "{n} <noun>" style labels.
func (t *Translator) Count(key string, n int) string {
	return t.T(key, strconv.Itoa(n))
}
