package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressLabel(t *testing.T) {
	assert.Equal(t, "40% complete (2/5)", MustNew(English).Progress(40, 2, 5))
	assert.Equal(t, "40% مكتمل (2/5)", MustNew(Arabic).Progress(40, 2, 5))
}

func TestUnknownLanguage(t *testing.T) {
	_, err := New("fr")
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
}

func TestUnknownKeyFallsBack(t *testing.T) {
	tr := MustNew(English)
	assert.Equal(t, "no.such.key", tr.T("no.such.key"))

	var nilTr *Translator
	assert.Equal(t, KeyBack, nilTr.T(KeyBack))
}

func TestCatalogsHaveSameKeys(t *testing.T) {
	for key := range catalog[English] {
		_, ok := catalog[Arabic][key]
		assert.True(t, ok, "arabic missing %s", key)
	}
	assert.Len(t, catalog[Arabic], len(catalog[English]))
}

func TestCountAndTabs(t *testing.T) {
	tr, err := New(Arabic)
	require.NoError(t, err)
	assert.True(t, tr.RTL())
	assert.Equal(t, "3 فصل", tr.Count(KeyClassCount, 3))

	key, ok := TabKey("notes")
	require.True(t, ok)
	assert.Equal(t, "Notes", MustNew(English).T(key))

	_, ok = TabKey("videos")
	assert.False(t, ok)
}
