package components

import (
	"testing"
	"time"

	"github.com/kerbaras/lectures/pkg/locale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifierLifecycle(t *testing.T) {
	n := NewNotifier(time.Millisecond)

	cmd := n.Push(LevelSuccess, "Lecture completed")
	require.NotNil(t, cmd)
	require.Len(t, n.Items(), 1)
	assert.Equal(t, PhaseShown, n.Items()[0].Phase)
	assert.Contains(t, n.View(), "✔ Lecture completed")

	leave := cmd()
	next, handled := n.Update(leave)
	assert.True(t, handled)
	require.NotNil(t, next)
	assert.Equal(t, PhaseLeaving, n.Items()[0].Phase)

	remove := next()
	_, handled = n.Update(remove)
	assert.True(t, handled)
	assert.Empty(t, n.Items())
	assert.Empty(t, n.View())
}

func TestNotifierIgnoresOtherMessages(t *testing.T) {
	n := NewNotifier(time.Second)
	_, handled := n.Update("not mine")
	assert.False(t, handled)
}

func TestNotifierStacksIndependently(t *testing.T) {
	n := NewNotifier(time.Millisecond)
	first := n.Push(LevelInfo, "one")
	n.Push(LevelError, "two")

	next, _ := n.Update(first())
	n.Update(next())

	require.Len(t, n.Items(), 1)
	assert.Equal(t, "two", n.Items()[0].Text)
	assert.Contains(t, n.View(), "✖ two")
}

func TestIntroModal(t *testing.T) {
	tr := locale.MustNew(locale.English)

	m := NewIntroModal(false)
	assert.True(t, m.Visible)
	assert.Contains(t, m.View(tr, 100, 30), "Welcome")

	m.Confirm()
	assert.Empty(t, m.View(tr, 100, 30))

	assert.False(t, NewIntroModal(true).Visible)
}
