package data

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs only against a real server: LECTURES_TEST_REDIS_ADDR=localhost:6379
func TestRedisStore(t *testing.T) {
	addr := os.Getenv("LECTURES_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("LECTURES_TEST_REDIS_ADDR not set")
	}

	store, err := NewRedisStore(RedisConfig{Addr: addr, DB: 15})
	require.NoError(t, err)
	defer store.Close()

	_, err = store.Get("never-written")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, store.Set(DarkModeKey, "true"))
	value, err := store.Get(DarkModeKey)
	require.NoError(t, err)
	assert.Equal(t, "true", value)
}

func TestRedisStoreUnreachable(t *testing.T) {
	_, err := NewRedisStore(RedisConfig{Addr: "127.0.0.1:1"})
	assert.Error(t, err)
}
