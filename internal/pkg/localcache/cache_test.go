package localcache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache(t *testing.T) {
	cache, err := Open("")
	require.NoError(t, err)

	t.Run("absent key reads as empty, not as an error", func(t *testing.T) {
		assert.Equal(t, "", cache.Get("u1:photoURL"))
	})

	t.Run("set then get", func(t *testing.T) {
		cache.Set("u1:walletAddress", "0xabc")
		assert.Equal(t, "0xabc", cache.Get("u1:walletAddress"))
	})

	t.Run("last write wins", func(t *testing.T) {
		cache.Set("u2:photoURL", "https://img/a.png")
		cache.Set("u2:photoURL", "https://img/b.png")
		assert.Equal(t, "https://img/b.png", cache.Get("u2:photoURL"))
	})

	t.Run("keys are independent", func(t *testing.T) {
		cache.Set("u3:photoURL", "https://img/c.png")
		assert.Equal(t, "", cache.Get("u3:walletAddress"))
	})
}

func TestOpenWithDataDir(t *testing.T) {
	dir := t.TempDir()

	cache, err := Open(dir)
	require.NoError(t, err)
	cache.Set("u1:photoURL", "https://img/x.png")

	reopened, err := Open(dir)
	require.NoError(t, err)
	assert.Equal(t, "https://img/x.png", reopened.Get("u1:photoURL"))
}
