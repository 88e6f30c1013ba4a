package keygen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keyforge/keyforge/internal/request"
)

func mustConfig(t *testing.T, req request.Request) *request.Config {
	t.Helper()

	cfg, err := request.Validate(req)
	require.NoError(t, err)

	return cfg
}

func TestEngineKey(t *testing.T) {
	e := New(mustConfig(t, request.Request{Length: 24}))

	k, err := e.Key()
	require.NoError(t, err)

	assert.Equal(t, 24, k.Len())
	assert.Equal(t, k.Raw(), k.String())

	// the session key is computed once
	again, err := e.Key()
	require.NoError(t, err)
	assert.Same(t, k, again)
}

func TestEngineKeyWrapped(t *testing.T) {
	e := New(mustConfig(t, request.Request{Length: 32, Separator: ":", SepWidth: 4}))

	k, err := e.Key()
	require.NoError(t, err)

	assert.Len(t, k.Raw(), 32)
	assert.Equal(t, k.Raw(), strings.ReplaceAll(k.String(), ":", ""))
	assert.Equal(t, 7, strings.Count(k.String(), ":"))
}

func TestEngineKeys(t *testing.T) {
	e := New(mustConfig(t, request.Request{Length: 16, KeyCount: 5}))

	c, err := e.Keys()
	require.NoError(t, err)

	assert.Equal(t, 5, c.Len())
	assert.Equal(t, []string{"key1", "key2", "key3", "key4", "key5"}, c.Labels())

	for i := 0; i < c.Len(); i++ {
		assert.Equal(t, 16, c.At(i).Len())
	}

	k, ok := c.Get("key3")
	require.True(t, ok)
	assert.Same(t, c.At(2), k)

	_, ok = c.Get("key9")
	assert.False(t, ok)

	// the collection is computed once
	again, err := e.Keys()
	require.NoError(t, err)
	assert.Same(t, c, again)
}

func TestEngineKeysDefaultCount(t *testing.T) {
	e := New(mustConfig(t, request.Request{Length: 16}))

	c, err := e.Keys()
	require.NoError(t, err)

	assert.Equal(t, request.DefaultKeyCount, c.Len())
}

func TestKeyCursor(t *testing.T) {
	k := &Key{text: "ab"}

	assert.True(t, k.HasNext())

	c, err := k.Next()
	require.NoError(t, err)
	assert.Equal(t, byte('a'), c)

	c, err = k.Next()
	require.NoError(t, err)
	assert.Equal(t, byte('b'), c)

	assert.False(t, k.HasNext())

	// the pass is one-shot and does not restart
	_, err = k.Next()
	assert.ErrorIs(t, err, ErrExhausted)
	_, err = k.Next()
	assert.ErrorIs(t, err, ErrExhausted)
}

func TestCollectionCursor(t *testing.T) {
	col := &Collection{
		labels: []string{"key1", "key2"},
		keys:   []*Key{{text: "x"}, {text: "y"}},
	}

	first, err := col.Next()
	require.NoError(t, err)
	assert.Equal(t, "x", first.String())

	second, err := col.Next()
	require.NoError(t, err)
	assert.Equal(t, "y", second.String())

	assert.False(t, col.HasNext())

	_, err = col.Next()
	assert.ErrorIs(t, err, ErrExhausted)
}
