package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorageRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStorage()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, st.SetJSON(ctx, "k", payload{Name: "x", Count: 3}, 0))

	var got payload
	require.NoError(t, st.GetJSON(ctx, "k", &got))
	assert.Equal(t, payload{Name: "x", Count: 3}, got)
}

func TestMemoryStorageMissingKey(t *testing.T) {
	st := NewMemoryStorage()

	var got map[string]string
	assert.ErrorIs(t, st.GetJSON(context.Background(), "absent", &got), ErrKeyNotFound)
}

func TestMemoryStorageDelete(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStorage()

	require.NoError(t, st.SetJSON(ctx, "a", 1, 0))
	require.NoError(t, st.SetJSON(ctx, "b", 2, 0))
	require.NoError(t, st.Delete(ctx, "a", "b"))

	var got int
	assert.ErrorIs(t, st.GetJSON(ctx, "a", &got), ErrKeyNotFound)
	assert.ErrorIs(t, st.GetJSON(ctx, "b", &got), ErrKeyNotFound)
}

func TestMemoryStorageExpiry(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStorage()

	require.NoError(t, st.SetJSON(ctx, "ttl", "v", 10*time.Millisecond))

	var got string
	require.NoError(t, st.GetJSON(ctx, "ttl", &got))

	time.Sleep(20 * time.Millisecond)
	assert.ErrorIs(t, st.GetJSON(ctx, "ttl", &got), ErrKeyNotFound)
}

func TestMemoryStorageFailWrites(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStorage()
	st.FailWrites = true

	assert.Error(t, st.SetJSON(ctx, "k", "v", 0))
}

func TestForSession(t *testing.T) {
	assert.Equal(t, "astro_cart", ForSession(KeyCart, ""))
	assert.Equal(t, "astro_cart:abc", ForSession(KeyCart, "abc"))
}
