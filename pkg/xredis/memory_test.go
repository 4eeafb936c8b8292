package xredis

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryClient(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryClient()

	require.NoError(t, c.Set(ctx, "tracked:1:0xa", "a"))
	require.NoError(t, c.SetObj(ctx, "tracked:8453:0xb", map[string]string{"amount": "5"}, 0))
	require.NoError(t, c.Set(ctx, "other", "x"))

	ok, err := c.Exist(ctx, "tracked:1:0xa")
	require.NoError(t, err)
	require.True(t, ok)

	keys, err := c.Keys(ctx, "tracked:*")
	require.NoError(t, err)
	sort.Strings(keys)
	require.Equal(t, []string{"tracked:1:0xa", "tracked:8453:0xb"}, keys)

	var obj map[string]string
	require.NoError(t, c.GetObj(ctx, "tracked:8453:0xb", &obj))
	require.Equal(t, "5", obj["amount"])

	require.NoError(t, c.Del(ctx, "tracked:1:0xa", "missing"))
	_, err = c.Get(ctx, "tracked:1:0xa")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryClient_TTL(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryClient()

	require.NoError(t, c.SetObj(ctx, "short", 1, time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	ok, err := c.Exist(ctx, "short")
	require.NoError(t, err)
	require.False(t, ok)

	keys, err := c.Keys(ctx, "*")
	require.NoError(t, err)
	require.Empty(t, keys)
}
