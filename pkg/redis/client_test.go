package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client, err := NewClient("redis://"+mr.Addr(), "test", zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return mr, client
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name        string
		url         string
		expectError bool
	}{
		{
			name:        "invalid URL",
			url:         "invalid://url",
			expectError: true,
		},
		{
			name:        "empty URL",
			url:         "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.url, "test", zap.NewNop())
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, client)
			}
		})
	}
}

func TestGetSetDelete(t *testing.T) {
	_, client := setupTestRedis(t)
	ctx := context.Background()

	key := client.KeyBuilder.KeyBlogByID(42)

	// Missing key is a cache miss, not an error worth acting on.
	_, err := client.Get(ctx, key)
	assert.True(t, IsCacheMiss(err))

	require.NoError(t, client.Set(ctx, key, "cached-blog", TTLBlog))

	val, err := client.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "cached-blog", val)

	n, err := client.Exists(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, client.Delete(ctx, key))

	_, err = client.Get(ctx, key)
	assert.True(t, IsCacheMiss(err))
}

func TestSetRespectsTTL(t *testing.T) {
	mr, client := setupTestRedis(t)
	ctx := context.Background()

	key := client.KeyBuilder.KeyBlogsByUser("author-1")
	require.NoError(t, client.Set(ctx, key, "[]", TTLBlogList))

	mr.FastForward(TTLBlogList + time.Second)

	_, err := client.Get(ctx, key)
	assert.True(t, IsCacheMiss(err))
}

func TestHealth(t *testing.T) {
	mr, client := setupTestRedis(t)

	assert.NoError(t, client.Health(context.Background()))

	mr.Close()
	assert.Error(t, client.Health(context.Background()))
}
