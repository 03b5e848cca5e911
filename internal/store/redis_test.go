package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisKV(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	kv := NewRedisKV(addr, 0)
	defer kv.Close()
	require.NoError(t, kv.Ping(ctx))

	key := "test:" + t.Name()
	require.NoError(t, kv.Set(ctx, key, []byte("blob")))

	v, ok, err := kv.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "blob", string(v))

	_, ok, err = kv.Get(ctx, key+":missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisKVUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	kv := NewRedisKV("127.0.0.1:1", 0)
	defer kv.Close()
	_, _, err := kv.Get(ctx, "anything")
	assert.Error(t, err)
}
