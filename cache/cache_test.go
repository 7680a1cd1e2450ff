package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyStableAndDistinct(t *testing.T) {
	k1 := Key("extract", "prompt", "10")
	k2 := Key("extract", "prompt", "10")
	assert.Equal(t, k1, k2)
	assert.Len(t, k1, 32)

	assert.NotEqual(t, k1, Key("extract", "prompt", "5"))
	assert.NotEqual(t, k1, Key("storyline", "prompt", "10"))
}

func TestMemoryGetSet(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(10, time.Minute)

	_, ok := m.Get(ctx, "missing")
	assert.False(t, ok)

	m.Set(ctx, "k", []byte("v"))
	got, ok := m.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, []byte("v"), got)
	assert.Equal(t, 1, m.Len())
}

func TestMemoryTTLExpiry(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(10, 20*time.Millisecond)

	m.Set(ctx, "k", []byte("v"))
	time.Sleep(50 * time.Millisecond)

	_, ok := m.Get(ctx, "k")
	assert.False(t, ok)
}

func TestMemoryEvictsAtCapacity(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(2, time.Minute)

	m.Set(ctx, "a", []byte("1"))
	m.Set(ctx, "b", []byte("2"))
	m.Set(ctx, "c", []byte("3"))

	assert.Equal(t, 2, m.Len())
	_, ok := m.Get(ctx, "a")
	assert.False(t, ok, "oldest entry should be evicted")
}

func TestGetOrComputeCachesResult(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(10, time.Minute)

	calls := 0
	compute := func() ([]string, error) {
		calls++
		return []string{"a", "b"}, nil
	}

	v, cached, err := GetOrCompute(ctx, m, "k", compute)
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, []string{"a", "b"}, v)

	v, cached, err = GetOrCompute(ctx, m, "k", compute)
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Equal(t, []string{"a", "b"}, v)
	assert.Equal(t, 1, calls)
}

func TestGetOrComputeNeverCachesFailures(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(10, time.Minute)

	boom := errors.New("boom")
	calls := 0
	compute := func() (string, error) {
		calls++
		if calls == 1 {
			return "", boom
		}
		return "ok", nil
	}

	_, _, err := GetOrCompute(ctx, m, "k", compute)
	require.ErrorIs(t, err, boom)

	v, cached, err := GetOrCompute(ctx, m, "k", compute)
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, "ok", v)
}

func TestGetOrComputeNilCache(t *testing.T) {
	ctx := context.Background()

	calls := 0
	compute := func() (int, error) {
		calls++
		return 42, nil
	}

	for i := 0; i < 2; i++ {
		v, cached, err := GetOrCompute(ctx, nil, "k", compute)
		require.NoError(t, err)
		assert.False(t, cached)
		assert.Equal(t, 42, v)
	}
	assert.Equal(t, 2, calls)
}

func TestGetOrComputeRecomputesCorruptEntry(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(10, time.Minute)
	m.Set(ctx, "k", []byte("not json"))

	v, cached, err := GetOrCompute(ctx, m, "k", func() (map[string]int, error) {
		return map[string]int{"n": 1}, nil
	})
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, 1, v["n"])
}
