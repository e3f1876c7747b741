package cachemanager

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type lookup struct {
	Key string
}

func countingLoader(calls *int, err error) func(ctx context.Context, in lookup) (exampleDefinition, error) {
	return func(ctx context.Context, in lookup) (exampleDefinition, error) {
		*calls++
		if err != nil {
			return exampleDefinition{}, err
		}
		return exampleDefinition{Key: in.Key, Version: *calls}, nil
	}
}

func TestReadThroughCache_Get_LoadsOnceThenHits(t *testing.T) {
	calls := 0
	cache := NewInMemoryCacheManager[string, exampleDefinition]("definitions", DefaultExpiration, DefaultCleanupInterval)
	rt := NewReadThroughCache[string, exampleDefinition, lookup](cache, countingLoader(&calls, nil), false)

	first, err := rt.Get(context.Background(), "orderCreated", lookup{Key: "orderCreated"}, time.Minute)
	require.NoError(t, err)
	second, err := rt.Get(context.Background(), "orderCreated", lookup{Key: "orderCreated"}, time.Minute)
	require.NoError(t, err)

	require.Equal(t, 1, calls)
	require.Equal(t, first, second)
}

func TestReadThroughCache_Get_WithCacheDisabled(t *testing.T) {
	calls := 0
	cache := NewInMemoryCacheManager[string, exampleDefinition]("definitions", DefaultExpiration, DefaultCleanupInterval)
	rt := NewReadThroughCache[string, exampleDefinition, lookup](cache, countingLoader(&calls, nil), true)

	_, err := rt.Get(context.Background(), "k", lookup{Key: "k"}, time.Minute)
	require.NoError(t, err)
	_, err = rt.Get(context.Background(), "k", lookup{Key: "k"}, time.Minute)
	require.NoError(t, err)

	require.Equal(t, 2, calls)
	require.Equal(t, 0, cache.Count(context.Background()))
}

func TestReadThroughCache_Get_ErrorIsNotCached(t *testing.T) {
	calls := 0
	loadErr := errors.New("database unavailable")
	cache := NewInMemoryCacheManager[string, exampleDefinition]("definitions", DefaultExpiration, DefaultCleanupInterval)
	rt := NewReadThroughCache[string, exampleDefinition, lookup](cache, countingLoader(&calls, loadErr), false)

	_, err := rt.Get(context.Background(), "k", lookup{Key: "k"}, time.Minute)
	require.ErrorIs(t, err, loadErr)
	_, err = rt.Get(context.Background(), "k", lookup{Key: "k"}, time.Minute)
	require.ErrorIs(t, err, loadErr)

	require.Equal(t, 2, calls)
}

func TestReadThroughCache_Invalidate(t *testing.T) {
	calls := 0
	cache := NewInMemoryCacheManager[string, exampleDefinition]("definitions", DefaultExpiration, DefaultCleanupInterval)
	rt := NewReadThroughCache[string, exampleDefinition, lookup](cache, countingLoader(&calls, nil), false)

	_, err := rt.Get(context.Background(), "k", lookup{Key: "k"}, time.Minute)
	require.NoError(t, err)
	require.NoError(t, rt.Invalidate(context.Background(), "k"))

	got, err := rt.Get(context.Background(), "k", lookup{Key: "k"}, time.Minute)
	require.NoError(t, err)
	require.Equal(t, 2, calls)
	require.Equal(t, 2, got.Version)
}

func TestReadThroughCache_InvalidateWithCacheDisabled(t *testing.T) {
	calls := 0
	rt := NewReadThroughCache[string, exampleDefinition, lookup](nil, countingLoader(&calls, nil), true)

	require.NoError(t, rt.Invalidate(context.Background(), "k"))
}
