package cachemanager

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type exampleDefinition struct {
	Key     string
	Version int
}

func TestNewInMemoryCacheManager(t *testing.T) {
	require.NotPanics(t, func() {
		NewInMemoryCacheManager[string, string]("test", DefaultExpiration, DefaultCleanupInterval)
	})
}

func TestInMemoryCacheManager_GetExistingValue_StructType(t *testing.T) {
	cache := NewInMemoryCacheManager[string, exampleDefinition]("definitions", DefaultExpiration, DefaultCleanupInterval)
	def := exampleDefinition{Key: "orderCreated", Version: 2}
	cache.Set(context.Background(), "orderCreated", def, DefaultExpiration)

	got, ok := cache.Get(context.Background(), "orderCreated")
	require.True(t, ok)
	require.Equal(t, def, got)
}

func TestInMemoryCacheManager_GetWithNoExistingValue(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("definitions", DefaultExpiration, DefaultCleanupInterval)

	got, ok := cache.Get(context.Background(), "orderCreated")
	require.False(t, ok)
	require.Empty(t, got)
}

func TestInMemoryCacheManager_GetWithWrongValueType(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("definitions", DefaultExpiration, DefaultCleanupInterval)
	cache.cache.Set("orderCreated", 42, DefaultExpiration)

	got, ok := cache.Get(context.Background(), "orderCreated")
	require.False(t, ok)
	require.Empty(t, got)
}

func TestInMemoryCacheManager_DeleteWithNoKeysDoesNothing(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("definitions", DefaultExpiration, DefaultCleanupInterval)
	cache.Set(context.Background(), "a", "1", DefaultExpiration)

	require.NoError(t, cache.Delete(context.Background()))
	require.Equal(t, 1, cache.Count(context.Background()))
}

func TestInMemoryCacheManager_DeleteExistingValue(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("definitions", DefaultExpiration, DefaultCleanupInterval)
	cache.Set(context.Background(), "a", "1", DefaultExpiration)
	cache.Set(context.Background(), "b", "2", DefaultExpiration)

	require.NoError(t, cache.Delete(context.Background(), "a"))

	_, ok := cache.Get(context.Background(), "a")
	require.False(t, ok)
	got, ok := cache.Get(context.Background(), "b")
	require.True(t, ok)
	require.Equal(t, "2", got)
}

func TestInMemoryCacheManager_Flush(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("definitions", DefaultExpiration, DefaultCleanupInterval)
	cache.Set(context.Background(), "a", "1", DefaultExpiration)
	cache.Set(context.Background(), "b", "2", DefaultExpiration)
	require.Equal(t, 2, cache.Count(context.Background()))

	require.NoError(t, cache.Flush(context.Background()))
	require.Equal(t, 0, cache.Count(context.Background()))
}
