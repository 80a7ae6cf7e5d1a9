package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryCache(t *testing.T) {
	cache := NewMemoryCache()

	_, ok := cache.Get("missing")
	assert.False(t, ok)

	assert.NoError(t, cache.Set("k", "v"))
	got, ok := cache.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", got)

	assert.NoError(t, cache.Set("k", "v2"))
	got, _ = cache.Get("k")
	assert.Equal(t, "v2", got)
}

func TestMemoryCacheConcurrent(t *testing.T) {
	cache := NewMemoryCache()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", i%4)
			_ = cache.Set(key, "v")
			cache.Get(key)
		}(i)
	}
	wg.Wait()
}
