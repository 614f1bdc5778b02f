package cache_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/i18nliner/pkg/cache"
)

func TestLRU_Basic(t *testing.T) {
	c := cache.New[string, string](2)

	_, ok := c.Get("Hello world")
	assert.False(t, ok)

	c.Put("Hello world", "hello_world_23c21974")
	v, ok := c.Get("Hello world")
	require.True(t, ok)
	assert.Equal(t, "hello_world_23c21974", v)

	c.Put("Hello world", "hello_world")
	v, _ = c.Get("Hello world")
	assert.Equal(t, "hello_world", v)
	assert.Equal(t, 1, c.Len())
}

func TestLRU_Eviction(t *testing.T) {
	c := cache.New[string, int](2)
	c.Put("a", 1)
	c.Put("b", 2)
	_, _ = c.Get("a")
	c.Put("c", 3)

	_, ok := c.Get("b")
	assert.False(t, ok, "least recently used entry is evicted")
	_, ok = c.Get("a")
	assert.True(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
	assert.Equal(t, uint64(1), c.Stats().Evictions)
}

func TestLRU_GetOrCompute(t *testing.T) {
	c := cache.New[string, string](4)
	calls := 0
	compute := func(k string) string {
		calls++
		return "<" + k + ">"
	}

	assert.Equal(t, "<*>", c.GetOrCompute("*", compute))
	assert.Equal(t, "<*>", c.GetOrCompute("*", compute))
	assert.Equal(t, 1, calls)

	stats := c.Stats()
	assert.Equal(t, uint64(1), stats.Hits)
	assert.Equal(t, uint64(1), stats.Misses)
}

func TestLRU_RemoveAndClear(t *testing.T) {
	c := cache.New[int, int](3)
	c.Put(1, 1)
	c.Put(2, 2)

	assert.True(t, c.Remove(1))
	assert.False(t, c.Remove(1))
	assert.Equal(t, 1, c.Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())
	_, ok := c.Get(2)
	assert.False(t, ok)

	c.Put(3, 3)
	assert.Equal(t, 1, c.Len())
}

func TestLRU_InvalidCapacity(t *testing.T) {
	assert.Panics(t, func() { cache.New[string, int](0) })
	assert.Panics(t, func() { cache.New[string, int](-1) })
}

func TestLRU_Concurrent(t *testing.T) {
	c := cache.New[string, int](50)

	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 200 {
				key := fmt.Sprintf("k%d", (g*200+i)%100)
				c.Put(key, i)
				_, _ = c.Get(key)
				_ = c.GetOrCompute(key, func(string) int { return i })
			}
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Len(), 50)
}

func BenchmarkLRU_GetOrCompute(b *testing.B) {
	c := cache.New[string, string](128)
	keys := make([]string, 256)
	for i := range keys {
		keys[i] = fmt.Sprintf("text %d", i)
	}

	b.ReportAllocs()
	i := 0
	for b.Loop() {
		c.GetOrCompute(keys[i%len(keys)], func(k string) string { return k })
		i++
	}
}
