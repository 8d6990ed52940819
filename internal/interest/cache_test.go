package interest_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/trip-planner/internal/interest"
)

func TestCache_GetReturnsCopy(t *testing.T) {
	c := interest.NewCache(time.Minute, 0)
	c.Set("k", []string{"a", "b"})

	got, ok := c.Get("k")
	assert.True(t, ok)
	got[0] = "mutated"

	again, _ := c.Get("k")
	assert.Equal(t, []string{"a", "b"}, again)
}

func TestCache_Miss(t *testing.T) {
	c := interest.NewCache(time.Minute, 0)

	_, ok := c.Get("missing")

	assert.False(t, ok)
}

func TestCache_Capped(t *testing.T) {
	c := interest.NewCache(time.Minute, 2)
	c.Set("a", []string{"1"})
	c.Set("b", []string{"2"})
	c.Set("c", []string{"3"})

	_, ok := c.Get("c")
	assert.False(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestCache_ExpiredEntriesMakeRoom(t *testing.T) {
	c := interest.NewCache(20*time.Millisecond, 1)
	c.Set("a", []string{"1"})

	time.Sleep(40 * time.Millisecond)
	c.Set("b", []string{"2"})

	got, ok := c.Get("b")
	assert.True(t, ok)
	assert.Equal(t, []string{"2"}, got)
}

func TestCache_ConcurrentSetsStayNearCap(t *testing.T) {
	const maxEntries, writers = 5, 20
	c := interest.NewCache(time.Minute, maxEntries)

	var wg sync.WaitGroup
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Set(fmt.Sprintf("k%d", i), []string{"v"})
		}()
	}
	wg.Wait()

	assert.GreaterOrEqual(t, c.Len(), maxEntries)
	assert.LessOrEqual(t, c.Len(), maxEntries+writers)
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "i like sushi", interest.CacheKey("  I like SUSHI "))
}
