package cache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gifsaver/pkg/models"
)

func sampleResults() []models.GIF {
	return []models.GIF{
		{ID: "a", Title: "cat one", Rating: "g"},
		{ID: "b", Title: "cat two", Rating: "pg"},
	}
}

func TestGetMiss(t *testing.T) {
	c := New()
	results, ok := c.Get("cat")
	assert.False(t, ok)
	assert.Nil(t, results)
}

func TestSetThenGet(t *testing.T) {
	c := New()
	c.Set("cat", sampleResults())

	results, ok := c.Get("cat")
	require.True(t, ok)
	assert.Equal(t, sampleResults(), results)
	assert.Equal(t, 1, c.Len())
}

func TestKeysAreNotNormalized(t *testing.T) {
	c := New()
	c.Set("cat", sampleResults())

	for _, key := range []string{"Cat", " cat", "cat ", "CAT"} {
		_, ok := c.Get(key)
		assert.False(t, ok, "key %q must miss", key)
	}
}

func TestEmptyResultIsCached(t *testing.T) {
	c := New()
	c.Set("nothing", []models.GIF{})

	results, ok := c.Get("nothing")
	assert.True(t, ok)
	assert.Empty(t, results)
}

func TestCallersCannotMutateEntries(t *testing.T) {
	c := New()
	input := sampleResults()
	c.Set("cat", input)

	input[0].Title = "changed by caller"
	got, _ := c.Get("cat")
	assert.Equal(t, "cat one", got[0].Title)

	got[1].Title = "changed after get"
	again, _ := c.Get("cat")
	assert.Equal(t, "cat two", again[1].Title)
}

func TestClear(t *testing.T) {
	c := New()
	c.Set("cat", sampleResults())
	c.Set("dog", sampleResults())
	require.Equal(t, 2, c.Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())
}

func TestConcurrentAccess(t *testing.T) {
	c := New()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			c.Set("cat", sampleResults())
		}()
		go func() {
			defer wg.Done()
			c.Get("cat")
		}()
	}
	wg.Wait()

	results, ok := c.Get("cat")
	require.True(t, ok)
	assert.Len(t, results, 2)
}
