package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillbridge_backend/internal/config"
)

func TestKeyPoolDeduplicates(t *testing.T) {
	pool := NewKeyPool([]string{"key-a", " key-b ", "key-a", "", "key-c"})

	assert.Equal(t, 3, pool.Size())
	assert.True(t, pool.HasKey())
	assert.Equal(t, "key-a", pool.Current())
}

func TestKeyPoolRotationWrapsAround(t *testing.T) {
	pool := NewKeyPool([]string{"key-a", "key-b", "key-c"})

	seen := []string{pool.Current()}
	for i := 0; i < pool.Size(); i++ {
		pool.Rotate()
		seen = append(seen, pool.Current())
	}

	assert.Equal(t, []string{"key-a", "key-b", "key-c", "key-a"}, seen)
}

func TestKeyPoolRotateSingleKeyIsNoop(t *testing.T) {
	pool := NewKeyPool([]string{"only"})

	pool.Rotate()
	pool.Rotate()
	assert.Equal(t, "only", pool.Current())
}

func TestKeyPoolEmpty(t *testing.T) {
	pool := NewKeyPool(nil)

	assert.False(t, pool.HasKey())
	assert.Equal(t, "", pool.Current())
	pool.Rotate() // must not panic
}

func TestKeyPoolFromEnvMergesAllShapes(t *testing.T) {
	t.Setenv("GEMINI_API_KEY_1", "numbered-1")
	t.Setenv("GEMINI_API_KEY_2", "numbered-2")

	pool := NewKeyPoolFromEnv(config.GeminiConfig{
		APIKey:  "single",
		APIKeys: "listed-1, numbered-1 ,listed-2",
	})

	require.Equal(t, 5, pool.Size())
	assert.Equal(t, "single", pool.Current())

	var order []string
	for i := 0; i < pool.Size(); i++ {
		order = append(order, pool.Current())
		pool.Rotate()
	}
	assert.Equal(t, []string{"single", "numbered-1", "numbered-2", "listed-1", "listed-2"}, order)
}

func TestKeyPoolFromEnvNumberedSeriesStopsAtGap(t *testing.T) {
	t.Setenv("GEMINI_API_KEY_1", "numbered-1")
	t.Setenv("GEMINI_API_KEY_3", "numbered-3")

	pool := NewKeyPoolFromEnv(config.GeminiConfig{})
	assert.Equal(t, 1, pool.Size())
}
