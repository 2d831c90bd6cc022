package ai

import (
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"skillbridge_backend/internal/config"
)

// KeyPool is an ordered set of Gemini API keys with a process-wide rotation
// cursor. Rotation is a plain atomic increment with no further
// coordination: keys are stateless bearer tokens, so a request racing a
// rotation just uses the key about to be superseded, which is harmless.
type KeyPool struct {
	keys []string
	idx  atomic.Uint32
}

func NewKeyPool(keys []string) *KeyPool {
	seen := make(map[string]bool, len(keys))
	pool := &KeyPool{}
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		pool.keys = append(pool.keys, k)
	}
	return pool
}

// NewKeyPoolFromEnv merges the three supported key shapes in order: the
// single configured key, the numbered GEMINI_API_KEY_1..N series, and the
// comma-separated list. Duplicates keep their first position.
func NewKeyPoolFromEnv(cfg config.GeminiConfig) *KeyPool {
	var keys []string

	if cfg.APIKey != "" {
		keys = append(keys, cfg.APIKey)
	}

	for i := 1; ; i++ {
		key := strings.TrimSpace(os.Getenv(fmt.Sprintf("GEMINI_API_KEY_%d", i)))
		if key == "" {
			break
		}
		keys = append(keys, key)
	}

	if cfg.APIKeys != "" {
		keys = append(keys, strings.Split(cfg.APIKeys, ",")...)
	}

	return NewKeyPool(keys)
}

func (p *KeyPool) Size() int {
	return len(p.keys)
}

func (p *KeyPool) HasKey() bool {
	return len(p.keys) > 0
}

// Current returns the key at the rotation cursor, or "" for an empty pool.
func (p *KeyPool) Current() string {
	if len(p.keys) == 0 {
		return ""
	}
	return p.keys[int(p.idx.Load())%len(p.keys)]
}

// Rotate advances the cursor to the next key. No-op for pools of size <= 1.
func (p *KeyPool) Rotate() {
	if len(p.keys) <= 1 {
		return
	}
	p.idx.Add(1)
}
