package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// TipKey generates a cache key for a tutor tip, keyed by the checked
// text and the provider/model that would generate it.
func TipKey(text, provider, model string) string {
	hash := sha256.Sum256([]byte(provider + "\x00" + model + "\x00" + text))
	return "grammatika:v1:" + hex.EncodeToString(hash[:])
}
