package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching analysis results
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a cache key for one operation over one document.
// The engine is deterministic, so (operation, text) fully identifies
// the result.
func Key(operation, text string) string {
	hash := sha256.Sum256([]byte(operation + ":" + text))
	return "clauselens:v1:" + hex.EncodeToString(hash[:])
}
