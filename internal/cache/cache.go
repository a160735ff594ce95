// Package cache stores extraction results keyed by document content, so
// re-ingesting unchanged files skips decoding and extraction entirely.
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

// Key derives a cache key from raw document bytes. Identical bytes always
// extract identically, so the content hash fully identifies the result.
func Key(data []byte) string {
	hash := sha256.Sum256(data)
	return "shiftledger:v1:" + hex.EncodeToString(hash[:])
}
