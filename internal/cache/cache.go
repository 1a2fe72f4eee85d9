package cache

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"

	"github.com/ppiankov/lithium/internal/model"
)

// Cache memoizes validation results by input fingerprint. Entries live
// for the process lifetime only; validated content is never persisted
// across runs.
type Cache interface {
	Get(key string) (*model.ValidationResult, bool)
	Set(key string, result *model.ValidationResult)
	Clear()
}

// Fingerprint derives the cache key for one validation call. Every input
// is length-framed so that distinct (content, sources, domain, mode)
// tuples can never collide by concatenation.
func Fingerprint(content string, sources []string, domain model.Domain, mode model.Mode) string {
	h := sha256.New()
	writeFramed(h, content)
	for _, s := range sources {
		writeFramed(h, s)
	}
	writeFramed(h, string(domain))
	writeFramed(h, string(mode))
	return "lithium:v1:" + hex.EncodeToString(h.Sum(nil))
}

func writeFramed(h interface{ Write([]byte) (int, error) }, s string) {
	var frame [8]byte
	binary.BigEndian.PutUint64(frame[:], uint64(len(s)))
	_, _ = h.Write(frame[:])
	_, _ = h.Write([]byte(s))
}
