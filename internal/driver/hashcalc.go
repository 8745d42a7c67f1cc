package driver

import (
	"crypto/sha256"
	"encoding/binary"

	"prelex/internal/prelex"
)

// Digest is a sha256 sum.
type Digest [sha256.Size]byte

// combineDigest: H(content || dep1 || dep2 ...). deps уже в детерминированном порядке.
func combineDigest(content Digest, deps ...Digest) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	for _, d := range deps {
		_, _ = h.Write(d[:])
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// rulesDigest identifies the active rule set: the grammar version plus the
// ordered rule names, so a scanner with disabled rules never reads results
// cached by another.
func rulesDigest(sc *prelex.Scanner) Digest {
	h := sha256.New()
	var ver [2]byte
	binary.BigEndian.PutUint16(ver[:], prelex.RulesVersion)
	_, _ = h.Write(ver[:])
	for _, r := range sc.Rules() {
		_, _ = h.Write([]byte(r.Name))
		_, _ = h.Write([]byte{0})
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// CacheKey returns the cache key of a file content hash scanned by sc.
func CacheKey(contentHash [32]byte, sc *prelex.Scanner) Digest {
	return combineDigest(Digest(contentHash), rulesDigest(sc))
}
