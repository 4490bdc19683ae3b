package wordprobe

import (
	"crypto/sha256"
	"math/big"
)

// HashFunc produces the digest a key's slot placement is derived from, read
// as a single non-negative integer. Overrides must be pure functions of the
// key text; the index/step arithmetic on top of the digest is fixed.
type HashFunc func(key string) *big.Int

// The default digests the UTF-8 bytes of the key with SHA-256.
func defaultHashFunc(key string) *big.Int {
	sum := sha256.Sum256([]byte(key))
	return new(big.Int).SetBytes(sum[:])
}
