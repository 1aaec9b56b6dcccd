// Package seed provides the session seed and the deterministic PRNG
// shared by terrain generation, color choice, and collectible spawns.
package seed

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"hash/fnv"
	"time"
)

// Generate returns a fresh 64-hex-character session seed derived from
// the current time plus entropy. If the entropy read fails it falls
// back to an FNV-1a digest of the timestamp alone; the seed is only a
// reproducibility handle, not a secret.
func Generate() string {
	buf := make([]byte, 24)
	binary.LittleEndian.PutUint64(buf, uint64(time.Now().UnixNano()))
	if _, err := rand.Read(buf[8:]); err != nil {
		h := fnv.New64a()
		_, _ = h.Write(buf[:8])
		return fmt.Sprintf("%064x", h.Sum64())
	}
	sum := sha256.Sum256(buf)
	return hex.EncodeToString(sum[:])
}

// Valid reports whether s is usable as a session seed. Any non-empty
// string is accepted; pasted seeds do not have to be hex.
func Valid(s string) bool {
	return s != ""
}
