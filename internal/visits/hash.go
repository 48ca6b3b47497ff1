package visits

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Hasher hashes client IPs with a per-process salt
type Hasher struct {
	salt string
}

// NewHasher uses the given salt
func NewHasher(salt string) *Hasher {
	return &Hasher{salt: salt}
}

// NewRandomHasher generates a random salt. Hashes are stable for the process
// lifetime only.
func NewRandomHasher() (*Hasher, error) {
	salt, err := RandomToken()
	if err != nil {
		return nil, err
	}
	return NewHasher(salt), nil
}

// Hash returns a truncated salted SHA-256 of ip
func (h *Hasher) Hash(ip string) string {
	sum := sha256.Sum256([]byte(ip + h.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// RandomToken returns 32 random bytes hex-encoded
func RandomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
