package hash

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltLen = 16 // random bytes, stored as 32 hex chars
	keyLen  = 32 // SHA-256 output size
)

var ErrMalformedHash = errors.New("malformed password hash")

// Hasher derives and verifies password hashes with PBKDF2-HMAC-SHA256.
// The stored value is hex(salt) || hex(key). New hashes always use the
// current iteration count; verification also tries the previous counts,
// so the work factor can be raised without invalidating old records.
type Hasher struct {
	iterations int
	previous   []int
}

// NewHasher configures the current work factor plus any iteration
// counts used by records hashed before the last increase.
func NewHasher(iterations int, previous ...int) *Hasher {
	if iterations < 1 {
		iterations = 100000
	}
	return &Hasher{iterations: iterations, previous: previous}
}

// Hash derives a salted hash from the password. Never stores or
// compares cleartext.
func (h *Hasher) Hash(password string) (string, error) {
	raw := make([]byte, saltLen)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	salt := hex.EncodeToString(raw)
	key := pbkdf2.Key([]byte(password), []byte(salt), h.iterations, keyLen, sha256.New)
	return salt + hex.EncodeToString(key), nil
}

// Verify recomputes the hash with the stored salt and compares in
// constant time, trying the current iteration count first and then
// each previous one.
func (h *Hasher) Verify(stored, password string) bool {
	if len(stored) != 2*saltLen+2*keyLen {
		return false
	}
	salt := stored[:2*saltLen]
	want := []byte(stored[2*saltLen:])

	matched := false
	for _, iterations := range append([]int{h.iterations}, h.previous...) {
		key := pbkdf2.Key([]byte(password), []byte(salt), iterations, keyLen, sha256.New)
		if subtle.ConstantTimeCompare([]byte(hex.EncodeToString(key)), want) == 1 {
			matched = true
		}
	}
	return matched
}
