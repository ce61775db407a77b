// Package cryptox implements the password hashing used by the credential
// store: PBKDF2-HMAC-SHA256 over a per-entry random salt.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/checkmygrade/internal/common"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// DefaultIterations is the PBKDF2 work factor used when none is configured.
	DefaultIterations = 100_000
	// MinIterations keeps test and legacy stores usable while rejecting zero.
	MinIterations = 1
	// KeyLen is the derived hash width in bytes.
	KeyLen = 32
)

var ErrInvalidIterations = errors.New("invalid pbkdf2 iteration count")

// DeriveKey runs PBKDF2-HMAC-SHA256 with the given work factor.
func DeriveKey(password, salt []byte, iterations int) []byte {
	return pbkdf2.Key(password, salt, iterations, KeyLen, sha256.New)
}

// PasswordHasher hashes and checks passwords with a fixed iteration count.
// Salts and hashes travel hex encoded, the way they are stored on disk.
type PasswordHasher struct {
	iterations int
}

func NewPasswordHasher(iterations int) (*PasswordHasher, error) {
	if iterations < MinIterations {
		return nil, fmt.Errorf("%w: %d", ErrInvalidIterations, iterations)
	}
	return &PasswordHasher{iterations: iterations}, nil
}

// Iterations reports the configured work factor.
func (h *PasswordHasher) Iterations() int {
	return h.iterations
}

// NewSalt draws common.SaltSize random bytes and returns them hex encoded.
func (h *PasswordHasher) NewSalt() (string, error) {
	return common.MakeRandHexString(common.SaltSize)
}

// Hash derives the hex hash of password under saltHex.
func (h *PasswordHasher) Hash(password []byte, saltHex string) (string, error) {
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return "", fmt.Errorf("decode salt: %w", err)
	}
	return hex.EncodeToString(DeriveKey(password, salt, h.iterations)), nil
}

// Check recomputes the hash of password under saltHex and compares it with
// hashHex in constant time. Missing or malformed salt or hash never match.
func (h *PasswordHasher) Check(password []byte, saltHex, hashHex string) bool {
	if saltHex == "" || hashHex == "" {
		return false
	}
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false
	}
	stored, err := hex.DecodeString(hashHex)
	if err != nil || len(stored) != KeyLen {
		return false
	}
	candidate := DeriveKey(password, salt, h.iterations)
	defer common.WipeByteArray(candidate)

	return subtle.ConstantTimeCompare(stored, candidate) == 1
}
