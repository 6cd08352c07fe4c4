// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"

	"docs/config"
	"docs/internal/domain/service"
	"docs/internal/errors"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
// The plaintext is first keyed with the user's credential through HMAC-SHA256, so the
// credential takes part in the digest and long passwords are not truncated at 72 bytes.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	return NewBcryptHasherWithCost(cost)
}

// NewBcryptHasherWithCost creates a hasher with an explicit bcrypt cost.
// Out-of-range costs fall back to bcrypt.DefaultCost.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a bcrypt digest of the credential-keyed password.
func (h *bcryptHasher) Hash(password, credential string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword(preHash(password, credential), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt.GenerateFromPassword")
	}

	return string(bytes), nil
}

// Check compares a plaintext password and credential with a bcrypt digest.
func (h *bcryptHasher) Check(password, credential, digest string) bool {
	// err is nil if the password and hash match.
	return bcrypt.CompareHashAndPassword([]byte(digest), preHash(password, credential)) == nil
}

// preHash returns the hex HMAC-SHA256 of password keyed by credential (64 bytes).
func preHash(password, credential string) []byte {
	mac := hmac.New(sha256.New, []byte(credential))
	mac.Write([]byte(password))
	sum := mac.Sum(nil)

	out := make([]byte, hex.EncodedLen(len(sum)))
	hex.Encode(out, sum)

	return out
}
