// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// The credential is the per-user secret material (see entity.User.Credential)
// combined with the plaintext before hashing.
type PasswordHasher interface {
	// Hash derives a digest from a plaintext password and the user's credential.
	Hash(password, credential string) (string, error)

	// Check reports whether password and credential produce the given digest.
	Check(password, credential, digest string) bool
}
