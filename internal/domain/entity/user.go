// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"crypto/md5" //nolint:gosec // name-based UUIDs are defined over MD5
	"time"

	"github.com/google/uuid"
)

// User is an account of the documentation site.
// Username is the login identifier and never changes after registration.
type User struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Username  string    // Unique login name.
	Email     string    // The user's contact email.
	Nickname  string    // Optional display name.
	Password  string    // Digest produced by the password hasher, never the plaintext.
	Salt      string    // Per-user salt, combined with the username into the hashing credential.
	CreatedAt time.Time // Timestamp of when this user account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this user's data.
}

// NewUser builds a not yet persisted user with its salt derived from the username.
// The password digest is filled in by the caller once the credential is known.
func NewUser(username, email string) *User {
	return &User{
		Username: username,
		Email:    email,
		Salt:     DeriveSalt(username),
	}
}

// Credential is the secret material mixed into the password hash.
func (u *User) Credential() string {
	return u.Username + u.Salt
}

// DeriveSalt returns the name-based (version 3) UUID of the raw username bytes.
// The same username always yields the same salt.
func DeriveSalt(username string) string {
	sum := md5.Sum([]byte(username)) //nolint:gosec // see import comment

	sum[6] = (sum[6] & 0x0f) | 0x30 // version 3
	sum[8] = (sum[8] & 0x3f) | 0x80 // RFC 4122 variant

	return uuid.UUID(sum).String()
}
