// Package auth verifies the admin shared secret. The verifier is an
// interface so the plain-equality check can be swapped for a stronger scheme
// without touching the middleware or handlers.
package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier checks an admin credential supplied with a request.
type CredentialVerifier interface {
	Verify(password string) bool
}

// SharedSecret compares the supplied password against a configured secret in
// constant time.
type SharedSecret struct {
	secret string
}

func NewSharedSecret(secret string) *SharedSecret {
	return &SharedSecret{secret: secret}
}

func (s *SharedSecret) Verify(password string) bool {
	if s.secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(s.secret), []byte(password)) == 1
}

// BcryptHash verifies the supplied password against a bcrypt hash, for
// deployments that do not want the secret in the environment in clear text.
type BcryptHash struct {
	hash []byte
}

func NewBcryptHash(hash string) *BcryptHash {
	return &BcryptHash{hash: []byte(hash)}
}

func (b *BcryptHash) Verify(password string) bool {
	return bcrypt.CompareHashAndPassword(b.hash, []byte(password)) == nil
}
