package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"

	"marquee/internal/domain/service"

	"github.com/pkg/errors"
)

// tokenByteLength is the entropy of a raw session token before encoding.
const tokenByteLength = 32

// randomTokenGenerator implements TokenGenerator with crypto/rand tokens and
// SHA-256 stored hashes. The database only ever sees the hash, so a leaked
// sessions table cannot be replayed against the API.
type randomTokenGenerator struct{}

// NewTokenGenerator is the constructor for randomTokenGenerator.
func NewTokenGenerator() service.TokenGenerator {
	return &randomTokenGenerator{}
}

// Generate returns a new unguessable token and its stored hash.
func (g *randomTokenGenerator) Generate() (string, string, error) {
	buf := make([]byte, tokenByteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", "", errors.Wrap(err, "failed to read random bytes for session token")
	}

	raw := base64.RawURLEncoding.EncodeToString(buf)

	return raw, g.HashToken(raw), nil
}

// HashToken computes the SHA-256 hex digest stored in place of the raw token.
func (g *randomTokenGenerator) HashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))

	return hex.EncodeToString(sum[:])
}
