package service

// TokenGenerator mints the opaque credentials that back a session. The raw
// token is what the browser carries; the hash is what the store keeps.
type TokenGenerator interface {
	// Generate returns a new cryptographically random token and its hash.
	Generate() (raw string, hash string, err error)

	// HashToken recomputes the stored form of a raw token, used when
	// resolving an incoming cookie against the session store.
	HashToken(raw string) string
}
