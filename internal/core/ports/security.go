package ports

import "context"

// Claims is the decoded payload of a verified bearer token.
type Claims struct {
	UserID string
}

// TokenIssuer signs and verifies bearer tokens.
type TokenIssuer interface {
	Issue(userID string) (string, error)
	// Verify returns domain.ErrInvalidToken for any malformed or badly signed token.
	Verify(token string) (*Claims, error)
}

// PasswordHasher hashes and checks stored credentials.
type PasswordHasher interface {
	Hash(ctx context.Context, password string) (string, error)
	Compare(ctx context.Context, hash, password string) (bool, error)
}

// IdempotencyStore remembers which paste a client request key produced.
type IdempotencyStore interface {
	// Lookup returns the paste id stored for key, or "" on a miss.
	Lookup(ctx context.Context, authorID, key string) (string, error)
	Remember(ctx context.Context, authorID, key, pasteID string) error
}
