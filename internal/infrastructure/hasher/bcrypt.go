package hasher

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"
)

// DefaultCost matches the work factor accounts have always been hashed with.
const DefaultCost = 12

// Bcrypt hashes passwords on the calling goroutine, with at most a fixed
// number of hashes in flight so a signup burst cannot starve other requests
// of CPU.
type Bcrypt struct {
	cost int
	sem  *semaphore.Weighted
}

// NewBcrypt returns a hasher. cost outside bcrypt's range falls back to
// DefaultCost; concurrency <= 0 uses GOMAXPROCS.
func NewBcrypt(cost, concurrency int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}
	return &Bcrypt{cost: cost, sem: semaphore.NewWeighted(int64(concurrency))}
}

// Hash returns the bcrypt hash of password.
func (b *Bcrypt) Hash(ctx context.Context, password string) (string, error) {
	if err := b.sem.Acquire(ctx, 1); err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	defer b.sem.Release(1)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Compare reports whether password matches hash. A mismatch is not an error.
func (b *Bcrypt) Compare(ctx context.Context, hash, password string) (bool, error) {
	if err := b.sem.Acquire(ctx, 1); err != nil {
		return false, fmt.Errorf("compare password: %w", err)
	}
	defer b.sem.Release(1)

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("compare password: %w", err)
	}
}
