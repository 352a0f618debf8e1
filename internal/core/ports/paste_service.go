package ports

import (
	"context"

	"github.com/pasteshare/paste-api/internal/core/domain"
)

// CreatePasteInput carries a new paste. Access defaults to PUBLIC.
type CreatePasteInput struct {
	Content        string
	Access         domain.Access
	IdempotencyKey string
}

// CreatePasteResult reports whether the paste was replayed from an earlier
// request with the same idempotency key.
type CreatePasteResult struct {
	Paste          *domain.Paste
	AlreadyExisted bool
}

type PasteService interface {
	Create(ctx context.Context, author *domain.User, in CreatePasteInput) (*CreatePasteResult, error)
	Get(ctx context.Context, id string) (*domain.Paste, error)
	Delete(ctx context.Context, caller *domain.User, id string) (*domain.Paste, error)
	List(ctx context.Context, caller *domain.User) ([]*domain.Paste, error)
}
