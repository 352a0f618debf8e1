package ports

import (
	"context"

	"github.com/pasteshare/paste-api/internal/core/domain"
)

// PasteFilter narrows List. Zero values mean no restriction.
type PasteFilter struct {
	Access   domain.Access
	AuthorID string
}

// PasteRepository is the paste half of the credential store.
type PasteRepository interface {
	Create(ctx context.Context, p *domain.Paste) error
	// FindByID returns domain.ErrPasteNotFound when the id is unknown.
	FindByID(ctx context.Context, id string) (*domain.Paste, error)
	// Delete returns domain.ErrPasteNotFound when nothing was removed.
	Delete(ctx context.Context, id string) error
	DeleteByAuthor(ctx context.Context, authorID string) (int64, error)
	// List returns matches in the store's natural order.
	List(ctx context.Context, filter PasteFilter) ([]*domain.Paste, error)
}
