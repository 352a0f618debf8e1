package ports

import (
	"context"

	"github.com/pasteshare/paste-api/internal/core/domain"
)

// Profile is a user record as seen by a particular caller. When Redacted is
// true only User.Username may be shown.
type Profile struct {
	User     *domain.User
	Redacted bool
}

type UserService interface {
	Profile(ctx context.Context, caller *domain.User, username string) (*Profile, error)
	List(ctx context.Context) ([]*domain.User, error)
	Delete(ctx context.Context, caller *domain.User, username string) (*domain.User, error)
}
