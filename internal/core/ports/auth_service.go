package ports

import (
	"context"

	"github.com/pasteshare/paste-api/internal/core/domain"
)

// SignupInput carries the signup form. Role defaults to USER.
type SignupInput struct {
	Username string
	Email    string
	Password string
	Role     domain.Role
}

type AuthService interface {
	Signup(ctx context.Context, in SignupInput) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// Authenticate resolves a raw bearer token to its stored user.
	Authenticate(ctx context.Context, token string) (*Claims, *domain.User, error)
}
