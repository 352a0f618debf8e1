package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pasteshare/paste-api/internal/core/domain"
	"github.com/pasteshare/paste-api/internal/core/ports"
)

type UserService struct {
	users  ports.UserRepository
	pastes ports.PasteRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, pastes ports.PasteRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, pastes: pastes, logger: logger}
}

// Profile looks up username and decides how much of it caller may see.
func (s *UserService) Profile(ctx context.Context, caller *domain.User, username string) (*ports.Profile, error) {
	if username == "" {
		return nil, domain.ErrUserNotFound
	}
	target, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return &ports.Profile{User: target, Redacted: !domain.CanViewProfile(caller, target)}, nil
}

// List returns every user. Callers gate this on the admin role.
func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Delete removes username and then every paste it authored. The account goes
// first so requests that have not yet authenticated fail with
// ErrStaleIdentity instead of adding pastes behind the cascade. A create that
// authenticated before the account was removed and inserts after the cascade
// can still leave a paste without its author.
func (s *UserService) Delete(ctx context.Context, caller *domain.User, username string) (*domain.User, error) {
	target, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if !domain.CanDeleteUser(caller, target) {
		return nil, domain.ErrForbidden
	}

	if err := s.users.Delete(ctx, target.ID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("delete user: %w", err)
	}

	n, err := s.pastes.DeleteByAuthor(ctx, target.ID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", target.ID).Msg("user deleted but paste cascade failed")
		return nil, fmt.Errorf("delete user pastes: %w", err)
	}

	s.logger.Info().
		Str("user_id", target.ID).
		Str("deleted_by", caller.ID).
		Int64("pastes_removed", n).
		Msg("user deleted")
	return target, nil
}
