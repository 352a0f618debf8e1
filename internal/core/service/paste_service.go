package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"

	"github.com/pasteshare/paste-api/internal/core/domain"
	"github.com/pasteshare/paste-api/internal/core/ports"
)

type PasteService struct {
	pastes ports.PasteRepository
	idem   ports.IdempotencyStore
	logger zerolog.Logger
	newID  func() (string, error)
}

// NewPasteService returns a PasteService. idem may be nil, in which case
// idempotency keys are ignored.
func NewPasteService(pastes ports.PasteRepository, idem ports.IdempotencyStore, logger zerolog.Logger) *PasteService {
	return &PasteService{pastes: pastes, idem: idem, logger: logger, newID: func() (string, error) { return gonanoid.New() }}
}

// Create stores a paste authored by author. If an idempotency key is given and
// already maps to a live paste, that paste is returned without side effects.
func (s *PasteService) Create(ctx context.Context, author *domain.User, in ports.CreatePasteInput) (*ports.CreatePasteResult, error) {
	if in.Content == "" {
		return nil, domain.ErrInvalidForm
	}
	access := in.Access
	if access == "" {
		access = domain.AccessPublic
	}
	if !access.Valid() {
		return nil, domain.ErrInvalidForm
	}

	useKey := in.IdempotencyKey != "" && s.idem != nil
	if useKey {
		if existing := s.replay(ctx, author.ID, in.IdempotencyKey); existing != nil {
			return &ports.CreatePasteResult{Paste: existing, AlreadyExisted: true}, nil
		}
	}

	id, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("create paste: generate id: %w", err)
	}
	paste := &domain.Paste{
		ID:        id,
		Content:   in.Content,
		Access:    access,
		AuthorID:  author.ID,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
	if err := s.pastes.Create(ctx, paste); err != nil {
		s.logger.Error().Err(err).Str("author_id", author.ID).Msg("failed to create paste")
		return nil, fmt.Errorf("create paste: %w", err)
	}

	if useKey {
		if err := s.idem.Remember(ctx, author.ID, in.IdempotencyKey, paste.ID); err != nil {
			s.logger.Warn().Err(err).Str("paste_id", paste.ID).Msg("failed to store idempotency key")
		}
	}

	s.logger.Info().Str("paste_id", paste.ID).Str("author_id", author.ID).Str("access", string(access)).Msg("paste created")
	return &ports.CreatePasteResult{Paste: paste}, nil
}

// replay returns the paste previously created under key, or nil. Store errors
// are logged and treated as a miss.
func (s *PasteService) replay(ctx context.Context, authorID, key string) *domain.Paste {
	id, err := s.idem.Lookup(ctx, authorID, key)
	if err != nil {
		s.logger.Warn().Err(err).Str("idempotency_key", key).Msg("idempotency lookup failed, creating anyway")
		return nil
	}
	if id == "" {
		return nil
	}
	p, err := s.pastes.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrPasteNotFound) {
			s.logger.Warn().Err(err).Str("paste_id", id).Msg("idempotent replay lookup failed")
		}
		return nil
	}
	s.logger.Info().Str("idempotency_key", key).Str("paste_id", id).Msg("idempotent replay")
	return p
}

// Get fetches a paste by id for any caller. Access is not consulted here;
// only listings are filtered.
func (s *PasteService) Get(ctx context.Context, id string) (*domain.Paste, error) {
	if id == "" {
		return nil, domain.ErrPasteNotFound
	}
	return s.pastes.FindByID(ctx, id)
}

// Delete removes a paste if caller is its author or an admin.
func (s *PasteService) Delete(ctx context.Context, caller *domain.User, id string) (*domain.Paste, error) {
	paste, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanDeletePaste(caller, paste) {
		return nil, domain.ErrForbidden
	}
	if err := s.pastes.Delete(ctx, paste.ID); err != nil {
		if errors.Is(err, domain.ErrPasteNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("delete paste: %w", err)
	}

	s.logger.Info().Str("paste_id", paste.ID).Str("deleted_by", caller.ID).Msg("paste deleted")
	return paste, nil
}

// List returns the pastes caller may see, in store order.
func (s *PasteService) List(ctx context.Context, caller *domain.User) ([]*domain.Paste, error) {
	found, err := s.pastes.List(ctx, ports.PasteFilter{Access: domain.ListAccess(caller)})
	if err != nil {
		return nil, fmt.Errorf("list pastes: %w", err)
	}

	out := make([]*domain.Paste, 0, len(found))
	for _, p := range found {
		if domain.Listable(caller, p) {
			out = append(out, p)
		}
	}
	return out, nil
}
