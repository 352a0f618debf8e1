package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/pasteshare/paste-api/internal/core/domain"
	"github.com/pasteshare/paste-api/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory stub repositories. Slices keep insertion order so List mirrors a
// store's natural order.
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	mu      sync.Mutex
	users   []*domain.User
	seq     int
	findErr error // if set, every Find* returns this error
}

func newStubUserRepo() *stubUserRepo { return &stubUserRepo{} }

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	return &clone
}

func (r *stubUserRepo) find(match func(*domain.User) bool) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.users {
		if match(u) {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	return r.find(func(u *domain.User) bool { return u.ID == id })
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	return r.find(func(u *domain.User) bool { return u.Username == username })
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	return r.find(func(u *domain.User) bool { return u.Email == email })
}

// Create enforces uniqueness the way the store's unique indexes do.
func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, domain.ErrUsernameTaken
		}
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.seq++
	stored := cloneUser(user)
	stored.ID = fmt.Sprintf("u%d", r.seq)
	r.users = append(r.users, stored)
	return cloneUser(stored), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

type stubPasteRepo struct {
	mu         sync.Mutex
	pastes     []*domain.Paste
	lastFilter ports.PasteFilter
	ignoreFilt bool  // if set, List returns everything regardless of filter
	createErr  error // if set, Create returns this error
}

func newStubPasteRepo() *stubPasteRepo { return &stubPasteRepo{} }

func (r *stubPasteRepo) Create(_ context.Context, p *domain.Paste) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	clone := *p
	r.pastes = append(r.pastes, &clone)
	return nil
}

func (r *stubPasteRepo) FindByID(_ context.Context, id string) (*domain.Paste, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.pastes {
		if p.ID == id {
			clone := *p
			return &clone, nil
		}
	}
	return nil, domain.ErrPasteNotFound
}

func (r *stubPasteRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.pastes {
		if p.ID == id {
			r.pastes = append(r.pastes[:i], r.pastes[i+1:]...)
			return nil
		}
	}
	return domain.ErrPasteNotFound
}

func (r *stubPasteRepo) DeleteByAuthor(_ context.Context, authorID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.pastes[:0]
	var n int64
	for _, p := range r.pastes {
		if p.AuthorID == authorID {
			n++
			continue
		}
		kept = append(kept, p)
	}
	r.pastes = kept
	return n, nil
}

func (r *stubPasteRepo) List(_ context.Context, f ports.PasteFilter) ([]*domain.Paste, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastFilter = f
	var out []*domain.Paste
	for _, p := range r.pastes {
		if !r.ignoreFilt {
			if f.Access != "" && p.Access != f.Access {
				continue
			}
			if f.AuthorID != "" && p.AuthorID != f.AuthorID {
				continue
			}
		}
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

type stubIdempotency struct {
	keys      map[string]string
	lookupErr error
}

func newStubIdempotency() *stubIdempotency {
	return &stubIdempotency{keys: make(map[string]string)}
}

func (s *stubIdempotency) Lookup(_ context.Context, authorID, key string) (string, error) {
	if s.lookupErr != nil {
		return "", s.lookupErr
	}
	return s.keys[authorID+"/"+key], nil
}

func (s *stubIdempotency) Remember(_ context.Context, authorID, key, pasteID string) error {
	s.keys[authorID+"/"+key] = pasteID
	return nil
}

var errStoreDown = errors.New("store unavailable")
