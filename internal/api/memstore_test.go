package api

import (
	"context"
	"fmt"
	"sync"

	"github.com/pasteshare/paste-api/internal/core/domain"
	"github.com/pasteshare/paste-api/internal/core/ports"
)

// memUsers and memPastes are insertion-ordered in-memory repositories.

type memUsers struct {
	mu    sync.Mutex
	users []*domain.User
	seq   int
}

func (r *memUsers) find(match func(*domain.User) bool) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if match(u) {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUsers) FindByID(_ context.Context, id string) (*domain.User, error) {
	return r.find(func(u *domain.User) bool { return u.ID == id })
}

func (r *memUsers) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	return r.find(func(u *domain.User) bool { return u.Username == username })
}

func (r *memUsers) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	return r.find(func(u *domain.User) bool { return u.Email == email })
}

func (r *memUsers) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return nil, domain.ErrUsernameTaken
		}
		if existing.Email == u.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.seq++
	stored := *u
	stored.ID = fmt.Sprintf("%024x", r.seq)
	r.users = append(r.users, &stored)
	out := stored
	return &out, nil
}

func (r *memUsers) Delete(_ context.Context, id string) error {
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

func (r *memUsers) List(context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

type memPastes struct {
	mu     sync.Mutex
	pastes []*domain.Paste
}

func (r *memPastes) Create(_ context.Context, p *domain.Paste) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *p
	r.pastes = append(r.pastes, &clone)
	return nil
}

func (r *memPastes) FindByID(_ context.Context, id string) (*domain.Paste, error) {
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

func (r *memPastes) Delete(_ context.Context, id string) error {
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

func (r *memPastes) DeleteByAuthor(_ context.Context, authorID string) (int64, error) {
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

func (r *memPastes) List(_ context.Context, f ports.PasteFilter) ([]*domain.Paste, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Paste
	for _, p := range r.pastes {
		if f.Access != "" && p.Access != f.Access {
			continue
		}
		if f.AuthorID != "" && p.AuthorID != f.AuthorID {
			continue
		}
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}
