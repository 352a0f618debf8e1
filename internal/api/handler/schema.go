package handler

import (
	"time"

	"github.com/pasteshare/paste-api/internal/core/domain"
)

// --- Requests ---

type signupRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Email    string `json:"email"    form:"email"    validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type createPasteRequest struct {
	Content string `json:"content" form:"content" validate:"required"`
	Access  string `json:"access"  form:"access"  validate:"omitempty,oneof=PUBLIC PRIVATE"`
}

// --- Responses ---

// statusResponse documents the error envelope rendered by the API error handler.
type statusResponse struct {
	StatusText string `json:"statusText"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// redactedUserResponse is what a third party sees of someone else's profile.
type redactedUserResponse struct {
	Username string `json:"username"`
}

type pasteResponse struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Access    string    `json:"access"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}

type signupResponse struct {
	StatusText string       `json:"statusText"`
	User       userResponse `json:"user"`
}

type loginResponse struct {
	StatusText string `json:"statusText"`
	Token      string `json:"token"`
}

type pasteEnvelope struct {
	StatusText string        `json:"statusText,omitempty"`
	Paste      pasteResponse `json:"paste"`
}

type pasteListResponse struct {
	StatusText string          `json:"statusText"`
	Pastes     []pasteResponse `json:"pastes"`
}

// profileResponse.User is either a userResponse or a redactedUserResponse.
type profileResponse struct {
	StatusText string `json:"statusText"`
	User       any    `json:"user"`
}

type userEnvelope struct {
	StatusText string       `json:"statusText"`
	User       userResponse `json:"user"`
}

type userListResponse struct {
	StatusText string         `json:"statusText"`
	Users      []userResponse `json:"users"`
}

// --- Mapping ---

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

func toUserResponses(users []*domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}

func toPasteResponse(p *domain.Paste) pasteResponse {
	return pasteResponse{
		ID:        p.ID,
		Content:   p.Content,
		Access:    string(p.Access),
		Author:    p.AuthorID,
		CreatedAt: p.CreatedAt,
	}
}

func toPasteResponses(pastes []*domain.Paste) []pasteResponse {
	out := make([]pasteResponse, 0, len(pastes))
	for _, p := range pastes {
		out = append(out, toPasteResponse(p))
	}
	return out
}
