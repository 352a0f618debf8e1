package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/pasteshare/paste-api/internal/api/middleware"
	"github.com/pasteshare/paste-api/internal/core/domain"
	"github.com/pasteshare/paste-api/internal/core/ports"
)

type stubAuthService struct {
	signupFn func(ctx context.Context, in ports.SignupInput) (*domain.User, error)
	loginFn  func(ctx context.Context, username, password string) (string, *domain.User, error)
}

func (s *stubAuthService) Signup(ctx context.Context, in ports.SignupInput) (*domain.User, error) {
	return s.signupFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) Authenticate(context.Context, string) (*ports.Claims, *domain.User, error) {
	return nil, nil, domain.ErrInvalidToken
}

type stubPasteService struct {
	createFn func(ctx context.Context, author *domain.User, in ports.CreatePasteInput) (*ports.CreatePasteResult, error)
	getFn    func(ctx context.Context, id string) (*domain.Paste, error)
	deleteFn func(ctx context.Context, caller *domain.User, id string) (*domain.Paste, error)
	listFn   func(ctx context.Context, caller *domain.User) ([]*domain.Paste, error)
}

func (s *stubPasteService) Create(ctx context.Context, author *domain.User, in ports.CreatePasteInput) (*ports.CreatePasteResult, error) {
	return s.createFn(ctx, author, in)
}

func (s *stubPasteService) Get(ctx context.Context, id string) (*domain.Paste, error) {
	return s.getFn(ctx, id)
}

func (s *stubPasteService) Delete(ctx context.Context, caller *domain.User, id string) (*domain.Paste, error) {
	return s.deleteFn(ctx, caller, id)
}

func (s *stubPasteService) List(ctx context.Context, caller *domain.User) ([]*domain.Paste, error) {
	return s.listFn(ctx, caller)
}

type stubUserService struct {
	profileFn func(ctx context.Context, caller *domain.User, username string) (*ports.Profile, error)
	listFn    func(ctx context.Context) ([]*domain.User, error)
	deleteFn  func(ctx context.Context, caller *domain.User, username string) (*domain.User, error)
}

func (s *stubUserService) Profile(ctx context.Context, caller *domain.User, username string) (*ports.Profile, error) {
	return s.profileFn(ctx, caller, username)
}

func (s *stubUserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) Delete(ctx context.Context, caller *domain.User, username string) (*domain.User, error) {
	return s.deleteFn(ctx, caller, username)
}

// newContext builds an echo.Context carrying caller as the authenticated user.
// A nil caller leaves the request unauthenticated.
func newContext(method, target, contentType, body string, caller *domain.User) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if caller != nil {
		c.Set(middleware.UserKey, caller)
	}
	return c, rec
}
