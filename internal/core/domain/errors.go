package domain

import "errors"

// Authentication failures. All three surface as 401.
var (
	ErrMissingAuthHeader = errors.New("missing bearer authorization header")
	ErrInvalidToken      = errors.New("invalid token")
	ErrStaleIdentity     = errors.New("token identity no longer exists")
)

var ErrForbidden = errors.New("access forbidden")

var (
	ErrPasteNotFound = errors.New("paste not found")
	ErrUserNotFound  = errors.New("user not found")
)

var (
	ErrInvalidForm        = errors.New("invalid form data")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username taken")
	ErrEmailTaken         = errors.New("email taken")
)
