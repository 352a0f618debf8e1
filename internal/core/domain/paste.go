package domain

import "time"

// Access controls whether a paste shows up in other users' listings.
type Access string

const (
	AccessPublic  Access = "PUBLIC"
	AccessPrivate Access = "PRIVATE"
)

// Valid reports whether a is a known access level.
func (a Access) Valid() bool {
	return a == AccessPublic || a == AccessPrivate
}

// Paste is a text snippet owned by exactly one user. It is immutable once created.
type Paste struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Access    Access    `json:"access"`
	AuthorID  string    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}
