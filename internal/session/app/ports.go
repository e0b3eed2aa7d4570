package app

import (
	"context"

	"github.com/recirculate/storefront/internal/session/domain"
)

// Store persists the identity between runs.
type Store interface {
	Load() (domain.Identity, bool, error)
	Save(id domain.Identity) error
	Clear() error
}

type RegisterInput struct {
	Name     string
	Lastname string
	Email    string
	Password string
}

// ClientRecord is the slice of the backend client entity the session cares
// about.
type ClientRecord struct {
	IDKey    int
	Name     string
	Lastname string
	Email    string
}

type AuthAPI interface {
	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, email, password string) (string, error)
	// Register creates a client record. The backend issues no token here;
	// the caller still has to log in afterwards.
	Register(ctx context.Context, in RegisterInput) (ClientRecord, error)
	// FindClientByEmail resolves the client record behind an email address.
	FindClientByEmail(ctx context.Context, email string) (ClientRecord, error)
}
