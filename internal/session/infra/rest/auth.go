package rest

import (
	"context"
	"errors"
	"fmt"

	"github.com/recirculate/storefront/internal/api"
	"github.com/recirculate/storefront/internal/session/app"
)

var ErrClientNotFound = errors.New("client not found")

// defaultTelephone fills the backend's required telephone field at
// registration time; the profile screen lets the client set a real one later.
const defaultTelephone = "00000000"

type AuthAPI struct {
	c *api.Client
}

func NewAuthAPI(c *api.Client) *AuthAPI {
	return &AuthAPI{c: c}
}

func (a *AuthAPI) Login(ctx context.Context, email, password string) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	body := map[string]string{"email": email, "password": password}
	if err := a.c.Post(ctx, "/auth/login", body, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

func (a *AuthAPI) Register(ctx context.Context, in app.RegisterInput) (app.ClientRecord, error) {
	body := map[string]string{
		"name":      in.Name,
		"lastname":  in.Lastname,
		"email":     in.Email,
		"password":  in.Password,
		"telephone": defaultTelephone,
	}
	var out clientPayload
	if err := a.c.Post(ctx, "/clients/", body, &out); err != nil {
		return app.ClientRecord{}, err
	}
	return out.record(), nil
}

// FindClientByEmail lists clients and matches on email; the backend has no
// lookup-by-email endpoint.
func (a *AuthAPI) FindClientByEmail(ctx context.Context, email string) (app.ClientRecord, error) {
	var clients []clientPayload
	if err := a.c.Get(ctx, "/clients", &clients); err != nil {
		return app.ClientRecord{}, err
	}
	for _, c := range clients {
		if c.Email == email {
			return c.record(), nil
		}
	}
	return app.ClientRecord{}, fmt.Errorf("%w: %s", ErrClientNotFound, email)
}

type clientPayload struct {
	IDKey    int    `json:"id_key"`
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	Email    string `json:"email"`
}

func (c clientPayload) record() app.ClientRecord {
	return app.ClientRecord{
		IDKey:    c.IDKey,
		Name:     c.Name,
		Lastname: c.Lastname,
		Email:    c.Email,
	}
}
