package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/recirculate/storefront/internal/session/domain"
)

// Service holds the current principal and keeps it in sync with local
// storage. It doubles as the gateway's token source.
type Service struct {
	mu       sync.Mutex
	identity domain.Identity
	loggedIn bool

	store Store
	auth  AuthAPI
	log   *slog.Logger
}

func NewService(store Store, auth AuthAPI, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}

	s := &Service{store: store, auth: auth, log: log}

	id, found, err := store.Load()
	if err != nil {
		log.Warn("session state unreadable, starting logged out", slog.Any("err", err))
	} else if found {
		s.identity = id
		s.loggedIn = true
	}

	return s
}

// Login authenticates, resolves the client record behind the email, and
// persists the result. The token is held in memory before the client lookup
// so that lookup already goes out authenticated.
func (s *Service) Login(ctx context.Context, email, password string) (domain.Identity, error) {
	token, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("login: %w", err)
	}

	s.mu.Lock()
	s.identity = domain.Identity{Email: email, Token: token}
	s.loggedIn = true
	s.mu.Unlock()

	record, err := s.auth.FindClientByEmail(ctx, email)
	if err != nil {
		s.reset()
		return domain.Identity{}, fmt.Errorf("login: resolve client: %w", err)
	}

	id := domain.Identity{
		ClientID: record.IDKey,
		Email:    record.Email,
		Name:     record.Name,
		Lastname: record.Lastname,
		Token:    token,
	}

	s.mu.Lock()
	s.identity = id
	s.mu.Unlock()

	if err := s.store.Save(id); err != nil {
		s.log.Warn("session persist failed", slog.Any("err", err))
	}

	return id, nil
}

// Register creates the client record only. The new client must log in to get
// a token.
func (s *Service) Register(ctx context.Context, in RegisterInput) (ClientRecord, error) {
	record, err := s.auth.Register(ctx, in)
	if err != nil {
		return ClientRecord{}, fmt.Errorf("register: %w", err)
	}
	return record, nil
}

func (s *Service) Logout() {
	s.reset()
	if err := s.store.Clear(); err != nil {
		s.log.Warn("session clear failed", slog.Any("err", err))
	}
}

// Current answers "is there a logged-in client, and who".
func (s *Service) Current() (domain.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity, s.loggedIn
}

// Token implements the gateway's token source.
func (s *Service) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity.Token
}

func (s *Service) reset() {
	s.mu.Lock()
	s.identity = domain.Identity{}
	s.loggedIn = false
	s.mu.Unlock()
}
