package localstore

import (
	"github.com/recirculate/storefront/internal/session/domain"
	"github.com/recirculate/storefront/pkg/localstore"
)

const sessionKey = "session"

type SessionStore struct {
	s *localstore.Store[domain.Identity]
}

func NewSessionStore(stateDir string) *SessionStore {
	return &SessionStore{s: localstore.New[domain.Identity](stateDir)}
}

func (c *SessionStore) Load() (domain.Identity, bool, error) {
	return c.s.Get(sessionKey)
}

func (c *SessionStore) Save(id domain.Identity) error {
	return c.s.Put(sessionKey, id)
}

func (c *SessionStore) Clear() error {
	return c.s.Delete(sessionKey)
}
