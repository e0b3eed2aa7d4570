package adapter

import (
	sessionapp "github.com/recirculate/storefront/internal/session/app"
)

type SessionIdentitySource struct {
	session *sessionapp.Service
}

func NewSessionIdentitySource(session *sessionapp.Service) *SessionIdentitySource {
	return &SessionIdentitySource{session: session}
}

func (a *SessionIdentitySource) CurrentClientID() (int, bool) {
	id, ok := a.session.Current()
	if !ok || id.ClientID == 0 {
		return 0, false
	}
	return id.ClientID, true
}
