package domain

// Identity is the authenticated principal: the backend client record id plus
// the bearer token attached to outgoing requests.
type Identity struct {
	ClientID int    `json:"client_id"`
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	Lastname string `json:"lastname,omitempty"`
	Token    string `json:"token"`
}
