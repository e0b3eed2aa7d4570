package domain

type Client struct {
	IDKey     int    `json:"id_key"`
	Name      string `json:"name"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	Telephone string `json:"telephone"`
}
