package domain

// Review of a product by a client. Rating runs 1–5.
type Review struct {
	IDKey     int    `json:"id_key"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	ProductID int    `json:"product_id"`
	ClientID  int    `json:"client_id"`

	// Provisional marks a locally synthesized entry that has not been
	// confirmed by the backend yet. ProvisionalID distinguishes it until the
	// server record (with its real id_key) replaces it. Neither field goes
	// over the wire.
	Provisional   bool   `json:"-"`
	ProvisionalID string `json:"-"`
}
