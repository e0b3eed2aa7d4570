package domain

type Category struct {
	IDKey int    `json:"id_key"`
	Name  string `json:"name"`
}

type Product struct {
	IDKey      int       `json:"id_key"`
	Name       string    `json:"name"`
	Price      float64   `json:"price"`
	Stock      int       `json:"stock"`
	CategoryID int       `json:"category_id"`
	Category   *Category `json:"category,omitempty"`
}
