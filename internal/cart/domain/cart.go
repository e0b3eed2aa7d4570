package domain

// ProductRef is the denormalized snapshot of a product taken when it is added
// to the cart. The price is the add-time price; it is not refreshed at
// checkout, so a backend price change between add and purchase is ignored.
type ProductRef struct {
	IDKey      int     `json:"id_key"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	CategoryID int     `json:"category_id,omitempty"`
	Image      string  `json:"image,omitempty"`
}

// Line pairs a product snapshot with a quantity. A cart holds at most one
// line per product id.
type Line struct {
	Product  ProductRef `json:"product"`
	Quantity int        `json:"quantity"`
}

func (l Line) Subtotal() float64 {
	return l.Product.Price * float64(l.Quantity)
}
