package domain

// Drafts are the request bodies of the checkout creation calls. They carry no
// identity of their own; the backend assigns id_key on each step.

type AddressDraft struct {
	Street   string `json:"street"`
	Number   string `json:"number"`
	City     string `json:"city"`
	ClientID int    `json:"client_id"`
}

type BillDraft struct {
	BillNumber  string      `json:"bill_number"`
	Date        string      `json:"date"` // YYYY-MM-DD
	Total       float64     `json:"total"`
	PaymentType PaymentType `json:"payment_type"`
	ClientID    int         `json:"client_id"`
}

type OrderDraft struct {
	Date           string         `json:"date"` // full timestamp, RFC 3339
	Total          float64        `json:"total"`
	DeliveryMethod DeliveryMethod `json:"delivery_method"`
	Status         Status         `json:"status"`
	ClientID       int            `json:"client_id"`
	BillID         int            `json:"bill_id"`
}

type LineDraft struct {
	Quantity  int `json:"quantity"`
	OrderID   int `json:"order_id"`
	ProductID int `json:"product_id"`
}
