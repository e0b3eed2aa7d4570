package domain

import "time"

// Enum values are part of the backend wire contract; do not renumber.

type DeliveryMethod int

const (
	DriveThru    DeliveryMethod = 1
	OnHand       DeliveryMethod = 2
	HomeDelivery DeliveryMethod = 3
)

type Status int

const (
	StatusPending    Status = 1
	StatusInProgress Status = 2
	StatusDelivered  Status = 3
	StatusCanceled   Status = 4
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusInProgress:
		return "in progress"
	case StatusDelivered:
		return "delivered"
	case StatusCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

type PaymentType int

const (
	PaymentCash     PaymentType = 1
	PaymentCard     PaymentType = 2
	PaymentDebit    PaymentType = 3
	PaymentCredit   PaymentType = 4
	PaymentTransfer PaymentType = 5
)

func (p PaymentType) Valid() bool {
	return p >= PaymentCash && p <= PaymentTransfer
}

type Order struct {
	IDKey          int            `json:"id_key"`
	Date           string         `json:"date"`
	Total          float64        `json:"total"`
	DeliveryMethod DeliveryMethod `json:"delivery_method"`
	Status         Status         `json:"status"`
	ClientID       int            `json:"client_id"`
	BillID         int            `json:"bill_id"`
}

// ParsedDate is best-effort: the backend serializes timestamps with and
// without a zone offset depending on the field.
func (o Order) ParsedDate() time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, o.Date); err == nil {
			return t
		}
	}
	return time.Time{}
}

type Bill struct {
	IDKey       int         `json:"id_key"`
	BillNumber  string      `json:"bill_number"`
	Date        string      `json:"date"`
	Total       float64     `json:"total"`
	PaymentType PaymentType `json:"payment_type"`
	ClientID    int         `json:"client_id"`
}

type OrderLine struct {
	IDKey     int     `json:"id_key"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price,omitempty"`
	OrderID   int     `json:"order_id"`
	ProductID int     `json:"product_id"`
}

type Address struct {
	IDKey    int    `json:"id_key"`
	Street   string `json:"street"`
	Number   string `json:"number"`
	City     string `json:"city"`
	ClientID int    `json:"client_id"`
}
