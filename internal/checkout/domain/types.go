package domain

// Input is what the visitor types on the checkout screen: shipping address
// fields and the payment method (an enum 1–5, opaque to the orchestrator).
type Input struct {
	Street      string
	Number      string
	City        string
	PaymentType int
}

// Line is the orchestrator's view of one cart line: just enough to emit an
// order_details row.
type Line struct {
	ProductID int
	Quantity  int
}

// Confirmation is the success signal of a completed checkout.
type Confirmation struct {
	OrderID int
	BillID  int
	Total   float64
}
