package entity

// PaymentMethod is how a sale was settled. The set is closed; the database
// carries a matching CHECK constraint on sales.payment_method.
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentCredit PaymentMethod = "credit"
	PaymentCard   PaymentMethod = "card"
)

// Valid reports whether m is one of the three supported methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCredit, PaymentCard:
		return true
	}
	return false
}

// DisplayName returns a human readable name for receipts and listings.
func (m PaymentMethod) DisplayName() string {
	switch m {
	case PaymentCash:
		return "Cash"
	case PaymentCredit:
		return "Credit"
	case PaymentCard:
		return "Card"
	}
	return "Unknown"
}
