package entity

// PaymentMethod is nullable on an order until the bill is settled.
type PaymentMethod string

const (
	PayCash PaymentMethod = "CASH"
	PayCard PaymentMethod = "CARD"
	PayQR   PaymentMethod = "QR"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PayCash, PayCard, PayQR:
		return true
	}
	return false
}
