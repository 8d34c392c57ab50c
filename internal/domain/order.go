package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentMethodCash       PaymentMethod = "CASH"
	PaymentMethodPaypal     PaymentMethod = "PAYPAL"
	PaymentMethodCreditCard PaymentMethod = "CREDIT_CARD"
	PaymentMethodVisa       PaymentMethod = "VISA"
	PaymentMethodMasterCard PaymentMethod = "MASTER_CARD"
	PaymentMethodBitcoin    PaymentMethod = "BITCOIN"
)

// IsValid reports whether the value is one of the accepted payment methods.
// The set is a deployment contract shared with the payment service.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodPaypal, PaymentMethodCreditCard,
		PaymentMethodVisa, PaymentMethodMasterCard, PaymentMethodBitcoin:
		return true
	}
	return false
}

type Order struct {
	ID            int64
	Reference     string
	TotalAmount   decimal.Decimal
	PaymentMethod PaymentMethod
	CustomerID    string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type OrderLine struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  float64
}
