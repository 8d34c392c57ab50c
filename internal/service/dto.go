package service

import (
	"github.com/shopspring/decimal"

	"github.com/DesBasito/e-commerce-order-service/internal/client"
	"github.com/DesBasito/e-commerce-order-service/internal/domain"
)

type OrderRequest struct {
	Reference     string                   `json:"reference"`
	Amount        decimal.Decimal          `json:"amount"`
	PaymentMethod domain.PaymentMethod     `json:"paymentMethod"`
	CustomerID    string                   `json:"customerId"`
	Products      []client.PurchaseRequest `json:"products"`
}

type OrderResponse struct {
	ID            int64                `json:"id"`
	Reference     string               `json:"reference"`
	Amount        decimal.Decimal      `json:"amount"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod"`
	CustomerID    string               `json:"customerId"`
}

type OrderLineRequest struct {
	ID        int64   `json:"id"`
	OrderID   int64   `json:"orderId"`
	ProductID int64   `json:"productId"`
	Quantity  float64 `json:"quantity"`
}

// OrderLineResponse deliberately omits the product id: line listings expose
// only the line identity and quantity.
type OrderLineResponse struct {
	ID       int64   `json:"id"`
	Quantity float64 `json:"quantity"`
}
