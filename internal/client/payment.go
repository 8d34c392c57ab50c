package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/DesBasito/e-commerce-order-service/internal/domain"
)

type PaymentRequest struct {
	Amount         decimal.Decimal      `json:"amount"`
	PaymentMethod  domain.PaymentMethod `json:"paymentMethod"`
	OrderID        int64                `json:"orderId"`
	OrderReference string               `json:"orderReference"`
	Customer       CustomerResponse     `json:"customer"`
}

// PaymentClient submits the payment request for a freshly created order.
// The order service only consumes success or failure of the call.
type PaymentClient interface {
	RequestOrderPayment(ctx context.Context, request *PaymentRequest) error
}

type PaymentHTTPClient struct {
	caller
}

func NewPaymentClient(baseURL string, timeout time.Duration) *PaymentHTTPClient {
	return &PaymentHTTPClient{caller: newCaller("payment-service", baseURL, timeout)}
}

func (c *PaymentHTTPClient) RequestOrderPayment(ctx context.Context, request *PaymentRequest) error {
	// The payment service deduplicates on this key; the order reference is
	// unique per order so a transport-level retry cannot double-charge.
	headers := map[string]string{"X-Idempotency-Key": "order-" + request.OrderReference}

	if _, err := c.do(ctx, http.MethodPost, "/api/v1/payments", request, headers); err != nil {
		return fmt.Errorf("request payment for order %d: %w", request.OrderID, err)
	}
	return nil
}
