package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

type PurchaseRequest struct {
	ProductID int64   `json:"productId"`
	Quantity  float64 `json:"quantity"`
}

// PurchaseResponse is the per-product confirmation returned by the product
// service after a successful reservation.
type PurchaseResponse struct {
	ProductID int64           `json:"productId"`
	Name      string          `json:"name"`
	Quantity  float64         `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// ProductClient reserves products in one batched call. The product service
// validates every item; if any is invalid or unavailable the whole call
// fails and nothing is reserved.
type ProductClient interface {
	PurchaseProducts(ctx context.Context, products []PurchaseRequest) ([]PurchaseResponse, error)
}

type ProductHTTPClient struct {
	caller
}

func NewProductClient(baseURL string, timeout time.Duration) *ProductHTTPClient {
	return &ProductHTTPClient{caller: newCaller("product-service", baseURL, timeout)}
}

func (c *ProductHTTPClient) PurchaseProducts(ctx context.Context, products []PurchaseRequest) ([]PurchaseResponse, error) {
	body, err := c.do(ctx, http.MethodPost, "/api/v1/products/purchase", products, nil)
	if err != nil {
		return nil, fmt.Errorf("purchase products: %w", err)
	}

	var purchased []PurchaseResponse
	if err := json.Unmarshal(body, &purchased); err != nil {
		return nil, fmt.Errorf("decode purchase response: %w", err)
	}
	return purchased, nil
}
