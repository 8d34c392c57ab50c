package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// CustomerResponse is the customer snapshot owned by the customer service.
type CustomerResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// CustomerClient resolves customers by id. A missing customer is a valid
// outcome and is reported as (nil, nil), not as an error.
type CustomerClient interface {
	FindCustomerByID(ctx context.Context, customerID string) (*CustomerResponse, error)
}

type CustomerHTTPClient struct {
	caller
}

func NewCustomerClient(baseURL string, timeout time.Duration) *CustomerHTTPClient {
	return &CustomerHTTPClient{caller: newCaller("customer-service", baseURL, timeout)}
}

func (c *CustomerHTTPClient) FindCustomerByID(ctx context.Context, customerID string) (*CustomerResponse, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/v1/customers/"+customerID, nil, nil)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("find customer %s: %w", customerID, err)
	}

	var customer CustomerResponse
	if err := json.Unmarshal(body, &customer); err != nil {
		return nil, fmt.Errorf("decode customer response: %w", err)
	}
	return &customer, nil
}
