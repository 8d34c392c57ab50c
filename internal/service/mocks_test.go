package service

import (
	"context"

	"github.com/DesBasito/e-commerce-order-service/internal/client"
	"github.com/DesBasito/e-commerce-order-service/internal/domain"
	"github.com/DesBasito/e-commerce-order-service/internal/publisher"
	"github.com/DesBasito/e-commerce-order-service/internal/repository"
)

// MockTx implements repository.OrderTx and records everything written
// through it plus whether the scope ended in Commit or Rollback.
type MockTx struct {
	InsertedOrder  *domain.Order
	OrderID        int64
	InsertOrderErr error

	InsertedLines []*domain.OrderLine
	LineErr       error
	LineErrAt     int // 1-based index of the line insert that fails; 0 = never

	Committed  bool
	RolledBack bool
	CommitErr  error
}

func (m *MockTx) InsertOrder(_ context.Context, order *domain.Order) (int64, error) {
	if m.InsertOrderErr != nil {
		return 0, m.InsertOrderErr
	}
	m.InsertedOrder = order
	return m.OrderID, nil
}

func (m *MockTx) InsertOrderLine(_ context.Context, line *domain.OrderLine) (int64, error) {
	if m.LineErrAt > 0 && len(m.InsertedLines)+1 == m.LineErrAt {
		return 0, m.LineErr
	}
	m.InsertedLines = append(m.InsertedLines, line)
	return int64(len(m.InsertedLines)), nil
}

func (m *MockTx) Commit() error {
	if m.CommitErr != nil {
		return m.CommitErr
	}
	m.Committed = true
	return nil
}

func (m *MockTx) Rollback() error {
	if m.Committed {
		return nil
	}
	m.RolledBack = true
	return nil
}

// MockRepository implements repository.OrderRepository for testing.
type MockRepository struct {
	Tx         *MockTx
	BeginErr   error
	BeginCalls int

	Orders    map[int64]*domain.Order
	AllOrders []*domain.Order
	GetErr    error
	ListErr   error

	Lines         []*domain.OrderLine
	InsertedLines []*domain.OrderLine
	NextLineID    int64
	InsertLineErr error
	ListLinesErr  error
}

func (m *MockRepository) BeginTx(_ context.Context) (repository.OrderTx, error) {
	m.BeginCalls++
	if m.BeginErr != nil {
		return nil, m.BeginErr
	}
	return m.Tx, nil
}

func (m *MockRepository) GetOrderByID(_ context.Context, id int64) (*domain.Order, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	order, ok := m.Orders[id]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}
	return order, nil
}

func (m *MockRepository) ListOrders(_ context.Context) ([]*domain.Order, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.AllOrders, nil
}

func (m *MockRepository) InsertOrderLine(_ context.Context, line *domain.OrderLine) (int64, error) {
	if m.InsertLineErr != nil {
		return 0, m.InsertLineErr
	}
	m.NextLineID++
	m.InsertedLines = append(m.InsertedLines, line)
	return m.NextLineID, nil
}

func (m *MockRepository) ListOrderLinesByOrderID(_ context.Context, orderID int64) ([]*domain.OrderLine, error) {
	if m.ListLinesErr != nil {
		return nil, m.ListLinesErr
	}
	var lines []*domain.OrderLine
	for _, line := range m.Lines {
		if line.OrderID == orderID {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

func (m *MockRepository) RunMigrations(*repository.Credentials) error { return nil }

func (m *MockRepository) Close() error { return nil }

// MockCustomerClient implements client.CustomerClient.
type MockCustomerClient struct {
	Customer *client.CustomerResponse
	Err      error
	GotID    string
}

func (m *MockCustomerClient) FindCustomerByID(_ context.Context, customerID string) (*client.CustomerResponse, error) {
	m.GotID = customerID
	return m.Customer, m.Err
}

// MockProductClient implements client.ProductClient.
type MockProductClient struct {
	Purchased   []client.PurchaseResponse
	Err         error
	GotProducts []client.PurchaseRequest
}

func (m *MockProductClient) PurchaseProducts(_ context.Context, products []client.PurchaseRequest) ([]client.PurchaseResponse, error) {
	m.GotProducts = products
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Purchased, nil
}

// MockPaymentClient implements client.PaymentClient.
type MockPaymentClient struct {
	Err        error
	GotRequest *client.PaymentRequest
}

func (m *MockPaymentClient) RequestOrderPayment(_ context.Context, request *client.PaymentRequest) error {
	m.GotRequest = request
	return m.Err
}

// MockProducer implements publisher.ConfirmationProducer.
type MockProducer struct {
	Err  error
	Sent []*publisher.OrderConfirmation
}

func (m *MockProducer) SendOrderConfirmation(_ context.Context, confirmation *publisher.OrderConfirmation) error {
	if m.Err != nil {
		return m.Err
	}
	m.Sent = append(m.Sent, confirmation)
	return nil
}

func (m *MockProducer) Close() error { return nil }
