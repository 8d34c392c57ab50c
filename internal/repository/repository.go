package repository

import (
	"context"
	"errors"

	"github.com/DesBasito/e-commerce-order-service/internal/domain"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrDuplicateReference = errors.New("order with this reference already exists")
)

type Credentials struct {
	Host              string
	Port              int
	User              string
	Password          string
	DBName            string
	MigrationsDirPath string
}

// OrderTx is an explicit transaction scope covering the order row, its lines
// and whatever else must commit or roll back with them. Callers must finish
// it with Commit or Rollback; Rollback after Commit is a no-op.
type OrderTx interface {
	InsertOrder(ctx context.Context, order *domain.Order) (int64, error)
	InsertOrderLine(ctx context.Context, line *domain.OrderLine) (int64, error)
	Commit() error
	Rollback() error
}

type OrderRepository interface {
	BeginTx(ctx context.Context) (OrderTx, error)
	GetOrderByID(ctx context.Context, id int64) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)
	InsertOrderLine(ctx context.Context, line *domain.OrderLine) (int64, error)
	ListOrderLinesByOrderID(ctx context.Context, orderID int64) ([]*domain.OrderLine, error)
	RunMigrations(*Credentials) error
	Close() error
}
