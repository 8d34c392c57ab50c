package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/DesBasito/e-commerce-order-service/internal/domain"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)

	port, err := pgContainer.MappedPort(ctx, "5432")
	require.NoError(t, err)

	creds := &Credentials{
		Host:              host,
		Port:              port.Int(),
		User:              "testuser",
		Password:          "testpass",
		DBName:            "testdb",
		MigrationsDirPath: "./migrations",
	}

	repo, err := NewRepository(creds)
	require.NoError(t, err)

	err = repo.RunMigrations(creds)
	require.NoError(t, err)

	cleanup := func() {
		repo.Close()
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	}

	return repo, cleanup
}

func testOrder(reference string) *domain.Order {
	return &domain.Order{
		Reference:     reference,
		TotalAmount:   decimal.RequireFromString("100.00"),
		PaymentMethod: domain.PaymentMethodCash,
		CustomerID:    "42",
	}
}

func createOrder(t *testing.T, repo *Repository, reference string, lines ...*domain.OrderLine) int64 {
	ctx := context.Background()

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)

	orderID, err := tx.InsertOrder(ctx, testOrder(reference))
	require.NoError(t, err)

	for _, line := range lines {
		line.OrderID = orderID
		_, err = tx.InsertOrderLine(ctx, line)
		require.NoError(t, err)
	}

	require.NoError(t, tx.Commit())
	return orderID
}

func TestCreateAndGetOrder(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	orderID := createOrder(t, repo, "R-1",
		&domain.OrderLine{ProductID: 7, Quantity: 2},
	)
	require.Positive(t, orderID)

	order, err := repo.GetOrderByID(ctx, orderID)
	require.NoError(t, err)

	assert.Equal(t, orderID, order.ID)
	assert.Equal(t, "R-1", order.Reference)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("100.00")))
	assert.Equal(t, domain.PaymentMethodCash, order.PaymentMethod)
	assert.Equal(t, "42", order.CustomerID)
	assert.False(t, order.CreatedAt.IsZero())
	assert.False(t, order.UpdatedAt.IsZero())

	lines, err := repo.ListOrderLinesByOrderID(ctx, orderID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, int64(7), lines[0].ProductID)
	assert.Equal(t, 2.0, lines[0].Quantity)
}

func TestGetOrderByID_NotFound(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.GetOrderByID(context.Background(), 424242)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestInsertOrder_DuplicateReference(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	createOrder(t, repo, "R-DUP")

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	defer tx.Rollback()

	_, err = tx.InsertOrder(ctx, testOrder("R-DUP"))
	assert.ErrorIs(t, err, ErrDuplicateReference)
}

func TestRollbackLeavesNoRows(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)

	orderID, err := tx.InsertOrder(ctx, testOrder("R-GONE"))
	require.NoError(t, err)

	_, err = tx.InsertOrderLine(ctx, &domain.OrderLine{OrderID: orderID, ProductID: 7, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, tx.Rollback())

	// neither the order nor its line is visible to any reader
	_, err = repo.GetOrderByID(ctx, orderID)
	assert.ErrorIs(t, err, ErrOrderNotFound)

	lines, err := repo.ListOrderLinesByOrderID(ctx, orderID)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestRollbackAfterCommitIsNoOp(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)

	orderID, err := tx.InsertOrder(ctx, testOrder("R-KEPT"))
	require.NoError(t, err)

	require.NoError(t, tx.Commit())
	require.NoError(t, tx.Rollback())

	order, err := repo.GetOrderByID(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, "R-KEPT", order.Reference)
}

func TestListOrders_InsertionOrder(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	first := createOrder(t, repo, "R-A")
	second := createOrder(t, repo, "R-B")

	orders, err := repo.ListOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, first, orders[0].ID)
	assert.Equal(t, second, orders[1].ID)
}

func TestListOrderLinesByOrderID_FiltersByOwner(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	orderA := createOrder(t, repo, "R-A",
		&domain.OrderLine{ProductID: 7, Quantity: 2},
		&domain.OrderLine{ProductID: 8, Quantity: 1},
	)
	orderB := createOrder(t, repo, "R-B",
		&domain.OrderLine{ProductID: 7, Quantity: 9},
	)

	linesA, err := repo.ListOrderLinesByOrderID(ctx, orderA)
	require.NoError(t, err)
	require.Len(t, linesA, 2)

	linesB, err := repo.ListOrderLinesByOrderID(ctx, orderB)
	require.NoError(t, err)
	require.Len(t, linesB, 1)
	assert.Equal(t, 9.0, linesB[0].Quantity)
}

func TestInsertOrderLine_WithoutTx(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	orderID := createOrder(t, repo, "R-L")

	lineID, err := repo.InsertOrderLine(ctx, &domain.OrderLine{
		OrderID:   orderID,
		ProductID: 12,
		Quantity:  3.5,
	})
	require.NoError(t, err)
	require.Positive(t, lineID)

	lines, err := repo.ListOrderLinesByOrderID(ctx, orderID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, lineID, lines[0].ID)
	assert.Equal(t, 3.5, lines[0].Quantity)
}
