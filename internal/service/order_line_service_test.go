package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DesBasito/e-commerce-order-service/internal/domain"
)

func TestSaveOrderLine(t *testing.T) {
	repo := &MockRepository{}
	svc := NewOrderLineService(repo)

	id, err := svc.SaveOrderLine(context.Background(), &OrderLineRequest{
		OrderID:   4,
		ProductID: 7,
		Quantity:  2.5,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	require.Len(t, repo.InsertedLines, 1)
	assert.Equal(t, int64(4), repo.InsertedLines[0].OrderID)
	assert.Equal(t, int64(7), repo.InsertedLines[0].ProductID)
	assert.Equal(t, 2.5, repo.InsertedLines[0].Quantity)
}

func TestFindAllByOrderID_ProjectsOnlyIDAndQuantity(t *testing.T) {
	repo := &MockRepository{
		Lines: []*domain.OrderLine{
			{ID: 1, OrderID: 4, ProductID: 7, Quantity: 2},
			{ID: 2, OrderID: 4, ProductID: 8, Quantity: 1},
			{ID: 3, OrderID: 5, ProductID: 7, Quantity: 9},
		},
	}
	svc := NewOrderLineService(repo)

	lines, err := svc.FindAllByOrderID(context.Background(), 4)

	require.NoError(t, err)
	require.Len(t, lines, 2, "only the lines owned by the order")
	assert.Equal(t, int64(1), lines[0].ID)
	assert.Equal(t, 2.0, lines[0].Quantity)
	assert.Equal(t, int64(2), lines[1].ID)
	assert.Equal(t, 1.0, lines[1].Quantity)
}

func TestFindAllByOrderID_Empty(t *testing.T) {
	svc := NewOrderLineService(&MockRepository{})

	lines, err := svc.FindAllByOrderID(context.Background(), 12)

	require.NoError(t, err)
	assert.Empty(t, lines)
}
