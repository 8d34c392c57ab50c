package service

import (
	"context"
	"fmt"

	"github.com/DesBasito/e-commerce-order-service/internal/repository"
)

type OrderLineService struct {
	repo repository.OrderRepository
}

func NewOrderLineService(repo repository.OrderRepository) *OrderLineService {
	return &OrderLineService{repo: repo}
}

// SaveOrderLine persists one line and returns its generated id. The id on
// the request is ignored on creation; the store assigns it.
func (s *OrderLineService) SaveOrderLine(ctx context.Context, request *OrderLineRequest) (int64, error) {
	id, err := s.repo.InsertOrderLine(ctx, toOrderLine(request))
	if err != nil {
		return 0, fmt.Errorf("save order line: %w", err)
	}
	return id, nil
}

func (s *OrderLineService) FindAllByOrderID(ctx context.Context, orderID int64) ([]OrderLineResponse, error) {
	lines, err := s.repo.ListOrderLinesByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order lines: %w", err)
	}

	responses := make([]OrderLineResponse, 0, len(lines))
	for _, line := range lines {
		responses = append(responses, toOrderLineResponse(line))
	}
	return responses, nil
}
