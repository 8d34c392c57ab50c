package service

import (
	"github.com/DesBasito/e-commerce-order-service/internal/domain"
)

func toOrder(request *OrderRequest) *domain.Order {
	if request == nil {
		return nil
	}
	return &domain.Order{
		Reference:     request.Reference,
		TotalAmount:   request.Amount,
		PaymentMethod: request.PaymentMethod,
		CustomerID:    request.CustomerID,
	}
}

func fromOrder(order *domain.Order) OrderResponse {
	return OrderResponse{
		ID:            order.ID,
		Reference:     order.Reference,
		Amount:        order.TotalAmount,
		PaymentMethod: order.PaymentMethod,
		CustomerID:    order.CustomerID,
	}
}

func toOrderLine(request *OrderLineRequest) *domain.OrderLine {
	return &domain.OrderLine{
		ID:        request.ID,
		OrderID:   request.OrderID,
		ProductID: request.ProductID,
		Quantity:  request.Quantity,
	}
}

func toOrderLineResponse(line *domain.OrderLine) OrderLineResponse {
	return OrderLineResponse{
		ID:       line.ID,
		Quantity: line.Quantity,
	}
}
