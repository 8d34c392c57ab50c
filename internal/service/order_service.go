package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DesBasito/e-commerce-order-service/internal/client"
	"github.com/DesBasito/e-commerce-order-service/internal/domain"
	"github.com/DesBasito/e-commerce-order-service/internal/publisher"
	"github.com/DesBasito/e-commerce-order-service/internal/repository"
)

// OrderService coordinates order creation across the customer, product and
// payment services, the local store and the confirmation topic.
type OrderService struct {
	repo           repository.OrderRepository
	customerClient client.CustomerClient
	productClient  client.ProductClient
	paymentClient  client.PaymentClient
	producer       publisher.ConfirmationProducer
}

func NewOrderService(
	repo repository.OrderRepository,
	customerClient client.CustomerClient,
	productClient client.ProductClient,
	paymentClient client.PaymentClient,
	producer publisher.ConfirmationProducer,
) *OrderService {
	return &OrderService{
		repo:           repo,
		customerClient: customerClient,
		productClient:  productClient,
		paymentClient:  paymentClient,
		producer:       producer,
	}
}

// CreateOrder runs the full creation sequence: resolve the customer, purchase
// the products, persist the order and its lines, request the payment, then
// publish the confirmation. The order row, its lines and the payment request
// share one transaction; the confirmation publish happens after commit and
// its failure is only logged.
func (s *OrderService) CreateOrder(ctx context.Context, request *OrderRequest) (int64, error) {
	customer, err := s.customerClient.FindCustomerByID(ctx, request.CustomerID)
	if err != nil {
		return 0, fmt.Errorf("resolve customer: %w", err)
	}
	if customer == nil {
		return 0, &BusinessError{Msg: "cannot create order: no customer exists with the provided ID"}
	}

	purchasedProducts, err := s.productClient.PurchaseProducts(ctx, request.Products)
	if err != nil {
		return 0, fmt.Errorf("purchase products: %w", err)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin order tx: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(); rbErr != nil {
			slog.ErrorContext(ctx, "order tx rollback failed", "error", rbErr)
		}
	}()

	orderID, err := tx.InsertOrder(ctx, toOrder(request))
	if err != nil {
		return 0, err
	}

	for _, product := range request.Products {
		line := &domain.OrderLine{
			OrderID:   orderID,
			ProductID: product.ProductID,
			Quantity:  product.Quantity,
		}
		if _, err := tx.InsertOrderLine(ctx, line); err != nil {
			return 0, err
		}
	}

	paymentRequest := &client.PaymentRequest{
		Amount:         request.Amount,
		PaymentMethod:  request.PaymentMethod,
		OrderID:        orderID,
		OrderReference: request.Reference,
		Customer:       *customer,
	}
	if err := s.paymentClient.RequestOrderPayment(ctx, paymentRequest); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit order: %w", err)
	}

	confirmation := &publisher.OrderConfirmation{
		OrderReference: request.Reference,
		TotalAmount:    request.Amount,
		PaymentMethod:  request.PaymentMethod,
		Customer:       *customer,
		Products:       purchasedProducts,
	}
	if err := s.producer.SendOrderConfirmation(ctx, confirmation); err != nil {
		// The order is committed and paid; the confirmation is best-effort.
		slog.ErrorContext(ctx, "failed to publish order confirmation",
			"order_id", orderID,
			"reference", request.Reference,
			"error", err,
		)
	}

	return orderID, nil
}

func (s *OrderService) FindAllOrders(ctx context.Context) ([]OrderResponse, error) {
	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	responses := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, fromOrder(order))
	}
	return responses, nil
}

func (s *OrderService) FindByID(ctx context.Context, id int64) (*OrderResponse, error) {
	order, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := fromOrder(order)
	return &response, nil
}
