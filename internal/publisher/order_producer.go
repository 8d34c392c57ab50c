package publisher

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/DesBasito/e-commerce-order-service/internal/client"
	"github.com/DesBasito/e-commerce-order-service/internal/domain"
)

const orderConfirmationTopic = "order-confirmation"

// OrderConfirmation is the event emitted after an order has been fully
// created and its payment requested. Consumers (e.g. notification service)
// only ever read it, so the shape is append-only.
type OrderConfirmation struct {
	OrderReference string                    `json:"orderReference"`
	TotalAmount    decimal.Decimal           `json:"totalAmount"`
	PaymentMethod  domain.PaymentMethod      `json:"paymentMethod"`
	Customer       client.CustomerResponse   `json:"customer"`
	Products       []client.PurchaseResponse `json:"products"`
}

type ConfirmationProducer interface {
	SendOrderConfirmation(ctx context.Context, confirmation *OrderConfirmation) error
	Close() error
}

type OrderProducer struct {
	writer *kafka.Writer
}

func NewOrderProducer(brokers ...string) *OrderProducer {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  orderConfirmationTopic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &OrderProducer{writer: w}
}

func (p *OrderProducer) SendOrderConfirmation(ctx context.Context, confirmation *OrderConfirmation) error {
	payload, err := json.Marshal(confirmation)
	if err != nil {
		return fmt.Errorf("marshal order confirmation: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(confirmation.OrderReference), // per-order ordering
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("order_confirmation")},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write order confirmation: %w", err)
	}
	return nil
}

func (p *OrderProducer) Close() error {
	return p.writer.Close()
}
