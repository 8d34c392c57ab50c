package http

import (
	"fmt"

	"github.com/DesBasito/e-commerce-order-service/internal/service"
)

func validateOrderRequest(request *service.OrderRequest) map[string]string {
	fieldErrors := make(map[string]string)

	if request.CustomerID == "" {
		fieldErrors["customerId"] = "customer id is required"
	}
	if request.Reference == "" {
		fieldErrors["reference"] = "order reference is required"
	}
	if !request.Amount.IsPositive() {
		fieldErrors["amount"] = "order amount must be positive"
	}
	if !request.PaymentMethod.IsValid() {
		fieldErrors["paymentMethod"] = "unknown payment method"
	}
	if len(request.Products) == 0 {
		fieldErrors["products"] = "at least one product is required"
	}
	for i, product := range request.Products {
		if product.ProductID <= 0 {
			fieldErrors[fmt.Sprintf("products[%d].productId", i)] = "product id is required"
		}
		if product.Quantity <= 0 {
			fieldErrors[fmt.Sprintf("products[%d].quantity", i)] = "quantity must be positive"
		}
	}

	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}

func validateOrderLineRequest(request *service.OrderLineRequest) map[string]string {
	fieldErrors := make(map[string]string)

	if request.OrderID <= 0 {
		fieldErrors["orderId"] = "order id is required"
	}
	if request.ProductID <= 0 {
		fieldErrors["productId"] = "product id is required"
	}
	if request.Quantity <= 0 {
		fieldErrors["quantity"] = "quantity must be positive"
	}

	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}
