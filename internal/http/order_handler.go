package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/DesBasito/e-commerce-order-service/internal/client"
	"github.com/DesBasito/e-commerce-order-service/internal/repository"
	"github.com/DesBasito/e-commerce-order-service/internal/service"
)

// OrderService is the surface the handler needs; tests substitute fakes.
type OrderService interface {
	CreateOrder(ctx context.Context, request *service.OrderRequest) (int64, error)
	FindAllOrders(ctx context.Context) ([]service.OrderResponse, error)
	FindByID(ctx context.Context, id int64) (*service.OrderResponse, error)
}

type OrderHandler struct {
	orders OrderService
}

func NewOrderHandler(orders OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type createOrderResponse struct {
	ID int64 `json:"id"`
}

// POST /api/v1/orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var request service.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_json", "request body is not valid JSON")
		return
	}

	if fieldErrors := validateOrderRequest(&request); fieldErrors != nil {
		respondValidationErrors(w, fieldErrors)
		return
	}

	slog.InfoContext(r.Context(), "creating order",
		"request_id", getRequestID(r.Context()),
		"reference", request.Reference,
		"customer_id", request.CustomerID,
	)

	id, err := h.orders.CreateOrder(r.Context(), &request)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, createOrderResponse{ID: id})
}

// GET /api/v1/orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.FindAllOrders(r.Context())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, orders)
}

// GET /api/v1/orders/{order-id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "order-id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_order_id", "order id must be an integer")
		return
	}

	order, err := h.orders.FindByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, order)
}

// handleServiceError maps the service error taxonomy to HTTP statuses:
// business-rule miss and unknown order are not-found class, a duplicate
// reference is a conflict, a collaborator rejection is a bad gateway.
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var businessErr *service.BusinessError
	if errors.As(err, &businessErr) {
		respondError(w, http.StatusNotFound, "business_rule_violation", businessErr.Msg)
		return
	}
	if errors.Is(err, repository.ErrOrderNotFound) {
		respondError(w, http.StatusNotFound, "order_not_found", "no order found with the provided ID")
		return
	}
	if errors.Is(err, repository.ErrDuplicateReference) {
		respondError(w, http.StatusConflict, "duplicate_reference", "an order with this reference already exists")
		return
	}

	var statusErr *client.StatusError
	if errors.As(err, &statusErr) {
		slog.ErrorContext(r.Context(), "downstream call failed",
			"request_id", getRequestID(r.Context()),
			"status", statusErr.StatusCode,
			"error", err,
		)
		respondError(w, http.StatusBadGateway, "downstream_error", "a collaborating service rejected the request")
		return
	}

	slog.ErrorContext(r.Context(), "internal error",
		"request_id", getRequestID(r.Context()),
		"error", err,
	)
	respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
}
