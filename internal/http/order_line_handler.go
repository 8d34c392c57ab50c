package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/DesBasito/e-commerce-order-service/internal/service"
)

type OrderLineService interface {
	SaveOrderLine(ctx context.Context, request *service.OrderLineRequest) (int64, error)
	FindAllByOrderID(ctx context.Context, orderID int64) ([]service.OrderLineResponse, error)
}

type OrderLineHandler struct {
	orderLines OrderLineService
}

func NewOrderLineHandler(orderLines OrderLineService) *OrderLineHandler {
	return &OrderLineHandler{orderLines: orderLines}
}

type saveOrderLineResponse struct {
	ID int64 `json:"id"`
}

// POST /api/v1/order-lines
func (h *OrderLineHandler) SaveOrderLine(w http.ResponseWriter, r *http.Request) {
	var request service.OrderLineRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_json", "request body is not valid JSON")
		return
	}

	if fieldErrors := validateOrderLineRequest(&request); fieldErrors != nil {
		respondValidationErrors(w, fieldErrors)
		return
	}

	id, err := h.orderLines.SaveOrderLine(r.Context(), &request)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, saveOrderLineResponse{ID: id})
}

// GET /api/v1/order-lines/order/{order-id}
func (h *OrderLineHandler) ListOrderLines(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(chi.URLParam(r, "order-id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_order_id", "order id must be an integer")
		return
	}

	lines, err := h.orderLines.FindAllByOrderID(r.Context(), orderID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, lines)
}
