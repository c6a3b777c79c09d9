package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yzxsolutions/soofi-mandi-sub000/internal/model"
	"github.com/yzxsolutions/soofi-mandi-sub000/internal/service"
	"github.com/yzxsolutions/soofi-mandi-sub000/internal/validate"
)

// OrderHandler handles checkout and order lifecycle requests.
type OrderHandler struct {
	service   service.OrderService
	validator *validate.Validator
	logger    zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(svc service.OrderService, validator *validate.Validator, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service:   svc,
		validator: validator,
		logger:    logger.With().Str("handler", "order").Logger(),
	}
}

// Checkout handles POST /api/orders requests. Customer, delivery and payment
// details are validated downstream so that all field errors come back in a
// single response.
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req model.CheckoutRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", nil, h.logger)
		return
	}
	if verrs := h.validator.Struct(req); verrs != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidationFailed,
			"request validation failed", verrs.Errors, h.logger)
		return
	}

	resp, err := h.service.Checkout(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	h.logger.Info().
		Str("orderId", resp.Order.ID.String()).
		Str("orderNumber", resp.Order.Number).
		Msg("order placed")
	writeJSON(w, http.StatusCreated, resp)
}

// GetByID handles GET /api/orders/{id} requests.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, model.ErrCodeOrderNotFound, "order not found", nil, h.logger)
		return
	}

	order, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	if order == nil {
		writeError(w, http.StatusNotFound, model.ErrCodeOrderNotFound, "order not found", nil, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// List handles GET /api/orders requests. Orders come back newest first.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.List(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"orders": orders,
		"total":  len(orders),
	})
}

// UpdateStatus handles PATCH /api/orders/{id}/status requests. Only the next
// step in the lifecycle is accepted.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, model.ErrCodeOrderNotFound, "order not found", nil, h.logger)
		return
	}

	var req model.UpdateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", nil, h.logger)
		return
	}
	if verrs := h.validator.Struct(req); verrs != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidationFailed,
			"request validation failed", verrs.Errors, h.logger)
		return
	}
	if !model.ValidStatus(req.Status) {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidationFailed,
			"request validation failed",
			[]model.FieldError{{
				Field:   "status",
				Code:    model.ErrCodeValidationFailed,
				Message: fmt.Sprintf("%q is not a valid order status", req.Status),
			}}, h.logger)
		return
	}

	order, err := h.service.AdvanceStatus(r.Context(), id, req.Status)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, order)
}
