package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/yzxsolutions/soofi-mandi-sub000/internal/model"
	"github.com/yzxsolutions/soofi-mandi-sub000/internal/service"
	"github.com/yzxsolutions/soofi-mandi-sub000/internal/validate"
)

// CartHandler handles session cart requests.
type CartHandler struct {
	service   service.CartService
	validator *validate.Validator
	logger    zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(svc service.CartService, validator *validate.Validator, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service:   svc,
		validator: validator,
		logger:    logger.With().Str("handler", "cart").Logger(),
	}
}

// Create handles POST /api/carts requests.
func (h *CartHandler) Create(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Create(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

// Get handles GET /api/carts/{id} requests.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// AddItem handles POST /api/carts/{id}/items requests.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req model.AddItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", nil, h.logger)
		return
	}
	if verrs := h.validator.Struct(req); verrs != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidationFailed,
			"request validation failed", verrs.Errors, h.logger)
		return
	}

	view, err := h.service.AddItem(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// UpdateItem handles PATCH /api/carts/{id}/items/{key} requests.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateQuantityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", nil, h.logger)
		return
	}
	if verrs := h.validator.Struct(req); verrs != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidationFailed,
			"request validation failed", verrs.Errors, h.logger)
		return
	}

	view, err := h.service.UpdateQuantity(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "key"), req.Quantity)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// RemoveItem handles DELETE /api/carts/{id}/items/{key} requests.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.RemoveItem(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "key"))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// ApplyCoupon handles POST /api/carts/{id}/coupon requests. The code is
// stored optimistically; whether a discount is actually granted shows up in
// the returned pricing (and its warning, if any).
func (h *CartHandler) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	var req model.ApplyCouponRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", nil, h.logger)
		return
	}
	req.Code = strings.TrimSpace(req.Code)
	if verrs := h.validator.Struct(req); verrs != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidationFailed,
			"request validation failed", verrs.Errors, h.logger)
		return
	}

	view, err := h.service.ApplyCoupon(r.Context(), chi.URLParam(r, "id"), req.Code)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// RemoveCoupon handles DELETE /api/carts/{id}/coupon requests.
func (h *CartHandler) RemoveCoupon(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.RemoveCoupon(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, view)
}
