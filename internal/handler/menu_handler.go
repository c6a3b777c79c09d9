package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/yzxsolutions/soofi-mandi-sub000/internal/model"
	"github.com/yzxsolutions/soofi-mandi-sub000/internal/service"
	"github.com/yzxsolutions/soofi-mandi-sub000/internal/validate"
)

// MenuHandler handles menu browsing requests.
type MenuHandler struct {
	service   service.MenuService
	validator *validate.Validator
	logger    zerolog.Logger
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(svc service.MenuService, validator *validate.Validator, logger zerolog.Logger) *MenuHandler {
	return &MenuHandler{
		service:   svc,
		validator: validator,
		logger:    logger.With().Str("handler", "menu").Logger(),
	}
}

// List handles GET /api/menu requests.
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	query, verrs := h.parseQuery(r)
	if verrs != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidationFailed,
			"invalid query parameters", verrs.Errors, h.logger)
		return
	}

	items, total, err := h.service.List(r.Context(), query)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"items": items,
		"total": total,
	})
}

// GetByID handles GET /api/menu/{id} requests.
func (h *MenuHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	item, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	if item == nil {
		writeError(w, http.StatusNotFound, model.ErrCodeItemNotFound, "menu item not found", nil, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// parseQuery converts the raw query string into a schema-validated MenuQuery.
func (h *MenuHandler) parseQuery(r *http.Request) (model.MenuQuery, *model.ValidationErrors) {
	q := r.URL.Query()
	query := model.MenuQuery{
		Category: q.Get("category"),
		Search:   q.Get("search"),
		Spice:    q.Get("spice"),
	}

	parseErrs := &model.ValidationErrors{}
	if v := q.Get("vegetarian"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			parseErrs.Add("vegetarian", model.ErrCodeValidationFailed, "must be true or false")
		} else {
			query.Vegetarian = &b
		}
	}
	if v := q.Get("maxPrice"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			parseErrs.Add("maxPrice", model.ErrCodeValidationFailed, "must be a number")
		} else {
			query.MaxPrice = f
		}
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			parseErrs.Add("limit", model.ErrCodeValidationFailed, "must be an integer")
		} else {
			query.Limit = n
		}
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			parseErrs.Add("offset", model.ErrCodeValidationFailed, "must be an integer")
		} else {
			query.Offset = n
		}
	}
	if parseErrs.HasErrors() {
		return query, parseErrs
	}

	if verrs := h.validator.Struct(query); verrs != nil {
		return query, verrs
	}
	return query, nil
}
