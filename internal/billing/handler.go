// AngelaMos | 2026
// handler.go

package billing

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/host-adarshdhiman-me/host.dginfotech.back/internal/core"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// RegisterRoutes wires the bill endpoints. Creation lives at /addbill, off
// the /api prefix, for compatibility with existing clients.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/api/bills", h.List)
	r.Post("/addbill", h.Create)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	bills, err := h.service.List(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, bills)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	if err := h.service.Create(r.Context(), req); err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			core.Conflict(w, "bill number")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Success(w, http.StatusCreated, "Bill added successfully")
}
