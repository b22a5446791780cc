// AngelaMos | 2026
// handler.go

package quickcontact

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

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

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/api/addquickcontact", h.Submit)
	r.Route("/api/quickcontacts", func(r chi.Router) {
		r.Get("/", h.List)
		r.Delete("/{contactID}/deny", h.Deny)
		r.Post("/{contactID}/approve", h.Approve)
	})
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req CreateQuickContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	if err := h.service.Submit(r.Context(), req); err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Success(w, http.StatusCreated, "Quick contact added successfully")
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.service.List(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Data(w, contacts)
}

func (h *Handler) Deny(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "contactID"), 10, 64)
	if err != nil {
		core.BadRequest(w, "invalid contact id")
		return
	}

	if err := h.service.Deny(r.Context(), id); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "quick contact")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Success(w, http.StatusOK, "Quick contact denied and deleted.")
}

func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "contactID"), 10, 64)
	if err != nil {
		core.BadRequest(w, "invalid contact id")
		return
	}

	var req ApproveQuickContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	if err := h.service.Approve(r.Context(), id, req); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "quick contact")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Success(
		w,
		http.StatusCreated,
		"Quick contact approved and converted to active client.",
	)
}
