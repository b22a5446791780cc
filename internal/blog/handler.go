// AngelaMos | 2026
// handler.go

package blog

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

// RegisterRoutes wires the blog endpoints. The list endpoint is reachable at
// both /api/blogs and /blogs; clients use either.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/blogs", h.List)
	r.Get("/api/blogs", h.List)
	r.Post("/api/addblog", h.Create)
	r.Put("/api/editblog/{slug}", h.Update)
	r.Delete("/api/deleteblog/{slug}", h.Delete)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.service.List(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, blogs)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req UpsertBlogRequest
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
			core.Conflict(w, "slug")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Success(w, http.StatusCreated, "Blog added successfully")
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	var req UpsertBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	if err := h.service.Update(r.Context(), slug, req); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "blog")
			return
		}
		if errors.Is(err, core.ErrDuplicateKey) {
			core.Conflict(w, "slug")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Success(w, http.StatusOK, "Blog updated successfully")
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	if err := h.service.Delete(r.Context(), slug); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "blog")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Success(w, http.StatusOK, "Blog deleted")
}
