// AngelaMos | 2026
// handler.go

package client

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/host-adarshdhiman-me/host.dginfotech.back/internal/core"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/activeclients", func(r chi.Router) {
		r.Get("/", h.ListActive)
		r.Post("/{clientID}/complete", h.Complete)
	})
}

func (h *Handler) ListActive(w http.ResponseWriter, r *http.Request) {
	clients, err := h.service.ListActive(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Data(w, clients)
}

func (h *Handler) Complete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "clientID"), 10, 64)
	if err != nil {
		core.BadRequest(w, "invalid client id")
		return
	}

	if err := h.service.Complete(r.Context(), id); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "client")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Success(w, http.StatusOK, "Client project marked as completed.")
}
