package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vallapuneni6-prog/Ansira-Salon/internal/domain"
	"github.com/vallapuneni6-prog/Ansira-Salon/internal/repository"
)

type CatalogHandler struct {
	services repository.ServiceRepository
}

func NewCatalogHandler(services repository.ServiceRepository) *CatalogHandler {
	return &CatalogHandler{services: services}
}

func (h *CatalogHandler) RegisterRoutes(r chi.Router) {
	r.Get("/services", h.list)
}

func (h *CatalogHandler) RegisterAdminRoutes(r chi.Router) {
	r.Post("/services", h.upsert)
	r.Delete("/services/{id}", h.delete)
}

func (h *CatalogHandler) list(w http.ResponseWriter, r *http.Request) {
	services, err := h.services.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, services)
}

type catalogRequest struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	BasePrice float64 `json:"basePrice"`
}

func (h *CatalogHandler) upsert(w http.ResponseWriter, r *http.Request) {
	var req catalogRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	svc, err := h.services.Upsert(r.Context(), domain.CatalogService{
		ID:        req.ID,
		Name:      req.Name,
		Category:  req.Category,
		BasePrice: req.BasePrice,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, svc)
}

func (h *CatalogHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid service id")
		return
	}
	if err := h.services.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
