package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vallapuneni6-prog/Ansira-Salon/internal/domain"
	"github.com/vallapuneni6-prog/Ansira-Salon/internal/repository"
)

type TemplateHandler struct {
	templates repository.TemplateRepository
}

func NewTemplateHandler(templates repository.TemplateRepository) *TemplateHandler {
	return &TemplateHandler{templates: templates}
}

func (h *TemplateHandler) RegisterRoutes(r chi.Router) {
	r.Get("/templates/packages", h.listValue)
	r.Get("/templates/sittings", h.listSitting)
}

func (h *TemplateHandler) RegisterAdminRoutes(r chi.Router) {
	r.Post("/templates/packages", h.createValue)
	r.Delete("/templates/packages/{id}", h.deleteValue)
	r.Post("/templates/sittings", h.createSitting)
	r.Delete("/templates/sittings/{id}", h.deleteSitting)
}

func (h *TemplateHandler) listValue(w http.ResponseWriter, r *http.Request) {
	items, err := h.templates.ListValue(r.Context(), queryInt64(r, "salonId"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

type valueTemplateRequest struct {
	Name         string  `json:"name"`
	PaidAmount   float64 `json:"paidAmount"`
	OfferedValue float64 `json:"offeredValue"`
	SalonIDs     []int64 `json:"salonIds"`
}

func (h *TemplateHandler) createValue(w http.ResponseWriter, r *http.Request) {
	var req valueTemplateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.PaidAmount <= 0 || req.OfferedValue < req.PaidAmount {
		writeError(w, http.StatusBadRequest, "name, paidAmount and offeredValue >= paidAmount are required")
		return
	}
	tmpl, err := h.templates.CreateValue(r.Context(), domain.PackageTemplate{
		Name:         req.Name,
		PaidAmount:   req.PaidAmount,
		OfferedValue: req.OfferedValue,
		SalonIDs:     req.SalonIDs,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tmpl)
}

func (h *TemplateHandler) deleteValue(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid template id")
		return
	}
	if err := h.templates.DeleteValue(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *TemplateHandler) listSitting(w http.ResponseWriter, r *http.Request) {
	items, err := h.templates.ListSitting(r.Context(), queryInt64(r, "salonId"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

type sittingTemplateRequest struct {
	Name         string  `json:"name"`
	PaidSittings int     `json:"paidSittings"`
	CompSittings int     `json:"compSittings"`
	SalonIDs     []int64 `json:"salonIds"`
}

func (h *TemplateHandler) createSitting(w http.ResponseWriter, r *http.Request) {
	var req sittingTemplateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.PaidSittings <= 0 || req.CompSittings < 0 {
		writeError(w, http.StatusBadRequest, "name and paidSittings are required")
		return
	}
	tmpl, err := h.templates.CreateSitting(r.Context(), domain.SittingTemplate{
		Name:          req.Name,
		PaidSittings:  req.PaidSittings,
		CompSittings:  req.CompSittings,
		TotalSittings: req.PaidSittings + req.CompSittings,
		SalonIDs:      req.SalonIDs,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tmpl)
}

func (h *TemplateHandler) deleteSitting(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid template id")
		return
	}
	if err := h.templates.DeleteSitting(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
