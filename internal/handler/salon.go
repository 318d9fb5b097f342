package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vallapuneni6-prog/Ansira-Salon/internal/domain"
	"github.com/vallapuneni6-prog/Ansira-Salon/internal/service"
)

type SalonHandler struct {
	salons *service.SalonService
}

func NewSalonHandler(salons *service.SalonService) *SalonHandler {
	return &SalonHandler{salons: salons}
}

func (h *SalonHandler) RegisterRoutes(r chi.Router) {
	r.Get("/salons", h.list)
	r.Get("/salons/{id}", h.get)
	r.Put("/salons/{id}", h.update)
}

// RegisterAdminRoutes mounts the routes reserved for administrators.
func (h *SalonHandler) RegisterAdminRoutes(r chi.Router) {
	r.Post("/salons", h.onboard)
}

type onboardRequest struct {
	Name            string `json:"name"`
	Address         string `json:"address"`
	Contact         string `json:"contact"`
	GSTNumber       string `json:"gstNumber"`
	ManagerName     string `json:"managerName"`
	ManagerUsername string `json:"managerUsername"`
	ManagerPassword string `json:"managerPassword"`
}

func (h *SalonHandler) onboard(w http.ResponseWriter, r *http.Request) {
	var req onboardRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.ManagerUsername != "" && req.ManagerPassword == "" {
		writeError(w, http.StatusBadRequest, "managerPassword is required with managerUsername")
		return
	}
	salon, err := h.salons.Onboard(r.Context(), service.OnboardInput{
		Salon: domain.Salon{
			Name:        req.Name,
			Address:     req.Address,
			Contact:     req.Contact,
			GSTNumber:   req.GSTNumber,
			ManagerName: req.ManagerName,
		},
		ManagerUsername: req.ManagerUsername,
		ManagerPassword: req.ManagerPassword,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, salon)
}

func (h *SalonHandler) list(w http.ResponseWriter, r *http.Request) {
	salons, err := h.salons.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, salons)
}

func (h *SalonHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid salon id")
		return
	}
	salon, err := h.salons.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, salon)
}

func (h *SalonHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid salon id")
		return
	}
	var req onboardRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	salon, err := h.salons.Update(r.Context(), domain.Salon{
		ID:          id,
		Name:        req.Name,
		Address:     req.Address,
		Contact:     req.Contact,
		GSTNumber:   req.GSTNumber,
		ManagerName: req.ManagerName,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, salon)
}
