package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vallapuneni6-prog/Ansira-Salon/internal/domain"
	"github.com/vallapuneni6-prog/Ansira-Salon/internal/repository"
)

type CustomerHandler struct {
	customers repository.CustomerRepository
}

func NewCustomerHandler(customers repository.CustomerRepository) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

func (h *CustomerHandler) RegisterRoutes(r chi.Router) {
	r.Get("/customers", h.list)
	r.Get("/customers/{mobile}", h.get)
	r.Post("/customers", h.upsert)
}

func (h *CustomerHandler) list(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit")
	if limit <= 0 || limit > 1000 {
		limit = 200
	}
	customers, err := h.customers.List(r.Context(), limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customers)
}

func (h *CustomerHandler) get(w http.ResponseWriter, r *http.Request) {
	mobile := chi.URLParam(r, "mobile")
	customer, err := h.customers.Get(r.Context(), mobile)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

type customerRequest struct {
	Mobile string `json:"mobile"`
	Name   string `json:"name"`
}

func (h *CustomerHandler) upsert(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Mobile == "" || req.Name == "" {
		writeError(w, http.StatusBadRequest, "mobile and name are required")
		return
	}
	customer, err := h.customers.Upsert(r.Context(), domain.Customer{Mobile: req.Mobile, Name: req.Name})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}
