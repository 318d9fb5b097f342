package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vallapuneni6-prog/Ansira-Salon/internal/domain"
	"github.com/vallapuneni6-prog/Ansira-Salon/internal/repository"
)

type StaffHandler struct {
	staff repository.StaffRepository
}

func NewStaffHandler(staff repository.StaffRepository) *StaffHandler {
	return &StaffHandler{staff: staff}
}

func (h *StaffHandler) RegisterRoutes(r chi.Router) {
	r.Get("/salons/{salonID}/staff", h.list)
	r.Get("/staff/{id}", h.get)
	r.Post("/staff", h.upsert)
	r.Patch("/staff/{id}/status", h.setStatus)
}

type staffRequest struct {
	ID          int64   `json:"id"`
	SalonID     int64   `json:"salonId"`
	Name        string  `json:"name"`
	Phone       string  `json:"phone"`
	Role        string  `json:"role"`
	BaseSalary  float64 `json:"baseSalary"`
	JoiningDate string  `json:"joiningDate"`
	ExitDate    string  `json:"exitDate"`
	Status      string  `json:"status"`
}

func (h *StaffHandler) list(w http.ResponseWriter, r *http.Request) {
	salonID, err := idParam(r, "salonID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid salon id")
		return
	}
	activeOnly := r.URL.Query().Get("all") == ""
	members, err := h.staff.ListBySalon(r.Context(), salonID, activeOnly)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, members)
}

func (h *StaffHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid staff id")
		return
	}
	member, err := h.staff.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, member)
}

func (h *StaffHandler) upsert(w http.ResponseWriter, r *http.Request) {
	var req staffRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	role := domain.StaffRole(req.Role)
	if !role.Valid() {
		writeError(w, http.StatusBadRequest, "invalid staff role")
		return
	}
	if req.SalonID == 0 || req.Name == "" {
		writeError(w, http.StatusBadRequest, "salonId and name are required")
		return
	}
	joining, err := parseDate(req.JoiningDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid joiningDate")
		return
	}

	member := domain.Staff{
		ID:          req.ID,
		SalonID:     req.SalonID,
		Name:        req.Name,
		Phone:       req.Phone,
		Role:        role,
		BaseSalary:  req.BaseSalary,
		JoiningDate: joining,
		Status:      domain.StaffActive,
	}
	if req.Status != "" {
		member.Status = domain.StaffStatus(req.Status)
	}
	if req.ExitDate != "" {
		exit, err := parseDate(req.ExitDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid exitDate")
			return
		}
		member.ExitDate = &exit
	}

	out, err := h.staff.Upsert(r.Context(), member)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *StaffHandler) setStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid staff id")
		return
	}
	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	status := domain.StaffStatus(req.Status)
	if status != domain.StaffActive && status != domain.StaffInactive {
		writeError(w, http.StatusBadRequest, "invalid status")
		return
	}
	if err := h.staff.SetStatus(r.Context(), id, status); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": string(status)})
}
