package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vallapuneni6-prog/Ansira-Salon/internal/domain"
	"github.com/vallapuneni6-prog/Ansira-Salon/internal/service"
)

type AttendanceHandler struct {
	attendance *service.AttendanceService
}

func NewAttendanceHandler(attendance *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance}
}

func (h *AttendanceHandler) RegisterRoutes(r chi.Router) {
	r.Post("/attendance", h.mark)
	r.Get("/salons/{salonID}/attendance", h.listDay)
	r.Get("/staff/{id}/attendance/stats", h.monthlyStats)
}

type markRequest struct {
	StaffID  int64  `json:"staffId"`
	Date     string `json:"date"`
	Status   string `json:"status"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
}

func (h *AttendanceHandler) mark(w http.ResponseWriter, r *http.Request) {
	var req markRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.StaffID == 0 {
		writeError(w, http.StatusBadRequest, "staffId is required")
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date")
		return
	}

	mark := domain.AttendanceMark{
		StaffID: req.StaffID,
		Date:    date,
		Status:  domain.AttendanceStatus(req.Status),
	}
	if req.CheckIn != "" {
		t, err := time.Parse(time.RFC3339, req.CheckIn)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid checkIn")
			return
		}
		mark.CheckIn = &t
	}
	if req.CheckOut != "" {
		t, err := time.Parse(time.RFC3339, req.CheckOut)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid checkOut")
			return
		}
		mark.CheckOut = &t
	}

	out, err := h.attendance.Mark(r.Context(), mark)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *AttendanceHandler) listDay(w http.ResponseWriter, r *http.Request) {
	salonID, err := idParam(r, "salonID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid salon id")
		return
	}
	marks, err := h.attendance.ListDay(r.Context(), salonID, dateFilter(r, "date"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, marks)
}

func (h *AttendanceHandler) monthlyStats(w http.ResponseWriter, r *http.Request) {
	staffID, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid staff id")
		return
	}
	month, year := monthFilter(r)
	stats, err := h.attendance.MonthlyStats(r.Context(), staffID, month, year)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
