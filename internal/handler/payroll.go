package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vallapuneni6-prog/Ansira-Salon/internal/service"
)

type PayrollHandler struct {
	payroll    *service.PayrollService
	commission *service.CommissionService
}

func NewPayrollHandler(payroll *service.PayrollService, commission *service.CommissionService) *PayrollHandler {
	return &PayrollHandler{payroll: payroll, commission: commission}
}

func (h *PayrollHandler) RegisterRoutes(r chi.Router) {
	r.Get("/salons/{salonID}/payroll", h.report)
	r.Get("/salons/{salonID}/payroll/export", h.export)
	r.Get("/salons/{salonID}/commission", h.commissionReport)
}

func (h *PayrollHandler) report(w http.ResponseWriter, r *http.Request) {
	salonID, err := idParam(r, "salonID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid salon id")
		return
	}
	month, year := monthFilter(r)
	report, err := h.payroll.Report(r.Context(), salonID, month, year)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *PayrollHandler) export(w http.ResponseWriter, r *http.Request) {
	salonID, err := idParam(r, "salonID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid salon id")
		return
	}
	month, year := monthFilter(r)
	report, err := h.payroll.Report(r.Context(), salonID, month, year)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	name := fmt.Sprintf("payroll-%d-%04d-%02d", salonID, year, int(month))
	switch r.URL.Query().Get("format") {
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.csv"`, name))
		if err := service.WritePayrollCSV(w, report); err != nil {
			writeError(w, http.StatusInternalServerError, "export failed")
		}
	default:
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.xlsx"`, name))
		if err := service.WritePayrollXLSX(w, report); err != nil {
			writeError(w, http.StatusInternalServerError, "export failed")
		}
	}
}

func (h *PayrollHandler) commissionReport(w http.ResponseWriter, r *http.Request) {
	salonID, err := idParam(r, "salonID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid salon id")
		return
	}
	month, year := monthFilter(r)
	sales, err := h.commission.Attribution(r.Context(), salonID, month, year)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sales)
}
