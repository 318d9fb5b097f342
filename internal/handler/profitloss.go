package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vallapuneni6-prog/Ansira-Salon/internal/domain"
	"github.com/vallapuneni6-prog/Ansira-Salon/internal/service"
)

type ProfitLossHandler struct {
	profitLoss *service.ProfitLossService
}

func NewProfitLossHandler(profitLoss *service.ProfitLossService) *ProfitLossHandler {
	return &ProfitLossHandler{profitLoss: profitLoss}
}

func (h *ProfitLossHandler) RegisterRoutes(r chi.Router) {
	r.Get("/salons/{salonID}/profit-loss", h.statement)
	r.Get("/salons/{salonID}/profit-loss/export", h.export)
}

func (h *ProfitLossHandler) RegisterAdminRoutes(r chi.Router) {
	r.Put("/salons/{salonID}/profit-loss", h.save)
}

func (h *ProfitLossHandler) statement(w http.ResponseWriter, r *http.Request) {
	salonID, err := idParam(r, "salonID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid salon id")
		return
	}
	month, year := monthFilter(r)
	stmt, err := h.profitLoss.Statement(r.Context(), salonID, month, year)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stmt)
}

type profitLossRequest struct {
	Month          int     `json:"month"`
	Year           int     `json:"year"`
	Rent           float64 `json:"rent"`
	Royalty        float64 `json:"royalty"`
	GST            float64 `json:"gst"`
	PowerBill      float64 `json:"powerBill"`
	ProductsBill   float64 `json:"productsBill"`
	MobileInternet float64 `json:"mobileInternet"`
	Laundry        float64 `json:"laundry"`
	Marketing      float64 `json:"marketing"`
	Others         float64 `json:"others"`
}

func (h *ProfitLossHandler) save(w http.ResponseWriter, r *http.Request) {
	salonID, err := idParam(r, "salonID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid salon id")
		return
	}
	var req profitLossRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Month < 1 || req.Month > 12 || req.Year < 2000 {
		writeError(w, http.StatusBadRequest, "valid month and year are required")
		return
	}
	rec, err := h.profitLoss.SaveRecord(r.Context(), domain.ProfitLossRecord{
		SalonID:        salonID,
		Month:          time.Month(req.Month),
		Year:           req.Year,
		Rent:           req.Rent,
		Royalty:        req.Royalty,
		GST:            req.GST,
		PowerBill:      req.PowerBill,
		ProductsBill:   req.ProductsBill,
		MobileInternet: req.MobileInternet,
		Laundry:        req.Laundry,
		Marketing:      req.Marketing,
		Others:         req.Others,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *ProfitLossHandler) export(w http.ResponseWriter, r *http.Request) {
	salonID, err := idParam(r, "salonID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid salon id")
		return
	}
	month, year := monthFilter(r)
	stmt, err := h.profitLoss.Statement(r.Context(), salonID, month, year)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	name := fmt.Sprintf("profit-loss-%d-%04d-%02d.xlsx", salonID, year, int(month))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	if err := service.WriteStatementXLSX(w, stmt); err != nil {
		writeError(w, http.StatusInternalServerError, "export failed")
	}
}
