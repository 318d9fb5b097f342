package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vallapuneni6-prog/Ansira-Salon/internal/domain"
	"github.com/vallapuneni6-prog/Ansira-Salon/internal/server/authctx"
	"github.com/vallapuneni6-prog/Ansira-Salon/internal/service"
)

type ExpenseHandler struct {
	expenses *service.ExpenseService
}

func NewExpenseHandler(expenses *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses}
}

func (h *ExpenseHandler) RegisterRoutes(r chi.Router) {
	r.Get("/salons/{salonID}/expenses", h.list)
	r.Post("/salons/{salonID}/expenses", h.record)
}

type expenseRequest struct {
	Date           string  `json:"date"`
	OpeningBalance float64 `json:"openingBalance"`
	CashReceived   float64 `json:"cashReceived"`
	Category       string  `json:"category"`
	ExpenseAmount  float64 `json:"expenseAmount"`
	CashDeposited  float64 `json:"cashDeposited"`
}

func (h *ExpenseHandler) record(w http.ResponseWriter, r *http.Request) {
	salonID, err := idParam(r, "salonID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid salon id")
		return
	}
	var req expenseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ExpenseAmount < 0 || req.CashReceived < 0 || req.CashDeposited < 0 {
		writeError(w, http.StatusBadRequest, "amounts cannot be negative")
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date")
		return
	}

	recordedBy := ""
	if id, ok := authctx.Current(r.Context()); ok {
		recordedBy = id.Name
	}

	expense, err := h.expenses.Record(r.Context(), domain.Expense{
		SalonID:        salonID,
		Date:           date,
		OpeningBalance: req.OpeningBalance,
		CashReceived:   req.CashReceived,
		Category:       req.Category,
		ExpenseAmount:  req.ExpenseAmount,
		CashDeposited:  req.CashDeposited,
		RecordedBy:     recordedBy,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, expense)
}

func (h *ExpenseHandler) list(w http.ResponseWriter, r *http.Request) {
	salonID, err := idParam(r, "salonID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid salon id")
		return
	}
	if r.URL.Query().Get("month") != "" {
		month, year := monthFilter(r)
		items, err := h.expenses.ListMonth(r.Context(), salonID, month, year)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
		return
	}
	items, err := h.expenses.List(r.Context(), salonID, queryInt(r, "limit"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}
