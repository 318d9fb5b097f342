package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vallapuneni6-prog/Ansira-Salon/internal/domain"
	"github.com/vallapuneni6-prog/Ansira-Salon/internal/service"
)

type InvoiceHandler struct {
	billing *service.BillingService
}

func NewInvoiceHandler(billing *service.BillingService) *InvoiceHandler {
	return &InvoiceHandler{billing: billing}
}

func (h *InvoiceHandler) RegisterRoutes(r chi.Router) {
	r.Get("/invoices", h.list)
	r.Get("/invoices/{id}", h.get)
	r.Post("/invoices", h.create)
}

type invoiceItemRequest struct {
	ServiceName string  `json:"serviceName"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	StaffID     int64   `json:"staffId"`
}

type createInvoiceRequest struct {
	SalonID        int64                `json:"salonId"`
	CustomerName   string               `json:"customerName"`
	CustomerMobile string               `json:"customerMobile"`
	Items          []invoiceItemRequest `json:"items"`
	Discount       float64              `json:"discount"`
	PaymentMode    string               `json:"paymentMode"`
	Date           string               `json:"date"`
}

func (h *InvoiceHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createInvoiceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.SalonID == 0 || req.CustomerMobile == "" || req.CustomerName == "" || len(req.Items) == 0 {
		writeError(w, http.StatusBadRequest, "salonId, customerMobile, customerName and items are required")
		return
	}
	mode := domain.PaymentMode(req.PaymentMode)
	switch mode {
	case domain.PaymentCash, domain.PaymentCard, domain.PaymentUPI, domain.PaymentWallet:
	default:
		writeError(w, http.StatusBadRequest, "invalid payment mode")
		return
	}
	if req.Discount < 0 {
		writeError(w, http.StatusBadRequest, "discount cannot be negative")
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date")
		return
	}

	items := make([]domain.InvoiceItem, 0, len(req.Items))
	for _, it := range req.Items {
		qty := it.Quantity
		if qty <= 0 {
			qty = 1
		}
		if it.StaffID == 0 {
			writeError(w, http.StatusBadRequest, "every item needs a staffId")
			return
		}
		items = append(items, domain.InvoiceItem{
			ServiceName: it.ServiceName,
			Price:       it.Price,
			Quantity:    qty,
			StaffID:     it.StaffID,
		})
	}

	inv, err := h.billing.CreateInvoice(r.Context(), service.CreateInvoiceInput{
		SalonID:        req.SalonID,
		CustomerName:   req.CustomerName,
		CustomerMobile: req.CustomerMobile,
		Items:          items,
		Discount:       req.Discount,
		PaymentMode:    mode,
		Date:           date,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, inv)
}

func (h *InvoiceHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid invoice id")
		return
	}
	inv, err := h.billing.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inv)
}

func (h *InvoiceHandler) list(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.billing.List(r.Context(), queryInt64(r, "salonId"), queryInt(r, "limit"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, invoices)
}
