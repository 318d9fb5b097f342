package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vallapuneni6-prog/Ansira-Salon/internal/domain"
	"github.com/vallapuneni6-prog/Ansira-Salon/internal/service"
)

// SubscriptionHandler exposes the prepaid ledger: value wallets and sitting
// bundles.
type SubscriptionHandler struct {
	ledger *service.LedgerService
}

func NewSubscriptionHandler(ledger *service.LedgerService) *SubscriptionHandler {
	return &SubscriptionHandler{ledger: ledger}
}

func (h *SubscriptionHandler) RegisterRoutes(r chi.Router) {
	r.Get("/wallets", h.listWallets)
	r.Get("/wallets/{id}", h.getWallet)
	r.Post("/wallets", h.createWallet)
	r.Post("/wallets/{id}/redeem", h.redeemWallet)

	r.Get("/bundles", h.listBundles)
	r.Get("/bundles/{id}", h.getBundle)
	r.Post("/bundles", h.createBundle)
	r.Post("/bundles/{id}/redeem", h.redeemBundle)
}

type walletItemRequest struct {
	ServiceName string  `json:"serviceName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	StaffID     *int64  `json:"staffId"`
}

func toEntryItems(items []walletItemRequest) []domain.WalletEntryItem {
	out := make([]domain.WalletEntryItem, 0, len(items))
	for _, it := range items {
		qty := it.Quantity
		if qty <= 0 {
			qty = 1
		}
		out = append(out, domain.WalletEntryItem{
			ServiceName: it.ServiceName,
			Quantity:    qty,
			Price:       it.Price,
			StaffID:     it.StaffID,
		})
	}
	return out
}

type createWalletRequest struct {
	SalonID        int64               `json:"salonId"`
	TemplateID     int64               `json:"templateId"`
	CustomerMobile string              `json:"customerMobile"`
	CustomerName   string              `json:"customerName"`
	AssignedDate   string              `json:"assignedDate"`
	InitialItems   []walletItemRequest `json:"initialItems"`
}

func (h *SubscriptionHandler) createWallet(w http.ResponseWriter, r *http.Request) {
	var req createWalletRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.SalonID == 0 || req.TemplateID == 0 || req.CustomerMobile == "" || req.CustomerName == "" {
		writeError(w, http.StatusBadRequest, "salonId, templateId, customerMobile and customerName are required")
		return
	}
	assigned, err := parseDate(req.AssignedDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid assignedDate")
		return
	}
	sub, err := h.ledger.CreateValueWallet(r.Context(), service.CreateWalletInput{
		SalonID:        req.SalonID,
		TemplateID:     req.TemplateID,
		CustomerMobile: req.CustomerMobile,
		CustomerName:   req.CustomerName,
		AssignedDate:   assigned,
		InitialItems:   toEntryItems(req.InitialItems),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sub)
}

type redeemWalletRequest struct {
	Date      string              `json:"date"`
	Reference string              `json:"reference"`
	Items     []walletItemRequest `json:"items"`
}

func (h *SubscriptionHandler) redeemWallet(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid subscription id")
		return
	}
	var req redeemWalletRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Items) == 0 {
		writeError(w, http.StatusBadRequest, "items are required")
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date")
		return
	}
	sub, err := h.ledger.RedeemWallet(r.Context(), id, date, req.Reference, toEntryItems(req.Items))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sub)
}

func (h *SubscriptionHandler) getWallet(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid subscription id")
		return
	}
	sub, err := h.ledger.GetWallet(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sub)
}

func (h *SubscriptionHandler) listWallets(w http.ResponseWriter, r *http.Request) {
	subs, err := h.ledger.ListWallets(r.Context(), queryInt64(r, "salonId"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, subs)
}

type createBundleRequest struct {
	SalonID        int64   `json:"salonId"`
	TemplateID     int64   `json:"templateId"`
	CustomerMobile string  `json:"customerMobile"`
	CustomerName   string  `json:"customerName"`
	ServiceName    string  `json:"serviceName"`
	UnitPrice      float64 `json:"unitPrice"`
	PaidAmount     float64 `json:"paidAmount"`
	AssignedDate   string  `json:"assignedDate"`
	FirstStaffID   int64   `json:"firstStaffId"`
}

func (h *SubscriptionHandler) createBundle(w http.ResponseWriter, r *http.Request) {
	var req createBundleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.SalonID == 0 || req.TemplateID == 0 || req.CustomerMobile == "" || req.CustomerName == "" || req.ServiceName == "" {
		writeError(w, http.StatusBadRequest, "salonId, templateId, customerMobile, customerName and serviceName are required")
		return
	}
	assigned, err := parseDate(req.AssignedDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid assignedDate")
		return
	}
	sub, err := h.ledger.CreateSittingBundle(r.Context(), service.CreateBundleInput{
		SalonID:        req.SalonID,
		TemplateID:     req.TemplateID,
		CustomerMobile: req.CustomerMobile,
		CustomerName:   req.CustomerName,
		ServiceName:    req.ServiceName,
		UnitPrice:      req.UnitPrice,
		PaidAmount:     req.PaidAmount,
		AssignedDate:   assigned,
		FirstStaffID:   req.FirstStaffID,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sub)
}

type redeemBundleRequest struct {
	Date    string `json:"date"`
	StaffID int64  `json:"staffId"`
}

func (h *SubscriptionHandler) redeemBundle(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid subscription id")
		return
	}
	var req redeemBundleRequest
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
	sub, err := h.ledger.RedeemSitting(r.Context(), id, date, req.StaffID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sub)
}

func (h *SubscriptionHandler) getBundle(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid subscription id")
		return
	}
	sub, err := h.ledger.GetBundle(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sub)
}

func (h *SubscriptionHandler) listBundles(w http.ResponseWriter, r *http.Request) {
	subs, err := h.ledger.ListBundles(r.Context(), queryInt64(r, "salonId"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, subs)
}
