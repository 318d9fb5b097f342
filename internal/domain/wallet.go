package domain

import (
	"fmt"
	"strings"
	"time"
)

// GSTRate is applied on top of the service subtotal for every wallet deduction.
const GSTRate = 0.05

const usagePrefix = "Wallet Usage"

// WalletEntryItem is one itemized service inside a wallet history entry.
type WalletEntryItem struct {
	ServiceName string  `json:"serviceName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	StaffID     *int64  `json:"staffId,omitempty"`
}

// WalletEntry is one append-only ledger line. Amount is signed: positive for
// the activation credit, negative for deductions.
type WalletEntry struct {
	Seq          int               `json:"seq"`
	Date         time.Time         `json:"date"`
	Amount       float64           `json:"amount"`
	Description  string            `json:"description"`
	BalanceAfter float64           `json:"balanceAfter"`
	Items        []WalletEntryItem `json:"items,omitempty"`
}

// IsUsage reports whether the entry records a post-activation redemption, as
// opposed to the initial consumption itemized at assignment time.
func (e WalletEntry) IsUsage() bool {
	return strings.HasPrefix(e.Description, usagePrefix)
}

// ValueWalletSubscription is a customer-held prepaid monetary balance. It is
// an aggregate root: every balance mutation goes through a method that keeps
// the history and the balance consistent, and the whole aggregate is persisted
// atomically.
type ValueWalletSubscription struct {
	ID             int64         `json:"id"`
	SalonID        int64         `json:"salonId"`
	CustomerMobile string        `json:"customerMobile"`
	CustomerName   string        `json:"customerName"`
	TemplateID     int64         `json:"templateId"`
	TemplateName   string        `json:"templateName"`
	InitialValue   float64       `json:"initialValue"`
	CurrentBalance float64       `json:"currentBalance"`
	PaidAmount     float64       `json:"paidAmount"`
	AssignedDate   time.Time     `json:"assignedDate"`
	ExpiryDate     time.Time     `json:"expiryDate"`
	Status         WalletStatus  `json:"status"`
	History        []WalletEntry `json:"history"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// WalletDeduction prices a set of service items the way the POS bills them:
// subtotal plus GST.
func WalletDeduction(items []WalletEntryItem) float64 {
	var subtotal float64
	for _, it := range items {
		subtotal += it.Price * float64(it.Quantity)
	}
	return subtotal * (1 + GSTRate)
}

// NewValueWallet activates a wallet from a template, optionally consuming an
// initial set of services on the spot. The activation entry always records the
// full offered value; a consumption entry follows when items are supplied.
func NewValueWallet(t PackageTemplate, salonID int64, mobile, name string, assigned time.Time, initialItems []WalletEntryItem) (*ValueWalletSubscription, error) {
	deduction := WalletDeduction(initialItems)
	if deduction > t.OfferedValue {
		return nil, ErrInsufficientWalletValue
	}

	sub := &ValueWalletSubscription{
		SalonID:        salonID,
		CustomerMobile: mobile,
		CustomerName:   name,
		TemplateID:     t.ID,
		TemplateName:   t.Name,
		InitialValue:   t.OfferedValue,
		CurrentBalance: t.OfferedValue,
		PaidAmount:     t.PaidAmount,
		AssignedDate:   assigned,
		ExpiryDate:     assigned.AddDate(1, 0, 0),
		Status:         WalletActive,
	}
	sub.append(assigned, t.OfferedValue, fmt.Sprintf("Wallet Activation: %s", t.Name), nil)

	if deduction > 0 {
		if err := sub.debit(assigned, deduction, "Initial Service Consumption", initialItems); err != nil {
			return nil, err
		}
	}
	return sub, nil
}

// Redeem deducts a set of billed services (subtotal + GST) from the wallet.
// The subscription is untouched when the balance cannot cover the deduction.
func (s *ValueWalletSubscription) Redeem(date time.Time, reference string, items []WalletEntryItem) (float64, error) {
	deduction := WalletDeduction(items)
	desc := usagePrefix
	if reference != "" {
		desc = fmt.Sprintf("%s: %s", usagePrefix, reference)
	}
	if err := s.debit(date, deduction, desc, items); err != nil {
		return 0, err
	}
	return deduction, nil
}

func (s *ValueWalletSubscription) debit(date time.Time, amount float64, description string, items []WalletEntryItem) error {
	if amount > s.CurrentBalance {
		return ErrInsufficientWalletBalance
	}
	s.CurrentBalance -= amount
	s.append(date, -amount, description, items)
	if s.CurrentBalance <= 0 {
		s.Status = WalletFullyConsumed
	}
	return nil
}

func (s *ValueWalletSubscription) append(date time.Time, amount float64, description string, items []WalletEntryItem) {
	s.History = append(s.History, WalletEntry{
		Seq:          len(s.History) + 1,
		Date:         date,
		Amount:       amount,
		Description:  description,
		BalanceAfter: s.CurrentBalance,
		Items:        items,
	})
}

// ReplayBalance folds the signed history amounts from zero. It must always
// equal CurrentBalance; callers use it as a conservation check.
func (s *ValueWalletSubscription) ReplayBalance() float64 {
	var bal float64
	for _, e := range s.History {
		bal += e.Amount
	}
	return bal
}
