package service

import (
	"context"
	"time"

	"github.com/vallapuneni6-prog/Ansira-Salon/internal/domain"
)

// WalletRevenueFactor is the share of a wallet-funded service recognized as
// attributable revenue. Prepaid packages are sold at a discount to face value,
// so redeemed services count at 60 percent of list price.
const WalletRevenueFactor = 0.6

type invoiceSource interface {
	ListMonth(ctx context.Context, salonID int64, month time.Month, year int) ([]domain.Invoice, error)
}

type walletSource interface {
	ListBySalon(ctx context.Context, salonID int64) ([]domain.ValueWalletSubscription, error)
}

type sittingSource interface {
	ListBySalon(ctx context.Context, salonID int64) ([]domain.SittingBundleSubscription, error)
}

type staffDirectory interface {
	ListBySalon(ctx context.Context, salonID int64, activeOnly bool) ([]domain.Staff, error)
}

// CommissionService computes per-stylist attributed sales, the input to
// incentive pay.
type CommissionService struct {
	invoices invoiceSource
	wallets  walletSource
	sittings sittingSource
	staff    staffDirectory
}

func NewCommissionService(invoices invoiceSource, wallets walletSource, sittings sittingSource, staff staffDirectory) *CommissionService {
	return &CommissionService{invoices: invoices, wallets: wallets, sittings: sittings, staff: staff}
}

// StaffSales pairs a staff member with their attributed sales and target for
// one month.
type StaffSales struct {
	Staff           domain.Staff `json:"staff"`
	AttributedSales float64      `json:"attributedSales"`
	SalesTarget     float64      `json:"salesTarget"`
}

// Attribution returns attributed sales for every active staff member of a
// salon for one month.
func (s *CommissionService) Attribution(ctx context.Context, salonID int64, month time.Month, year int) ([]StaffSales, error) {
	members, err := s.staff.ListBySalon(ctx, salonID, true)
	if err != nil {
		return nil, err
	}
	invoices, err := s.invoices.ListMonth(ctx, salonID, month, year)
	if err != nil {
		return nil, err
	}
	wallets, err := s.wallets.ListBySalon(ctx, salonID)
	if err != nil {
		return nil, err
	}
	sittings, err := s.sittings.ListBySalon(ctx, salonID)
	if err != nil {
		return nil, err
	}

	attributed := AttributeSales(invoices, wallets, sittings, month, year)

	out := make([]StaffSales, 0, len(members))
	for _, m := range members {
		out = append(out, StaffSales{
			Staff:           m,
			AttributedSales: attributed[m.ID],
			SalesTarget:     m.SalesTarget(),
		})
	}
	return out, nil
}

// AttributeSales folds one month of billing activity into per-staff attributed
// sales.
//
// Direct invoices attribute each line at the invoice's effective realization:
// the discount spreads proportionally over all lines. Wallet-paid invoices and
// every other wallet or bundle redemption realize at WalletRevenueFactor of
// list price. Wallet usage entries are skipped because the settling invoice
// already carries them; only the consumption itemized at assignment has no
// invoice and is counted from the history itself.
func AttributeSales(
	invoices []domain.Invoice,
	wallets []domain.ValueWalletSubscription,
	sittings []domain.SittingBundleSubscription,
	month time.Month,
	year int,
) map[int64]float64 {
	attributed := make(map[int64]float64)

	for _, inv := range invoices {
		if !inMonth(inv.Date, month, year) {
			continue
		}
		ratio := WalletRevenueFactor
		if inv.PaymentMode != domain.PaymentWallet {
			ratio = 1
			if inv.Subtotal > 0 {
				ratio = (inv.Subtotal - inv.Discount) / inv.Subtotal
			}
		}
		for _, item := range inv.Items {
			attributed[item.StaffID] += item.Price * float64(item.Quantity) * ratio
		}
	}

	for _, sub := range wallets {
		for _, entry := range sub.History {
			if !inMonth(entry.Date, month, year) || entry.IsUsage() {
				continue
			}
			for _, item := range entry.Items {
				if item.StaffID == nil {
					continue
				}
				attributed[*item.StaffID] += item.Price * float64(item.Quantity) * WalletRevenueFactor
			}
		}
	}

	for _, sub := range sittings {
		for _, entry := range sub.History {
			if entry.Type != domain.SittingRedemption || !inMonth(entry.Date, month, year) {
				continue
			}
			attributed[entry.StaffID] += sub.UnitPrice * WalletRevenueFactor
		}
	}

	return attributed
}

func inMonth(t time.Time, month time.Month, year int) bool {
	return t.Month() == month && t.Year() == year
}
