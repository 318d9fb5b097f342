package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/vallapuneni6-prog/Ansira-Salon/internal/domain"
	"github.com/vallapuneni6-prog/Ansira-Salon/internal/repository"
)

// BillingService creates point-of-sale invoices. Wallet-paid invoices settle
// against the customer's active value wallet inside the invoice transaction.
type BillingService struct {
	invoices  repository.InvoiceRepository
	wallets   repository.WalletRepository
	customers repository.CustomerRepository
}

func NewBillingService(invoices repository.InvoiceRepository, wallets repository.WalletRepository, customers repository.CustomerRepository) *BillingService {
	return &BillingService{invoices: invoices, wallets: wallets, customers: customers}
}

type CreateInvoiceInput struct {
	SalonID        int64
	CustomerName   string
	CustomerMobile string
	Items          []domain.InvoiceItem
	Discount       float64
	PaymentMode    domain.PaymentMode
	Date           time.Time
}

// CreateInvoice bills a visit. Totals carry GST on the discounted subtotal.
// When the payment mode is the package wallet, the deduction (subtotal plus
// GST, never discounted) is debited from the customer's oldest active wallet
// and the settlement snapshot is frozen onto the invoice.
func (s *BillingService) CreateInvoice(ctx context.Context, in CreateInvoiceInput) (*domain.Invoice, error) {
	if _, err := s.customers.Upsert(ctx, domain.Customer{Mobile: in.CustomerMobile, Name: in.CustomerName}); err != nil {
		return nil, err
	}

	var subtotal float64
	for _, item := range in.Items {
		subtotal += item.Price * float64(item.Quantity)
	}

	inv := &domain.Invoice{
		SalonID:        in.SalonID,
		CustomerName:   in.CustomerName,
		CustomerMobile: in.CustomerMobile,
		Items:          in.Items,
		Subtotal:       subtotal,
		Discount:       in.Discount,
		PaymentMode:    in.PaymentMode,
		Date:           in.Date,
	}

	var settle func(ctx context.Context, tx pgx.Tx, code string) (*domain.WalletSettlement, error)
	if in.PaymentMode == domain.PaymentWallet {
		inv.Discount = 0
		inv.GST = subtotal * domain.GSTRate
		inv.Total = subtotal + inv.GST
		settle = s.walletSettler(in)
	} else {
		taxable := subtotal - in.Discount
		if taxable < 0 {
			taxable = 0
		}
		inv.GST = taxable * domain.GSTRate
		inv.Total = taxable + inv.GST
	}

	return s.invoices.Create(ctx, inv, settle)
}

func (s *BillingService) walletSettler(in CreateInvoiceInput) func(ctx context.Context, tx pgx.Tx, code string) (*domain.WalletSettlement, error) {
	return func(ctx context.Context, tx pgx.Tx, code string) (*domain.WalletSettlement, error) {
		sub, err := s.wallets.ActiveForCustomerWith(ctx, tx, in.SalonID, in.CustomerMobile)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, domain.ErrNoActiveSubscription
			}
			return nil, err
		}

		items := make([]domain.WalletEntryItem, 0, len(in.Items))
		for _, item := range in.Items {
			staffID := item.StaffID
			items = append(items, domain.WalletEntryItem{
				ServiceName: item.ServiceName,
				Quantity:    item.Quantity,
				Price:       item.Price,
				StaffID:     &staffID,
			})
		}

		previous := sub.CurrentBalance
		before := len(sub.History)
		if _, err := sub.Redeem(in.Date, code, items); err != nil {
			return nil, err
		}
		if err := s.wallets.SaveMutationWith(ctx, tx, sub, sub.History[before:]); err != nil {
			return nil, err
		}
		return settlementFor(sub, previous), nil
	}
}

// settlementFor freezes the audit snapshot for a wallet-paid invoice. The paid
// amount is the package's purchase price, not the invoice's debit.
func settlementFor(sub *domain.ValueWalletSubscription, previousBalance float64) *domain.WalletSettlement {
	return &domain.WalletSettlement{
		SubscriptionID:   sub.ID,
		PackageName:      sub.TemplateName,
		PaidAmount:       sub.PaidAmount,
		PreviousBalance:  previousBalance,
		RemainingBalance: sub.CurrentBalance,
	}
}

func (s *BillingService) Get(ctx context.Context, id int64) (*domain.Invoice, error) {
	return s.invoices.Get(ctx, id)
}

func (s *BillingService) List(ctx context.Context, salonID int64, limit int) ([]domain.Invoice, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.invoices.ListBySalon(ctx, salonID, limit)
}
