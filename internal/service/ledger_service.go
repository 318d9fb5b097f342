package service

import (
	"context"
	"time"

	"github.com/vallapuneni6-prog/Ansira-Salon/internal/db"
	"github.com/vallapuneni6-prog/Ansira-Salon/internal/domain"
	"github.com/vallapuneni6-prog/Ansira-Salon/internal/repository"
)

// LedgerService owns the prepaid package ledger: value wallets and sitting
// bundles, their activation and every redemption against them.
type LedgerService struct {
	db        *db.Postgres
	wallets   repository.WalletRepository
	sittings  repository.SittingRepository
	templates repository.TemplateRepository
	customers repository.CustomerRepository
	staff     repository.StaffRepository
}

func NewLedgerService(
	database *db.Postgres,
	wallets repository.WalletRepository,
	sittings repository.SittingRepository,
	templates repository.TemplateRepository,
	customers repository.CustomerRepository,
	staff repository.StaffRepository,
) *LedgerService {
	return &LedgerService{
		db:        database,
		wallets:   wallets,
		sittings:  sittings,
		templates: templates,
		customers: customers,
		staff:     staff,
	}
}

// CreateWalletInput activates a value wallet from a template, optionally
// consuming services on the spot.
type CreateWalletInput struct {
	SalonID        int64
	TemplateID     int64
	CustomerMobile string
	CustomerName   string
	AssignedDate   time.Time
	InitialItems   []domain.WalletEntryItem
}

func (s *LedgerService) CreateValueWallet(ctx context.Context, in CreateWalletInput) (*domain.ValueWalletSubscription, error) {
	tmpl, err := s.templates.GetValue(ctx, in.TemplateID)
	if err != nil {
		return nil, err
	}
	if _, err := s.customers.Upsert(ctx, domain.Customer{Mobile: in.CustomerMobile, Name: in.CustomerName}); err != nil {
		return nil, err
	}
	sub, err := domain.NewValueWallet(*tmpl, in.SalonID, in.CustomerMobile, in.CustomerName, in.AssignedDate, in.InitialItems)
	if err != nil {
		return nil, err
	}
	return s.wallets.Create(ctx, sub)
}

// CreateBundleInput activates a sitting bundle. FirstStaffID redeems the first
// sitting at assignment when non-zero.
type CreateBundleInput struct {
	SalonID        int64
	TemplateID     int64
	CustomerMobile string
	CustomerName   string
	ServiceName    string
	UnitPrice      float64
	PaidAmount     float64
	AssignedDate   time.Time
	FirstStaffID   int64
}

func (s *LedgerService) CreateSittingBundle(ctx context.Context, in CreateBundleInput) (*domain.SittingBundleSubscription, error) {
	tmpl, err := s.templates.GetSitting(ctx, in.TemplateID)
	if err != nil {
		return nil, err
	}
	if _, err := s.customers.Upsert(ctx, domain.Customer{Mobile: in.CustomerMobile, Name: in.CustomerName}); err != nil {
		return nil, err
	}

	var first *domain.SittingEntry
	if in.FirstStaffID != 0 {
		member, err := s.staff.Get(ctx, in.FirstStaffID)
		if err != nil {
			return nil, err
		}
		first = &domain.SittingEntry{StaffID: member.ID, StaffName: member.Name}
	}

	sub, err := domain.NewSittingBundle(*tmpl, in.SalonID, in.CustomerMobile, in.CustomerName,
		in.ServiceName, in.UnitPrice, in.PaidAmount, in.AssignedDate, first)
	if err != nil {
		return nil, err
	}
	return s.sittings.Create(ctx, sub)
}

// RedeemWallet debits billed services from a wallet. The load, the domain
// mutation and the persist run under one row-locked transaction.
func (s *LedgerService) RedeemWallet(ctx context.Context, subscriptionID int64, date time.Time, reference string, items []domain.WalletEntryItem) (*domain.ValueWalletSubscription, error) {
	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	sub, err := s.wallets.GetForUpdateWith(ctx, tx, subscriptionID)
	if err != nil {
		return nil, err
	}
	before := len(sub.History)
	if _, err := sub.Redeem(date, reference, items); err != nil {
		return nil, err
	}
	if err := s.wallets.SaveMutationWith(ctx, tx, sub, sub.History[before:]); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return sub, nil
}

// RedeemSitting consumes one sitting from a bundle for a staff member.
func (s *LedgerService) RedeemSitting(ctx context.Context, subscriptionID int64, date time.Time, staffID int64) (*domain.SittingBundleSubscription, error) {
	member, err := s.staff.Get(ctx, staffID)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	sub, err := s.sittings.GetForUpdateWith(ctx, tx, subscriptionID)
	if err != nil {
		return nil, err
	}
	before := len(sub.History)
	if err := sub.RedeemSitting(date, member.ID, member.Name); err != nil {
		return nil, err
	}
	if err := s.sittings.SaveMutationWith(ctx, tx, sub, sub.History[before:]); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *LedgerService) GetWallet(ctx context.Context, id int64) (*domain.ValueWalletSubscription, error) {
	return s.wallets.Get(ctx, id)
}

func (s *LedgerService) ListWallets(ctx context.Context, salonID int64) ([]domain.ValueWalletSubscription, error) {
	return s.wallets.ListBySalon(ctx, salonID)
}

func (s *LedgerService) GetBundle(ctx context.Context, id int64) (*domain.SittingBundleSubscription, error) {
	return s.sittings.Get(ctx, id)
}

func (s *LedgerService) ListBundles(ctx context.Context, salonID int64) ([]domain.SittingBundleSubscription, error) {
	return s.sittings.ListBySalon(ctx, salonID)
}
