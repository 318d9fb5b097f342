package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/vallapuneni6-prog/Ansira-Salon/internal/db"
	"github.com/vallapuneni6-prog/Ansira-Salon/internal/domain"
)

type InvoiceRepository struct {
	DB *db.Postgres
}

const invoiceColumns = `id, code, salon_id, customer_name, customer_mobile, subtotal, discount, gst, total,
	payment_mode, invoice_date, package_subscription_id, package_name, package_paid_amount,
	package_previous_balance, package_remaining_balance, created_at`

// Create persists an invoice and its items. When settle is non-nil it runs
// inside the same transaction with the issued invoice code; a wallet-settled
// invoice and the wallet debit it represents therefore commit or roll back
// together. The settlement snapshot returned by settle is frozen onto the
// invoice row.
func (r InvoiceRepository) Create(ctx context.Context, inv *domain.Invoice, settle func(ctx context.Context, tx pgx.Tx, code string) (*domain.WalletSettlement, error)) (*domain.Invoice, error) {
	tx, err := r.DB.Pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if inv.Code == "" {
		code, err := nextInvoiceCode(ctx, tx, inv.SalonID)
		if err != nil {
			return nil, err
		}
		inv.Code = code
	}

	if settle != nil {
		snapshot, err := settle(ctx, tx, inv.Code)
		if err != nil {
			return nil, err
		}
		inv.Package = snapshot
	}

	var (
		pkgID, pkgName, pkgPaid, pkgPrev, pkgRem any
	)
	if inv.Package != nil {
		pkgID = inv.Package.SubscriptionID
		pkgName = inv.Package.PackageName
		pkgPaid = inv.Package.PaidAmount
		pkgPrev = inv.Package.PreviousBalance
		pkgRem = inv.Package.RemainingBalance
	}

	row := tx.QueryRow(ctx, `
		INSERT INTO invoices
		(code, salon_id, customer_name, customer_mobile, subtotal, discount, gst, total,
		 payment_mode, invoice_date, package_subscription_id, package_name, package_paid_amount,
		 package_previous_balance, package_remaining_balance, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15, now())
		RETURNING id, created_at
	`, inv.Code, inv.SalonID, inv.CustomerName, inv.CustomerMobile, inv.Subtotal, inv.Discount, inv.GST, inv.Total,
		string(inv.PaymentMode), inv.Date, pkgID, pkgName, pkgPaid, pkgPrev, pkgRem)
	if err := row.Scan(&inv.ID, &inv.CreatedAt); err != nil {
		return nil, err
	}

	for i := range inv.Items {
		item := &inv.Items[i]
		if err := tx.QueryRow(ctx, `
			INSERT INTO invoice_items (invoice_id, service_name, price, quantity, staff_id)
			VALUES ($1,$2,$3,$4,$5)
			RETURNING id
		`, inv.ID, item.ServiceName, item.Price, item.Quantity, item.StaffID).Scan(&item.ID); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return inv, nil
}

// invoiceCodeLockClass namespaces the advisory locks used for code issuance.
const invoiceCodeLockClass = 1

// nextInvoiceCode issues INV-<salon>-<n> from the per-salon invoice count
// inside the creating transaction. A transaction-scoped advisory lock
// serializes issuance per salon; without it two concurrent creates would count
// the same n and one would trip the unique constraint on code.
func nextInvoiceCode(ctx context.Context, tx pgx.Tx, salonID int64) (string, error) {
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1, $2::int)`, invoiceCodeLockClass, salonID); err != nil {
		return "", err
	}
	var n int64
	if err := tx.QueryRow(ctx, `SELECT count(*) FROM invoices WHERE salon_id=$1`, salonID).Scan(&n); err != nil {
		return "", err
	}
	return invoiceCode(salonID, n+1), nil
}

func invoiceCode(salonID, n int64) string {
	return fmt.Sprintf("INV-%d-%05d", salonID, n)
}

func (r InvoiceRepository) Get(ctx context.Context, id int64) (*domain.Invoice, error) {
	row := r.DB.Pool.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id=$1`, id)
	inv, err := scanInvoice(row)
	if err != nil {
		return nil, mapNoRows(err)
	}
	if err := r.loadItems(ctx, []*domain.Invoice{inv}); err != nil {
		return nil, err
	}
	return inv, nil
}

func (r InvoiceRepository) ListBySalon(ctx context.Context, salonID int64, limit int) ([]domain.Invoice, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT `+invoiceColumns+`
		FROM invoices
		WHERE $1 = 0 OR salon_id=$1
		ORDER BY invoice_date DESC, id DESC
		LIMIT $2
	`, salonID, limit)
	if err != nil {
		return nil, err
	}
	return r.collect(ctx, rows)
}

// ListMonth returns a salon's invoices dated within the given month.
func (r InvoiceRepository) ListMonth(ctx context.Context, salonID int64, month time.Month, year int) ([]domain.Invoice, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT `+invoiceColumns+`
		FROM invoices
		WHERE salon_id=$1 AND invoice_date >= $2 AND invoice_date < $2 + interval '1 month'
		ORDER BY invoice_date ASC, id ASC
	`, salonID, start)
	if err != nil {
		return nil, err
	}
	return r.collect(ctx, rows)
}

func (r InvoiceRepository) collect(ctx context.Context, rows pgx.Rows) ([]domain.Invoice, error) {
	defer rows.Close()
	var (
		invoices []domain.Invoice
		refs     []*domain.Invoice
	)
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, *inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range invoices {
		refs = append(refs, &invoices[i])
	}
	if err := r.loadItems(ctx, refs); err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r InvoiceRepository) loadItems(ctx context.Context, invoices []*domain.Invoice) error {
	if len(invoices) == 0 {
		return nil
	}
	byID := make(map[int64]*domain.Invoice, len(invoices))
	ids := make([]int64, 0, len(invoices))
	for _, inv := range invoices {
		byID[inv.ID] = inv
		ids = append(ids, inv.ID)
	}
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT invoice_id, id, service_name, price, quantity, staff_id
		FROM invoice_items
		WHERE invoice_id = ANY($1)
		ORDER BY id
	`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var (
			invID int64
			item  domain.InvoiceItem
		)
		if err := rows.Scan(&invID, &item.ID, &item.ServiceName, &item.Price, &item.Quantity, &item.StaffID); err != nil {
			return err
		}
		if inv, ok := byID[invID]; ok {
			inv.Items = append(inv.Items, item)
		}
	}
	return rows.Err()
}

func scanInvoice(row interface {
	Scan(dest ...any) error
}) (*domain.Invoice, error) {
	var (
		inv     domain.Invoice
		mode    string
		pkgID   *int64
		pkgName *string
		pkgPaid *float64
		pkgPrev *float64
		pkgRem  *float64
	)
	if err := row.Scan(
		&inv.ID, &inv.Code, &inv.SalonID, &inv.CustomerName, &inv.CustomerMobile,
		&inv.Subtotal, &inv.Discount, &inv.GST, &inv.Total, &mode, &inv.Date,
		&pkgID, &pkgName, &pkgPaid, &pkgPrev, &pkgRem, &inv.CreatedAt,
	); err != nil {
		return nil, err
	}
	inv.PaymentMode = domain.PaymentMode(mode)
	if pkgID != nil {
		inv.Package = &domain.WalletSettlement{
			SubscriptionID:   *pkgID,
			PackageName:      deref(pkgName),
			PaidAmount:       derefFloat(pkgPaid),
			PreviousBalance:  derefFloat(pkgPrev),
			RemainingBalance: derefFloat(pkgRem),
		}
	}
	return &inv, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefFloat(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
