package db

import (
	"context"
	"fmt"
)

// Migrate creates the schema when missing. Every statement is idempotent so
// the migrator can run on every startup.
func (p *Postgres) Migrate(ctx context.Context) error {
	for i, stmt := range schema {
		if _, err := p.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		username TEXT NOT NULL UNIQUE,
		role TEXT NOT NULL,
		password_hash TEXT,
		salon_ids BIGINT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS salons (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		address TEXT NOT NULL DEFAULT '',
		contact TEXT NOT NULL DEFAULT '',
		gst_number TEXT NOT NULL DEFAULT '',
		manager_name TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		mobile TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS catalog_services (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		base_price DOUBLE PRECISION NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS staff (
		id BIGSERIAL PRIMARY KEY,
		salon_id BIGINT NOT NULL REFERENCES salons(id),
		name TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL,
		base_salary DOUBLE PRECISION NOT NULL DEFAULT 0,
		joining_date DATE NOT NULL,
		exit_date DATE,
		status TEXT NOT NULL DEFAULT 'Active',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS attendance (
		id BIGSERIAL PRIMARY KEY,
		staff_id BIGINT NOT NULL REFERENCES staff(id),
		mark_date DATE NOT NULL,
		status TEXT NOT NULL,
		check_in TIMESTAMPTZ,
		check_out TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (staff_id, mark_date)
	)`,
	`CREATE TABLE IF NOT EXISTS package_templates (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		paid_amount DOUBLE PRECISION NOT NULL,
		offered_value DOUBLE PRECISION NOT NULL,
		salon_ids BIGINT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS sitting_templates (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		paid_sittings INT NOT NULL,
		comp_sittings INT NOT NULL DEFAULT 0,
		total_sittings INT NOT NULL,
		salon_ids BIGINT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS wallet_subscriptions (
		id BIGSERIAL PRIMARY KEY,
		salon_id BIGINT NOT NULL REFERENCES salons(id),
		customer_mobile TEXT NOT NULL,
		customer_name TEXT NOT NULL,
		template_id BIGINT NOT NULL,
		template_name TEXT NOT NULL,
		initial_value DOUBLE PRECISION NOT NULL,
		current_balance DOUBLE PRECISION NOT NULL,
		paid_amount DOUBLE PRECISION NOT NULL,
		assigned_date DATE NOT NULL,
		expiry_date DATE NOT NULL,
		status TEXT NOT NULL DEFAULT 'Active',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS wallet_history (
		id BIGSERIAL PRIMARY KEY,
		subscription_id BIGINT NOT NULL REFERENCES wallet_subscriptions(id),
		seq INT NOT NULL,
		entry_date DATE NOT NULL,
		amount DOUBLE PRECISION NOT NULL,
		description TEXT NOT NULL,
		balance_after DOUBLE PRECISION NOT NULL,
		items JSONB,
		UNIQUE (subscription_id, seq)
	)`,
	`CREATE TABLE IF NOT EXISTS sitting_subscriptions (
		id BIGSERIAL PRIMARY KEY,
		salon_id BIGINT NOT NULL REFERENCES salons(id),
		customer_mobile TEXT NOT NULL,
		customer_name TEXT NOT NULL,
		template_id BIGINT NOT NULL,
		template_name TEXT NOT NULL,
		service_name TEXT NOT NULL,
		unit_price DOUBLE PRECISION NOT NULL,
		total_sittings INT NOT NULL,
		sittings_used INT NOT NULL DEFAULT 0,
		remaining_sittings INT NOT NULL,
		paid_amount DOUBLE PRECISION NOT NULL,
		assigned_date DATE NOT NULL,
		expiry_date DATE NOT NULL,
		status TEXT NOT NULL DEFAULT 'Active',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS sitting_history (
		id BIGSERIAL PRIMARY KEY,
		subscription_id BIGINT NOT NULL REFERENCES sitting_subscriptions(id),
		seq INT NOT NULL,
		entry_date DATE NOT NULL,
		staff_id BIGINT NOT NULL DEFAULT 0,
		staff_name TEXT NOT NULL DEFAULT '',
		entry_type TEXT NOT NULL,
		UNIQUE (subscription_id, seq)
	)`,
	`CREATE TABLE IF NOT EXISTS invoices (
		id BIGSERIAL PRIMARY KEY,
		code TEXT NOT NULL UNIQUE,
		salon_id BIGINT NOT NULL REFERENCES salons(id),
		customer_name TEXT NOT NULL,
		customer_mobile TEXT NOT NULL,
		subtotal DOUBLE PRECISION NOT NULL,
		discount DOUBLE PRECISION NOT NULL DEFAULT 0,
		gst DOUBLE PRECISION NOT NULL DEFAULT 0,
		total DOUBLE PRECISION NOT NULL,
		payment_mode TEXT NOT NULL,
		invoice_date TIMESTAMPTZ NOT NULL,
		package_subscription_id BIGINT,
		package_name TEXT,
		package_paid_amount DOUBLE PRECISION,
		package_previous_balance DOUBLE PRECISION,
		package_remaining_balance DOUBLE PRECISION,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS invoice_items (
		id BIGSERIAL PRIMARY KEY,
		invoice_id BIGINT NOT NULL REFERENCES invoices(id),
		service_name TEXT NOT NULL,
		price DOUBLE PRECISION NOT NULL,
		quantity INT NOT NULL DEFAULT 1,
		staff_id BIGINT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS expenses (
		id BIGSERIAL PRIMARY KEY,
		salon_id BIGINT NOT NULL REFERENCES salons(id),
		entry_date DATE NOT NULL,
		opening_balance DOUBLE PRECISION NOT NULL DEFAULT 0,
		cash_received DOUBLE PRECISION NOT NULL DEFAULT 0,
		category TEXT NOT NULL DEFAULT '',
		expense_amount DOUBLE PRECISION NOT NULL DEFAULT 0,
		cash_deposited DOUBLE PRECISION NOT NULL DEFAULT 0,
		closing_balance DOUBLE PRECISION NOT NULL DEFAULT 0,
		recorded_by TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS profit_loss_records (
		salon_id BIGINT NOT NULL REFERENCES salons(id),
		month INT NOT NULL,
		year INT NOT NULL,
		rent DOUBLE PRECISION NOT NULL DEFAULT 0,
		royalty DOUBLE PRECISION NOT NULL DEFAULT 0,
		gst DOUBLE PRECISION NOT NULL DEFAULT 0,
		power_bill DOUBLE PRECISION NOT NULL DEFAULT 0,
		products_bill DOUBLE PRECISION NOT NULL DEFAULT 0,
		mobile_internet DOUBLE PRECISION NOT NULL DEFAULT 0,
		laundry DOUBLE PRECISION NOT NULL DEFAULT 0,
		marketing DOUBLE PRECISION NOT NULL DEFAULT 0,
		others DOUBLE PRECISION NOT NULL DEFAULT 0,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (salon_id, month, year)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_invoices_salon_date ON invoices (salon_id, invoice_date)`,
	`CREATE INDEX IF NOT EXISTS idx_attendance_staff_date ON attendance (staff_id, mark_date)`,
	`CREATE INDEX IF NOT EXISTS idx_wallet_salon_mobile ON wallet_subscriptions (salon_id, customer_mobile)`,
	`CREATE INDEX IF NOT EXISTS idx_expenses_salon_date ON expenses (salon_id, entry_date)`,
}
