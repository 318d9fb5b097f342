package repository

import (
	"context"
	"time"

	"github.com/vallapuneni6-prog/Ansira-Salon/internal/db"
	"github.com/vallapuneni6-prog/Ansira-Salon/internal/domain"
)

// ProfitLossRepository stores only the hand-entered fixed costs keyed by
// (salon, month, year). Everything derived is computed at read time.
type ProfitLossRepository struct {
	DB *db.Postgres
}

const plColumns = `salon_id, month, year, rent, royalty, gst, power_bill, products_bill,
	mobile_internet, laundry, marketing, others, updated_at`

func (r ProfitLossRepository) Get(ctx context.Context, salonID int64, month time.Month, year int) (*domain.ProfitLossRecord, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		SELECT `+plColumns+`
		FROM profit_loss_records
		WHERE salon_id=$1 AND month=$2 AND year=$3
	`, salonID, int(month), year)
	rec, err := scanProfitLoss(row)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return rec, nil
}

// Upsert replaces the record for the key; the latest write wins.
func (r ProfitLossRepository) Upsert(ctx context.Context, rec domain.ProfitLossRecord) (*domain.ProfitLossRecord, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		INSERT INTO profit_loss_records
		(salon_id, month, year, rent, royalty, gst, power_bill, products_bill,
		 mobile_internet, laundry, marketing, others, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12, now())
		ON CONFLICT (salon_id, month, year) DO UPDATE SET
			rent=EXCLUDED.rent,
			royalty=EXCLUDED.royalty,
			gst=EXCLUDED.gst,
			power_bill=EXCLUDED.power_bill,
			products_bill=EXCLUDED.products_bill,
			mobile_internet=EXCLUDED.mobile_internet,
			laundry=EXCLUDED.laundry,
			marketing=EXCLUDED.marketing,
			others=EXCLUDED.others,
			updated_at=now()
		RETURNING `+plColumns+`
	`, rec.SalonID, int(rec.Month), rec.Year, rec.Rent, rec.Royalty, rec.GST, rec.PowerBill, rec.ProductsBill,
		rec.MobileInternet, rec.Laundry, rec.Marketing, rec.Others)
	out, err := scanProfitLoss(row)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func scanProfitLoss(row interface {
	Scan(dest ...any) error
}) (*domain.ProfitLossRecord, error) {
	var (
		rec   domain.ProfitLossRecord
		month int
	)
	if err := row.Scan(&rec.SalonID, &month, &rec.Year, &rec.Rent, &rec.Royalty, &rec.GST, &rec.PowerBill,
		&rec.ProductsBill, &rec.MobileInternet, &rec.Laundry, &rec.Marketing, &rec.Others, &rec.UpdatedAt); err != nil {
		return nil, err
	}
	rec.Month = time.Month(month)
	return &rec, nil
}
