package queries

import (
	"context"

	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetVendorEarningsQueryHandler struct {
	db *gorm.DB
}

func NewGetVendorEarningsQueryHandler(db *gorm.DB) GetVendorEarningsQueryHandler {
	return GetVendorEarningsQueryHandler{db: db}
}

// Handle runs both reads in one read-only transaction so the list and the
// summary describe the same snapshot. The period and status filters narrow
// the list only; the summary always covers every settlement of the vendor.
func (h GetVendorEarningsQueryHandler) Handle(ctx context.Context, query GetVendorEarningsQuery) (GetVendorEarningsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetVendorEarningsQueryResponse{}, err
	}

	var vendorOnly sqlFilter
	vendorOnly.add("s.vendor_id = ?", query.VendorID().Bytes())

	var where sqlFilter
	where.add("s.vendor_id = ?", query.VendorID().Bytes())
	if from := query.Period().From; from != nil {
		where.add("s.created_at >= ?", from.UTC())
	}
	if to := query.Period().To; to != nil {
		where.add("s.created_at <= ?", to.UTC())
	}
	if status := query.Status(); status != nil {
		where.add("s.status = ?", status.String())
	}

	var resp GetVendorEarningsQueryResponse
	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SET TRANSACTION ISOLATION LEVEL REPEATABLE READ READ ONLY").Error; err != nil {
			return err
		}

		rows, err := tx.Raw(`
			SELECT `+settlementColumns+`
			FROM settlements s
			`+where.where()+`
			ORDER BY s.created_at DESC, s.id
		`, where.args...).Rows()
		if err != nil {
			return err
		}
		defer rows.Close()
		if resp.Settlements, err = scanSettlements(rows); err != nil {
			return err
		}

		summary, err := tx.Raw(`
			SELECT s.status, COUNT(*), COALESCE(SUM(s.amount), 0)
			FROM settlements s
			`+vendorOnly.where()+`
			GROUP BY s.status
		`, vendorOnly.args...).Rows()
		if err != nil {
			return err
		}
		defer summary.Close()
		resp.Summary, err = scanStatusTotals(summary)
		return err
	})
	if err != nil {
		return GetVendorEarningsQueryResponse{}, errs.NewStoreError("select vendor earnings", err)
	}
	return resp, nil
}
