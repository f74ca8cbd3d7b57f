package queries

import (
	"database/sql"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/settlement"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const settlementColumns = `s.id, s.vendor_id, s.amount, s.status, s.note, s.paid_at, s.created_at, s.version`

func scanSettlements(rows *sql.Rows) ([]SettlementView, error) {
	views := make([]SettlementView, 0)
	for rows.Next() {
		var (
			id, vendorID uuid.UUID
			amount       decimal.Decimal
			status, note string
			paidAt       *time.Time
			createdAt    time.Time
			version      int64
		)
		if err := rows.Scan(&id, &vendorID, &amount, &status, &note, &paidAt, &createdAt, &version); err != nil {
			return nil, err
		}

		settlementID, idErr := kernel.UUIDFromBytes(id[:])
		vendor, vendorErr := kernel.UUIDFromBytes(vendorID[:])
		money, amountErr := kernel.NewMoney(amount)
		st, statusErr := settlement.ParseStatus(status)
		if err := errors.Join(idErr, vendorErr, amountErr, statusErr); err != nil {
			return nil, err
		}
		if paidAt != nil {
			utc := paidAt.UTC()
			paidAt = &utc
		}

		views = append(views, SettlementView{
			ID:        settlementID,
			VendorID:  vendor,
			Amount:    money,
			Status:    st,
			Note:      note,
			PaidAt:    paidAt,
			CreatedAt: createdAt.UTC(),
			Version:   version,
		})
	}
	return views, rows.Err()
}

// scanStatusTotals reads (status, count, sum) rows and fills in zero totals
// for statuses with no rows, pending first.
func scanStatusTotals(rows *sql.Rows) ([]StatusTotal, error) {
	totals := map[settlement.Status]StatusTotal{
		settlement.Pending: {Status: settlement.Pending, Amount: kernel.ZeroMoney()},
		settlement.Paid:    {Status: settlement.Paid, Amount: kernel.ZeroMoney()},
	}
	for rows.Next() {
		var status string
		var count int64
		var sum decimal.Decimal
		if err := rows.Scan(&status, &count, &sum); err != nil {
			return nil, err
		}
		st, err := settlement.ParseStatus(status)
		if err != nil {
			return nil, err
		}
		amount, err := kernel.NewMoney(sum)
		if err != nil {
			return nil, err
		}
		totals[st] = StatusTotal{Status: st, Count: count, Amount: amount}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return []StatusTotal{totals[settlement.Pending], totals[settlement.Paid]}, nil
}
