package queries

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrdersByDayQueryHandler struct {
	db *gorm.DB
}

func NewOrdersByDayQueryHandler(db *gorm.DB) OrdersByDayQueryHandler {
	return OrdersByDayQueryHandler{db: db}
}

func (h OrdersByDayQueryHandler) Handle(ctx context.Context, query OrdersByDayQuery) ([]DayTotal, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var where sqlFilter
	where.add("o.created_at >= ? AND o.created_at < ?", query.from, query.to.AddDate(0, 0, 1))
	if query.vendorID != nil {
		where.add("o.vendor_id = ?", query.vendorID.Bytes())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			date_trunc('day', o.created_at AT TIME ZONE 'UTC') AS day,
			COUNT(*),
			COALESCE(SUM(o.total_amount), 0)
		FROM orders o
		`+where.where()+`
		GROUP BY 1
		ORDER BY 1
	`, where.args...).Rows()
	if err != nil {
		return nil, errs.NewStoreError("select orders by day", err)
	}
	defer rows.Close()

	totals := make([]DayTotal, 0)
	for rows.Next() {
		var day time.Time
		var count int64
		var sum decimal.Decimal
		if err = rows.Scan(&day, &count, &sum); err != nil {
			return nil, errs.NewStoreError("scan orders by day", err)
		}
		amount, err := kernel.NewMoney(sum)
		if err != nil {
			return nil, err
		}
		y, m, d := day.Date()
		totals = append(totals, DayTotal{
			Day:    time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
			Count:  count,
			Amount: amount,
		})
	}
	if err = rows.Err(); err != nil {
		return nil, errs.NewStoreError("scan orders by day", err)
	}
	return totals, nil
}
