package queries

import (
	"context"

	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	filter := query.Filter()
	var where sqlFilter
	if filter.Status != nil {
		where.add("o.status = ?", filter.Status.String())
	}
	if filter.VendorID != nil {
		where.add("o.vendor_id = ?", filter.VendorID.Bytes())
	}
	if filter.CustomerID != nil {
		where.add("o.customer_id = ?", filter.CustomerID.Bytes())
	}
	if filter.HasIssue != nil {
		where.add("o.has_issue = ?", *filter.HasIssue)
	}
	where.day(filter.Day)

	return listOrders(ctx, h.db, where, "o.created_at DESC, o.id", query.Page())
}

func listOrders(ctx context.Context, db *gorm.DB, where sqlFilter, orderBy string, page Page) ([]OrderView, error) {
	args := append(where.args, page.Limit, page.Offset)
	rows, err := db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders o
		`+where.where()+`
		ORDER BY `+orderBy+`
		LIMIT ? OFFSET ?
	`, args...).Rows()
	if err != nil {
		return nil, errs.NewStoreError("select orders", err)
	}
	defer rows.Close()

	views, err := scanOrders(rows)
	if err != nil {
		return nil, errs.NewStoreError("scan orders", err)
	}
	if err = attachItems(ctx, db, views); err != nil {
		return nil, errs.NewStoreError("select order items", err)
	}
	return views, nil
}
