package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListVendorOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListVendorOrdersQueryHandler(db *gorm.DB) ListVendorOrdersQueryHandler {
	return ListVendorOrdersQueryHandler{db: db}
}

func (h ListVendorOrdersQueryHandler) Handle(ctx context.Context, query ListVendorOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var where sqlFilter
	where.add("o.vendor_id = ?", query.VendorID().Bytes())
	if status := query.Status(); status != nil {
		where.add("o.status = ?", status.String())
	}
	where.day(query.Day())

	return listOrders(ctx, h.db, where, "o.created_at DESC, o.id", query.Page())
}
