package queries

import (
	"context"

	"gorm.io/gorm"
)

type OrdersWithIssuesQueryHandler struct {
	db *gorm.DB
}

func NewOrdersWithIssuesQueryHandler(db *gorm.DB) OrdersWithIssuesQueryHandler {
	return OrdersWithIssuesQueryHandler{db: db}
}

func (h OrdersWithIssuesQueryHandler) Handle(ctx context.Context, query OrdersWithIssuesQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var where sqlFilter
	where.add("o.has_issue = ?", true)
	return listOrders(ctx, h.db, where, "o.updated_at DESC, o.id", query.Page())
}
