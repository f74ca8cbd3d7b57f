package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders o
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return OrderView{}, errs.NewStoreError("select order", err)
	}
	defer rows.Close()

	views, err := scanOrders(rows)
	if err != nil {
		return OrderView{}, errs.NewStoreError("scan order", err)
	}
	if len(views) == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	view := views[0]
	if !canRead(query.Actor(), view) {
		return OrderView{}, query.Actor().Forbid("read order")
	}

	if err = attachItems(ctx, h.db, views); err != nil {
		return OrderView{}, errs.NewStoreError("select order items", err)
	}
	return views[0], nil
}

func canRead(actor kernel.Actor, view OrderView) bool {
	if actor.IsAdmin() || actor.Is(kernel.RoleCustomer, view.CustomerID) {
		return true
	}
	return view.VendorID != nil && actor.Is(kernel.RoleVendor, *view.VendorID)
}
