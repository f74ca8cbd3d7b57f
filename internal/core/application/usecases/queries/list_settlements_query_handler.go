package queries

import (
	"context"

	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

type ListSettlementsQueryHandler struct {
	db *gorm.DB
}

func NewListSettlementsQueryHandler(db *gorm.DB) ListSettlementsQueryHandler {
	return ListSettlementsQueryHandler{db: db}
}

func (h ListSettlementsQueryHandler) Handle(ctx context.Context, query ListSettlementsQuery) ([]SettlementView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var where sqlFilter
	if query.status != nil {
		where.add("s.status = ?", query.status.String())
	}
	if query.vendorID != nil {
		where.add("s.vendor_id = ?", query.vendorID.Bytes())
	}
	args := append(where.args, query.page.Limit, query.page.Offset)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+settlementColumns+`
		FROM settlements s
		`+where.where()+`
		ORDER BY s.created_at DESC, s.id
		LIMIT ? OFFSET ?
	`, args...).Rows()
	if err != nil {
		return nil, errs.NewStoreError("select settlements", err)
	}
	defer rows.Close()

	views, err := scanSettlements(rows)
	if err != nil {
		return nil, errs.NewStoreError("scan settlements", err)
	}
	return views, nil
}
