package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const orderColumns = `
	o.id, o.customer_id, o.vendor_id, o.rider_id,
	o.pickup_time, o.delivery_time, o.service_tier, o.total_amount,
	o.payment_status, o.status, o.has_issue, o.issue_category, o.issue_note,
	o.gst_number, o.created_at, o.updated_at, o.version`

func scanOrders(rows *sql.Rows) ([]OrderView, error) {
	views := make([]OrderView, 0)
	for rows.Next() {
		var (
			id, customerID           uuid.UUID
			vendorID, riderID        *uuid.UUID
			pickup, delivery         time.Time
			tier, payment, status    string
			total                    decimal.Decimal
			hasIssue                 bool
			issueCategory, issueNote *string
			gst                      string
			createdAt, updatedAt     time.Time
			version                  int64
		)
		if err := rows.Scan(
			&id, &customerID, &vendorID, &riderID,
			&pickup, &delivery, &tier, &total,
			&payment, &status, &hasIssue, &issueCategory, &issueNote,
			&gst, &createdAt, &updatedAt, &version,
		); err != nil {
			return nil, err
		}

		view, err := orderView(id, customerID, vendorID, riderID, tier, payment, status, total)
		if err != nil {
			return nil, err
		}
		view.PickupTime = pickup.UTC()
		view.DeliveryTime = delivery.UTC()
		view.HasIssue = hasIssue
		view.IssueCategory = deref(issueCategory)
		view.IssueNote = deref(issueNote)
		view.GSTNumber = gst
		view.CreatedAt = createdAt.UTC()
		view.UpdatedAt = updatedAt.UTC()
		view.Version = version
		view.Items = make([]ItemView, 0)
		views = append(views, view)
	}
	return views, rows.Err()
}

func orderView(id, customerID uuid.UUID, vendorID, riderID *uuid.UUID, tier, payment, status string, total decimal.Decimal) (OrderView, error) {
	orderID, idErr := kernel.UUIDFromBytes(id[:])
	customer, customerErr := kernel.UUIDFromBytes(customerID[:])
	vendor, vendorErr := kernel.OptionalUUID(vendorID)
	rider, riderErr := kernel.OptionalUUID(riderID)
	serviceTier, tierErr := order.ParseServiceTier(tier)
	paymentStatus, paymentErr := order.ParsePaymentStatus(payment)
	orderStatus, statusErr := order.ParseStatus(status)
	amount, amountErr := kernel.NewMoney(total)
	if err := errors.Join(idErr, customerErr, vendorErr, riderErr, tierErr, paymentErr, statusErr, amountErr); err != nil {
		return OrderView{}, err
	}
	return OrderView{
		ID:            orderID,
		CustomerID:    customer,
		VendorID:      vendor,
		RiderID:       rider,
		ServiceTier:   serviceTier,
		TotalAmount:   amount,
		PaymentStatus: paymentStatus,
		Status:        orderStatus,
	}, nil
}

// attachItems loads items and images for the given orders with two queries.
func attachItems(ctx context.Context, db *gorm.DB, views []OrderView) error {
	if len(views) == 0 {
		return nil
	}

	orderIDs := make([]uuid.UUID, 0, len(views))
	byOrder := make(map[uuid.UUID]int, len(views))
	for i, v := range views {
		raw := v.ID.Bytes()
		orderIDs = append(orderIDs, raw)
		byOrder[raw] = i
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT id, order_id, catalog_item_id, quantity, condition
		FROM order_items
		WHERE order_id IN ?
		ORDER BY order_id, position
	`, orderIDs).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	type itemRef struct{ order, item int }
	itemIDs := make([]uuid.UUID, 0)
	byItem := make(map[uuid.UUID]itemRef)
	for rows.Next() {
		var id, orderID, catalogID uuid.UUID
		var quantity int
		var condition string
		if err = rows.Scan(&id, &orderID, &catalogID, &quantity, &condition); err != nil {
			return err
		}
		itemID, idErr := kernel.UUIDFromBytes(id[:])
		catalogItemID, catalogErr := kernel.UUIDFromBytes(catalogID[:])
		if err = errors.Join(idErr, catalogErr); err != nil {
			return err
		}

		i := byOrder[orderID]
		views[i].Items = append(views[i].Items, ItemView{
			ID:            itemID,
			CatalogItemID: catalogItemID,
			Quantity:      quantity,
			Condition:     condition,
			Images:        make([]string, 0),
		})
		itemIDs = append(itemIDs, id)
		byItem[id] = itemRef{order: i, item: len(views[i].Items) - 1}
	}
	if err = rows.Err(); err != nil {
		return err
	}
	if len(itemIDs) == 0 {
		return nil
	}

	imageRows, err := db.WithContext(ctx).Raw(`
		SELECT item_id, url
		FROM order_item_images
		WHERE item_id IN ?
		ORDER BY item_id, position
	`, itemIDs).Rows()
	if err != nil {
		return err
	}
	defer imageRows.Close()

	for imageRows.Next() {
		var itemID uuid.UUID
		var url string
		if err = imageRows.Scan(&itemID, &url); err != nil {
			return err
		}
		ref := byItem[itemID]
		item := &views[ref.order].Items[ref.item]
		item.Images = append(item.Images, url)
	}
	return imageRows.Err()
}

// sqlFilter accumulates WHERE fragments with their arguments.
type sqlFilter struct {
	clauses []string
	args    []any
}

func (f *sqlFilter) add(clause string, args ...any) {
	f.clauses = append(f.clauses, clause)
	f.args = append(f.args, args...)
}

func (f *sqlFilter) where() string {
	if len(f.clauses) == 0 {
		return ""
	}
	out := "WHERE " + f.clauses[0]
	for _, c := range f.clauses[1:] {
		out += " AND " + c
	}
	return out
}

func (f *sqlFilter) day(day *time.Time) {
	if day == nil {
		return
	}
	start, end := dayBounds(*day)
	f.add("o.created_at >= ? AND o.created_at < ?", start, end)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
