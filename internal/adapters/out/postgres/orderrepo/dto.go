// Package orderrepo maps the Order aggregate onto three tables: orders,
// order_items and order_item_images. Children are removed with their parent
// through ON DELETE CASCADE.
package orderrepo

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is a row of the orders table.
type OrderDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	VendorID      *uuid.UUID      `gorm:"type:uuid;index"`
	RiderID       *uuid.UUID      `gorm:"type:uuid"`
	PickupTime    time.Time       `gorm:"not null"`
	DeliveryTime  time.Time       `gorm:"not null"`
	ServiceTier   string          `gorm:"type:varchar(32);not null"`
	TotalAmount   decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	PaymentStatus string          `gorm:"type:varchar(16);not null;index"`
	Status        string          `gorm:"type:varchar(32);not null;index"`
	HasIssue      bool            `gorm:"not null;default:false;index"`
	IssueCategory *string         `gorm:"type:varchar(100)"`
	IssueNote     *string         `gorm:"type:text"`
	GSTNumber     string          `gorm:"column:gst_number;type:varchar(15)"`
	CreatedAt     time.Time       `gorm:"not null;index"`
	UpdatedAt     time.Time       `gorm:"not null"`
	Version       int64           `gorm:"not null;default:1"`
	Items         []ItemDTO       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is a row of order_items. Position keeps the checkout order.
type ItemDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	CatalogItemID uuid.UUID  `gorm:"type:uuid;not null"`
	Quantity      int        `gorm:"not null"`
	Condition     string     `gorm:"type:text"`
	Position      int        `gorm:"not null"`
	Images        []ImageDTO `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
}

func (ItemDTO) TableName() string {
	return "order_items"
}

// ImageDTO is a row of order_item_images.
type ImageDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemID   uuid.UUID `gorm:"type:uuid;not null;index"`
	URL      string    `gorm:"type:text;not null"`
	Position int       `gorm:"not null"`
}

func (ImageDTO) TableName() string {
	return "order_item_images"
}

// Models lists the DTOs for AutoMigrate in dependency order.
func Models() []any {
	return []any{&OrderDTO{}, &ItemDTO{}, &ImageDTO{}}
}

func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()

	items := make([]ItemDTO, 0, len(o.Items()))
	for i, item := range o.Items() {
		itemID := item.ID().Bytes()
		images := make([]ImageDTO, 0, len(item.Images()))
		for j, url := range item.Images() {
			images = append(images, ImageDTO{
				ID:       uuid.New(),
				ItemID:   itemID,
				URL:      url,
				Position: j,
			})
		}
		items = append(items, ItemDTO{
			ID:            itemID,
			OrderID:       orderID,
			CatalogItemID: item.CatalogItemID().Bytes(),
			Quantity:      item.Quantity(),
			Condition:     item.Condition(),
			Position:      i,
			Images:        images,
		})
	}

	dto := OrderDTO{
		ID:            orderID,
		CustomerID:    o.CustomerID().Bytes(),
		VendorID:      kernel.RawUUID(o.VendorID()),
		RiderID:       kernel.RawUUID(o.RiderID()),
		PickupTime:    o.PickupTime(),
		DeliveryTime:  o.DeliveryTime(),
		ServiceTier:   o.Tier().String(),
		TotalAmount:   o.TotalAmount().Decimal(),
		PaymentStatus: o.PaymentStatus().String(),
		Status:        o.Status().String(),
		GSTNumber:     o.GSTNumber(),
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
		Version:       o.Version(),
		Items:         items,
	}
	if issue := o.Issue(); issue != nil {
		category, note := issue.Category(), issue.Note()
		dto.HasIssue = true
		dto.IssueCategory = &category
		dto.IssueNote = &note
	}
	return dto
}

// mutableColumns are the columns an Update may touch. Items, customer, pickup
// and tier never change after creation.
func mutableColumns(dto OrderDTO) map[string]any {
	return map[string]any{
		"vendor_id":      dto.VendorID,
		"rider_id":       dto.RiderID,
		"payment_status": dto.PaymentStatus,
		"status":         dto.Status,
		"has_issue":      dto.HasIssue,
		"issue_category": dto.IssueCategory,
		"issue_note":     dto.IssueNote,
		"updated_at":     dto.UpdatedAt,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	var errList []error
	collect := func(err error) {
		if err != nil {
			errList = append(errList, err)
		}
	}

	id, err := kernel.UUIDFromBytes(dto.ID[:])
	collect(err)
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	collect(err)
	vendorID, err := kernel.OptionalUUID(dto.VendorID)
	collect(err)
	riderID, err := kernel.OptionalUUID(dto.RiderID)
	collect(err)
	tier, err := order.ParseServiceTier(dto.ServiceTier)
	collect(err)
	status, err := order.ParseStatus(dto.Status)
	collect(err)
	payment, err := order.ParsePaymentStatus(dto.PaymentStatus)
	collect(err)
	total, err := kernel.NewMoney(dto.TotalAmount)
	collect(err)

	var issue *order.Issue
	if dto.HasIssue {
		restored, issueErr := order.NewIssue(deref(dto.IssueCategory), deref(dto.IssueNote))
		collect(issueErr)
		issue = &restored
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		collect(itemErr)
		items = append(items, item)
	}

	if err = errors.Join(errList...); err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.RestoreParams{
		ID:            id,
		CustomerID:    customerID,
		VendorID:      vendorID,
		RiderID:       riderID,
		Items:         items,
		PickupTime:    dto.PickupTime.UTC(),
		DeliveryTime:  dto.DeliveryTime.UTC(),
		Tier:          tier,
		TotalAmount:   total,
		PaymentStatus: payment,
		Status:        status,
		Issue:         issue,
		GSTNumber:     dto.GSTNumber,
		CreatedAt:     dto.CreatedAt.UTC(),
		UpdatedAt:     dto.UpdatedAt.UTC(),
		Version:       dto.Version,
	})
}

func itemToDomain(dto ItemDTO) (order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Item{}, err
	}
	catalogID, err := kernel.UUIDFromBytes(dto.CatalogItemID[:])
	if err != nil {
		return order.Item{}, err
	}
	images := make([]string, 0, len(dto.Images))
	for _, img := range dto.Images {
		images = append(images, img.URL)
	}
	return order.RestoreItem(id, catalogID, dto.Quantity, dto.Condition, images)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
