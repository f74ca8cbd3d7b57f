package order

import (
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// MaxItemQuantity bounds a single line item.
const MaxItemQuantity = 1000

// Item is one garment line of an order. It is created with its order and never changes.
type Item struct {
	id            kernel.UUID
	catalogItemID kernel.UUID
	quantity      int
	condition     string
	images        []string
}

// NewItem validates a line item. Images are references returned by the upload service.
func NewItem(catalogItemID kernel.UUID, quantity int, condition string, images []string) (Item, error) {
	return RestoreItem(kernel.NewUUID(), catalogItemID, quantity, condition, images)
}

// RestoreItem rebuilds an item read from storage.
func RestoreItem(id, catalogItemID kernel.UUID, quantity int, condition string, images []string) (Item, error) {
	var errList []error
	if err := id.Validate(); err != nil {
		errList = append(errList, err)
	}
	if err := catalogItemID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("catalogItemId", err))
	}
	if quantity < 1 || quantity > MaxItemQuantity {
		errList = append(errList, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxItemQuantity))
	}
	for i, ref := range images {
		if strings.TrimSpace(ref) == "" {
			errList = append(errList, errs.NewValueIsRequiredErrorWithCause("image", fmt.Errorf("image %d is empty", i)))
		}
	}
	if err := errors.Join(errList...); err != nil {
		return Item{}, err
	}

	copied := make([]string, len(images))
	copy(copied, images)
	return Item{
		id:            id,
		catalogItemID: catalogItemID,
		quantity:      quantity,
		condition:     strings.TrimSpace(condition),
		images:        copied,
	}, nil
}

func (i Item) ID() kernel.UUID { return i.id }
func (i Item) CatalogItemID() kernel.UUID { return i.catalogItemID }
func (i Item) Quantity() int { return i.quantity }
func (i Item) Condition() string { return i.condition }

// Images returns the image references in upload order.
func (i Item) Images() []string {
	out := make([]string, len(i.images))
	copy(out, i.images)
	return out
}
