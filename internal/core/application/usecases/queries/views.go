package queries

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/settlement"
	"marketplace/internal/core/domain/model/wallet"
)

// OrderView is the read model of an order with its items.
type OrderView struct {
	ID            kernel.UUID
	CustomerID    kernel.UUID
	VendorID      *kernel.UUID
	RiderID       *kernel.UUID
	Items         []ItemView
	PickupTime    time.Time
	DeliveryTime  time.Time
	ServiceTier   order.ServiceTier
	TotalAmount   kernel.Money
	PaymentStatus order.PaymentStatus
	Status        order.Status
	HasIssue      bool
	IssueCategory string
	IssueNote     string
	GSTNumber     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Version       int64
}

type ItemView struct {
	ID            kernel.UUID
	CatalogItemID kernel.UUID
	Quantity      int
	Condition     string
	Images        []string
}

type SettlementView struct {
	ID        kernel.UUID
	VendorID  kernel.UUID
	Amount    kernel.Money
	Status    settlement.Status
	Note      string
	PaidAt    *time.Time
	CreatedAt time.Time
	Version   int64
}

// StatusTotal is a count and amount sum for one settlement status.
type StatusTotal struct {
	Status settlement.Status
	Count  int64
	Amount kernel.Money
}

type WalletView struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	Balance      kernel.Money
	Transactions []TransactionView
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Version      int64
}

type TransactionView struct {
	ID        kernel.UUID
	Amount    kernel.Money
	Type      wallet.Direction
	Note      string
	CreatedAt time.Time
}
