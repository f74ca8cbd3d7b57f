package http

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Wire types mirror the schemas in openapi.yaml.

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Quote struct {
	ServiceTier     string    `json:"serviceTier"`
	PickupTime      time.Time `json:"pickupTime"`
	DeliveryTime    time.Time `json:"deliveryTime"`
	PriceMultiplier string    `json:"priceMultiplier"`
}

type NewOrderItem struct {
	CatalogItemId openapi_types.UUID `json:"catalogItemId"`
	Quantity      int                `json:"quantity"`
	Condition     string             `json:"condition,omitempty"`
	Images        []string           `json:"images,omitempty"`
}

type NewOrder struct {
	CustomerId  openapi_types.UUID `json:"customerId"`
	Items       []NewOrderItem     `json:"items"`
	PickupTime  string             `json:"pickupTime"`
	ServiceTier string             `json:"serviceTier"`
	TotalAmount string             `json:"totalAmount"`
	GstNumber   string             `json:"gstNumber,omitempty"`
}

type AssignVendor struct {
	VendorId        openapi_types.UUID `json:"vendorId"`
	ExpectedVersion *int64             `json:"expectedVersion,omitempty"`
}

type AssignRider struct {
	RiderId         openapi_types.UUID `json:"riderId"`
	ExpectedVersion *int64             `json:"expectedVersion,omitempty"`
}

type StatusChange struct {
	Status          string `json:"status"`
	ExpectedVersion *int64 `json:"expectedVersion,omitempty"`
}

type NewIssue struct {
	Category        string `json:"category"`
	Note            string `json:"note"`
	ExpectedVersion *int64 `json:"expectedVersion,omitempty"`
}

type OrderItem struct {
	Id            openapi_types.UUID `json:"id"`
	CatalogItemId openapi_types.UUID `json:"catalogItemId"`
	Quantity      int                `json:"quantity"`
	Condition     string             `json:"condition"`
	Images        []string           `json:"images"`
}

type Order struct {
	Id            openapi_types.UUID  `json:"id"`
	CustomerId    openapi_types.UUID  `json:"customerId"`
	VendorId      *openapi_types.UUID `json:"vendorId,omitempty"`
	RiderId       *openapi_types.UUID `json:"riderId,omitempty"`
	Items         []OrderItem         `json:"items"`
	PickupTime    time.Time           `json:"pickupTime"`
	DeliveryTime  time.Time           `json:"deliveryTime"`
	ServiceTier   string              `json:"serviceTier"`
	TotalAmount   string              `json:"totalAmount"`
	PaymentStatus string              `json:"paymentStatus"`
	Status        string              `json:"status"`
	HasIssue      bool                `json:"hasIssue"`
	IssueCategory string              `json:"issueCategory,omitempty"`
	IssueNote     string              `json:"issueNote,omitempty"`
	GstNumber     string              `json:"gstNumber,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
	Version       int64               `json:"version"`
}

type WalletAdjustment struct {
	Amount          string `json:"amount"`
	Type            string `json:"type"`
	Note            string `json:"note,omitempty"`
	ExpectedVersion *int64 `json:"expectedVersion,omitempty"`
}

type Transaction struct {
	Id        openapi_types.UUID `json:"id"`
	Amount    string             `json:"amount"`
	Type      string             `json:"type"`
	Note      string             `json:"note,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
}

type Wallet struct {
	Id           openapi_types.UUID `json:"id"`
	CustomerId   openapi_types.UUID `json:"customerId"`
	Balance      string             `json:"balance"`
	Transactions []Transaction      `json:"transactions"`
	Version      int64              `json:"version"`
}

type AdjustmentResult struct {
	Balance     string      `json:"balance"`
	Transaction Transaction `json:"transaction"`
	Version     int64       `json:"version"`
}

type NewSettlement struct {
	VendorId openapi_types.UUID `json:"vendorId"`
	Amount   string             `json:"amount"`
	Note     string             `json:"note,omitempty"`
}

type Settlement struct {
	Id        openapi_types.UUID `json:"id"`
	VendorId  openapi_types.UUID `json:"vendorId"`
	Amount    string             `json:"amount"`
	Status    string             `json:"status"`
	Note      string             `json:"note,omitempty"`
	PaidAt    *time.Time         `json:"paidAt,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
	Version   int64              `json:"version"`
}

type StatusTotal struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
	Amount string `json:"amount"`
}

type VendorEarnings struct {
	Settlements []Settlement  `json:"settlements"`
	Summary     []StatusTotal `json:"summary"`
}

type SettlementStats struct {
	Pending StatusTotal `json:"pending"`
	Paid    StatusTotal `json:"paid"`
}

type AdminDashboard struct {
	TotalOrders      int64  `json:"totalOrders"`
	TodayOrders      int64  `json:"todayOrders"`
	PendingOrders    int64  `json:"pendingOrders"`
	ProcessingOrders int64  `json:"processingOrders"`
	DeliveredOrders  int64  `json:"deliveredOrders"`
	IssueOrders      int64  `json:"issueOrders"`
	Revenue          string `json:"revenue"`
}

type VendorDashboard struct {
	TotalOrders        int64  `json:"totalOrders"`
	TodayOrders        int64  `json:"todayOrders"`
	PendingOrders      int64  `json:"pendingOrders"`
	ProcessingOrders   int64  `json:"processingOrders"`
	CompletedOrders    int64  `json:"completedOrders"`
	CompletionRate     int64  `json:"completionRate"`
	Earnings           string `json:"earnings"`
	PendingSettlements string `json:"pendingSettlements"`
	PaidSettlements    string `json:"paidSettlements"`
}

type DayTotal struct {
	Day    openapi_types.Date `json:"day"`
	Count  int64              `json:"count"`
	Amount string             `json:"amount"`
}

// Parameter groups bound from the query string.

type ListOrdersParams struct {
	Status     *string             `form:"status,omitempty" json:"status,omitempty"`
	VendorId   *openapi_types.UUID `form:"vendorId,omitempty" json:"vendorId,omitempty"`
	CustomerId *openapi_types.UUID `form:"customerId,omitempty" json:"customerId,omitempty"`
	Day        *openapi_types.Date `form:"day,omitempty" json:"day,omitempty"`
	HasIssue   *bool               `form:"hasIssue,omitempty" json:"hasIssue,omitempty"`
	Limit      *int                `form:"limit,omitempty" json:"limit,omitempty"`
	Offset     *int                `form:"offset,omitempty" json:"offset,omitempty"`
}

type PageParams struct {
	Limit  *int `form:"limit,omitempty" json:"limit,omitempty"`
	Offset *int `form:"offset,omitempty" json:"offset,omitempty"`
}

type ListVendorOrdersParams struct {
	Status *string             `form:"status,omitempty" json:"status,omitempty"`
	Day    *openapi_types.Date `form:"day,omitempty" json:"day,omitempty"`
	Limit  *int                `form:"limit,omitempty" json:"limit,omitempty"`
	Offset *int                `form:"offset,omitempty" json:"offset,omitempty"`
}

type GetVendorEarningsParams struct {
	From   *time.Time `form:"from,omitempty" json:"from,omitempty"`
	To     *time.Time `form:"to,omitempty" json:"to,omitempty"`
	Status *string    `form:"status,omitempty" json:"status,omitempty"`
}

type ListSettlementsParams struct {
	Status   *string             `form:"status,omitempty" json:"status,omitempty"`
	VendorId *openapi_types.UUID `form:"vendorId,omitempty" json:"vendorId,omitempty"`
	Limit    *int                `form:"limit,omitempty" json:"limit,omitempty"`
	Offset   *int                `form:"offset,omitempty" json:"offset,omitempty"`
}

type GetOrdersByDayParams struct {
	From     openapi_types.Date  `form:"from" json:"from"`
	To       openapi_types.Date  `form:"to" json:"to"`
	VendorId *openapi_types.UUID `form:"vendorId,omitempty" json:"vendorId,omitempty"`
}

type CheckPriceParams struct {
	PickupTime  string `form:"pickupTime" json:"pickupTime"`
	ServiceTier string `form:"serviceTier" json:"serviceTier"`
}
