package http

import (
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/settlement"
	"marketplace/internal/core/domain/model/wallet"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func optionalID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func nonNil(images []string) []string {
	if images == nil {
		return []string{}
	}
	return images
}

func presentOrder(o *order.Order) Order {
	items := make([]OrderItem, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItem{
			Id:            item.ID().Bytes(),
			CatalogItemId: item.CatalogItemID().Bytes(),
			Quantity:      item.Quantity(),
			Condition:     item.Condition(),
			Images:        nonNil(item.Images()),
		})
	}
	resp := Order{
		Id:            o.ID().Bytes(),
		CustomerId:    o.CustomerID().Bytes(),
		VendorId:      optionalID(o.VendorID()),
		RiderId:       optionalID(o.RiderID()),
		Items:         items,
		PickupTime:    o.PickupTime(),
		DeliveryTime:  o.DeliveryTime(),
		ServiceTier:   o.Tier().String(),
		TotalAmount:   o.TotalAmount().String(),
		PaymentStatus: o.PaymentStatus().String(),
		Status:        o.Status().String(),
		HasIssue:      o.HasIssue(),
		GstNumber:     o.GSTNumber(),
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
		Version:       o.Version(),
	}
	if issue := o.Issue(); issue != nil {
		resp.IssueCategory = issue.Category()
		resp.IssueNote = issue.Note()
	}
	return resp
}

func presentOrderView(v queries.OrderView) Order {
	items := make([]OrderItem, 0, len(v.Items))
	for _, item := range v.Items {
		items = append(items, OrderItem{
			Id:            item.ID.Bytes(),
			CatalogItemId: item.CatalogItemID.Bytes(),
			Quantity:      item.Quantity,
			Condition:     item.Condition,
			Images:        nonNil(item.Images),
		})
	}
	return Order{
		Id:            v.ID.Bytes(),
		CustomerId:    v.CustomerID.Bytes(),
		VendorId:      optionalID(v.VendorID),
		RiderId:       optionalID(v.RiderID),
		Items:         items,
		PickupTime:    v.PickupTime,
		DeliveryTime:  v.DeliveryTime,
		ServiceTier:   v.ServiceTier.String(),
		TotalAmount:   v.TotalAmount.String(),
		PaymentStatus: v.PaymentStatus.String(),
		Status:        v.Status.String(),
		HasIssue:      v.HasIssue,
		IssueCategory: v.IssueCategory,
		IssueNote:     v.IssueNote,
		GstNumber:     v.GSTNumber,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
		Version:       v.Version,
	}
}

func presentOrderViews(views []queries.OrderView) []Order {
	resp := make([]Order, 0, len(views))
	for _, v := range views {
		resp = append(resp, presentOrderView(v))
	}
	return resp
}

func presentTransaction(t wallet.Transaction) Transaction {
	return Transaction{
		Id:        t.ID().Bytes(),
		Amount:    t.Amount().String(),
		Type:      t.Direction().String(),
		Note:      t.Note(),
		CreatedAt: t.CreatedAt(),
	}
}

func presentWalletView(v queries.WalletView) Wallet {
	txs := make([]Transaction, 0, len(v.Transactions))
	for _, t := range v.Transactions {
		txs = append(txs, Transaction{
			Id:        t.ID.Bytes(),
			Amount:    t.Amount.String(),
			Type:      t.Type.String(),
			Note:      t.Note,
			CreatedAt: t.CreatedAt,
		})
	}
	return Wallet{
		Id:           v.ID.Bytes(),
		CustomerId:   v.CustomerID.Bytes(),
		Balance:      v.Balance.String(),
		Transactions: txs,
		Version:      v.Version,
	}
}

func presentSettlement(s *settlement.Settlement) Settlement {
	return Settlement{
		Id:        s.ID().Bytes(),
		VendorId:  s.VendorID().Bytes(),
		Amount:    s.Amount().String(),
		Status:    s.Status().String(),
		Note:      s.Note(),
		PaidAt:    s.PaidAt(),
		CreatedAt: s.CreatedAt(),
		Version:   s.Version(),
	}
}

func presentSettlementViews(views []queries.SettlementView) []Settlement {
	resp := make([]Settlement, 0, len(views))
	for _, v := range views {
		resp = append(resp, Settlement{
			Id:        v.ID.Bytes(),
			VendorId:  v.VendorID.Bytes(),
			Amount:    v.Amount.String(),
			Status:    v.Status.String(),
			Note:      v.Note,
			PaidAt:    v.PaidAt,
			CreatedAt: v.CreatedAt,
			Version:   v.Version,
		})
	}
	return resp
}

func presentStatusTotal(t queries.StatusTotal) StatusTotal {
	return StatusTotal{Status: t.Status.String(), Count: t.Count, Amount: t.Amount.String()}
}
