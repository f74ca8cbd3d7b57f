package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/wallet"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetWalletQueryHandler struct {
	db *gorm.DB
}

func NewGetWalletQueryHandler(db *gorm.DB) GetWalletQueryHandler {
	return GetWalletQueryHandler{db: db}
}

func (h GetWalletQueryHandler) Handle(ctx context.Context, query GetWalletQuery) (WalletView, error) {
	if err := query.Validate(); err != nil {
		return WalletView{}, err
	}

	var (
		id, customerID       uuid.UUID
		balance              decimal.Decimal
		createdAt, updatedAt time.Time
		version              int64
	)
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, customer_id, balance, created_at, updated_at, version
		FROM wallets
		WHERE customer_id = ?
	`, query.CustomerID().Bytes()).Row().Scan(&id, &customerID, &balance, &createdAt, &updatedAt, &version)
	if errors.Is(err, sql.ErrNoRows) {
		return WalletView{}, errs.NewObjectNotFoundError("wallet", query.CustomerID().String())
	}
	if err != nil {
		return WalletView{}, errs.NewStoreError("select wallet", err)
	}

	walletID, idErr := kernel.UUIDFromBytes(id[:])
	customer, customerErr := kernel.UUIDFromBytes(customerID[:])
	money, balanceErr := kernel.NewMoney(balance)
	if err = errors.Join(idErr, customerErr, balanceErr); err != nil {
		return WalletView{}, err
	}

	view := WalletView{
		ID:         walletID,
		CustomerID: customer,
		Balance:    money,
		CreatedAt:  createdAt.UTC(),
		UpdatedAt:  updatedAt.UTC(),
		Version:    version,
	}
	if view.Transactions, err = h.transactions(ctx, id, query.page); err != nil {
		return WalletView{}, err
	}
	return view, nil
}

func (h GetWalletQueryHandler) transactions(ctx context.Context, walletID uuid.UUID, page Page) ([]TransactionView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, amount, type, note, created_at
		FROM wallet_transactions
		WHERE wallet_id = ?
		ORDER BY seq DESC
		LIMIT ? OFFSET ?
	`, walletID, page.Limit, page.Offset).Rows()
	if err != nil {
		return nil, errs.NewStoreError("select wallet transactions", err)
	}
	defer rows.Close()

	out := make([]TransactionView, 0)
	for rows.Next() {
		var id uuid.UUID
		var amount decimal.Decimal
		var direction, note string
		var createdAt time.Time
		if err = rows.Scan(&id, &amount, &direction, &note, &createdAt); err != nil {
			return nil, errs.NewStoreError("scan wallet transactions", err)
		}

		txID, idErr := kernel.UUIDFromBytes(id[:])
		money, amountErr := kernel.NewMoney(amount)
		dir, dirErr := wallet.ParseDirection(direction)
		if err = errors.Join(idErr, amountErr, dirErr); err != nil {
			return nil, err
		}
		out = append(out, TransactionView{
			ID:        txID,
			Amount:    money,
			Type:      dir,
			Note:      note,
			CreatedAt: createdAt.UTC(),
		})
	}
	if err = rows.Err(); err != nil {
		return nil, errs.NewStoreError("scan wallet transactions", err)
	}
	return out, nil
}
