package walletrepo

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/wallet"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletDTO is a row of wallets. One wallet per customer.
type WalletDTO struct {
	ID           uuid.UUID        `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex"`
	Balance      decimal.Decimal  `gorm:"type:numeric(14,2);not null;default:0"`
	CreatedAt    time.Time        `gorm:"not null"`
	UpdatedAt    time.Time        `gorm:"not null"`
	Version      int64            `gorm:"not null;default:1"`
	Transactions []TransactionDTO `gorm:"foreignKey:WalletID;constraint:OnDelete:CASCADE"`
}

func (WalletDTO) TableName() string {
	return "wallets"
}

// TransactionDTO is an append-only ledger row. Seq orders entries written in
// the same instant.
type TransactionDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	WalletID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Seq       int64           `gorm:"autoIncrement;not null"`
	Amount    decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Type      string          `gorm:"type:varchar(8);not null"`
	Note      string          `gorm:"type:varchar(500)"`
	CreatedAt time.Time       `gorm:"not null;index"`
}

func (TransactionDTO) TableName() string {
	return "wallet_transactions"
}

func Models() []any {
	return []any{&WalletDTO{}, &TransactionDTO{}}
}

func fromDomain(w *wallet.Wallet) WalletDTO {
	return WalletDTO{
		ID:         w.ID().Bytes(),
		CustomerID: w.CustomerID().Bytes(),
		Balance:    w.Balance().Decimal(),
		CreatedAt:  w.CreatedAt(),
		UpdatedAt:  w.UpdatedAt(),
		Version:    w.Version(),
	}
}

func transactionsFromDomain(entries []wallet.Transaction) []TransactionDTO {
	out := make([]TransactionDTO, 0, len(entries))
	for _, t := range entries {
		out = append(out, TransactionDTO{
			ID:        t.ID().Bytes(),
			WalletID:  t.WalletID().Bytes(),
			Amount:    t.Amount().Decimal(),
			Type:      t.Direction().String(),
			Note:      t.Note(),
			CreatedAt: t.CreatedAt(),
		})
	}
	return out
}

func toDomain(dto WalletDTO) (*wallet.Wallet, error) {
	id, idErr := kernel.UUIDFromBytes(dto.ID[:])
	customerID, customerErr := kernel.UUIDFromBytes(dto.CustomerID[:])
	balance, balanceErr := kernel.NewMoney(dto.Balance)
	if err := errors.Join(idErr, customerErr, balanceErr); err != nil {
		return nil, err
	}
	return wallet.RestoreWallet(id, customerID, balance, dto.CreatedAt.UTC(), dto.UpdatedAt.UTC(), dto.Version)
}
