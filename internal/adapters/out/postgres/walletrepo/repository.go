// Package walletrepo stores wallets and their append-only transaction ledger.
package walletrepo

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/wallet"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormWalletRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormWalletRepository(db *gorm.DB, tracker aggregateTracker) *GormWalletRepository {
	return &GormWalletRepository{
		db:      db,
		tracker: tracker,
	}
}

// GetOrCreateForUpdate inserts an empty wallet unless the customer already
// has one, then reads it back under a row lock. The unique index on
// customer_id makes concurrent first calls converge on one row.
func (r *GormWalletRepository) GetOrCreateForUpdate(ctx context.Context, customerID kernel.UUID, now time.Time) (*wallet.Wallet, error) {
	if err := customerID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}

	dto, err := r.lock(ctx, customerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		fresh, newErr := wallet.NewWallet(customerID, now)
		if newErr != nil {
			return nil, newErr
		}
		insert := fromDomain(fresh)
		insert.Version = 1
		err = r.db.WithContext(ctx).
			Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "customer_id"}}, DoNothing: true}).
			Omit("Transactions").
			Create(&insert).Error
		if err != nil {
			return nil, errs.NewStoreError("insert wallet", err)
		}
		dto, err = r.lock(ctx, customerID)
	}
	if err != nil {
		return nil, errs.NewStoreError("select wallet", err)
	}

	return toDomain(dto)
}

// Update stores the new balance and appends the pending ledger entries.
func (r *GormWalletRepository) Update(ctx context.Context, aggregate *wallet.Wallet) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&WalletDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"balance":    dto.Balance,
			"updated_at": dto.UpdatedAt,
			"version":    gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return errs.NewStoreError("update wallet", result.Error)
	}
	if result.RowsAffected == 0 {
		return r.conflictOrMissing(ctx, aggregate)
	}

	if entries := transactionsFromDomain(aggregate.AppendedTransactions()); len(entries) > 0 {
		if err := r.db.WithContext(ctx).Create(&entries).Error; err != nil {
			return errs.NewStoreError("insert wallet transactions", err)
		}
	}

	aggregate.MarkPersisted(dto.Version + 1)
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormWalletRepository) lock(ctx context.Context, customerID kernel.UUID) (WalletDTO, error) {
	var dto WalletDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "customer_id = ?", customerID.Bytes()).Error
	return dto, err
}

func (r *GormWalletRepository) conflictOrMissing(ctx context.Context, aggregate *wallet.Wallet) error {
	var current WalletDTO
	err := r.db.WithContext(ctx).Select("id", "version").First(&current, "id = ?", aggregate.ID().Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError("wallet", aggregate.ID().String())
	}
	if err != nil {
		return errs.NewStoreError("select wallet", err)
	}
	return errs.NewVersionConflictError("wallet", aggregate.ID().String(), aggregate.Version(), current.Version)
}
