package settlementrepo

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/settlement"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SettlementDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	VendorID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount    decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Status    string          `gorm:"type:varchar(16);not null;index"`
	Note      string          `gorm:"type:varchar(500)"`
	PaidAt    *time.Time
	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`
	Version   int64     `gorm:"not null;default:1"`
}

func (SettlementDTO) TableName() string {
	return "settlements"
}

func Models() []any {
	return []any{&SettlementDTO{}}
}

func fromDomain(s *settlement.Settlement) SettlementDTO {
	return SettlementDTO{
		ID:        s.ID().Bytes(),
		VendorID:  s.VendorID().Bytes(),
		Amount:    s.Amount().Decimal(),
		Status:    s.Status().String(),
		Note:      s.Note(),
		PaidAt:    s.PaidAt(),
		CreatedAt: s.CreatedAt(),
		UpdatedAt: s.UpdatedAt(),
		Version:   s.Version(),
	}
}

func toDomain(dto SettlementDTO) (*settlement.Settlement, error) {
	id, idErr := kernel.UUIDFromBytes(dto.ID[:])
	vendorID, vendorErr := kernel.UUIDFromBytes(dto.VendorID[:])
	amount, amountErr := kernel.NewMoney(dto.Amount)
	status, statusErr := settlement.ParseStatus(dto.Status)
	if err := errors.Join(idErr, vendorErr, amountErr, statusErr); err != nil {
		return nil, err
	}

	var paidAt *time.Time
	if dto.PaidAt != nil {
		utc := dto.PaidAt.UTC()
		paidAt = &utc
	}

	return settlement.RestoreSettlement(settlement.RestoreParams{
		ID:        id,
		VendorID:  vendorID,
		Amount:    amount,
		Status:    status,
		Note:      dto.Note,
		PaidAt:    paidAt,
		CreatedAt: dto.CreatedAt.UTC(),
		UpdatedAt: dto.UpdatedAt.UTC(),
		Version:   dto.Version,
	})
}
