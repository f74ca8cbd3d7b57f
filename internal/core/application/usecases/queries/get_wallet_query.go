package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/wallet"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrGetWalletQueryIsNotConstructed = errors.New(
	"GetWalletQuery must be created via NewGetWalletQuery constructor",
)

// GetWalletQuery reads a wallet and its ledger, newest entry first. It does
// not create the wallet; callers that need that run GetOrCreateWalletCommand
// first.
type GetWalletQuery struct {
	customerID kernel.UUID
	page       Page

	guard guard.ConstructorGuard
}

func NewGetWalletQuery(actor kernel.Actor, customerID kernel.UUID, page Page) (GetWalletQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetWalletQuery{}, errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	if err := wallet.CheckAccess(actor, customerID); err != nil {
		return GetWalletQuery{}, err
	}
	normalized, err := page.normalize()
	if err != nil {
		return GetWalletQuery{}, err
	}
	return GetWalletQuery{customerID: customerID, page: normalized, guard: guard.NewConstructorGuard()}, nil
}

func (q GetWalletQuery) Validate() error {
	return q.guard.Validate(ErrGetWalletQueryIsNotConstructed)
}

func (q GetWalletQuery) CustomerID() kernel.UUID { return q.customerID }
