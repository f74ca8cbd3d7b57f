package wallet

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	ErrWalletIsNotConstructed = errors.New("Wallet must be created via NewWallet or RestoreWallet")
)

// Wallet is a customer's stored-value account.
//
// Only the transactions appended since the wallet was loaded are held in
// memory; the repository persists them together with the new balance.
type Wallet struct {
	id         kernel.UUID
	customerID kernel.UUID
	balance    kernel.Money
	createdAt  time.Time
	updatedAt  time.Time
	version    int64

	appended []Transaction

	isConstructed bool
}

// NewWallet opens an empty wallet for customerID.
func NewWallet(customerID kernel.UUID, now time.Time) (*Wallet, error) {
	if err := customerID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	return &Wallet{
		id:            kernel.NewUUID(),
		customerID:    customerID,
		balance:       kernel.ZeroMoney(),
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreWallet rebuilds a wallet read from storage.
func RestoreWallet(id, customerID kernel.UUID, balance kernel.Money, createdAt, updatedAt time.Time, version int64) (*Wallet, error) {
	if err := errors.Join(id.Validate(), customerID.Validate()); err != nil {
		return nil, err
	}
	return &Wallet{
		id:            id,
		customerID:    customerID,
		balance:       balance,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		version:       version,
		isConstructed: true,
	}, nil
}

func (w *Wallet) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWalletIsNotConstructed
	}
	return nil
}

func (w *Wallet) ID() kernel.UUID { return w.id }
func (w *Wallet) CustomerID() kernel.UUID { return w.customerID }
func (w *Wallet) Balance() kernel.Money { return w.balance }
func (w *Wallet) CreatedAt() time.Time { return w.createdAt }
func (w *Wallet) UpdatedAt() time.Time { return w.updatedAt }
func (w *Wallet) Version() int64 { return w.version }

// AppendedTransactions returns the entries created since load, oldest first.
func (w *Wallet) AppendedTransactions() []Transaction {
	out := make([]Transaction, len(w.appended))
	copy(out, w.appended)
	return out
}

// MarkPersisted records the stored version and forgets the flushed entries.
func (w *Wallet) MarkPersisted(version int64) {
	w.version = version
	w.appended = nil
}

func (w *Wallet) ExpectVersion(expected int64) error {
	if expected != 0 && expected != w.version {
		return errs.NewVersionConflictError("wallet", w.id.String(), expected, w.version)
	}
	return nil
}

// Adjust credits or debits the wallet. Only admins adjust balances.
func (w *Wallet) Adjust(actor kernel.Actor, amount kernel.Money, direction Direction, note string, now time.Time) (Transaction, error) {
	if !actor.IsAdmin() {
		return Transaction{}, actor.Forbid("adjust wallet")
	}
	if amount.IsZero() {
		return Transaction{}, errs.NewValueIsInvalidErrorWithCause("amount", errors.New("must be greater than 0"))
	}
	if _, err := ParseDirection(string(direction)); err != nil {
		return Transaction{}, err
	}
	note, err := normalizeNote(note)
	if err != nil {
		return Transaction{}, err
	}

	next := w.balance.Add(amount)
	if direction == Credit && next.ExceedsMax() {
		return Transaction{}, errs.NewValueIsOutOfRangeError("amount", amount.String(), "0.01",
			kernel.MaxMoney.Sub(w.balance.Decimal()).StringFixed(kernel.MoneyScale))
	}
	if direction == Debit {
		if next, err = w.balance.Sub(amount); err != nil {
			return Transaction{}, errs.NewInsufficientBalanceError(w.balance.String(), amount.String())
		}
	}

	tx := Transaction{
		id:        kernel.NewUUID(),
		walletID:  w.id,
		amount:    amount,
		direction: direction,
		note:      note,
		createdAt: now,
	}
	w.balance = next
	w.updatedAt = now
	w.appended = append(w.appended, tx)
	return tx, nil
}

// CheckAccess allows admins and the owning customer to open a wallet.
func CheckAccess(actor kernel.Actor, customerID kernel.UUID) error {
	if actor.IsAdmin() || actor.Is(kernel.RoleCustomer, customerID) {
		return nil
	}
	return actor.Forbid("open wallet")
}
