package wallet

import (
	"errors"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// MaxNoteLength bounds transaction and settlement notes.
const MaxNoteLength = 500

// Transaction is one immutable entry of a wallet log. The amount is always
// positive; Direction carries the sign.
type Transaction struct {
	id        kernel.UUID
	walletID  kernel.UUID
	amount    kernel.Money
	direction Direction
	note      string
	createdAt time.Time
}

// RestoreTransaction rebuilds a log entry read from storage.
func RestoreTransaction(id, walletID kernel.UUID, amount kernel.Money, direction Direction, note string, createdAt time.Time) (Transaction, error) {
	var errList []error
	if err := id.Validate(); err != nil {
		errList = append(errList, err)
	}
	if err := walletID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("walletId", err))
	}
	if amount.IsZero() {
		errList = append(errList, errs.NewValueIsInvalidError("amount"))
	}
	if _, err := ParseDirection(string(direction)); err != nil {
		errList = append(errList, err)
	}
	if err := errors.Join(errList...); err != nil {
		return Transaction{}, err
	}
	return Transaction{
		id:        id,
		walletID:  walletID,
		amount:    amount,
		direction: direction,
		note:      note,
		createdAt: createdAt,
	}, nil
}

func (t Transaction) ID() kernel.UUID { return t.id }
func (t Transaction) WalletID() kernel.UUID { return t.walletID }
func (t Transaction) Amount() kernel.Money { return t.amount }
func (t Transaction) Direction() Direction { return t.direction }
func (t Transaction) Note() string { return t.note }
func (t Transaction) CreatedAt() time.Time { return t.createdAt }

func normalizeNote(note string) (string, error) {
	note = strings.TrimSpace(note)
	if len(note) > MaxNoteLength {
		return "", errs.NewValueIsOutOfRangeError("note length", len(note), 0, MaxNoteLength)
	}
	return note, nil
}
