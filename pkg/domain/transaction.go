package domain

import (
	"strings"
	"time"

	"github.com/amirasaad/balance/pkg/money"
	"github.com/google/uuid"
)

// Kind is the closed set of transaction types.
type Kind string

const (
	// KindDeposit credits the account balance.
	KindDeposit Kind = "DEPOSIT"
	// KindWithdraw debits the account balance.
	KindWithdraw Kind = "WITHDRAW"
)

// ParseKind validates a caller-supplied kind string.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindDeposit:
		return KindDeposit, nil
	case KindWithdraw:
		return KindWithdraw, nil
	default:
		return "", ErrInvalidKind
	}
}

// IsValid reports whether the kind is a member of the closed enumeration.
func (k Kind) IsValid() bool {
	return k == KindDeposit || k == KindWithdraw
}

// Transaction is one immutable entry of the append-only ledger.
// UID is the caller-assigned idempotency key; Timestamp is the economic
// effective time used for point-in-time balance replay.
type Transaction struct {
	UID       string
	AccountID uuid.UUID
	Kind      Kind
	Amount    money.Money
	Timestamp time.Time
	CreatedAt time.Time
}

// NewTransaction validates and builds a ledger entry. A zero timestamp
// defaults to now, so callers may omit the economic effective time.
func NewTransaction(uid string, accountID uuid.UUID, kind Kind, amount money.Money, timestamp time.Time, now func() time.Time) (*Transaction, error) {
	if strings.TrimSpace(uid) == "" {
		return nil, ErrTransactionUIDRequired
	}
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	if !amount.IsPositive() {
		return nil, ErrAmountMustBePositive
	}
	ingested := now().UTC()
	if timestamp.IsZero() {
		timestamp = ingested
	}
	return &Transaction{
		UID:       uid,
		AccountID: accountID,
		Kind:      kind,
		Amount:    amount,
		Timestamp: timestamp.UTC(),
		CreatedAt: ingested,
	}, nil
}

// NewTransactionFromData hydrates a Transaction from stored data.
func NewTransactionFromData(uid string, accountID uuid.UUID, kind Kind, amount money.Money, timestamp, created time.Time) *Transaction {
	return &Transaction{
		UID:       uid,
		AccountID: accountID,
		Kind:      kind,
		Amount:    amount,
		Timestamp: timestamp,
		CreatedAt: created,
	}
}

// Signed returns the amount with the sign implied by the kind:
// positive for deposits, negative for withdrawals.
func (t *Transaction) Signed() money.Money {
	if t.Kind == KindWithdraw {
		return money.FromCents(-t.Amount.Cents())
	}
	return t.Amount
}
