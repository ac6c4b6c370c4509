// Package domain holds the ledger's entities and the invariants they enforce:
// balances equal the signed sum of their transactions, withdrawals never
// overdraw, and transaction uids are applied at most once.
package domain

import (
	"strings"
	"time"

	"github.com/amirasaad/balance/pkg/money"
	"github.com/google/uuid"
)

// Account is a named ledger account with a cached running balance.
// The balance is mutated only through Apply, as a side effect of a
// transaction commit.
type Account struct {
	ID        uuid.UUID
	Name      string
	Balance   money.Money
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAccount creates an account with a zero balance.
// The name is the natural external key: creation is idempotent by name,
// so the name must be non-empty.
func NewAccount(name string) (*Account, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrAccountNameRequired
	}
	now := time.Now().UTC()
	return &Account{
		ID:        uuid.New(),
		Name:      name,
		Balance:   money.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// NewAccountFromData hydrates an Account from stored data.
func NewAccountFromData(id uuid.UUID, name string, balance money.Money, created, updated time.Time) *Account {
	return &Account{
		ID:        id,
		Name:      name,
		Balance:   balance,
		CreatedAt: created,
		UpdatedAt: updated,
	}
}

// Apply mutates the cached balance for a validated transaction.
// Withdrawals that would drive the balance negative are rejected without
// mutation. The caller is responsible for persisting account and
// transaction in one atomic unit.
func (a *Account) Apply(tx *Transaction) error {
	if !tx.Amount.IsPositive() {
		return ErrAmountMustBePositive
	}
	switch tx.Kind {
	case KindDeposit:
		newBalance, err := a.Balance.Add(tx.Amount)
		if err != nil {
			return err
		}
		a.Balance = newBalance
	case KindWithdraw:
		if a.Balance.LessThan(tx.Amount) {
			return ErrInsufficientFunds
		}
		newBalance, err := a.Balance.Sub(tx.Amount)
		if err != nil {
			return err
		}
		a.Balance = newBalance
	default:
		return ErrInvalidKind
	}
	a.UpdatedAt = time.Now().UTC()
	return nil
}
