// Package repository defines the data-access contracts the ledger engine
// depends on. Implementations must provide atomic multi-row commits and
// enforce uniqueness of account names and transaction uids at the store
// level.
package repository

import (
	"time"

	"github.com/amirasaad/balance/pkg/domain"
	"github.com/google/uuid"
)

// AccountRepository defines account data access within a unit of work.
type AccountRepository interface {
	Get(id uuid.UUID) (*domain.Account, error)
	// GetForUpdate loads the account row with a row-level lock so the
	// check-then-mutate sequence of a transaction apply is serialized
	// against concurrent applies on the same account.
	GetForUpdate(id uuid.UUID) (*domain.Account, error)
	GetByName(name string) (*domain.Account, error)
	Create(account *domain.Account) error
	Update(account *domain.Account) error
}

// TransactionRepository defines ledger entry access within a unit of work.
type TransactionRepository interface {
	GetByUID(uid string) (*domain.Transaction, error)
	Create(tx *domain.Transaction) error
	ListByAccount(accountID uuid.UUID) ([]*domain.Transaction, error)
	// ListByAccountUpTo returns the account's entries with
	// timestamp <= cutoff, oldest first, for point-in-time replay.
	ListByAccountUpTo(accountID uuid.UUID, cutoff time.Time) ([]*domain.Transaction, error)
}
