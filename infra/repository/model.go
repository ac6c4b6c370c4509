package repository

import (
	"time"

	"github.com/google/uuid"
)

// Account is the persistence model for a ledger account. The unique index on
// Name backs idempotent creation by name.
type Account struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"uniqueIndex;not null;size:255"`
	Balance   int64     `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Transactions []Transaction `gorm:"foreignKey:AccountID"`
}

// Transaction is the persistence model for a ledger entry. The unique index
// on UID is the hard backstop against double application: two concurrent
// submissions of the same uid cannot both insert.
type Transaction struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UID       string    `gorm:"uniqueIndex;not null;size:128"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;index"`
	Kind      string    `gorm:"type:varchar(8);not null"`
	Amount    int64     `gorm:"not null"`
	Timestamp time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}
