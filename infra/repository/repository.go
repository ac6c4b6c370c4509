// Package repository implements the ledger store on gorm/postgres. Domain
// entities are hydrated from persistence models so the schema never leaks
// upward.
package repository

import (
	"errors"
	"time"

	"github.com/amirasaad/balance/pkg/domain"
	"github.com/amirasaad/balance/pkg/money"
	"github.com/amirasaad/balance/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates an AccountRepository bound to the given session.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Get(id uuid.UUID) (*domain.Account, error) {
	var m Account
	result := r.db.First(&m, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, mapStoreError(result.Error)
	}
	return toDomainAccount(&m), nil
}

func (r *accountRepository) GetForUpdate(id uuid.UUID) (*domain.Account, error) {
	var m Account
	result := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&m, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, mapStoreError(result.Error)
	}
	return toDomainAccount(&m), nil
}

func (r *accountRepository) GetByName(name string) (*domain.Account, error) {
	var m Account
	result := r.db.Where("name = ?", name).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, mapStoreError(result.Error)
	}
	return toDomainAccount(&m), nil
}

func (r *accountRepository) Create(a *domain.Account) error {
	m := Account{
		ID:        a.ID,
		Name:      a.Name,
		Balance:   a.Balance.Cents(),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
	return mapStoreError(r.db.Create(&m).Error)
}

func (r *accountRepository) Update(a *domain.Account) error {
	result := r.db.Model(&Account{}).
		Where("id = ?", a.ID).
		Updates(map[string]any{
			"balance":    a.Balance.Cents(),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return mapStoreError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

func toDomainAccount(m *Account) *domain.Account {
	return domain.NewAccountFromData(m.ID, m.Name, money.FromCents(m.Balance), m.CreatedAt, m.UpdatedAt)
}

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a TransactionRepository bound to the given session.
func NewTransactionRepository(db *gorm.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) GetByUID(uid string) (*domain.Transaction, error) {
	var m Transaction
	result := r.db.Where("uid = ?", uid).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, mapStoreError(result.Error)
	}
	return toDomainTransaction(&m), nil
}

func (r *transactionRepository) Create(tx *domain.Transaction) error {
	m := Transaction{
		ID:        uuid.New(),
		UID:       tx.UID,
		AccountID: tx.AccountID,
		Kind:      string(tx.Kind),
		Amount:    tx.Amount.Cents(),
		Timestamp: tx.Timestamp,
		CreatedAt: tx.CreatedAt,
	}
	return mapStoreError(r.db.Create(&m).Error)
}

func (r *transactionRepository) ListByAccount(accountID uuid.UUID) ([]*domain.Transaction, error) {
	var models []*Transaction
	result := r.db.Where("account_id = ?", accountID).
		Order("timestamp desc").
		Limit(100).
		Find(&models)
	if result.Error != nil {
		return nil, mapStoreError(result.Error)
	}
	return toDomainTransactions(models), nil
}

func (r *transactionRepository) ListByAccountUpTo(accountID uuid.UUID, cutoff time.Time) ([]*domain.Transaction, error) {
	var models []*Transaction
	result := r.db.Where("account_id = ? AND timestamp <= ?", accountID, cutoff).
		Order("timestamp asc").
		Find(&models)
	if result.Error != nil {
		return nil, mapStoreError(result.Error)
	}
	return toDomainTransactions(models), nil
}

func toDomainTransaction(m *Transaction) *domain.Transaction {
	return domain.NewTransactionFromData(
		m.UID, m.AccountID, domain.Kind(m.Kind),
		money.FromCents(m.Amount), m.Timestamp, m.CreatedAt,
	)
}

func toDomainTransactions(models []*Transaction) []*domain.Transaction {
	out := make([]*domain.Transaction, 0, len(models))
	for _, m := range models {
		out = append(out, toDomainTransaction(m))
	}
	return out
}
