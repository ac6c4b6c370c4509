// Package mocks provides hand-rolled test doubles for the repository
// contracts: testify mocks for the repositories and a pass-through
// UnitOfWork fake that executes the unit function against them.
package mocks

import (
	"context"
	"time"

	"github.com/amirasaad/balance/pkg/domain"
	"github.com/amirasaad/balance/pkg/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// AccountRepository is a testify mock of repository.AccountRepository.
type AccountRepository struct {
	mock.Mock
}

func (m *AccountRepository) Get(id uuid.UUID) (*domain.Account, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *AccountRepository) GetForUpdate(id uuid.UUID) (*domain.Account, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *AccountRepository) GetByName(name string) (*domain.Account, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *AccountRepository) Create(account *domain.Account) error {
	return m.Called(account).Error(0)
}

func (m *AccountRepository) Update(account *domain.Account) error {
	return m.Called(account).Error(0)
}

// TransactionRepository is a testify mock of repository.TransactionRepository.
type TransactionRepository struct {
	mock.Mock
}

func (m *TransactionRepository) GetByUID(uid string) (*domain.Transaction, error) {
	args := m.Called(uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *TransactionRepository) Create(tx *domain.Transaction) error {
	return m.Called(tx).Error(0)
}

func (m *TransactionRepository) ListByAccount(accountID uuid.UUID) ([]*domain.Transaction, error) {
	args := m.Called(accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Transaction), args.Error(1)
}

func (m *TransactionRepository) ListByAccountUpTo(accountID uuid.UUID, cutoff time.Time) ([]*domain.Transaction, error) {
	args := m.Called(accountID, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Transaction), args.Error(1)
}

// UnitOfWork is a pass-through fake: Do runs the unit function against the
// fake itself so services exercise their real orchestration, while the
// repositories remain mockable.
type UnitOfWork struct {
	Accounts     *AccountRepository
	Transactions *TransactionRepository

	// DoErr, when set, makes Do fail without running the unit function.
	DoErr error
	// DoCalls counts transaction boundaries opened.
	DoCalls int
}

// NewUnitOfWork builds a UnitOfWork fake with fresh repository mocks.
func NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{
		Accounts:     &AccountRepository{},
		Transactions: &TransactionRepository{},
	}
}

func (u *UnitOfWork) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	u.DoCalls++
	if u.DoErr != nil {
		return u.DoErr
	}
	return fn(u)
}

func (u *UnitOfWork) AccountRepository() (repository.AccountRepository, error) {
	return u.Accounts, nil
}

func (u *UnitOfWork) TransactionRepository() (repository.TransactionRepository, error) {
	return u.Transactions, nil
}
