// Package account provides business logic for account management and balance
// queries: idempotent creation by name, cached current balance, and
// point-in-time balance reconstruction from the transaction log.
package account

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/amirasaad/balance/pkg/domain"
	"github.com/amirasaad/balance/pkg/money"
	"github.com/amirasaad/balance/pkg/repository"
	"github.com/google/uuid"
)

// Service provides account creation and balance inquiries.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// NewService creates an account Service.
func NewService(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// CreateAccount returns the account with the given name, creating it with a
// zero balance when it does not exist yet. Duplicate creation is absorbed,
// not rejected: resubmitting a name returns the existing account unchanged.
// The name is normalized here so the lookup, the create, and the lost-race
// recovery all resolve against the same stored key.
func (s *Service) CreateAccount(ctx context.Context, name string) (a *domain.Account, err error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrAccountNameRequired
	}
	logger := s.logger.With("name", name)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		existing, err := repo.GetByName(name)
		if err == nil {
			a = existing
			return nil
		}
		if !errors.Is(err, domain.ErrAccountNotFound) {
			return err
		}
		a, err = domain.NewAccount(name)
		if err != nil {
			return err
		}
		return repo.Create(a)
	})
	if errors.Is(err, domain.ErrDuplicateTransaction) {
		// Lost a create race for the same name; the winner's row is the
		// account we were asked for.
		err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
			repo, repoErr := uow.AccountRepository()
			if repoErr != nil {
				return repoErr
			}
			a, repoErr = repo.GetByName(name)
			return repoErr
		})
	}
	if err != nil {
		logger.Error("create account failed", "error", err)
		return nil, err
	}
	return a, nil
}

// GetAccount returns the account by id with its cached running balance.
func (s *Service) GetAccount(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	repo, err := s.uow.AccountRepository()
	if err != nil {
		return nil, err
	}
	return repo.Get(id)
}

// BalanceAsOf reconstructs the account balance at the given cutoff by
// replaying every transaction with timestamp <= cutoff. The result is
// independent of the cached balance; an account with no transactions up to
// the cutoff yields zero.
func (s *Service) BalanceAsOf(ctx context.Context, id uuid.UUID, cutoff time.Time) (money.Money, error) {
	accounts, err := s.uow.AccountRepository()
	if err != nil {
		return money.Zero, err
	}
	if _, err = accounts.Get(id); err != nil {
		return money.Zero, err
	}
	transactions, err := s.uow.TransactionRepository()
	if err != nil {
		return money.Zero, err
	}
	entries, err := transactions.ListByAccountUpTo(id, cutoff)
	if err != nil {
		return money.Zero, err
	}
	balance := money.Zero
	for _, tx := range entries {
		balance, err = balance.Add(tx.Signed())
		if err != nil {
			return money.Zero, err
		}
	}
	return balance, nil
}

// ListTransactions returns the account's ledger entries, newest first.
func (s *Service) ListTransactions(ctx context.Context, id uuid.UUID) ([]*domain.Transaction, error) {
	accounts, err := s.uow.AccountRepository()
	if err != nil {
		return nil, err
	}
	if _, err = accounts.Get(id); err != nil {
		return nil, err
	}
	transactions, err := s.uow.TransactionRepository()
	if err != nil {
		return nil, err
	}
	return transactions.ListByAccount(id)
}
