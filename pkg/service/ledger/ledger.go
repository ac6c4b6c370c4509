// Package ledger implements the transaction processor: the single
// state-changing entry point of the system. Every apply runs as one unit of
// work that checks the idempotency guard, validates funds under a row lock,
// and commits the ledger entry together with the balance update.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/balance/pkg/domain"
	"github.com/amirasaad/balance/pkg/money"
	"github.com/amirasaad/balance/pkg/repository"
	"github.com/google/uuid"
)

const (
	defaultMaxAttempts = 3
	defaultRetryDelay  = 50 * time.Millisecond
)

// Service applies transactions to accounts and resolves them by uid.
type Service struct {
	uow         repository.UnitOfWork
	logger      *slog.Logger
	now         func() time.Time
	maxAttempts int
	retryDelay  time.Duration
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the ingestion-time source, used to default missing
// transaction timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithRetry overrides the bounded retry policy for transient store errors.
func WithRetry(attempts int, delay time.Duration) Option {
	return func(s *Service) {
		s.maxAttempts = attempts
		s.retryDelay = delay
	}
}

// NewService creates a ledger Service.
func NewService(uow repository.UnitOfWork, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		uow:         uow,
		logger:      logger,
		now:         time.Now,
		maxAttempts: defaultMaxAttempts,
		retryDelay:  defaultRetryDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Apply records a transaction against an account with at-most-once effect
// for the given uid.
//
// Validation happens before any store interaction; a zero timestamp defaults
// to ingestion time. A uid that was already applied returns the original
// transaction unchanged with no balance mutation. Transient store failures
// re-execute the whole unit of work a bounded number of times; exhaustion
// surfaces as ErrStoreUnavailable with nothing applied.
func (s *Service) Apply(
	ctx context.Context,
	uid string,
	accountID uuid.UUID,
	kind domain.Kind,
	amount money.Money,
	timestamp time.Time,
) (*domain.Transaction, error) {
	tx, err := domain.NewTransaction(uid, accountID, kind, amount, timestamp, s.now)
	if err != nil {
		return nil, err
	}

	logger := s.logger.With("uid", uid, "account_id", accountID, "kind", kind)
	var applied *domain.Transaction
	for attempt := 1; ; attempt++ {
		applied, err = s.applyOnce(ctx, tx)
		if err == nil {
			return applied, nil
		}
		if !isRetryable(err) {
			return nil, err
		}
		if attempt >= s.maxAttempts {
			logger.Error("apply retries exhausted", "attempts", attempt, "error", err)
			return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
		}
		logger.Warn("transient store error, retrying apply", "attempt", attempt, "error", err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.retryDelay):
		}
	}
}

// applyOnce runs one full apply sequence in a single unit of work.
func (s *Service) applyOnce(ctx context.Context, tx *domain.Transaction) (applied *domain.Transaction, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		transactions, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		existing, err := transactions.GetByUID(tx.UID)
		if err == nil {
			// Idempotency guard: already applied, return the original
			// record without touching the balance.
			applied = existing
			return nil
		}
		if !errors.Is(err, domain.ErrTransactionNotFound) {
			return err
		}

		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		// The row lock serializes check-then-mutate against concurrent
		// applies on the same account; other accounts do not contend.
		account, err := accounts.GetForUpdate(tx.AccountID)
		if err != nil {
			return err
		}
		if err = account.Apply(tx); err != nil {
			return err
		}
		if err = transactions.Create(tx); err != nil {
			return err
		}
		if err = accounts.Update(account); err != nil {
			return err
		}
		applied = tx
		return nil
	})
	if err != nil {
		return nil, err
	}
	return applied, nil
}

// GetTransaction resolves a ledger entry by its idempotency key.
func (s *Service) GetTransaction(ctx context.Context, uid string) (*domain.Transaction, error) {
	transactions, err := s.uow.TransactionRepository()
	if err != nil {
		return nil, err
	}
	return transactions.GetByUID(uid)
}

// isRetryable reports whether the whole apply sequence should be re-executed.
// A duplicate uid insert means a concurrent submission won the race after the
// guard check passed; re-running the sequence resolves it through the guard.
func isRetryable(err error) bool {
	return errors.Is(err, domain.ErrStoreConflict) ||
		errors.Is(err, domain.ErrDuplicateTransaction)
}
