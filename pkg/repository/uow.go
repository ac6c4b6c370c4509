package repository

import "context"

// UnitOfWork is the transaction boundary for ledger operations.
//
// Repositories are accessed through the UnitOfWork so that every operation
// inside Do shares one store transaction: the transaction insert and the
// balance update commit together or not at all. Holding repository access
// behind the UnitOfWork also prevents accidental use of a session outside
// the boundary.
type UnitOfWork interface {
	// Do executes fn within a transaction boundary. The UnitOfWork passed
	// to fn is bound to that transaction. If fn returns an error the
	// transaction is rolled back.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	// AccountRepository returns the account repository bound to the
	// current transaction, or the base session outside of Do.
	AccountRepository() (AccountRepository, error)

	// TransactionRepository returns the ledger entry repository bound to
	// the current transaction, or the base session outside of Do.
	TransactionRepository() (TransactionRepository, error)
}
