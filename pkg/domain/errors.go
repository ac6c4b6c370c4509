package domain

import "errors"

var (
	// ErrAccountNameRequired is returned when an account is created with an empty name.
	ErrAccountNameRequired = errors.New("account name must not be empty")

	// ErrAccountNotFound is returned when an account cannot be found.
	ErrAccountNotFound = errors.New("account not found")

	// ErrTransactionNotFound is returned when a transaction cannot be found.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidKind is returned when a transaction kind is neither DEPOSIT nor WITHDRAW.
	ErrInvalidKind = errors.New("invalid transaction kind")

	// ErrAmountMustBePositive is returned when a transaction amount is not strictly positive.
	ErrAmountMustBePositive = errors.New("transaction amount must be positive")

	// ErrInsufficientFunds is returned when a withdrawal exceeds the account balance.
	ErrInsufficientFunds = errors.New("insufficient funds for withdrawal")

	// ErrTransactionUIDRequired is returned when a transaction is submitted without an idempotency key.
	ErrTransactionUIDRequired = errors.New("transaction uid must not be empty")

	// ErrDuplicateTransaction is returned by the store when a uid is inserted twice.
	// The ledger absorbs it by returning the already-applied transaction.
	ErrDuplicateTransaction = errors.New("transaction already applied")

	// ErrStoreConflict is returned by the store on transient contention
	// (serialization failure, deadlock). The whole apply sequence is safe
	// to re-execute.
	ErrStoreConflict = errors.New("store conflict")

	// ErrStoreUnavailable is returned when the store keeps failing after retries.
	ErrStoreUnavailable = errors.New("ledger store unavailable")
)
