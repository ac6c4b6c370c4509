package repository

import (
	"errors"

	"github.com/amirasaad/balance/pkg/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapStoreError converts gorm and postgres driver errors to domain errors.
// Database concerns stay in the infrastructure layer; services only ever see
// the domain taxonomy. Not-found is mapped at the call sites because it is
// entity-specific.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateTransaction
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgerrcode.UniqueViolation:
			return domain.ErrDuplicateTransaction
		case pgErr.Code == pgerrcode.SerializationFailure,
			pgErr.Code == pgerrcode.DeadlockDetected,
			pgErr.Code == pgerrcode.LockNotAvailable:
			return domain.ErrStoreConflict
		case pgerrcode.IsConnectionException(pgErr.Code):
			return domain.ErrStoreConflict
		}
	}
	return err
}
