package infra

import (
	"fmt"

	"samhotel-api/internal/pkg/errs"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type ErrorKind string

const (
	NotFoundError        ErrorKind = "NOT_FOUND"
	ConflictError        ErrorKind = "CONFLICT"
	DuplicateKeyError    ErrorKind = "DUPLICATE_KEY"
	ForeignKeyViolated   ErrorKind = "FOREIGN_KEY_VIOLATED"
	DBFailure            ErrorKind = "DB_FAILURE"
	SerializationFailure ErrorKind = "SERIALIZATION_FAILURE"
)

type RepositoryError struct {
	Kind ErrorKind
	err  error
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("repository error (%s): %v", e.Kind, e.err)
}

func (e *RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr normalizes driver errors into kinds the usecase layer can
// branch on without importing pgx.
func WrapRepoErr(err error, kind ...ErrorKind) error {
	if err == nil {
		return nil
	}
	k := classify(err)
	if len(kind) > 0 {
		k = kind[0]
	}
	return errs.Wrap(&RepositoryError{Kind: k, err: err}, "repository operation failed")
}

func classify(err error) ErrorKind {
	if errors.Is(err, pgx.ErrNoRows) {
		return NotFoundError
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return DuplicateKeyError
		case "23503":
			return ForeignKeyViolated
		case "23P01": // exclusion constraint, overlapping stay ranges
			return ConflictError
		case "40001", "40P01":
			return SerializationFailure
		}
	}
	return DBFailure
}

func IsKind(err error, kind ErrorKind) bool {
	var repoErr *RepositoryError
	if errors.As(err, &repoErr) {
		return repoErr.Kind == kind
	}
	return false
}

// IsRetryable reports serialization failures and deadlocks, which the unit of
// work retries with a fresh transaction.
func IsRetryable(err error) bool {
	if IsKind(err, SerializationFailure) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}
