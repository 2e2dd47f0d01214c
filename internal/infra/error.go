package infra

import (
	"context"
	"errors"
	"log/slog"

	"github.com/sanctumos/clawedroad/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

// Infrastructure-specific error kinds
const (
	KindNotFound            RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure           RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey        RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated  RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindConstraintViolated  RepositoryErrorKind = "CONSTRAINT_VIOLATED"
	KindSerializationFailed RepositoryErrorKind = "SERIALIZATION_FAILED"
	KindCanceled            RepositoryErrorKind = "CANCELED"
)

// SQLSTATE codes the repositories react to.
const (
	pgErrCodeNotNullViolation     = "23502"
	pgErrCodeForeignKeyViolation  = "23503"
	pgErrCodeUniqueViolation      = "23505"
	pgErrCodeCheckViolation       = "23514"
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

type RepositoryError struct {
	Kind       RepositoryErrorKind
	Constraint string
	msg        string
	err        error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr classifies err by its PostgreSQL code unless a kind is given.
// Misses and cancellations log at debug; everything else at error.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k, constraint := classify(err)
	if len(kind) > 0 {
		k = kind[0]
	}

	attrs := []any{slog.String("kind", string(k))}
	if constraint != "" {
		attrs = append(attrs, slog.String("constraint", constraint))
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	switch k {
	case KindNotFound, KindCanceled:
		slog.Debug("repository: "+msg, attrs...)
	default:
		slog.Error("repository: "+msg, attrs...)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return RepositoryError{Kind: k, Constraint: constraint, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// IsRetryable reports whether the whole transaction can be replayed.
func IsRetryable(err error) bool {
	if IsKind(err, KindSerializationFailed) {
		return true
	}
	k, _ := classify(err)
	return k == KindSerializationFailed
}

func classify(err error) (RepositoryErrorKind, string) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return KindCanceled, ""
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return KindDBFailure, ""
	}
	switch pgErr.Code {
	case pgErrCodeUniqueViolation:
		return KindDuplicateKey, pgErr.ConstraintName
	case pgErrCodeForeignKeyViolation:
		return KindForeignKeyViolated, pgErr.ConstraintName
	case pgErrCodeCheckViolation, pgErrCodeNotNullViolation:
		return KindConstraintViolated, pgErr.ConstraintName
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return KindSerializationFailed, ""
	}
	return KindDBFailure, ""
}
