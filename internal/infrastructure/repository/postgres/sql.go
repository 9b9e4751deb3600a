package postgres

import (
	"database/sql"
	"errors"

	crerr "github.com/cockroachdb/errors"
	"github.com/lib/pq"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func pqErrorName(err error) string {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return ""
	}
	return pqErr.Code.Name()
}

func isUniqueViolation(err error) bool {
	return pqErrorName(err) == "unique_violation"
}

func isForeignKeyViolation(err error) bool {
	return pqErrorName(err) == "foreign_key_violation"
}

func isCheckViolation(err error) bool {
	return pqErrorName(err) == "check_violation"
}

func nullString(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}

// domainError marks a store failure as the given domain sentinel while keeping
// the driver error attached for logs.
func domainError(sentinel error, op string, cause error) error {
	if cause == nil {
		return crerr.Wrap(sentinel, op)
	}
	return crerr.Wrap(crerr.WithSecondaryError(sentinel, cause), op)
}

type options struct {
	importWorkers int
}

// Option tunes a repository.
type Option func(*options)

// WithImportWorkers sets how many bulk import items run at once. Values below 2
// keep imports sequential.
func WithImportWorkers(n int) Option {
	return func(o *options) {
		o.importWorkers = n
	}
}

func buildOptions(opts []Option) options {
	o := options{importWorkers: 1}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
