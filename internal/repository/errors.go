package repository

import (
	"errors"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"socialnet/internal/apperror"
)

// Postgres error codes for constraint violations.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// isForeignKeyViolation reports whether the insert referenced a row that no
// longer exists. Pre-checks in the service layer race with deletes, the
// constraint is the authority.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}

// storeErr translates driver connectivity failures into the Unavailable kind
// so an unreachable store surfaces as such, not as an internal error. Query
// and constraint errors pass through untouched.
func storeErr(err error) error {
	if err == nil {
		return nil
	}
	var connErr *pgconn.ConnectError
	var netErr net.Error
	if errors.As(err, &connErr) || errors.As(err, &netErr) {
		return apperror.Unavailable("postgres", err)
	}
	return err
}

// escapeLike escapes LIKE/ILIKE metacharacters so user input is matched as
// literal text, not as a pattern language.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
