package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE de unique_violation en PostgreSQL.
const uniqueViolationCode = "23505"

// isUniqueViolation indica si err es una violación de índice o constraint
// único. pgx entrega los errores del servidor como *pgconn.PgError, por lo
// que basta con inspeccionar el código SQLSTATE.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
