package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos de erro PostgreSQL relevantes para o domínio.
const (
	pgUniqueViolation      = "23505"
	pgForeignKeyViolation  = "23503"
	pgSerializationFailure = "40001"
)

func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation verifica violação de constraint única (23505).
func isUniqueViolation(err error) bool {
	return pgErrCode(err) == pgUniqueViolation
}

// isForeignKeyViolation verifica violação de chave estrangeira (23503),
// ex.: exclusão física de item com movimentações (ON DELETE RESTRICT).
func isForeignKeyViolation(err error) bool {
	return pgErrCode(err) == pgForeignKeyViolation
}

// isSerializationFailure verifica falha de serialização (40001) em transações
// rodando em nível SERIALIZABLE.
func isSerializationFailure(err error) bool {
	return pgErrCode(err) == pgSerializationFailure
}
