package repository

import (
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

// Classe 23 do SQLSTATE: violação de integridade (unique, foreign key, check, not null)
const integrityConstraintClass = "23"

// IsConstraintViolation indica se o erro veio de uma constraint do Postgres
func IsConstraintViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Class() == integrityConstraintClass
	}
	return false
}

// ConstraintName devolve a constraint violada, quando houver
func ConstraintName(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Constraint
	}
	return ""
}
