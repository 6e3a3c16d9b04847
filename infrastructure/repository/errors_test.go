package repository

import (
	"testing"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestIsConstraintViolation(t *testing.T) {
	fk := &pq.Error{Code: "23503", Constraint: "payments_contract_id_fkey"}

	assert.True(t, IsConstraintViolation(errors.Wrap(fk, "inserindo pagamento")))
	assert.Equal(t, "payments_contract_id_fkey", ConstraintName(errors.Wrap(fk, "inserindo pagamento")))

	assert.False(t, IsConstraintViolation(&pq.Error{Code: "42P01"}))
	assert.False(t, IsConstraintViolation(errors.New("timeout")))
	assert.Empty(t, ConstraintName(errors.New("timeout")))
}
