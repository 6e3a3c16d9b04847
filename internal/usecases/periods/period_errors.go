package periods

import (
	"errors"
	"fmt"
)

var (
	ErrIDsRequired       = errors.New("client_id and contract_id required")
	ErrContractNotFound  = errors.New("contract not found")
	ErrInvalidSchedule   = errors.New("contract has no valid payment schedule")
	ErrDatabaseOperation = errors.New("database operation error")
)

// PeriodError é um erro com contexto adicional para o cálculo de períodos
type PeriodError struct {
	Err        error
	Code       string
	ContractID int
	Details    string
}

func (e *PeriodError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *PeriodError) Unwrap() error {
	return e.Err
}

func NewPeriodError(err error, code string, contractID int, details string) *PeriodError {
	return &PeriodError{
		Err:        err,
		Code:       code,
		ContractID: contractID,
		Details:    details,
	}
}
