package contract

import (
	"errors"
	"fmt"
)

var (
	ErrContractNotFound       = errors.New("contract not found")
	ErrClientContractNotFound = errors.New("contract not found for this client")
	ErrInvalidPayload         = errors.New("invalid contract payload")
	ErrNoFieldsToUpdate       = errors.New("no fields to update")
	ErrConstraint             = errors.New("contract violates a database constraint")
	ErrDatabaseOperation      = errors.New("database operation error")
)

// ContractError é um erro com contexto adicional para contratos
type ContractError struct {
	Err        error
	Code       string
	ContractID int
	Details    any
}

func (e *ContractError) Error() string {
	if details, ok := e.Details.(string); ok && details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), details)
	}
	return e.Err.Error()
}

func (e *ContractError) Unwrap() error {
	return e.Err
}

func NewContractError(err error, code string, details any) *ContractError {
	return &ContractError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewContractErrorWithID(err error, code string, contractID int, details any) *ContractError {
	return &ContractError{
		Err:        err,
		Code:       code,
		ContractID: contractID,
		Details:    details,
	}
}
