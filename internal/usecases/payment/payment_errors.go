package payment

import (
	"errors"
	"fmt"
)

var (
	ErrPaymentNotFound   = errors.New("payment not found")
	ErrClientIDRequired  = errors.New("client_id parameter required")
	ErrInvalidPagination = errors.New("page and limit must be positive")
	ErrInvalidPayload    = errors.New("invalid payment payload")
	ErrNoFieldsToUpdate  = errors.New("no fields to update")
	ErrConstraint        = errors.New("payment violates a database constraint")
	ErrDatabaseOperation = errors.New("database operation error")
)

// PaymentError é um erro com contexto adicional para pagamentos
type PaymentError struct {
	Err       error
	Code      string
	PaymentID int
	Details   any
}

func (e *PaymentError) Error() string {
	if details, ok := e.Details.(string); ok && details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), details)
	}
	return e.Err.Error()
}

func (e *PaymentError) Unwrap() error {
	return e.Err
}

func NewPaymentError(err error, code string, details any) *PaymentError {
	return &PaymentError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewPaymentErrorWithID(err error, code string, paymentID int, details any) *PaymentError {
	return &PaymentError{
		Err:       err,
		Code:      code,
		PaymentID: paymentID,
		Details:   details,
	}
}
