package client

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de clientes
var (
	ErrClientNotFound    = errors.New("client not found")
	ErrInvalidPayload    = errors.New("invalid client payload")
	ErrNoFieldsToUpdate  = errors.New("no fields to update")
	ErrConstraint        = errors.New("client violates a database constraint")
	ErrDatabaseOperation = errors.New("database operation error")
)

// ClientError é um erro com contexto adicional para clientes
type ClientError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	ClientID int    // ID do cliente envolvido (quando aplicável)
	Details  any    // Detalhes adicionais
}

func (e *ClientError) Error() string {
	if details, ok := e.Details.(string); ok && details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), details)
	}
	return e.Err.Error()
}

func (e *ClientError) Unwrap() error {
	return e.Err
}

func NewClientError(err error, code string, details any) *ClientError {
	return &ClientError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewClientErrorWithID(err error, code string, clientID int, details any) *ClientError {
	return &ClientError{
		Err:      err,
		Code:     code,
		ClientID: clientID,
		Details:  details,
	}
}
