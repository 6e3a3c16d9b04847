package dashboard

import (
	"errors"
	"fmt"
)

var (
	ErrClientNotFound    = errors.New("client not found")
	ErrDatabaseOperation = errors.New("database operation error")
)

type DashboardError struct {
	Err      error
	Code     string
	ClientID int
	Details  string
}

func (e *DashboardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *DashboardError) Unwrap() error {
	return e.Err
}

func NewDashboardError(err error, code string, clientID int, details string) *DashboardError {
	return &DashboardError{
		Err:      err,
		Code:     code,
		ClientID: clientID,
		Details:  details,
	}
}
