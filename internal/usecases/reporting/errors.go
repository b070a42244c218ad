package reporting

import (
	"errors"
	"fmt"
)

var (
	ErrAccountIDRequired = errors.New("account ID is required")
	ErrAccountNotFound   = errors.New("account has no daily rows")
	ErrInvalidAsOf       = errors.New("as_of is after the latest stored date")
	ErrDatabaseOperation = errors.New("database operation error")
	ErrGenerateID        = errors.New("error generating report ID")
)

// ReportError é um erro com contexto adicional para a geração do relatório
type ReportError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	AccountID string
	Details   string
}

func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

func newReportError(err error, code, accountID, details string) *ReportError {
	return &ReportError{
		Err:       err,
		Code:      code,
		AccountID: accountID,
		Details:   details,
	}
}
