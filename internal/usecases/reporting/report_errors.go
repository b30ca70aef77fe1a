package reporting

import (
	"errors"
	"fmt"

	"github.com/vfg2006/ipay-report-api/pkg/apiErrors"
)

var (
	ErrInsufficientData = errors.New("dados insuficientes para o período selecionado")
	ErrPageNotFound     = errors.New("página de relatório não encontrada")
	ErrNoDetailRows     = errors.New("sem dados para o mês selecionado")
	ErrInvalidFilter    = errors.New("filtro inválido")
	ErrDatasetLoad      = errors.New("não foi possível carregar os dados")
)

var errorCodes = map[error]string{
	ErrInsufficientData: apiErrors.ErrInsufficientData,
	ErrPageNotFound:     apiErrors.ErrReportNotFound,
	ErrNoDetailRows:     apiErrors.ErrNoDetailRows,
	ErrInvalidFilter:    apiErrors.ErrInvalidFormat,
	ErrDatasetLoad:      apiErrors.ErrDatabaseOperation,
}

// ReportError é um erro de relatório com o código de API correspondente
type ReportError struct {
	Err     error
	Code    string
	Details string
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

// NewReportError cria um erro de relatório a partir de um erro base conhecido
func NewReportError(baseErr error, details string) *ReportError {
	code, ok := errorCodes[baseErr]
	if !ok {
		code = apiErrors.ErrInternalServer
	}

	return &ReportError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
