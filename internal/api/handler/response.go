package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ipay-report-api/internal/usecases/reporting"
	"github.com/vfg2006/ipay-report-api/pkg/apiErrors"
	"github.com/vfg2006/ipay-report-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeJSON escreve a resposta com status 200
func writeJSON(w http.ResponseWriter, r *http.Request, body any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("handler: erro ao codificar resposta")
	}
}

// writeReportError traduz erros do serviço de relatórios para o envelope da API
func writeReportError(w http.ResponseWriter, err error) {
	var reportErr *reporting.ReportError
	if errors.As(err, &reportErr) {
		apiErrors.WriteError(w, reportErr.Code, reportErr.Err.Error(), nonEmpty(reportErr.Details))
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar o relatório", nil)
}

func nonEmpty(details string) any {
	if details == "" {
		return nil
	}
	return details
}
