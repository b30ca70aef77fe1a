package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ipay-report-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeDataset = "dataset"
	CronJobTypeAll     = "all"
)

// ManualJob é um agendador que também pode ser disparado sob demanda
type ManualJob interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	DatasetRefreshService ManualJob
}

type cronRunResponse struct {
	Type    string `json:"type"`
	Started bool   `json:"started"`
	Message string `json:"message"`
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeDataset, CronJobTypeAll:
			if services.DatasetRefreshService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de atualização do conjunto de dados não disponível", nil)
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido", cronType)
			return
		}

		logrus.WithField("job", cronType).Info("cron: execução manual solicitada")

		w.Header().Set("Content-Type", "application/json")
		response := cronRunResponse{Type: cronType, Started: services.DatasetRefreshService.TriggerManualSync()}
		if response.Started {
			response.Message = "Atualização iniciada"
			w.WriteHeader(http.StatusAccepted)
		} else {
			response.Message = "Atualização já em andamento"
			w.WriteHeader(http.StatusConflict)
		}

		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status de todos os agendadores
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.DatasetRefreshService != nil {
			status[CronJobTypeDataset] = services.DatasetRefreshService.GetStatus()
		}

		writeJSON(w, r, status)
	}
}
