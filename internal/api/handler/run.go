package handler

import (
	"net/http"

	"github.com/trendspotter/insight-engine/infrastructure/dataset"
	"github.com/trendspotter/insight-engine/internal/usecases/reporting"
	"github.com/trendspotter/insight-engine/pkg/apiErrors"
	"github.com/trendspotter/insight-engine/pkg/log"
)

// GetRunSummary retorna os metadados da execução mais recente do pipeline
func GetRunSummary(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		result := service.LatestRun()
		if result == nil {
			apiErrors.WriteError(w, apiErrors.ErrRunNotReady, "Nenhuma execução do pipeline concluída ainda", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result.Summary); err != nil {
			logger.WithError(err).Error("run: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// RefreshRun dispara manualmente uma nova execução do pipeline, de forma
// síncrona. Execuções concorrentes são serializadas pelo próprio serviço.
func RefreshRun(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("run: execução manual do pipeline solicitada")

		result, err := service.Run(r.Context())
		if err != nil {
			logger.WithError(err).Error("run: falha na execução manual do pipeline")

			if dataset.IsDataError(err) {
				apiErrors.WriteError(w, apiErrors.ErrDatasetInvalid, err.Error(), nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrRunFailed, "Falha na execução do pipeline", err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result.Summary); err != nil {
			logger.WithError(err).Error("run: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
