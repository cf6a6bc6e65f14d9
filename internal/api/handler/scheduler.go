package handler

import (
	"net/http"

	"github.com/trendspotter/insight-engine/internal/scheduler"
	"github.com/trendspotter/insight-engine/pkg/apiErrors"
	"github.com/trendspotter/insight-engine/pkg/log"
)

// GetSchedulerStatus retorna o status do agendador de reprocessamento
func GetSchedulerStatus(syncService *scheduler.ReportSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if syncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Agendador de relatórios não disponível", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(syncService.GetStatus()); err != nil {
			logger.WithError(err).Error("scheduler: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// TriggerSchedulerSync dispara o reprocessamento do pipeline em segundo plano,
// ao contrário de /v1/run/refresh, que executa de forma síncrona
func TriggerSchedulerSync(syncService *scheduler.ReportSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if syncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Agendador de relatórios não disponível", nil)
			return
		}

		logger.Info("scheduler: reprocessamento em segundo plano solicitado")
		syncService.TriggerManualSync()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"message": "Reprocessamento iniciado com sucesso",
		}); err != nil {
			logger.WithError(err).Error("scheduler: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
