package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/trendspotter/insight-engine/internal/usecases/reporting"
	"github.com/trendspotter/insight-engine/pkg/apiErrors"
	"github.com/trendspotter/insight-engine/pkg/log"
)

// ListClientReports retorna os relatórios de todos os clientes da execução mais recente
func ListClientReports(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		result := service.LatestRun()
		if result == nil {
			apiErrors.WriteError(w, apiErrors.ErrRunNotReady, "Nenhuma execução do pipeline concluída ainda", nil)
			return
		}

		logger.WithFields(log.Fields{
			"run_id":  result.Summary.RunID,
			"clients": len(result.Reports),
		}).Info("reports: listando relatórios da execução mais recente")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result.Reports); err != nil {
			logger.WithError(err).Error("reports: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetClientReport retorna o relatório de um único cliente
func GetClientReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		company := httprouter.ParamsFromContext(r.Context()).ByName("company")
		if company == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Cliente não informado", nil)
			return
		}

		result := service.LatestRun()
		if result == nil {
			apiErrors.WriteError(w, apiErrors.ErrRunNotReady, "Nenhuma execução do pipeline concluída ainda", nil)
			return
		}

		report := result.ReportByCompany(company)
		if report == nil {
			logger.WithField("company", company).Warn("reports: relatório não encontrado")
			apiErrors.WriteError(w, apiErrors.ErrReportNotFound, "Relatório não encontrado para o cliente", company)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("reports: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
