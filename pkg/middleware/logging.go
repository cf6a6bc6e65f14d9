package middleware

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/trendspotter/insight-engine/pkg/log"
)

// Requisições acima deste limite geram um aviso de lentidão. O pipeline roda
// fora do caminho das requisições, então leituras da API devem ser rápidas.
const slowRequestThreshold = 500 * time.Millisecond

// LoggingMiddleware registra o início e o fim de cada requisição HTTP com um
// ID de correlação compartilhado pelos handlers via contexto
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			r = r.WithContext(ctx)

			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			startTime := time.Now()

			log.L.WithFields(requestFields(correlationID, r)).Info("Requisição iniciada")

			next.ServeHTTP(sw, r)

			elapsed := time.Since(startTime)
			fields := requestFields(correlationID, r)
			fields["status_code"] = sw.status
			fields["duration_ms"] = elapsed.Milliseconds()

			logger := log.L.WithFields(fields)
			switch {
			case sw.status >= 500:
				logger.Error("Requisição finalizada com erro")
			case sw.status >= 400:
				logger.Warn("Requisição finalizada com aviso")
			default:
				logger.Info("Requisição finalizada com sucesso")
			}

			if elapsed > slowRequestThreshold {
				logger.Warnf("Requisição lenta: %s", formatDuration(elapsed))
			}
		})
	}
}

func requestFields(correlationID string, r *http.Request) log.Fields {
	fields := log.Fields{
		"correlation_id": correlationID,
		"method":         r.Method,
		"path":           r.URL.Path,
	}

	// Detalhes extras só em produção; em desenvolvimento o log fica enxuto
	if !log.IsDevelopment() {
		fields["remote_addr"] = r.RemoteAddr
		fields["query"] = r.URL.RawQuery
		fields["user_agent"] = r.UserAgent()
	}

	return fields
}

// formatDuration formata a duração de forma humana
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%d µs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%d ms", d.Milliseconds())
	}
	return fmt.Sprintf("%.2f s", d.Seconds())
}

// statusWriter captura o status code escrito pelo handler
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.status = code
	sw.ResponseWriter.WriteHeader(code)
}

// LogPanicMiddleware transforma panics dos handlers em respostas 500, com o
// stack trace registrado junto do ID de correlação da requisição
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					stack := make([]byte, 4096)
					stackSize := runtime.Stack(stack, false)

					log.L.WithFields(log.Fields{
						"correlation_id": log.GetCorrelationID(r.Context()),
						"panic_error":    err,
						"method":         r.Method,
						"path":           r.URL.Path,
						"stack_trace":    string(stack[:stackSize]),
					}).Error("Erro não tratado na aplicação")

					http.Error(w, "Erro interno no servidor", http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
