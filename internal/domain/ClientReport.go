package domain

import (
	"time"
)

// NarrativeStatus acompanha o ciclo de vida da narrativa de um relatório
type NarrativeStatus string

const (
	NarrativePending    NarrativeStatus = "PENDING"
	NarrativeGenerating NarrativeStatus = "GENERATING"
	NarrativeDone       NarrativeStatus = "DONE"
	// NarrativeSkipped indica execução em modo demo (nenhum modelo disponível)
	NarrativeSkipped NarrativeStatus = "SKIPPED"
	// NarrativeFailed indica falha localizada na chamada de geração deste cliente
	NarrativeFailed NarrativeStatus = "FAILED"
)

// TrendPoint é um ponto da série diária de ROI consumida pelo renderizador externo
type TrendPoint struct {
	Date time.Time `json:"date"`
	ROI  float64   `json:"roi"`
}

// ClientReport é o relatório estruturado de um cliente para uma execução.
// Exatamente um por cliente com registros no período corrente; criado uma vez,
// mutado em dois estágios (métricas/delta e depois narrativa) e somente leitura
// em seguida.
type ClientReport struct {
	ID      string `json:"id"`
	Company string `json:"company"`

	Current  *MetricSet `json:"current"`
	Previous *MetricSet `json:"previous"`
	// PreviousFallback indica que Previous é o MetricSet sentinela por ausência
	// de registros no período anterior
	PreviousFallback bool      `json:"previous_fallback"`
	Delta            *DeltaSet `json:"delta"`

	BestChannel    string  `json:"best_channel"`
	BestChannelROI float64 `json:"best_channel_roi"`

	Trend []TrendPoint `json:"trend"`

	Narrative       string          `json:"narrative"`
	NarrativeStatus NarrativeStatus `json:"narrative_status"`
}

// RunSummary descreve os metadados de uma execução do pipeline
type RunSummary struct {
	RunID          string    `json:"run_id"`
	PeriodLabel    string    `json:"period_label"`
	ModelName      string    `json:"model_name,omitempty"`
	ModelAvailable bool      `json:"model_available"`
	ClientCount    int       `json:"client_count"`
	RecordCount    int       `json:"record_count"`
	StartedAt      time.Time `json:"started_at"`
	CompletedAt    time.Time `json:"completed_at"`
}

// RunResult agrupa os relatórios de todos os clientes de uma execução.
// Somente leitura após o pipeline completar.
type RunResult struct {
	Summary RunSummary      `json:"summary"`
	Reports []*ClientReport `json:"reports"`
}

// ReportByCompany retorna o relatório do cliente informado, ou nil se não existir
func (r *RunResult) ReportByCompany(company string) *ClientReport {
	if r == nil {
		return nil
	}
	for _, report := range r.Reports {
		if report.Company == company {
			return report
		}
	}
	return nil
}
