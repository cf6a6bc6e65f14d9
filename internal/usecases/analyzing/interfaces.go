package analyzing

import (
	"github.com/trendspotter/insight-engine/internal/domain"
)

// Analyzer transforma os registros brutos de uma execução nos relatórios
// estruturados por cliente, com métricas, deltas e melhor canal já resolvidos
type Analyzer interface {
	// BuildClientReports cria exatamente um ClientReport por cliente com
	// registros no período corrente; clientes sem registros correntes são
	// pulados, nunca reportados com métricas zeradas
	BuildClientReports(records []domain.Record, periods domain.ReportingPeriods) []*domain.ClientReport
}
