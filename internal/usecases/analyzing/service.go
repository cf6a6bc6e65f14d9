package analyzing

import (
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/trendspotter/insight-engine/internal/domain"
	"github.com/trendspotter/insight-engine/internal/usecases/ranking"
	"github.com/trendspotter/insight-engine/pkg/utils"
)

type Service struct{}

func NewService() Analyzer {
	return &Service{}
}

// Aggregate reduz o subconjunto de registros dentro do período (inclusivo nas
// duas pontas) para o conjunto fixo de métricas: soma do custo, média do ROI e
// média da taxa de conversão expressa em porcentagem. Retorna nil para um
// subconjunto vazio: o resultado é indefinido, não zero, e o chamador decide o
// fallback explicitamente. Função pura de (records, period).
func Aggregate(records []domain.Record, period domain.Period) *domain.MetricSet {
	var (
		spend         float64
		roiSum        float64
		roiCount      int
		conversionSum float64
		filteredCount int
	)

	for _, record := range records {
		if !period.Contains(record.Date) {
			continue
		}

		filteredCount++
		spend += record.AcquisitionCost
		conversionSum += record.ConversionRate

		// Valores de ROI indefinidos (origem não numérica) ficam fora da média
		if record.ROI != nil {
			roiSum += *record.ROI
			roiCount++
		}
	}

	if filteredCount == 0 {
		return nil
	}

	metrics := &domain.MetricSet{
		Spend:      spend,
		Conversion: (conversionSum / float64(filteredCount)) * 100,
	}
	if roiCount > 0 {
		metrics.ROI = roiSum / float64(roiCount)
	}

	return metrics
}

// BuildClientReports executa os estágios de agregação, delta e ranking para
// cada cliente distinto, em ordem lexical para resultados reprodutíveis
func (s *Service) BuildClientReports(records []domain.Record, periods domain.ReportingPeriods) []*domain.ClientReport {
	companies := distinctCompanies(records)
	reports := make([]*domain.ClientReport, 0, len(companies))

	for _, company := range companies {
		logrus.WithField("company", company).Debug("analyzing: auditando cliente")

		clientRecords := filterByCompany(records, company)
		current := Aggregate(clientRecords, periods.Current)
		if current == nil {
			// Cliente sem registros no período corrente não gera relatório
			logrus.WithField("company", company).Info("analyzing: sem registros no período corrente, cliente pulado")
			continue
		}

		previous := Aggregate(clientRecords, periods.Previous)
		previousFallback := false
		if previous == nil {
			// Sem dados do período anterior: substituímos o sentinela e marcamos
			// o relatório para o renderizador sinalizar a ausência de histórico
			previous = domain.SentinelMetricSet()
			previousFallback = true
		}

		currentRecords := filterByPeriod(clientRecords, periods.Current)
		best := ranking.BestChannel(currentRecords)

		id, err := utils.GenerateID()
		if err != nil {
			logrus.WithError(err).Warn("analyzing: erro ao gerar o ID do relatório")
		}

		reports = append(reports, &domain.ClientReport{
			ID:               id,
			Company:          company,
			Current:          current,
			Previous:         previous,
			PreviousFallback: previousFallback,
			Delta:            domain.ComputeDelta(current, previous),
			BestChannel:      best.Channel,
			BestChannelROI:   best.MeanROI,
			Trend:            dailyROITrend(currentRecords),
			NarrativeStatus:  domain.NarrativePending,
		})
	}

	return reports
}

// dailyROITrend monta a série diária de ROI médio do período corrente,
// consumida pelo renderizador externo para o gráfico de tendência
func dailyROITrend(records []domain.Record) []domain.TrendPoint {
	type dayAgg struct {
		sum   float64
		count int
	}

	byDay := make(map[time.Time]*dayAgg)
	for _, record := range records {
		if record.ROI == nil {
			continue
		}
		day := time.Date(record.Date.Year(), record.Date.Month(), record.Date.Day(), 0, 0, 0, 0, record.Date.Location())
		agg, ok := byDay[day]
		if !ok {
			agg = &dayAgg{}
			byDay[day] = agg
		}
		agg.sum += *record.ROI
		agg.count++
	}

	trend := make([]domain.TrendPoint, 0, len(byDay))
	for day, agg := range byDay {
		trend = append(trend, domain.TrendPoint{
			Date: day,
			ROI:  utils.RoundWithTwoDecimalPlace(agg.sum / float64(agg.count)),
		})
	}

	sort.Slice(trend, func(i, j int) bool {
		return trend[i].Date.Before(trend[j].Date)
	})

	return trend
}

func distinctCompanies(records []domain.Record) []string {
	seen := make(map[string]struct{})
	companies := make([]string, 0)
	for _, record := range records {
		if _, ok := seen[record.Company]; ok {
			continue
		}
		seen[record.Company] = struct{}{}
		companies = append(companies, record.Company)
	}

	// Ordem determinista para execuções reprodutíveis
	sort.Strings(companies)
	return companies
}

func filterByCompany(records []domain.Record, company string) []domain.Record {
	filtered := make([]domain.Record, 0, len(records))
	for _, record := range records {
		if record.Company == company {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

func filterByPeriod(records []domain.Record, period domain.Period) []domain.Record {
	filtered := make([]domain.Record, 0, len(records))
	for _, record := range records {
		if period.Contains(record.Date) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}
