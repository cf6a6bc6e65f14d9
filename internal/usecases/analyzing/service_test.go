package analyzing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/trendspotter/insight-engine/internal/domain"
)

func roiPtr(v float64) *float64 {
	return &v
}

func day(d int) time.Time {
	return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
}

func marchPeriods() domain.ReportingPeriods {
	return domain.ResolvePeriods(day(18))
}

func TestAggregate(t *testing.T) {
	period := domain.Period{
		Tag:   domain.PeriodTagCurrent,
		Start: day(1),
		End:   day(18),
	}

	tests := []struct {
		name    string
		records []domain.Record
		want    *domain.MetricSet
	}{
		{
			name: "Soma de custo, média de ROI e conversão em porcentagem",
			records: []domain.Record{
				{Date: day(5), Company: "Acme Corp", Channel: "Search", AcquisitionCost: 700, ROI: roiPtr(3.0), ConversionRate: 0.10},
				{Date: day(12), Company: "Acme Corp", Channel: "Social", AcquisitionCost: 500, ROI: roiPtr(1.5), ConversionRate: 0.05},
			},
			want: &domain.MetricSet{Spend: 1200, ROI: 2.25, Conversion: 7.5},
		},
		{
			name: "Registros fora do período são ignorados",
			records: []domain.Record{
				{Date: day(5), Company: "Acme Corp", Channel: "Search", AcquisitionCost: 700, ROI: roiPtr(3.0), ConversionRate: 0.10},
				{Date: time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC), Company: "Acme Corp", Channel: "Search", AcquisitionCost: 9999, ROI: roiPtr(9.0), ConversionRate: 0.99},
			},
			want: &domain.MetricSet{Spend: 700, ROI: 3.0, Conversion: 10},
		},
		{
			name: "ROI indefinido fica fora da média mas o custo entra na soma",
			records: []domain.Record{
				{Date: day(5), Company: "Acme Corp", Channel: "Search", AcquisitionCost: 100, ROI: roiPtr(2.0), ConversionRate: 0.04},
				{Date: day(6), Company: "Acme Corp", Channel: "Search", AcquisitionCost: 300, ROI: nil, ConversionRate: 0.06},
			},
			want: &domain.MetricSet{Spend: 400, ROI: 2.0, Conversion: 5},
		},
		{
			name: "Todos os ROIs indefinidos resultam em ROI zero",
			records: []domain.Record{
				{Date: day(5), Company: "Acme Corp", Channel: "Search", AcquisitionCost: 100, ROI: nil, ConversionRate: 0.04},
			},
			want: &domain.MetricSet{Spend: 100, ROI: 0, Conversion: 4},
		},
		{
			name:    "Subconjunto vazio é indefinido, não zero",
			records: []domain.Record{},
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(tt.records, period)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}

			assert.NotNil(t, got)
			assert.InDelta(t, tt.want.Spend, got.Spend, 1e-9)
			assert.InDelta(t, tt.want.ROI, got.ROI, 1e-9)
			assert.InDelta(t, tt.want.Conversion, got.Conversion, 1e-9)
		})
	}
}

func TestAggregateIsOrderIndependent(t *testing.T) {
	period := domain.Period{Tag: domain.PeriodTagCurrent, Start: day(1), End: day(18)}
	records := []domain.Record{
		{Date: day(5), Company: "Acme Corp", Channel: "Search", AcquisitionCost: 700, ROI: roiPtr(3.0), ConversionRate: 0.10},
		{Date: day(12), Company: "Acme Corp", Channel: "Social", AcquisitionCost: 500, ROI: roiPtr(1.5), ConversionRate: 0.05},
		{Date: day(15), Company: "Acme Corp", Channel: "Email", AcquisitionCost: 250, ROI: nil, ConversionRate: 0.02},
	}
	reversed := []domain.Record{records[2], records[1], records[0]}

	assert.Equal(t, Aggregate(records, period), Aggregate(reversed, period))
}

func TestBuildClientReports(t *testing.T) {
	service := NewService()

	t.Run("Cliente com dados nos dois períodos", func(t *testing.T) {
		records := []domain.Record{
			{Date: day(5), Company: "Acme Corp", Channel: "Search", AcquisitionCost: 700, ROI: roiPtr(3.0), ConversionRate: 0.10},
			{Date: day(12), Company: "Acme Corp", Channel: "Social", AcquisitionCost: 500, ROI: roiPtr(1.5), ConversionRate: 0.05},
			{Date: time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC), Company: "Acme Corp", Channel: "Search", AcquisitionCost: 600, ROI: roiPtr(2.0), ConversionRate: 0.05},
		}

		reports := service.BuildClientReports(records, marchPeriods())

		assert.Len(t, reports, 1)
		report := reports[0]
		assert.Equal(t, "Acme Corp", report.Company)
		assert.NotEmpty(t, report.ID)

		assert.InDelta(t, 1200, report.Current.Spend, 1e-9)
		assert.InDelta(t, 2.25, report.Current.ROI, 1e-9)
		assert.InDelta(t, 7.5, report.Current.Conversion, 1e-9)

		assert.False(t, report.PreviousFallback)
		assert.InDelta(t, 600, report.Previous.Spend, 1e-9)

		assert.Equal(t, "Search", report.BestChannel)
		assert.InDelta(t, 3.0, report.BestChannelROI, 1e-9)

		assert.Equal(t, domain.NarrativePending, report.NarrativeStatus)
		assert.NotNil(t, report.Delta)
		assert.InDelta(t, 100, report.Delta.SpendPct, 1e-9)
	})

	t.Run("Cliente sem histórico recebe o sentinela e o marcador de fallback", func(t *testing.T) {
		records := []domain.Record{
			{Date: day(5), Company: "Acme Corp", Channel: "Search", AcquisitionCost: 700, ROI: roiPtr(3.0), ConversionRate: 0.10},
		}

		reports := service.BuildClientReports(records, marchPeriods())

		assert.Len(t, reports, 1)
		assert.True(t, reports[0].PreviousFallback)
		assert.Equal(t, domain.SentinelMetricSet(), reports[0].Previous)
		assert.NotNil(t, reports[0].Delta)
	})

	t.Run("Cliente sem registros no período corrente é pulado", func(t *testing.T) {
		records := []domain.Record{
			{Date: day(5), Company: "Acme Corp", Channel: "Search", AcquisitionCost: 700, ROI: roiPtr(3.0), ConversionRate: 0.10},
			{Date: time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC), Company: "Beta LLC", Channel: "Email", AcquisitionCost: 200, ROI: roiPtr(1.0), ConversionRate: 0.03},
		}

		reports := service.BuildClientReports(records, marchPeriods())

		assert.Len(t, reports, 1)
		assert.Equal(t, "Acme Corp", reports[0].Company)
	})

	t.Run("Clientes em ordem lexical independente da ordem de entrada", func(t *testing.T) {
		records := []domain.Record{
			{Date: day(5), Company: "Zeta Inc", Channel: "Search", AcquisitionCost: 100, ROI: roiPtr(1.0), ConversionRate: 0.01},
			{Date: day(6), Company: "Acme Corp", Channel: "Search", AcquisitionCost: 100, ROI: roiPtr(1.0), ConversionRate: 0.01},
			{Date: day(7), Company: "Midway Co", Channel: "Search", AcquisitionCost: 100, ROI: roiPtr(1.0), ConversionRate: 0.01},
		}

		reports := service.BuildClientReports(records, marchPeriods())

		assert.Len(t, reports, 3)
		assert.Equal(t, "Acme Corp", reports[0].Company)
		assert.Equal(t, "Midway Co", reports[1].Company)
		assert.Equal(t, "Zeta Inc", reports[2].Company)
	})

	t.Run("Tendência diária de ROI ordenada por data", func(t *testing.T) {
		records := []domain.Record{
			{Date: day(12), Company: "Acme Corp", Channel: "Search", AcquisitionCost: 100, ROI: roiPtr(2.0), ConversionRate: 0.01},
			{Date: day(5), Company: "Acme Corp", Channel: "Search", AcquisitionCost: 100, ROI: roiPtr(1.0), ConversionRate: 0.01},
			{Date: day(5), Company: "Acme Corp", Channel: "Social", AcquisitionCost: 100, ROI: roiPtr(2.0), ConversionRate: 0.01},
		}

		reports := service.BuildClientReports(records, marchPeriods())

		assert.Len(t, reports, 1)
		trend := reports[0].Trend
		assert.Len(t, trend, 2)
		assert.Equal(t, day(5), trend[0].Date)
		assert.InDelta(t, 1.5, trend[0].ROI, 1e-9)
		assert.Equal(t, day(12), trend[1].Date)
		assert.InDelta(t, 2.0, trend[1].ROI, 1e-9)
	})
}
