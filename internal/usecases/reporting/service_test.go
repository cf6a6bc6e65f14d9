package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gemdomain "github.com/trendspotter/insight-engine/infrastructure/integrator/gemini/domain"
	"github.com/trendspotter/insight-engine/infrastructure/integrator/gemini/mocks"
	"github.com/trendspotter/insight-engine/internal/config"
	"github.com/trendspotter/insight-engine/internal/domain"
	"github.com/trendspotter/insight-engine/internal/usecases/analyzing"
	"github.com/trendspotter/insight-engine/internal/usecases/narrating"
	"go.uber.org/mock/gomock"
)

type stubLoader struct {
	records []domain.Record
	err     error
}

func (l *stubLoader) Load(path string) ([]domain.Record, error) {
	return l.records, l.err
}

func roiPtr(v float64) *float64 {
	return &v
}

func sampleRecords() []domain.Record {
	return []domain.Record{
		{Date: time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), Company: "Acme Corp", Channel: "Search", AcquisitionCost: 700, ROI: roiPtr(3.0), ConversionRate: 0.10},
		{Date: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), Company: "Acme Corp", Channel: "Social", AcquisitionCost: 500, ROI: roiPtr(1.5), ConversionRate: 0.05},
		{Date: time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC), Company: "Acme Corp", Channel: "Search", AcquisitionCost: 600, ROI: roiPtr(2.0), ConversionRate: 0.05},
	}
}

func newPipeline(t *testing.T, loader Loader, mockGemini *mocks.MockGeminiIntegrator) Reporter {
	t.Helper()
	cfg := &config.Config{Dataset: config.Dataset{Path: "testdata/marketing.csv"}}
	return NewService(cfg, loader, analyzing.NewService(), mockGemini, narrating.NewService(mockGemini))
}

func TestRun(t *testing.T) {
	t.Run("Pipeline completo com modelo disponível", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockGemini := mocks.NewMockGeminiIntegrator(ctrl)
		mockGemini.EXPECT().
			FindWorkingModel(gomock.Any()).
			Return(gemdomain.ModelCapability{ModelName: "models/gemini-1.5-pro", Available: true}, nil)
		mockGemini.EXPECT().
			GenerateNarrative(gomock.Any(), "models/gemini-1.5-pro", gomock.Any()).
			Return("Great month.", nil)

		service := newPipeline(t, &stubLoader{records: sampleRecords()}, mockGemini)

		result, err := service.Run(context.Background())

		require.NoError(t, err)
		assert.NotEmpty(t, result.Summary.RunID)
		assert.Equal(t, "March 2025", result.Summary.PeriodLabel)
		assert.Equal(t, "models/gemini-1.5-pro", result.Summary.ModelName)
		assert.True(t, result.Summary.ModelAvailable)
		assert.Equal(t, 1, result.Summary.ClientCount)
		assert.Equal(t, 3, result.Summary.RecordCount)

		require.Len(t, result.Reports, 1)
		assert.Equal(t, "Great month.", result.Reports[0].Narrative)
		assert.Equal(t, domain.NarrativeDone, result.Reports[0].NarrativeStatus)

		// O resultado fica disponível para a API imediatamente após a execução
		assert.Equal(t, result, service.LatestRun())
	})

	t.Run("Falha na descoberta de capacidade degrada para modo demo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockGemini := mocks.NewMockGeminiIntegrator(ctrl)
		mockGemini.EXPECT().
			FindWorkingModel(gomock.Any()).
			Return(gemdomain.ModelCapability{Available: false}, assert.AnError)

		service := newPipeline(t, &stubLoader{records: sampleRecords()}, mockGemini)

		result, err := service.Run(context.Background())

		require.NoError(t, err)
		assert.False(t, result.Summary.ModelAvailable)
		require.Len(t, result.Reports, 1)
		assert.Equal(t, narrating.DemoNarrative, result.Reports[0].Narrative)
		assert.Equal(t, domain.NarrativeSkipped, result.Reports[0].NarrativeStatus)
	})

	t.Run("Erro de ingestão aborta a execução sem atualizar o resultado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockGemini := mocks.NewMockGeminiIntegrator(ctrl)

		service := newPipeline(t, &stubLoader{err: assert.AnError}, mockGemini)

		result, err := service.Run(context.Background())

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Nil(t, service.LatestRun())
	})
}

func TestLatestRunBeforeFirstExecution(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newPipeline(t, &stubLoader{}, mocks.NewMockGeminiIntegrator(ctrl))

	assert.Nil(t, service.LatestRun())
}
