package narrating

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gemdomain "github.com/trendspotter/insight-engine/infrastructure/integrator/gemini/domain"
	"github.com/trendspotter/insight-engine/infrastructure/integrator/gemini/mocks"
	"github.com/trendspotter/insight-engine/internal/domain"
	"github.com/trendspotter/insight-engine/internal/usecases/ranking"
	"go.uber.org/mock/gomock"
)

func sampleReport(company string) *domain.ClientReport {
	return &domain.ClientReport{
		Company:         company,
		Current:         &domain.MetricSet{Spend: 1200, ROI: 2.25, Conversion: 7.5},
		Previous:        &domain.MetricSet{Spend: 600, ROI: 2.0, Conversion: 5},
		Delta:           &domain.DeltaSet{SpendPct: 100, ROIPct: 12.5, ConversionPct: 50},
		BestChannel:     "Search",
		BestChannelROI:  3.0,
		NarrativeStatus: domain.NarrativePending,
	}
}

func TestGenerateAllWithoutModel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma chamada externa pode acontecer em modo demo
	mockGemini := mocks.NewMockGeminiIntegrator(ctrl)

	service := NewService(mockGemini)
	reports := []*domain.ClientReport{sampleReport("Acme Corp"), sampleReport("Beta LLC")}

	service.GenerateAll(context.Background(), gemdomain.ModelCapability{Available: false}, "March 2025", reports)

	for _, report := range reports {
		assert.Equal(t, DemoNarrative, report.Narrative)
		assert.Equal(t, domain.NarrativeSkipped, report.NarrativeStatus)
	}
}

func TestGenerateAll(t *testing.T) {
	capability := gemdomain.ModelCapability{ModelName: "models/gemini-1.5-pro", Available: true}

	t.Run("Narrativa gerada e sanitizada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockGemini := mocks.NewMockGeminiIntegrator(ctrl)
		mockGemini.EXPECT().
			GenerateNarrative(gomock.Any(), "models/gemini-1.5-pro", gomock.Any()).
			Return("## Recap\n**Strong** month for Acme Corp.  ", nil)

		service := NewService(mockGemini)
		reports := []*domain.ClientReport{sampleReport("Acme Corp")}

		service.GenerateAll(context.Background(), capability, "March 2025", reports)

		assert.Equal(t, "Recap\nStrong month for Acme Corp.", reports[0].Narrative)
		assert.Equal(t, domain.NarrativeDone, reports[0].NarrativeStatus)
	})

	t.Run("Falha em um cliente não interrompe os demais", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockGemini := mocks.NewMockGeminiIntegrator(ctrl)
		gomock.InOrder(
			mockGemini.EXPECT().
				GenerateNarrative(gomock.Any(), "models/gemini-1.5-pro", gomock.Any()).
				Return("", errors.New("deadline exceeded")),
			mockGemini.EXPECT().
				GenerateNarrative(gomock.Any(), "models/gemini-1.5-pro", gomock.Any()).
				Return("Solid performance.", nil),
		)

		service := NewService(mockGemini)
		reports := []*domain.ClientReport{sampleReport("Acme Corp"), sampleReport("Beta LLC")}

		service.GenerateAll(context.Background(), capability, "March 2025", reports)

		assert.Equal(t, FallbackNarrative, reports[0].Narrative)
		assert.Equal(t, domain.NarrativeFailed, reports[0].NarrativeStatus)

		assert.Equal(t, "Solid performance.", reports[1].Narrative)
		assert.Equal(t, domain.NarrativeDone, reports[1].NarrativeStatus)
	})
}

func TestBuildPrompt(t *testing.T) {
	report := sampleReport("Acme Corp")

	prompt := BuildPrompt(report, "March 2025")

	assert.Contains(t, prompt, `CLIENT: "Acme Corp"`)
	assert.Contains(t, prompt, "PERIOD: March 2025")
	assert.Contains(t, prompt, "Spend: $1,200 (INCREASED 100.0%)")
	assert.Contains(t, prompt, "ROI: 2.25x (Trending UP 12.5%)")
	assert.Contains(t, prompt, "Top Channel: Search (3.00x ROI)")
}

func TestBuildPromptUndefinedChannel(t *testing.T) {
	report := sampleReport("Acme Corp")
	report.BestChannel = ranking.UndefinedChannel
	report.BestChannelROI = 0

	prompt := BuildPrompt(report, "March 2025")

	// Sem ROI definido em nenhum registro, o fato do canal vira N/A em vez
	// de um nome de canal vazio
	assert.Contains(t, prompt, "Top Channel: N/A (0.00x ROI)")
}

func TestBuildPromptNegativeDeltas(t *testing.T) {
	report := sampleReport("Acme Corp")
	report.Delta = &domain.DeltaSet{SpendPct: -25, ROIPct: -10, ConversionPct: -5}

	prompt := BuildPrompt(report, "March 2025")

	// A direção vai nas palavras; a magnitude é sempre absoluta
	assert.Contains(t, prompt, "DECREASED 25.0%")
	assert.Contains(t, prompt, "Trending DOWN 10.0%")
	assert.NotContains(t, prompt, "-25.0%")
}

func TestSanitizeNarrative(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Remove ênfase de markdown", "**Bold** move", "Bold move"},
		{"Remove cabeçalhos de markdown", "## Recap\ntext", "Recap\ntext"},
		{"Normaliza espaços nas bordas", "  plain text \n", "plain text"},
		{"Texto limpo passa intacto", "already clean", "already clean"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeNarrative(tt.in))
		})
	}
}
