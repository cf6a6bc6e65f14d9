package narrating

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/trendspotter/insight-engine/infrastructure/integrator/gemini"
	gemdomain "github.com/trendspotter/insight-engine/infrastructure/integrator/gemini/domain"
	"github.com/trendspotter/insight-engine/internal/domain"
)

// Narrativas fixas dos modos degradados. A geração nunca derruba um relatório:
// falha por cliente vira o texto de fallback e os demais clientes seguem.
const (
	FallbackNarrative = "AI Unavailable."
	DemoNarrative     = "Demo Mode: AI analysis skipped."
)

// Narrator preenche o segundo estágio de cada ClientReport: a narrativa
type Narrator interface {
	GenerateAll(ctx context.Context, capability gemdomain.ModelCapability, periodLabel string, reports []*domain.ClientReport)
}

type Service struct {
	gemini gemini.GeminiIntegrator
}

func NewService(geminiService gemini.GeminiIntegrator) Narrator {
	return &Service{gemini: geminiService}
}

// GenerateAll percorre os relatórios em sequência, bloqueando em uma única
// chamada externa por cliente. Sem modelo disponível, todos os clientes são
// marcados como SKIPPED com a narrativa de modo demo. Nenhuma nova tentativa
// é feita: uma chamada por cliente por execução.
func (s *Service) GenerateAll(ctx context.Context, capability gemdomain.ModelCapability, periodLabel string, reports []*domain.ClientReport) {
	for _, report := range reports {
		if !capability.Available {
			report.Narrative = DemoNarrative
			report.NarrativeStatus = domain.NarrativeSkipped
			continue
		}

		s.generate(ctx, capability.ModelName, periodLabel, report)
	}
}

func (s *Service) generate(ctx context.Context, modelName string, periodLabel string, report *domain.ClientReport) {
	logrus.WithFields(logrus.Fields{
		"company": report.Company,
		"model":   modelName,
	}).Info("narrating: escrevendo o resumo executivo do cliente")

	report.NarrativeStatus = domain.NarrativeGenerating
	prompt := BuildPrompt(report, periodLabel)

	text, err := s.gemini.GenerateNarrative(ctx, modelName, prompt)
	if err != nil {
		logrus.WithError(err).WithField("company", report.Company).Error("narrating: falha na geração, usando narrativa de fallback")
		report.Narrative = FallbackNarrative
		report.NarrativeStatus = domain.NarrativeFailed
		return
	}

	report.Narrative = sanitizeNarrative(text)
	report.NarrativeStatus = domain.NarrativeDone
}
