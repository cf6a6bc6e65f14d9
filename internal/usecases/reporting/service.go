package reporting

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/trendspotter/insight-engine/infrastructure/integrator/gemini"
	"github.com/trendspotter/insight-engine/internal/config"
	"github.com/trendspotter/insight-engine/internal/domain"
	"github.com/trendspotter/insight-engine/internal/usecases/analyzing"
	"github.com/trendspotter/insight-engine/internal/usecases/narrating"
	"github.com/trendspotter/insight-engine/pkg/utils"
)

// Loader define a ingestão do dataset consumida pelo orquestrador
type Loader interface {
	Load(path string) ([]domain.Record, error)
}

// Reporter orquestra o pipeline completo de uma execução e guarda o resultado
// mais recente em memória para a API. Nada é persistido entre execuções.
type Reporter interface {
	Run(ctx context.Context) (*domain.RunResult, error)
	LatestRun() *domain.RunResult
}

type Service struct {
	cfg      *config.Config
	loader   Loader
	analyzer analyzing.Analyzer
	gemini   gemini.GeminiIntegrator
	narrator narrating.Narrator

	runMutex sync.Mutex
	mu       sync.RWMutex
	latest   *domain.RunResult
}

func NewService(
	cfg *config.Config,
	loader Loader,
	analyzer analyzing.Analyzer,
	geminiService gemini.GeminiIntegrator,
	narrator narrating.Narrator,
) Reporter {
	return &Service{
		cfg:      cfg,
		loader:   loader,
		analyzer: analyzer,
		gemini:   geminiService,
		narrator: narrator,
	}
}

// Run executa o pipeline sequencial: ingestão, resolução de períodos, um
// ClientReport por cliente, descoberta de capacidade (uma vez, antes do loop
// de narrativas) e geração de narrativas. Todo o estado vive neste contexto de
// execução; nenhum estágio lê estado global. Erros de dados abortam a
// execução; falha de descoberta ou de geração apenas degrada o resultado.
func (s *Service) Run(ctx context.Context) (*domain.RunResult, error) {
	// No máximo um pipeline por vez: API e agendador disparam o mesmo serviço
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	startedAt := time.Now()
	logrus.WithField("dataset", s.cfg.Dataset.Path).Info("reporting: iniciando execução do pipeline")

	records, err := s.loader.Load(s.cfg.Dataset.Path)
	if err != nil {
		return nil, err
	}

	periods := domain.ResolvePeriods(maxDate(records))
	logrus.WithFields(logrus.Fields{
		"period":         periods.Label,
		"current_start":  periods.Current.Start.Format(time.DateOnly),
		"current_end":    periods.Current.End.Format(time.DateOnly),
		"previous_start": periods.Previous.Start.Format(time.DateOnly),
		"previous_end":   periods.Previous.End.Format(time.DateOnly),
	}).Info("reporting: análise mês a mês")

	reports := s.analyzer.BuildClientReports(records, periods)

	capability, err := s.gemini.FindWorkingModel(ctx)
	if err != nil {
		// Falha de descoberta é não fatal: a execução segue em modo demo
		logrus.WithError(err).Warn("reporting: descoberta de capacidade falhou, seguindo em modo demo")
	}

	s.narrator.GenerateAll(ctx, capability, periods.Label, reports)

	runID, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Warn("reporting: erro ao gerar o ID da execução")
	}

	result := &domain.RunResult{
		Summary: domain.RunSummary{
			RunID:          runID,
			PeriodLabel:    periods.Label,
			ModelName:      capability.ModelName,
			ModelAvailable: capability.Available,
			ClientCount:    len(reports),
			RecordCount:    len(records),
			StartedAt:      startedAt,
			CompletedAt:    time.Now(),
		},
		Reports: reports,
	}

	s.mu.Lock()
	s.latest = result
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"run_id":  runID,
		"clients": len(reports),
		"period":  periods.Label,
	}).Info("reporting: execução concluída")

	return result, nil
}

// LatestRun retorna o resultado da execução mais recente, ou nil antes da primeira
func (s *Service) LatestRun() *domain.RunResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

func maxDate(records []domain.Record) time.Time {
	var max time.Time
	for _, record := range records {
		if record.Date.After(max) {
			max = record.Date
		}
	}
	return max
}
