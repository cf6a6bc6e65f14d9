package gemini

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	gemdomain "github.com/trendspotter/insight-engine/infrastructure/integrator/gemini/domain"
	"github.com/trendspotter/insight-engine/infrastructure/integrator/gemini/geminiclient"
	"github.com/trendspotter/insight-engine/internal/config"
)

// GeminiIntegrator define a descoberta de capacidade e a geração de narrativas.
// A descoberta roda uma vez por execução, antes do loop de clientes; a geração
// é uma chamada síncrona por cliente.
type GeminiIntegrator interface {
	FindWorkingModel(ctx context.Context) (gemdomain.ModelCapability, error)
	GenerateNarrative(ctx context.Context, modelName string, prompt string) (string, error)
}

type GeminiService struct {
	cfg    *config.Config
	Client geminiclient.Client
}

// New cria o integrador do Gemini. O client pode ser nil quando nenhuma
// credencial foi informada: a descoberta então reporta indisponibilidade e a
// execução segue em modo demo.
func New(cfg *config.Config, client geminiclient.Client) GeminiIntegrator {
	return &GeminiService{
		cfg:    cfg,
		Client: client,
	}
}

// FindWorkingModel enumera os modelos autorizados para a credencial e resolve
// um único identificador utilizável: primeiro pela lista de prioridades (mais
// capaz primeiro), depois pelo primeiro identificador contendo o marcador de
// família. Falha na descoberta nunca é fatal para a execução.
func (s *GeminiService) FindWorkingModel(ctx context.Context) (gemdomain.ModelCapability, error) {
	if s.Client == nil {
		logrus.Info("gemini: nenhuma credencial configurada, executando em modo demo")
		return gemdomain.ModelCapability{Available: false}, nil
	}

	logrus.Info("gemini: procurando modelos de IA disponíveis")

	models, err := s.Client.ListModels(ctx)
	if err != nil {
		logrus.WithError(err).Error("gemini: falha na descoberta de capacidade")
		return gemdomain.ModelCapability{Available: false}, err
	}

	available := make([]string, 0, len(models))
	for _, model := range models {
		if model.SupportsGeneration() {
			available = append(available, model.Name)
		}
	}

	// Lógica de prioridade: melhor raciocínio -> mais rápido -> legado
	for _, priority := range s.cfg.Gemini.ModelPriorities {
		for _, name := range available {
			if name == priority {
				logrus.WithField("model", name).Info("gemini: modelo resolvido pela lista de prioridades")
				return gemdomain.ModelCapability{ModelName: name, Available: true}, nil
			}
		}
	}

	// Último recurso: primeiro identificador disponível da família
	for _, name := range available {
		if s.cfg.Gemini.FamilyMarker != "" && strings.Contains(name, s.cfg.Gemini.FamilyMarker) {
			logrus.WithField("model", name).Info("gemini: modelo resolvido pelo marcador de família")
			return gemdomain.ModelCapability{ModelName: name, Available: true}, nil
		}
	}

	logrus.WithField("available_models", len(available)).Warn("gemini: nenhum modelo compatível encontrado")
	return gemdomain.ModelCapability{Available: false}, nil
}

// GenerateNarrative executa uma única chamada de geração com a configuração
// compartilhada da execução, limitada pelo timeout configurado. A expiração do
// timeout é tratada como qualquer outra falha de geração.
func (s *GeminiService) GenerateNarrative(ctx context.Context, modelName string, prompt string) (string, error) {
	timeout := time.Duration(s.cfg.Gemini.GenerationTimeoutSecs) * time.Second
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	settings := gemdomain.GenerationSettings{
		Temperature: s.cfg.Gemini.Temperature,
		TopK:        s.cfg.Gemini.TopK,
	}

	return s.Client.GenerateContent(ctx, modelName, prompt, settings)
}
