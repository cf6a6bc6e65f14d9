package geminiclient

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	gemdomain "github.com/trendspotter/insight-engine/infrastructure/integrator/gemini/domain"
	"github.com/trendspotter/insight-engine/internal/config"
	"google.golang.org/genai"
)

type Client interface {
	// ListModels enumera os modelos que a credencial atual está autorizada a usar
	ListModels(ctx context.Context) ([]gemdomain.ModelInfo, error)
	// GenerateContent envia um prompt ao modelo informado e retorna o texto gerado
	GenerateContent(ctx context.Context, modelName string, prompt string, settings gemdomain.GenerationSettings) (string, error)
}

// GeminiClient encapsula o SDK oficial google.golang.org/genai
type GeminiClient struct {
	client *genai.Client
}

func NewClient(ctx context.Context, cfg *config.Config) (Client, error) {
	if cfg.Gemini.APIKey == "" {
		return nil, errors.New("credencial do Gemini não informada")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.Gemini.APIKey,
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar o cliente do Gemini")
	}

	return &GeminiClient{client: client}, nil
}

func (c *GeminiClient) ListModels(ctx context.Context) ([]gemdomain.ModelInfo, error) {
	models := make([]gemdomain.ModelInfo, 0)

	for model, err := range c.client.Models.All(ctx) {
		if err != nil {
			return nil, errors.Wrap(err, "erro ao enumerar os modelos disponíveis")
		}
		models = append(models, gemdomain.ModelInfo{
			Name:             model.Name,
			SupportedActions: model.SupportedActions,
		})
	}

	return models, nil
}

func (c *GeminiClient) GenerateContent(ctx context.Context, modelName string, prompt string, settings gemdomain.GenerationSettings) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx,
		modelName,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature: genai.Ptr(settings.Temperature),
			TopK:        genai.Ptr(settings.TopK),
		},
	)
	if err != nil {
		return "", errors.Wrapf(err, "erro na geração de conteúdo com o modelo %s", modelName)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("o modelo %s retornou uma resposta vazia", modelName)
	}

	return text, nil
}
