package llm

import (
	"context"
	"fmt"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"google.golang.org/genai"

	"github.com/Adityakumarsinghstm/ChatBot/internal/config"
	"github.com/Adityakumarsinghstm/ChatBot/internal/models"
	"github.com/Adityakumarsinghstm/ChatBot/pkg/util"
)

// Engine turns a fully built prompt into reply text. Generation limits are
// configured on the engine, never derived from the prompt.
type Engine interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type genkitEngine struct {
	genkit *genkit.Genkit
	model  string
	config *genai.GenerateContentConfig
}

func NewEngine(g *genkit.Genkit, cfg config.LLMConfig) Engine {
	return &genkitEngine{
		genkit: g,
		model:  cfg.Model,
		config: &genai.GenerateContentConfig{
			Temperature:     util.Ptr(cfg.Temperature),
			MaxOutputTokens: cfg.MaxOutputTokens,
		},
	}
}

func (e *genkitEngine) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := genkit.Generate(ctx, e.genkit,
		ai.WithMessages(ai.NewUserTextMessage(prompt)),
		ai.WithModelName(e.model),
		ai.WithConfig(e.config),
	)
	if err != nil {
		return "", &models.GenerationError{Err: err}
	}

	text := resp.Text()
	if text == "" {
		return "", &models.GenerationError{Err: fmt.Errorf("model %s returned an empty reply", e.model)}
	}

	log.Debugw(ctx, "reply generated", "model", e.model, "chars", len(text))
	return text, nil
}
