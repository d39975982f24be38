package app

import (
	"context"

	"github.com/firebase/genkit/go/genkit"
	"github.com/firebase/genkit/go/plugins/googlegenai"

	"github.com/Adityakumarsinghstm/ChatBot/internal/catalog"
	"github.com/Adityakumarsinghstm/ChatBot/internal/config"
	"github.com/Adityakumarsinghstm/ChatBot/internal/llm"
	"github.com/Adityakumarsinghstm/ChatBot/internal/prompt"
)

func newGenkitClient(cfg *config.Config) (*genkit.Genkit, error) {
	ctx := context.Background()
	googleAI := &googlegenai.GoogleAI{
		APIKey: cfg.LLM.GoogleAIAPIKey,
	}
	return genkit.Init(ctx, genkit.WithPlugins(googleAI)), nil
}

func newCatalogClient(cfg *config.Config) catalog.Client {
	return catalog.NewClient(cfg.Catalog)
}

func newPromptBuilder(cfg *config.Config) (*prompt.Builder, error) {
	return prompt.NewBuilder(cfg.Prompt.Template)
}

func newLLMEngine(g *genkit.Genkit, cfg *config.Config) llm.Engine {
	return llm.NewEngine(g, cfg.LLM)
}
