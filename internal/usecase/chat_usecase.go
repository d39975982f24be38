package usecase

import (
	"context"
	"math"
	"strings"

	log "github.com/carousell/ct-go/pkg/logger/log_context"

	"github.com/Adityakumarsinghstm/ChatBot/internal/catalog"
	"github.com/Adityakumarsinghstm/ChatBot/internal/llm"
	"github.com/Adityakumarsinghstm/ChatBot/internal/models"
	"github.com/Adityakumarsinghstm/ChatBot/internal/prompt"
)

// tokensPerWord converts a word count into the rough token estimate reported
// to API clients.
const tokensPerWord = 1.33

type ChatUsecase interface {
	Chat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error)
}

type chatUsecase struct {
	catalog catalog.Cache
	builder *prompt.Builder
	engine  llm.Engine
}

func NewChatUsecase(catalogCache catalog.Cache, builder *prompt.Builder, engine llm.Engine) ChatUsecase {
	return &chatUsecase{
		catalog: catalogCache,
		builder: builder,
		engine:  engine,
	}
}

// Chat runs the full pipeline: catalog snapshot, prompt construction, reply
// generation, response assembly. The first failure aborts the request; there
// is no partial success.
func (uc *chatUsecase) Chat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	query := strings.TrimSpace(req.Prompt)
	if query == "" {
		return nil, &models.ValidationError{Field: "prompt", Reason: "must be a non-empty string"}
	}

	products, err := uc.catalog.Get(ctx)
	if err != nil {
		return nil, err
	}

	instruction := uc.builder.Build(query, products)
	log.Debugw(ctx, "prompt built", "products", len(products), "chars", len(instruction))

	reply, err := uc.engine.Generate(ctx, instruction)
	if err != nil {
		return nil, err
	}

	resp := &models.ChatResponse{
		Reply:           reply,
		EstimatedTokens: estimateTokens(reply),
		ProductsUsed:    len(products),
	}
	log.Infow(ctx, "chat request served",
		"products_used", resp.ProductsUsed,
		"estimated_tokens", resp.EstimatedTokens,
	)
	return resp, nil
}

// estimateTokens approximates the token count of a reply from its word count.
func estimateTokens(text string) int {
	words := len(strings.Fields(text))
	return int(math.Ceil(float64(words) * tokensPerWord))
}
