package models

// ChatRequest is the inbound payload for the chat endpoint.
type ChatRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

// ChatResponse carries the generated reply plus bookkeeping about the context
// that produced it.
type ChatResponse struct {
	Reply           string `json:"reply"`
	EstimatedTokens int    `json:"estimated_tokens"`
	ProductsUsed    int    `json:"products_used"`
}
