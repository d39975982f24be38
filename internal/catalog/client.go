package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/tidwall/gjson"

	"github.com/Adityakumarsinghstm/ChatBot/internal/config"
	"github.com/Adityakumarsinghstm/ChatBot/internal/models"
)

// listFields are the payload keys probed for the product list, in priority
// order. The first key present wins even when its value is not an array.
var listFields = []string{"content", "items", "products"}

const (
	reasonInvalidJSON = "invalid-json"
	reasonNotArray    = "not-an-array"
)

// maxErrorBody caps how much of a failed response is kept in the error.
const maxErrorBody = 4 << 10

// Client fetches the product list from the catalog source. Every failure is a
// *models.FetchError; retries are left to the next request.
type Client interface {
	Fetch(ctx context.Context) ([]models.Product, error)
}

type client struct {
	httpClient *http.Client
	url        string
}

func NewClient(cfg config.CatalogConfig) Client {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		url: cfg.URL,
	}
}

func (c *client) Fetch(ctx context.Context) ([]models.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, &models.FetchError{Err: fmt.Errorf("create request: %w", err)}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &models.FetchError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &models.FetchError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &models.FetchError{Err: fmt.Errorf("read response: %w", err)}
	}

	return extractProducts(body)
}

// extractProducts locates the product list inside an arbitrary source payload
// and decodes it. The payload is either a bare array or an object carrying the
// list under one of the known keys.
func extractProducts(body []byte) ([]models.Product, error) {
	if !gjson.ValidBytes(body) {
		return nil, &models.FetchError{Reason: reasonInvalidJSON}
	}

	candidate := gjson.ParseBytes(body)
	if candidate.IsObject() {
		for _, field := range listFields {
			if v := candidate.Get(field); v.Exists() {
				candidate = v
				break
			}
		}
	}
	if !candidate.IsArray() {
		return nil, &models.FetchError{Reason: reasonNotArray}
	}

	var products []models.Product
	if err := json.Unmarshal([]byte(candidate.Raw), &products); err != nil {
		return nil, &models.FetchError{Err: fmt.Errorf("decode products: %w", err)}
	}
	return products, nil
}
