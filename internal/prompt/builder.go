package prompt

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cast"

	"github.com/Adityakumarsinghstm/ChatBot/internal/models"
	"github.com/Adityakumarsinghstm/ChatBot/pkg/tmplx"
	"github.com/Adityakumarsinghstm/ChatBot/pkg/util"
)

// Placeholders substituted for product fields the source omitted or sent as
// null. Defined values are kept as is, so a zero price renders as "0" and an
// empty description stays empty.
const (
	PlaceholderTitle       = "Unnamed Product"
	PlaceholderDescription = "No description"
	PlaceholderPrice       = "N/A"
	PlaceholderCategory    = "Uncategorized"
)

// Response bounds stated in the instruction. The token bound is the word
// bound scaled by the same factor the API uses to estimate tokens.
const (
	WordLimit  = 300
	TokenLimit = 400
)

// DefaultTemplate wraps the user query and the rendered catalog into the
// instruction sent to the generation engine.
const DefaultTemplate = `You are a helpful shopping assistant for an online store.

Here are the {{.ProductCount}} products currently available in our catalog:

{{.Catalog}}

Customer question: {{.Query}}

Answer the question using only the products listed above. Keep the response under {{.WordLimit}} words (at most {{.TokenLimit}} tokens), format it as concise bullet points, and put the products most relevant to the question first.`

// templateData is the contract between the builder and its template.
type templateData struct {
	Query        string
	Catalog      string
	ProductCount int
	WordLimit    int
	TokenLimit   int
}

var allowedFields = map[string]struct{}{
	"Query":        {},
	"Catalog":      {},
	"ProductCount": {},
	"WordLimit":    {},
	"TokenLimit":   {},
}

// Builder renders user queries and catalog snapshots into the instruction
// prompt. The wrapper template is parsed and executed once at construction,
// so Build cannot fail afterwards.
type Builder struct {
	tmpl *tmplx.Template
}

// NewBuilder parses the wrapper template. An empty template selects
// DefaultTemplate.
func NewBuilder(template string) (*Builder, error) {
	if template == "" {
		template = DefaultTemplate
	}
	for _, field := range tmplx.ExtractFields(template) {
		if _, ok := allowedFields[field]; !ok {
			return nil, fmt.Errorf("prompt template references unknown field %q", field)
		}
	}

	tmpl, err := tmplx.Parse("prompt", template,
		tmplx.WithValidate(sampleData(), func(buf *bytes.Buffer) error {
			if buf.Len() == 0 {
				return errors.New("template renders nothing")
			}
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("parse prompt template: %w", err)
	}
	return &Builder{tmpl: tmpl}, nil
}

func MustNewBuilder(template string) *Builder {
	b, err := NewBuilder(template)
	if err != nil {
		panic(err)
	}
	return b
}

// Build renders the instruction prompt for one request. Products render in
// input order, and an empty catalog still produces the full instruction with
// a zero product count.
func (b *Builder) Build(userQuery string, products []models.Product) string {
	blocks := util.ConvertList(products, renderProduct)
	data := templateData{
		Query:        userQuery,
		Catalog:      strings.Join(blocks, "\n\n"),
		ProductCount: len(products),
		WordLimit:    WordLimit,
		TokenLimit:   TokenLimit,
	}

	buf, err := b.tmpl.Render(data)
	if err != nil {
		// The template already executed against sample data at construction.
		panic(fmt.Errorf("render prompt: %w", err))
	}
	return buf.String()
}

func renderProduct(p models.Product) string {
	var sb strings.Builder
	sb.WriteString("Name: ")
	sb.WriteString(fieldOr(p.Title, PlaceholderTitle))
	sb.WriteString("\nDescription: ")
	sb.WriteString(fieldOr(p.Description, PlaceholderDescription))
	sb.WriteString("\nPrice: ")
	sb.WriteString(fieldOr(p.Price, PlaceholderPrice))
	sb.WriteString("\nCategory: ")
	sb.WriteString(fieldOr(p.Category, PlaceholderCategory))
	return sb.String()
}

// fieldOr renders an untyped catalog value, falling back to the placeholder
// only when the source omitted the field or sent null.
func fieldOr(v any, placeholder string) string {
	if v == nil {
		return placeholder
	}
	return cast.ToString(v)
}

func sampleData() templateData {
	return templateData{
		Query:        "sample question",
		Catalog:      "Name: Sample\nDescription: Sample\nPrice: 1\nCategory: Sample",
		ProductCount: 1,
		WordLimit:    WordLimit,
		TokenLimit:   TokenLimit,
	}
}
