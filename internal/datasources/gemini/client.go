package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/caseprep/casewise/internal/datasources"
)

var _ datasources.TextGenerator = (*Client)(nil)
var _ datasources.Embedder = (*Client)(nil)

// Client generates text and embeds text using the Gemini API.
type Client struct {
	client     *genai.Client
	textModel  string
	embedModel string
}

func NewClient(ctx context.Context, apiKey, textModel, embedModel string) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return &Client{
		client:     client,
		textModel:  textModel,
		embedModel: embedModel,
	}, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

func (c *Client) GenerateText(
	ctx context.Context,
	prompt string,
	opts datasources.GenerationOptions,
) (string, error) {
	model := c.client.GenerativeModel(c.textModel)
	if opts.Temperature > 0 {
		model.SetTemperature(opts.Temperature)
	}
	if opts.MaxOutputTokens > 0 {
		model.SetMaxOutputTokens(opts.MaxOutputTokens)
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}

	if b.Len() == 0 {
		return "", fmt.Errorf("gemini returned an empty response")
	}

	return b.String(), nil
}

func (c *Client) EmbedText(ctx context.Context, text string) ([]float32, error) {
	model := c.client.EmbeddingModel(c.embedModel)

	resp, err := model.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("gemini embed: %w", err)
	}
	if resp.Embedding == nil || len(resp.Embedding.Values) == 0 {
		return nil, fmt.Errorf("gemini returned an empty embedding")
	}

	return resp.Embedding.Values, nil
}
