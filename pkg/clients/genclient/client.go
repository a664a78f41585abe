package genclient

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Client wraps the Gemini API client used to draft study questions
type Client struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewClient creates a new generation client authenticated with an API key.
// model names the Gemini model, e.g. "models/gemini-pro".
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is empty")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	generativeModel := client.GenerativeModel(model)
	generativeModel.SetTemperature(0.7)
	generativeModel.SetTopP(0.9)
	generativeModel.SetTopK(40)
	generativeModel.SetMaxOutputTokens(1024)

	return &Client{
		client: client,
		model:  generativeModel,
	}, nil
}

// Close releases the underlying API connection
func (c *Client) Close() error {
	return c.client.Close()
}
