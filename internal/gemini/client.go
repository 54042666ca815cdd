package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const (
	defaultRegion = "europe-west1"
	defaultModel  = "gemini-2.5-flash"
)

type Config struct {
	// Gemini API key, takes precedence over Vertex AI
	APIKey string `envconfig:"WORDDAY_GEMINI_API_KEY"`

	// Vertex AI project, uses Application Default Credentials
	Project string `envconfig:"WORDDAY_GEMINI_PROJECT"`
	Region  string `envconfig:"WORDDAY_GEMINI_REGION" default:"europe-west1"`
	Model   string `envconfig:"WORDDAY_GEMINI_MODEL" default:"gemini-2.5-flash"`
}

func (c Config) Enabled() bool {
	return c.APIKey != "" || c.Project != ""
}

// generateFn sends one prompt and returns the text of the answer.
type generateFn func(ctx context.Context, prompt string, jsonOut bool) (string, error)

func newGenerator(ctx context.Context, config Config) (generateFn, error) {
	cc := &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if config.APIKey == "" {
		region := config.Region
		if region == "" {
			region = defaultRegion
		}
		cc = &genai.ClientConfig{
			Project:  config.Project,
			Location: region,
			Backend:  genai.BackendVertexAI,
		}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	model := config.Model
	if model == "" {
		model = defaultModel
	}

	return func(ctx context.Context, prompt string, jsonOut bool) (string, error) {
		gc := &genai.GenerateContentConfig{
			Temperature: genai.Ptr(float32(1)),
		}
		if jsonOut {
			gc.ResponseMIMEType = "application/json"
		}

		resp, err := client.Models.GenerateContent(ctx, model,
			[]*genai.Content{{
				Role:  "user",
				Parts: []*genai.Part{{Text: prompt}},
			}},
			gc,
		)
		if err != nil {
			return "", fmt.Errorf("gemini generate: %w", err)
		}

		text := resp.Text()
		if text == "" {
			return "", fmt.Errorf("empty gemini response")
		}

		return text, nil
	}, nil
}
