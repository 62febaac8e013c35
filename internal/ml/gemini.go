// README: Gemini-backed price model implementation.
package ml

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiModel implements PriceModel using Google's Gemini models as a
// learned pricing baseline.
type GeminiModel struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiModel initializes a new Gemini client. apiKey should come from
// environment variables.
func NewGeminiModel(ctx context.Context, apiKey string) (*GeminiModel, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Flash model for low latency; estimates sit on the request path.
	model := client.GenerativeModel("gemini-2.0-flash")
	model.ResponseMIMEType = "application/json"
	// Low temperature: price estimates should be stable for identical input.
	model.SetTemperature(0.1)

	return &GeminiModel{client: client, model: model}, nil
}

// Close cleans up the Gemini client resources.
func (m *GeminiModel) Close() {
	m.client.Close()
}

type estimateResponse struct {
	PredictedPrice float64 `json:"predicted_price"`
}

// EstimatePrice asks the model for a single numeric rental price estimate.
func (m *GeminiModel) EstimatePrice(ctx context.Context, rec FeatureRecord) (float64, error) {
	features, err := json.Marshal(rec)
	if err != nil {
		return 0, err
	}

	prompt := fmt.Sprintf(`You are the pricing model for a vehicle rental platform.
Given this booking feature record, estimate the total rental price in whole
currency units. Respond with JSON of the form {"predicted_price": <number>}
and nothing else.

Feature record: %s`, features)

	resp, err := m.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return 0, fmt.Errorf("gemini generation error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return 0, fmt.Errorf("no response candidates from Gemini")
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}

	var out estimateResponse
	if err := json.Unmarshal([]byte(cleanJSONString(responseText.String())), &out); err != nil {
		return 0, fmt.Errorf("failed to parse model response: %w", err)
	}
	if out.PredictedPrice <= 0 {
		return 0, fmt.Errorf("model returned non-positive price %f", out.PredictedPrice)
	}
	return out.PredictedPrice, nil
}

// cleanJSONString strips markdown code fences the model may wrap around its
// JSON output despite the response MIME type.
func cleanJSONString(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
