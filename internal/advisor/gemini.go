package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Domenick1991/travelagent/internal/domain"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiClient calls the Gemini generateContent endpoint to produce itinerary
// text. No retries: a failed call surfaces as an error and the caller falls
// back to placeholder text.
type GeminiClient struct {
	BaseURL string
	APIKey  string
	Model   string
	Client  *http.Client
}

func NewGeminiClient(apiKey, model, baseURL string, timeout time.Duration) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key missing")
	}
	if model == "" {
		model = "gemini-2.0-flash-001"
	}
	if baseURL == "" {
		baseURL = defaultGeminiBaseURL
	}
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &GeminiClient{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Model:   model,
		Client:  &http.Client{Timeout: timeout},
	}, nil
}

type geminiReq struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResp struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (c *GeminiClient) Itinerary(ctx context.Context, req Request) (string, error) {
	text, err := c.generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrAdvisoryFailure, err)
	}
	return text, nil
}

func (c *GeminiClient) generate(ctx context.Context, req Request) (string, error) {
	prompt, err := buildPrompt(req)
	if err != nil {
		return "", err
	}

	payload := geminiReq{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	}

	b, _ := json.Marshal(payload)
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.BaseURL, c.Model, c.APIKey)
	httpReq, _ := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(b))
	httpReq.Header.Set("content-type", "application/json")

	res, err := c.Client.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return "", fmt.Errorf("gemini status %d: %s", res.StatusCode, string(body))
	}

	var out geminiResp
	if err := json.Unmarshal(body, &out); err != nil {
		return "", err
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("gemini returned no candidates")
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}

func buildPrompt(req Request) (string, error) {
	flights, err := json.Marshal(req.Flights)
	if err != nil {
		return "", err
	}
	hotels, err := json.Marshal(req.Hotels)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(
		"Create a %d-day itinerary for %s. Flights: %s Hotels: %s Return a day-by-day plan with 1-2 activities and a dining suggestion.",
		req.Nights, req.Destination, flights, hotels,
	), nil
}

var _ Advisor = (*GeminiClient)(nil)
