package gemini

// Package gemini implements ports.NutritionAnalyzer on the Gemini generateContent API.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	jmespath "github.com/jmespath-community/go-jmespath"

	"github.com/target/ticketdesk-api/internal/domain/model"
)

const (
	// DefaultBaseURL is the public Generative Language API endpoint.
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	// DefaultModel is used when Config.Model is empty.
	DefaultModel = "gemini-2.5-flash"

	// textPath selects the generated text of the first candidate.
	textPath = "candidates[0].content.parts[0].text"

	maxErrorBody = 4 << 10
)

const analyzePrompt = "Analyze this food image and provide detailed nutritional information. " +
	"For each food item visible, provide the name, estimated calories, protein (g), fat (g), " +
	"carbohydrates (g), sugar (g), and sodium (mg). Return the response as a JSON object with a " +
	"'foods' array containing objects with these exact fields: name, calories, protein_g, fat_g, " +
	"carbohydrates_g, sugar_g, sodium_mg. Only return the JSON, no additional text."

// Config captures the Gemini client settings.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
	Client  *http.Client
	Logger  *slog.Logger
}

// Client calls Gemini to estimate nutrition facts for food images.
type Client struct {
	apiKey   string
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

// NewClient builds a Gemini client. The API key is required.
func NewClient(cfg Config) (*Client, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	modelName := strings.TrimSpace(cfg.Model)
	if modelName == "" {
		modelName = DefaultModel
	}
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		apiKey:   apiKey,
		endpoint: base + "/models/" + url.PathEscape(modelName) + ":generateContent",
		client:   hc,
		logger:   logger.With("component", "gemini"),
	}, nil
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

// Analyze sends the image with the analysis prompt and parses the foods out of the reply.
func (c *Client) Analyze(ctx context.Context, base64Image string) (model.NutritionResponse, error) {
	body, err := json.Marshal(generateRequest{Contents: []content{{Parts: []part{
		{Text: analyzePrompt},
		{InlineData: &inlineData{MimeType: "image/jpeg", Data: base64Image}},
	}}}})
	if err != nil {
		return model.NutritionResponse{}, fmt.Errorf("encode gemini request: %w", err)
	}

	raw, err := c.post(ctx, body)
	if err != nil {
		return model.NutritionResponse{}, err
	}

	text, err := generatedText(raw)
	if err != nil {
		return model.NutritionResponse{}, err
	}
	c.logger.DebugContext(ctx, "gemini generated text", "length", len(text))

	return ParseNutrition(text)
}

func (c *Client) post(ctx context.Context, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}
	defer func() {
		// body already consumed; close errors carry no information for callers
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("gemini returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read gemini response: %w", err)
	}
	return raw, nil
}

func generatedText(raw []byte) (string, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return "", fmt.Errorf("decode gemini response: %w", err)
	}
	v, err := jmespath.Search(textPath, doc)
	if err != nil {
		return "", fmt.Errorf("search gemini response: %w", err)
	}
	text, ok := v.(string)
	if !ok || text == "" {
		return "", errors.New("failed to extract text from gemini response")
	}
	return text, nil
}
