package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/example/astroshop/pkg/catalog"
	"github.com/example/astroshop/pkg/config"
	"go.uber.org/zap"
)

// ErrUnavailable is the generic user-facing failure for any assistant
// call that breaks. Callers never see transport detail and nothing is
// retried.
var ErrUnavailable = errors.New("assistant: service unavailable")

// Client talks to the completion endpoint backing the shopping
// assistant and the recommendation flow.
type Client struct {
	endpoint   string
	apiKey     string
	model      string
	httpClient *http.Client
	catalog    *catalog.Catalog
	logger     *zap.Logger
}

func NewClient(cfg *config.AIConfig, cat *catalog.Catalog, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		model:    cfg.Model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		catalog: cat,
		logger:  logger.Named("assistant"),
	}
}

type completionRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type completionResponse struct {
	Text string `json:"text"`
}

func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(completionRequest{Model: c.model, Prompt: prompt})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion endpoint returned %d", resp.StatusCode)
	}

	var out completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.Text, nil
}

const chatPrompt = `You are a helpful AI shopping assistant for Astro Emporium. Your goal is to answer user questions and provide support during their shopping experience.
Use a friendly and helpful tone.
If a user asks a question that falls outside the scope of Astro Emporium, politely inform them that you are only able to answer questions about the store and its products.

User Query: %s
`

// Chat answers a free-text shopper question.
func (c *Client) Chat(ctx context.Context, query string) (string, error) {
	reply, err := c.complete(ctx, fmt.Sprintf(chatPrompt, query))
	if err != nil {
		c.logger.Warn("chat completion failed", zap.Error(err))
		return "", ErrUnavailable
	}
	return reply, nil
}

// Recommendation is one ranked product suggestion.
type Recommendation struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Reason      string `json:"reason"`
}

type recommendationPayload struct {
	Products []Recommendation `json:"products"`
}

const recommendPrompt = `You are an astrology expert and product recommendation specialist.
Based on the user's birthdate (%s) and zodiac sign (%s), recommend products that align with their astrological needs and preferences from this catalog: %s.

Respond with JSON of the form {"products": [{"name": ..., "description": ..., "image_url": ..., "reason": ...}]}.
Focus on how each product can benefit the user based on their astrological profile.
`

// Recommend returns product suggestions for an astrological profile.
// The zodiac sign is derived from the birthdate when omitted.
func (c *Client) Recommend(ctx context.Context, birthdate, zodiacSign string) ([]Recommendation, error) {
	if zodiacSign == "" {
		sign, err := ZodiacSign(birthdate)
		if err != nil {
			return nil, err
		}
		zodiacSign = sign
	}

	names, err := c.productNames(ctx)
	if err != nil {
		c.logger.Warn("catalog read failed", zap.Error(err))
		return nil, ErrUnavailable
	}

	raw, err := c.complete(ctx, fmt.Sprintf(recommendPrompt, birthdate, zodiacSign, names))
	if err != nil {
		c.logger.Warn("recommendation completion failed", zap.Error(err))
		return nil, ErrUnavailable
	}

	var payload recommendationPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		c.logger.Warn("recommendation parse failed", zap.Error(err))
		return nil, ErrUnavailable
	}
	return payload.Products, nil
}

func (c *Client) productNames(ctx context.Context) (string, error) {
	products, err := c.catalog.Products(ctx)
	if err != nil {
		return "", err
	}
	names := make([]string, len(products))
	for i, p := range products {
		names[i] = p.Name
	}
	return strings.Join(names, ", "), nil
}
