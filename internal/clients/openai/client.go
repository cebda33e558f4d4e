package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	internal "github.com/Darkkkking/ai-rpg-adventure/internal"
	rpgerr "github.com/Darkkkking/ai-rpg-adventure/internal/errors"
)

const (
	DefaultBaseURL = "https://api.openai.com/v1"
	DefaultModel   = "gpt-4o"
)

type client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

type Config struct {
	APIKey     string
	BaseURL    string // Optional, defaults to DefaultBaseURL
	Model      string // Optional, defaults to DefaultModel
	HTTPClient *http.Client
}

func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, internal.NewMissingParamError("cfg")
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, internal.NewMissingParamError("APIKey")
	}

	c := &client{
		apiKey:     strings.TrimSpace(cfg.APIKey),
		baseURL:    strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		model:      strings.TrimSpace(cfg.Model),
		httpClient: cfg.HTTPClient,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.model == "" {
		c.model = DefaultModel
	}
	if c.httpClient == nil {
		c.httpClient = http.DefaultClient
	}

	return c, nil
}

type responseFormat struct {
	Type string `json:"type"`
}

type completionRequest struct {
	Model          string          `json:"model"`
	Messages       []Message       `json:"messages"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type completionResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

func (c *client) Complete(ctx context.Context, req *ChatRequest) (string, error) {
	if req == nil || len(req.Messages) == 0 {
		return "", rpgerr.InvalidArgument("chat request needs at least one message")
	}

	body := completionRequest{
		Model:     c.model,
		Messages:  req.Messages,
		MaxTokens: req.MaxTokens,
	}
	if req.JSON {
		body.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", rpgerr.Wrap(err, "failed to marshal chat request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", rpgerr.Wrap(err, "failed to build chat request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	res, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", rpgerr.WrapWithCode(err, rpgerr.CodeUnavailable, "chat request failed")
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return "", rpgerr.Unavailable(fmt.Sprintf("chat request status %d: %s", res.StatusCode, strings.TrimSpace(string(detail)))).
			WithMeta("status", res.StatusCode)
	}

	var decoded completionResponse
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
		return "", rpgerr.Wrap(err, "failed to decode chat response")
	}

	if len(decoded.Choices) == 0 || strings.TrimSpace(decoded.Choices[0].Message.Content) == "" {
		return "", rpgerr.Unavailable("chat response missing content")
	}

	return strings.TrimSpace(decoded.Choices[0].Message.Content), nil
}
