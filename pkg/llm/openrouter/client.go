package openrouter

import (
	"context"
	"errors"
	"math"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// greedyTemperature: в go-openai у Temperature тег omitempty, ноль не отправляется
// и провайдер берёт свою температуру по умолчанию.
const greedyTemperature = math.SmallestNonzeroFloat32

const (
	defaultBaseURL = "https://openrouter.ai/api/v1"
	defaultModel   = "qwen/qwen2.5-32b-instruct"
)

// Client is an OpenRouter (OpenAI-compatible) chat completions client.
type Client struct {
	Model  string
	APIKey string
	api    *openai.Client
}

func New(apiKey, baseURL, model, appTitle, referer string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if model == "" {
		model = defaultModel
	}
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	cfg.HTTPClient = &http.Client{
		Timeout:   60 * time.Second,
		Transport: &attributionTransport{base: http.DefaultTransport, appTitle: appTitle, referer: referer},
	}
	return &Client{Model: model, APIKey: apiKey, api: openai.NewClientWithConfig(cfg)}
}

// Ask sends one system and one user message and returns the first reply.
func (c *Client) Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if c.APIKey == "" {
		return "", errors.New("openrouter api key is empty")
	}
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: greedyTemperature,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no choices returned by model")
	}
	return resp.Choices[0].Message.Content, nil
}

// attributionTransport adds the optional OpenRouter app attribution headers.
type attributionTransport struct {
	base     http.RoundTripper
	appTitle string
	referer  string
}

func (t *attributionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.appTitle == "" && t.referer == "" {
		return t.base.RoundTrip(req)
	}
	req = req.Clone(req.Context())
	if t.referer != "" {
		req.Header.Set("HTTP-Referer", t.referer)
	}
	if t.appTitle != "" {
		req.Header.Set("X-Title", t.appTitle)
	}
	return t.base.RoundTrip(req)
}
