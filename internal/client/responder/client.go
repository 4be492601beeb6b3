// Package responder talks to OpenAI-compatible chat-completion endpoints.
// Each call builds its own client from the bot row, since every bot carries
// its own key and endpoint.
package responder

import (
	"context"
	"errors"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/jichangee/ai-chat/internal/config"
	"github.com/jichangee/ai-chat/internal/model"
)

const pingMaxTokens = 5

type Client struct {
	timeout        time.Duration
	defaultBaseURL string
	httpClient     *http.Client
}

func New(cfg *config.Config) *Client {
	return &Client{
		timeout:        cfg.Responder.Timeout,
		defaultBaseURL: cfg.Responder.DefaultBaseURL,
		httpClient:     &http.Client{},
	}
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// Complete returns the whole reply of bot to prompt.
func (c *Client) Complete(ctx context.Context, bot model.Bot, prompt string, history []model.RoleMessage) (string, error) {
	cli, baseURL, err := c.clientFor(bot.APIKey, bot.BaseURL)
	if err != nil {
		return "", err
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := cli.CreateChatCompletion(ctx, request(bot, prompt, history))
	if err != nil {
		return "", classify(err, bot.Model, baseURL)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", &Error{Kind: KindUnknown, Detail: "empty reply"}
	}

	return resp.Choices[0].Message.Content, nil
}

// Deltas is a finite, non-restartable sequence of reply fragments.
type Deltas interface {
	// Recv returns the next non-empty delta, or io.EOF once the reply is done.
	Recv() (string, error)
	Close() error
}

// Stream opens a streamed reply. The caller must Close the returned stream.
func (c *Client) Stream(ctx context.Context, bot model.Bot, prompt string, history []model.RoleMessage) (Deltas, error) {
	cli, baseURL, err := c.clientFor(bot.APIKey, bot.BaseURL)
	if err != nil {
		return nil, err
	}

	ctx, cancel := c.withTimeout(ctx)

	req := request(bot, prompt, history)
	req.Stream = true

	stream, err := cli.CreateChatCompletionStream(ctx, req)
	if err != nil {
		cancel()
		return nil, classify(err, bot.Model, baseURL)
	}

	return &deltaStream{stream: stream, cancel: cancel, model: bot.Model, baseURL: baseURL}, nil
}

// Ping checks that the key, endpoint and model answer a minimal request.
func (c *Client) Ping(ctx context.Context, apiKey, baseURL, modelName string) error {
	cli, normalized, err := c.clientFor(apiKey, baseURL)
	if err != nil {
		return err
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	_, err = cli.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     modelName,
		Messages:  []openai.ChatCompletionMessage{{Role: openai.ChatMessageRoleUser, Content: "Hi"}},
		MaxTokens: pingMaxTokens,
	})
	if err != nil {
		return classify(err, modelName, normalized)
	}
	return nil
}

func (c *Client) clientFor(apiKey, baseURL string) (*openai.Client, string, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, "", &Error{Kind: KindAuth, Detail: "API key not configured"}
	}

	if strings.TrimSpace(baseURL) == "" {
		baseURL = c.defaultBaseURL
	}
	normalized := NormalizeBaseURL(baseURL)

	cfg := openai.DefaultConfig(apiKey)
	if normalized != "" {
		cfg.BaseURL = normalized
	}
	cfg.HTTPClient = c.httpClient

	return openai.NewClientWithConfig(cfg), cfg.BaseURL, nil
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

// NormalizeBaseURL trims trailing slashes and appends /v1 to a bare origin.
func NormalizeBaseURL(raw string) string {
	trimmed := strings.TrimRight(strings.TrimSpace(raw), "/")
	if trimmed == "" {
		return ""
	}

	u, err := url.Parse(trimmed)
	if err != nil || u.Host == "" {
		return trimmed
	}
	if u.Path == "" {
		return trimmed + "/v1"
	}
	return trimmed
}

// BuildMessages lays out the conversation as system prompt, history, then
// the user's prompt.
func BuildMessages(systemPrompt, prompt string, history []model.RoleMessage) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	out = append(out, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: systemPrompt})
	for _, m := range history {
		role := openai.ChatMessageRoleUser
		if m.Role == model.RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		out = append(out, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}
	out = append(out, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: prompt})
	return out
}

func request(bot model.Bot, prompt string, history []model.RoleMessage) openai.ChatCompletionRequest {
	return openai.ChatCompletionRequest{
		Model:       bot.Model,
		Messages:    BuildMessages(bot.SystemPrompt, prompt, history),
		Temperature: temperature(bot.Temperature),
	}
}

// temperature keeps an explicit zero on the wire; go-openai omits 0.
func temperature(t float64) float32 {
	if t == 0 {
		return math.SmallestNonzeroFloat32
	}
	return float32(t)
}

type deltaStream struct {
	stream  *openai.ChatCompletionStream
	cancel  context.CancelFunc
	model   string
	baseURL string
}

func (s *deltaStream) Recv() (string, error) {
	for {
		resp, err := s.stream.Recv()
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		if err != nil {
			return "", classify(err, s.model, s.baseURL)
		}

		if len(resp.Choices) == 0 {
			continue
		}
		if delta := resp.Choices[0].Delta.Content; delta != "" {
			return delta, nil
		}
	}
}

func (s *deltaStream) Close() error {
	s.stream.Close()
	s.cancel()
	return nil
}
