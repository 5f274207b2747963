package geminiclient

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/maestria/maestria-api/internal/config"
	"google.golang.org/genai"
)

var (
	ErrMissingAPIKey = errors.New("GEMINI_API_KEY não configurada")
	ErrEmptyResponse = errors.New("resposta vazia do modelo")
)

//go:generate mockgen -source=client.go -destination=mocks/client_mock.go -package=mocks
type Client interface {
	// GenerateContent envia o pedido ao modelo e retorna o texto da primeira candidata.
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (string, error)
}

type GeminiClient struct {
	client  *genai.Client
	timeout time.Duration
}

func NewClient(ctx context.Context, cfg config.Gemini) (Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}

	return &GeminiClient{
		client:  client,
		timeout: cfg.RequestTimeout,
	}, nil
}

func (c *GeminiClient) GenerateContent(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.client.Models.GenerateContent(ctx, model, contents, cfg)
	if err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" && !part.Thought {
			text.WriteString(part.Text)
		}
	}
	if text.Len() == 0 {
		return "", ErrEmptyResponse
	}

	return text.String(), nil
}

// unavailable responde a todo pedido com o mesmo erro.
// Usado quando não há chave configurada para que o gateway caia nos fallbacks.
type unavailable struct {
	err error
}

func Unavailable(err error) Client {
	return unavailable{err: err}
}

func (u unavailable) GenerateContent(context.Context, string, []*genai.Content, *genai.GenerateContentConfig) (string, error) {
	return "", u.err
}
