// Package tinify é o cliente do serviço externo de compressão de imagens.
package tinify

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/rafabene/staffdir-backend/internal/domain/ports"
)

const DefaultBaseURL = "https://api.tinify.com"

// shrinkResponse é a resposta do POST /shrink
type shrinkResponse struct {
	Input struct {
		Size int64  `json:"size"`
		Type string `json:"type"`
	} `json:"input"`
	Output struct {
		Size  int64   `json:"size"`
		Type  string  `json:"type"`
		Ratio float64 `json:"ratio"`
		URL   string  `json:"url"`
	} `json:"output"`
}

// apiError é o corpo de erro da API
type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Client implementa ports.ImageOptimizer sobre a API do Tinify
type Client struct {
	httpClient *resty.Client
	logger     ports.Logger
}

// NewClient cria o cliente; sem retries, falha única propaga
func NewClient(baseURL, apiKey string, timeout time.Duration, logger ports.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetBasicAuth("api", apiKey).
		SetHeader("Accept", "application/json")

	return &Client{
		httpClient: client,
		logger:     logger.With("component", "tinify"),
	}
}

// Optimize envia a imagem para /shrink e baixa o resultado comprimido
func (c *Client) Optimize(ctx context.Context, data []byte) ([]byte, error) {
	var result shrinkResponse
	var failure apiError

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetBody(data).
		SetResult(&result).
		SetError(&failure).
		Post("/shrink")
	if err != nil {
		return nil, fmt.Errorf("tinify shrink request: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("tinify shrink failed: status %d: %s: %s", resp.StatusCode(), failure.Error, failure.Message)
	}

	location := resp.Header().Get("Location")
	if location == "" {
		location = result.Output.URL
	}
	if location == "" {
		return nil, fmt.Errorf("tinify shrink response without output location")
	}

	c.logger.Debug("image compressed",
		"input_size", result.Input.Size,
		"output_size", result.Output.Size,
		"ratio", result.Output.Ratio,
	)

	out, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Accept", "image/*").
		Get(location)
	if err != nil {
		return nil, fmt.Errorf("tinify download request: %w", err)
	}
	if out.IsError() {
		return nil, fmt.Errorf("tinify download failed: status %d", out.StatusCode())
	}

	return out.Body(), nil
}

// Passthrough devolve os bytes sem compressão; usado quando não há API key
type Passthrough struct{}

func (Passthrough) Optimize(_ context.Context, data []byte) ([]byte, error) {
	return data, nil
}
