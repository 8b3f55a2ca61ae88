package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pkozlov/outreach/internal/config"
	"github.com/pkozlov/outreach/internal/models"
)

type sendRequest struct {
	To   string `json:"to"`
	Type string `json:"type"`

	Body string `json:"body,omitempty"`

	TemplateName     string   `json:"template_name,omitempty"`
	TemplateLanguage string   `json:"template_language,omitempty"`
	TemplateParams   []string `json:"template_params,omitempty"`

	MediaType    string `json:"media_type,omitempty"`
	MediaURL     string `json:"media_url,omitempty"`
	MediaCaption string `json:"media_caption,omitempty"`
}

type sendResponse struct {
	Message   string `json:"message"`
	MessageID string `json:"messageId"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// httpGateway talks to the provider over a single authenticated webhook
// endpoint. All calls pass through a shared circuit breaker.
type httpGateway struct {
	cfg            *config.ProviderConfig
	httpClient     *http.Client
	logger         *zap.Logger
	circuitBreaker *CircuitBreaker
}

func NewHTTPGateway(cfg *config.ProviderConfig, logger *zap.Logger) Gateway {
	return &httpGateway{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		logger:         logger,
		circuitBreaker: NewCircuitBreaker(&cfg.CircuitBreaker, logger),
	}
}

func (g *httpGateway) SendText(ctx context.Context, address, body string) (*SendResult, error) {
	return g.send(ctx, &sendRequest{
		To:   address,
		Type: string(models.MessageTypeText),
		Body: body,
	})
}

func (g *httpGateway) SendTemplate(ctx context.Context, address, name, language string, params []string) (*SendResult, error) {
	return g.send(ctx, &sendRequest{
		To:               address,
		Type:             string(models.MessageTypeTemplate),
		TemplateName:     name,
		TemplateLanguage: language,
		TemplateParams:   params,
	})
}

func (g *httpGateway) SendMedia(ctx context.Context, address, mediaType, url, caption string) (*SendResult, error) {
	return g.send(ctx, &sendRequest{
		To:           address,
		Type:         string(models.MessageTypeMedia),
		MediaType:    mediaType,
		MediaURL:     url,
		MediaCaption: caption,
	})
}

// CircuitBreakerStatus exposes breaker state for the health endpoint.
func (g *httpGateway) CircuitBreakerStatus() (state BreakerState, requests, failures uint32) {
	state = g.circuitBreaker.State()
	requests, failures = g.circuitBreaker.Counts()
	return
}

func (g *httpGateway) send(ctx context.Context, payload *sendRequest) (*SendResult, error) {
	var result *SendResult

	err := g.circuitBreaker.Execute(ctx, func() error {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.URL, bytes.NewBuffer(jsonData))
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("x-provider-auth-key", g.cfg.AuthKey)

		resp, err := g.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("failed to send request: %w", err)
		}
		defer func() {
			if err := resp.Body.Close(); err != nil {
				g.logger.Warn("Failed to close response body", zap.Error(err))
			}
		}()

		if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
			var errResp errorResponse
			message := resp.Status
			if decodeErr := json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&errResp); decodeErr == nil && errResp.Message != "" {
				message = errResp.Message
			}
			return &models.ProviderError{Code: resp.StatusCode, Message: message}
		}

		var sendResp sendResponse
		if err := json.NewDecoder(resp.Body).Decode(&sendResp); err != nil || sendResp.MessageID == "" {
			// Accepted without a usable id; keep the send but synthesize one
			// so callbacks can still be correlated if the provider retries.
			sendResp.MessageID = fmt.Sprintf("temp-%s", uuid.New().String())
		}

		result = &SendResult{ProviderMessageID: sendResp.MessageID}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
