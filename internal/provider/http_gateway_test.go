package provider_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pkozlov/outreach/internal/config"
	"github.com/pkozlov/outreach/internal/models"
	"github.com/pkozlov/outreach/internal/provider"
)

func gatewayConfig(url string) *config.ProviderConfig {
	return &config.ProviderConfig{
		URL:     url,
		AuthKey: "test-key",
		Timeout: 5,
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxRequests:      3,
			Interval:         60,
			Timeout:          60,
			FailureRatio:     0.6,
			ConsecutiveFails: 5,
		},
	}
}

func TestHTTPGateway_SendText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-provider-auth-key"))

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "491700000001", payload["to"])
		assert.Equal(t, "text", payload["type"])
		assert.Equal(t, "Hello there", payload["body"])

		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]string{
			"message":   "accepted",
			"messageId": "wamid.abc",
		})
	}))
	defer server.Close()

	gateway := provider.NewHTTPGateway(gatewayConfig(server.URL), zap.NewNop())

	result, err := gateway.SendText(context.Background(), "491700000001", "Hello there")
	require.NoError(t, err)
	assert.Equal(t, "wamid.abc", result.ProviderMessageID)
}

func TestHTTPGateway_SendText_ProviderRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(470)
		json.NewEncoder(w).Encode(map[string]string{
			"error":   "OPT_OUT",
			"message": "recipient opted out",
		})
	}))
	defer server.Close()

	gateway := provider.NewHTTPGateway(gatewayConfig(server.URL), zap.NewNop())

	_, err := gateway.SendText(context.Background(), "491700000001", "Hello there")

	var providerErr *models.ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, 470, providerErr.Code)
	assert.Equal(t, "recipient opted out", providerErr.Message)
}

func TestHTTPGateway_SendText_SynthesizesMissingMessageID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	gateway := provider.NewHTTPGateway(gatewayConfig(server.URL), zap.NewNop())

	result, err := gateway.SendText(context.Background(), "491700000001", "Hello there")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.ProviderMessageID, "temp-"))
}

func TestHTTPGateway_CircuitBreakerOpensOnRepeatedFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	cfg := gatewayConfig(server.URL)
	cfg.CircuitBreaker.ConsecutiveFails = 3
	cfg.CircuitBreaker.FailureRatio = 0.5

	gateway := provider.NewHTTPGateway(cfg, zap.NewNop())

	for i := 0; i < 3; i++ {
		_, err := gateway.SendText(context.Background(), "491700000001", "Hello")
		require.Error(t, err)
	}

	breaker, ok := gateway.(provider.BreakerReporter)
	require.True(t, ok)
	state, _, _ := breaker.CircuitBreakerStatus()
	assert.Equal(t, provider.BreakerOpen, state)

	// With the breaker open the provider is never contacted.
	_, err := gateway.SendText(context.Background(), "491700000001", "Hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "circuit breaker is open")
}

func TestHTTPGateway_SendTemplate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "template", payload["type"])
		assert.Equal(t, "spring_promo", payload["template_name"])
		assert.Equal(t, "en", payload["template_language"])

		json.NewEncoder(w).Encode(map[string]string{"messageId": "wamid.tpl"})
	}))
	defer server.Close()

	gateway := provider.NewHTTPGateway(gatewayConfig(server.URL), zap.NewNop())

	result, err := gateway.SendTemplate(context.Background(), "491700000001", "spring_promo", "en", []string{"Anna"})
	require.NoError(t, err)
	assert.Equal(t, "wamid.tpl", result.ProviderMessageID)
}
