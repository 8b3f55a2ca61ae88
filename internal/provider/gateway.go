// Package provider abstracts the external messaging provider. The engine
// only ever sees this interface; the concrete transport, its rate limits and
// its callback plumbing live behind it.
package provider

import "context"

// SendResult is the provider's acknowledgement of an accepted message.
type SendResult struct {
	ProviderMessageID string
}

// Gateway sends a single message and returns the provider message id or a
// typed error (*models.ProviderError for provider-side rejections).
type Gateway interface {
	SendText(ctx context.Context, address, body string) (*SendResult, error)
	SendTemplate(ctx context.Context, address, name, language string, params []string) (*SendResult, error)
	SendMedia(ctx context.Context, address, mediaType, url, caption string) (*SendResult, error)
}

// BreakerReporter is implemented by gateways that expose circuit breaker
// state, for the health endpoint.
type BreakerReporter interface {
	CircuitBreakerStatus() (state BreakerState, requests, failures uint32)
}
