package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecipientStatus_CanTransition(t *testing.T) {
	tests := []struct {
		name string
		from RecipientStatus
		to   RecipientStatus
		want bool
	}{
		{"pending to sent", RecipientStatusPending, RecipientStatusSent, true},
		{"pending to failed", RecipientStatusPending, RecipientStatusFailed, true},
		{"pending to skipped", RecipientStatusPending, RecipientStatusSkipped, true},
		{"sent to delivered", RecipientStatusSent, RecipientStatusDelivered, true},
		{"sent to read skips delivered", RecipientStatusSent, RecipientStatusRead, true},
		{"sent to failed", RecipientStatusSent, RecipientStatusFailed, true},
		{"delivered to read", RecipientStatusDelivered, RecipientStatusRead, true},
		{"delivered back to sent", RecipientStatusDelivered, RecipientStatusSent, false},
		{"delivered to failed is stale", RecipientStatusDelivered, RecipientStatusFailed, false},
		{"read to failed is stale", RecipientStatusRead, RecipientStatusFailed, false},
		{"read to skipped is stale", RecipientStatusRead, RecipientStatusSkipped, false},
		{"read back to delivered", RecipientStatusRead, RecipientStatusDelivered, false},
		{"same status", RecipientStatusSent, RecipientStatusSent, false},
		{"failed is terminal", RecipientStatusFailed, RecipientStatusSent, false},
		{"skipped is terminal", RecipientStatusSkipped, RecipientStatusDelivered, false},
		{"unknown source", RecipientStatus("bogus"), RecipientStatusSent, false},
		{"unknown target", RecipientStatusPending, RecipientStatus("bogus"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransition(tt.to))
		})
	}
}
