package service

import (
	"time"

	"github.com/pkozlov/outreach/internal/models"
	"github.com/pkozlov/outreach/internal/provider"
)

// CreateBroadcastInput carries everything needed to create a bulk-send job.
// Exactly one payload group must be populated, matching MessageType.
type CreateBroadcastInput struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	MessageType models.MessageType `json:"message_type"`

	Content          string   `json:"content,omitempty"`
	TemplateName     string   `json:"template_name,omitempty"`
	TemplateLanguage string   `json:"template_language,omitempty"`
	TemplateParams   []string `json:"template_params,omitempty"`
	MediaType        string   `json:"media_type,omitempty"`
	MediaURL         string   `json:"media_url,omitempty"`
	MediaCaption     string   `json:"media_caption,omitempty"`

	RecipientType    models.RecipientType     `json:"recipient_type"`
	RecipientIDs     []string                 `json:"recipient_ids,omitempty"`
	RecipientFilters *models.RecipientFilters `json:"recipient_filters,omitempty"`

	MessagesPerMinute int                    `json:"messages_per_minute,omitempty"`
	BatchSize         int                    `json:"batch_size,omitempty"`
	ScheduledAt       *time.Time             `json:"scheduled_at,omitempty"`
	SendTimeWindow    *models.SendTimeWindow `json:"send_time_window,omitempty"`

	CreatedBy string `json:"created_by,omitempty"`
}

// CreateSequenceInput carries a new drip-campaign definition.
type CreateSequenceInput struct {
	Name              string                  `json:"name"`
	Description       string                  `json:"description,omitempty"`
	Steps             []models.SequenceStep   `json:"steps"`
	EntryConditions   *models.EntryConditions `json:"entry_conditions,omitempty"`
	ExitOnReply       *bool                   `json:"exit_on_reply,omitempty"`
	ExitOnGoal        string                  `json:"exit_on_goal,omitempty"`
	IsActive          bool                    `json:"is_active,omitempty"`
	SendTimeWindow    *models.SendTimeWindow  `json:"send_time_window,omitempty"`
	MaxMessagesPerDay int                     `json:"max_messages_per_day,omitempty"`
}

// UpdateSequenceInput holds the mutable fields of a sequence. Nil pointers
// leave the current value untouched.
type UpdateSequenceInput struct {
	Name              *string                 `json:"name,omitempty"`
	Description       *string                 `json:"description,omitempty"`
	Steps             []models.SequenceStep   `json:"steps,omitempty"`
	EntryConditions   *models.EntryConditions `json:"entry_conditions,omitempty"`
	ExitOnReply       *bool                   `json:"exit_on_reply,omitempty"`
	ExitOnGoal        *string                 `json:"exit_on_goal,omitempty"`
	IsActive          *bool                   `json:"is_active,omitempty"`
	SendTimeWindow    *models.SendTimeWindow  `json:"send_time_window,omitempty"`
	MaxMessagesPerDay *int                    `json:"max_messages_per_day,omitempty"`
}

// SendReport summarizes one completed broadcast dispatch.
type SendReport struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
	Total  int `json:"total"`
}

// BroadcastDetail is a broadcast with its recipient rows attached.
type BroadcastDetail struct {
	Broadcast  *models.Broadcast            `json:"broadcast"`
	Recipients []*models.BroadcastRecipient `json:"recipients"`
}

// RecipientStatusUpdate is one provider status callback, already parsed by
// the webhook ingestion path. Either RecipientID or ProviderMessageID
// identifies the row.
type RecipientStatusUpdate struct {
	RecipientID       string                 `json:"recipient_id,omitempty"`
	ProviderMessageID string                 `json:"provider_message_id,omitempty"`
	Status            models.RecipientStatus `json:"status"`
	ErrorCode         int                    `json:"error_code,omitempty"`
	ErrorMessage      string                 `json:"error_message,omitempty"`
}

// GoalEvaluator is the pluggable exit-on-goal predicate. A nil evaluator
// means goal exits never fire.
type GoalEvaluator func(sequence *models.Sequence, enrollment *models.SequenceEnrollment) (bool, error)

type HealthState string

const (
	HealthStateHealthy   HealthState = "healthy"
	HealthStateDegraded  HealthState = "degraded"
	HealthStateUnhealthy HealthState = "unhealthy"
)

const (
	ComponentStatusRunning      = "running"
	ComponentStatusStopped      = "stopped"
	ComponentStatusConnected    = "connected"
	ComponentStatusDisconnected = "disconnected"
)

type HealthStatus struct {
	Status               HealthState           `json:"status"`
	SchedulerStatus      string                `json:"scheduler_status"`
	DatabaseStatus       string                `json:"database_status"`
	RedisStatus          string                `json:"redis_status"`
	CircuitBreakerStatus string                `json:"circuit_breaker_status,omitempty"`
	CircuitBreakerState  provider.BreakerState `json:"circuit_breaker_state,omitempty"`
}
