// Package models defines data structures used throughout the application.
package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"time"
)

// MessageType discriminates the broadcast message payload.
type MessageType string

const (
	MessageTypeText     MessageType = "text"
	MessageTypeTemplate MessageType = "template"
	MessageTypeMedia    MessageType = "media"
)

// RecipientType selects how a broadcast's audience is resolved.
type RecipientType string

const (
	RecipientTypeLeads    RecipientType = "leads"
	RecipientTypeContacts RecipientType = "contacts"
	RecipientTypeCustom   RecipientType = "custom"
	RecipientTypeFilter   RecipientType = "filter"
)

type BroadcastStatus string

const (
	BroadcastStatusDraft     BroadcastStatus = "draft"
	BroadcastStatusScheduled BroadcastStatus = "scheduled"
	BroadcastStatusSending   BroadcastStatus = "sending"
	BroadcastStatusSent      BroadcastStatus = "sent"
	BroadcastStatusFailed    BroadcastStatus = "failed"
	BroadcastStatusCancelled BroadcastStatus = "cancelled"
)

// Progress holds the running delivery counters of a broadcast. Counters only
// grow; delivered/read are driven by provider callbacks.
type Progress struct {
	Sent      int `json:"sent"`
	Delivered int `json:"delivered"`
	Read      int `json:"read"`
	Failed    int `json:"failed"`
}

func (p Progress) Value() (driver.Value, error) { return json.Marshal(p) }
func (p *Progress) Scan(src interface{}) error  { return scanJSON(src, p) }

// TemplateParams are positional parameters for a template message.
type TemplateParams []string

func (p TemplateParams) Value() (driver.Value, error) {
	if p == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(p)
}
func (p *TemplateParams) Scan(src interface{}) error { return scanJSON(src, p) }

// RecipientIDs is the explicit id list for custom recipient resolution. Each
// entry is prefixed by kind: "lead_<id>" or "contact_<id>".
type RecipientIDs []string

func (r RecipientIDs) Value() (driver.Value, error) {
	if r == nil {
		return nil, nil
	}
	return json.Marshal(r)
}
func (r *RecipientIDs) Scan(src interface{}) error { return scanJSON(src, r) }

// RecipientFilters narrows lead selection for filter-type broadcasts.
type RecipientFilters struct {
	Status        *string    `json:"status,omitempty"`
	Source        *string    `json:"source,omitempty"`
	AssignedTo    *string    `json:"assigned_to,omitempty"`
	CreatedAfter  *time.Time `json:"created_after,omitempty"`
	CreatedBefore *time.Time `json:"created_before,omitempty"`
}

func (f *RecipientFilters) Value() (driver.Value, error) {
	if f == nil {
		return nil, nil
	}
	return json.Marshal(f)
}
func (f *RecipientFilters) Scan(src interface{}) error { return scanJSON(src, f) }

// SendTimeWindow restricts sending to a daily window. Stored with the
// broadcast/sequence; scheduling currently applies step delays only.
type SendTimeWindow struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	Timezone string `json:"timezone"`
}

func (w *SendTimeWindow) Value() (driver.Value, error) {
	if w == nil {
		return nil, nil
	}
	return json.Marshal(w)
}
func (w *SendTimeWindow) Scan(src interface{}) error { return scanJSON(src, w) }

// Broadcast is one bulk-send job: a message spec, a recipient spec and a
// delivery policy. recipient_count is fixed at creation and never changes.
type Broadcast struct {
	ID          string          `db:"id" json:"id"`
	CompanyID   string          `db:"company_id" json:"company_id"`
	Name        string          `db:"name" json:"name"`
	Description sql.NullString  `db:"description" json:"description,omitempty"`
	MessageType MessageType     `db:"message_type" json:"message_type"`

	Content          sql.NullString `db:"content" json:"content,omitempty"`
	TemplateName     sql.NullString `db:"template_name" json:"template_name,omitempty"`
	TemplateLanguage string         `db:"template_language" json:"template_language"`
	TemplateParams   TemplateParams `db:"template_params" json:"template_params"`
	MediaType        sql.NullString `db:"media_type" json:"media_type,omitempty"`
	MediaURL         sql.NullString `db:"media_url" json:"media_url,omitempty"`
	MediaCaption     sql.NullString `db:"media_caption" json:"media_caption,omitempty"`

	RecipientType    RecipientType     `db:"recipient_type" json:"recipient_type"`
	RecipientIDs     RecipientIDs      `db:"recipient_ids" json:"recipient_ids,omitempty"`
	RecipientFilters *RecipientFilters `db:"recipient_filters" json:"recipient_filters,omitempty"`
	RecipientCount   int               `db:"recipient_count" json:"recipient_count"`

	MessagesPerMinute int             `db:"messages_per_minute" json:"messages_per_minute"`
	BatchSize         int             `db:"batch_size" json:"batch_size"`
	ScheduledAt       sql.NullTime    `db:"scheduled_at" json:"scheduled_at,omitempty"`
	SendTimeWindow    *SendTimeWindow `db:"send_time_window" json:"send_time_window,omitempty"`

	Status      BroadcastStatus `db:"status" json:"status"`
	Progress    Progress        `db:"progress" json:"progress"`
	StartedAt   sql.NullTime    `db:"started_at" json:"started_at,omitempty"`
	CompletedAt sql.NullTime    `db:"completed_at" json:"completed_at,omitempty"`
	CreatedBy   sql.NullString  `db:"created_by" json:"created_by,omitempty"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}

// BroadcastStats aggregates live recipient status counts for one broadcast.
type BroadcastStats struct {
	Total     int `json:"total"`
	Sent      int `json:"sent"`
	Delivered int `json:"delivered"`
	Read      int `json:"read"`
	Failed    int `json:"failed"`
	Pending   int `json:"pending"`
	Skipped   int `json:"skipped"`
}
