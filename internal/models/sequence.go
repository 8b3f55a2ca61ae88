package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"time"
)

type StepType string

const (
	StepTypeText     StepType = "text"
	StepTypeTemplate StepType = "template"
)

// SequenceStep is one ordered step of a drip campaign. DelayHours is counted
// from the completion of the previous step.
type SequenceStep struct {
	Type         StepType       `json:"type"`
	MessageText  string         `json:"message_text,omitempty"`
	TemplateName string         `json:"template_name,omitempty"`
	Language     string         `json:"language,omitempty"`
	Parameters   TemplateParams `json:"parameters,omitempty"`
	DelayHours   int            `json:"delay"`
}

type SequenceSteps []SequenceStep

func (s SequenceSteps) Value() (driver.Value, error) {
	if s == nil {
		return json.Marshal([]SequenceStep{})
	}
	return json.Marshal(s)
}
func (s *SequenceSteps) Scan(src interface{}) error { return scanJSON(src, s) }

// EntryConditions is the predicate used for opportunistic auto-enrollment.
type EntryConditions struct {
	Source *string `json:"source,omitempty"`
	Status *string `json:"status,omitempty"`
}

func (c *EntryConditions) Value() (driver.Value, error) {
	if c == nil {
		return nil, nil
	}
	return json.Marshal(c)
}
func (c *EntryConditions) Scan(src interface{}) error { return scanJSON(src, c) }

// Matches reports whether a lead satisfies the entry conditions. A nil
// condition set never matches; unset fields are wildcards.
func (c *EntryConditions) Matches(lead *Lead) bool {
	if c == nil || (c.Source == nil && c.Status == nil) {
		return false
	}
	if c.Source != nil && lead.Source.String != *c.Source {
		return false
	}
	if c.Status != nil && lead.Status.String != *c.Status {
		return false
	}
	return true
}

// SequenceStats holds the running counters of a sequence.
type SequenceStats struct {
	Enrolled     int `json:"enrolled"`
	Active       int `json:"active"`
	Completed    int `json:"completed"`
	MessagesSent int `json:"messages_sent"`
}

func (s SequenceStats) Value() (driver.Value, error) { return json.Marshal(s) }
func (s *SequenceStats) Scan(src interface{}) error  { return scanJSON(src, s) }

// Sequence is a reusable drip-campaign definition: an ordered, non-empty step
// list plus exit and pacing policy.
type Sequence struct {
	ID                string           `db:"id" json:"id"`
	CompanyID         string           `db:"company_id" json:"company_id"`
	Name              string           `db:"name" json:"name"`
	Description       sql.NullString   `db:"description" json:"description,omitempty"`
	Steps             SequenceSteps    `db:"steps" json:"steps"`
	EntryConditions   *EntryConditions `db:"entry_conditions" json:"entry_conditions,omitempty"`
	ExitOnReply       bool             `db:"exit_on_reply" json:"exit_on_reply"`
	ExitOnGoal        sql.NullString   `db:"exit_on_goal" json:"exit_on_goal,omitempty"`
	IsActive          bool             `db:"is_active" json:"is_active"`
	SendTimeWindow    *SendTimeWindow  `db:"send_time_window" json:"send_time_window,omitempty"`
	MaxMessagesPerDay int              `db:"max_messages_per_day" json:"max_messages_per_day"`
	Stats             SequenceStats    `db:"stats" json:"stats"`
	CreatedBy         sql.NullString   `db:"created_by" json:"created_by,omitempty"`
	CreatedAt         time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time        `db:"updated_at" json:"updated_at"`
}

type EnrollmentStatus string

const (
	EnrollmentStatusActive    EnrollmentStatus = "active"
	EnrollmentStatusCompleted EnrollmentStatus = "completed"
	EnrollmentStatusCancelled EnrollmentStatus = "cancelled"
)

// SequenceEnrollment is one lead's live progress through one sequence.
// CurrentStep is the index of the next step to run; at most one active
// enrollment exists per (sequence, lead) pair.
type SequenceEnrollment struct {
	ID          string           `db:"id" json:"id"`
	SequenceID  string           `db:"sequence_id" json:"sequence_id"`
	LeadID      string           `db:"lead_id" json:"lead_id"`
	CurrentStep int              `db:"current_step" json:"current_step"`
	Status      EnrollmentStatus `db:"status" json:"status"`
	NextRunAt   sql.NullTime     `db:"next_run_at" json:"next_run_at,omitempty"`
	EnrolledBy  sql.NullString   `db:"enrolled_by" json:"enrolled_by,omitempty"`
	StartedAt   sql.NullTime     `db:"started_at" json:"started_at,omitempty"`
	CompletedAt sql.NullTime     `db:"completed_at" json:"completed_at,omitempty"`
	CreatedAt   time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time        `db:"updated_at" json:"updated_at"`
}

// SweepResult summarizes one scheduler sweep over due enrollments.
type SweepResult struct {
	Processed int `json:"processed"`
	Errors    int `json:"errors"`
	Total     int `json:"total"`
}
