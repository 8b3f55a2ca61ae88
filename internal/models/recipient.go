package models

import (
	"database/sql"
	"time"
)

type RecipientStatus string

const (
	RecipientStatusPending   RecipientStatus = "pending"
	RecipientStatusSent      RecipientStatus = "sent"
	RecipientStatusDelivered RecipientStatus = "delivered"
	RecipientStatusRead      RecipientStatus = "read"
	RecipientStatusFailed    RecipientStatus = "failed"
	RecipientStatusSkipped   RecipientStatus = "skipped"
)

// recipientStatusRank orders the delivery ladder. failed and skipped sit
// outside the ladder: terminal, and reachable only before delivery.
var recipientStatusRank = map[RecipientStatus]int{
	RecipientStatusPending:   0,
	RecipientStatusSent:      1,
	RecipientStatusDelivered: 2,
	RecipientStatusRead:      3,
}

// CanTransition reports whether moving from s into to respects the
// forward-only lifecycle. Provider callbacks arrive in any order; a later
// stage must never be regressed by a stale callback, and a failure report
// for a message the provider already delivered is stale by definition.
func (s RecipientStatus) CanTransition(to RecipientStatus) bool {
	if s == RecipientStatusFailed || s == RecipientStatusSkipped {
		return false
	}
	if to == RecipientStatusFailed || to == RecipientStatusSkipped {
		return s == RecipientStatusPending || s == RecipientStatusSent
	}

	from, ok := recipientStatusRank[s]
	if !ok {
		return false
	}
	next, ok := recipientStatusRank[to]
	if !ok {
		return false
	}
	return next > from
}

// BroadcastRecipient is one target within a broadcast. The address is the
// normalized phone number handed to the provider.
type BroadcastRecipient struct {
	ID                string          `db:"id" json:"id"`
	BroadcastID       string          `db:"broadcast_id" json:"broadcast_id"`
	LeadID            sql.NullString  `db:"lead_id" json:"lead_id,omitempty"`
	ContactID         sql.NullString  `db:"contact_id" json:"contact_id,omitempty"`
	Address           string          `db:"address" json:"address"`
	Status            RecipientStatus `db:"status" json:"status"`
	ProviderMessageID sql.NullString  `db:"provider_message_id" json:"provider_message_id,omitempty"`
	ErrorCode         sql.NullInt64   `db:"error_code" json:"error_code,omitempty"`
	ErrorMessage      sql.NullString  `db:"error_message" json:"error_message,omitempty"`
	SentAt            sql.NullTime    `db:"sent_at" json:"sent_at,omitempty"`
	CreatedAt         time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time       `db:"updated_at" json:"updated_at"`
}

// ResolvedRecipient is the resolver's output: a deduplicated target reference
// with its normalized channel address.
type ResolvedRecipient struct {
	LeadID    string
	ContactID string
	Address   string
}
