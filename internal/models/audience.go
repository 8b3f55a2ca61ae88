package models

import (
	"database/sql"
	"time"
)

// Lead is the subset of the CRM lead record the messaging engine reads:
// identity, phone attributes and the fields entry conditions and recipient
// filters match on.
type Lead struct {
	ID          string         `db:"id" json:"id"`
	CompanyID   string         `db:"company_id" json:"company_id"`
	Name        sql.NullString `db:"name" json:"name,omitempty"`
	Phone       sql.NullString `db:"phone" json:"phone,omitempty"`
	MobilePhone sql.NullString `db:"mobile_phone" json:"mobile_phone,omitempty"`
	Status      sql.NullString `db:"status" json:"status,omitempty"`
	Source      sql.NullString `db:"source" json:"source,omitempty"`
	AssignedTo  sql.NullString `db:"assigned_to" json:"assigned_to,omitempty"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
}

// BestPhone prefers the mobile number over the landline, as the provider
// only reaches mobile addresses reliably.
func (l *Lead) BestPhone() string {
	if l.MobilePhone.Valid && l.MobilePhone.String != "" {
		return l.MobilePhone.String
	}
	return l.Phone.String
}

// Contact is the subset of the CRM contact record used for recipient
// resolution.
type Contact struct {
	ID          string         `db:"id" json:"id"`
	CompanyID   string         `db:"company_id" json:"company_id"`
	FirstName   sql.NullString `db:"first_name" json:"first_name,omitempty"`
	LastName    sql.NullString `db:"last_name" json:"last_name,omitempty"`
	Phone       sql.NullString `db:"phone" json:"phone,omitempty"`
	MobilePhone sql.NullString `db:"mobile_phone" json:"mobile_phone,omitempty"`
	LeadID      sql.NullString `db:"lead_id" json:"lead_id,omitempty"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
}

// BestPhone returns the contact's reachable number, preferring mobile.
func (c *Contact) BestPhone() string {
	if c.Phone.Valid && c.Phone.String != "" {
		return c.Phone.String
	}
	return c.MobilePhone.String
}

type MessageDirection string

const (
	MessageDirectionInbound  MessageDirection = "inbound"
	MessageDirectionOutbound MessageDirection = "outbound"
)

// Message is one entry in the per-address message log. Outbound rows are
// written on every successful send; inbound rows arrive from the webhook
// ingestion path and feed the exit-on-reply check.
type Message struct {
	ID                string           `db:"id" json:"id"`
	CompanyID         string           `db:"company_id" json:"company_id"`
	ProviderMessageID sql.NullString   `db:"provider_message_id" json:"provider_message_id,omitempty"`
	Address           string           `db:"address" json:"address"`
	Direction         MessageDirection `db:"direction" json:"direction"`
	MessageType       MessageType      `db:"message_type" json:"message_type"`
	Content           sql.NullString   `db:"content" json:"content,omitempty"`
	LeadID            sql.NullString   `db:"lead_id" json:"lead_id,omitempty"`
	ContactID         sql.NullString   `db:"contact_id" json:"contact_id,omitempty"`
	SentAt            sql.NullTime     `db:"sent_at" json:"sent_at,omitempty"`
	CreatedAt         time.Time        `db:"created_at" json:"created_at"`
}
