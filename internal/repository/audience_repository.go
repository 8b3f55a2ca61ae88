package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/pkozlov/outreach/internal/models"
)

const leadColumns = `id, company_id, name, phone, mobile_phone, status, source, assigned_to, created_at`
const contactColumns = `id, company_id, first_name, last_name, phone, mobile_phone, lead_id, created_at`

type audienceRepository struct {
	db *sqlx.DB
}

func NewAudienceRepository(db *sqlx.DB) AudienceRepository {
	return &audienceRepository{
		db: db,
	}
}

// ListLeadsWithPhone returns all leads in scope that carry a phone number.
func (r *audienceRepository) ListLeadsWithPhone(companyID string) ([]*models.Lead, error) {
	query := `
		SELECT ` + leadColumns + `
		FROM leads
		WHERE company_id = $1
		  AND ((phone IS NOT NULL AND phone <> '') OR (mobile_phone IS NOT NULL AND mobile_phone <> ''))
		ORDER BY created_at ASC
	`

	var leads []*models.Lead
	if err := r.db.Select(&leads, query, companyID); err != nil {
		return nil, fmt.Errorf("failed to list leads with phone: %w", err)
	}

	return leads, nil
}

// ListLeadsFiltered applies recipient filters before the phone check.
func (r *audienceRepository) ListLeadsFiltered(companyID string, filters *models.RecipientFilters) ([]*models.Lead, error) {
	query := `
		SELECT ` + leadColumns + `
		FROM leads
		WHERE company_id = $1
		  AND ((phone IS NOT NULL AND phone <> '') OR (mobile_phone IS NOT NULL AND mobile_phone <> ''))
	`
	args := []interface{}{companyID}

	if filters != nil {
		if filters.Status != nil {
			args = append(args, *filters.Status)
			query += fmt.Sprintf(` AND status = $%d`, len(args))
		}
		if filters.Source != nil {
			args = append(args, *filters.Source)
			query += fmt.Sprintf(` AND source = $%d`, len(args))
		}
		if filters.AssignedTo != nil {
			args = append(args, *filters.AssignedTo)
			query += fmt.Sprintf(` AND assigned_to = $%d`, len(args))
		}
		if filters.CreatedAfter != nil {
			args = append(args, *filters.CreatedAfter)
			query += fmt.Sprintf(` AND created_at >= $%d`, len(args))
		}
		if filters.CreatedBefore != nil {
			args = append(args, *filters.CreatedBefore)
			query += fmt.Sprintf(` AND created_at <= $%d`, len(args))
		}
	}
	query += ` ORDER BY created_at ASC`

	var leads []*models.Lead
	if err := r.db.Select(&leads, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list filtered leads: %w", err)
	}

	return leads, nil
}

func (r *audienceRepository) GetLeadsByIDs(companyID string, ids []string) ([]*models.Lead, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`
		SELECT `+leadColumns+`
		FROM leads
		WHERE company_id = ? AND id IN (?)
	`, companyID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build lead query: %w", err)
	}

	var leads []*models.Lead
	if err := r.db.Select(&leads, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to get leads by ids: %w", err)
	}

	return leads, nil
}

func (r *audienceRepository) GetLead(id string) (*models.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`

	var lead models.Lead
	err := r.db.Get(&lead, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}

	return &lead, nil
}

func (r *audienceRepository) ListContactsWithPhone(companyID string) ([]*models.Contact, error) {
	query := `
		SELECT ` + contactColumns + `
		FROM contacts
		WHERE company_id = $1
		  AND ((phone IS NOT NULL AND phone <> '') OR (mobile_phone IS NOT NULL AND mobile_phone <> ''))
		ORDER BY created_at ASC
	`

	var contacts []*models.Contact
	if err := r.db.Select(&contacts, query, companyID); err != nil {
		return nil, fmt.Errorf("failed to list contacts with phone: %w", err)
	}

	return contacts, nil
}

func (r *audienceRepository) GetContactsByIDs(companyID string, ids []string) ([]*models.Contact, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`
		SELECT `+contactColumns+`
		FROM contacts
		WHERE company_id = ? AND id IN (?)
	`, companyID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build contact query: %w", err)
	}

	var contacts []*models.Contact
	if err := r.db.Select(&contacts, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to get contacts by ids: %w", err)
	}

	return contacts, nil
}

// HasInboundMessageSince reports whether the lead produced an inbound
// message after the given instant. Drives the exit-on-reply check.
func (r *audienceRepository) HasInboundMessageSince(leadID string, since time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM messages
			WHERE lead_id = $1 AND direction = $2 AND created_at >= $3
		)
	`

	var exists bool
	if err := r.db.Get(&exists, query, leadID, models.MessageDirectionInbound, since); err != nil {
		return false, fmt.Errorf("failed to check inbound messages: %w", err)
	}

	return exists, nil
}

// CreateMessage appends one row to the message log.
func (r *audienceRepository) CreateMessage(message *models.Message) error {
	query := `
		INSERT INTO messages (
			id, company_id, provider_message_id, address, direction,
			message_type, content, lead_id, contact_id, sent_at, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	message.CreatedAt = time.Now()

	_, err := r.db.Exec(query,
		message.ID, message.CompanyID, message.ProviderMessageID, message.Address,
		message.Direction, message.MessageType, message.Content,
		message.LeadID, message.ContactID, message.SentAt, message.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}

	return nil
}
