package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/pkozlov/outreach/internal/models"
)

const recipientColumns = `
	id, broadcast_id, lead_id, contact_id, address, status,
	provider_message_id, error_code, error_message, sent_at, created_at, updated_at
`

type recipientRepository struct {
	db *sqlx.DB
}

func NewRecipientRepository(db *sqlx.DB) RecipientRepository {
	return &recipientRepository{
		db: db,
	}
}

// CreateBatch inserts all recipient rows of a broadcast in one transaction so
// recipient_count can never drift from the number of persisted rows.
func (r *recipientRepository) CreateBatch(recipients []*models.BroadcastRecipient) error {
	if len(recipients) == 0 {
		return nil
	}

	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO broadcast_recipients (
			id, broadcast_id, lead_id, contact_id, address, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	now := time.Now()
	for _, recipient := range recipients {
		recipient.CreatedAt = now
		recipient.UpdatedAt = now
		if _, err := tx.Exec(query,
			recipient.ID, recipient.BroadcastID, recipient.LeadID, recipient.ContactID,
			recipient.Address, recipient.Status, recipient.CreatedAt, recipient.UpdatedAt,
		); err != nil {
			return fmt.Errorf("failed to create broadcast recipient: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit recipients: %w", err)
	}

	return nil
}

func (r *recipientRepository) GetByID(id string) (*models.BroadcastRecipient, error) {
	query := `SELECT ` + recipientColumns + ` FROM broadcast_recipients WHERE id = $1`

	var recipient models.BroadcastRecipient
	err := r.db.Get(&recipient, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get recipient: %w", err)
	}

	return &recipient, nil
}

func (r *recipientRepository) GetByProviderMessageID(providerMessageID string) (*models.BroadcastRecipient, error) {
	query := `SELECT ` + recipientColumns + ` FROM broadcast_recipients WHERE provider_message_id = $1`

	var recipient models.BroadcastRecipient
	err := r.db.Get(&recipient, query, providerMessageID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get recipient by provider message id: %w", err)
	}

	return &recipient, nil
}

// ListPending returns a broadcast's undispatched recipients in creation
// order, which fixes the batch partitioning order.
func (r *recipientRepository) ListPending(broadcastID string) ([]*models.BroadcastRecipient, error) {
	query := `
		SELECT ` + recipientColumns + `
		FROM broadcast_recipients
		WHERE broadcast_id = $1 AND status = $2
		ORDER BY created_at ASC, id ASC
	`

	var recipients []*models.BroadcastRecipient
	if err := r.db.Select(&recipients, query, broadcastID, models.RecipientStatusPending); err != nil {
		return nil, fmt.Errorf("failed to list pending recipients: %w", err)
	}

	return recipients, nil
}

func (r *recipientRepository) ListByBroadcast(broadcastID string) ([]*models.BroadcastRecipient, error) {
	query := `
		SELECT ` + recipientColumns + `
		FROM broadcast_recipients
		WHERE broadcast_id = $1
		ORDER BY created_at ASC, id ASC
	`

	var recipients []*models.BroadcastRecipient
	if err := r.db.Select(&recipients, query, broadcastID); err != nil {
		return nil, fmt.Errorf("failed to list recipients: %w", err)
	}

	return recipients, nil
}

func (r *recipientRepository) MarkSent(id, providerMessageID string, sentAt time.Time) error {
	query := `
		UPDATE broadcast_recipients
		SET status = $2, provider_message_id = $3, sent_at = $4, updated_at = $5
		WHERE id = $1
	`

	_, err := r.db.Exec(query, id, models.RecipientStatusSent, providerMessageID, sentAt, time.Now())
	if err != nil {
		return fmt.Errorf("failed to mark recipient sent: %w", err)
	}

	return nil
}

func (r *recipientRepository) MarkFailed(id string, errorCode int, errorMessage string) error {
	query := `
		UPDATE broadcast_recipients
		SET status = $2, error_code = $3, error_message = $4, updated_at = $5
		WHERE id = $1
	`

	_, err := r.db.Exec(query, id, models.RecipientStatusFailed, errorCode, errorMessage, time.Now())
	if err != nil {
		return fmt.Errorf("failed to mark recipient failed: %w", err)
	}

	return nil
}

func (r *recipientRepository) UpdateStatus(id string, status models.RecipientStatus) error {
	query := `UPDATE broadcast_recipients SET status = $2, updated_at = $3 WHERE id = $1`

	_, err := r.db.Exec(query, id, status, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update recipient status: %w", err)
	}

	return nil
}

// CountByStatus aggregates recipient rows per status for the stats endpoint.
func (r *recipientRepository) CountByStatus(broadcastID string) (map[models.RecipientStatus]int, error) {
	query := `
		SELECT status, COUNT(*) AS count
		FROM broadcast_recipients
		WHERE broadcast_id = $1
		GROUP BY status
	`

	rows := []struct {
		Status models.RecipientStatus `db:"status"`
		Count  int                    `db:"count"`
	}{}

	if err := r.db.Select(&rows, query, broadcastID); err != nil {
		return nil, fmt.Errorf("failed to count recipients by status: %w", err)
	}

	counts := make(map[models.RecipientStatus]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}

	return counts, nil
}
