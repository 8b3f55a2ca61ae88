package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/pkozlov/outreach/internal/models"
)

const broadcastColumns = `
	id, company_id, name, description, message_type,
	content, template_name, template_language, template_params,
	media_type, media_url, media_caption,
	recipient_type, recipient_ids, recipient_filters, recipient_count,
	messages_per_minute, batch_size, scheduled_at, send_time_window,
	status, progress, started_at, completed_at, created_by, created_at, updated_at
`

type broadcastRepository struct {
	db *sqlx.DB
}

func NewBroadcastRepository(db *sqlx.DB) BroadcastRepository {
	return &broadcastRepository{
		db: db,
	}
}

// Create inserts a broadcast row. Timestamps are stamped here.
func (r *broadcastRepository) Create(broadcast *models.Broadcast) error {
	query := `
		INSERT INTO broadcasts (
			id, company_id, name, description, message_type,
			content, template_name, template_language, template_params,
			media_type, media_url, media_caption,
			recipient_type, recipient_ids, recipient_filters, recipient_count,
			messages_per_minute, batch_size, scheduled_at, send_time_window,
			status, progress, created_by, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25
		)
	`

	now := time.Now()
	broadcast.CreatedAt = now
	broadcast.UpdatedAt = now

	_, err := r.db.Exec(query,
		broadcast.ID, broadcast.CompanyID, broadcast.Name, broadcast.Description, broadcast.MessageType,
		broadcast.Content, broadcast.TemplateName, broadcast.TemplateLanguage, broadcast.TemplateParams,
		broadcast.MediaType, broadcast.MediaURL, broadcast.MediaCaption,
		broadcast.RecipientType, broadcast.RecipientIDs, broadcast.RecipientFilters, broadcast.RecipientCount,
		broadcast.MessagesPerMinute, broadcast.BatchSize, broadcast.ScheduledAt, broadcast.SendTimeWindow,
		broadcast.Status, broadcast.Progress, broadcast.CreatedBy, broadcast.CreatedAt, broadcast.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create broadcast: %w", err)
	}

	return nil
}

func (r *broadcastRepository) GetByID(id string) (*models.Broadcast, error) {
	query := `SELECT ` + broadcastColumns + ` FROM broadcasts WHERE id = $1`

	var broadcast models.Broadcast
	err := r.db.Get(&broadcast, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get broadcast: %w", err)
	}

	return &broadcast, nil
}

// List returns a company's broadcasts, newest first, optionally filtered by
// status.
func (r *broadcastRepository) List(companyID string, status *models.BroadcastStatus) ([]*models.Broadcast, error) {
	query := `SELECT ` + broadcastColumns + ` FROM broadcasts WHERE company_id = $1`
	args := []interface{}{companyID}

	if status != nil {
		query += ` AND status = $2`
		args = append(args, *status)
	}
	query += ` ORDER BY created_at DESC`

	var broadcasts []*models.Broadcast
	if err := r.db.Select(&broadcasts, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list broadcasts: %w", err)
	}

	return broadcasts, nil
}

// UpdateStatus moves the broadcast through its lifecycle, stamping
// started_at/completed_at when provided.
func (r *broadcastRepository) UpdateStatus(id string, status models.BroadcastStatus, startedAt, completedAt *time.Time) error {
	query := `
		UPDATE broadcasts
		SET status = $2,
		    started_at = COALESCE($3, started_at),
		    completed_at = COALESCE($4, completed_at),
		    updated_at = $5
		WHERE id = $1
	`

	var started, completed sql.NullTime
	if startedAt != nil {
		started = sql.NullTime{Time: *startedAt, Valid: true}
	}
	if completedAt != nil {
		completed = sql.NullTime{Time: *completedAt, Valid: true}
	}

	result, err := r.db.Exec(query, id, status, started, completed, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update broadcast status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return models.ErrNotFound
	}

	return nil
}

// UpdateProgressCounts overwrites the dispatcher-owned counters without
// touching delivered/read, which are bumped by provider callbacks.
func (r *broadcastRepository) UpdateProgressCounts(id string, sent, failed int) error {
	query := `
		UPDATE broadcasts
		SET progress = progress || jsonb_build_object('sent', $2::int, 'failed', $3::int),
		    updated_at = $4
		WHERE id = $1
	`

	_, err := r.db.Exec(query, id, sent, failed, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update broadcast progress: %w", err)
	}

	return nil
}

// IncrementProgress bumps one counter inside the progress document.
func (r *broadcastRepository) IncrementProgress(id, field string, delta int) error {
	query := `
		UPDATE broadcasts
		SET progress = jsonb_set(
			progress,
			ARRAY[$2],
			(COALESCE(progress->>$2, '0')::int + $3)::text::jsonb
		),
		updated_at = $4
		WHERE id = $1
	`

	_, err := r.db.Exec(query, id, field, delta, time.Now())
	if err != nil {
		return fmt.Errorf("failed to increment broadcast progress %s: %w", field, err)
	}

	return nil
}

// Delete removes a broadcast; recipient rows cascade.
func (r *broadcastRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM broadcasts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete broadcast: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return models.ErrNotFound
	}

	return nil
}
