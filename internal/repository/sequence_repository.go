package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/pkozlov/outreach/internal/models"
)

const sequenceColumns = `
	id, company_id, name, description, steps, entry_conditions,
	exit_on_reply, exit_on_goal, is_active, send_time_window,
	max_messages_per_day, stats, created_by, created_at, updated_at
`

type sequenceRepository struct {
	db *sqlx.DB
}

func NewSequenceRepository(db *sqlx.DB) SequenceRepository {
	return &sequenceRepository{
		db: db,
	}
}

func (r *sequenceRepository) Create(sequence *models.Sequence) error {
	query := `
		INSERT INTO sequences (
			id, company_id, name, description, steps, entry_conditions,
			exit_on_reply, exit_on_goal, is_active, send_time_window,
			max_messages_per_day, stats, created_by, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	now := time.Now()
	sequence.CreatedAt = now
	sequence.UpdatedAt = now

	_, err := r.db.Exec(query,
		sequence.ID, sequence.CompanyID, sequence.Name, sequence.Description,
		sequence.Steps, sequence.EntryConditions,
		sequence.ExitOnReply, sequence.ExitOnGoal, sequence.IsActive, sequence.SendTimeWindow,
		sequence.MaxMessagesPerDay, sequence.Stats, sequence.CreatedBy,
		sequence.CreatedAt, sequence.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create sequence: %w", err)
	}

	return nil
}

func (r *sequenceRepository) GetByID(id string) (*models.Sequence, error) {
	query := `SELECT ` + sequenceColumns + ` FROM sequences WHERE id = $1`

	var sequence models.Sequence
	err := r.db.Get(&sequence, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get sequence: %w", err)
	}

	return &sequence, nil
}

// List returns a company's sequences, newest first. isActive filters on the
// activation flag; search matches name or description.
func (r *sequenceRepository) List(companyID string, isActive *bool, search string) ([]*models.Sequence, error) {
	query := `SELECT ` + sequenceColumns + ` FROM sequences WHERE company_id = $1`
	args := []interface{}{companyID}

	if isActive != nil {
		args = append(args, *isActive)
		query += fmt.Sprintf(` AND is_active = $%d`, len(args))
	}
	if search != "" {
		args = append(args, "%"+search+"%")
		query += fmt.Sprintf(` AND (name ILIKE $%d OR description ILIKE $%d)`, len(args), len(args))
	}
	query += ` ORDER BY created_at DESC`

	var sequences []*models.Sequence
	if err := r.db.Select(&sequences, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list sequences: %w", err)
	}

	return sequences, nil
}

// ListActiveWithEntryConditions returns active sequences that define entry
// conditions, the candidates for auto-enrollment.
func (r *sequenceRepository) ListActiveWithEntryConditions(companyID string) ([]*models.Sequence, error) {
	query := `
		SELECT ` + sequenceColumns + `
		FROM sequences
		WHERE company_id = $1 AND is_active = TRUE AND entry_conditions IS NOT NULL
		ORDER BY created_at ASC
	`

	var sequences []*models.Sequence
	if err := r.db.Select(&sequences, query, companyID); err != nil {
		return nil, fmt.Errorf("failed to list auto-enroll sequences: %w", err)
	}

	return sequences, nil
}

func (r *sequenceRepository) Update(sequence *models.Sequence) error {
	query := `
		UPDATE sequences
		SET name = $2, description = $3, steps = $4, entry_conditions = $5,
		    exit_on_reply = $6, exit_on_goal = $7, is_active = $8,
		    send_time_window = $9, max_messages_per_day = $10, updated_at = $11
		WHERE id = $1
	`

	sequence.UpdatedAt = time.Now()

	result, err := r.db.Exec(query,
		sequence.ID, sequence.Name, sequence.Description, sequence.Steps, sequence.EntryConditions,
		sequence.ExitOnReply, sequence.ExitOnGoal, sequence.IsActive,
		sequence.SendTimeWindow, sequence.MaxMessagesPerDay, sequence.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update sequence: %w", err)
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

func (r *sequenceRepository) Delete(id, companyID string) error {
	result, err := r.db.Exec(`DELETE FROM sequences WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete sequence: %w", err)
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

// IncrementStat bumps one counter inside the stats document. Stats failures
// never break the calling flow, so callers usually only log the error.
func (r *sequenceRepository) IncrementStat(id, stat string, delta int) error {
	query := `
		UPDATE sequences
		SET stats = jsonb_set(
			stats,
			ARRAY[$2],
			(COALESCE(stats->>$2, '0')::int + $3)::text::jsonb
		),
		updated_at = $4
		WHERE id = $1
	`

	_, err := r.db.Exec(query, id, stat, delta, time.Now())
	if err != nil {
		return fmt.Errorf("failed to increment sequence stat %s: %w", stat, err)
	}

	return nil
}
