package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/pkozlov/outreach/internal/models"
)

const enrollmentColumns = `
	id, sequence_id, lead_id, current_step, status, next_run_at,
	enrolled_by, started_at, completed_at, created_at, updated_at
`

type enrollmentRepository struct {
	db *sqlx.DB
}

func NewEnrollmentRepository(db *sqlx.DB) EnrollmentRepository {
	return &enrollmentRepository{
		db: db,
	}
}

func (r *enrollmentRepository) Create(enrollment *models.SequenceEnrollment) error {
	query := `
		INSERT INTO sequence_enrollments (
			id, sequence_id, lead_id, current_step, status, next_run_at,
			enrolled_by, started_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	now := time.Now()
	enrollment.CreatedAt = now
	enrollment.UpdatedAt = now

	_, err := r.db.Exec(query,
		enrollment.ID, enrollment.SequenceID, enrollment.LeadID,
		enrollment.CurrentStep, enrollment.Status, enrollment.NextRunAt,
		enrollment.EnrolledBy, enrollment.StartedAt,
		enrollment.CreatedAt, enrollment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create enrollment: %w", err)
	}

	return nil
}

func (r *enrollmentRepository) GetByID(id string) (*models.SequenceEnrollment, error) {
	query := `SELECT ` + enrollmentColumns + ` FROM sequence_enrollments WHERE id = $1`

	var enrollment models.SequenceEnrollment
	err := r.db.Get(&enrollment, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get enrollment: %w", err)
	}

	return &enrollment, nil
}

// GetBySequenceAndLead returns the single enrollment row for a
// (sequence, lead) pair regardless of status.
func (r *enrollmentRepository) GetBySequenceAndLead(sequenceID, leadID string) (*models.SequenceEnrollment, error) {
	query := `
		SELECT ` + enrollmentColumns + `
		FROM sequence_enrollments
		WHERE sequence_id = $1 AND lead_id = $2
	`

	var enrollment models.SequenceEnrollment
	err := r.db.Get(&enrollment, query, sequenceID, leadID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get enrollment: %w", err)
	}

	return &enrollment, nil
}

func (r *enrollmentRepository) ListBySequence(sequenceID string) ([]*models.SequenceEnrollment, error) {
	query := `
		SELECT ` + enrollmentColumns + `
		FROM sequence_enrollments
		WHERE sequence_id = $1
		ORDER BY created_at DESC
	`

	var enrollments []*models.SequenceEnrollment
	if err := r.db.Select(&enrollments, query, sequenceID); err != nil {
		return nil, fmt.Errorf("failed to list enrollments: %w", err)
	}

	return enrollments, nil
}

// ListDue returns active enrollments whose next_run_at has passed, oldest
// first, capped at limit to bound sweep duration.
func (r *enrollmentRepository) ListDue(now time.Time, limit int) ([]*models.SequenceEnrollment, error) {
	query := `
		SELECT ` + enrollmentColumns + `
		FROM sequence_enrollments
		WHERE status = $1 AND next_run_at <= $2
		ORDER BY next_run_at ASC
		LIMIT $3
	`

	var enrollments []*models.SequenceEnrollment
	if err := r.db.Select(&enrollments, query, models.EnrollmentStatusActive, now, limit); err != nil {
		return nil, fmt.Errorf("failed to list due enrollments: %w", err)
	}

	return enrollments, nil
}

// Reactivate restarts a completed or cancelled enrollment from step 0.
func (r *enrollmentRepository) Reactivate(id string, nextRunAt time.Time) error {
	query := `
		UPDATE sequence_enrollments
		SET status = $2, current_step = 0, next_run_at = $3,
		    started_at = $4, completed_at = NULL, updated_at = $4
		WHERE id = $1
	`

	now := time.Now()
	_, err := r.db.Exec(query, id, models.EnrollmentStatusActive, nextRunAt, now)
	if err != nil {
		return fmt.Errorf("failed to reactivate enrollment: %w", err)
	}

	return nil
}

// Advance moves the enrollment to the next step and schedules it.
func (r *enrollmentRepository) Advance(id string, currentStep int, nextRunAt time.Time) error {
	query := `
		UPDATE sequence_enrollments
		SET current_step = $2, next_run_at = $3, updated_at = $4
		WHERE id = $1
	`

	_, err := r.db.Exec(query, id, currentStep, nextRunAt, time.Now())
	if err != nil {
		return fmt.Errorf("failed to advance enrollment: %w", err)
	}

	return nil
}

func (r *enrollmentRepository) UpdateStatus(id string, status models.EnrollmentStatus, completedAt *time.Time) error {
	query := `
		UPDATE sequence_enrollments
		SET status = $2, completed_at = COALESCE($3, completed_at), updated_at = $4
		WHERE id = $1
	`

	var completed sql.NullTime
	if completedAt != nil {
		completed = sql.NullTime{Time: *completedAt, Valid: true}
	}

	_, err := r.db.Exec(query, id, status, completed, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update enrollment status: %w", err)
	}

	return nil
}

// CancelBySequenceAndLead cancels the pair's active enrollment, if any, and
// reports how many rows flipped. Completed and already-cancelled rows are
// left alone so repeated unenrolls stay idempotent.
func (r *enrollmentRepository) CancelBySequenceAndLead(sequenceID, leadID string) (int64, error) {
	query := `
		UPDATE sequence_enrollments
		SET status = $3, updated_at = $4
		WHERE sequence_id = $1 AND lead_id = $2 AND status = $5
	`

	result, err := r.db.Exec(query, sequenceID, leadID, models.EnrollmentStatusCancelled, time.Now(), models.EnrollmentStatusActive)
	if err != nil {
		return 0, fmt.Errorf("failed to cancel enrollment: %w", err)
	}

	cancelled, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count cancelled enrollments: %w", err)
	}

	return cancelled, nil
}
