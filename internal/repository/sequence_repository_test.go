package repository_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkozlov/outreach/internal/models"
	"github.com/pkozlov/outreach/internal/repository"
)

func TestSequenceRepository_CreateAndGet(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewSequenceRepository(db)

	sequence := newTestSequence(testCompanyID)
	require.NoError(t, repo.Create(sequence))

	got, err := repo.GetByID(sequence.ID)
	require.NoError(t, err)
	assert.Equal(t, sequence.Name, got.Name)
	require.Len(t, got.Steps, 2)
	assert.Equal(t, models.StepTypeText, got.Steps[0].Type)
	assert.Equal(t, 48, got.Steps[1].DelayHours)
	assert.Equal(t, models.SequenceStats{}, got.Stats)
}

func TestSequenceRepository_List_Filters(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewSequenceRepository(db)

	active := newTestSequence(testCompanyID)
	active.Name = "Onboarding drip"
	require.NoError(t, repo.Create(active))

	inactive := newTestSequence(testCompanyID)
	inactive.Name = "Paused winback"
	inactive.IsActive = false
	require.NoError(t, repo.Create(inactive))

	all, err := repo.List(testCompanyID, nil, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	isActive := true
	activeOnly, err := repo.List(testCompanyID, &isActive, "")
	require.NoError(t, err)
	require.Len(t, activeOnly, 1)
	assert.Equal(t, active.ID, activeOnly[0].ID)

	searched, err := repo.List(testCompanyID, nil, "winback")
	require.NoError(t, err)
	require.Len(t, searched, 1)
	assert.Equal(t, inactive.ID, searched[0].ID)
}

func TestSequenceRepository_ListActiveWithEntryConditions(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewSequenceRepository(db)

	source := "website"
	auto := newTestSequence(testCompanyID)
	auto.EntryConditions = &models.EntryConditions{Source: &source}
	require.NoError(t, repo.Create(auto))

	manual := newTestSequence(testCompanyID)
	require.NoError(t, repo.Create(manual))

	inactive := newTestSequence(testCompanyID)
	inactive.IsActive = false
	inactive.EntryConditions = &models.EntryConditions{Source: &source}
	require.NoError(t, repo.Create(inactive))

	got, err := repo.ListActiveWithEntryConditions(testCompanyID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, auto.ID, got[0].ID)
}

func TestSequenceRepository_IncrementStat(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewSequenceRepository(db)

	sequence := newTestSequence(testCompanyID)
	require.NoError(t, repo.Create(sequence))

	require.NoError(t, repo.IncrementStat(sequence.ID, "enrolled", 1))
	require.NoError(t, repo.IncrementStat(sequence.ID, "active", 1))
	require.NoError(t, repo.IncrementStat(sequence.ID, "messages_sent", 3))
	require.NoError(t, repo.IncrementStat(sequence.ID, "active", -1))

	got, err := repo.GetByID(sequence.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SequenceStats{Enrolled: 1, Active: 0, Completed: 0, MessagesSent: 3}, got.Stats)
}

func TestSequenceRepository_Delete_ScopedByCompany(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewSequenceRepository(db)

	sequence := newTestSequence(testCompanyID)
	require.NoError(t, repo.Create(sequence))

	err := repo.Delete(sequence.ID, "other-company")
	assert.ErrorIs(t, err, models.ErrNotFound)

	require.NoError(t, repo.Delete(sequence.ID, testCompanyID))

	_, err = repo.GetByID(sequence.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestEnrollmentRepository_Lifecycle(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	sequenceRepo := repository.NewSequenceRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)

	sequence := newTestSequence(testCompanyID)
	require.NoError(t, sequenceRepo.Create(sequence))

	leadID := uuid.New().String()
	enrollment := newTestEnrollment(sequence.ID, leadID, time.Now().Add(-time.Minute))
	require.NoError(t, enrollmentRepo.Create(enrollment))

	got, err := enrollmentRepo.GetBySequenceAndLead(sequence.ID, leadID)
	require.NoError(t, err)
	assert.Equal(t, enrollment.ID, got.ID)
	assert.Equal(t, models.EnrollmentStatusActive, got.Status)
	assert.Equal(t, 0, got.CurrentStep)

	nextRun := time.Now().Add(48 * time.Hour)
	require.NoError(t, enrollmentRepo.Advance(enrollment.ID, 1, nextRun))

	got, err = enrollmentRepo.GetByID(enrollment.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.CurrentStep)
	assert.WithinDuration(t, nextRun, got.NextRunAt.Time, time.Second)

	completed := time.Now()
	require.NoError(t, enrollmentRepo.UpdateStatus(enrollment.ID, models.EnrollmentStatusCompleted, &completed))

	got, err = enrollmentRepo.GetByID(enrollment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentStatusCompleted, got.Status)
	assert.True(t, got.CompletedAt.Valid)

	// Reactivation restarts the same row from step zero.
	require.NoError(t, enrollmentRepo.Reactivate(enrollment.ID, time.Now()))

	got, err = enrollmentRepo.GetByID(enrollment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentStatusActive, got.Status)
	assert.Equal(t, 0, got.CurrentStep)
	assert.False(t, got.CompletedAt.Valid)
}

func TestEnrollmentRepository_ListDue(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	sequenceRepo := repository.NewSequenceRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)

	sequence := newTestSequence(testCompanyID)
	require.NoError(t, sequenceRepo.Create(sequence))

	now := time.Now()
	overdue := newTestEnrollment(sequence.ID, uuid.New().String(), now.Add(-2*time.Hour))
	justDue := newTestEnrollment(sequence.ID, uuid.New().String(), now.Add(-time.Minute))
	future := newTestEnrollment(sequence.ID, uuid.New().String(), now.Add(time.Hour))
	cancelled := newTestEnrollment(sequence.ID, uuid.New().String(), now.Add(-time.Hour))
	cancelled.Status = models.EnrollmentStatusCancelled

	for _, e := range []*models.SequenceEnrollment{overdue, justDue, future, cancelled} {
		require.NoError(t, enrollmentRepo.Create(e))
	}

	due, err := enrollmentRepo.ListDue(now, 100)
	require.NoError(t, err)
	require.Len(t, due, 2)
	assert.Equal(t, overdue.ID, due[0].ID, "oldest next_run_at first")
	assert.Equal(t, justDue.ID, due[1].ID)

	capped, err := enrollmentRepo.ListDue(now, 1)
	require.NoError(t, err)
	require.Len(t, capped, 1)
	assert.Equal(t, overdue.ID, capped[0].ID)
}

func TestEnrollmentRepository_CancelBySequenceAndLead(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	sequenceRepo := repository.NewSequenceRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)

	sequence := newTestSequence(testCompanyID)
	require.NoError(t, sequenceRepo.Create(sequence))

	leadID := uuid.New().String()
	enrollment := newTestEnrollment(sequence.ID, leadID, time.Now())
	require.NoError(t, enrollmentRepo.Create(enrollment))

	cancelled, err := enrollmentRepo.CancelBySequenceAndLead(sequence.ID, leadID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cancelled)

	got, err := enrollmentRepo.GetByID(enrollment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentStatusCancelled, got.Status)

	// The row is no longer active, so cancelling again touches nothing.
	cancelled, err = enrollmentRepo.CancelBySequenceAndLead(sequence.ID, leadID)
	require.NoError(t, err)
	assert.Zero(t, cancelled)
}

func TestEnrollmentRepository_CancelBySequenceAndLead_SkipsCompletedRows(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	sequenceRepo := repository.NewSequenceRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)

	sequence := newTestSequence(testCompanyID)
	require.NoError(t, sequenceRepo.Create(sequence))

	leadID := uuid.New().String()
	enrollment := newTestEnrollment(sequence.ID, leadID, time.Now())
	enrollment.Status = models.EnrollmentStatusCompleted
	require.NoError(t, enrollmentRepo.Create(enrollment))

	cancelled, err := enrollmentRepo.CancelBySequenceAndLead(sequence.ID, leadID)
	require.NoError(t, err)
	assert.Zero(t, cancelled)

	got, err := enrollmentRepo.GetByID(enrollment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentStatusCompleted, got.Status)
}
