package service

import (
	"context"

	"github.com/pkozlov/outreach/internal/models"
)

// BroadcastService owns the broadcast lifecycle: creation with recipient
// resolution, rate-limited dispatch, cancellation and reporting.
type BroadcastService interface {
	CreateBroadcast(ctx context.Context, companyID string, input *CreateBroadcastInput) (*models.Broadcast, error)
	GetBroadcasts(companyID string, status *models.BroadcastStatus) ([]*models.Broadcast, error)
	GetBroadcastByID(companyID, id string) (*BroadcastDetail, error)
	SendBroadcast(ctx context.Context, id string) (*SendReport, error)
	CancelBroadcast(companyID, id string) error
	DeleteBroadcast(companyID, id string) error
	GetBroadcastStats(companyID, id string) (*models.BroadcastStats, error)
	UpdateRecipientStatus(ctx context.Context, update *RecipientStatusUpdate) error
}

// SequenceService owns drip-campaign definitions and the per-enrollment
// state machine.
type SequenceService interface {
	GetSequences(companyID string, isActive *bool, search string) ([]*models.Sequence, error)
	GetSequenceByID(companyID, id string) (*models.Sequence, error)
	CreateSequence(companyID, userID string, input *CreateSequenceInput) (*models.Sequence, error)
	UpdateSequence(companyID, id string, input *UpdateSequenceInput) (*models.Sequence, error)
	DeleteSequence(companyID, id string) error
	EnrollLead(sequenceID, leadID, enrolledBy string) (*models.SequenceEnrollment, error)
	UnenrollLead(sequenceID, leadID string) error
	ListEnrollments(companyID, sequenceID string) ([]*models.SequenceEnrollment, error)
	AutoEnroll(companyID, leadID string) (int, error)
	ProcessDueEnrollments(ctx context.Context) (*models.SweepResult, error)
}

// SchedulerService controls the periodic enrollment sweep.
type SchedulerService interface {
	Start() error
	Stop() error
	IsRunning() bool
	RunSweepNow(ctx context.Context) (*models.SweepResult, error)
}

type HealthService interface {
	GetHealth() *HealthStatus
}
