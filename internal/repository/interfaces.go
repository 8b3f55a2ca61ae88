package repository

import (
	"time"

	"github.com/pkozlov/outreach/internal/models"
)

// Repository interface defines all repository operations.
type Repository interface {
	// Ping checks database connectivity
	Ping() error

	// Broadcast returns the broadcast repository
	Broadcast() BroadcastRepository

	// Recipient returns the broadcast recipient repository
	Recipient() RecipientRepository

	// Sequence returns the sequence repository
	Sequence() SequenceRepository

	// Enrollment returns the sequence enrollment repository
	Enrollment() EnrollmentRepository

	// Audience returns read access to leads, contacts and the message log
	Audience() AudienceRepository
}

// BroadcastRepository persists bulk-send jobs.
type BroadcastRepository interface {
	Create(broadcast *models.Broadcast) error
	GetByID(id string) (*models.Broadcast, error)
	List(companyID string, status *models.BroadcastStatus) ([]*models.Broadcast, error)
	UpdateStatus(id string, status models.BroadcastStatus, startedAt, completedAt *time.Time) error
	UpdateProgressCounts(id string, sent, failed int) error
	IncrementProgress(id, field string, delta int) error
	Delete(id string) error
}

// RecipientRepository persists per-target rows of a broadcast.
type RecipientRepository interface {
	CreateBatch(recipients []*models.BroadcastRecipient) error
	GetByID(id string) (*models.BroadcastRecipient, error)
	GetByProviderMessageID(providerMessageID string) (*models.BroadcastRecipient, error)
	ListPending(broadcastID string) ([]*models.BroadcastRecipient, error)
	ListByBroadcast(broadcastID string) ([]*models.BroadcastRecipient, error)
	MarkSent(id, providerMessageID string, sentAt time.Time) error
	MarkFailed(id string, errorCode int, errorMessage string) error
	UpdateStatus(id string, status models.RecipientStatus) error
	CountByStatus(broadcastID string) (map[models.RecipientStatus]int, error)
}

// SequenceRepository persists drip-campaign definitions.
type SequenceRepository interface {
	Create(sequence *models.Sequence) error
	GetByID(id string) (*models.Sequence, error)
	List(companyID string, isActive *bool, search string) ([]*models.Sequence, error)
	ListActiveWithEntryConditions(companyID string) ([]*models.Sequence, error)
	Update(sequence *models.Sequence) error
	Delete(id, companyID string) error
	IncrementStat(id, stat string, delta int) error
}

// EnrollmentRepository persists per-lead progress through sequences.
type EnrollmentRepository interface {
	Create(enrollment *models.SequenceEnrollment) error
	GetByID(id string) (*models.SequenceEnrollment, error)
	GetBySequenceAndLead(sequenceID, leadID string) (*models.SequenceEnrollment, error)
	ListBySequence(sequenceID string) ([]*models.SequenceEnrollment, error)
	ListDue(now time.Time, limit int) ([]*models.SequenceEnrollment, error)
	Reactivate(id string, nextRunAt time.Time) error
	Advance(id string, currentStep int, nextRunAt time.Time) error
	UpdateStatus(id string, status models.EnrollmentStatus, completedAt *time.Time) error
	CancelBySequenceAndLead(sequenceID, leadID string) (int64, error)
}

// AudienceRepository reads lead/contact phone attributes and the message log.
type AudienceRepository interface {
	ListLeadsWithPhone(companyID string) ([]*models.Lead, error)
	ListLeadsFiltered(companyID string, filters *models.RecipientFilters) ([]*models.Lead, error)
	GetLeadsByIDs(companyID string, ids []string) ([]*models.Lead, error)
	GetLead(id string) (*models.Lead, error)
	ListContactsWithPhone(companyID string) ([]*models.Contact, error)
	GetContactsByIDs(companyID string, ids []string) ([]*models.Contact, error)
	HasInboundMessageSince(leadID string, since time.Time) (bool, error)
	CreateMessage(message *models.Message) error
}
