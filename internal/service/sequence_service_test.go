package service_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/pkozlov/outreach/internal/models"
	"github.com/pkozlov/outreach/internal/provider"
	providermocks "github.com/pkozlov/outreach/internal/provider/mocks"
	"github.com/pkozlov/outreach/internal/service"
)

func activeSequence(companyID string) *models.Sequence {
	return &models.Sequence{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      "Welcome flow",
		Steps: models.SequenceSteps{
			{Type: models.StepTypeText, MessageText: "Welcome!", DelayHours: 0},
			{Type: models.StepTypeText, MessageText: "Still interested?", DelayHours: 48},
		},
		ExitOnReply: true,
		IsActive:    true,
	}
}

func activeEnrollment(sequenceID, leadID string, step int) *models.SequenceEnrollment {
	return &models.SequenceEnrollment{
		ID:          uuid.New().String(),
		SequenceID:  sequenceID,
		LeadID:      leadID,
		CurrentStep: step,
		Status:      models.EnrollmentStatusActive,
		NextRunAt:   sql.NullTime{Time: time.Now().Add(-time.Minute), Valid: true},
		StartedAt:   sql.NullTime{Time: time.Now().Add(-time.Hour), Valid: true},
	}
}

func newSequenceService(m *repoMocks, gateway provider.Gateway) service.SequenceService {
	return service.NewSequenceService(testConfig(), m.repo, gateway, nil, zap.NewNop())
}

func TestSequenceService_CreateSequence_ValidatesSteps(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newRepoMocks(ctrl)
	svc := newSequenceService(m, providermocks.NewMockGateway(ctrl))

	_, err := svc.CreateSequence("company-1", "user-1", &service.CreateSequenceInput{
		Name: "Broken",
		Steps: []models.SequenceStep{
			{Type: models.StepTypeTemplate, DelayHours: 24},
		},
	})

	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "steps", validationErr.Field)
}

func TestSequenceService_EnrollLead_RejectsActiveDuplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sequence := activeSequence("company-1")
	existing := activeEnrollment(sequence.ID, "lead-1", 1)

	m := newRepoMocks(ctrl)
	m.sequence.EXPECT().GetByID(sequence.ID).Return(sequence, nil)
	m.enrollment.EXPECT().GetBySequenceAndLead(sequence.ID, "lead-1").Return(existing, nil)

	svc := newSequenceService(m, providermocks.NewMockGateway(ctrl))

	_, err := svc.EnrollLead(sequence.ID, "lead-1", "user-1")
	assert.ErrorIs(t, err, models.ErrAlreadyEnrolled)
}

func TestSequenceService_EnrollLead_ReactivatesFinishedEnrollment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sequence := activeSequence("company-1")
	finished := activeEnrollment(sequence.ID, "lead-1", 2)
	finished.Status = models.EnrollmentStatusCompleted

	m := newRepoMocks(ctrl)
	m.sequence.EXPECT().GetByID(sequence.ID).Return(sequence, nil)
	m.enrollment.EXPECT().GetBySequenceAndLead(sequence.ID, "lead-1").Return(finished, nil)
	m.enrollment.EXPECT().Reactivate(finished.ID, gomock.Any()).Return(nil)
	m.sequence.EXPECT().IncrementStat(sequence.ID, "enrolled", 1).Return(nil)
	m.sequence.EXPECT().IncrementStat(sequence.ID, "active", 1).Return(nil)

	restarted := activeEnrollment(sequence.ID, "lead-1", 0)
	restarted.ID = finished.ID
	m.enrollment.EXPECT().GetByID(finished.ID).Return(restarted, nil)

	svc := newSequenceService(m, providermocks.NewMockGateway(ctrl))

	enrollment, err := svc.EnrollLead(sequence.ID, "lead-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, finished.ID, enrollment.ID)
	assert.Equal(t, 0, enrollment.CurrentStep)
}

func TestSequenceService_EnrollLead_CreatesNewEnrollment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sequence := activeSequence("company-1")
	sequence.Steps[0].DelayHours = 2

	m := newRepoMocks(ctrl)
	m.sequence.EXPECT().GetByID(sequence.ID).Return(sequence, nil)
	m.enrollment.EXPECT().GetBySequenceAndLead(sequence.ID, "lead-1").Return(nil, models.ErrNotFound)
	m.enrollment.EXPECT().Create(gomock.Any()).DoAndReturn(func(e *models.SequenceEnrollment) error {
		assert.Equal(t, 0, e.CurrentStep)
		assert.Equal(t, models.EnrollmentStatusActive, e.Status)
		// First run honors the first step's delay.
		assert.WithinDuration(t, time.Now().Add(2*time.Hour), e.NextRunAt.Time, time.Minute)
		return nil
	})
	m.sequence.EXPECT().IncrementStat(sequence.ID, "enrolled", 1).Return(nil)
	m.sequence.EXPECT().IncrementStat(sequence.ID, "active", 1).Return(nil)

	svc := newSequenceService(m, providermocks.NewMockGateway(ctrl))

	enrollment, err := svc.EnrollLead(sequence.ID, "lead-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", enrollment.EnrolledBy.String)
}

func TestSequenceService_UnenrollLead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newRepoMocks(ctrl)
	m.enrollment.EXPECT().CancelBySequenceAndLead("seq-1", "lead-1").Return(int64(1), nil)
	m.sequence.EXPECT().IncrementStat("seq-1", "active", -1).Return(nil)

	svc := newSequenceService(m, providermocks.NewMockGateway(ctrl))

	require.NoError(t, svc.UnenrollLead("seq-1", "lead-1"))
}

func TestSequenceService_UnenrollLead_NoActiveRowLeavesStatsAlone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// A repeated unenroll, or one against a completed enrollment, cancels
	// nothing and must not decrement the active counter.
	m := newRepoMocks(ctrl)
	m.enrollment.EXPECT().CancelBySequenceAndLead("seq-1", "lead-1").Return(int64(0), nil)

	svc := newSequenceService(m, providermocks.NewMockGateway(ctrl))

	require.NoError(t, svc.UnenrollLead("seq-1", "lead-1"))
}

func TestSequenceService_AutoEnroll_MatchesEntryConditions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	website := "website"
	referral := "referral"

	matching := activeSequence("company-1")
	matching.EntryConditions = &models.EntryConditions{Source: &website}
	other := activeSequence("company-1")
	other.EntryConditions = &models.EntryConditions{Source: &referral}

	webLead := &models.Lead{
		ID:          "lead-1",
		CompanyID:   "company-1",
		MobilePhone: sql.NullString{String: "491700000001", Valid: true},
		Source:      sql.NullString{String: website, Valid: true},
	}

	m := newRepoMocks(ctrl)
	m.audience.EXPECT().GetLead("lead-1").Return(webLead, nil)
	m.sequence.EXPECT().ListActiveWithEntryConditions("company-1").
		Return([]*models.Sequence{matching, other}, nil)

	m.sequence.EXPECT().GetByID(matching.ID).Return(matching, nil)
	m.enrollment.EXPECT().GetBySequenceAndLead(matching.ID, "lead-1").Return(nil, models.ErrNotFound)
	m.enrollment.EXPECT().Create(gomock.Any()).DoAndReturn(func(e *models.SequenceEnrollment) error {
		assert.Equal(t, "auto", e.EnrolledBy.String)
		return nil
	})
	m.sequence.EXPECT().IncrementStat(matching.ID, "enrolled", 1).Return(nil)
	m.sequence.EXPECT().IncrementStat(matching.ID, "active", 1).Return(nil)

	svc := newSequenceService(m, providermocks.NewMockGateway(ctrl))

	enrolled, err := svc.AutoEnroll("company-1", "lead-1")
	require.NoError(t, err)
	assert.Equal(t, 1, enrolled)
}

func TestSequenceService_ProcessDueEnrollments_AdvancesStep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sequence := activeSequence("company-1")
	enrollment := activeEnrollment(sequence.ID, "lead-1", 0)

	m := newRepoMocks(ctrl)
	m.enrollment.EXPECT().ListDue(gomock.Any(), 100).Return([]*models.SequenceEnrollment{enrollment}, nil)
	m.sequence.EXPECT().GetByID(sequence.ID).Return(sequence, nil)
	m.audience.EXPECT().HasInboundMessageSince("lead-1", gomock.Any()).Return(false, nil)
	m.audience.EXPECT().GetLead("lead-1").Return(lead("lead-1", "company-1", "+49 170 0000001"), nil)

	gateway := providermocks.NewMockGateway(ctrl)
	gateway.EXPECT().SendText(gomock.Any(), "491700000001", "Welcome!").
		Return(&provider.SendResult{ProviderMessageID: "wamid.s1"}, nil)
	m.audience.EXPECT().CreateMessage(gomock.Any()).Return(nil)

	m.enrollment.EXPECT().Advance(enrollment.ID, 1, gomock.Any()).
		DoAndReturn(func(_ string, _ int, nextRunAt time.Time) error {
			assert.WithinDuration(t, time.Now().Add(48*time.Hour), nextRunAt, time.Minute)
			return nil
		})
	m.sequence.EXPECT().IncrementStat(sequence.ID, "messages_sent", 1).Return(nil)

	svc := newSequenceService(m, gateway)

	result, err := svc.ProcessDueEnrollments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &models.SweepResult{Processed: 1, Errors: 0, Total: 1}, result)
}

func TestSequenceService_ProcessDueEnrollments_CompletesOnFinalStep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sequence := activeSequence("company-1")
	enrollment := activeEnrollment(sequence.ID, "lead-1", 1)

	m := newRepoMocks(ctrl)
	m.enrollment.EXPECT().ListDue(gomock.Any(), 100).Return([]*models.SequenceEnrollment{enrollment}, nil)
	m.sequence.EXPECT().GetByID(sequence.ID).Return(sequence, nil)
	m.audience.EXPECT().HasInboundMessageSince("lead-1", gomock.Any()).Return(false, nil)
	m.audience.EXPECT().GetLead("lead-1").Return(lead("lead-1", "company-1", "491700000001"), nil)

	gateway := providermocks.NewMockGateway(ctrl)
	gateway.EXPECT().SendText(gomock.Any(), "491700000001", "Still interested?").
		Return(&provider.SendResult{ProviderMessageID: "wamid.s2"}, nil)
	m.audience.EXPECT().CreateMessage(gomock.Any()).Return(nil)

	m.enrollment.EXPECT().UpdateStatus(enrollment.ID, models.EnrollmentStatusCompleted, gomock.Any()).Return(nil)
	m.sequence.EXPECT().IncrementStat(sequence.ID, "completed", 1).Return(nil)
	m.sequence.EXPECT().IncrementStat(sequence.ID, "active", -1).Return(nil)

	svc := newSequenceService(m, gateway)

	result, err := svc.ProcessDueEnrollments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
}

func TestSequenceService_ProcessDueEnrollments_ExitsOnReply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sequence := activeSequence("company-1")
	enrollment := activeEnrollment(sequence.ID, "lead-1", 0)

	m := newRepoMocks(ctrl)
	m.enrollment.EXPECT().ListDue(gomock.Any(), 100).Return([]*models.SequenceEnrollment{enrollment}, nil)
	m.sequence.EXPECT().GetByID(sequence.ID).Return(sequence, nil)
	m.audience.EXPECT().HasInboundMessageSince("lead-1", gomock.Any()).
		DoAndReturn(func(_ string, since time.Time) (bool, error) {
			assert.WithinDuration(t, time.Now().Add(-24*time.Hour), since, time.Minute)
			return true, nil
		})

	// The lead replied, so no step is sent.
	m.enrollment.EXPECT().UpdateStatus(enrollment.ID, models.EnrollmentStatusCompleted, gomock.Any()).Return(nil)
	m.sequence.EXPECT().IncrementStat(sequence.ID, "completed", 1).Return(nil)
	m.sequence.EXPECT().IncrementStat(sequence.ID, "active", -1).Return(nil)

	svc := newSequenceService(m, providermocks.NewMockGateway(ctrl))

	result, err := svc.ProcessDueEnrollments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
}

func TestSequenceService_ProcessDueEnrollments_CancelsWhenSequenceInactive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sequence := activeSequence("company-1")
	sequence.IsActive = false
	enrollment := activeEnrollment(sequence.ID, "lead-1", 0)

	m := newRepoMocks(ctrl)
	m.enrollment.EXPECT().ListDue(gomock.Any(), 100).Return([]*models.SequenceEnrollment{enrollment}, nil)
	m.sequence.EXPECT().GetByID(sequence.ID).Return(sequence, nil)
	m.enrollment.EXPECT().UpdateStatus(enrollment.ID, models.EnrollmentStatusCancelled, nil).Return(nil)
	m.sequence.EXPECT().IncrementStat(sequence.ID, "active", -1).Return(nil)

	svc := newSequenceService(m, providermocks.NewMockGateway(ctrl))

	result, err := svc.ProcessDueEnrollments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
}

func TestSequenceService_ProcessDueEnrollments_CountsFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sequence := activeSequence("company-1")
	broken := activeEnrollment(sequence.ID, "lead-no-phone", 0)
	healthy := activeEnrollment(sequence.ID, "lead-ok", 0)

	m := newRepoMocks(ctrl)
	m.enrollment.EXPECT().ListDue(gomock.Any(), 100).
		Return([]*models.SequenceEnrollment{broken, healthy}, nil)
	m.sequence.EXPECT().GetByID(sequence.ID).Return(sequence, nil).Times(2)
	m.audience.EXPECT().HasInboundMessageSince(gomock.Any(), gomock.Any()).Return(false, nil).Times(2)

	m.audience.EXPECT().GetLead("lead-no-phone").Return(lead("lead-no-phone", "company-1", ""), nil)
	m.audience.EXPECT().GetLead("lead-ok").Return(lead("lead-ok", "company-1", "491700000001"), nil)

	gateway := providermocks.NewMockGateway(ctrl)
	gateway.EXPECT().SendText(gomock.Any(), "491700000001", "Welcome!").
		Return(&provider.SendResult{ProviderMessageID: "wamid.s1"}, nil)
	m.audience.EXPECT().CreateMessage(gomock.Any()).Return(nil)
	m.enrollment.EXPECT().Advance(healthy.ID, 1, gomock.Any()).Return(nil)
	m.sequence.EXPECT().IncrementStat(sequence.ID, "messages_sent", 1).Return(nil)

	svc := newSequenceService(m, gateway)

	result, err := svc.ProcessDueEnrollments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &models.SweepResult{Processed: 1, Errors: 1, Total: 2}, result)
}

func TestSequenceService_ProcessDueEnrollments_RejectsOverlappingSweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sequence := activeSequence("company-1")
	enrollment := activeEnrollment(sequence.ID, "lead-1", 0)

	sendStarted := make(chan struct{})
	releaseSend := make(chan struct{})

	m := newRepoMocks(ctrl)
	m.enrollment.EXPECT().ListDue(gomock.Any(), 100).Return([]*models.SequenceEnrollment{enrollment}, nil)
	m.sequence.EXPECT().GetByID(sequence.ID).Return(sequence, nil)
	m.audience.EXPECT().HasInboundMessageSince("lead-1", gomock.Any()).Return(false, nil)
	m.audience.EXPECT().GetLead("lead-1").Return(lead("lead-1", "company-1", "491700000001"), nil)

	gateway := providermocks.NewMockGateway(ctrl)
	gateway.EXPECT().SendText(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, string) (*provider.SendResult, error) {
			close(sendStarted)
			<-releaseSend
			return &provider.SendResult{ProviderMessageID: "wamid.s1"}, nil
		})
	m.audience.EXPECT().CreateMessage(gomock.Any()).Return(nil)
	m.enrollment.EXPECT().Advance(enrollment.ID, 1, gomock.Any()).Return(nil)
	m.sequence.EXPECT().IncrementStat(sequence.ID, "messages_sent", 1).Return(nil)

	svc := newSequenceService(m, gateway)

	firstDone := make(chan error, 1)
	go func() {
		_, err := svc.ProcessDueEnrollments(context.Background())
		firstDone <- err
	}()

	<-sendStarted

	_, err := svc.ProcessDueEnrollments(context.Background())
	assert.ErrorIs(t, err, service.ErrSweepInProgress)

	close(releaseSend)
	require.NoError(t, <-firstDone)
}
