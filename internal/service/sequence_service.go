package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pkozlov/outreach/internal/config"
	"github.com/pkozlov/outreach/internal/models"
	"github.com/pkozlov/outreach/internal/provider"
	"github.com/pkozlov/outreach/internal/repository"
)

// ErrSweepInProgress is returned when a sweep is requested while another
// sweep is still running.
var ErrSweepInProgress = errors.New("enrollment sweep already in progress")

// replyLookback bounds how far back an inbound reply still exits an
// enrollment whose sequence has exit_on_reply set.
const replyLookback = 24 * time.Hour

const defaultMaxMessagesPerDay = 5

type sequenceService struct {
	cfg           *config.Config
	repo          repository.Repository
	gateway       provider.Gateway
	goalEvaluator GoalEvaluator
	logger        *zap.Logger

	// sweepMu serializes enrollment sweeps across the ticker and manual
	// trigger paths. An overlapping request is rejected, not queued.
	sweepMu sync.Mutex
}

func NewSequenceService(
	cfg *config.Config,
	repo repository.Repository,
	gateway provider.Gateway,
	goalEvaluator GoalEvaluator,
	logger *zap.Logger,
) SequenceService {
	return &sequenceService{
		cfg:           cfg,
		repo:          repo,
		gateway:       gateway,
		goalEvaluator: goalEvaluator,
		logger:        logger,
	}
}

func (s *sequenceService) GetSequences(companyID string, isActive *bool, search string) ([]*models.Sequence, error) {
	return s.repo.Sequence().List(companyID, isActive, search)
}

func (s *sequenceService) GetSequenceByID(companyID, id string) (*models.Sequence, error) {
	return s.getScopedSequence(companyID, id)
}

func (s *sequenceService) CreateSequence(companyID, userID string, input *CreateSequenceInput) (*models.Sequence, error) {
	if input.Name == "" {
		return nil, &models.ValidationError{Field: "name", Reason: "required"}
	}
	if err := validateSteps(input.Steps); err != nil {
		return nil, err
	}

	exitOnReply := true
	if input.ExitOnReply != nil {
		exitOnReply = *input.ExitOnReply
	}

	sendTimeWindow := input.SendTimeWindow
	if sendTimeWindow == nil {
		sendTimeWindow = &models.SendTimeWindow{Start: "09:00", End: "17:00"}
	}
	maxMessagesPerDay := input.MaxMessagesPerDay
	if maxMessagesPerDay <= 0 {
		maxMessagesPerDay = defaultMaxMessagesPerDay
	}

	now := time.Now()
	sequence := &models.Sequence{
		ID:                uuid.New().String(),
		CompanyID:         companyID,
		Name:              input.Name,
		Description:       nullString(input.Description),
		Steps:             input.Steps,
		EntryConditions:   input.EntryConditions,
		ExitOnReply:       exitOnReply,
		ExitOnGoal:        nullString(input.ExitOnGoal),
		IsActive:          input.IsActive,
		SendTimeWindow:    sendTimeWindow,
		MaxMessagesPerDay: maxMessagesPerDay,
		Stats:             models.SequenceStats{},
		CreatedBy:         nullString(userID),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.repo.Sequence().Create(sequence); err != nil {
		return nil, fmt.Errorf("failed to create sequence: %w", err)
	}

	s.logger.Info("Sequence created",
		zap.String("sequence_id", sequence.ID),
		zap.String("company_id", companyID),
		zap.Int("steps", len(sequence.Steps)),
	)

	return sequence, nil
}

func (s *sequenceService) UpdateSequence(companyID, id string, input *UpdateSequenceInput) (*models.Sequence, error) {
	sequence, err := s.getScopedSequence(companyID, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, &models.ValidationError{Field: "name", Reason: "required"}
		}
		sequence.Name = *input.Name
	}
	if input.Description != nil {
		sequence.Description = nullString(*input.Description)
	}
	if input.Steps != nil {
		if err := validateSteps(input.Steps); err != nil {
			return nil, err
		}
		sequence.Steps = input.Steps
	}
	if input.EntryConditions != nil {
		sequence.EntryConditions = input.EntryConditions
	}
	if input.ExitOnReply != nil {
		sequence.ExitOnReply = *input.ExitOnReply
	}
	if input.ExitOnGoal != nil {
		sequence.ExitOnGoal = nullString(*input.ExitOnGoal)
	}
	if input.IsActive != nil {
		sequence.IsActive = *input.IsActive
	}
	if input.SendTimeWindow != nil {
		sequence.SendTimeWindow = input.SendTimeWindow
	}
	if input.MaxMessagesPerDay != nil {
		sequence.MaxMessagesPerDay = *input.MaxMessagesPerDay
	}
	sequence.UpdatedAt = time.Now()

	if err := s.repo.Sequence().Update(sequence); err != nil {
		return nil, fmt.Errorf("failed to update sequence: %w", err)
	}

	return sequence, nil
}

func (s *sequenceService) DeleteSequence(companyID, id string) error {
	return s.repo.Sequence().Delete(id, companyID)
}

// EnrollLead puts a lead into a sequence. A lead holds at most one active
// enrollment per sequence; re-enrolling a completed or cancelled lead
// restarts the same row from step zero.
func (s *sequenceService) EnrollLead(sequenceID, leadID, enrolledBy string) (*models.SequenceEnrollment, error) {
	sequence, err := s.repo.Sequence().GetByID(sequenceID)
	if err != nil {
		return nil, err
	}
	if len(sequence.Steps) == 0 {
		return nil, &models.ValidationError{Field: "steps", Reason: "sequence has no steps"}
	}

	firstRunAt := time.Now().Add(time.Duration(sequence.Steps[0].DelayHours) * time.Hour)

	existing, err := s.repo.Enrollment().GetBySequenceAndLead(sequenceID, leadID)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	if existing != nil {
		if existing.Status == models.EnrollmentStatusActive {
			return nil, models.ErrAlreadyEnrolled
		}

		if err := s.repo.Enrollment().Reactivate(existing.ID, firstRunAt); err != nil {
			return nil, fmt.Errorf("failed to reactivate enrollment: %w", err)
		}
		s.bumpStat(sequenceID, "enrolled", 1)
		s.bumpStat(sequenceID, "active", 1)

		return s.repo.Enrollment().GetByID(existing.ID)
	}

	now := time.Now()
	enrollment := &models.SequenceEnrollment{
		ID:          uuid.New().String(),
		SequenceID:  sequenceID,
		LeadID:      leadID,
		CurrentStep: 0,
		Status:      models.EnrollmentStatusActive,
		NextRunAt:   sql.NullTime{Time: firstRunAt, Valid: true},
		EnrolledBy:  nullString(enrolledBy),
		StartedAt:   sql.NullTime{Time: now, Valid: true},
	}

	if err := s.repo.Enrollment().Create(enrollment); err != nil {
		return nil, fmt.Errorf("failed to create enrollment: %w", err)
	}
	s.bumpStat(sequenceID, "enrolled", 1)
	s.bumpStat(sequenceID, "active", 1)

	s.logger.Info("Lead enrolled",
		zap.String("sequence_id", sequenceID),
		zap.String("lead_id", leadID),
		zap.Time("next_run_at", firstRunAt),
	)

	return enrollment, nil
}

func (s *sequenceService) UnenrollLead(sequenceID, leadID string) error {
	cancelled, err := s.repo.Enrollment().CancelBySequenceAndLead(sequenceID, leadID)
	if err != nil {
		return err
	}
	// Only an active row that actually flipped moves the counter; repeated
	// unenrolls must not drift it negative.
	if cancelled > 0 {
		s.bumpStat(sequenceID, "active", -int(cancelled))
	}
	return nil
}

func (s *sequenceService) ListEnrollments(companyID, sequenceID string) ([]*models.SequenceEnrollment, error) {
	if _, err := s.getScopedSequence(companyID, sequenceID); err != nil {
		return nil, err
	}
	return s.repo.Enrollment().ListBySequence(sequenceID)
}

// AutoEnroll matches a lead against every active sequence that declares
// entry conditions and enrolls it into each match. Returns the number of
// new enrollments.
func (s *sequenceService) AutoEnroll(companyID, leadID string) (int, error) {
	lead, err := s.repo.Audience().GetLead(leadID)
	if err != nil {
		return 0, err
	}
	if lead.CompanyID != companyID {
		return 0, models.ErrNotFound
	}

	sequences, err := s.repo.Sequence().ListActiveWithEntryConditions(companyID)
	if err != nil {
		return 0, err
	}

	enrolled := 0
	for _, sequence := range sequences {
		if !sequence.EntryConditions.Matches(lead) {
			continue
		}

		_, err := s.EnrollLead(sequence.ID, leadID, "auto")
		if errors.Is(err, models.ErrAlreadyEnrolled) {
			continue
		}
		if err != nil {
			s.logger.Warn("Auto-enroll failed",
				zap.String("sequence_id", sequence.ID),
				zap.String("lead_id", leadID),
				zap.Error(err))
			continue
		}
		enrolled++
	}

	return enrolled, nil
}

// ProcessDueEnrollments runs one sweep over enrollments whose next_run_at
// has passed. At most one sweep runs at a time; a request arriving while
// another sweep is active returns ErrSweepInProgress.
func (s *sequenceService) ProcessDueEnrollments(ctx context.Context) (*models.SweepResult, error) {
	if !s.sweepMu.TryLock() {
		return nil, ErrSweepInProgress
	}
	defer s.sweepMu.Unlock()

	now := time.Now()
	due, err := s.repo.Enrollment().ListDue(now, s.cfg.Scheduler.SweepLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list due enrollments: %w", err)
	}

	result := &models.SweepResult{Total: len(due)}
	for _, enrollment := range due {
		if ctx.Err() != nil {
			break
		}

		if err := s.processEnrollment(ctx, enrollment); err != nil {
			result.Errors++
			s.logger.Error("Enrollment processing failed",
				zap.String("enrollment_id", enrollment.ID),
				zap.String("sequence_id", enrollment.SequenceID),
				zap.Error(err))
			continue
		}
		result.Processed++
	}

	if result.Errors > 0 {
		s.logger.Warn("Enrollment sweep finished with errors",
			zap.Int("processed", result.Processed),
			zap.Int("errors", result.Errors),
			zap.Int("total", result.Total),
		)
	} else if result.Total > 0 {
		s.logger.Info("Enrollment sweep finished",
			zap.Int("processed", result.Processed),
			zap.Int("total", result.Total),
		)
	}

	return result, nil
}

// processEnrollment advances one enrollment through the step machine: check
// exit conditions, send the current step, then either schedule the next step
// or complete.
func (s *sequenceService) processEnrollment(ctx context.Context, enrollment *models.SequenceEnrollment) error {
	sequence, err := s.repo.Sequence().GetByID(enrollment.SequenceID)
	if errors.Is(err, models.ErrNotFound) {
		return s.cancelEnrollment(enrollment)
	}
	if err != nil {
		return err
	}
	if !sequence.IsActive {
		return s.cancelEnrollment(enrollment)
	}

	if sequence.ExitOnReply {
		replied, err := s.repo.Audience().HasInboundMessageSince(enrollment.LeadID, time.Now().Add(-replyLookback))
		if err != nil {
			return err
		}
		if replied {
			s.logger.Info("Enrollment exited on reply",
				zap.String("enrollment_id", enrollment.ID),
				zap.String("lead_id", enrollment.LeadID))
			return s.completeEnrollment(sequence, enrollment)
		}
	}

	if sequence.ExitOnGoal.Valid && s.goalEvaluator != nil {
		reached, err := s.goalEvaluator(sequence, enrollment)
		if err != nil {
			return err
		}
		if reached {
			return s.completeEnrollment(sequence, enrollment)
		}
	}

	if enrollment.CurrentStep >= len(sequence.Steps) {
		return s.completeEnrollment(sequence, enrollment)
	}
	step := sequence.Steps[enrollment.CurrentStep]

	lead, err := s.repo.Audience().GetLead(enrollment.LeadID)
	if err != nil {
		return err
	}
	address := lead.BestPhone()
	if address == "" {
		return fmt.Errorf("lead %s: %w", lead.ID, models.ErrMissingAddress)
	}

	providerMessageID, err := s.sendStep(ctx, normalizePhone(address), step)
	if err != nil {
		return err
	}
	s.logOutboundStep(sequence, enrollment, normalizePhone(address), step, providerMessageID)

	if enrollment.CurrentStep == len(sequence.Steps)-1 {
		return s.completeEnrollment(sequence, enrollment)
	}

	nextStep := sequence.Steps[enrollment.CurrentStep+1]
	nextRunAt := time.Now().Add(time.Duration(nextStep.DelayHours) * time.Hour)
	if err := s.repo.Enrollment().Advance(enrollment.ID, enrollment.CurrentStep+1, nextRunAt); err != nil {
		return fmt.Errorf("failed to advance enrollment: %w", err)
	}
	s.bumpStat(sequence.ID, "messages_sent", 1)

	return nil
}

func (s *sequenceService) sendStep(ctx context.Context, address string, step models.SequenceStep) (string, error) {
	switch step.Type {
	case models.StepTypeText:
		result, err := s.gateway.SendText(ctx, address, step.MessageText)
		if err != nil {
			return "", err
		}
		return result.ProviderMessageID, nil
	case models.StepTypeTemplate:
		language := step.Language
		if language == "" {
			language = defaultTemplateLanguage
		}
		result, err := s.gateway.SendTemplate(ctx, address, step.TemplateName, language, step.Parameters)
		if err != nil {
			return "", err
		}
		return result.ProviderMessageID, nil
	default:
		return "", &models.ValidationError{Field: "steps", Reason: fmt.Sprintf("unsupported step type %q", step.Type)}
	}
}

// logOutboundStep records the sent step in the message log. Best effort.
func (s *sequenceService) logOutboundStep(sequence *models.Sequence, enrollment *models.SequenceEnrollment, address string, step models.SequenceStep, providerMessageID string) {
	messageType := models.MessageTypeText
	content := step.MessageText
	if step.Type == models.StepTypeTemplate {
		messageType = models.MessageTypeTemplate
		content = step.TemplateName
	}

	message := &models.Message{
		ID:                uuid.New().String(),
		CompanyID:         sequence.CompanyID,
		ProviderMessageID: nullString(providerMessageID),
		Address:           address,
		Direction:         models.MessageDirectionOutbound,
		MessageType:       messageType,
		Content:           nullString(content),
		LeadID:            nullString(enrollment.LeadID),
		SentAt:            sql.NullTime{Time: time.Now(), Valid: true},
	}
	if err := s.repo.Audience().CreateMessage(message); err != nil {
		s.logger.Warn("Failed to log sequence message",
			zap.String("enrollment_id", enrollment.ID),
			zap.Error(err))
	}
}

func (s *sequenceService) completeEnrollment(sequence *models.Sequence, enrollment *models.SequenceEnrollment) error {
	completed := time.Now()
	if err := s.repo.Enrollment().UpdateStatus(enrollment.ID, models.EnrollmentStatusCompleted, &completed); err != nil {
		return fmt.Errorf("failed to complete enrollment: %w", err)
	}
	s.bumpStat(sequence.ID, "completed", 1)
	s.bumpStat(sequence.ID, "active", -1)
	return nil
}

func (s *sequenceService) cancelEnrollment(enrollment *models.SequenceEnrollment) error {
	if err := s.repo.Enrollment().UpdateStatus(enrollment.ID, models.EnrollmentStatusCancelled, nil); err != nil {
		return fmt.Errorf("failed to cancel enrollment: %w", err)
	}
	s.bumpStat(enrollment.SequenceID, "active", -1)
	return nil
}

// bumpStat adjusts one stats counter. Counter drift is tolerable, so a
// failed bump only logs.
func (s *sequenceService) bumpStat(sequenceID, stat string, delta int) {
	if err := s.repo.Sequence().IncrementStat(sequenceID, stat, delta); err != nil {
		s.logger.Warn("Failed to update sequence stat",
			zap.String("sequence_id", sequenceID),
			zap.String("stat", stat),
			zap.Error(err))
	}
}

func (s *sequenceService) getScopedSequence(companyID, id string) (*models.Sequence, error) {
	sequence, err := s.repo.Sequence().GetByID(id)
	if err != nil {
		return nil, err
	}
	if sequence.CompanyID != companyID {
		return nil, models.ErrNotFound
	}
	return sequence, nil
}

func validateSteps(steps []models.SequenceStep) error {
	if len(steps) == 0 {
		return &models.ValidationError{Field: "steps", Reason: "at least one step is required"}
	}

	for i, step := range steps {
		if step.DelayHours < 0 {
			return &models.ValidationError{Field: "steps", Reason: fmt.Sprintf("step %d: delay must not be negative", i)}
		}
		switch step.Type {
		case models.StepTypeText:
			if step.MessageText == "" {
				return &models.ValidationError{Field: "steps", Reason: fmt.Sprintf("step %d: message_text is required", i)}
			}
		case models.StepTypeTemplate:
			if step.TemplateName == "" {
				return &models.ValidationError{Field: "steps", Reason: fmt.Sprintf("step %d: template_name is required", i)}
			}
		default:
			return &models.ValidationError{Field: "steps", Reason: fmt.Sprintf("step %d: type must be text or template", i)}
		}
	}

	return nil
}
