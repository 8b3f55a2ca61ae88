package service

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pkozlov/outreach/internal/config"
	"github.com/pkozlov/outreach/internal/models"
	"github.com/pkozlov/outreach/internal/provider"
	"github.com/pkozlov/outreach/internal/repository"
)

const (
	defaultTemplateLanguage = "en"
	providerMessageKeyTTL   = 24 * time.Hour
)

func providerMessageKey(providerMessageID string) string {
	return fmt.Sprintf("provider_message:%s", providerMessageID)
}

type broadcastService struct {
	cfg         *config.Config
	repo        repository.Repository
	gateway     provider.Gateway
	redisClient *redis.Client
	resolver    *Resolver
	logger      *zap.Logger
}

func NewBroadcastService(
	cfg *config.Config,
	repo repository.Repository,
	gateway provider.Gateway,
	redisClient *redis.Client,
	logger *zap.Logger,
) BroadcastService {
	return &broadcastService{
		cfg:         cfg,
		repo:        repo,
		gateway:     gateway,
		redisClient: redisClient,
		resolver:    NewResolver(repo, logger),
		logger:      logger,
	}
}

// CreateBroadcast validates the message spec, resolves and deduplicates the
// audience, and persists the broadcast with one pending recipient row per
// resolved target. recipient_count is fixed here and never changes.
func (s *broadcastService) CreateBroadcast(ctx context.Context, companyID string, input *CreateBroadcastInput) (*models.Broadcast, error) {
	if err := validateBroadcastInput(input); err != nil {
		return nil, err
	}

	recipients, err := s.resolver.ResolveRecipients(companyID, input.RecipientType, input.RecipientIDs, input.RecipientFilters)
	if err != nil {
		return nil, err
	}

	broadcast := s.buildBroadcast(companyID, input, len(recipients))

	if err := s.repo.Broadcast().Create(broadcast); err != nil {
		return nil, fmt.Errorf("failed to create broadcast: %w", err)
	}

	rows := make([]*models.BroadcastRecipient, 0, len(recipients))
	for _, recipient := range recipients {
		rows = append(rows, &models.BroadcastRecipient{
			ID:          uuid.New().String(),
			BroadcastID: broadcast.ID,
			LeadID:      nullString(recipient.LeadID),
			ContactID:   nullString(recipient.ContactID),
			Address:     recipient.Address,
			Status:      models.RecipientStatusPending,
		})
	}

	if err := s.repo.Recipient().CreateBatch(rows); err != nil {
		return nil, fmt.Errorf("failed to create broadcast recipients: %w", err)
	}

	s.logger.Info("Broadcast created",
		zap.String("broadcast_id", broadcast.ID),
		zap.String("company_id", companyID),
		zap.Int("recipient_count", broadcast.RecipientCount),
	)

	return broadcast, nil
}

func (s *broadcastService) GetBroadcasts(companyID string, status *models.BroadcastStatus) ([]*models.Broadcast, error) {
	return s.repo.Broadcast().List(companyID, status)
}

func (s *broadcastService) GetBroadcastByID(companyID, id string) (*BroadcastDetail, error) {
	broadcast, err := s.getScopedBroadcast(companyID, id)
	if err != nil {
		return nil, err
	}

	recipients, err := s.repo.Recipient().ListByBroadcast(id)
	if err != nil {
		return nil, err
	}

	return &BroadcastDetail{Broadcast: broadcast, Recipients: recipients}, nil
}

// SendBroadcast drains a broadcast's pending recipients in rate-limited
// batches. Each batch is dispatched concurrently and the call waits for
// every send to settle; one recipient's failure never blocks the others.
// The broadcast always terminates in sent or failed: sent even when every
// individual recipient failed, failed only on broadcast-level errors.
func (s *broadcastService) SendBroadcast(ctx context.Context, id string) (*SendReport, error) {
	// Once dispatch starts it runs to completion. A request deadline or a
	// caller hanging up mid-pacing is not a broadcast-level error, so the
	// loop must not inherit the caller's cancellation. Context values still
	// flow for logging and the Redis correlation cache.
	ctx = context.WithoutCancel(ctx)

	broadcast, err := s.repo.Broadcast().GetByID(id)
	if err != nil {
		return nil, err
	}

	if broadcast.Status == models.BroadcastStatusSent || broadcast.Status == models.BroadcastStatusSending {
		return nil, &models.InvalidStateError{
			Entity: "broadcast", ID: id, Status: string(broadcast.Status), Action: "send",
		}
	}

	now := time.Now()
	if err := s.repo.Broadcast().UpdateStatus(id, models.BroadcastStatusSending, &now, nil); err != nil {
		return nil, s.failBroadcast(id, fmt.Errorf("failed to mark broadcast sending: %w", err))
	}

	recipients, err := s.repo.Recipient().ListPending(id)
	if err != nil {
		return nil, s.failBroadcast(id, fmt.Errorf("failed to load pending recipients: %w", err))
	}

	batchSize := broadcast.BatchSize
	if batchSize <= 0 {
		batchSize = s.cfg.Dispatcher.DefaultBatchSize
	}
	messagesPerMinute := broadcast.MessagesPerMinute
	if messagesPerMinute <= 0 {
		messagesPerMinute = s.cfg.Dispatcher.DefaultMessagesPerMinute
	}
	pause := time.Duration(60_000/messagesPerMinute) * time.Millisecond

	s.logger.Info("Broadcast dispatch started",
		zap.String("broadcast_id", id),
		zap.Int("recipients", len(recipients)),
		zap.Int("batch_size", batchSize),
		zap.Int("messages_per_minute", messagesPerMinute),
	)

	var sentCount, failedCount int

	for start := 0; start < len(recipients); start += batchSize {
		end := start + batchSize
		if end > len(recipients) {
			end = len(recipients)
		}
		batch := recipients[start:end]

		outcomes := s.dispatchBatch(ctx, broadcast, batch)

		for i, recipient := range batch {
			outcome := outcomes[i]
			if outcome.err == nil {
				s.recordSent(ctx, broadcast, recipient, outcome.providerMessageID)
				sentCount++
			} else {
				s.recordFailed(recipient, outcome.err)
				failedCount++
			}
		}

		if err := s.repo.Broadcast().UpdateProgressCounts(id, sentCount, failedCount); err != nil {
			return nil, s.failBroadcast(id, fmt.Errorf("failed to update broadcast progress: %w", err))
		}

		// Pacing applies between batches only; the whole batch goes out
		// concurrently at the start of each window.
		if end < len(recipients) {
			time.Sleep(pause)
		}
	}

	completed := time.Now()
	if err := s.repo.Broadcast().UpdateStatus(id, models.BroadcastStatusSent, nil, &completed); err != nil {
		return nil, s.failBroadcast(id, fmt.Errorf("failed to mark broadcast sent: %w", err))
	}

	s.logger.Info("Broadcast dispatch completed",
		zap.String("broadcast_id", id),
		zap.Int("sent", sentCount),
		zap.Int("failed", failedCount),
		zap.Int("total", len(recipients)),
	)

	return &SendReport{Sent: sentCount, Failed: failedCount, Total: len(recipients)}, nil
}

// CancelBroadcast is allowed only before dispatch begins.
func (s *broadcastService) CancelBroadcast(companyID, id string) error {
	broadcast, err := s.getScopedBroadcast(companyID, id)
	if err != nil {
		return err
	}

	if broadcast.Status != models.BroadcastStatusDraft && broadcast.Status != models.BroadcastStatusScheduled {
		return &models.InvalidStateError{
			Entity: "broadcast", ID: id, Status: string(broadcast.Status), Action: "cancel",
		}
	}

	return s.repo.Broadcast().UpdateStatus(id, models.BroadcastStatusCancelled, nil, nil)
}

func (s *broadcastService) DeleteBroadcast(companyID, id string) error {
	broadcast, err := s.getScopedBroadcast(companyID, id)
	if err != nil {
		return err
	}

	if broadcast.Status == models.BroadcastStatusSending {
		return &models.InvalidStateError{
			Entity: "broadcast", ID: id, Status: string(broadcast.Status), Action: "delete",
		}
	}

	return s.repo.Broadcast().Delete(id)
}

// GetBroadcastStats counts recipient rows live, so the per-status counts
// always sum to recipient_count.
func (s *broadcastService) GetBroadcastStats(companyID, id string) (*models.BroadcastStats, error) {
	broadcast, err := s.getScopedBroadcast(companyID, id)
	if err != nil {
		return nil, err
	}

	counts, err := s.repo.Recipient().CountByStatus(id)
	if err != nil {
		return nil, err
	}

	return &models.BroadcastStats{
		Total:     broadcast.RecipientCount,
		Sent:      counts[models.RecipientStatusSent],
		Delivered: counts[models.RecipientStatusDelivered],
		Read:      counts[models.RecipientStatusRead],
		Failed:    counts[models.RecipientStatusFailed],
		Pending:   counts[models.RecipientStatusPending],
		Skipped:   counts[models.RecipientStatusSkipped],
	}, nil
}

// UpdateRecipientStatus ingests one provider callback. Callbacks arrive in
// any order; transitions that would regress the recipient lifecycle are
// dropped silently.
func (s *broadcastService) UpdateRecipientStatus(ctx context.Context, update *RecipientStatusUpdate) error {
	recipient, err := s.lookupRecipient(ctx, update)
	if err != nil {
		return err
	}

	if !recipient.Status.CanTransition(update.Status) {
		s.logger.Debug("Ignoring out-of-order recipient status callback",
			zap.String("recipient_id", recipient.ID),
			zap.String("current", string(recipient.Status)),
			zap.String("incoming", string(update.Status)),
		)
		return nil
	}

	switch update.Status {
	case models.RecipientStatusSent:
		providerMessageID := update.ProviderMessageID
		if providerMessageID == "" {
			providerMessageID = recipient.ProviderMessageID.String
		}
		if err := s.repo.Recipient().MarkSent(recipient.ID, providerMessageID, time.Now()); err != nil {
			return err
		}
	case models.RecipientStatusFailed:
		if err := s.repo.Recipient().MarkFailed(recipient.ID, update.ErrorCode, update.ErrorMessage); err != nil {
			return err
		}
	default:
		if err := s.repo.Recipient().UpdateStatus(recipient.ID, update.Status); err != nil {
			return err
		}
	}

	if update.Status == models.RecipientStatusDelivered || update.Status == models.RecipientStatusRead {
		if err := s.repo.Broadcast().IncrementProgress(recipient.BroadcastID, string(update.Status), 1); err != nil {
			s.logger.Warn("Failed to bump broadcast progress from callback",
				zap.String("broadcast_id", recipient.BroadcastID),
				zap.Error(err))
		}
	}

	return nil
}

type sendOutcome struct {
	providerMessageID string
	err               error
}

// dispatchBatch fans the batch out to the provider concurrently and waits
// for every send to settle.
func (s *broadcastService) dispatchBatch(ctx context.Context, broadcast *models.Broadcast, batch []*models.BroadcastRecipient) []sendOutcome {
	outcomes := make([]sendOutcome, len(batch))

	var wg sync.WaitGroup
	for i, recipient := range batch {
		wg.Add(1)
		go func(i int, recipient *models.BroadcastRecipient) {
			defer wg.Done()
			providerMessageID, err := s.sendToRecipient(ctx, broadcast, recipient)
			outcomes[i] = sendOutcome{providerMessageID: providerMessageID, err: err}
		}(i, recipient)
	}
	wg.Wait()

	return outcomes
}

func (s *broadcastService) sendToRecipient(ctx context.Context, broadcast *models.Broadcast, recipient *models.BroadcastRecipient) (string, error) {
	var result *provider.SendResult
	var err error

	switch broadcast.MessageType {
	case models.MessageTypeText:
		result, err = s.gateway.SendText(ctx, recipient.Address, broadcast.Content.String)
	case models.MessageTypeTemplate:
		language := broadcast.TemplateLanguage
		if language == "" {
			language = defaultTemplateLanguage
		}
		result, err = s.gateway.SendTemplate(ctx, recipient.Address, broadcast.TemplateName.String, language, broadcast.TemplateParams)
	case models.MessageTypeMedia:
		result, err = s.gateway.SendMedia(ctx, recipient.Address, broadcast.MediaType.String, broadcast.MediaURL.String, broadcast.MediaCaption.String)
	default:
		return "", &models.ValidationError{Field: "message_type", Reason: "unsupported message type"}
	}
	if err != nil {
		return "", err
	}

	return result.ProviderMessageID, nil
}

// recordSent persists a successful dispatch. The message-log row and the
// Redis callback-correlation key are best effort.
func (s *broadcastService) recordSent(ctx context.Context, broadcast *models.Broadcast, recipient *models.BroadcastRecipient, providerMessageID string) {
	sentAt := time.Now()
	if err := s.repo.Recipient().MarkSent(recipient.ID, providerMessageID, sentAt); err != nil {
		s.logger.Error("Failed to mark recipient sent",
			zap.String("recipient_id", recipient.ID),
			zap.Error(err))
		return
	}

	message := &models.Message{
		ID:                uuid.New().String(),
		CompanyID:         broadcast.CompanyID,
		ProviderMessageID: nullString(providerMessageID),
		Address:           recipient.Address,
		Direction:         models.MessageDirectionOutbound,
		MessageType:       broadcast.MessageType,
		Content:           broadcast.Content,
		LeadID:            recipient.LeadID,
		ContactID:         recipient.ContactID,
		SentAt:            sql.NullTime{Time: sentAt, Valid: true},
	}
	if err := s.repo.Audience().CreateMessage(message); err != nil {
		s.logger.Warn("Failed to log outbound message",
			zap.String("recipient_id", recipient.ID),
			zap.Error(err))
	}

	if err := s.redisClient.Set(ctx, providerMessageKey(providerMessageID), recipient.ID, providerMessageKeyTTL).Err(); err != nil {
		s.logger.Warn("Failed to cache provider message id",
			zap.String("provider_message_id", providerMessageID),
			zap.Error(err))
	}
}

func (s *broadcastService) recordFailed(recipient *models.BroadcastRecipient, sendErr error) {
	code := 500
	message := sendErr.Error()
	if providerErr, ok := sendErr.(*models.ProviderError); ok {
		code = providerErr.Code
		message = providerErr.Message
	}

	if err := s.repo.Recipient().MarkFailed(recipient.ID, code, message); err != nil {
		s.logger.Error("Failed to mark recipient failed",
			zap.String("recipient_id", recipient.ID),
			zap.Error(err))
	}

	s.logger.Warn("Recipient send failed",
		zap.String("recipient_id", recipient.ID),
		zap.String("address", recipient.Address),
		zap.Int("error_code", code),
		zap.String("error_message", message),
	)
}

// failBroadcast marks the broadcast failed after a broadcast-level error and
// hands the original error back to the caller.
func (s *broadcastService) failBroadcast(id string, cause error) error {
	completed := time.Now()
	if err := s.repo.Broadcast().UpdateStatus(id, models.BroadcastStatusFailed, nil, &completed); err != nil {
		s.logger.Error("Failed to mark broadcast failed",
			zap.String("broadcast_id", id),
			zap.Error(err))
	}

	s.logger.Error("Broadcast dispatch failed",
		zap.String("broadcast_id", id),
		zap.Error(cause))

	return cause
}

func (s *broadcastService) getScopedBroadcast(companyID, id string) (*models.Broadcast, error) {
	broadcast, err := s.repo.Broadcast().GetByID(id)
	if err != nil {
		return nil, err
	}
	if broadcast.CompanyID != companyID {
		return nil, models.ErrNotFound
	}
	return broadcast, nil
}

func (s *broadcastService) lookupRecipient(ctx context.Context, update *RecipientStatusUpdate) (*models.BroadcastRecipient, error) {
	if update.RecipientID != "" {
		return s.repo.Recipient().GetByID(update.RecipientID)
	}
	if update.ProviderMessageID == "" {
		return nil, &models.ValidationError{Field: "provider_message_id", Reason: "recipient_id or provider_message_id is required"}
	}

	// Fast path through the Redis correlation key written at send time.
	if recipientID, err := s.redisClient.Get(ctx, providerMessageKey(update.ProviderMessageID)).Result(); err == nil && recipientID != "" {
		if recipient, err := s.repo.Recipient().GetByID(recipientID); err == nil {
			return recipient, nil
		}
	}

	return s.repo.Recipient().GetByProviderMessageID(update.ProviderMessageID)
}

func (s *broadcastService) buildBroadcast(companyID string, input *CreateBroadcastInput, recipientCount int) *models.Broadcast {
	status := models.BroadcastStatusDraft
	var scheduledAt sql.NullTime
	if input.ScheduledAt != nil {
		status = models.BroadcastStatusScheduled
		scheduledAt = sql.NullTime{Time: *input.ScheduledAt, Valid: true}
	}

	language := input.TemplateLanguage
	if language == "" {
		language = defaultTemplateLanguage
	}

	batchSize := input.BatchSize
	if batchSize <= 0 {
		batchSize = s.cfg.Dispatcher.DefaultBatchSize
	}
	messagesPerMinute := input.MessagesPerMinute
	if messagesPerMinute <= 0 {
		messagesPerMinute = s.cfg.Dispatcher.DefaultMessagesPerMinute
	}

	broadcast := &models.Broadcast{
		ID:               uuid.New().String(),
		CompanyID:        companyID,
		Name:             input.Name,
		Description:      nullString(input.Description),
		MessageType:      input.MessageType,
		Content:          nullString(input.Content),
		TemplateName:     nullString(input.TemplateName),
		TemplateLanguage: language,
		TemplateParams:   input.TemplateParams,
		MediaType:        nullString(input.MediaType),
		MediaURL:         nullString(input.MediaURL),
		MediaCaption:     nullString(input.MediaCaption),
		RecipientType:    input.RecipientType,
		RecipientFilters: input.RecipientFilters,
		RecipientCount:   recipientCount,

		MessagesPerMinute: messagesPerMinute,
		BatchSize:         batchSize,
		ScheduledAt:       scheduledAt,
		SendTimeWindow:    input.SendTimeWindow,

		Status:    status,
		Progress:  models.Progress{},
		CreatedBy: nullString(input.CreatedBy),
	}

	if input.RecipientType == models.RecipientTypeCustom {
		broadcast.RecipientIDs = input.RecipientIDs
	}

	return broadcast
}

func validateBroadcastInput(input *CreateBroadcastInput) error {
	if input.Name == "" {
		return &models.ValidationError{Field: "name", Reason: "required"}
	}
	if input.MessageType == "" {
		return &models.ValidationError{Field: "message_type", Reason: "required"}
	}

	switch input.MessageType {
	case models.MessageTypeText:
		if input.Content == "" {
			return &models.ValidationError{Field: "content", Reason: "required for text messages"}
		}
	case models.MessageTypeTemplate:
		if input.TemplateName == "" {
			return &models.ValidationError{Field: "template_name", Reason: "required for template messages"}
		}
	case models.MessageTypeMedia:
		if input.MediaType == "" || input.MediaURL == "" {
			return &models.ValidationError{Field: "media_url", Reason: "media_type and media_url are required for media messages"}
		}
	default:
		return &models.ValidationError{Field: "message_type", Reason: "must be text, template or media"}
	}

	return nil
}

func nullString(value string) sql.NullString {
	if value == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: value, Valid: true}
}
