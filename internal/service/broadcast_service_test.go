package service_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/pkozlov/outreach/internal/config"
	"github.com/pkozlov/outreach/internal/models"
	"github.com/pkozlov/outreach/internal/provider"
	providermocks "github.com/pkozlov/outreach/internal/provider/mocks"
	"github.com/pkozlov/outreach/internal/service"
)

func testConfig() *config.Config {
	return &config.Config{
		Dispatcher: config.DispatcherConfig{
			DefaultBatchSize:         50,
			DefaultMessagesPerMinute: 60,
		},
		Scheduler: config.SchedulerConfig{
			IntervalMinutes: 1,
			SweepLimit:      100,
		},
	}
}

// testRedis points at a closed port; the dispatcher treats cache failures as
// non-fatal, so unit tests run without a live Redis.
func testRedis() *redis.Client {
	return redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond})
}

func storedBroadcast(status models.BroadcastStatus) *models.Broadcast {
	return &models.Broadcast{
		ID:                uuid.New().String(),
		CompanyID:         "company-1",
		Name:              "Spring promo",
		MessageType:       models.MessageTypeText,
		Content:           sql.NullString{String: "Hello there", Valid: true},
		RecipientType:     models.RecipientTypeLeads,
		MessagesPerMinute: 6000,
		BatchSize:         2,
		Status:            status,
	}
}

func pendingRecipient(broadcastID, address string) *models.BroadcastRecipient {
	return &models.BroadcastRecipient{
		ID:          uuid.New().String(),
		BroadcastID: broadcastID,
		Address:     address,
		Status:      models.RecipientStatusPending,
	}
}

func TestBroadcastService_CreateBroadcast_ValidatesPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newRepoMocks(ctrl)
	gateway := providermocks.NewMockGateway(ctrl)
	svc := service.NewBroadcastService(testConfig(), m.repo, gateway, testRedis(), zap.NewNop())

	_, err := svc.CreateBroadcast(context.Background(), "company-1", &service.CreateBroadcastInput{
		Name:          "No body",
		MessageType:   models.MessageTypeText,
		RecipientType: models.RecipientTypeLeads,
	})

	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "content", validationErr.Field)
}

func TestBroadcastService_CreateBroadcast_PersistsRecipients(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newRepoMocks(ctrl)
	m.audience.EXPECT().ListLeadsWithPhone("company-1").Return([]*models.Lead{
		lead("l1", "company-1", "491700000001"),
		lead("l2", "company-1", "491700000002"),
	}, nil)

	var created *models.Broadcast
	m.broadcast.EXPECT().Create(gomock.Any()).DoAndReturn(func(b *models.Broadcast) error {
		created = b
		return nil
	})
	m.recipient.EXPECT().CreateBatch(gomock.Any()).DoAndReturn(func(rows []*models.BroadcastRecipient) error {
		require.Len(t, rows, 2)
		for _, row := range rows {
			assert.Equal(t, created.ID, row.BroadcastID)
			assert.Equal(t, models.RecipientStatusPending, row.Status)
		}
		return nil
	})

	gateway := providermocks.NewMockGateway(ctrl)
	svc := service.NewBroadcastService(testConfig(), m.repo, gateway, testRedis(), zap.NewNop())

	broadcast, err := svc.CreateBroadcast(context.Background(), "company-1", &service.CreateBroadcastInput{
		Name:          "Spring promo",
		MessageType:   models.MessageTypeText,
		Content:       "Hello there",
		RecipientType: models.RecipientTypeLeads,
	})
	require.NoError(t, err)

	assert.Equal(t, models.BroadcastStatusDraft, broadcast.Status)
	assert.Equal(t, 2, broadcast.RecipientCount)
	assert.Equal(t, 50, broadcast.BatchSize, "defaults applied from config")
	assert.Equal(t, 60, broadcast.MessagesPerMinute)
}

func TestBroadcastService_SendBroadcast_RejectsWhileSending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	broadcast := storedBroadcast(models.BroadcastStatusSending)

	m := newRepoMocks(ctrl)
	m.broadcast.EXPECT().GetByID(broadcast.ID).Return(broadcast, nil)

	gateway := providermocks.NewMockGateway(ctrl)
	svc := service.NewBroadcastService(testConfig(), m.repo, gateway, testRedis(), zap.NewNop())

	_, err := svc.SendBroadcast(context.Background(), broadcast.ID)

	var stateErr *models.InvalidStateError
	require.ErrorAs(t, err, &stateErr)
	assert.Equal(t, "send", stateErr.Action)
}

func TestBroadcastService_SendBroadcast_BatchesAndPaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	broadcast := storedBroadcast(models.BroadcastStatusDraft)

	recipients := []*models.BroadcastRecipient{
		pendingRecipient(broadcast.ID, "491700000001"),
		pendingRecipient(broadcast.ID, "491700000002"),
		pendingRecipient(broadcast.ID, "491700000003"),
		pendingRecipient(broadcast.ID, "491700000004"),
		pendingRecipient(broadcast.ID, "491700000005"),
	}

	m := newRepoMocks(ctrl)
	m.broadcast.EXPECT().GetByID(broadcast.ID).Return(broadcast, nil)
	m.broadcast.EXPECT().UpdateStatus(broadcast.ID, models.BroadcastStatusSending, gomock.Any(), nil).Return(nil)
	m.recipient.EXPECT().ListPending(broadcast.ID).Return(recipients, nil)

	gateway := providermocks.NewMockGateway(ctrl)
	gateway.EXPECT().SendText(gomock.Any(), gomock.Any(), "Hello there").
		Return(&provider.SendResult{ProviderMessageID: "wamid.ok"}, nil).
		Times(5)

	m.recipient.EXPECT().MarkSent(gomock.Any(), "wamid.ok", gomock.Any()).Return(nil).Times(5)
	m.audience.EXPECT().CreateMessage(gomock.Any()).Return(nil).Times(5)

	// Batch size 2 over 5 recipients: cumulative progress after each batch.
	gomock.InOrder(
		m.broadcast.EXPECT().UpdateProgressCounts(broadcast.ID, 2, 0).Return(nil),
		m.broadcast.EXPECT().UpdateProgressCounts(broadcast.ID, 4, 0).Return(nil),
		m.broadcast.EXPECT().UpdateProgressCounts(broadcast.ID, 5, 0).Return(nil),
	)
	m.broadcast.EXPECT().UpdateStatus(broadcast.ID, models.BroadcastStatusSent, nil, gomock.Any()).Return(nil)

	svc := service.NewBroadcastService(testConfig(), m.repo, gateway, testRedis(), zap.NewNop())

	report, err := svc.SendBroadcast(context.Background(), broadcast.ID)
	require.NoError(t, err)
	assert.Equal(t, &service.SendReport{Sent: 5, Failed: 0, Total: 5}, report)
}

func TestBroadcastService_SendBroadcast_OutlivesCallerDeadline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	broadcast := storedBroadcast(models.BroadcastStatusDraft)
	broadcast.BatchSize = 1
	broadcast.MessagesPerMinute = 1200 // 50ms pause between batches

	recipients := []*models.BroadcastRecipient{
		pendingRecipient(broadcast.ID, "491700000001"),
		pendingRecipient(broadcast.ID, "491700000002"),
		pendingRecipient(broadcast.ID, "491700000003"),
	}

	m := newRepoMocks(ctrl)
	m.broadcast.EXPECT().GetByID(broadcast.ID).Return(broadcast, nil)
	m.broadcast.EXPECT().UpdateStatus(broadcast.ID, models.BroadcastStatusSending, gomock.Any(), nil).Return(nil)
	m.recipient.EXPECT().ListPending(broadcast.ID).Return(recipients, nil)

	gateway := providermocks.NewMockGateway(ctrl)
	gateway.EXPECT().SendText(gomock.Any(), gomock.Any(), "Hello there").
		Return(&provider.SendResult{ProviderMessageID: "wamid.ok"}, nil).
		Times(3)

	m.recipient.EXPECT().MarkSent(gomock.Any(), "wamid.ok", gomock.Any()).Return(nil).Times(3)
	m.audience.EXPECT().CreateMessage(gomock.Any()).Return(nil).Times(3)

	gomock.InOrder(
		m.broadcast.EXPECT().UpdateProgressCounts(broadcast.ID, 1, 0).Return(nil),
		m.broadcast.EXPECT().UpdateProgressCounts(broadcast.ID, 2, 0).Return(nil),
		m.broadcast.EXPECT().UpdateProgressCounts(broadcast.ID, 3, 0).Return(nil),
	)
	m.broadcast.EXPECT().UpdateStatus(broadcast.ID, models.BroadcastStatusSent, nil, gomock.Any()).Return(nil)

	svc := service.NewBroadcastService(testConfig(), m.repo, gateway, testRedis(), zap.NewNop())

	// The caller's deadline elapses while the dispatcher is pacing between
	// batches. The dispatch must still run every recipient to completion and
	// finish in sent; a hung-up caller is not a broadcast-level error.
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()

	report, err := svc.SendBroadcast(ctx, broadcast.ID)
	require.NoError(t, err)
	assert.Equal(t, &service.SendReport{Sent: 3, Failed: 0, Total: 3}, report)
}

func TestBroadcastService_SendBroadcast_AllRecipientsFailStillSent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	broadcast := storedBroadcast(models.BroadcastStatusDraft)

	recipients := []*models.BroadcastRecipient{
		pendingRecipient(broadcast.ID, "491700000001"),
		pendingRecipient(broadcast.ID, "491700000002"),
	}

	m := newRepoMocks(ctrl)
	m.broadcast.EXPECT().GetByID(broadcast.ID).Return(broadcast, nil)
	m.broadcast.EXPECT().UpdateStatus(broadcast.ID, models.BroadcastStatusSending, gomock.Any(), nil).Return(nil)
	m.recipient.EXPECT().ListPending(broadcast.ID).Return(recipients, nil)

	gateway := providermocks.NewMockGateway(ctrl)
	gateway.EXPECT().SendText(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, &models.ProviderError{Code: 470, Message: "recipient opted out"}).
		Times(2)

	m.recipient.EXPECT().MarkFailed(gomock.Any(), 470, "recipient opted out").Return(nil).Times(2)
	m.broadcast.EXPECT().UpdateProgressCounts(broadcast.ID, 0, 2).Return(nil)

	// Per-recipient failures never fail the broadcast itself.
	m.broadcast.EXPECT().UpdateStatus(broadcast.ID, models.BroadcastStatusSent, nil, gomock.Any()).Return(nil)

	svc := service.NewBroadcastService(testConfig(), m.repo, gateway, testRedis(), zap.NewNop())

	report, err := svc.SendBroadcast(context.Background(), broadcast.ID)
	require.NoError(t, err)
	assert.Equal(t, &service.SendReport{Sent: 0, Failed: 2, Total: 2}, report)
}

func TestBroadcastService_SendBroadcast_IsolatesFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	broadcast := storedBroadcast(models.BroadcastStatusDraft)

	ok := pendingRecipient(broadcast.ID, "491700000001")
	bad := pendingRecipient(broadcast.ID, "491700000002")

	m := newRepoMocks(ctrl)
	m.broadcast.EXPECT().GetByID(broadcast.ID).Return(broadcast, nil)
	m.broadcast.EXPECT().UpdateStatus(broadcast.ID, models.BroadcastStatusSending, gomock.Any(), nil).Return(nil)
	m.recipient.EXPECT().ListPending(broadcast.ID).Return([]*models.BroadcastRecipient{ok, bad}, nil)

	gateway := providermocks.NewMockGateway(ctrl)
	gateway.EXPECT().SendText(gomock.Any(), ok.Address, gomock.Any()).
		Return(&provider.SendResult{ProviderMessageID: "wamid.1"}, nil)
	gateway.EXPECT().SendText(gomock.Any(), bad.Address, gomock.Any()).
		Return(nil, &models.ProviderError{Code: 131026, Message: "undeliverable"})

	m.recipient.EXPECT().MarkSent(ok.ID, "wamid.1", gomock.Any()).Return(nil)
	m.audience.EXPECT().CreateMessage(gomock.Any()).Return(nil)
	m.recipient.EXPECT().MarkFailed(bad.ID, 131026, "undeliverable").Return(nil)

	m.broadcast.EXPECT().UpdateProgressCounts(broadcast.ID, 1, 1).Return(nil)
	m.broadcast.EXPECT().UpdateStatus(broadcast.ID, models.BroadcastStatusSent, nil, gomock.Any()).Return(nil)

	svc := service.NewBroadcastService(testConfig(), m.repo, gateway, testRedis(), zap.NewNop())

	report, err := svc.SendBroadcast(context.Background(), broadcast.ID)
	require.NoError(t, err)
	assert.Equal(t, &service.SendReport{Sent: 1, Failed: 1, Total: 2}, report)
}

func TestBroadcastService_UpdateRecipientStatus_DropsRegressions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	recipient := pendingRecipient("b1", "491700000001")
	recipient.Status = models.RecipientStatusDelivered

	m := newRepoMocks(ctrl)
	m.recipient.EXPECT().GetByID(recipient.ID).Return(recipient, nil)

	gateway := providermocks.NewMockGateway(ctrl)
	svc := service.NewBroadcastService(testConfig(), m.repo, gateway, testRedis(), zap.NewNop())

	// A late sent callback after delivered must not touch the row.
	err := svc.UpdateRecipientStatus(context.Background(), &service.RecipientStatusUpdate{
		RecipientID: recipient.ID,
		Status:      models.RecipientStatusSent,
	})
	require.NoError(t, err)
}

func TestBroadcastService_UpdateRecipientStatus_DeliveredBumpsProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	recipient := pendingRecipient("b1", "491700000001")
	recipient.Status = models.RecipientStatusSent
	recipient.ProviderMessageID = sql.NullString{String: "wamid.9", Valid: true}

	m := newRepoMocks(ctrl)
	// The Redis fast path is unavailable in unit tests, so the lookup falls
	// back to the provider message id column.
	m.recipient.EXPECT().GetByProviderMessageID("wamid.9").Return(recipient, nil)
	m.recipient.EXPECT().UpdateStatus(recipient.ID, models.RecipientStatusDelivered).Return(nil)
	m.broadcast.EXPECT().IncrementProgress("b1", "delivered", 1).Return(nil)

	gateway := providermocks.NewMockGateway(ctrl)
	svc := service.NewBroadcastService(testConfig(), m.repo, gateway, testRedis(), zap.NewNop())

	err := svc.UpdateRecipientStatus(context.Background(), &service.RecipientStatusUpdate{
		ProviderMessageID: "wamid.9",
		Status:            models.RecipientStatusDelivered,
	})
	require.NoError(t, err)
}

func TestBroadcastService_CancelBroadcast_OnlyBeforeDispatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	broadcast := storedBroadcast(models.BroadcastStatusSent)

	m := newRepoMocks(ctrl)
	m.broadcast.EXPECT().GetByID(broadcast.ID).Return(broadcast, nil)

	gateway := providermocks.NewMockGateway(ctrl)
	svc := service.NewBroadcastService(testConfig(), m.repo, gateway, testRedis(), zap.NewNop())

	err := svc.CancelBroadcast("company-1", broadcast.ID)

	var stateErr *models.InvalidStateError
	require.ErrorAs(t, err, &stateErr)
}

func TestBroadcastService_GetBroadcastByID_ScopedByCompany(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	broadcast := storedBroadcast(models.BroadcastStatusDraft)

	m := newRepoMocks(ctrl)
	m.broadcast.EXPECT().GetByID(broadcast.ID).Return(broadcast, nil)

	gateway := providermocks.NewMockGateway(ctrl)
	svc := service.NewBroadcastService(testConfig(), m.repo, gateway, testRedis(), zap.NewNop())

	_, err := svc.GetBroadcastByID("other-company", broadcast.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}
