package impl

import (
	"context"
	"testing"

	"addresssync/config"
	"addresssync/internal/domain/entity"
	"addresssync/internal/domain/repository"
	"addresssync/internal/domain/service"
	"addresssync/internal/errors"
	mockRepo "addresssync/internal/mocks/repository"
	mockSvc "addresssync/internal/mocks/service"
	"addresssync/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T) (
	usecase.NotificationUsecase,
	*mockRepo.MockUserAddressRepository,
	*mockRepo.MockEmailQueueRepository,
	*mockSvc.MockEventPublisher,
) {
	linkRepo := mockRepo.NewMockUserAddressRepository(t)
	queueRepo := mockRepo.NewMockEmailQueueRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewNotificationService(NotificationServiceParams{
		LinkRepo:  linkRepo,
		QueueRepo: queueRepo,
		Publisher: publisher,
		Config:    &config.Config{Notification: &config.NotificationConfig{EligibleTier: "premium_privacy"}},
		Logger:    newTestLogger(),
	})

	return svc, linkRepo, queueRepo, publisher
}

var retiredChange = entity.AddressChange{
	AddressID:      1,
	Region:         "AL",
	OldAddressText: "old street",
	NewAddressText: "new street",
	Status:         entity.FlagOff,
}

func TestNotificationService_EnqueueNotifications_Success(t *testing.T) {
	svc, linkRepo, queueRepo, publisher := createTestNotificationService(t)
	ctx := context.Background()

	linkRepo.EXPECT().
		FindLinksByAddressAndTier(ctx, int64(1), entity.PrivacyTierPremium).
		Return([]*entity.UserAddressLink{{UserID: 7, AddressID: 1, PrivacyTier: entity.PrivacyTierPremium}}, nil)

	key := entity.QueueKey{UserID: 7, AddressID: 1, OldAddressKey: "old street", NewAddressKey: "new street"}
	queueRepo.EXPECT().ExistsByKey(ctx, key).Return(false, nil)
	queueRepo.EXPECT().
		InsertEntry(ctx, mock.MatchedBy(func(entry *entity.EmailQueueEntry) bool {
			return entry.Key() == key && !entry.IsEmailSent && entry.OldAddressText == "old street"
		})).
		RunAndReturn(func(_ context.Context, entry *entity.EmailQueueEntry) error {
			entry.ID = 42

			return nil
		})
	publisher.EXPECT().
		PublishEmailQueued(ctx, mock.MatchedBy(func(event *service.EmailQueuedEvent) bool {
			return event.QueueEntryID == 42 && event.UserID == 7 && event.AddressID == 1
		})).
		Return(nil)

	report, err := svc.EnqueueNotifications(ctx, retiredChange)
	require.NoError(t, err)
	require.Len(t, report.Queued, 1)
	assert.Equal(t, int64(42), report.Queued[0].ID)
	assert.Zero(t, report.Skipped)
	assert.Zero(t, report.Failed)
}

func TestNotificationService_EnqueueNotifications_NoEligibleUsers(t *testing.T) {
	svc, linkRepo, _, _ := createTestNotificationService(t)
	ctx := context.Background()

	linkRepo.EXPECT().
		FindLinksByAddressAndTier(ctx, int64(1), entity.PrivacyTierPremium).
		Return([]*entity.UserAddressLink{}, nil)

	report, err := svc.EnqueueNotifications(ctx, retiredChange)
	require.NoError(t, err)
	assert.Empty(t, report.Queued)
	assert.Zero(t, report.Skipped)
}

func TestNotificationService_EnqueueNotifications_LookupError(t *testing.T) {
	svc, linkRepo, _, _ := createTestNotificationService(t)
	ctx := context.Background()
	dbErr := errors.New("connection refused")

	linkRepo.EXPECT().
		FindLinksByAddressAndTier(ctx, int64(1), entity.PrivacyTierPremium).
		Return(nil, dbErr)

	report, err := svc.EnqueueNotifications(ctx, retiredChange)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, dbErr)
}

func TestNotificationService_EnqueueNotifications_SkipsAlreadyQueued(t *testing.T) {
	svc, linkRepo, queueRepo, _ := createTestNotificationService(t)
	ctx := context.Background()

	linkRepo.EXPECT().
		FindLinksByAddressAndTier(ctx, int64(1), entity.PrivacyTierPremium).
		Return([]*entity.UserAddressLink{{UserID: 7, AddressID: 1}}, nil)
	queueRepo.EXPECT().ExistsByKey(ctx, mock.Anything).Return(true, nil)

	report, err := svc.EnqueueNotifications(ctx, retiredChange)
	require.NoError(t, err)
	assert.Empty(t, report.Queued)
	assert.Equal(t, 1, report.Skipped)
}

func TestNotificationService_EnqueueNotifications_ConcurrentDuplicateIsSkipped(t *testing.T) {
	svc, linkRepo, queueRepo, _ := createTestNotificationService(t)
	ctx := context.Background()

	linkRepo.EXPECT().
		FindLinksByAddressAndTier(ctx, int64(1), entity.PrivacyTierPremium).
		Return([]*entity.UserAddressLink{{UserID: 7, AddressID: 1}}, nil)
	queueRepo.EXPECT().ExistsByKey(ctx, mock.Anything).Return(false, nil)
	queueRepo.EXPECT().InsertEntry(ctx, mock.Anything).Return(repository.ErrQueueEntryExists)

	report, err := svc.EnqueueNotifications(ctx, retiredChange)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Skipped)
	assert.Zero(t, report.Failed)
}

func TestNotificationService_EnqueueNotifications_ContinuesAfterInsertFailure(t *testing.T) {
	svc, linkRepo, queueRepo, publisher := createTestNotificationService(t)
	ctx := context.Background()

	linkRepo.EXPECT().
		FindLinksByAddressAndTier(ctx, int64(1), entity.PrivacyTierPremium).
		Return([]*entity.UserAddressLink{{UserID: 7, AddressID: 1}, {UserID: 8, AddressID: 1}}, nil)
	queueRepo.EXPECT().ExistsByKey(ctx, mock.Anything).Return(false, nil).Times(2)
	queueRepo.EXPECT().
		InsertEntry(ctx, mock.MatchedBy(func(entry *entity.EmailQueueEntry) bool { return entry.UserID == 7 })).
		Return(errors.New("disk full"))
	queueRepo.EXPECT().
		InsertEntry(ctx, mock.MatchedBy(func(entry *entity.EmailQueueEntry) bool { return entry.UserID == 8 })).
		Return(nil)
	publisher.EXPECT().PublishEmailQueued(ctx, mock.Anything).Return(nil)

	report, err := svc.EnqueueNotifications(ctx, retiredChange)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.Queued, 1)
	assert.Equal(t, int64(8), report.Queued[0].UserID)
}

func TestNotificationService_EnqueueNotifications_ExistsCheckFailure(t *testing.T) {
	svc, linkRepo, queueRepo, _ := createTestNotificationService(t)
	ctx := context.Background()

	linkRepo.EXPECT().
		FindLinksByAddressAndTier(ctx, int64(1), entity.PrivacyTierPremium).
		Return([]*entity.UserAddressLink{{UserID: 7, AddressID: 1}}, nil)
	queueRepo.EXPECT().ExistsByKey(ctx, mock.Anything).Return(false, errors.New("timeout"))

	report, err := svc.EnqueueNotifications(ctx, retiredChange)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Failed)
}

func TestNotificationService_EnqueueNotifications_DuplicateLinksYieldOneIntent(t *testing.T) {
	svc, linkRepo, queueRepo, publisher := createTestNotificationService(t)
	ctx := context.Background()

	linkRepo.EXPECT().
		FindLinksByAddressAndTier(ctx, int64(1), entity.PrivacyTierPremium).
		Return([]*entity.UserAddressLink{{UserID: 7, AddressID: 1}, {UserID: 7, AddressID: 1}}, nil)
	queueRepo.EXPECT().ExistsByKey(ctx, mock.Anything).Return(false, nil).Once()
	queueRepo.EXPECT().InsertEntry(ctx, mock.Anything).Return(nil).Once()
	publisher.EXPECT().PublishEmailQueued(ctx, mock.Anything).Return(nil).Once()

	report, err := svc.EnqueueNotifications(ctx, retiredChange)
	require.NoError(t, err)
	assert.Len(t, report.Queued, 1)
}

func TestNotificationService_EnqueueNotifications_PublishFailureIsNotFatal(t *testing.T) {
	svc, linkRepo, queueRepo, publisher := createTestNotificationService(t)
	ctx := context.Background()

	linkRepo.EXPECT().
		FindLinksByAddressAndTier(ctx, int64(1), entity.PrivacyTierPremium).
		Return([]*entity.UserAddressLink{{UserID: 7, AddressID: 1}}, nil)
	queueRepo.EXPECT().ExistsByKey(ctx, mock.Anything).Return(false, nil)
	queueRepo.EXPECT().InsertEntry(ctx, mock.Anything).Return(nil)
	publisher.EXPECT().PublishEmailQueued(ctx, mock.Anything).Return(errors.New("topic not found"))

	report, err := svc.EnqueueNotifications(ctx, retiredChange)
	require.NoError(t, err)
	assert.Len(t, report.Queued, 1)
}

func TestNotificationService_DefaultsEligibleTier(t *testing.T) {
	linkRepo := mockRepo.NewMockUserAddressRepository(t)
	svc := NewNotificationService(NotificationServiceParams{
		LinkRepo:  linkRepo,
		QueueRepo: mockRepo.NewMockEmailQueueRepository(t),
		Config:    &config.Config{},
		Logger:    newTestLogger(),
	})
	ctx := context.Background()

	linkRepo.EXPECT().
		FindLinksByAddressAndTier(ctx, int64(1), entity.PrivacyTierPremium).
		Return(nil, nil)

	_, err := svc.EnqueueNotifications(ctx, retiredChange)
	require.NoError(t, err)
}

func TestBuildIntents_LastLinkWinsPerUser(t *testing.T) {
	intents := buildIntents(retiredChange, []*entity.UserAddressLink{
		{UserID: 7, AddressID: 1},
		{UserID: 8, AddressID: 1},
		{UserID: 7, AddressID: 1},
	})

	require.Len(t, intents, 2)
	assert.Equal(t, int64(7), intents[0].UserID)
	assert.Equal(t, int64(8), intents[1].UserID)
	assert.Equal(t, "new street", intents[0].NewAddressText)
}
