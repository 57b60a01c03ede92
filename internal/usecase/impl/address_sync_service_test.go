package impl

import (
	"context"
	"testing"

	"addresssync/internal/domain/entity"
	domainerrors "addresssync/internal/domain/errors"
	"addresssync/internal/errors"
	mockRepo "addresssync/internal/mocks/repository"
	mockUsecase "addresssync/internal/mocks/usecase"
	"addresssync/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAddressSyncService(t *testing.T) (
	usecase.AddressSyncUsecase,
	*mockRepo.MockAddressRepository,
	*mockUsecase.MockNotificationUsecase,
) {
	addressRepo := mockRepo.NewMockAddressRepository(t)
	notifier := mockUsecase.NewMockNotificationUsecase(t)

	svc := NewAddressSyncService(AddressSyncServiceParams{
		AddressRepo: addressRepo,
		Notifier:    notifier,
		Logger:      newTestLogger(),
	})

	return svc, addressRepo, notifier
}

func TestAddressSyncService_SyncAddress_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.SyncAddressInput
	}{
		{name: "nil input", input: nil},
		{name: "blank token", input: &usecase.SyncAddressInput{VendorToken: "  ", Region: "AL", AddressText: "A", Status: entity.FlagOn.Ptr(), IsDefault: entity.FlagOn.Ptr()}},
		{name: "blank address", input: &usecase.SyncAddressInput{VendorToken: "T1", Region: "AL", AddressText: "", Status: entity.FlagOn.Ptr(), IsDefault: entity.FlagOn.Ptr()}},
		{name: "status out of range", input: &usecase.SyncAddressInput{VendorToken: "T1", Region: "AL", AddressText: "A", Status: entity.Flag(2).Ptr(), IsDefault: entity.FlagOn.Ptr()}},
		{name: "default flag out of range", input: &usecase.SyncAddressInput{VendorToken: "T1", Region: "AL", AddressText: "A", Status: entity.FlagOn.Ptr(), IsDefault: entity.Flag(5).Ptr()}},
		{name: "status missing", input: &usecase.SyncAddressInput{VendorToken: "T1", Region: "AL", AddressText: "A", IsDefault: entity.FlagOff.Ptr()}},
		{name: "default flag missing", input: &usecase.SyncAddressInput{VendorToken: "T1", Region: "AL", AddressText: "A", Status: entity.FlagOff.Ptr()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := createTestAddressSyncService(t)

			result, err := svc.SyncAddress(context.Background(), tt.input)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestAddressSyncService_SyncAddress_CreatesForUnseenToken(t *testing.T) {
	svc, addressRepo, _ := createTestAddressSyncService(t)
	ctx := context.Background()

	addressRepo.EXPECT().FindAddressesByVendorToken(ctx, "T1").Return(nil, nil)
	addressRepo.EXPECT().
		CreateAddress(ctx, mock.MatchedBy(func(record *entity.AddressRecord) bool {
			return *record.VendorToken == "T1" && record.Region == "AL" && record.AddressText == "A" &&
				record.Status == entity.FlagOn && record.IsDefault == entity.FlagOn
		})).
		RunAndReturn(func(_ context.Context, record *entity.AddressRecord) error {
			record.ID = 11

			return nil
		})

	result, err := svc.SyncAddress(ctx, &usecase.SyncAddressInput{
		VendorToken: "T1", Region: "AL", AddressText: "A", Status: entity.FlagOn.Ptr(), IsDefault: entity.FlagOn.Ptr(),
	})
	require.NoError(t, err)
	require.NotNil(t, result.Created)
	assert.Equal(t, int64(11), result.Created.ID)
	assert.Empty(t, result.Updated)
	assert.Empty(t, result.Changes)
}

func TestAddressSyncService_SyncAddress_CreateRequiresRegion(t *testing.T) {
	svc, addressRepo, _ := createTestAddressSyncService(t)
	ctx := context.Background()

	addressRepo.EXPECT().FindAddressesByVendorToken(ctx, "T1").Return(nil, nil)

	_, err := svc.SyncAddress(ctx, &usecase.SyncAddressInput{VendorToken: "T1", AddressText: "A", Status: entity.FlagOn.Ptr(), IsDefault: entity.FlagOff.Ptr()})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAddressSyncService_SyncAddress_UpdatesEveryRecordOfToken(t *testing.T) {
	svc, addressRepo, notifier := createTestAddressSyncService(t)
	ctx := context.Background()

	addressRepo.EXPECT().FindAddressesByVendorToken(ctx, "T2").Return([]*entity.AddressRecord{
		{ID: 1, VendorToken: strPtr("T2"), Region: "AL", AddressText: "X", Status: entity.FlagOn},
		{ID: 2, VendorToken: strPtr("T2"), Region: "AR", AddressText: "X", Status: entity.FlagOn},
	}, nil)

	isRegionFree := mock.MatchedBy(func(update entity.AddressUpdate) bool {
		return *update.AddressText == "Y" && *update.Status == entity.FlagOff && *update.IsDefault == entity.FlagOn &&
			update.VendorToken == nil && update.VendorID == nil
	})
	addressRepo.EXPECT().UpdateAddressFields(ctx, int64(1), isRegionFree).Return(nil)
	addressRepo.EXPECT().UpdateAddressFields(ctx, int64(2), isRegionFree).Return(nil)

	notifier.EXPECT().
		EnqueueNotifications(ctx, entity.AddressChange{AddressID: 1, Region: "AL", OldAddressText: "X", NewAddressText: "Y", Status: entity.FlagOff}).
		Return(&usecase.NotificationReport{}, nil)
	notifier.EXPECT().
		EnqueueNotifications(ctx, entity.AddressChange{AddressID: 2, Region: "AR", OldAddressText: "X", NewAddressText: "Y", Status: entity.FlagOff}).
		Return(&usecase.NotificationReport{}, nil)

	result, err := svc.SyncAddress(ctx, &usecase.SyncAddressInput{
		VendorToken: "T2", Region: "ZZ", AddressText: "Y", Status: entity.FlagOff.Ptr(), IsDefault: entity.FlagOn.Ptr(),
	})
	require.NoError(t, err)
	assert.Nil(t, result.Created)
	require.Len(t, result.Updated, 2)
	assert.Equal(t, "AL", result.Updated[0].Region)
	assert.Equal(t, "AR", result.Updated[1].Region)
	assert.Equal(t, "Y", result.Updated[1].AddressText)
	assert.Len(t, result.Changes, 2)
}

func TestAddressSyncService_SyncAddress_PartialFailureForwardsAppliedUpdates(t *testing.T) {
	svc, addressRepo, notifier := createTestAddressSyncService(t)
	ctx := context.Background()

	addressRepo.EXPECT().FindAddressesByVendorToken(ctx, "T3").Return([]*entity.AddressRecord{
		{ID: 1, VendorToken: strPtr("T3"), Region: "AL", AddressText: "X"},
		{ID: 2, VendorToken: strPtr("T3"), Region: "AR", AddressText: "X"},
		{ID: 3, VendorToken: strPtr("T3"), Region: "AZ", AddressText: "X"},
	}, nil)
	addressRepo.EXPECT().UpdateAddressFields(ctx, int64(1), mock.Anything).Return(nil)
	addressRepo.EXPECT().UpdateAddressFields(ctx, int64(2), mock.Anything).
		Return(domainerrors.NewDatabaseExecuteError(errors.New("deadlock"), "failed to update address"))

	notifier.EXPECT().
		EnqueueNotifications(ctx, mock.MatchedBy(func(change entity.AddressChange) bool { return change.AddressID == 1 })).
		Return(&usecase.NotificationReport{}, nil).
		Once()

	result, err := svc.SyncAddress(ctx, &usecase.SyncAddressInput{VendorToken: "T3", AddressText: "Y", Status: entity.FlagOn.Ptr(), IsDefault: entity.FlagOff.Ptr()})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrAddressSyncFailed)
}

func TestAddressSyncService_SyncAddress_LookupFailure(t *testing.T) {
	svc, addressRepo, _ := createTestAddressSyncService(t)
	ctx := context.Background()

	addressRepo.EXPECT().FindAddressesByVendorToken(ctx, "T1").Return(nil, errors.New("connection reset"))

	_, err := svc.SyncAddress(ctx, &usecase.SyncAddressInput{VendorToken: "T1", Region: "AL", AddressText: "A", Status: entity.FlagOn.Ptr(), IsDefault: entity.FlagOff.Ptr()})
	assert.ErrorIs(t, err, domainerrors.ErrAddressSyncFailed)
}

func TestAddressSyncService_SyncAddress_CreateFailure(t *testing.T) {
	svc, addressRepo, _ := createTestAddressSyncService(t)
	ctx := context.Background()

	addressRepo.EXPECT().FindAddressesByVendorToken(ctx, "T1").Return(nil, nil)
	addressRepo.EXPECT().CreateAddress(ctx, mock.Anything).Return(errors.New("connection reset"))

	_, err := svc.SyncAddress(ctx, &usecase.SyncAddressInput{VendorToken: "T1", Region: "AL", AddressText: "A", Status: entity.FlagOn.Ptr(), IsDefault: entity.FlagOff.Ptr()})
	assert.ErrorIs(t, err, domainerrors.ErrAddressSyncFailed)
}

func TestAddressSyncService_SyncAddress_NotificationFailureDoesNotFailSync(t *testing.T) {
	svc, addressRepo, notifier := createTestAddressSyncService(t)
	ctx := context.Background()

	addressRepo.EXPECT().FindAddressesByVendorToken(ctx, "T1").Return([]*entity.AddressRecord{
		{ID: 1, VendorToken: strPtr("T1"), Region: "AL", AddressText: "A"},
	}, nil)
	addressRepo.EXPECT().UpdateAddressFields(ctx, int64(1), mock.Anything).Return(nil)
	notifier.EXPECT().EnqueueNotifications(ctx, mock.Anything).Return(nil, errors.New("links table unavailable"))

	result, err := svc.SyncAddress(ctx, &usecase.SyncAddressInput{VendorToken: "T1", AddressText: "B", Status: entity.FlagOn.Ptr(), IsDefault: entity.FlagOff.Ptr()})
	require.NoError(t, err)
	assert.Len(t, result.Updated, 1)
}
