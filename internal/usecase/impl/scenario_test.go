package impl

import (
	"context"
	"testing"

	"addresssync/internal/domain/entity"
	"addresssync/internal/infra/persistence/memory"
	"addresssync/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pipeline wires the real services to one memory store.
type pipeline struct {
	store      *memory.Store
	sync       usecase.AddressSyncUsecase
	notifier   usecase.NotificationUsecase
	retirement usecase.RetirementUsecase
}

func newPipeline(t *testing.T) *pipeline {
	t.Helper()
	store := memory.NewStore()
	logger := newTestLogger()

	notifier := NewNotificationService(NotificationServiceParams{
		LinkRepo:  store.UserAddresses(),
		QueueRepo: store.EmailQueue(),
		Logger:    logger,
	})

	return &pipeline{
		store:    store,
		notifier: notifier,
		sync: NewAddressSyncService(AddressSyncServiceParams{
			AddressRepo: store.Addresses(),
			Notifier:    notifier,
			Logger:      logger,
		}),
		retirement: NewRetirementService(RetirementServiceParams{
			TxManager: store.TransactionManager(),
			Notifier:  notifier,
			Logger:    logger,
		}),
	}
}

func (p *pipeline) seed(t *testing.T, record *entity.AddressRecord) *entity.AddressRecord {
	t.Helper()
	require.NoError(t, p.store.Addresses().CreateAddress(context.Background(), record))

	return record
}

func TestScenario_SyncSameTokenTwiceKeepsOneRecord(t *testing.T) {
	p := newPipeline(t)
	ctx := context.Background()

	first, err := p.sync.SyncAddress(ctx, &usecase.SyncAddressInput{
		VendorToken: "T1", Region: "AL", AddressText: "A", Status: entity.FlagOn.Ptr(), IsDefault: entity.FlagOn.Ptr(),
	})
	require.NoError(t, err)
	require.NotNil(t, first.Created)

	second, err := p.sync.SyncAddress(ctx, &usecase.SyncAddressInput{
		VendorToken: "T1", Region: "AL", AddressText: "B", Status: entity.FlagOn.Ptr(), IsDefault: entity.FlagOn.Ptr(),
	})
	require.NoError(t, err)
	assert.Nil(t, second.Created)
	require.Len(t, second.Updated, 1)

	records := p.store.AllAddresses()
	require.Len(t, records, 1)
	assert.Equal(t, "B", records[0].AddressText)
	assert.Equal(t, "AL", records[0].Region)
}

func TestScenario_SharedTokenUpdatesEveryRegion(t *testing.T) {
	p := newPipeline(t)
	ctx := context.Background()

	al := p.seed(t, &entity.AddressRecord{VendorToken: strPtr("T2"), Region: "AL", AddressText: "X", Status: entity.FlagOn})
	ar := p.seed(t, &entity.AddressRecord{VendorToken: strPtr("T2"), Region: "AR", AddressText: "X", Status: entity.FlagOn})
	p.store.LinkUser(entity.UserAddressLink{UserID: 1, AddressID: al.ID, PrivacyTier: entity.PrivacyTierPremium})
	p.store.LinkUser(entity.UserAddressLink{UserID: 2, AddressID: ar.ID, PrivacyTier: entity.PrivacyTierPremium})

	result, err := p.sync.SyncAddress(ctx, &usecase.SyncAddressInput{
		VendorToken: "T2", AddressText: "Y", Status: entity.FlagOff.Ptr(), IsDefault: entity.FlagOn.Ptr(),
	})
	require.NoError(t, err)
	require.Len(t, result.Changes, 2)

	records := p.store.AllAddresses()
	require.Len(t, records, 2)
	assert.Equal(t, "AL", records[0].Region)
	assert.Equal(t, "AR", records[1].Region)
	for _, record := range records {
		assert.Equal(t, "Y", record.AddressText)
		assert.Equal(t, entity.FlagOff, record.Status)
		assert.Equal(t, entity.FlagOn, record.IsDefault)
	}

	entries := p.store.QueueEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "X", entries[0].OldAddressText)
	assert.Equal(t, "Y", entries[0].NewAddressText)
	assert.False(t, entries[0].IsEmailSent)
}

func TestScenario_UnseenTokenCreatesOneRecordWithRegion(t *testing.T) {
	p := newPipeline(t)

	result, err := p.sync.SyncAddress(context.Background(), &usecase.SyncAddressInput{
		VendorToken: "NEW", Region: "TX", AddressText: "9 Elm", Status: entity.FlagOff.Ptr(), IsDefault: entity.FlagOff.Ptr(),
	})
	require.NoError(t, err)
	require.NotNil(t, result.Created)

	records := p.store.AllAddresses()
	require.Len(t, records, 1)
	assert.Equal(t, "TX", records[0].Region)
	assert.Equal(t, entity.FlagOff, records[0].Status)
	assert.Empty(t, p.store.QueueEntries())
}

func TestScenario_EnqueueTwiceProducesOneEntry(t *testing.T) {
	p := newPipeline(t)
	ctx := context.Background()
	p.store.LinkUser(entity.UserAddressLink{UserID: 7, AddressID: 1, PrivacyTier: entity.PrivacyTierPremium})

	change := entity.AddressChange{AddressID: 1, OldAddressText: "old street", NewAddressText: "new street", Status: entity.FlagOn}

	first, err := p.notifier.EnqueueNotifications(ctx, change)
	require.NoError(t, err)
	assert.Len(t, first.Queued, 1)

	second, err := p.notifier.EnqueueNotifications(ctx, change)
	require.NoError(t, err)
	assert.Empty(t, second.Queued)
	assert.Equal(t, 1, second.Skipped)

	entries := p.store.QueueEntries()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(7), entries[0].UserID)
}

func TestScenario_WhitespaceAndCaseAreIgnored(t *testing.T) {
	p := newPipeline(t)
	ctx := context.Background()
	p.store.LinkUser(entity.UserAddressLink{UserID: 7, AddressID: 1, PrivacyTier: entity.PrivacyTierPremium})

	_, err := p.notifier.EnqueueNotifications(ctx, entity.AddressChange{AddressID: 1, OldAddressText: "  Old St ", NewAddressText: "New  St"})
	require.NoError(t, err)
	report, err := p.notifier.EnqueueNotifications(ctx, entity.AddressChange{AddressID: 1, OldAddressText: "old st", NewAddressText: "new st"})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Skipped)
	assert.Len(t, p.store.QueueEntries(), 1)

	record := p.seed(t, &entity.AddressRecord{VendorToken: strPtr("T"), Region: "AL", AddressText: "  Old St "})
	found, err := p.store.Addresses().FindFirstAddressByText(ctx, entity.NormalizeAddressText("old st"))
	require.NoError(t, err)
	assert.Equal(t, record.ID, found.ID)
}

func TestScenario_StandardTierUsersAreNeverQueued(t *testing.T) {
	p := newPipeline(t)
	ctx := context.Background()
	p.store.LinkUser(entity.UserAddressLink{UserID: 1, AddressID: 1, PrivacyTier: entity.PrivacyTierStandard})
	p.store.LinkUser(entity.UserAddressLink{UserID: 2, AddressID: 1, PrivacyTier: entity.PrivacyTierPremium})

	report, err := p.notifier.EnqueueNotifications(ctx, entity.AddressChange{AddressID: 1, OldAddressText: "a", NewAddressText: "b"})
	require.NoError(t, err)
	require.Len(t, report.Queued, 1)

	for _, entry := range p.store.QueueEntries() {
		assert.NotEqual(t, int64(1), entry.UserID)
	}
}

func TestScenario_RetirementWithoutMatchLeavesTargetButNotifies(t *testing.T) {
	tests := []struct {
		name  string
		match *entity.AddressRecord
	}{
		{name: "no record has the new text"},
		{name: "matching record has no vendor token", match: &entity.AddressRecord{Region: "AR", AddressText: "2 New Rd"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPipeline(t)
			ctx := context.Background()

			target := p.seed(t, &entity.AddressRecord{VendorToken: strPtr("OLD"), Region: "AL", AddressText: "1 Old Rd", Status: entity.FlagOn})
			if tt.match != nil {
				p.seed(t, tt.match)
			}
			p.store.LinkUser(entity.UserAddressLink{UserID: 3, AddressID: target.ID, PrivacyTier: entity.PrivacyTierPremium})

			change := entity.AddressChange{AddressID: target.ID, Region: "AL", OldAddressText: "1 Old Rd", NewAddressText: "2 new rd"}
			outcome := p.retirement.DetectAndRepair(ctx, change)
			assert.True(t, outcome.Result.IsGap())

			stored, err := p.store.Addresses().FindAddressByID(ctx, target.ID)
			require.NoError(t, err)
			assert.Equal(t, target.AddressText, stored.AddressText)
			assert.Equal(t, "OLD", *stored.VendorToken)

			entries := p.store.QueueEntries()
			require.Len(t, entries, 1)
			assert.Equal(t, "1 Old Rd", entries[0].OldAddressText)
			assert.Equal(t, "2 new rd", entries[0].NewAddressText)
		})
	}
}

func TestScenario_RetirementRepointsTarget(t *testing.T) {
	p := newPipeline(t)
	ctx := context.Background()

	target := p.seed(t, &entity.AddressRecord{VendorToken: strPtr("OLD"), VendorID: strPtr("V-OLD"), Region: "AL", AddressText: "1 Old Rd", Status: entity.FlagOn})
	p.seed(t, &entity.AddressRecord{VendorToken: strPtr("NEW"), Region: "AR", AddressText: "2 New Rd", Status: entity.FlagOff, IsDefault: entity.FlagOn})

	report, err := p.retirement.SweepRetiredAddresses(ctx, []entity.AddressChange{
		{AddressID: target.ID, Region: "AL", OldAddressText: "1 Old Rd", NewAddressText: "2 NEW RD"},
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.SweepCounts{Processed: 1, Repaired: 1}, report.Counts())

	stored, err := p.store.Addresses().FindAddressByID(ctx, target.ID)
	require.NoError(t, err)
	assert.Equal(t, "2 NEW RD", stored.AddressText)
	assert.Equal(t, "NEW", *stored.VendorToken)
	assert.Nil(t, stored.VendorID)
	assert.Equal(t, "AL", stored.Region)
	assert.Equal(t, entity.FlagOff, stored.Status)
	assert.Equal(t, entity.FlagOn, stored.IsDefault)
}
