package memory

import (
	"context"
	"errors"
	"testing"

	"addresssync/internal/domain/entity"
	"addresssync/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestAddressRepository_FindByVendorTokenOrdersByID(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := store.Addresses()

	for _, region := range []string{"AL", "AR", "AZ"} {
		require.NoError(t, repo.CreateAddress(ctx, &entity.AddressRecord{
			VendorToken: strPtr("T2"),
			Region:      region,
			AddressText: "X",
			Status:      entity.FlagOn,
		}))
	}
	require.NoError(t, repo.CreateAddress(ctx, &entity.AddressRecord{
		VendorToken: strPtr("other"),
		Region:      "CA",
		AddressText: "X",
	}))

	records, err := repo.FindAddressesByVendorToken(ctx, "T2")
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"AL", "AR", "AZ"}, []string{records[0].Region, records[1].Region, records[2].Region})
	assert.Less(t, records[0].ID, records[1].ID)
}

func TestAddressRepository_FindFirstAddressByText(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := store.Addresses()

	first := &entity.AddressRecord{Region: "AL", AddressText: "  New   Street "}
	second := &entity.AddressRecord{Region: "AR", AddressText: "new street"}
	require.NoError(t, repo.CreateAddress(ctx, first))
	require.NoError(t, repo.CreateAddress(ctx, second))

	found, err := repo.FindFirstAddressByText(ctx, entity.NormalizeAddressText("NEW STREET"))
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)

	_, err = repo.FindFirstAddressByText(ctx, "nowhere")
	assert.ErrorIs(t, err, repository.ErrAddressNotFound)
}

func TestAddressRepository_UpdateAddressFieldsKeepsRegion(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := store.Addresses()

	record := &entity.AddressRecord{VendorToken: strPtr("T1"), VendorID: strPtr("v-1"), Region: "AL", AddressText: "A"}
	require.NoError(t, repo.CreateAddress(ctx, record))

	text := "B"
	status := entity.FlagOff
	require.NoError(t, repo.UpdateAddressFields(ctx, record.ID, entity.AddressUpdate{
		AddressText:   &text,
		Status:        &status,
		ClearVendorID: true,
	}))

	updated, err := repo.FindAddressByID(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, "B", updated.AddressText)
	assert.Equal(t, entity.FlagOff, updated.Status)
	assert.Equal(t, "AL", updated.Region)
	assert.Nil(t, updated.VendorID)

	err = repo.UpdateAddressFields(ctx, 999, entity.AddressUpdate{AddressText: &text})
	assert.ErrorIs(t, err, repository.ErrAddressNotFound)
}

func TestAddressRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := store.Addresses()

	record := &entity.AddressRecord{VendorToken: strPtr("T1"), Region: "AL", AddressText: "A"}
	require.NoError(t, repo.CreateAddress(ctx, record))

	found, err := repo.FindAddressByID(ctx, record.ID)
	require.NoError(t, err)
	found.AddressText = "mutated"
	*found.VendorToken = "mutated"

	again, err := repo.FindAddressByID(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", again.AddressText)
	assert.Equal(t, "T1", *again.VendorToken)
}

func TestEmailQueueRepository_InsertEntryDedup(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	queue := store.EmailQueue()

	intent := entity.NotificationIntent{UserID: 7, AddressID: 1, OldAddressText: "old street", NewAddressText: "new street"}

	entry := entity.NewEmailQueueEntry(intent)
	require.NoError(t, queue.InsertEntry(ctx, entry))
	assert.NotZero(t, entry.ID)

	exists, err := queue.ExistsByKey(ctx, entity.NotificationIntent{
		UserID: 7, AddressID: 1, OldAddressText: " Old  Street", NewAddressText: "NEW STREET",
	}.DedupKey())
	require.NoError(t, err)
	assert.True(t, exists)

	err = queue.InsertEntry(ctx, entity.NewEmailQueueEntry(intent))
	assert.ErrorIs(t, err, repository.ErrQueueEntryExists)
	assert.Len(t, store.QueueEntries(), 1)
	assert.False(t, store.QueueEntries()[0].IsEmailSent)
}

func TestUserAddressRepository_FiltersByTier(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	store.LinkUser(entity.UserAddressLink{UserID: 1, AddressID: 10, PrivacyTier: entity.PrivacyTierPremium})
	store.LinkUser(entity.UserAddressLink{UserID: 2, AddressID: 10, PrivacyTier: entity.PrivacyTierStandard})
	store.LinkUser(entity.UserAddressLink{UserID: 3, AddressID: 11, PrivacyTier: entity.PrivacyTierPremium})

	links, err := store.UserAddresses().FindLinksByAddressAndTier(ctx, 10, entity.PrivacyTierPremium)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, int64(1), links[0].UserID)
}

func TestTransactionManager_RollsBackAddressesOnError(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	record := &entity.AddressRecord{VendorToken: strPtr("T1"), Region: "AL", AddressText: "A"}
	require.NoError(t, store.Addresses().CreateAddress(ctx, record))

	boom := errors.New("boom")
	err := store.TransactionManager().Execute(ctx, func(factory repository.RepositoryFactory) error {
		text := "B"
		if err := factory.NewAddressRepository().UpdateAddressFields(ctx, record.ID, entity.AddressUpdate{AddressText: &text}); err != nil {
			return err
		}

		return boom
	})
	require.ErrorIs(t, err, boom)

	found, err := store.Addresses().FindAddressByID(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", found.AddressText)
}

func TestTransactionManager_RollbackKeepsConcurrentWrites(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	outside := store.Addresses()
	touched := &entity.AddressRecord{VendorToken: strPtr("T1"), Region: "AL", AddressText: "A"}
	untouched := &entity.AddressRecord{VendorToken: strPtr("T2"), Region: "AR", AddressText: "X"}
	require.NoError(t, outside.CreateAddress(ctx, touched))
	require.NoError(t, outside.CreateAddress(ctx, untouched))

	var createdOutside, createdInside entity.AddressRecord
	err := store.TransactionManager().Execute(ctx, func(factory repository.RepositoryFactory) error {
		inside := factory.NewAddressRepository()
		text := "B"
		require.NoError(t, inside.UpdateAddressFields(ctx, touched.ID, entity.AddressUpdate{AddressText: &text}))
		createdInside = entity.AddressRecord{VendorToken: strPtr("T3"), Region: "AZ", AddressText: "tx"}
		require.NoError(t, inside.CreateAddress(ctx, &createdInside))

		// A sync running alongside the transaction.
		other := "Y"
		require.NoError(t, outside.UpdateAddressFields(ctx, untouched.ID, entity.AddressUpdate{AddressText: &other}))
		createdOutside = entity.AddressRecord{VendorToken: strPtr("T4"), Region: "CA", AddressText: "sync"}
		require.NoError(t, outside.CreateAddress(ctx, &createdOutside))

		return errors.New("repair failed")
	})
	require.Error(t, err)

	found, err := outside.FindAddressByID(ctx, touched.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", found.AddressText)

	found, err = outside.FindAddressByID(ctx, untouched.ID)
	require.NoError(t, err)
	assert.Equal(t, "Y", found.AddressText)

	_, err = outside.FindAddressByID(ctx, createdOutside.ID)
	require.NoError(t, err)

	_, err = outside.FindAddressByID(ctx, createdInside.ID)
	assert.ErrorIs(t, err, repository.ErrAddressNotFound)
}

func TestTransactionManager_CommitsOnSuccess(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	record := &entity.AddressRecord{VendorToken: strPtr("T1"), Region: "AL", AddressText: "A"}
	require.NoError(t, store.Addresses().CreateAddress(ctx, record))

	err := store.TransactionManager().Execute(ctx, func(factory repository.RepositoryFactory) error {
		text := "B"

		return factory.NewAddressRepository().UpdateAddressFields(ctx, record.ID, entity.AddressUpdate{AddressText: &text})
	})
	require.NoError(t, err)

	found, err := store.Addresses().FindAddressByID(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, "B", found.AddressText)
}
