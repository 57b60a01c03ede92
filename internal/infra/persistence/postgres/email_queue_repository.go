package postgres

import (
	"context"

	"addresssync/internal/domain/entity"
	domainerrors "addresssync/internal/domain/errors"
	"addresssync/internal/domain/repository"
	"addresssync/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// emailQueueRepository implements the repository.EmailQueueRepository interface.
type emailQueueRepository struct {
	db *gorm.DB
}

// NewEmailQueueRepository is the constructor for emailQueueRepository.
func NewEmailQueueRepository(db *gorm.DB) repository.EmailQueueRepository {
	return &emailQueueRepository{
		db: db,
	}
}

// ExistsByKey reports whether an entry with the dedup key is already queued.
func (repo *emailQueueRepository) ExistsByKey(ctx context.Context, key entity.QueueKey) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.EmailQueueModel{}).
		Where("user_id = ? AND address_id = ? AND old_address_key = ? AND new_address_key = ?",
			key.UserID, key.AddressID, key.OldAddressKey, key.NewAddressKey).
		Count(&count).Error
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check email queue entry")
	}

	return count > 0, nil
}

// InsertEntry appends an unsent entry. A conflict on the dedup index inserts
// nothing and is reported as ErrQueueEntryExists.
func (repo *emailQueueRepository) InsertEntry(ctx context.Context, entry *entity.EmailQueueEntry) error {
	entryM := fromEmailQueueDomain(entry)
	entryM.IsEmailSent = false

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(entryM)
	if result.Error != nil {
		if isConstraintViolation(result.Error) {
			return domainerrors.ErrQueueWriteRejected.WithDetails(result.Error.Error())
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to insert email queue entry")
	}

	if result.RowsAffected == 0 {
		return repository.ErrQueueEntryExists
	}

	entry.ID = entryM.ID
	entry.IsEmailSent = false
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// fromEmailQueueDomain converts a domain EmailQueueEntry to a GORM EmailQueueModel.
func fromEmailQueueDomain(data *entity.EmailQueueEntry) *model.EmailQueueModel {
	if data == nil {
		return nil
	}

	return &model.EmailQueueModel{
		ID:            data.ID,
		UserID:        data.UserID,
		AddressID:     data.AddressID,
		OldAddress:    data.OldAddressText,
		NewAddress:    data.NewAddressText,
		OldAddressKey: data.OldAddressKey,
		NewAddressKey: data.NewAddressKey,
		Status:        int8(data.Status),
		IsEmailSent:   data.IsEmailSent,
		CreatedAt:     data.CreatedAt,
	}
}
