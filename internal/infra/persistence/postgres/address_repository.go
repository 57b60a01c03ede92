// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"addresssync/internal/domain/entity"
	domainerrors "addresssync/internal/domain/errors"
	"addresssync/internal/domain/repository"
	"addresssync/internal/errors"
	"addresssync/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// normalizedAddressExpr mirrors entity.NormalizeAddressText and matches the
// expression index of migration 000004. Whitespace is the ASCII class only;
// lower() follows the database collation, so the database is expected to use
// a UTF-8 locale where it agrees with strings.ToLower.
const normalizedAddressExpr = `lower(btrim(regexp_replace(address, '[ \t\n\r\f\v]+', ' ', 'g')))`

// addressRepository implements the repository.AddressRepository interface.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{
		db: db,
	}
}

// CreateAddress persists a new vendor address record.
func (repo *addressRepository) CreateAddress(ctx context.Context, address *entity.AddressRecord) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		if isConstraintViolation(err) {
			return domainerrors.ErrAddressWriteRejected.WithDetails(err.Error())
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// FindAddressByID retrieves an address by its ID.
func (repo *addressRepository) FindAddressByID(ctx context.Context, id int64) (*entity.AddressRecord, error) {
	var addressM model.AddressModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&addressM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find address by ID")
	}

	return toAddressDomain(&addressM), nil
}

// FindAddressesByVendorToken retrieves every record that shares the vendor token.
func (repo *addressRepository) FindAddressesByVendorToken(ctx context.Context, vendorToken string) ([]*entity.AddressRecord, error) {
	var addressModels []*model.AddressModel
	err := repo.db.WithContext(ctx).
		Where("vendor_token = ?", vendorToken).
		Order("id ASC").
		Find(&addressModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find addresses by vendor token")
	}

	addresses := make([]*entity.AddressRecord, len(addressModels))
	for i, addressM := range addressModels {
		addresses[i] = toAddressDomain(addressM)
	}

	return addresses, nil
}

// FindFirstAddressByText retrieves the lowest-ID record whose normalized text matches.
func (repo *addressRepository) FindFirstAddressByText(ctx context.Context, normalizedText string) (*entity.AddressRecord, error) {
	var addressM model.AddressModel
	err := repo.db.WithContext(ctx).
		Where(normalizedAddressExpr+" = ?", normalizedText).
		Order("id ASC").
		First(&addressM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find address by text")
	}

	return toAddressDomain(&addressM), nil
}

// UpdateAddressFields writes only the columns enumerated by the update.
func (repo *addressRepository) UpdateAddressFields(ctx context.Context, id int64, update entity.AddressUpdate) error {
	if update.IsEmpty() {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("id = ?", id).
		Updates(addressUpdateColumns(update))
	if result.Error != nil {
		if isConstraintViolation(result.Error) {
			return domainerrors.ErrAddressWriteRejected.WithDetails(result.Error.Error())
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update address")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// addressUpdateColumns converts the update into a column map. The map never
// carries a region key.
func addressUpdateColumns(update entity.AddressUpdate) map[string]any {
	columns := make(map[string]any, 5)
	if update.AddressText != nil {
		columns["address"] = *update.AddressText
	}
	if update.Status != nil {
		columns["status"] = int8(*update.Status)
	}
	if update.IsDefault != nil {
		columns["is_default"] = int8(*update.IsDefault)
	}
	if update.VendorToken != nil {
		columns["vendor_token"] = *update.VendorToken
	}
	switch {
	case update.VendorID != nil:
		columns["vendor_id"] = *update.VendorID
	case update.ClearVendorID:
		columns["vendor_id"] = nil
	}

	return columns
}

// toAddressDomain converts a GORM AddressModel to a domain AddressRecord.
func toAddressDomain(data *model.AddressModel) *entity.AddressRecord {
	if data == nil {
		return nil
	}

	return &entity.AddressRecord{
		ID:          data.ID,
		VendorToken: data.VendorToken,
		VendorID:    data.VendorID,
		Region:      data.Region,
		AddressText: data.AddressText,
		Status:      entity.Flag(data.Status),
		IsDefault:   entity.Flag(data.IsDefault),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromAddressDomain converts a domain AddressRecord to a GORM AddressModel.
func fromAddressDomain(data *entity.AddressRecord) *model.AddressModel {
	if data == nil {
		return nil
	}

	return &model.AddressModel{
		ID:          data.ID,
		VendorToken: data.VendorToken,
		VendorID:    data.VendorID,
		Region:      data.Region,
		AddressText: data.AddressText,
		Status:      int8(data.Status),
		IsDefault:   int8(data.IsDefault),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
