package postgres

import (
	"context"

	"addresssync/internal/domain/entity"
	domainerrors "addresssync/internal/domain/errors"
	"addresssync/internal/domain/repository"
	"addresssync/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// userAddressRepository implements the repository.UserAddressRepository interface.
type userAddressRepository struct {
	db *gorm.DB
}

// NewUserAddressRepository is the constructor for userAddressRepository.
func NewUserAddressRepository(db *gorm.DB) repository.UserAddressRepository {
	return &userAddressRepository{
		db: db,
	}
}

// FindLinksByAddressAndTier returns the links of an address restricted to one privacy tier.
func (repo *userAddressRepository) FindLinksByAddressAndTier(ctx context.Context, addressID int64, tier entity.PrivacyTier) ([]*entity.UserAddressLink, error) {
	var linkModels []*model.UserAddressModel
	err := repo.db.WithContext(ctx).
		Where("address_id = ? AND privacy_tier = ?", addressID, string(tier)).
		Order("id ASC").
		Find(&linkModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user address links")
	}

	links := make([]*entity.UserAddressLink, len(linkModels))
	for i, linkM := range linkModels {
		links[i] = toUserAddressLinkDomain(linkM)
	}

	return links, nil
}

// toUserAddressLinkDomain converts a GORM UserAddressModel to a domain UserAddressLink.
func toUserAddressLinkDomain(data *model.UserAddressModel) *entity.UserAddressLink {
	if data == nil {
		return nil
	}

	return &entity.UserAddressLink{
		UserID:      data.UserID,
		AddressID:   data.AddressID,
		PrivacyTier: entity.PrivacyTier(data.PrivacyTier),
	}
}
