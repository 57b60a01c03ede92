package repository

import (
	"context"

	"addresssync/internal/domain/entity"
)

// UserAddressRepository reads user-to-address links. Links are owned by the
// account service; this service never writes them.
type UserAddressRepository interface {
	// FindLinksByAddressAndTier returns the links of an address restricted to one privacy tier.
	FindLinksByAddressAndTier(ctx context.Context, addressID int64, tier entity.PrivacyTier) ([]*entity.UserAddressLink, error)
}
