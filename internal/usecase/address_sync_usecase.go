// Package usecase defines the application operations exposed to the delivery layer.
package usecase

import (
	"context"

	"addresssync/internal/domain/entity"
)

// SyncAddressInput is one vendor address payload. Status and IsDefault are
// pointers so that an omitted flag fails validation instead of reading as 0.
type SyncAddressInput struct {
	VendorToken string       `json:"vendor_token" validate:"notblank,max=255"`
	Region      string       `json:"region" validate:"max=64"` // Required only when the token is new.
	AddressText string       `json:"address" validate:"notblank"`
	Status      *entity.Flag `json:"status" validate:"required,oneof=0 1"`
	IsDefault   *entity.Flag `json:"is_default" validate:"required,oneof=0 1"`
}

// SyncResult reports what a sync did. Exactly one of Created or Updated is set.
type SyncResult struct {
	Created *entity.AddressRecord
	Updated []*entity.AddressRecord
	// Changes holds one descriptor per updated record, captured before the update.
	Changes []entity.AddressChange
}

// AddressSyncUsecase reconciles vendor payloads with the local address records.
type AddressSyncUsecase interface {
	// SyncAddress creates a record for an unseen vendor token, or updates every
	// record sharing the token and forwards a change descriptor per record.
	SyncAddress(ctx context.Context, input *SyncAddressInput) (*SyncResult, error)
}
