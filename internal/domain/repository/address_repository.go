// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"addresssync/internal/domain/entity"
	"addresssync/internal/errors"
)

// Domain-specific errors for address persistence.
var (
	// ErrAddressNotFound is returned when an address is not found.
	ErrAddressNotFound = errors.New("address not found")
)

// AddressRepository defines the interface for vendor address records.
type AddressRepository interface {
	// CreateAddress persists a new address record and fills in its generated ID and timestamps.
	CreateAddress(ctx context.Context, address *entity.AddressRecord) error

	// FindAddressByID retrieves an address by its ID.
	// Returns ErrAddressNotFound if it does not exist.
	FindAddressByID(ctx context.Context, id int64) (*entity.AddressRecord, error)

	// FindAddressesByVendorToken retrieves every record sharing the vendor token, ordered by ID.
	FindAddressesByVendorToken(ctx context.Context, vendorToken string) ([]*entity.AddressRecord, error)

	// FindFirstAddressByText retrieves the lowest-ID record whose normalized address
	// text equals normalizedText. Returns ErrAddressNotFound when nothing matches.
	FindFirstAddressByText(ctx context.Context, normalizedText string) (*entity.AddressRecord, error)

	// UpdateAddressFields applies the enumerated update to the record with the given ID.
	// Returns ErrAddressNotFound if no row was affected.
	UpdateAddressFields(ctx context.Context, id int64, update entity.AddressUpdate) error
}
