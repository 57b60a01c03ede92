// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"
)

// Flag is the canonical 0/1 integer the vendor uses for boolean attributes.
type Flag int8

const (
	FlagOff Flag = 0
	FlagOn  Flag = 1
)

// Valid reports whether f is one of the two canonical values.
func (f Flag) Valid() bool {
	return f == FlagOff || f == FlagOn
}

// Ptr returns a pointer to a copy of f.
func (f Flag) Ptr() *Flag {
	return &f
}

// AddressRecord is a locally stored address supplied by the vendor.
// Several records may share one VendorToken, one per Region.
type AddressRecord struct {
	ID          int64     // Internal identity, assigned by the store.
	VendorToken *string   // Shared vendor-side identifier; nil when the vendor has not assigned one.
	VendorID    *string   // External identifier copied during retirement repair.
	Region      string    // State or geographic scope. Never changed by a token-driven update.
	AddressText string    // Free-text address as supplied by the vendor.
	Status      Flag      // Active (1) or inactive (0).
	IsDefault   Flag      // Default address flag.
	CreatedAt   time.Time // Timestamp of when this record was created.
	UpdatedAt   time.Time // Timestamp of the last modification.
}

// HasVendorToken reports whether the record carries a non-blank vendor token.
func (a *AddressRecord) HasVendorToken() bool {
	return a.VendorToken != nil && strings.TrimSpace(*a.VendorToken) != ""
}

// AddressUpdate enumerates the fields an update may touch. Region is
// deliberately absent: no update path is allowed to move a record between regions.
type AddressUpdate struct {
	AddressText *string
	Status      *Flag
	IsDefault   *Flag
	VendorToken *string
	VendorID    *string
	// ClearVendorID sets vendor_id to NULL when VendorID is nil.
	ClearVendorID bool
}

// IsEmpty reports whether the update would not change any column.
func (u AddressUpdate) IsEmpty() bool {
	return u.AddressText == nil && u.Status == nil && u.IsDefault == nil &&
		u.VendorToken == nil && u.VendorID == nil && !u.ClearVendorID
}

// Apply copies the enumerated fields onto a record. Stores that keep records
// in memory use it so both drivers share one definition of an update.
func (u AddressUpdate) Apply(record *AddressRecord) {
	if u.AddressText != nil {
		record.AddressText = *u.AddressText
	}
	if u.Status != nil {
		record.Status = *u.Status
	}
	if u.IsDefault != nil {
		record.IsDefault = *u.IsDefault
	}
	if u.VendorToken != nil {
		token := *u.VendorToken
		record.VendorToken = &token
	}
	switch {
	case u.VendorID != nil:
		vendorID := *u.VendorID
		record.VendorID = &vendorID
	case u.ClearVendorID:
		record.VendorID = nil
	}
}
