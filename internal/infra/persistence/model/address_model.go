package model

import (
	"time"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
type AddressModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	VendorToken *string `gorm:"type:varchar(255);index:idx_addresses_vendor_token"`
	VendorID    *string `gorm:"type:varchar(255)"`
	Region      string  `gorm:"type:varchar(64);not null"`
	AddressText string  `gorm:"column:address;type:text;not null"`
	Status      int8    `gorm:"type:smallint;not null"`
	IsDefault   int8    `gorm:"type:smallint;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
