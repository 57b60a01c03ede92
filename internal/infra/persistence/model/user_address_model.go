package model

// UserAddressModel is the GORM-specific struct for the 'user_addresses' table.
// Rows are written by the account service; this service only reads them.
type UserAddressModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	UserID      int64  `gorm:"not null;index"`
	AddressID   int64  `gorm:"not null;index:idx_user_addresses_address_tier"`
	PrivacyTier string `gorm:"type:varchar(32);not null;default:'standard';index:idx_user_addresses_address_tier"`
}

// TableName explicitly sets the table name for GORM.
func (UserAddressModel) TableName() string {
	return "user_addresses"
}
