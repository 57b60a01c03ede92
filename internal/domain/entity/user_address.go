package entity

// PrivacyTier is the privacy plan attached to a user's address link.
type PrivacyTier string

const (
	PrivacyTierStandard PrivacyTier = "standard"
	PrivacyTierPremium  PrivacyTier = "premium_privacy"
)

// UserAddressLink associates a user with an address record.
type UserAddressLink struct {
	UserID      int64
	AddressID   int64
	PrivacyTier PrivacyTier
}
