package entity

// AddressChange describes an address text moving from OldAddressText to
// NewAddressText on one record. The reconciler emits one per updated record and
// the retirement sweep consumes a list of them.
type AddressChange struct {
	AddressID      int64  `json:"address_id"`
	Region         string `json:"region"`
	OldAddressText string `json:"old_address"`
	NewAddressText string `json:"new_address"`
	Status         Flag   `json:"status"`
}
