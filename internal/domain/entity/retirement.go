package entity

// RetirementResult classifies how a single retirement descriptor was handled.
type RetirementResult string

const (
	RetirementRepaired RetirementResult = "repaired"
	// Gaps: the descriptor could not be repaired and the target stays as it was.
	RetirementNoMatchingAddress  RetirementResult = "no_matching_address"
	RetirementMissingVendorToken RetirementResult = "missing_vendor_token"
	RetirementTargetNotFound     RetirementResult = "target_not_found"
	// RetirementFailed means a persistence fault interrupted the repair.
	RetirementFailed RetirementResult = "failed"
)

// IsGap reports whether the result is a known, non-fatal gap.
func (r RetirementResult) IsGap() bool {
	switch r {
	case RetirementNoMatchingAddress, RetirementMissingVendorToken, RetirementTargetNotFound:
		return true
	default:
		return false
	}
}
