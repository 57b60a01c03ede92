package service

import (
	"context"

	"addresssync/internal/domain/entity"
)

// RetirementSource produces the candidate retirements for a sweep.
type RetirementSource interface {
	FetchRetiredAddresses(ctx context.Context) ([]entity.AddressChange, error)
}
