// Package retirement provides RetirementSource implementations.
package retirement

import (
	"context"

	"addresssync/config"
	"addresssync/internal/domain/entity"
	"addresssync/internal/domain/service"
)

// configSource serves the retirement candidates listed under retirement.candidates.
type configSource struct {
	candidates []entity.AddressChange
}

// NewConfigSource builds a RetirementSource from configuration.
func NewConfigSource(cfg *config.Config) service.RetirementSource {
	source := &configSource{}
	if cfg.Retirement == nil {
		return source
	}

	source.candidates = make([]entity.AddressChange, 0, len(cfg.Retirement.Candidates))
	for _, candidate := range cfg.Retirement.Candidates {
		source.candidates = append(source.candidates, entity.AddressChange{
			AddressID:      candidate.AddressID,
			Region:         candidate.Region,
			OldAddressText: candidate.OldAddress,
			NewAddressText: candidate.NewAddress,
			Status:         entity.Flag(candidate.Status),
		})
	}

	return source
}

// FetchRetiredAddresses returns a copy of the configured candidates.
func (s *configSource) FetchRetiredAddresses(_ context.Context) ([]entity.AddressChange, error) {
	out := make([]entity.AddressChange, len(s.candidates))
	copy(out, s.candidates)

	return out, nil
}
