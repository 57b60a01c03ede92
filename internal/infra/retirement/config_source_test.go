package retirement

import (
	"context"
	"testing"

	"addresssync/config"
	"addresssync/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigSource_FetchRetiredAddresses(t *testing.T) {
	cfg := &config.Config{
		Retirement: &config.RetirementConfig{
			Candidates: []config.RetirementCandidate{
				{AddressID: 3, Region: "AL", OldAddress: "1 Old Rd", NewAddress: "2 New Rd", Status: 0},
			},
		},
	}

	changes, err := NewConfigSource(cfg).FetchRetiredAddresses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []entity.AddressChange{
		{AddressID: 3, Region: "AL", OldAddressText: "1 Old Rd", NewAddressText: "2 New Rd", Status: entity.FlagOff},
	}, changes)

	changes[0].AddressID = 99
	again, err := NewConfigSource(cfg).FetchRetiredAddresses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), again[0].AddressID)
}

func TestConfigSource_NoRetirementSection(t *testing.T) {
	changes, err := NewConfigSource(&config.Config{}).FetchRetiredAddresses(context.Background())
	require.NoError(t, err)
	assert.Empty(t, changes)
}
