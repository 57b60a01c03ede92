package persistence

import (
	"io"
	"log/slog"
	"testing"

	"addresssync/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNew_MemoryDriver(t *testing.T) {
	repos, err := New(Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    &config.Config{Storage: &config.StorageConfig{Driver: "memory"}},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	assert.NotNil(t, repos.Addresses)
	assert.NotNil(t, repos.UserAddresses)
	assert.NotNil(t, repos.EmailQueue)
	assert.NotNil(t, repos.Transactions)
}

func TestNew_UnsupportedDriver(t *testing.T) {
	_, err := New(Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    &config.Config{Storage: &config.StorageConfig{Driver: "sqlite"}},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	assert.ErrorContains(t, err, "unsupported storage driver")
}

func TestNew_PostgresDriverRequiresConfig(t *testing.T) {
	_, err := New(Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    &config.Config{Storage: &config.StorageConfig{Driver: "postgres"}},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	assert.ErrorContains(t, err, "postgres config is required")
}
