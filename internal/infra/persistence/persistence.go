// Package persistence selects the storage driver configured under storage.driver
// and provides the repositories to the fx graph.
package persistence

import (
	"log/slog"

	"addresssync/config"
	"addresssync/internal/domain/constants"
	"addresssync/internal/domain/repository"
	"addresssync/internal/errors"
	"addresssync/internal/infra/persistence/memory"
	"addresssync/internal/infra/persistence/postgres"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
	Registry  *prometheus.Registry `optional:"true"`
}

// Repositories is the set of repositories backed by one storage driver.
type Repositories struct {
	fx.Out

	Addresses     repository.AddressRepository
	UserAddresses repository.UserAddressRepository
	EmailQueue    repository.EmailQueueRepository
	Transactions  repository.TransactionManager
}

// New opens the configured storage driver.
func New(params Params) (Repositories, error) {
	driver := constants.StorageDriverPostgres
	if params.Config.Storage != nil && params.Config.Storage.Driver != "" {
		driver = params.Config.Storage.Driver
	}

	switch driver {
	case constants.StorageDriverMemory:
		params.Logger.Warn("Using in-memory storage; data is lost on restart")
		store := memory.NewStore()

		return Repositories{
			Addresses:     store.Addresses(),
			UserAddresses: store.UserAddresses(),
			EmailQueue:    store.EmailQueue(),
			Transactions:  store.TransactionManager(),
		}, nil
	case constants.StorageDriverPostgres:
		db, err := postgres.Open(postgres.OpenParams{
			Lc:       params.Lifecycle,
			Config:   params.Config,
			Logger:   params.Logger,
			Registry: params.Registry,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			Addresses:     postgres.NewAddressRepository(db),
			UserAddresses: postgres.NewUserAddressRepository(db),
			EmailQueue:    postgres.NewEmailQueueRepository(db),
			Transactions:  postgres.NewTransactionManager(db),
		}, nil
	default:
		return Repositories{}, errors.Errorf("unsupported storage driver %q", driver)
	}
}
