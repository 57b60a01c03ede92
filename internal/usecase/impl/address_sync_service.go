package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "addresssync/internal/delivery/context"
	"addresssync/internal/domain/entity"
	domainerrors "addresssync/internal/domain/errors"
	"addresssync/internal/domain/repository"
	"addresssync/internal/infra/metrics"
	"addresssync/internal/usecase"
	"addresssync/internal/util"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
)

// addressSyncService implements the AddressSyncUsecase interface.
type addressSyncService struct {
	addressRepo repository.AddressRepository
	notifier    usecase.NotificationUsecase
	validate    *validator.Validate
	metrics     *metrics.Metrics
	logger      *slog.Logger
}

// AddressSyncServiceParams holds dependencies for AddressSyncService, injected by Fx.
type AddressSyncServiceParams struct {
	fx.In

	AddressRepo repository.AddressRepository
	Notifier    usecase.NotificationUsecase
	Metrics     *metrics.Metrics `optional:"true"`
	Logger      *slog.Logger
}

// NewAddressSyncService creates a new address sync service instance.
func NewAddressSyncService(params AddressSyncServiceParams) usecase.AddressSyncUsecase {
	return &addressSyncService{
		addressRepo: params.AddressRepo,
		notifier:    params.Notifier,
		validate:    util.NewValidator(),
		metrics:     params.Metrics,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *addressSyncService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SyncAddress creates or fans out an update for the vendor token in input.
func (srv *addressSyncService) SyncAddress(ctx context.Context, input *usecase.SyncAddressInput) (*usecase.SyncResult, error) {
	start := time.Now()

	if input == nil {
		srv.metrics.ObserveSync(metrics.SyncInvalid, 0, start)

		return nil, domainerrors.ErrValidationFailed.WithDetails("request body is required")
	}
	if err := srv.validate.Struct(input); err != nil {
		srv.metrics.ObserveSync(metrics.SyncInvalid, 0, start)

		return nil, domainerrors.ErrValidationFailed.WithDetails(util.ValidationDetails(err))
	}

	logger := srv.log(ctx).With(slog.String("vendorToken", input.VendorToken))

	records, err := srv.addressRepo.FindAddressesByVendorToken(ctx, input.VendorToken)
	if err != nil {
		logger.Error("Failed to find addresses by vendor token", slog.Any("error", err))
		srv.metrics.ObserveSync(metrics.SyncFailed, 0, start)

		return nil, domainerrors.ErrAddressSyncFailed
	}

	if len(records) == 0 {
		return srv.create(ctx, logger, input, start)
	}

	return srv.update(ctx, logger, input, records, start)
}

func (srv *addressSyncService) create(ctx context.Context, logger *slog.Logger, input *usecase.SyncAddressInput, start time.Time) (*usecase.SyncResult, error) {
	if strings.TrimSpace(input.Region) == "" {
		srv.metrics.ObserveSync(metrics.SyncInvalid, 0, start)

		return nil, domainerrors.ErrValidationFailed.WithDetails("region: required to create an address")
	}

	token := input.VendorToken
	record := &entity.AddressRecord{
		VendorToken: &token,
		Region:      input.Region,
		AddressText: input.AddressText,
		Status:      *input.Status,
		IsDefault:   *input.IsDefault,
	}
	if err := srv.addressRepo.CreateAddress(ctx, record); err != nil {
		logger.Error("Failed to create address", slog.String("region", input.Region), slog.Any("error", err))
		srv.metrics.ObserveSync(metrics.SyncFailed, 0, start)

		return nil, domainerrors.ErrAddressSyncFailed
	}

	logger.Info("Address created", slog.Int64("addressID", record.ID), slog.String("region", record.Region))
	srv.metrics.ObserveSync(metrics.SyncCreated, 0, start)

	return &usecase.SyncResult{Created: record}, nil
}

// update applies the payload to every record of the token, one record per
// write. A failed write stops the loop; records already written keep their
// update and their descriptors are still forwarded.
func (srv *addressSyncService) update(
	ctx context.Context,
	logger *slog.Logger,
	input *usecase.SyncAddressInput,
	records []*entity.AddressRecord,
	start time.Time,
) (*usecase.SyncResult, error) {
	addressText := input.AddressText
	status := *input.Status
	isDefault := *input.IsDefault
	update := entity.AddressUpdate{
		AddressText: &addressText,
		Status:      &status,
		IsDefault:   &isDefault,
	}

	result := &usecase.SyncResult{
		Updated: make([]*entity.AddressRecord, 0, len(records)),
		Changes: make([]entity.AddressChange, 0, len(records)),
	}

	var updateErr error
	for _, record := range records {
		change := entity.AddressChange{
			AddressID:      record.ID,
			Region:         record.Region,
			OldAddressText: record.AddressText,
			NewAddressText: input.AddressText,
			Status:         entity.FlagOff,
		}

		if err := srv.addressRepo.UpdateAddressFields(ctx, record.ID, update); err != nil {
			logger.Error("Failed to update address",
				slog.Int64("addressID", record.ID),
				slog.Int("applied", len(result.Updated)),
				slog.Int("total", len(records)),
				slog.Any("error", err),
			)
			updateErr = err

			break
		}

		update.Apply(record)
		result.Updated = append(result.Updated, record)
		result.Changes = append(result.Changes, change)
	}

	for _, change := range result.Changes {
		srv.forward(ctx, logger, change)
	}

	if updateErr != nil {
		srv.metrics.ObserveSync(metrics.SyncFailed, len(result.Updated), start)

		return nil, domainerrors.ErrAddressSyncFailed
	}

	logger.Info("Addresses updated", slog.Int("count", len(result.Updated)))
	srv.metrics.ObserveSync(metrics.SyncUpdated, len(result.Updated), start)

	return result, nil
}

// forward hands a change to the notification step. Its failure never fails the sync.
func (srv *addressSyncService) forward(ctx context.Context, logger *slog.Logger, change entity.AddressChange) {
	if _, err := srv.notifier.EnqueueNotifications(ctx, change); err != nil {
		logger.Warn("Failed to enqueue notifications for address change",
			slog.Int64("addressID", change.AddressID),
			slog.Any("error", err),
		)
	}
}
