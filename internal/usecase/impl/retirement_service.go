package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "addresssync/internal/delivery/context"
	"addresssync/internal/domain/entity"
	"addresssync/internal/domain/repository"
	"addresssync/internal/domain/service"
	"addresssync/internal/errors"
	"addresssync/internal/infra/metrics"
	"addresssync/internal/usecase"
	"addresssync/internal/util"

	"go.uber.org/fx"
)

// retirementService implements the RetirementUsecase interface.
type retirementService struct {
	txManager repository.TransactionManager
	source    service.RetirementSource
	notifier  usecase.NotificationUsecase
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// RetirementServiceParams holds dependencies for RetirementService, injected by Fx.
type RetirementServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Source    service.RetirementSource
	Notifier  usecase.NotificationUsecase
	Metrics   *metrics.Metrics `optional:"true"`
	Logger    *slog.Logger
}

// NewRetirementService creates a new retirement service instance.
func NewRetirementService(params RetirementServiceParams) usecase.RetirementUsecase {
	return &retirementService{
		txManager: params.TxManager,
		source:    params.Source,
		notifier:  params.Notifier,
		metrics:   params.Metrics,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *retirementService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SweepRetiredAddresses processes every candidate and keeps going past failures.
func (srv *retirementService) SweepRetiredAddresses(ctx context.Context, candidates []entity.AddressChange) (*usecase.SweepReport, error) {
	start := time.Now()
	defer srv.metrics.ObserveSweep(start)

	if candidates == nil {
		fetched, err := srv.source.FetchRetiredAddresses(ctx)
		if err != nil {
			srv.log(ctx).Error("Failed to fetch retired addresses", slog.Any("error", err))

			return nil, errors.Wrap(err, "failed to fetch retired addresses")
		}
		candidates = fetched
	}

	report := &usecase.SweepReport{Outcomes: make([]usecase.RetirementOutcome, 0, len(candidates))}
	for _, change := range candidates {
		report.Outcomes = append(report.Outcomes, srv.DetectAndRepair(ctx, change))
	}

	counts := report.Counts()
	srv.log(ctx).Info("Retirement sweep completed",
		slog.Int("processed", counts.Processed),
		slog.Int("repaired", counts.Repaired),
		slog.Int("gaps", counts.Gaps),
		slog.Int("failed", counts.Failed),
		slog.String("elapsed", util.FormatDuration(time.Since(start))),
	)

	return report, nil
}

// DetectAndRepair repairs one descriptor and always forwards it to notification.
func (srv *retirementService) DetectAndRepair(ctx context.Context, change entity.AddressChange) usecase.RetirementOutcome {
	logger := srv.log(ctx).With(
		slog.Int64("addressID", change.AddressID),
		slog.String("oldAddress", change.OldAddressText),
		slog.String("newAddress", change.NewAddressText),
	)

	outcome := usecase.RetirementOutcome{Change: change}
	outcome.Result, outcome.Err = srv.repair(ctx, change)

	switch {
	case outcome.Err != nil:
		logger.Error("Retirement repair failed", slog.Any("error", outcome.Err))
	case outcome.Result.IsGap():
		logger.Warn("Retirement repair skipped", slog.String("result", string(outcome.Result)))
	default:
		logger.Info("Retirement repaired")
	}
	srv.metrics.IncRetirement(string(outcome.Result))

	report, err := srv.notifier.EnqueueNotifications(ctx, change)
	if err != nil {
		logger.Error("Failed to enqueue retirement notifications", slog.Any("error", err))
		outcome.NotificationErr = err
	}
	outcome.Notification = report

	return outcome
}

// repair runs the lookup and the overwrite in one transaction.
func (srv *retirementService) repair(ctx context.Context, change entity.AddressChange) (entity.RetirementResult, error) {
	result := entity.RetirementFailed

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		matched, err := addressRepo.FindFirstAddressByText(ctx, entity.NormalizeAddressText(change.NewAddressText))
		if errors.Is(err, repository.ErrAddressNotFound) {
			result = entity.RetirementNoMatchingAddress

			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to find address matching new text")
		}
		if !matched.HasVendorToken() {
			result = entity.RetirementMissingVendorToken

			return nil
		}

		target, err := addressRepo.FindAddressByID(ctx, change.AddressID)
		if errors.Is(err, repository.ErrAddressNotFound) {
			result = entity.RetirementTargetNotFound

			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to find retired address")
		}

		if err := addressRepo.UpdateAddressFields(ctx, target.ID, repointUpdate(change, matched)); err != nil {
			return errors.Wrap(err, "failed to repoint retired address")
		}
		result = entity.RetirementRepaired

		return nil
	})
	if err != nil {
		return entity.RetirementFailed, err
	}

	return result, nil
}

// repointUpdate copies the identity of the matched record onto the retired one.
func repointUpdate(change entity.AddressChange, matched *entity.AddressRecord) entity.AddressUpdate {
	addressText := change.NewAddressText
	status := matched.Status
	isDefault := matched.IsDefault

	return entity.AddressUpdate{
		AddressText:   &addressText,
		VendorToken:   matched.VendorToken,
		VendorID:      matched.VendorID,
		ClearVendorID: matched.VendorID == nil,
		Status:        &status,
		IsDefault:     &isDefault,
	}
}
