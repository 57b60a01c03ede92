// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"addresssync/config"
	deliverycontext "addresssync/internal/delivery/context"
	"addresssync/internal/domain/entity"
	"addresssync/internal/domain/repository"
	"addresssync/internal/domain/service"
	"addresssync/internal/errors"
	"addresssync/internal/infra/metrics"
	"addresssync/internal/usecase"

	"go.uber.org/fx"
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	linkRepo     repository.UserAddressRepository
	queueRepo    repository.EmailQueueRepository
	publisher    service.EventPublisher
	eligibleTier entity.PrivacyTier
	metrics      *metrics.Metrics
	logger       *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	LinkRepo  repository.UserAddressRepository
	QueueRepo repository.EmailQueueRepository
	Publisher service.EventPublisher `optional:"true"`
	Metrics   *metrics.Metrics       `optional:"true"`
	Config    *config.Config
	Logger    *slog.Logger
}

// NewNotificationService creates a new notification service instance.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	eligibleTier := entity.PrivacyTierPremium
	if params.Config != nil && params.Config.Notification != nil && params.Config.Notification.EligibleTier != "" {
		eligibleTier = entity.PrivacyTier(params.Config.Notification.EligibleTier)
	}

	return &notificationService{
		linkRepo:     params.LinkRepo,
		queueRepo:    params.QueueRepo,
		publisher:    params.Publisher,
		eligibleTier: eligibleTier,
		metrics:      params.Metrics,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// EnqueueNotifications queues one entry per eligible user of the changed address.
func (srv *notificationService) EnqueueNotifications(ctx context.Context, change entity.AddressChange) (*usecase.NotificationReport, error) {
	logger := srv.log(ctx).With(
		slog.Int64("addressID", change.AddressID),
		slog.String("oldAddress", change.OldAddressText),
		slog.String("newAddress", change.NewAddressText),
	)

	links, err := srv.linkRepo.FindLinksByAddressAndTier(ctx, change.AddressID, srv.eligibleTier)
	if err != nil {
		logger.Error("Failed to find eligible users", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find eligible user links")
	}

	report := &usecase.NotificationReport{}
	if len(links) == 0 {
		logger.Info("No eligible users linked to address", slog.String("tier", string(srv.eligibleTier)))

		return report, nil
	}

	for _, intent := range buildIntents(change, links) {
		srv.enqueue(ctx, logger, intent, report)
	}

	logger.Info("Notification intents processed",
		slog.Int("queued", len(report.Queued)),
		slog.Int("skipped", report.Skipped),
		slog.Int("failed", report.Failed),
	)

	return report, nil
}

// buildIntents returns one intent per distinct user, in first-seen order.
// A later link for the same user replaces the earlier intent.
func buildIntents(change entity.AddressChange, links []*entity.UserAddressLink) []entity.NotificationIntent {
	intents := make([]entity.NotificationIntent, 0, len(links))
	positions := make(map[int64]int, len(links))

	for _, link := range links {
		intent := entity.NotificationIntent{
			UserID:         link.UserID,
			AddressID:      change.AddressID,
			OldAddressText: change.OldAddressText,
			NewAddressText: change.NewAddressText,
			Status:         change.Status,
		}
		if pos, ok := positions[link.UserID]; ok {
			intents[pos] = intent

			continue
		}
		positions[link.UserID] = len(intents)
		intents = append(intents, intent)
	}

	return intents
}

func (srv *notificationService) enqueue(ctx context.Context, logger *slog.Logger, intent entity.NotificationIntent, report *usecase.NotificationReport) {
	logger = logger.With(slog.Int64("userID", intent.UserID))

	exists, err := srv.queueRepo.ExistsByKey(ctx, intent.DedupKey())
	if err != nil {
		logger.Error("Failed to check email queue", slog.Any("error", err))
		report.Failed++
		srv.metrics.IncNotification(metrics.NotificationFailed)

		return
	}
	if exists {
		logger.Debug("Notification already queued")
		report.Skipped++
		srv.metrics.IncNotification(metrics.NotificationSkipped)

		return
	}

	entry := entity.NewEmailQueueEntry(intent)
	if err := srv.queueRepo.InsertEntry(ctx, entry); err != nil {
		if errors.Is(err, repository.ErrQueueEntryExists) {
			logger.Debug("Notification queued concurrently")
			report.Skipped++
			srv.metrics.IncNotification(metrics.NotificationSkipped)

			return
		}

		logger.Error("Failed to insert email queue entry", slog.Any("error", err))
		report.Failed++
		srv.metrics.IncNotification(metrics.NotificationFailed)

		return
	}

	report.Queued = append(report.Queued, entry)
	srv.metrics.IncNotification(metrics.NotificationQueued)
	srv.publishQueued(ctx, logger, entry)
}

// publishQueued wakes the mail sender. Failures are logged; the row stays queued either way.
func (srv *notificationService) publishQueued(ctx context.Context, logger *slog.Logger, entry *entity.EmailQueueEntry) {
	if srv.publisher == nil {
		return
	}

	event := &service.EmailQueuedEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		QueueEntryID:   entry.ID,
		UserID:         entry.UserID,
		AddressID:      entry.AddressID,
		OldAddressText: entry.OldAddressText,
		NewAddressText: entry.NewAddressText,
	}
	if err := srv.publisher.PublishEmailQueued(ctx, event); err != nil {
		logger.Warn("Failed to publish email queued event",
			slog.Int64("queueEntryID", entry.ID),
			slog.Any("error", err),
		)
	}
}
