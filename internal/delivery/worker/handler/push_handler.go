// Package handler contains the Pub/Sub push handlers of the sync worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"addresssync/config"
	deliverycontext "addresssync/internal/delivery/context"
	"addresssync/internal/domain/constants"
	"addresssync/internal/domain/entity"
	domainerrors "addresssync/internal/domain/errors"
	"addresssync/internal/errors"
	"addresssync/internal/usecase"
	"addresssync/internal/util"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

const (
	eventTypeVendorAddress = "vendor_address"
	eventTypeEmailQueued   = "email_queued"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// VendorAddressEvent is the vendor feed payload carried in the message data.
type VendorAddressEvent struct {
	RequestID   string       `json:"request_id,omitempty"`
	VendorToken string       `json:"vendor_token"`
	Region      string       `json:"region"`
	AddressText string       `json:"address"`
	Status      *entity.Flag `json:"status"`
	IsDefault   *entity.Flag `json:"is_default"`
}

func (e *VendorAddressEvent) toInput() *usecase.SyncAddressInput {
	return &usecase.SyncAddressInput{
		VendorToken: e.VendorToken,
		Region:      e.Region,
		AddressText: e.AddressText,
		Status:      e.Status,
		IsDefault:   e.IsDefault,
	}
}

// PushHandler turns vendor address events into address syncs.
type PushHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	validate       *validator.Validate
	syncUC         usecase.AddressSyncUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	SyncUC usecase.AddressSyncUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only real Google push requests carry an OIDC token.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		validate:       util.NewValidator(),
		syncUC:         params.SyncUC,
	}
}

// HandlePush acknowledges with 200 unless the message should be redelivered.
// Malformed envelopes get 400, persistence faults get 503.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	switch eventType := pushMsg.Message.Attributes["event_type"]; eventType {
	case "", eventTypeVendorAddress:
		return h.handleVendorAddress(ctx, c, &pushMsg, data)
	case eventTypeEmailQueued:
		// Queue wake-ups are meant for the mail sender; in local runs they land here.
		h.logger.Debug("[Worker] Ignoring email queued event", slog.String("message_id", pushMsg.Message.MessageID))

		return c.NoContent(http.StatusOK)
	default:
		h.logger.Warn("[Worker] Unknown event type", slog.String("event_type", eventType))

		return c.NoContent(http.StatusOK)
	}
}

func (h *PushHandler) handleVendorAddress(ctx context.Context, c echo.Context, pushMsg *PubSubMessage, data []byte) error {
	var event VendorAddressEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse vendor address event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Priority: message attributes > event field > X-Request-Id header.
	requestID := deliverycontext.FirstRequestID(
		pushMsg.Message.Attributes["request_id"],
		event.RequestID,
		deliverycontext.GetRequestIDFromContext(ctx),
	)
	ctx, reqLogger := deliverycontext.WithRequestScope(ctx, requestID, h.logger)

	reqLogger.Info("[Worker] Processing vendor address event",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("vendor_token", event.VendorToken),
	)

	input := event.toInput()
	if err := h.validate.Struct(input); err != nil {
		// Redelivery cannot fix a malformed event.
		reqLogger.Warn("[Worker] Dropping invalid vendor address event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.String("details", util.ValidationDetails(err)),
		)

		return c.NoContent(http.StatusOK)
	}

	result, err := h.syncUC.SyncAddress(ctx, input)
	if err != nil {
		retryable := isRetryableError(err)
		reqLogger.Error("[Worker] Failed to sync vendor address",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Vendor address synced",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.Bool("created", result.Created != nil),
		slog.Int("updated", len(result.Updated)),
	)

	return c.NoContent(http.StatusOK)
}

// isRetryableError treats everything except a rejected payload as transient.
func isRetryableError(err error) bool {
	return !errors.Is(err, domainerrors.ErrValidationFailed) &&
		!errors.Is(err, domainerrors.ErrAddressWriteRejected)
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return errors.New("invalid authorization header format")
	}

	// The audience is the URL of this endpoint.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := scheme + "://" + req.Host + req.URL.Path

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
