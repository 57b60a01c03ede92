package handler

import (
	"log/slog"
	"net/http"

	"addresssync/internal/delivery/http/response"
	"addresssync/internal/domain/entity"
	domainerrors "addresssync/internal/domain/errors"
	"addresssync/internal/errors"
	"addresssync/internal/usecase"

	"github.com/labstack/echo/v4"
)

// RetirementRequest is one retired address supplied by an operator.
type RetirementRequest struct {
	AddressID  int64       `json:"address_id" validate:"gt=0"`
	Region     string      `json:"region" validate:"max=64"`
	OldAddress string      `json:"old_address" validate:"notblank"`
	NewAddress string      `json:"new_address" validate:"notblank"`
	Status     entity.Flag `json:"status" validate:"oneof=0 1"`
}

// SweepRequest optionally overrides the configured retirement source.
type SweepRequest struct {
	Retirements []RetirementRequest `json:"retirements" validate:"omitempty,dive"`
}

// changes keeps nil distinct from an empty list so an omitted field falls back to the source.
func (r *SweepRequest) changes() []entity.AddressChange {
	if r.Retirements == nil {
		return nil
	}

	changes := make([]entity.AddressChange, 0, len(r.Retirements))
	for _, retirement := range r.Retirements {
		changes = append(changes, entity.AddressChange{
			AddressID:      retirement.AddressID,
			Region:         retirement.Region,
			OldAddressText: retirement.OldAddress,
			NewAddressText: retirement.NewAddress,
			Status:         retirement.Status,
		})
	}

	return changes
}

// RetirementHandler serves the retirement sweep endpoint.
type RetirementHandler struct {
	uc     usecase.RetirementUsecase
	logger *slog.Logger
}

// NewRetirementHandler is the constructor for RetirementHandler, injected by Fx.
func NewRetirementHandler(uc usecase.RetirementUsecase, logger *slog.Logger) *RetirementHandler {
	return &RetirementHandler{
		uc:     uc,
		logger: logger,
	}
}

// SweepRetiredAddresses runs one sweep and returns its aggregate counts.
func (h *RetirementHandler) SweepRetiredAddresses(c echo.Context) error {
	var req SweepRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("request body is not valid JSON")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	report, err := h.uc.SweepRetiredAddresses(c.Request().Context(), req.changes())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, report.Counts(), "Retirement sweep completed")
}
