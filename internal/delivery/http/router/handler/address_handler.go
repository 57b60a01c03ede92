package handler

import (
	"log/slog"
	"net/http"
	"time"

	"addresssync/internal/delivery/http/response"
	"addresssync/internal/domain/entity"
	domainerrors "addresssync/internal/domain/errors"
	"addresssync/internal/errors"
	"addresssync/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AddressResponse is the API view of an address record.
type AddressResponse struct {
	ID          int64       `json:"id"`
	VendorToken *string     `json:"vendor_token"`
	VendorID    *string     `json:"vendor_id,omitempty"`
	Region      string      `json:"region"`
	AddressText string      `json:"address"`
	Status      entity.Flag `json:"status"`
	IsDefault   entity.Flag `json:"is_default"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// SyncAddressResponse carries either the created record or the updated ones.
type SyncAddressResponse struct {
	Created *AddressResponse  `json:"created,omitempty"`
	Updated []AddressResponse `json:"updated,omitempty"`
}

func toAddressResponse(record *entity.AddressRecord) AddressResponse {
	return AddressResponse{
		ID:          record.ID,
		VendorToken: record.VendorToken,
		VendorID:    record.VendorID,
		Region:      record.Region,
		AddressText: record.AddressText,
		Status:      record.Status,
		IsDefault:   record.IsDefault,
		UpdatedAt:   record.UpdatedAt,
	}
}

// AddressHandler serves the vendor address endpoints.
type AddressHandler struct {
	uc     usecase.AddressSyncUsecase
	logger *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler, injected by Fx.
func NewAddressHandler(uc usecase.AddressSyncUsecase, logger *slog.Logger) *AddressHandler {
	return &AddressHandler{
		uc:     uc,
		logger: logger,
	}
}

// SyncAddress reconciles one vendor payload. 201 when a record was created, 200 when records were updated.
func (h *AddressHandler) SyncAddress(c echo.Context) error {
	var input usecase.SyncAddressInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("request body is not valid JSON")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	result, err := h.uc.SyncAddress(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	if result.Created != nil {
		created := toAddressResponse(result.Created)

		return response.Success(c, http.StatusCreated, SyncAddressResponse{Created: &created}, "Address created")
	}

	updated := make([]AddressResponse, 0, len(result.Updated))
	for _, record := range result.Updated {
		updated = append(updated, toAddressResponse(record))
	}

	return response.Success(c, http.StatusOK, SyncAddressResponse{Updated: updated}, "Addresses updated")
}
