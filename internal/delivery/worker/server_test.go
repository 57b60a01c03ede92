package worker

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"addresssync/config"
	"addresssync/internal/delivery/worker/handler"
	mockUsecase "addresssync/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
)

func TestWorkerEcho_Health(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	pushHandler := handler.NewPushHandler(handler.PushHandlerParams{
		Config: cfg,
		Logger: logger,
		SyncUC: mockUsecase.NewMockAddressSyncUsecase(t),
	})

	e := NewEcho(cfg, logger, pushHandler)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
