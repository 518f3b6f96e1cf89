package api_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Behyna/sms-relay/internal/api"
	v1 "github.com/Behyna/sms-relay/internal/api/v1"
	"github.com/Behyna/sms-relay/internal/config"
	"github.com/Behyna/sms-relay/internal/metrics"
	"github.com/Behyna/sms-relay/internal/mocks"
	"github.com/Behyna/sms-relay/internal/service"
	"github.com/Behyna/sms-relay/pkg/smsprovider"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupRelay(t *testing.T) (*fiber.App, *mocks.Provider) {
	t.Helper()

	logger := zap.NewNop()
	reg := prometheus.NewRegistry()
	m := metrics.NewMetrics(reg)
	cfg := &config.Config{Provider: smsprovider.Config{From: "+15550000000"}}

	provider := &mocks.Provider{}
	svc := service.NewRelayService(provider, cfg, m, logger)

	app := api.NewApp(m, logger)
	api.SetupRoutes(app, v1.NewHandler(logger, svc))
	api.SetupMetricsRoute(app, reg)

	return app, provider
}

func send(t *testing.T, app *fiber.App, body string) (int, string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/send-sms", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "http://localhost:3000")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(raw)
}

func TestRelay_SendSMSScenarios(t *testing.T) {
	t.Run("provider accepts", func(t *testing.T) {
		app, provider := setupRelay(t)

		provider.On("Send", mock.Anything, "+15550000000", "+15551234567", "hello").
			Return(smsprovider.Response{MessageID: "SM123", Provider: "twilio", Status: "queued"}, nil).Once()

		status, body := send(t, app, `{ "to": "+15551234567", "message": "hello" }`)

		assert.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, `{"success": true, "sid": "SM123"}`, body)
		provider.AssertExpectations(t)
	})

	t.Run("provider fails", func(t *testing.T) {
		app, provider := setupRelay(t)

		provider.On("Send", mock.Anything, "+15550000000", "+15551234567", "hello").
			Return(smsprovider.Response{}, errors.New("Invalid number")).Once()

		status, body := send(t, app, `{ "to": "+15551234567", "message": "hello" }`)

		assert.Equal(t, http.StatusInternalServerError, status)
		assert.JSONEq(t, `{"success": false, "error": "Invalid number"}`, body)
		provider.AssertNumberOfCalls(t, "Send", 1)
	})

	t.Run("provider error type keeps its message", func(t *testing.T) {
		app, provider := setupRelay(t)

		provider.On("Send", mock.Anything, "+15550000000", "", "").
			Return(smsprovider.Response{}, &smsprovider.Error{Status: 400, Code: 21604, Message: "A 'To' phone number is required."}).Once()

		status, body := send(t, app, `{}`)

		assert.Equal(t, http.StatusInternalServerError, status)
		assert.JSONEq(t, `{"success": false, "error": "A 'To' phone number is required."}`, body)
	})
}

func TestRelay_CORSPreflight(t *testing.T) {
	app, provider := setupRelay(t)

	req := httptest.NewRequest(http.MethodOptions, "/send-sms", nil)
	req.Header.Set("Origin", "https://example.org")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), http.MethodPost)
	provider.AssertNotCalled(t, "Send")
}

func TestRelay_AuxiliaryRoutes(t *testing.T) {
	app, _ := setupRelay(t)

	t.Run("health", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, string(raw), `"service":"smsrelay"`)
	})

	t.Run("metrics", func(t *testing.T) {
		_, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil))
		require.NoError(t, err)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, string(raw), "smsrelay_http_requests_total")
	})

	t.Run("unknown route uses failure body", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/nope", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Contains(t, string(raw), `"success":false`)
	})
}
