package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"majorexplorer/config"
	deliverycontext "majorexplorer/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_ReusesClientID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	mw := NewRequestIDMiddleware(logger)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "client-id")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := mw.Process(func(c echo.Context) error {
		assert.Equal(t, "client-id", deliverycontext.GetRequestID(c))
		assert.Equal(t, "client-id", deliverycontext.GetRequestIDFromContext(c.Request().Context()))
		deliverycontext.GetLogger(c.Request().Context()).Info("inside")

		return c.NoContent(http.StatusNoContent)
	})(c)
	require.NoError(t, err)

	assert.Equal(t, "client-id", rec.Header().Get(deliverycontext.HeaderXRequestID))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "client-id", line["request_id"])
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	mw := NewRequestIDMiddleware(slog.New(slog.DiscardHandler))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, mw.Process(func(c echo.Context) error { return nil })(c))
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestLoggerMiddleware(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		status  int
		wantLog bool
		level   string
	}{
		{name: "disabled", debug: false, status: http.StatusOK},
		{name: "success", debug: true, status: http.StatusOK, wantLog: true, level: "INFO"},
		{name: "client error", debug: true, status: http.StatusNotFound, wantLog: true, level: "WARN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug
			mw := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), cfg)

			e := echo.New()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/majors?min_salary=1", nil), httptest.NewRecorder())
			deliverycontext.SetAccountID(c, 7)

			err := mw.Handle(func(c echo.Context) error { return c.NoContent(tt.status) })(c)
			require.NoError(t, err)

			if !tt.wantLog {
				assert.Zero(t, buf.Len())

				return
			}
			var line map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
			assert.Equal(t, tt.level, line["level"])
			assert.Equal(t, "/majors", line["uri"])
			assert.Equal(t, "min_salary=1", line["query"])
			assert.InDelta(t, 7, line["account_id"], 0)
		})
	}
}
