package handler

import (
	"net/http"

	"majorexplorer/internal/delivery/api/response"
	"majorexplorer/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	HealthUC usecase.HealthUsecase
}

// HealthHandler serves the liveness banner and the database health report.
type HealthHandler struct {
	healthUC usecase.HealthUsecase
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{healthUC: params.HealthUC}
}

// HealthResponse mirrors usecase.HealthReport.
type HealthResponse struct {
	Status              string `json:"status"`
	DatabaseConnected   bool   `json:"database_connected"`
	AccountsTableExists bool   `json:"accounts_table_exists"`
	AccountsCount       int64  `json:"accounts_count"`
	Error               string `json:"error,omitempty"`
}

// Root handles GET /.
func (h *HealthHandler) Root(c echo.Context) error {
	return response.Success(c, http.StatusOK, response.MessageData{Message: "College Major Explorer backend is running!"})
}

// Health handles GET /health. An unhealthy report is served with 500.
func (h *HealthHandler) Health(c echo.Context) error {
	report := h.healthUC.Check(c.Request().Context())

	status := http.StatusOK
	if report.Status != usecase.StatusHealthy {
		status = http.StatusInternalServerError
	}

	return response.Success(c, status, HealthResponse{
		Status:              report.Status,
		DatabaseConnected:   report.DatabaseConnected,
		AccountsTableExists: report.AccountsTableExists,
		AccountsCount:       report.AccountsCount,
		Error:               report.Error,
	})
}
