package handler

import (
	"log/slog"
	"net/http"
	"time"

	"majorexplorer/internal/delivery/api/middleware"
	"majorexplorer/internal/delivery/api/response"
	deliverycontext "majorexplorer/internal/delivery/context"
	"majorexplorer/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ComparisonHandlerParams holds dependencies for ComparisonHandler, injected by Fx.
type ComparisonHandlerParams struct {
	fx.In

	ComparisonUC usecase.ComparisonUsecase
	Logger       *slog.Logger
}

// ComparisonHandler serves the saved comparison set of an account.
type ComparisonHandler struct {
	comparisonUC usecase.ComparisonUsecase
	logger       *slog.Logger
}

// NewComparisonHandler is the constructor for ComparisonHandler
func NewComparisonHandler(params ComparisonHandlerParams) *ComparisonHandler {
	return &ComparisonHandler{
		comparisonUC: params.ComparisonUC,
		logger:       params.Logger,
	}
}

// SaveComparisonRequest is the body of POST /save-comparison.
type SaveComparisonRequest struct {
	UserID   int64   `json:"user_id"`
	MajorIDs []int64 `json:"major_ids" validate:"max=100"`
}

// SaveComparisonResponse reports how many majors were newly saved.
type SaveComparisonResponse struct {
	Message string `json:"message"`
	Saved   int    `json:"saved"`
	Skipped int    `json:"skipped"`
}

// SavedComparisonResponse is one saved major with its aggregated statistics.
type SavedComparisonResponse struct {
	MajorID   int64     `json:"major_id"`
	MajorName string    `json:"major_name"`
	AvgSalary *float64  `json:"avg_salary"`
	JobCount  int64     `json:"job_count"`
	SavedAt   time.Time `json:"saved_at"`
}

// SavedComparisonsResponse lists an account's saved majors, most recent first.
type SavedComparisonsResponse struct {
	UserID           int64                     `json:"user_id"`
	SavedComparisons []SavedComparisonResponse `json:"saved_comparisons"`
	Count            int                       `json:"count"`
}

// SaveComparison handles POST /save-comparison.
func (h *ComparisonHandler) SaveComparison(c echo.Context) error {
	var req SaveComparisonRequest
	if ok, err := bindAndValidate(c, &req, "Invalid comparison input"); !ok {
		return err
	}

	if req.UserID != 0 {
		if err := middleware.EnsureAccount(c, req.UserID); err != nil {
			return response.HandleAppError(c, err)
		}
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Debug("Save comparison request",
		slog.Int64("accountID", req.UserID), slog.Any("majorIDs", req.MajorIDs))

	output, err := h.comparisonUC.Add(c.Request().Context(), &usecase.AddComparisonsInput{
		AccountID: req.UserID,
		MajorIDs:  req.MajorIDs,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, SaveComparisonResponse{
		Message: output.Message,
		Saved:   output.Saved,
		Skipped: output.Skipped,
	})
}

// ListSavedComparisons handles GET /saved-comparisons/:user_id.
func (h *ComparisonHandler) ListSavedComparisons(c echo.Context) error {
	accountID, err := pathID(c, "user_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.comparisonUC.List(c.Request().Context(), accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	comparisons := make([]SavedComparisonResponse, 0, len(output.Comparisons))
	for _, view := range output.Comparisons {
		comparisons = append(comparisons, SavedComparisonResponse{
			MajorID:   view.MajorID,
			MajorName: view.MajorName,
			AvgSalary: view.AverageSalary,
			JobCount:  view.JobStatCount,
			SavedAt:   view.SavedAt,
		})
	}

	return response.Success(c, http.StatusOK, SavedComparisonsResponse{
		UserID:           output.AccountID,
		SavedComparisons: comparisons,
		Count:            output.Count,
	})
}

// RemoveSavedComparison handles DELETE /saved-comparisons/:user_id/:major_id.
func (h *ComparisonHandler) RemoveSavedComparison(c echo.Context) error {
	accountID, err := pathID(c, "user_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	majorID, err := pathID(c, "major_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.comparisonUC.Remove(c.Request().Context(), accountID, majorID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.MessageData{Message: "Saved comparison removed successfully"})
}
