package handler

import (
	"net/http"

	"majorexplorer/internal/delivery/api/response"
	"majorexplorer/internal/domain/entity"
	domainerrors "majorexplorer/internal/domain/errors"
	"majorexplorer/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
}

// CatalogHandler serves the read-only catalog.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{catalogUC: params.CatalogUC}
}

// MajorSummaryResponse is one aggregated major. JobGrowthRate is in percent.
type MajorSummaryResponse struct {
	MajorID        int64    `json:"major_id"`
	MajorName      string   `json:"major_name"`
	InterestAreaID *int64   `json:"interest_area_id"`
	AverageSalary  *float64 `json:"average_salary"`
	JobGrowthRate  *float64 `json:"job_growth_rate"`
	Grads          *float64 `json:"grads"`
}

// InterestAreaResponse is one interest area.
type InterestAreaResponse struct {
	InterestAreaID int64  `json:"interest_area_id"`
	Name           string `json:"name"`
}

// MajorJobResponse is one statistics row with its data source.
type MajorJobResponse struct {
	StatID        int64    `json:"stat_id"`
	AvgSalary     *float64 `json:"avg_salary"`
	JobGrowthRate *float64 `json:"job_growth_rate"`
	GradCount     *int64   `json:"grad_count"`
	Year          *int     `json:"year"`
	SourceName    *string  `json:"source_name"`
	SourceURL     *string  `json:"source_url"`
}

// MajorJobsResponse lists the statistics of one major.
type MajorJobsResponse struct {
	MajorID   int64              `json:"major_id"`
	MajorName string             `json:"major_name"`
	Jobs      []MajorJobResponse `json:"jobs"`
	Count     int                `json:"count"`
}

// ListMajors handles GET /majors?area_id=&min_salary=&min_growth=.
func (h *CatalogHandler) ListMajors(c echo.Context) error {
	var filter entity.MajorFilter
	var areaID int64
	err := echo.QueryParamsBinder(c).
		Int64("area_id", &areaID).
		Float64("min_salary", &filter.MinSalary).
		Float64("min_growth", &filter.MinGrowth).
		BindError()
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("area_id, min_salary and min_growth must be numbers"))
	}
	if c.QueryParam("area_id") != "" {
		filter.InterestAreaID = &areaID
	}

	summaries, err := h.catalogUC.ListMajors(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	majors := make([]MajorSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		majors = append(majors, MajorSummaryResponse{
			MajorID:        s.MajorID,
			MajorName:      s.MajorName,
			InterestAreaID: s.InterestAreaID,
			AverageSalary:  s.AverageSalary,
			JobGrowthRate:  s.JobGrowthRate,
			Grads:          s.Grads,
		})
	}

	return response.Success(c, http.StatusOK, majors)
}

// ListInterestAreas handles GET /interest-areas.
func (h *CatalogHandler) ListInterestAreas(c echo.Context) error {
	areas, err := h.catalogUC.ListInterestAreas(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toInterestAreaResponses(areas))
}

// SearchInterestAreas handles GET /search-interest-areas?q=.
func (h *CatalogHandler) SearchInterestAreas(c echo.Context) error {
	areas, err := h.catalogUC.SearchInterestAreas(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toInterestAreaResponses(areas))
}

// GetMajorJobs handles GET /major-jobs/:major_id.
func (h *CatalogHandler) GetMajorJobs(c echo.Context) error {
	majorID, err := pathID(c, "major_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.catalogUC.GetMajorJobs(c.Request().Context(), majorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	jobs := make([]MajorJobResponse, 0, len(output.Jobs))
	for _, job := range output.Jobs {
		jobs = append(jobs, MajorJobResponse{
			StatID:        job.StatID,
			AvgSalary:     job.AvgSalary,
			JobGrowthRate: job.JobGrowthRate,
			GradCount:     job.GradCount,
			Year:          job.Year,
			SourceName:    job.SourceName,
			SourceURL:     job.SourceURL,
		})
	}

	return response.Success(c, http.StatusOK, MajorJobsResponse{
		MajorID:   output.MajorID,
		MajorName: output.MajorName,
		Jobs:      jobs,
		Count:     output.Count,
	})
}

func toInterestAreaResponses(areas []*entity.InterestArea) []InterestAreaResponse {
	out := make([]InterestAreaResponse, 0, len(areas))
	for _, area := range areas {
		out = append(out, InterestAreaResponse{InterestAreaID: area.ID, Name: area.Name})
	}

	return out
}
