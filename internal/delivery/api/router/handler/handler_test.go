package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"majorexplorer/internal/delivery/api/validator"
	domainerrors "majorexplorer/internal/domain/errors"
	"majorexplorer/internal/domain/entity"
	mockusecase "majorexplorer/internal/mocks/usecase"
	"majorexplorer/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestContext(method, target, body string, params map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	names := make([]string, 0, len(params))
	values := make([]string, 0, len(params))
	for name, value := range params {
		names = append(names, name)
		values = append(values, value)
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)

	return c, rec
}

func dataOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var env struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return string(env.Data)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAuthHandler_Signup(t *testing.T) {
	authUC := mockusecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: discardLogger()})

	authUC.EXPECT().
		Signup(mock.Anything, &usecase.SignupInput{
			Username:        "alice",
			Email:           "alice@example.com",
			Password:        "Password123!",
			ConfirmPassword: "Password123!",
		}).
		Return(&usecase.SignupOutput{AccountID: 7, Username: "alice"}, nil)

	c, rec := newTestContext(http.MethodPost, "/signup",
		`{"username":"alice","email":"alice@example.com","password":"Password123!","confirm_password":"Password123!"}`, nil)

	require.NoError(t, h.Signup(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user_id":7`)
	assert.Contains(t, rec.Body.String(), "Welcome to College Major Explorer.")
}

func TestAuthHandler_SignupRejectsLongUsername(t *testing.T) {
	authUC := mockusecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: discardLogger()})

	body := `{"username":"` + strings.Repeat("a", 51) + `","email":"a@example.com","password":"x","confirm_password":"x"}`
	c, rec := newTestContext(http.MethodPost, "/signup", body, nil)

	require.NoError(t, h.Signup(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "username")
	authUC.AssertNotCalled(t, "Signup", mock.Anything, mock.Anything)
}

func TestAuthHandler_LoginWithoutToken(t *testing.T) {
	authUC := mockusecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: discardLogger()})

	authUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Identifier: "alice", Password: "pw"}).
		Return(&usecase.LoginOutput{AccountID: 7, Username: "alice"}, nil)

	c, rec := newTestContext(http.MethodPost, "/login", `{"username_or_email":"alice","password":"pw"}`, nil)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "access_token")
	assert.NotContains(t, rec.Body.String(), "expires_at")
}

func TestAuthHandler_LoginPassesInternalErrorsOn(t *testing.T) {
	authUC := mockusecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: discardLogger()})

	dbErr := errors.New("connection reset")
	authUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, dbErr)

	c, _ := newTestContext(http.MethodPost, "/login", `{"username_or_email":"alice","password":"pw"}`, nil)

	err := h.Login(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
}

func TestProfileHandler_UpdateProfile(t *testing.T) {
	profileUC := mockusecase.NewMockProfileUsecase(t)
	h := NewProfileHandler(ProfileHandlerParams{ProfileUC: profileUC})

	profileUC.EXPECT().
		UpdateProfile(mock.Anything, int64(3), mock.MatchedBy(func(input *usecase.UpdateProfileInput) bool {
			return input.Username == nil && input.Password == nil &&
				input.Email != nil && *input.Email == "new@example.com"
		})).
		Return(nil)

	c, rec := newTestContext(http.MethodPut, "/user/3", `{"email":"new@example.com"}`, map[string]string{"user_id": "3"})

	require.NoError(t, h.UpdateProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Profile updated successfully","user_id":3}`, dataOf(t, rec))
}

func TestProfileHandler_GetProfileNotFound(t *testing.T) {
	profileUC := mockusecase.NewMockProfileUsecase(t)
	h := NewProfileHandler(ProfileHandlerParams{ProfileUC: profileUC})

	profileUC.EXPECT().GetProfile(mock.Anything, int64(9)).Return(nil, domainerrors.ErrAccountNotFound)

	c, rec := newTestContext(http.MethodGet, "/user/9", "", map[string]string{"user_id": "9"})

	require.NoError(t, h.GetProfile(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "User not found")
}

func TestProfileHandler_InvalidPathID(t *testing.T) {
	profileUC := mockusecase.NewMockProfileUsecase(t)
	h := NewProfileHandler(ProfileHandlerParams{ProfileUC: profileUC})

	c, rec := newTestContext(http.MethodGet, "/user/abc", "", map[string]string{"user_id": "abc"})

	require.NoError(t, h.GetProfile(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestComparisonHandler_ListSavedComparisons(t *testing.T) {
	comparisonUC := mockusecase.NewMockComparisonUsecase(t)
	h := NewComparisonHandler(ComparisonHandlerParams{ComparisonUC: comparisonUC, Logger: discardLogger()})

	salary := 52000.0
	savedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	comparisonUC.EXPECT().List(mock.Anything, int64(4)).Return(&usecase.ListComparisonsOutput{
		AccountID: 4,
		Comparisons: []*entity.SavedComparisonView{
			{MajorID: 7, MajorName: "Philosophy", SavedAt: savedAt},
			{MajorID: 5, MajorName: "History", AverageSalary: &salary, JobStatCount: 1, SavedAt: savedAt},
		},
		Count: 2,
	}, nil)

	c, rec := newTestContext(http.MethodGet, "/saved-comparisons/4", "", map[string]string{"user_id": "4"})

	require.NoError(t, h.ListSavedComparisons(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"user_id": 4,
		"saved_comparisons": [
			{"major_id": 7, "major_name": "Philosophy", "avg_salary": null, "job_count": 0, "saved_at": "2026-01-02T03:04:05Z"},
			{"major_id": 5, "major_name": "History", "avg_salary": 52000, "job_count": 1, "saved_at": "2026-01-02T03:04:05Z"}
		],
		"count": 2
	}`, dataOf(t, rec))
}

func TestComparisonHandler_RemoveNotFound(t *testing.T) {
	comparisonUC := mockusecase.NewMockComparisonUsecase(t)
	h := NewComparisonHandler(ComparisonHandlerParams{ComparisonUC: comparisonUC, Logger: discardLogger()})

	comparisonUC.EXPECT().Remove(mock.Anything, int64(4), int64(2)).Return(domainerrors.ErrComparisonNotFound)

	c, rec := newTestContext(http.MethodDelete, "/saved-comparisons/4/2", "",
		map[string]string{"user_id": "4", "major_id": "2"})

	require.NoError(t, h.RemoveSavedComparison(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "COMPARISON_NOT_FOUND")
}

func TestCatalogHandler_ListMajorsFilters(t *testing.T) {
	catalogUC := mockusecase.NewMockCatalogUsecase(t)
	h := NewCatalogHandler(CatalogHandlerParams{CatalogUC: catalogUC})

	catalogUC.EXPECT().
		ListMajors(mock.Anything, mock.MatchedBy(func(filter entity.MajorFilter) bool {
			return filter.InterestAreaID != nil && *filter.InterestAreaID == 3 &&
				filter.MinSalary == 90000 && filter.MinGrowth == 0
		})).
		Return([]*entity.MajorSummary{}, nil)

	c, rec := newTestContext(http.MethodGet, "/majors?area_id=3&min_salary=90000", "", nil)

	require.NoError(t, h.ListMajors(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, dataOf(t, rec))
}

func TestHealthHandler_Unhealthy(t *testing.T) {
	healthUC := mockusecase.NewMockHealthUsecase(t)
	h := NewHealthHandler(HealthHandlerParams{HealthUC: healthUC})

	healthUC.EXPECT().Check(mock.Anything).Return(&usecase.HealthReport{
		Status: usecase.StatusUnhealthy,
		Error:  "dial tcp: connection refused",
	})

	c, rec := newTestContext(http.MethodGet, "/health", "", nil)

	require.NoError(t, h.Health(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{
		"status": "unhealthy",
		"database_connected": false,
		"accounts_table_exists": false,
		"accounts_count": 0,
		"error": "dial tcp: connection refused"
	}`, dataOf(t, rec))
}
