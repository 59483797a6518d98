package handler

import (
	"net/http"

	"majorexplorer/internal/delivery/api/response"
	"majorexplorer/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
}

// ProfileHandler serves reads and partial updates of an account.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{profileUC: params.ProfileUC}
}

// ProfileResponse never includes the password hash.
type ProfileResponse struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UpdateProfileRequest is a partial update; omitted or empty fields are left unchanged.
type UpdateProfileRequest struct {
	Username *string `json:"username" validate:"omitempty,max=50"`
	Email    *string `json:"email" validate:"omitempty,max=100"`
	Password *string `json:"password"`
}

// UpdateProfileResponse confirms the update.
type UpdateProfileResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}

// GetProfile handles GET /user/:user_id.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	accountID, err := pathID(c, "user_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	account, err := h.profileUC.GetProfile(c.Request().Context(), accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ProfileResponse{
		UserID:   account.ID,
		Username: account.Username,
		Email:    account.Email,
	})
}

// UpdateProfile handles PUT /user/:user_id.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	accountID, err := pathID(c, "user_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateProfileRequest
	if ok, err := bindAndValidate(c, &req, "Invalid profile input"); !ok {
		return err
	}

	err = h.profileUC.UpdateProfile(c.Request().Context(), accountID, &usecase.UpdateProfileInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, UpdateProfileResponse{
		Message: "Profile updated successfully",
		UserID:  accountID,
	})
}
