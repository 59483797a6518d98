package handler

import (
	"log/slog"
	"net/http"
	"time"

	"majorexplorer/internal/delivery/api/response"
	"majorexplorer/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves signup and login.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// SignupRequest is the body of POST /signup. Presence is checked by the use case.
type SignupRequest struct {
	Username        string `json:"username" validate:"max=50"`
	Email           string `json:"email" validate:"max=100"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// SignupResponse is returned with 201 Created.
type SignupResponse struct {
	Message  string `json:"message"`
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	UsernameOrEmail string `json:"username_or_email"`
	Password        string `json:"password"`
}

// LoginResponse carries the access token when token issuing is enabled.
type LoginResponse struct {
	Message     string     `json:"message"`
	UserID      int64      `json:"user_id"`
	Username    string     `json:"username"`
	AccessToken string     `json:"access_token,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

// Signup handles account creation.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if ok, err := bindAndValidate(c, &req, "Invalid signup input"); !ok {
		return err
	}

	output, err := h.authUC.Signup(c.Request().Context(), &usecase.SignupInput{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, SignupResponse{
		Message:  "Account created successfully! Welcome to College Major Explorer.",
		UserID:   output.AccountID,
		Username: output.Username,
	})
}

// Login handles credential checks by username or email.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if ok, err := bindAndValidate(c, &req, "Invalid login input"); !ok {
		return err
	}

	output, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Identifier: req.UsernameOrEmail,
		Password:   req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := LoginResponse{
		Message:     "Login successful",
		UserID:      output.AccountID,
		Username:    output.Username,
		AccessToken: output.AccessToken,
	}
	if output.AccessToken != "" {
		resp.ExpiresAt = &output.ExpiresAt
	}

	return response.Success(c, http.StatusOK, resp)
}
