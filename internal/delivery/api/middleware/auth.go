package middleware

import (
	"log/slog"
	"strconv"
	"strings"

	deliverycontext "majorexplorer/internal/delivery/context"
	domainerrors "majorexplorer/internal/domain/errors"
	"majorexplorer/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	// TokenService is nil when access tokens are disabled; every check then passes.
	TokenService service.TokenService
	Logger       *slog.Logger
}

// AuthMiddleware authenticates bearer tokens and scopes requests to the token's account.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: params.TokenService, logger: params.Logger}
}

// Enabled reports whether requests are authenticated at all.
func (m *AuthMiddleware) Enabled() bool {
	return m.tokenSvc != nil
}

// Authenticate validates the access token and stores its account ID on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	if !m.Enabled() {
		return next
	}

	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WithDetails("Authorization header is missing")
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenString == "" {
			return domainerrors.ErrUnauthorized.WithDetails("Invalid token format, must be Bearer token")
		}

		accountID, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected access token", slog.Any("error", err))

			return domainerrors.ErrUnauthorized.WithDetails("Invalid or expired token")
		}

		deliverycontext.SetAccountID(c, accountID)

		return next(c)
	}
}

// RequireAccountParam rejects requests whose path parameter names another account than the token.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAccountParam(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			accountID, err := strconv.ParseInt(c.Param(param), 10, 64)
			if err != nil {
				return domainerrors.ErrValidationFailed.WithDetails(param + " must be an integer")
			}
			if err := EnsureAccount(c, accountID); err != nil {
				return err
			}

			return next(c)
		}
	}
}

// EnsureAccount checks that an authenticated request acts on its own account.
// Unauthenticated requests, which only reach handlers when tokens are disabled, pass.
func EnsureAccount(c echo.Context, accountID int64) error {
	subject, ok := deliverycontext.GetAccountID(c)
	if !ok || subject == accountID {
		return nil
	}

	return domainerrors.ErrForbidden
}
