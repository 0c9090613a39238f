package middleware

import (
	"log/slog"
	"strings"

	"recruit/internal/delivery/api/response"
	deliverycontext "recruit/internal/delivery/context"
	"recruit/internal/domain/entity"
	"recruit/internal/errors"
	"recruit/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddleware verifies session tokens on every protected request.
type AuthMiddleware struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{accountUC: params.AccountUC, logger: params.Logger}
}

// Authenticate resolves the bearer token to an account through the session
// store and puts it on the context. The token alone is never trusted.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header must carry a Bearer token")
		}

		account, err := m.accountUC.Authenticate(c.Request().Context(), token)
		if err != nil {
			return response.HandleAppError(c, err)
		}
		deliverycontext.SetAccount(c, account, token)

		return next(c)
	}
}

// RequireRole rejects accounts of any other role. It must be used after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			account, _ := deliverycontext.GetAccount(c)
			err := entity.RequireRole(account, role)
			switch {
			case errors.Is(err, entity.ErrAccountMissing):
				return response.Unauthorized(c, "NOT_AUTHENTICATED", "Authentication required")
			case err != nil:
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
					Warn("Role check failed", slog.String("required", role.String()), slog.String("actual", account.Role().String()))

				return response.Forbidden(c, "FORBIDDEN", "Permission denied: requires '"+role.String()+"' role")
			}

			return next(c)
		}
	}
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))

	return token, token != ""
}

// GetStudent returns the authenticated student. Only valid behind RequireRole(RoleStudent).
func GetStudent(c echo.Context) (*entity.StudentAccount, bool) {
	account, ok := deliverycontext.GetAccount(c)
	if !ok {
		return nil, false
	}

	return entity.AsStudent(account)
}

// GetRecruiter returns the authenticated recruiter. Only valid behind RequireRole(RoleRecruiter).
func GetRecruiter(c echo.Context) (*entity.RecruiterAccount, bool) {
	account, ok := deliverycontext.GetAccount(c)
	if !ok {
		return nil, false
	}

	return entity.AsRecruiter(account)
}
