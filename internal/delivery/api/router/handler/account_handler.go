package handler

import (
	"log/slog"
	"net/http"
	"time"

	"recruit/internal/delivery/api/response"
	deliverycontext "recruit/internal/delivery/context"
	"recruit/internal/domain/entity"
	"recruit/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AccountHandler serves signup, login and session endpoints.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// SignUpRequest is the registration body. School applies to students,
// Company and CompanyKey to recruiters.
type SignUpRequest struct {
	Role       string `json:"role" validate:"required,oneof=student recruiter"`
	Email      string `json:"email" validate:"required"`
	Password   string `json:"password" validate:"required"`
	Name       string `json:"name" validate:"required"`
	School     string `json:"school"`
	Company    string `json:"company"`
	CompanyKey string `json:"company_key"`
}

// LoginRequest is the login body.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse carries a fresh session token and the account it belongs to.
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *entity.User `json:"user"`
}

// SignUp registers a student or recruiter and opens a session.
func (h *AccountHandler) SignUp(c echo.Context) error {
	var req SignUpRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	out, err := h.accountUC.SignUp(c.Request().Context(), &usecase.SignUpInput{
		Role:       entity.Role(req.Role),
		Email:      req.Email,
		Password:   req.Password,
		Name:       req.Name,
		School:     req.School,
		Company:    req.Company,
		CompanyKey: req.CompanyKey,
		UserAgent:  c.Request().UserAgent(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newAuthResponse(out))
}

// Login opens a session for valid credentials.
func (h *AccountHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	out, err := h.accountUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:     req.Email,
		Password:  req.Password,
		UserAgent: c.Request().UserAgent(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAuthResponse(out))
}

// Logout revokes the session the request was authenticated with.
func (h *AccountHandler) Logout(c echo.Context) error {
	token, ok := deliverycontext.GetSessionToken(c)
	if !ok {
		return response.Unauthorized(c, "NOT_AUTHENTICATED", "Authentication required")
	}

	if err := h.accountUC.Logout(c.Request().Context(), token); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

// Me returns the authenticated account.
func (h *AccountHandler) Me(c echo.Context) error {
	account, ok := deliverycontext.GetAccount(c)
	if !ok {
		return response.Unauthorized(c, "NOT_AUTHENTICATED", "Authentication required")
	}

	return response.Success(c, http.StatusOK, account.Identity())
}

func newAuthResponse(out *usecase.AuthOutput) AuthResponse {
	return AuthResponse{
		Token:     out.Token,
		ExpiresAt: out.ExpiresAt,
		User:      out.Account.Identity(),
	}
}
