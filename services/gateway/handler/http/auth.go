package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/docuhub/gateway/internal/pkg/constants"
	"github.com/docuhub/gateway/internal/pkg/middleware"
	"github.com/docuhub/gateway/internal/pkg/models"
	"github.com/docuhub/gateway/internal/utils"
	"github.com/docuhub/gateway/services/gateway"
)

// AuthHandler handles login, signup, logout and session introspection
type AuthHandler struct {
	gatewayUC gateway.GatewayUC
	cookieCfg models.CookieConfig
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(gatewayUC gateway.GatewayUC, cookieCfg models.CookieConfig) *AuthHandler {
	return &AuthHandler{
		gatewayUC: gatewayUC,
		cookieCfg: cookieCfg,
	}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var creds models.Credentials
	if err := c.Bind(&creds); err != nil {
		return utils.BadRequestResponse(c, "invalid request payload")
	}

	session, err := h.gatewayUC.Login(c.Request().Context(), &creds)
	if err != nil {
		return h.loginErrorResponse(c, err)
	}

	c.SetCookie(h.sessionCookie(session.Token, time.Unix(session.ExpiresAt, 0)))

	return c.JSON(http.StatusOK, session)
}

// Signup handles POST /auth/signup
func (h *AuthHandler) Signup(c echo.Context) error {
	var req models.SignupRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request payload")
	}

	if err := h.gatewayUC.Signup(c.Request().Context(), &req); err != nil {
		return h.loginErrorResponse(c, err)
	}

	return c.JSON(http.StatusCreated, utils.MessageResponse{Message: "account created"})
}

// Logout handles POST /auth/logout. The session token is self-contained,
// so logout means dropping the cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	principal := middleware.PrincipalFromContext(c)
	h.gatewayUC.Logout(c.Request().Context(), principal)

	expired := h.sessionCookie("", time.Unix(0, 0))
	expired.MaxAge = -1
	c.SetCookie(expired)

	return utils.MessageOKResponse(c, "logged out")
}

// Me handles GET /auth/me. Claims come from the validated session token;
// no upstream call is made.
func (h *AuthHandler) Me(c echo.Context) error {
	principal := middleware.PrincipalFromContext(c)
	if principal == nil {
		return utils.UnauthorizedResponse(c, "authentication required")
	}
	return c.JSON(http.StatusOK, principal)
}

// loginErrorResponse maps the exchange failure taxonomy onto responses.
// Upstream detail messages are considered safe to relay; unreachable and
// unexpected failures surface as generic messages only.
func (h *AuthHandler) loginErrorResponse(c echo.Context, err error) error {
	var validationErr *models.ValidationError
	var upstreamErr *models.UpstreamError

	switch {
	case errors.As(err, &validationErr):
		return utils.BadRequestResponse(c, validationErr.Message)
	case errors.As(err, &upstreamErr):
		return utils.ErrorResponseHandler(c, upstreamErr.StatusCode, upstreamErr.Message)
	case errors.Is(err, models.ErrUpstreamUnreachable):
		return utils.BadGatewayResponse(c, "authentication service unavailable")
	case errors.Is(err, models.ErrInvalidUpstreamResponse):
		return utils.UnauthorizedResponse(c, "login failed")
	default:
		return utils.InternalServerErrorResponse(c, "internal server error")
	}
}

func (h *AuthHandler) sessionCookie(value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.cookieCfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
