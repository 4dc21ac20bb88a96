package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/one-health/user-service/internal/api/metrics"
	"github.com/one-health/user-service/internal/core/domain"
	"github.com/one-health/user-service/internal/core/ports"
)

const sessionCookie = "session_token"

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates a user by email or phone number against a claimed role.
//
// @Summary      Log in a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /users/user-login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.authService.Authenticate(c.Request().Context(), ports.AuthenticateInput{
		Identifier:    req.EmailOrPhoneNo,
		Password:      req.Password,
		ClaimedRoleID: req.UserRole,
	})
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginResult(err)).Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    result.Token,
		Path:     "/",
		HttpOnly: true,
	})

	return c.JSON(http.StatusOK, loginResponse{
		Message: "Login successful",
		Status:  http.StatusOK,
		UserID:  result.UserID,
		Token:   result.Token,
	})
}

// Logout clears the session cookie. It validates nothing and always succeeds.
//
// @Summary      Log out a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      logoutRequest  true  "Logout details"
// @Success      200   {object}  messageResponse
// @Router       /users/user-logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	var req logoutRequest
	_ = c.Bind(&req) // malformed body still logs out

	h.authService.Logout(c.Request().Context(), req.UserID)

	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
	})

	return c.JSON(http.StatusOK, messageResponse{Message: "Logout successful", Status: http.StatusOK})
}

func loginResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "bad_credentials"
	case errors.Is(err, domain.ErrRoleMismatch):
		return "role_mismatch"
	default:
		return "error"
	}
}
