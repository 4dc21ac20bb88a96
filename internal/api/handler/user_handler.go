package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/one-health/user-service/internal/api/metrics"
	"github.com/one-health/user-service/internal/core/domain"
	"github.com/one-health/user-service/internal/core/ports"
)

// UserHandler handles HTTP requests for account management.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Hello is a trivial smoke-test endpoint.
//
// @Summary      Hello
// @Tags         users
// @Produce      json
// @Success      200  {string}  string
// @Router       /users/hello [get]
func (h *UserHandler) Hello(c echo.Context) error {
	return c.JSON(http.StatusOK, "hello")
}

// Create registers a new user account.
//
// @Summary      Create a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User details"
// @Success      200   {object}  messageResponse
// @Failure      409   {object}  errorResponse
// @Router       /users/create-user [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	_, err := h.userService.Register(c.Request().Context(), ports.CreateUserInput{
		Email:       req.EmailID,
		Password:    req.Password,
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		RoleID:      req.UserRole,
	})
	if err != nil {
		return err
	}
	metrics.UsersCreatedTotal.WithLabelValues("admin").Inc()

	return c.JSON(http.StatusOK, messageResponse{Message: "User created successfully", Status: http.StatusOK})
}

// CreateOpen registers a new account without authentication, when enabled.
//
// @Summary      Open self-registration
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      openRegisterRequest  true  "User details"
// @Success      200   {object}  userResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /users/open [post]
func (h *UserHandler) CreateOpen(c echo.Context) error {
	var req openRegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := h.userService.RegisterOpen(c.Request().Context(), ports.CreateUserInput{
		Email:       req.Email,
		Password:    req.Password,
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return err
	}
	metrics.UsersCreatedTotal.WithLabelValues("open").Inc()

	return c.JSON(http.StatusOK, toUserResponse(user, ""))
}

// Me returns the authenticated user's profile with the role name resolved.
//
// @Summary      Get own profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorResponse
// @Router       /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	profile, err := h.userService.Profile(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userResponse{
		UserID:      profile.UserID,
		Email:       profile.Email,
		PhoneNumber: profile.PhoneNumber,
		FullName:    profile.FullName,
		IsActive:    profile.IsActive,
		Role:        profile.Role,
		CreatedAt:   profile.CreatedAt,
		UpdatedAt:   profile.UpdatedAt,
	})
}

// UpdateMe applies a partial update to the authenticated user's own record.
//
// @Summary      Update own profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateMeRequest  true  "Fields to update"
// @Success      200   {object}  userResponse
// @Failure      401   {object}  errorResponse
// @Router       /users/me [put]
func (h *UserHandler) UpdateMe(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req updateMeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := h.userService.Update(c.Request().Context(), ports.UpdateUserInput{
		UserID:      userID,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		FullName:    req.FullName,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toUserResponse(user, ""))
}

// Update applies a partial update to an arbitrary user by id.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateUserRequest  true  "User id and fields to update"
// @Success      200   {object}  messageResponse
// @Failure      404   {object}  errorResponse
// @Router       /users/update-user [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	_, err := h.userService.Update(c.Request().Context(), ports.UpdateUserInput{
		UserID:      req.UserID,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		FullName:    req.FullName,
		Password:    req.Password,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Updated user details successfully", Status: http.StatusOK})
}

// GetByID returns a specific user by id.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  path      string  true  "User id"
// @Success      200      {object}  userResponse
// @Failure      404      {object}  errorResponse
// @Router       /users/{user_id} [get]
func (h *UserHandler) GetByID(c echo.Context) error {
	user, err := h.userService.GetByID(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user, ""))
}

// List returns all users within a skip/limit window. Access is restricted to
// ADMIN and SUPER_ADMIN by the route middleware.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        skip   query     int  false  "Offset"   default(0)
// @Param        limit  query     int  false  "Max rows"  default(100)
// @Success      200    {array}   userResponse
// @Failure      403    {object}  errorResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	skip, _ := strconv.Atoi(c.QueryParam("skip"))
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit <= 0 {
		limit = 100
	}

	users, err := h.userService.List(c.Request().Context(), skip, limit)
	if err != nil {
		return err
	}

	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u, ""))
	}
	return c.JSON(http.StatusOK, out)
}

func toUserResponse(u *domain.User, role string) userResponse {
	return userResponse{
		UserID:      u.ID,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		FullName:    u.FullName,
		IsActive:    u.IsActive,
		Role:        role,
		CreatedAt:   u.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   u.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
