package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"wishlist/internal/domain"
	"wishlist/internal/service"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userService     *service.UserService
	wishlistService *service.WishlistService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *service.UserService, wishlistService *service.WishlistService) *UserHandler {
	return &UserHandler{userService: userService, wishlistService: wishlistService}
}

// CreateUserRequest represents the create user request body
type CreateUserRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}

// CreateUser handles POST /api/v1/users
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	var fields []ValidationError
	if req.Email == "" {
		fields = append(fields, ValidationError{Field: "email", Message: "Email is required"})
	}
	if req.Name == "" {
		fields = append(fields, ValidationError{Field: "name", Message: "Name is required"})
	}
	if len(fields) > 0 {
		return NewValidationError(c, "Validation failed", fields)
	}

	user, err := h.userService.CreateUser(c.Request().Context(), req.Email, req.Name)
	if err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("Failed to create user")
		return NewInternalError(c, "Failed to create user")
	}

	log.Info().Str("user_id", user.ID).Str("email", user.Email).Msg("User created")
	return c.JSON(http.StatusCreated, toUserResponse(*user))
}

// GetUsers handles GET /api/v1/users
func (h *UserHandler) GetUsers(c echo.Context) error {
	users, err := h.userService.GetUsers(c.Request().Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to get users")
		return NewInternalError(c, "Failed to get users")
	}

	response := make([]UserResponse, len(users))
	for i, user := range users {
		response[i] = toUserResponse(user)
	}
	return c.JSON(http.StatusOK, response)
}

// GetUser handles GET /api/v1/users/:id
func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.userService.GetUserByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return NewNotFoundError(c, "User not found")
		}
		log.Error().Err(err).Str("user_id", c.Param("id")).Msg("Failed to get user")
		return NewInternalError(c, "Failed to get user")
	}
	return c.JSON(http.StatusOK, toUserResponse(*user))
}

// GetUserWishlists handles GET /api/v1/users/:id/wishlists
func (h *UserHandler) GetUserWishlists(c echo.Context) error {
	wishlists, err := h.wishlistService.GetWishlistsByUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		log.Error().Err(err).Str("user_id", c.Param("id")).Msg("Failed to get user wishlists")
		return NewInternalError(c, "Failed to get user wishlists")
	}
	return c.JSON(http.StatusOK, toWishlistResponses(wishlists))
}

func toUserResponse(user domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}
