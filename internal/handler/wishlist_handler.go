package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"wishlist/internal/domain"
	"wishlist/internal/service"
)

// WishlistHandler handles wishlist-related HTTP requests
type WishlistHandler struct {
	wishlistService *service.WishlistService
}

// NewWishlistHandler creates a new WishlistHandler
func NewWishlistHandler(wishlistService *service.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlistService: wishlistService}
}

// CreateWishlistRequest represents the create wishlist request body
type CreateWishlistRequest struct {
	UserID      string `json:"userId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsDefault   bool   `json:"isDefault"`
}

// UpdateWishlistRequest represents the update wishlist request body
type UpdateWishlistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsDefault   bool   `json:"isDefault"`
}

// AddItemRequest represents the add item request body
type AddItemRequest struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	ProductURL  string          `json:"productUrl"`
	Price       decimal.Decimal `json:"price"`
	Priority    string          `json:"priority"`
	Notes       string          `json:"notes"`
	Currency    string          `json:"currency"`
	Thumbnail   string          `json:"thumbnail"`
}

// MoveItemsRequest represents the move items request body
type MoveItemsRequest struct {
	SourceListID      string   `json:"sourceListId"`
	DestinationListID string   `json:"destinationListId"`
	ItemIDs           []string `json:"itemIds"`
}

// WishlistResponse represents a wishlist in API responses
type WishlistResponse struct {
	ID          string                 `json:"id"`
	UserID      string                 `json:"userId"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Items       []WishlistItemResponse `json:"items"`
	IsDefault   bool                   `json:"isDefault"`
	CreatedAt   string                 `json:"createdAt"`
	UpdatedAt   string                 `json:"updatedAt"`
}

// WishlistItemResponse represents a wishlist item in API responses
type WishlistItemResponse struct {
	ID          string `json:"id"`
	WishlistID  string `json:"wishlistId"`
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	ProductURL  string `json:"productUrl"`
	Price       string `json:"price"`
	Priority    string `json:"priority"`
	Notes       string `json:"notes"`
	Currency    string `json:"currency"`
	Thumbnail   string `json:"thumbnail"`
	AddedAt     string `json:"addedAt"`
}

// MoveItemsResponse carries both wishlists touched by a move
type MoveItemsResponse struct {
	Source      WishlistResponse `json:"source"`
	Destination WishlistResponse `json:"destination"`
}

// CreateWishlist handles POST /api/v1/wishlists
func (h *WishlistHandler) CreateWishlist(c echo.Context) error {
	var req CreateWishlistRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	wishlist, err := h.wishlistService.CreateWishlist(c.Request().Context(), service.CreateWishlistInput{
		UserID:      req.UserID,
		Name:        req.Name,
		Description: req.Description,
		IsDefault:   req.IsDefault,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return NewNotFoundError(c, "User not found")
		}
		if errors.Is(err, domain.ErrWishlistNameExists) {
			return NewValidationError(c, "A wishlist with this name already exists", nil)
		}
		if errors.Is(err, domain.ErrWishlistNameEmpty) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "name", Message: "Name is required"},
			})
		}
		log.Error().Err(err).Str("user_id", req.UserID).Msg("Failed to create wishlist")
		return NewInternalError(c, "Failed to create wishlist")
	}

	log.Info().Str("user_id", req.UserID).Str("wishlist_id", wishlist.ID).Str("name", wishlist.Name).Msg("Wishlist created")
	return c.JSON(http.StatusCreated, toWishlistResponse(*wishlist))
}

// GetWishlists handles GET /api/v1/wishlists
func (h *WishlistHandler) GetWishlists(c echo.Context) error {
	wishlists, err := h.wishlistService.GetAllWishlists(c.Request().Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to get wishlists")
		return NewInternalError(c, "Failed to get wishlists")
	}
	return c.JSON(http.StatusOK, toWishlistResponses(wishlists))
}

// GetWishlist handles GET /api/v1/wishlists/:id
func (h *WishlistHandler) GetWishlist(c echo.Context) error {
	wishlist, err := h.wishlistService.GetWishlistByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		log.Error().Err(err).Str("wishlist_id", c.Param("id")).Msg("Failed to get wishlist")
		return NewInternalError(c, "Failed to get wishlist")
	}
	if wishlist == nil {
		return NewNotFoundError(c, "Wishlist not found")
	}
	return c.JSON(http.StatusOK, toWishlistResponse(*wishlist))
}

// UpdateWishlist handles PUT /api/v1/wishlists/:id
func (h *WishlistHandler) UpdateWishlist(c echo.Context) error {
	var req UpdateWishlistRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	wishlist, err := h.wishlistService.UpdateWishlist(c.Request().Context(), c.Param("id"), service.UpdateWishlistInput{
		Name:        req.Name,
		Description: req.Description,
		IsDefault:   req.IsDefault,
	})
	if err != nil {
		if errors.Is(err, domain.ErrWishlistNotFound) {
			return NewNotFoundError(c, "Wishlist not found")
		}
		if errors.Is(err, domain.ErrWishlistNameExists) {
			return NewValidationError(c, "A wishlist with this name already exists", nil)
		}
		if errors.Is(err, domain.ErrWishlistNameEmpty) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "name", Message: "Name is required"},
			})
		}
		log.Error().Err(err).Str("wishlist_id", c.Param("id")).Msg("Failed to update wishlist")
		return NewInternalError(c, "Failed to update wishlist")
	}

	log.Info().Str("wishlist_id", wishlist.ID).Str("name", wishlist.Name).Msg("Wishlist updated")
	return c.JSON(http.StatusOK, toWishlistResponse(*wishlist))
}

// SetDefaultWishlist handles PATCH /api/v1/wishlists/:id/default
func (h *WishlistHandler) SetDefaultWishlist(c echo.Context) error {
	wishlist, err := h.wishlistService.SetDefaultWishlist(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrWishlistNotFound) {
			return NewNotFoundError(c, "Wishlist not found")
		}
		log.Error().Err(err).Str("wishlist_id", c.Param("id")).Msg("Failed to set default wishlist")
		return NewInternalError(c, "Failed to set default wishlist")
	}

	log.Info().Str("wishlist_id", wishlist.ID).Str("user_id", wishlist.UserID).Msg("Default wishlist set")
	return c.JSON(http.StatusOK, toWishlistResponse(*wishlist))
}

// DeleteWishlist handles DELETE /api/v1/wishlists/:id
func (h *WishlistHandler) DeleteWishlist(c echo.Context) error {
	if err := h.wishlistService.DeleteWishlist(c.Request().Context(), c.Param("id")); err != nil {
		log.Error().Err(err).Str("wishlist_id", c.Param("id")).Msg("Failed to delete wishlist")
		return NewInternalError(c, "Failed to delete wishlist")
	}

	log.Info().Str("wishlist_id", c.Param("id")).Msg("Wishlist deleted")
	return c.NoContent(http.StatusNoContent)
}

// AddItem handles POST /api/v1/wishlists/:id/items
func (h *WishlistHandler) AddItem(c echo.Context) error {
	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	wishlist, err := h.wishlistService.AddItem(c.Request().Context(), c.Param("id"), service.AddItemInput{
		ProductID:   req.ProductID,
		ProductName: req.ProductName,
		ProductURL:  req.ProductURL,
		Price:       req.Price,
		Priority:    req.Priority,
		Notes:       req.Notes,
		Currency:    req.Currency,
		Thumbnail:   req.Thumbnail,
	})
	if err != nil {
		if errors.Is(err, domain.ErrWishlistNotFound) {
			return NewNotFoundError(c, "Wishlist not found")
		}
		if errors.Is(err, domain.ErrInvalidPriority) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "priority", Message: "Priority must be LOW, MEDIUM or HIGH"},
			})
		}
		if errors.Is(err, domain.ErrNegativePrice) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "price", Message: "Price cannot be negative"},
			})
		}
		log.Error().Err(err).Str("wishlist_id", c.Param("id")).Msg("Failed to add item")
		return NewInternalError(c, "Failed to add item")
	}

	log.Info().Str("wishlist_id", wishlist.ID).Str("product_name", req.ProductName).Msg("Item added")
	return c.JSON(http.StatusOK, toWishlistResponse(*wishlist))
}

// RemoveItem handles DELETE /api/v1/wishlists/:id/items/:itemId
func (h *WishlistHandler) RemoveItem(c echo.Context) error {
	wishlist, err := h.wishlistService.RemoveItem(c.Request().Context(), c.Param("id"), c.Param("itemId"))
	if err != nil {
		if errors.Is(err, domain.ErrWishlistNotFound) {
			return NewNotFoundError(c, "Wishlist not found")
		}
		log.Error().Err(err).Str("wishlist_id", c.Param("id")).Msg("Failed to remove item")
		return NewInternalError(c, "Failed to remove item")
	}

	log.Info().Str("wishlist_id", wishlist.ID).Str("item_id", c.Param("itemId")).Msg("Item removed")
	return c.JSON(http.StatusOK, toWishlistResponse(*wishlist))
}

// MoveItems handles POST /api/v1/wishlists/move-items
func (h *WishlistHandler) MoveItems(c echo.Context) error {
	var req MoveItemsRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	result, err := h.wishlistService.MoveItems(c.Request().Context(), req.SourceListID, req.DestinationListID, req.ItemIDs)
	if err != nil {
		if errors.Is(err, domain.ErrWishlistNotFound) {
			return NewNotFoundError(c, "Wishlist not found")
		}
		var itemsNotFound *domain.WishlistItemsNotFoundError
		if errors.As(err, &itemsNotFound) {
			return NewNotFoundError(c, itemsNotFound.Error())
		}
		log.Error().Err(err).Str("source_id", req.SourceListID).Str("destination_id", req.DestinationListID).Msg("Failed to move items")
		return NewInternalError(c, "Failed to move items")
	}

	log.Info().
		Str("source_id", result.Source.ID).
		Str("destination_id", result.Destination.ID).
		Int("item_count", len(req.ItemIDs)).
		Msg("Items moved")

	return c.JSON(http.StatusOK, MoveItemsResponse{
		Source:      toWishlistResponse(result.Source),
		Destination: toWishlistResponse(result.Destination),
	})
}

func toWishlistResponse(wishlist domain.Wishlist) WishlistResponse {
	items := make([]WishlistItemResponse, len(wishlist.Items))
	for i, item := range wishlist.Items {
		items[i] = WishlistItemResponse{
			ID:          item.ID,
			WishlistID:  item.WishlistID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			ProductURL:  item.ProductURL,
			Price:       item.Price.String(),
			Priority:    string(item.Priority),
			Notes:       item.Notes,
			Currency:    item.Currency,
			Thumbnail:   item.Thumbnail,
			AddedAt:     item.AddedAt.Format(time.RFC3339),
		}
	}
	return WishlistResponse{
		ID:          wishlist.ID,
		UserID:      wishlist.UserID,
		Name:        wishlist.Name,
		Description: wishlist.Description,
		Items:       items,
		IsDefault:   wishlist.IsDefault,
		CreatedAt:   wishlist.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   wishlist.UpdatedAt.Format(time.RFC3339),
	}
}

func toWishlistResponses(wishlists []domain.Wishlist) []WishlistResponse {
	responses := make([]WishlistResponse, len(wishlists))
	for i, w := range wishlists {
		responses[i] = toWishlistResponse(w)
	}
	return responses
}
