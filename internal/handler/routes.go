package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, wishlistHandler *WishlistHandler, userHandler *UserHandler) {
	// API version 1
	api := e.Group("/api/v1")

	// Wishlist routes
	wishlists := api.Group("/wishlists")
	wishlists.GET("", wishlistHandler.GetWishlists)
	wishlists.POST("", wishlistHandler.CreateWishlist)
	// Registered before /:id so "move-items" is not captured as an id.
	wishlists.POST("/move-items", wishlistHandler.MoveItems)
	wishlists.GET("/:id", wishlistHandler.GetWishlist)
	wishlists.PUT("/:id", wishlistHandler.UpdateWishlist)
	wishlists.DELETE("/:id", wishlistHandler.DeleteWishlist)
	wishlists.PATCH("/:id/default", wishlistHandler.SetDefaultWishlist)
	wishlists.POST("/:id/items", wishlistHandler.AddItem)
	wishlists.DELETE("/:id/items/:itemId", wishlistHandler.RemoveItem)

	// User routes
	users := api.Group("/users")
	users.GET("", userHandler.GetUsers)
	users.POST("", userHandler.CreateUser)
	users.GET("/:id", userHandler.GetUser)
	users.GET("/:id/wishlists", userHandler.GetUserWishlists)

	// OpenAPI document
	api.GET("/openapi.json", ServeOpenAPISpec)
}
