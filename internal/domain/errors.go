package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrWishlistNotFound   = errors.New("wishlist not found")
	ErrWishlistNameExists = errors.New("wishlist with this name already exists")
	ErrWishlistNameEmpty  = errors.New("wishlist name is required")
	ErrWishlistIDEmpty    = errors.New("wishlist id cannot be empty")
	ErrInvalidPriority    = errors.New("priority must be LOW, MEDIUM or HIGH")
	ErrNegativePrice      = errors.New("price cannot be negative")
)

// WishlistItemsNotFoundError reports every item id a move request named that
// is not present in the source wishlist.
type WishlistItemsNotFoundError struct {
	WishlistID string
	ItemIDs    []string
}

func (e *WishlistItemsNotFoundError) Error() string {
	return fmt.Sprintf("wishlist items not found in wishlist %s: %s", e.WishlistID, strings.Join(e.ItemIDs, ", "))
}
