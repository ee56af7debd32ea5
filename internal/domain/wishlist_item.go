package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is applied when an item is added without an explicit
// currency code.
const DefaultCurrency = "EUR"

// Priority ranks how much an item is wanted.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// ParsePriority converts a wire value into a Priority.
func ParsePriority(value string) (Priority, error) {
	switch Priority(value) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(value), nil
	default:
		return "", ErrInvalidPriority
	}
}

// WishlistItem is owned by exactly one wishlist. WishlistID is a back
// reference to the containing list and is rewritten when the item moves.
type WishlistItem struct {
	ID          string          `json:"id"`
	WishlistID  string          `json:"wishlistId"`
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	ProductURL  string          `json:"productUrl"`
	Price       decimal.Decimal `json:"price"`
	Priority    Priority        `json:"priority"`
	Notes       string          `json:"notes"`
	Currency    string          `json:"currency"`
	Thumbnail   string          `json:"thumbnail"`
	AddedAt     time.Time       `json:"addedAt"`
}

// WithWishlistID returns a copy pointing at a different containing list. All
// other fields, including AddedAt, are preserved.
func (item WishlistItem) WithWishlistID(wishlistID string) WishlistItem {
	item.WishlistID = wishlistID
	return item
}
