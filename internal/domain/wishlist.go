package domain

import (
	"context"
	"strings"
	"time"
)

// Wishlist is an immutable value. Mutating methods return a fresh copy with
// UpdatedAt refreshed; the receiver is never modified.
type Wishlist struct {
	ID          string         `json:"id"`
	UserID      string         `json:"userId"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Items       []WishlistItem `json:"items"`
	IsDefault   bool           `json:"isDefault"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// NewWishlist validates identity fields at construction time.
func NewWishlist(id, userID, name, description string, isDefault bool, now time.Time) (Wishlist, error) {
	if strings.TrimSpace(id) == "" {
		return Wishlist{}, ErrWishlistIDEmpty
	}
	if strings.TrimSpace(name) == "" {
		return Wishlist{}, ErrWishlistNameEmpty
	}
	return Wishlist{
		ID:          id,
		UserID:      userID,
		Name:        name,
		Description: description,
		Items:       []WishlistItem{},
		IsDefault:   isDefault,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// AddItem returns a copy with item appended.
func (w Wishlist) AddItem(item WishlistItem) Wishlist {
	items := make([]WishlistItem, 0, len(w.Items)+1)
	items = append(items, w.Items...)
	items = append(items, item)
	w.Items = items
	w.UpdatedAt = time.Now()
	return w
}

// RemoveItem returns a copy without the given item. Removing an absent id is
// a no-op that still refreshes UpdatedAt.
func (w Wishlist) RemoveItem(itemID string) Wishlist {
	items := make([]WishlistItem, 0, len(w.Items))
	for _, item := range w.Items {
		if item.ID != itemID {
			items = append(items, item)
		}
	}
	w.Items = items
	w.UpdatedAt = time.Now()
	return w
}

// Update returns a copy with name and description replaced. The item slice is
// shared with the receiver since it is not touched.
func (w Wishlist) Update(name, description string) Wishlist {
	w.Name = name
	w.Description = description
	w.UpdatedAt = time.Now()
	return w
}

// SetDefault returns a copy with the default flag set.
func (w Wishlist) SetDefault(isDefault bool) Wishlist {
	w.IsDefault = isDefault
	w.UpdatedAt = time.Now()
	return w
}

// FindItem returns the item with the given id, if present.
func (w Wishlist) FindItem(itemID string) (WishlistItem, bool) {
	for _, item := range w.Items {
		if item.ID == itemID {
			return item, true
		}
	}
	return WishlistItem{}, false
}

// WishlistRepository defines the storage contract the use-case layer depends
// on. Absence is reported as (nil, nil), not an error. Implementations must be
// safe for concurrent use.
type WishlistRepository interface {
	FindByID(ctx context.Context, id string) (*Wishlist, error)
	FindByUserID(ctx context.Context, userID string) ([]Wishlist, error)
	// FindByUserIDAndName matches the name case-insensitively.
	FindByUserIDAndName(ctx context.Context, userID, name string) (*Wishlist, error)
	FindAll(ctx context.Context) ([]Wishlist, error)
	// Save upserts by id.
	Save(ctx context.Context, wishlist Wishlist) (Wishlist, error)
	// Delete is a no-op when the id is absent.
	Delete(ctx context.Context, id string) error
	// ClearDefaultForUser drops the default flag on all of the user's wishlists.
	ClearDefaultForUser(ctx context.Context, userID string) error
}
