package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"wishlist/internal/domain"
)

// WishlistRepository is an in-memory implementation of
// domain.WishlistRepository. It stores wishlist values in a mutex-guarded map
// and is safe for concurrent use. Instances are constructed and injected
// explicitly; there is no package-level store.
type WishlistRepository struct {
	mu        sync.RWMutex
	wishlists map[string]domain.Wishlist
}

// NewWishlistRepository creates an empty in-memory wishlist repository
func NewWishlistRepository() *WishlistRepository {
	return &WishlistRepository{
		wishlists: make(map[string]domain.Wishlist),
	}
}

// FindByID retrieves a wishlist by id, (nil, nil) when absent
func (r *WishlistRepository) FindByID(_ context.Context, id string) (*domain.Wishlist, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if w, ok := r.wishlists[id]; ok {
		return &w, nil
	}
	return nil, nil
}

// FindByUserID retrieves all wishlists owned by a user, oldest first
func (r *WishlistRepository) FindByUserID(_ context.Context, userID string) ([]domain.Wishlist, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []domain.Wishlist{}
	for _, w := range r.wishlists {
		if w.UserID == userID {
			result = append(result, w)
		}
	}
	sortByCreation(result)
	return result, nil
}

// FindByUserIDAndName retrieves a user's wishlist by case-insensitive name
func (r *WishlistRepository) FindByUserIDAndName(_ context.Context, userID, name string) (*domain.Wishlist, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, w := range r.wishlists {
		if w.UserID == userID && strings.EqualFold(w.Name, name) {
			found := w
			return &found, nil
		}
	}
	return nil, nil
}

// FindAll retrieves every wishlist, oldest first
func (r *WishlistRepository) FindAll(_ context.Context) ([]domain.Wishlist, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Wishlist, 0, len(r.wishlists))
	for _, w := range r.wishlists {
		result = append(result, w)
	}
	sortByCreation(result)
	return result, nil
}

// Save upserts a wishlist by id
func (r *WishlistRepository) Save(_ context.Context, wishlist domain.Wishlist) (domain.Wishlist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.wishlists[wishlist.ID] = wishlist
	return wishlist, nil
}

// Delete removes a wishlist; absent ids are a no-op
func (r *WishlistRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.wishlists, id)
	return nil
}

// ClearDefaultForUser drops the default flag on all of the user's wishlists
func (r *WishlistRepository) ClearDefaultForUser(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, w := range r.wishlists {
		if w.UserID == userID && w.IsDefault {
			r.wishlists[id] = w.SetDefault(false)
		}
	}
	return nil
}

// Clear empties the store. Teardown counterpart of Seed.
func (r *WishlistRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.wishlists = make(map[string]domain.Wishlist)
}

func sortByCreation(wishlists []domain.Wishlist) {
	sort.Slice(wishlists, func(i, j int) bool {
		if wishlists[i].CreatedAt.Equal(wishlists[j].CreatedAt) {
			return wishlists[i].ID < wishlists[j].ID
		}
		return wishlists[i].CreatedAt.Before(wishlists[j].CreatedAt)
	})
}
