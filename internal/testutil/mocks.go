package testutil

import (
	"context"
	"sort"
	"strings"

	"wishlist/internal/domain"
)

// MockWishlistRepository is a mock implementation of domain.WishlistRepository
type MockWishlistRepository struct {
	Wishlists map[string]domain.Wishlist
	SaveFn    func(wishlist domain.Wishlist) (domain.Wishlist, error)
	SaveCalls []domain.Wishlist
}

// NewMockWishlistRepository creates a new MockWishlistRepository
func NewMockWishlistRepository() *MockWishlistRepository {
	return &MockWishlistRepository{
		Wishlists: make(map[string]domain.Wishlist),
	}
}

// AddWishlist adds a wishlist to the mock repository (helper for tests)
func (m *MockWishlistRepository) AddWishlist(wishlist domain.Wishlist) {
	m.Wishlists[wishlist.ID] = wishlist
}

// FindByID retrieves a wishlist by id
func (m *MockWishlistRepository) FindByID(_ context.Context, id string) (*domain.Wishlist, error) {
	if w, ok := m.Wishlists[id]; ok {
		return &w, nil
	}
	return nil, nil
}

// FindByUserID retrieves all wishlists owned by a user
func (m *MockWishlistRepository) FindByUserID(_ context.Context, userID string) ([]domain.Wishlist, error) {
	result := []domain.Wishlist{}
	for _, w := range m.Wishlists {
		if w.UserID == userID {
			result = append(result, w)
		}
	}
	sortWishlists(result)
	return result, nil
}

// FindByUserIDAndName retrieves a user's wishlist by case-insensitive name
func (m *MockWishlistRepository) FindByUserIDAndName(_ context.Context, userID, name string) (*domain.Wishlist, error) {
	for _, w := range m.Wishlists {
		if w.UserID == userID && strings.EqualFold(w.Name, name) {
			found := w
			return &found, nil
		}
	}
	return nil, nil
}

// FindAll retrieves every wishlist
func (m *MockWishlistRepository) FindAll(_ context.Context) ([]domain.Wishlist, error) {
	result := make([]domain.Wishlist, 0, len(m.Wishlists))
	for _, w := range m.Wishlists {
		result = append(result, w)
	}
	sortWishlists(result)
	return result, nil
}

// Save upserts a wishlist by id
func (m *MockWishlistRepository) Save(_ context.Context, wishlist domain.Wishlist) (domain.Wishlist, error) {
	m.SaveCalls = append(m.SaveCalls, wishlist)
	if m.SaveFn != nil {
		return m.SaveFn(wishlist)
	}
	m.Wishlists[wishlist.ID] = wishlist
	return wishlist, nil
}

// Delete removes a wishlist, silently if absent
func (m *MockWishlistRepository) Delete(_ context.Context, id string) error {
	delete(m.Wishlists, id)
	return nil
}

// ClearDefaultForUser drops the default flag on all of the user's wishlists
func (m *MockWishlistRepository) ClearDefaultForUser(_ context.Context, userID string) error {
	for id, w := range m.Wishlists {
		if w.UserID == userID && w.IsDefault {
			m.Wishlists[id] = w.SetDefault(false)
		}
	}
	return nil
}

func sortWishlists(wishlists []domain.Wishlist) {
	sort.Slice(wishlists, func(i, j int) bool {
		if wishlists[i].CreatedAt.Equal(wishlists[j].CreatedAt) {
			return wishlists[i].ID < wishlists[j].ID
		}
		return wishlists[i].CreatedAt.Before(wishlists[j].CreatedAt)
	})
}

// MockUserRepository is a mock implementation of domain.UserRepository
type MockUserRepository struct {
	Users map[string]domain.User
}

// NewMockUserRepository creates a new MockUserRepository
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users: make(map[string]domain.User),
	}
}

// AddUser adds a user to the mock repository (helper for tests)
func (m *MockUserRepository) AddUser(user domain.User) {
	m.Users[user.ID] = user
}

// FindByID retrieves a user by id
func (m *MockUserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := m.Users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

// FindAll retrieves every user
func (m *MockUserRepository) FindAll(_ context.Context) ([]domain.User, error) {
	result := make([]domain.User, 0, len(m.Users))
	for _, u := range m.Users {
		result = append(result, u)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// Save upserts a user by id
func (m *MockUserRepository) Save(_ context.Context, user domain.User) (domain.User, error) {
	m.Users[user.ID] = user
	return user, nil
}
