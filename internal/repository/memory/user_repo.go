package memory

import (
	"context"
	"sort"
	"sync"

	"wishlist/internal/domain"
)

// UserRepository is an in-memory implementation of domain.UserRepository,
// safe for concurrent use.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

// NewUserRepository creates an empty in-memory user repository
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[string]domain.User),
	}
}

// FindByID retrieves a user by id, (nil, nil) when absent
func (r *UserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if u, ok := r.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

// FindAll retrieves every user, oldest first
func (r *UserRepository) FindAll(_ context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		result = append(result, u)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

// Save upserts a user by id
func (r *UserRepository) Save(_ context.Context, user domain.User) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[user.ID] = user
	return user, nil
}

// Clear empties the store
func (r *UserRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = make(map[string]domain.User)
}
