package domain

import (
	"context"
	"time"
)

// User is read-only from the wishlist core's perspective; only existence
// checks and seeding touch it.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*User, error)
	FindAll(ctx context.Context) ([]User, error)
	Save(ctx context.Context, user User) (User, error)
}
