package memory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"wishlist/internal/domain"
)

// Seed loads demo fixtures: three users, three wishlists and four items. The
// fixture ids are stable so the demo data stays addressable across restarts.
func Seed(ctx context.Context, users *UserRepository, wishlists *WishlistRepository) error {
	for _, u := range []domain.User{
		{ID: "user_1", Email: "john@example.com", Name: "John Doe", CreatedAt: date(2024, 12, 1)},
		{ID: "user_2", Email: "jane@example.com", Name: "Jane Smith", CreatedAt: date(2024, 12, 15)},
		{ID: "user_3", Email: "bob@example.com", Name: "Bob Wilson", CreatedAt: date(2025, 1, 5)},
	} {
		if _, err := users.Save(ctx, u); err != nil {
			return err
		}
	}

	tech := domain.Wishlist{
		ID:          "wl_1",
		UserID:      "user_1",
		Name:        "Tech Wishlist",
		Description: "Gadgets and tech items I want",
		Items: []domain.WishlistItem{
			{
				ID:          "item_1",
				WishlistID:  "wl_1",
				ProductID:   "prod_1",
				ProductName: "Mechanical Keyboard",
				ProductURL:  "https://example.com/keyboard",
				Price:       decimal.NewFromInt(150),
				Priority:    domain.PriorityHigh,
				Notes:       "Need for gaming setup",
				Currency:    "EUR",
				AddedAt:     date(2025, 1, 15),
			},
			{
				ID:          "item_2",
				WishlistID:  "wl_1",
				ProductID:   "prod_2",
				ProductName: "Ergonomic Mouse",
				ProductURL:  "https://example.com/mouse",
				Price:       decimal.NewFromInt(80),
				Priority:    domain.PriorityMedium,
				Notes:       "For better productivity",
				Currency:    "EUR",
				AddedAt:     date(2025, 1, 20),
			},
		},
		IsDefault: true,
		CreatedAt: date(2025, 1, 10),
		UpdatedAt: date(2025, 1, 20),
	}

	fitness := domain.Wishlist{
		ID:          "wl_2",
		UserID:      "user_1",
		Name:        "Fitness Goals",
		Description: "Items for my fitness journey",
		Items: []domain.WishlistItem{
			{
				ID:          "item_3",
				WishlistID:  "wl_2",
				ProductID:   "prod_3",
				ProductName: "Running Shoes",
				ProductURL:  "https://example.com/shoes",
				Price:       decimal.NewFromInt(120),
				Priority:    domain.PriorityHigh,
				Notes:       "For marathon training",
				Currency:    "USD",
				AddedAt:     date(2025, 2, 1),
			},
			{
				ID:          "item_4",
				WishlistID:  "wl_2",
				ProductID:   "prod_4",
				ProductName: "Fitness Tracker",
				ProductURL:  "https://example.com/tracker",
				Price:       decimal.NewFromInt(200),
				Priority:    domain.PriorityMedium,
				Notes:       "Track my progress",
				Currency:    "USD",
				AddedAt:     date(2025, 2, 5),
			},
		},
		CreatedAt: date(2025, 2, 1),
		UpdatedAt: date(2025, 2, 5),
	}

	home := domain.Wishlist{
		ID:          "wl_3",
		UserID:      "user_2",
		Name:        "Home Improvement",
		Description: "Things for the house",
		Items:       []domain.WishlistItem{},
		CreatedAt:   date(2025, 1, 25),
		UpdatedAt:   date(2025, 1, 25),
	}

	for _, w := range []domain.Wishlist{tech, fitness, home} {
		if _, err := wishlists.Save(ctx, w); err != nil {
			return err
		}
	}
	return nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
