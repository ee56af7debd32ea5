package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"wishlist/internal/domain"
)

// WishlistService orchestrates wishlist use cases and enforces the
// cross-aggregate invariants: unique names per user, a single default
// wishlist per user, and all-or-nothing item moves.
type WishlistService struct {
	wishlistRepo domain.WishlistRepository
	userRepo     domain.UserRepository
}

// NewWishlistService creates a new WishlistService
func NewWishlistService(wishlistRepo domain.WishlistRepository, userRepo domain.UserRepository) *WishlistService {
	return &WishlistService{
		wishlistRepo: wishlistRepo,
		userRepo:     userRepo,
	}
}

// CreateWishlistInput contains input for creating a wishlist
type CreateWishlistInput struct {
	UserID      string
	Name        string
	Description string
	IsDefault   bool
}

// CreateWishlist creates a new wishlist for an existing user. Names are
// unique per user, compared case-insensitively. When the new wishlist is
// flagged default, the flag is cleared on the user's other wishlists first.
func (s *WishlistService) CreateWishlist(ctx context.Context, input CreateWishlistInput) (*domain.Wishlist, error) {
	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	name := strings.TrimSpace(input.Name)
	existing, err := s.wishlistRepo.FindByUserIDAndName(ctx, input.UserID, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrWishlistNameExists
	}

	wishlist, err := domain.NewWishlist(uuid.NewString(), input.UserID, name, input.Description, input.IsDefault, time.Now())
	if err != nil {
		return nil, err
	}

	if wishlist.IsDefault {
		if err := s.wishlistRepo.ClearDefaultForUser(ctx, input.UserID); err != nil {
			return nil, err
		}
	}

	saved, err := s.wishlistRepo.Save(ctx, wishlist)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// UpdateWishlistInput contains input for updating a wishlist
type UpdateWishlistInput struct {
	Name        string
	Description string
	IsDefault   bool
}

// UpdateWishlist renames a wishlist and toggles its default flag. Name
// uniqueness is re-checked excluding the wishlist itself.
func (s *WishlistService) UpdateWishlist(ctx context.Context, id string, input UpdateWishlistInput) (*domain.Wishlist, error) {
	wishlist, err := s.wishlistRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if wishlist == nil {
		return nil, domain.ErrWishlistNotFound
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrWishlistNameEmpty
	}

	if !strings.EqualFold(name, wishlist.Name) {
		existing, err := s.wishlistRepo.FindByUserIDAndName(ctx, wishlist.UserID, name)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != wishlist.ID {
			return nil, domain.ErrWishlistNameExists
		}
	}

	updated := wishlist.Update(name, input.Description)

	if input.IsDefault && !wishlist.IsDefault {
		if err := s.wishlistRepo.ClearDefaultForUser(ctx, wishlist.UserID); err != nil {
			return nil, err
		}
	}
	updated = updated.SetDefault(input.IsDefault)

	saved, err := s.wishlistRepo.Save(ctx, updated)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// SetDefaultWishlist makes the wishlist the single default for its owner.
// Clear-then-set is two sequential repository calls; the race against
// concurrent writers is accepted for a single in-process store.
func (s *WishlistService) SetDefaultWishlist(ctx context.Context, id string) (*domain.Wishlist, error) {
	wishlist, err := s.wishlistRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if wishlist == nil {
		return nil, domain.ErrWishlistNotFound
	}

	if err := s.wishlistRepo.ClearDefaultForUser(ctx, wishlist.UserID); err != nil {
		return nil, err
	}

	saved, err := s.wishlistRepo.Save(ctx, wishlist.SetDefault(true))
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// DeleteWishlist deletes a wishlist and, implicitly, its items. Deleting an
// absent id is a silent no-op.
func (s *WishlistService) DeleteWishlist(ctx context.Context, id string) error {
	return s.wishlistRepo.Delete(ctx, id)
}

// AddItemInput contains input for adding an item to a wishlist
type AddItemInput struct {
	ProductID   string
	ProductName string
	ProductURL  string
	Price       decimal.Decimal
	Priority    string
	Notes       string
	Currency    string
	Thumbnail   string
}

// AddItem appends a new item to the wishlist. The item gets a generated id,
// the current timestamp and the documented defaults for currency and
// thumbnail.
func (s *WishlistService) AddItem(ctx context.Context, wishlistID string, input AddItemInput) (*domain.Wishlist, error) {
	wishlist, err := s.wishlistRepo.FindByID(ctx, wishlistID)
	if err != nil {
		return nil, err
	}
	if wishlist == nil {
		return nil, domain.ErrWishlistNotFound
	}

	priority, err := domain.ParsePriority(input.Priority)
	if err != nil {
		return nil, err
	}
	if input.Price.IsNegative() {
		return nil, domain.ErrNegativePrice
	}

	currency := input.Currency
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	item := domain.WishlistItem{
		ID:          uuid.NewString(),
		WishlistID:  wishlistID,
		ProductID:   input.ProductID,
		ProductName: input.ProductName,
		ProductURL:  input.ProductURL,
		Price:       input.Price,
		Priority:    priority,
		Notes:       input.Notes,
		Currency:    currency,
		Thumbnail:   input.Thumbnail,
		AddedAt:     time.Now(),
	}

	saved, err := s.wishlistRepo.Save(ctx, wishlist.AddItem(item))
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// RemoveItem removes an item from the wishlist. A missing item id is
// tolerated: the wishlist is saved unchanged apart from UpdatedAt.
func (s *WishlistService) RemoveItem(ctx context.Context, wishlistID, itemID string) (*domain.Wishlist, error) {
	wishlist, err := s.wishlistRepo.FindByID(ctx, wishlistID)
	if err != nil {
		return nil, err
	}
	if wishlist == nil {
		return nil, domain.ErrWishlistNotFound
	}

	saved, err := s.wishlistRepo.Save(ctx, wishlist.RemoveItem(itemID))
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// MoveItemsResult carries both rewritten wishlists after a move.
type MoveItemsResult struct {
	Source      domain.Wishlist
	Destination domain.Wishlist
}

// MoveItems relocates the given items from one wishlist to another. Every
// requested id must exist in the source; if any is missing the operation
// fails before any write and storage is left untouched. Repeated ids in the
// request are collapsed and a move onto the source itself is a no-op, so an
// item id never appears twice in a persisted wishlist. Moved items keep all
// fields including AddedAt, with WishlistID rewritten to the destination.
func (s *WishlistService) MoveItems(ctx context.Context, sourceID, destinationID string, itemIDs []string) (*MoveItemsResult, error) {
	source, err := s.wishlistRepo.FindByID(ctx, sourceID)
	if err != nil {
		return nil, err
	}
	if source == nil {
		return nil, domain.ErrWishlistNotFound
	}

	destination, err := s.wishlistRepo.FindByID(ctx, destinationID)
	if err != nil {
		return nil, err
	}
	if destination == nil {
		return nil, domain.ErrWishlistNotFound
	}

	// Validate the whole batch before touching storage, collapsing
	// repeated ids so an item is never moved twice.
	seen := make(map[string]bool, len(itemIDs))
	var missing []string
	moved := make([]domain.WishlistItem, 0, len(itemIDs))
	for _, itemID := range itemIDs {
		if seen[itemID] {
			continue
		}
		seen[itemID] = true
		item, ok := source.FindItem(itemID)
		if !ok {
			missing = append(missing, itemID)
			continue
		}
		moved = append(moved, item.WithWishlistID(destinationID))
	}
	if len(missing) > 0 {
		return nil, &domain.WishlistItemsNotFoundError{WishlistID: sourceID, ItemIDs: missing}
	}

	// Moving a list onto itself would duplicate every moved item id.
	if sourceID == destinationID {
		return &MoveItemsResult{Source: *source, Destination: *source}, nil
	}

	updatedSource := *source
	for _, item := range moved {
		updatedSource = updatedSource.RemoveItem(item.ID)
	}
	updatedDestination := *destination
	for _, item := range moved {
		updatedDestination = updatedDestination.AddItem(item)
	}

	savedSource, err := s.wishlistRepo.Save(ctx, updatedSource)
	if err != nil {
		return nil, err
	}
	savedDestination, err := s.wishlistRepo.Save(ctx, updatedDestination)
	if err != nil {
		return nil, err
	}

	return &MoveItemsResult{Source: savedSource, Destination: savedDestination}, nil
}

// GetWishlistByID retrieves a wishlist by id. Absence yields (nil, nil).
func (s *WishlistService) GetWishlistByID(ctx context.Context, id string) (*domain.Wishlist, error) {
	return s.wishlistRepo.FindByID(ctx, id)
}

// GetAllWishlists retrieves every wishlist in the store.
func (s *WishlistService) GetAllWishlists(ctx context.Context) ([]domain.Wishlist, error) {
	return s.wishlistRepo.FindAll(ctx)
}

// GetWishlistsByUser retrieves all wishlists owned by a user.
func (s *WishlistService) GetWishlistsByUser(ctx context.Context, userID string) ([]domain.Wishlist, error) {
	return s.wishlistRepo.FindByUserID(ctx, userID)
}
