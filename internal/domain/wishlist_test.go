package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func testWishlist(t *testing.T) Wishlist {
	t.Helper()
	created := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	w, err := NewWishlist("wl_1", "user_1", "Tech Wishlist", "Gadgets I want", false, created)
	if err != nil {
		t.Fatalf("NewWishlist failed: %v", err)
	}
	return w
}

func testItem(id, wishlistID string) WishlistItem {
	return WishlistItem{
		ID:          id,
		WishlistID:  wishlistID,
		ProductID:   "prod_1",
		ProductName: "Mechanical Keyboard",
		ProductURL:  "https://example.com/keyboard",
		Price:       decimal.NewFromInt(150),
		Priority:    PriorityHigh,
		Notes:       "Need for gaming setup",
		Currency:    DefaultCurrency,
		Thumbnail:   "",
		AddedAt:     time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestNewWishlist_EmptyID(t *testing.T) {
	_, err := NewWishlist("  ", "user_1", "Tech", "", false, time.Now())
	if err != ErrWishlistIDEmpty {
		t.Errorf("Expected ErrWishlistIDEmpty, got %v", err)
	}
}

func TestNewWishlist_EmptyName(t *testing.T) {
	_, err := NewWishlist("wl_1", "user_1", "   ", "", false, time.Now())
	if err != ErrWishlistNameEmpty {
		t.Errorf("Expected ErrWishlistNameEmpty, got %v", err)
	}
}

func TestAddItem_DoesNotMutateReceiver(t *testing.T) {
	w := testWishlist(t)

	updated := w.AddItem(testItem("item_1", w.ID))

	if len(w.Items) != 0 {
		t.Errorf("Expected receiver to keep 0 items, got %d", len(w.Items))
	}
	if len(updated.Items) != 1 {
		t.Fatalf("Expected copy to have 1 item, got %d", len(updated.Items))
	}
	if updated.Items[0].ID != "item_1" {
		t.Errorf("Expected item_1, got %s", updated.Items[0].ID)
	}
	if !updated.UpdatedAt.After(w.UpdatedAt) {
		t.Errorf("Expected UpdatedAt to advance, got %v -> %v", w.UpdatedAt, updated.UpdatedAt)
	}
	if !updated.CreatedAt.Equal(w.CreatedAt) {
		t.Errorf("Expected CreatedAt unchanged, got %v", updated.CreatedAt)
	}
}

func TestRemoveItem_RoundTripRestoresItems(t *testing.T) {
	w := testWishlist(t).AddItem(testItem("item_1", "wl_1"))

	after := w.AddItem(testItem("item_2", "wl_1")).RemoveItem("item_2")

	if len(after.Items) != 1 {
		t.Fatalf("Expected 1 item after round trip, got %d", len(after.Items))
	}
	if after.Items[0].ID != "item_1" {
		t.Errorf("Expected item_1 to survive, got %s", after.Items[0].ID)
	}
	if after.UpdatedAt.Before(w.UpdatedAt) {
		t.Errorf("Expected UpdatedAt to advance")
	}
}

func TestRemoveItem_AbsentIDIsNoOp(t *testing.T) {
	w := testWishlist(t).AddItem(testItem("item_1", "wl_1"))

	updated := w.RemoveItem("item_999")

	if len(updated.Items) != 1 {
		t.Errorf("Expected items untouched, got %d", len(updated.Items))
	}
	if updated.UpdatedAt.Before(w.UpdatedAt) {
		t.Errorf("Expected UpdatedAt refreshed")
	}
}

func TestUpdate_SharesUntouchedItems(t *testing.T) {
	w := testWishlist(t).AddItem(testItem("item_1", "wl_1"))

	updated := w.Update("New Name", "new description")

	if updated.Name != "New Name" || updated.Description != "new description" {
		t.Errorf("Expected name and description replaced, got %q %q", updated.Name, updated.Description)
	}
	if w.Name != "Tech Wishlist" {
		t.Errorf("Expected receiver name unchanged, got %q", w.Name)
	}
	if len(updated.Items) != 1 {
		t.Errorf("Expected items carried over, got %d", len(updated.Items))
	}
}

func TestSetDefault_OnlyTouchesFlag(t *testing.T) {
	w := testWishlist(t)

	updated := w.SetDefault(true)

	if !updated.IsDefault {
		t.Error("Expected IsDefault true")
	}
	if w.IsDefault {
		t.Error("Expected receiver flag unchanged")
	}
	if updated.Name != w.Name || updated.UserID != w.UserID {
		t.Error("Expected other fields copied unchanged")
	}
}

func TestFindItem(t *testing.T) {
	w := testWishlist(t).AddItem(testItem("item_1", "wl_1"))

	if _, ok := w.FindItem("item_1"); !ok {
		t.Error("Expected to find item_1")
	}
	if _, ok := w.FindItem("item_2"); ok {
		t.Error("Expected item_2 to be absent")
	}
}

func TestWithWishlistID_PreservesAddedAt(t *testing.T) {
	item := testItem("item_1", "wl_1")

	moved := item.WithWishlistID("wl_2")

	if moved.WishlistID != "wl_2" {
		t.Errorf("Expected wishlist id rewritten, got %s", moved.WishlistID)
	}
	if !moved.AddedAt.Equal(item.AddedAt) {
		t.Errorf("Expected AddedAt preserved, got %v", moved.AddedAt)
	}
	if moved.ID != item.ID || !moved.Price.Equal(item.Price) || moved.Priority != item.Priority {
		t.Error("Expected all other fields preserved")
	}
	if item.WishlistID != "wl_1" {
		t.Error("Expected receiver unchanged")
	}
}

func TestParsePriority(t *testing.T) {
	for _, valid := range []string{"LOW", "MEDIUM", "HIGH"} {
		p, err := ParsePriority(valid)
		if err != nil {
			t.Errorf("Expected %s to parse, got %v", valid, err)
		}
		if string(p) != valid {
			t.Errorf("Expected %s, got %s", valid, p)
		}
	}

	if _, err := ParsePriority("URGENT"); err != ErrInvalidPriority {
		t.Errorf("Expected ErrInvalidPriority, got %v", err)
	}
	if _, err := ParsePriority("low"); err != ErrInvalidPriority {
		t.Errorf("Expected ErrInvalidPriority for lowercase, got %v", err)
	}
}
