package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"wishlist/internal/domain"
	"wishlist/internal/service"
	"wishlist/internal/testutil"
)

func newWishlistHandler() (*WishlistHandler, *testutil.MockWishlistRepository, *testutil.MockUserRepository) {
	wishlistRepo := testutil.NewMockWishlistRepository()
	userRepo := testutil.NewMockUserRepository()
	return NewWishlistHandler(service.NewWishlistService(wishlistRepo, userRepo)), wishlistRepo, userRepo
}

func jsonRequest(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func addUser(userRepo *testutil.MockUserRepository, id string) {
	userRepo.AddUser(domain.User{ID: id, Email: id + "@example.com", Name: "Test User", CreatedAt: time.Now()})
}

func addWishlist(wishlistRepo *testutil.MockWishlistRepository, id, userID, name string, items ...domain.WishlistItem) {
	wishlistRepo.AddWishlist(domain.Wishlist{
		ID:        id,
		UserID:    userID,
		Name:      name,
		Items:     items,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	})
}

func TestCreateWishlistHandler_Success(t *testing.T) {
	e := echo.New()
	h, _, userRepo := newWishlistHandler()
	addUser(userRepo, "user_1")

	c, rec := jsonRequest(e, http.MethodPost, "/api/v1/wishlists",
		`{"userId":"user_1","name":"Tech","description":"Gadgets","isDefault":true}`)

	if err := h.CreateWishlist(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d", rec.Code)
	}

	var resp WishlistResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if resp.Name != "Tech" {
		t.Errorf("Expected name 'Tech', got %s", resp.Name)
	}
	if !resp.IsDefault {
		t.Error("Expected isDefault true")
	}
	if len(resp.Items) != 0 {
		t.Errorf("Expected empty items array, got %d", len(resp.Items))
	}
}

func TestCreateWishlistHandler_UserNotFound(t *testing.T) {
	e := echo.New()
	h, _, _ := newWishlistHandler()

	c, rec := jsonRequest(e, http.MethodPost, "/api/v1/wishlists",
		`{"userId":"user_999","name":"Tech"}`)

	if err := h.CreateWishlist(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}

	var problem ProblemDetails
	if err := json.Unmarshal(rec.Body.Bytes(), &problem); err != nil {
		t.Fatalf("Failed to unmarshal problem: %v", err)
	}
	if problem.Status != http.StatusNotFound {
		t.Errorf("Expected problem status 404, got %d", problem.Status)
	}
	if problem.Type != ErrorTypeNotFound {
		t.Errorf("Expected not-found type, got %s", problem.Type)
	}
}

func TestCreateWishlistHandler_DuplicateName(t *testing.T) {
	e := echo.New()
	h, wishlistRepo, userRepo := newWishlistHandler()
	addUser(userRepo, "user_1")
	addWishlist(wishlistRepo, "wl_1", "user_1", "Tech")

	c, rec := jsonRequest(e, http.MethodPost, "/api/v1/wishlists",
		`{"userId":"user_1","name":"tech"}`)

	if err := h.CreateWishlist(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestGetWishlistHandler_NotFound(t *testing.T) {
	e := echo.New()
	h, _, _ := newWishlistHandler()

	c, rec := jsonRequest(e, http.MethodGet, "/api/v1/wishlists/wl_999", "")
	c.SetParamNames("id")
	c.SetParamValues("wl_999")

	if err := h.GetWishlist(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}

func TestGetWishlistHandler_Success(t *testing.T) {
	e := echo.New()
	h, wishlistRepo, _ := newWishlistHandler()
	addWishlist(wishlistRepo, "wl_1", "user_1", "Tech", domain.WishlistItem{
		ID:          "item_1",
		WishlistID:  "wl_1",
		ProductName: "Keyboard",
		Price:       decimal.NewFromInt(150),
		Priority:    domain.PriorityHigh,
		Currency:    "EUR",
		AddedAt:     time.Now(),
	})

	c, rec := jsonRequest(e, http.MethodGet, "/api/v1/wishlists/wl_1", "")
	c.SetParamNames("id")
	c.SetParamValues("wl_1")

	if err := h.GetWishlist(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var resp WishlistResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(resp.Items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(resp.Items))
	}
	if resp.Items[0].Price != "150" {
		t.Errorf("Expected price '150', got %s", resp.Items[0].Price)
	}
}

func TestUpdateWishlistHandler_NotFound(t *testing.T) {
	e := echo.New()
	h, _, _ := newWishlistHandler()

	c, rec := jsonRequest(e, http.MethodPut, "/api/v1/wishlists/wl_999", `{"name":"New"}`)
	c.SetParamNames("id")
	c.SetParamValues("wl_999")

	if err := h.UpdateWishlist(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}

func TestSetDefaultWishlistHandler_Success(t *testing.T) {
	e := echo.New()
	h, wishlistRepo, _ := newWishlistHandler()
	addWishlist(wishlistRepo, "wl_1", "user_1", "Tech")

	c, rec := jsonRequest(e, http.MethodPatch, "/api/v1/wishlists/wl_1/default", "")
	c.SetParamNames("id")
	c.SetParamValues("wl_1")

	if err := h.SetDefaultWishlist(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var resp WishlistResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if !resp.IsDefault {
		t.Error("Expected isDefault true")
	}
}

func TestDeleteWishlistHandler_IdempotentNoContent(t *testing.T) {
	e := echo.New()
	h, wishlistRepo, _ := newWishlistHandler()
	addWishlist(wishlistRepo, "wl_1", "user_1", "Tech")

	for i := 0; i < 2; i++ {
		c, rec := jsonRequest(e, http.MethodDelete, "/api/v1/wishlists/wl_1", "")
		c.SetParamNames("id")
		c.SetParamValues("wl_1")

		if err := h.DeleteWishlist(c); err != nil {
			t.Fatalf("Delete %d failed: %v", i+1, err)
		}
		if rec.Code != http.StatusNoContent {
			t.Errorf("Expected status 204 on call %d, got %d", i+1, rec.Code)
		}
	}
}

func TestAddItemHandler_AppliesDefaults(t *testing.T) {
	e := echo.New()
	h, wishlistRepo, _ := newWishlistHandler()
	addWishlist(wishlistRepo, "wl_1", "user_1", "Tech")

	c, rec := jsonRequest(e, http.MethodPost, "/api/v1/wishlists/wl_1/items",
		`{"productId":"prod_1","productName":"Keyboard","productUrl":"https://example.com/kb","price":150,"priority":"HIGH","notes":"gaming"}`)
	c.SetParamNames("id")
	c.SetParamValues("wl_1")

	if err := h.AddItem(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var resp WishlistResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(resp.Items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(resp.Items))
	}
	if resp.Items[0].Currency != "EUR" {
		t.Errorf("Expected default currency EUR, got %s", resp.Items[0].Currency)
	}
	if resp.Items[0].Thumbnail != "" {
		t.Errorf("Expected empty thumbnail, got %q", resp.Items[0].Thumbnail)
	}
}

func TestAddItemHandler_InvalidPriority(t *testing.T) {
	e := echo.New()
	h, wishlistRepo, _ := newWishlistHandler()
	addWishlist(wishlistRepo, "wl_1", "user_1", "Tech")

	c, rec := jsonRequest(e, http.MethodPost, "/api/v1/wishlists/wl_1/items",
		`{"productName":"Keyboard","price":10,"priority":"URGENT"}`)
	c.SetParamNames("id")
	c.SetParamValues("wl_1")

	if err := h.AddItem(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}

	var problem ProblemDetails
	if err := json.Unmarshal(rec.Body.Bytes(), &problem); err != nil {
		t.Fatalf("Failed to unmarshal problem: %v", err)
	}
	if len(problem.Errors) != 1 || problem.Errors[0].Field != "priority" {
		t.Errorf("Expected priority field error, got %v", problem.Errors)
	}
}

func TestRemoveItemHandler_Success(t *testing.T) {
	e := echo.New()
	h, wishlistRepo, _ := newWishlistHandler()
	addWishlist(wishlistRepo, "wl_1", "user_1", "Tech", domain.WishlistItem{
		ID: "item_1", WishlistID: "wl_1", ProductName: "Keyboard",
		Price: decimal.NewFromInt(150), Priority: domain.PriorityHigh,
		Currency: "EUR", AddedAt: time.Now(),
	})

	c, rec := jsonRequest(e, http.MethodDelete, "/api/v1/wishlists/wl_1/items/item_1", "")
	c.SetParamNames("id", "itemId")
	c.SetParamValues("wl_1", "item_1")

	if err := h.RemoveItem(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var resp WishlistResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(resp.Items) != 0 {
		t.Errorf("Expected item removed, got %d items", len(resp.Items))
	}
}

func TestMoveItemsHandler_Success(t *testing.T) {
	e := echo.New()
	h, wishlistRepo, _ := newWishlistHandler()
	addWishlist(wishlistRepo, "wl_1", "user_1", "Tech", domain.WishlistItem{
		ID: "item_1", WishlistID: "wl_1", ProductName: "Keyboard",
		Price: decimal.NewFromInt(150), Priority: domain.PriorityHigh,
		Currency: "EUR", AddedAt: time.Now(),
	})
	addWishlist(wishlistRepo, "wl_2", "user_1", "Fitness")

	c, rec := jsonRequest(e, http.MethodPost, "/api/v1/wishlists/move-items",
		`{"sourceListId":"wl_1","destinationListId":"wl_2","itemIds":["item_1"]}`)

	if err := h.MoveItems(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var resp MoveItemsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(resp.Source.Items) != 0 {
		t.Errorf("Expected source emptied, got %d items", len(resp.Source.Items))
	}
	if len(resp.Destination.Items) != 1 {
		t.Fatalf("Expected destination to gain the item, got %d", len(resp.Destination.Items))
	}
	if resp.Destination.Items[0].WishlistID != "wl_2" {
		t.Errorf("Expected wishlistId rewritten, got %s", resp.Destination.Items[0].WishlistID)
	}
}

func TestMoveItemsHandler_MissingItemsReported(t *testing.T) {
	e := echo.New()
	h, wishlistRepo, _ := newWishlistHandler()
	addWishlist(wishlistRepo, "wl_1", "user_1", "Tech")
	addWishlist(wishlistRepo, "wl_2", "user_1", "Fitness")

	c, rec := jsonRequest(e, http.MethodPost, "/api/v1/wishlists/move-items",
		`{"sourceListId":"wl_1","destinationListId":"wl_2","itemIds":["item_8","item_9"]}`)

	if err := h.MoveItems(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}

	var problem ProblemDetails
	if err := json.Unmarshal(rec.Body.Bytes(), &problem); err != nil {
		t.Fatalf("Failed to unmarshal problem: %v", err)
	}
	if !strings.Contains(problem.Detail, "item_8") || !strings.Contains(problem.Detail, "item_9") {
		t.Errorf("Expected every missing id named, got %q", problem.Detail)
	}
}
