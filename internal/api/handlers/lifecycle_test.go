package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/ledgerly/ledgerly-backend/internal/api/handlers"
	"github.com/ledgerly/ledgerly-backend/internal/api/request"
	"github.com/ledgerly/ledgerly-backend/internal/model"
	"github.com/ledgerly/ledgerly-backend/internal/testutil"
)

// TestLifecycleHandler_Purchase tests the POST /api/accounts/{id}/purchase endpoint.
//
// WHY: Lifecycle endpoints are the only way to move an account between
// states, so the status-code contract (200 / 400 / 404 / 409) must be exact
// for the frontend to distinguish user error from stale state.
func TestLifecycleHandler_Purchase(t *testing.T) {
	t.Run("POST purchase moves a watchlist account to purchased", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewLifecycleHandler(testutil.NewTestLifecycleService(t, db))

		account := testutil.CreateWatchlistAccount(t, db, "Account A")

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/accounts/1/purchase", map[string]string{
			"id": strconv.FormatInt(account.ID, 10),
		}, request.PurchaseRequest{BuyPrice: 75, PotentialIncome: 150})
		w := httptest.NewRecorder()

		handler.Purchase(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var status string
		err := db.QueryRow("SELECT status FROM accounts WHERE id = ?", account.ID).Scan(&status)
		if err != nil {
			t.Fatalf("Failed to read account status: %v", err)
		}
		if status != string(model.StatusPurchased) {
			t.Errorf("Expected status purchased, got %s", status)
		}
		testutil.AssertRowCount(t, db, "transactions", 1)
	})

	t.Run("POST purchase rejects a negative buy price", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewLifecycleHandler(testutil.NewTestLifecycleService(t, db))

		account := testutil.CreateWatchlistAccount(t, db, "Account A")

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/accounts/1/purchase", map[string]string{
			"id": strconv.FormatInt(account.ID, 10),
		}, request.PurchaseRequest{BuyPrice: -5})
		w := httptest.NewRecorder()

		handler.Purchase(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
		testutil.AssertRowCount(t, db, "transactions", 0)
	})

	t.Run("POST purchase returns 404 for unknown account", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewLifecycleHandler(testutil.NewTestLifecycleService(t, db))

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/accounts/9999/purchase", map[string]string{
			"id": "9999",
		}, request.PurchaseRequest{BuyPrice: 75})
		w := httptest.NewRecorder()

		handler.Purchase(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})

	t.Run("POST purchase returns 409 for a sold account", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewLifecycleHandler(testutil.NewTestLifecycleService(t, db))

		account := testutil.CreateSoldAccount(t, db, "Account A", 50, 80)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/accounts/1/purchase", map[string]string{
			"id": strconv.FormatInt(account.ID, 10),
		}, request.PurchaseRequest{BuyPrice: 75})
		w := httptest.NewRecorder()

		handler.Purchase(w, req)

		if w.Code != http.StatusConflict {
			t.Errorf("Expected status 409, got %d", w.Code)
		}
	})
}

// TestLifecycleHandler_Sell tests the POST /api/accounts/{id}/sell endpoint.
func TestLifecycleHandler_Sell(t *testing.T) {
	t.Run("POST sell closes out a purchased account", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewLifecycleHandler(testutil.NewTestLifecycleService(t, db))

		account := testutil.CreatePurchasedAccount(t, db, "Account A", 90, 150)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/accounts/1/sell", map[string]string{
			"id": strconv.FormatInt(account.ID, 10),
		}, request.SellRequest{SellPrice: 140})
		w := httptest.NewRecorder()

		handler.Sell(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var sellPrice float64
		err := db.QueryRow("SELECT sell_price FROM transactions WHERE account_id = ?", account.ID).Scan(&sellPrice)
		if err != nil {
			t.Fatalf("Failed to read sell price: %v", err)
		}
		if sellPrice != 140 {
			t.Errorf("Expected sell price 140, got %f", sellPrice)
		}
	})

	t.Run("POST sell on a watchlist account returns 409", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewLifecycleHandler(testutil.NewTestLifecycleService(t, db))

		account := testutil.CreateWatchlistAccount(t, db, "Account A")

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/accounts/1/sell", map[string]string{
			"id": strconv.FormatInt(account.ID, 10),
		}, request.SellRequest{SellPrice: 140})
		w := httptest.NewRecorder()

		handler.Sell(w, req)

		if w.Code != http.StatusConflict {
			t.Errorf("Expected status 409, got %d", w.Code)
		}
	})

	t.Run("POST sell returns 404 for unknown account", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewLifecycleHandler(testutil.NewTestLifecycleService(t, db))

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/accounts/9999/sell", map[string]string{
			"id": "9999",
		}, request.SellRequest{SellPrice: 140})
		w := httptest.NewRecorder()

		handler.Sell(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})
}

// TestLifecycleHandler_Loss tests the POST /api/accounts/{id}/loss endpoint.
func TestLifecycleHandler_Loss(t *testing.T) {
	t.Run("POST loss records the reason", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewLifecycleHandler(testutil.NewTestLifecycleService(t, db))

		account := testutil.CreatePurchasedAccount(t, db, "Account A", 90, 150)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/accounts/1/loss", map[string]string{
			"id": strconv.FormatInt(account.ID, 10),
		}, request.LossRequest{LossReason: "account banned"})
		w := httptest.NewRecorder()

		handler.Loss(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var status, reason string
		err := db.QueryRow("SELECT status, loss_reason FROM accounts WHERE id = ?", account.ID).Scan(&status, &reason)
		if err != nil {
			t.Fatalf("Failed to read account: %v", err)
		}
		if status != string(model.StatusLosses) {
			t.Errorf("Expected status losses, got %s", status)
		}
		if reason != "account banned" {
			t.Errorf("Expected loss reason 'account banned', got '%s'", reason)
		}
	})

	t.Run("POST loss rejects an empty reason", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewLifecycleHandler(testutil.NewTestLifecycleService(t, db))

		account := testutil.CreatePurchasedAccount(t, db, "Account A", 90, 150)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/accounts/1/loss", map[string]string{
			"id": strconv.FormatInt(account.ID, 10),
		}, request.LossRequest{LossReason: "  "})
		w := httptest.NewRecorder()

		handler.Loss(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("POST loss on an unpurchased account returns 409", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewLifecycleHandler(testutil.NewTestLifecycleService(t, db))

		account := testutil.CreateWatchlistAccount(t, db, "Account A")

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/accounts/1/loss", map[string]string{
			"id": strconv.FormatInt(account.ID, 10),
		}, request.LossRequest{LossReason: "scammed"})
		w := httptest.NewRecorder()

		handler.Loss(w, req)

		if w.Code != http.StatusConflict {
			t.Errorf("Expected status 409, got %d", w.Code)
		}
	})
}
