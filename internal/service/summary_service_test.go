package service_test

import (
	"context"
	"testing"

	"github.com/ledgerly/ledgerly-backend/internal/testutil"
)

// TestSummaryService_GetSummary tests the financial aggregation.
//
// WHY: The summary is the one place all money flows meet. The netProfit
// formula must be status-qualified (sold gains minus written-off capital);
// open purchases may move totalSpent but never netProfit.
func TestSummaryService_GetSummary(t *testing.T) {
	t.Run("returns zeros for an empty database", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSummaryService(t, db)

		summary, err := svc.GetSummary()
		if err != nil {
			t.Fatalf("GetSummary() returned unexpected error: %v", err)
		}

		if summary.TotalSpent != 0 || summary.TotalEarned != 0 || summary.TotalLost != 0 ||
			summary.NetProfit != 0 || summary.PotentialRevenue != 0 {
			t.Errorf("Expected all-zero summary, got %+v", summary)
		}
		if summary.Counts.Watchlist != 0 || summary.Counts.Purchased != 0 ||
			summary.Counts.Sold != 0 || summary.Counts.Losses != 0 {
			t.Errorf("Expected all-zero counts, got %+v", summary.Counts)
		}
	})

	t.Run("tracks a full buy and sell cycle", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSummaryService(t, db)
		lifecycle := testutil.NewTestLifecycleService(t, db)

		account := testutil.NewAccount().
			WithIdentifier("A").
			WithExpectedPrice(100).
			Build(t, db)

		if err := lifecycle.Purchase(context.Background(), account.ID, 90, 150); err != nil {
			t.Fatalf("Purchase() returned unexpected error: %v", err)
		}

		summary, err := svc.GetSummary()
		if err != nil {
			t.Fatalf("GetSummary() returned unexpected error: %v", err)
		}
		if summary.TotalSpent != 90 {
			t.Errorf("Expected totalSpent 90, got %v", summary.TotalSpent)
		}
		if summary.PotentialRevenue != 150 {
			t.Errorf("Expected potentialRevenue 150, got %v", summary.PotentialRevenue)
		}
		if summary.Counts.Purchased != 1 {
			t.Errorf("Expected purchased count 1, got %d", summary.Counts.Purchased)
		}
		// Unresolved purchase: no realized profit yet.
		if summary.NetProfit != 0 {
			t.Errorf("Expected netProfit 0 before sale, got %v", summary.NetProfit)
		}

		if err := lifecycle.Sell(context.Background(), account.ID, 140); err != nil {
			t.Fatalf("Sell() returned unexpected error: %v", err)
		}

		summary, err = svc.GetSummary()
		if err != nil {
			t.Fatalf("GetSummary() returned unexpected error: %v", err)
		}
		if summary.TotalEarned != 140 {
			t.Errorf("Expected totalEarned 140, got %v", summary.TotalEarned)
		}
		if summary.NetProfit != 50 {
			t.Errorf("Expected netProfit 50, got %v", summary.NetProfit)
		}
		if summary.Counts.Sold != 1 {
			t.Errorf("Expected sold count 1, got %d", summary.Counts.Sold)
		}
		if summary.Counts.Purchased != 0 {
			t.Errorf("Expected purchased count 0 after sale, got %d", summary.Counts.Purchased)
		}
		// The resale estimate only counts while the account is held.
		if summary.PotentialRevenue != 0 {
			t.Errorf("Expected potentialRevenue 0 after sale, got %v", summary.PotentialRevenue)
		}
	})

	t.Run("tracks a purchase written off as a loss", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSummaryService(t, db)
		lifecycle := testutil.NewTestLifecycleService(t, db)

		account := testutil.CreateWatchlistAccount(t, db, "B")

		if err := lifecycle.Purchase(context.Background(), account.ID, 50, 0); err != nil {
			t.Fatalf("Purchase() returned unexpected error: %v", err)
		}
		if err := lifecycle.ReportLoss(context.Background(), account.ID, "Banned"); err != nil {
			t.Fatalf("ReportLoss() returned unexpected error: %v", err)
		}

		summary, err := svc.GetSummary()
		if err != nil {
			t.Fatalf("GetSummary() returned unexpected error: %v", err)
		}
		if summary.TotalLost != 50 {
			t.Errorf("Expected totalLost 50, got %v", summary.TotalLost)
		}
		if summary.NetProfit != -50 {
			t.Errorf("Expected netProfit -50, got %v", summary.NetProfit)
		}
		if summary.Counts.Losses != 1 {
			t.Errorf("Expected losses count 1, got %d", summary.Counts.Losses)
		}
	})

	t.Run("open purchases diverge from the naive earned-minus-spent formula", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSummaryService(t, db)

		// One resolved sale and one open purchase with a nonzero buy price.
		testutil.CreateSoldAccount(t, db, "Sold", 50, 80)
		testutil.CreatePurchasedAccount(t, db, "Held", 40, 0)

		summary, err := svc.GetSummary()
		if err != nil {
			t.Fatalf("GetSummary() returned unexpected error: %v", err)
		}

		// Realized profit: 80 - 50 from the sale; the held account is not
		// a loss yet.
		if summary.NetProfit != 30 {
			t.Errorf("Expected netProfit 30, got %v", summary.NetProfit)
		}

		naive := summary.TotalEarned - summary.TotalSpent // 80 - 90 = -10
		if summary.NetProfit == naive {
			t.Errorf("Qualified netProfit %v must differ from naive %v while a purchase is open", summary.NetProfit, naive)
		}
	})

	t.Run("excludes deleted accounts from all metrics", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSummaryService(t, db)
		accounts := testutil.NewTestAccountService(t, db)

		sold := testutil.CreateSoldAccount(t, db, "Sold", 50, 80)
		testutil.CreateSoldAccount(t, db, "Kept", 10, 15)

		if err := accounts.DeleteAccount(sold.ID); err != nil {
			t.Fatalf("DeleteAccount() returned unexpected error: %v", err)
		}

		summary, err := svc.GetSummary()
		if err != nil {
			t.Fatalf("GetSummary() returned unexpected error: %v", err)
		}
		if summary.TotalSpent != 10 {
			t.Errorf("Expected totalSpent 10 after delete, got %v", summary.TotalSpent)
		}
		if summary.TotalEarned != 15 {
			t.Errorf("Expected totalEarned 15 after delete, got %v", summary.TotalEarned)
		}
		if summary.Counts.Sold != 1 {
			t.Errorf("Expected sold count 1 after delete, got %d", summary.Counts.Sold)
		}
	})
}
