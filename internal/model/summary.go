package model

// StatusCounts holds the number of accounts currently in each lifecycle state.
type StatusCounts struct {
	Watchlist int `json:"watchlist"`
	Purchased int `json:"purchased"`
	Sold      int `json:"sold"`
	Losses    int `json:"losses"`
}

// FinancialSummary is the cross-cutting financial picture computed on demand
// from the accounts and transactions tables.
//
// NetProfit is realized profit only: gains from completed sales minus capital
// written off as losses. Open purchases contribute to TotalSpent but not to
// NetProfit until they resolve.
type FinancialSummary struct {
	TotalSpent       float64      `json:"totalSpent"`       // capital deployed across all purchases
	TotalEarned      float64      `json:"totalEarned"`      // revenue realized across all sales
	TotalLost        float64      `json:"totalLost"`        // capital written off on lost accounts
	NetProfit        float64      `json:"netProfit"`        // realized gains minus write-offs
	PotentialRevenue float64      `json:"potentialRevenue"` // estimated resale value of held inventory
	Counts           StatusCounts `json:"counts"`
}
