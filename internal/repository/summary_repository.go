package repository

import (
	"database/sql"
	"fmt"

	"github.com/ledgerly/ledgerly-backend/internal/model"
)

// SummaryRepository computes the aggregate financial metrics. It is a pure
// read layer: no query here mutates state, and no result is cached.
type SummaryRepository struct {
	db *sql.DB
}

// NewSummaryRepository creates a new SummaryRepository with the provided database connection.
func NewSummaryRepository(db *sql.DB) *SummaryRepository {
	return &SummaryRepository{db: db}
}

// GetFinancialSummary computes totals, realized net profit and per-status
// counts in two queries.
//
// netProfit is status-qualified: (sell - buy) summed over sold accounts,
// minus buy summed over lost accounts. Open purchases do not move it until
// they resolve, unlike the naive totalEarned - totalSpent.
func (s *SummaryRepository) GetFinancialSummary() (model.FinancialSummary, error) {
	var summary model.FinancialSummary

	financialsQuery := `
		SELECT
			COALESCE(SUM(t.buy_price), 0) AS total_spent,
			COALESCE(SUM(t.sell_price), 0) AS total_earned,
			(SELECT COALESCE(SUM(t2.buy_price), 0)
			 FROM transactions t2
			 JOIN accounts a2 ON t2.account_id = a2.id
			 WHERE a2.status = 'losses') AS total_lost,
			((SELECT COALESCE(SUM(t3.sell_price - t3.buy_price), 0)
			  FROM transactions t3
			  JOIN accounts a3 ON t3.account_id = a3.id
			  WHERE a3.status = 'sold') -
			 (SELECT COALESCE(SUM(t4.buy_price), 0)
			  FROM transactions t4
			  JOIN accounts a4 ON t4.account_id = a4.id
			  WHERE a4.status = 'losses')) AS net_profit,
			(SELECT COALESCE(SUM(potential_income), 0)
			 FROM accounts
			 WHERE status = 'purchased') AS potential_revenue
		FROM transactions t
	`

	err := s.db.QueryRow(financialsQuery).Scan(
		&summary.TotalSpent,
		&summary.TotalEarned,
		&summary.TotalLost,
		&summary.NetProfit,
		&summary.PotentialRevenue,
	)
	if err != nil {
		return model.FinancialSummary{}, fmt.Errorf("failed to query financial totals: %w", err)
	}

	counts, err := s.countByStatus()
	if err != nil {
		return model.FinancialSummary{}, err
	}
	summary.Counts = counts

	return summary, nil
}

// countByStatus tallies accounts per lifecycle state. States with no
// accounts stay at zero.
func (s *SummaryRepository) countByStatus() (model.StatusCounts, error) {
	rows, err := s.db.Query("SELECT status, COUNT(*) FROM accounts GROUP BY status")
	if err != nil {
		return model.StatusCounts{}, fmt.Errorf("failed to query status counts: %w", err)
	}
	defer rows.Close()

	var counts model.StatusCounts
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return model.StatusCounts{}, fmt.Errorf("failed to scan status counts: %w", err)
		}

		switch model.Status(status) {
		case model.StatusWatchlist:
			counts.Watchlist = count
		case model.StatusPurchased:
			counts.Purchased = count
		case model.StatusSold:
			counts.Sold = count
		case model.StatusLosses:
			counts.Losses = count
		}
	}

	if err = rows.Err(); err != nil {
		return model.StatusCounts{}, fmt.Errorf("error iterating status counts: %w", err)
	}

	return counts, nil
}
