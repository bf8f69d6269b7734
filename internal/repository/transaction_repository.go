package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ledgerly/ledgerly-backend/internal/apperrors"
	"github.com/ledgerly/ledgerly-backend/internal/model"
)

// TransactionRepository provides data access methods for the transactions
// table. Each account owns at most one transaction row, keyed by the UNIQUE
// account_id column; purchases upsert it, sales update it in place. Every
// method takes a Queryer because transaction rows are only touched inside
// lifecycle transitions.
type TransactionRepository struct{}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{}
}

// UpsertBuy inserts the transaction row on first purchase or overwrites
// buy_price on a re-purchase. Only the latest buy price survives.
func (s *TransactionRepository) UpsertBuy(q Queryer, accountID int64, buyPrice float64, now time.Time) error {
	query := `
		INSERT INTO transactions (account_id, buy_price, transaction_date)
		VALUES (?, ?, ?)
		ON CONFLICT(account_id) DO UPDATE SET
			buy_price = excluded.buy_price,
			transaction_date = excluded.transaction_date
	`

	if _, err := q.Exec(query, accountID, buyPrice, FormatTime(now)); err != nil {
		return fmt.Errorf("failed to upsert buy price: %w", err)
	}

	return nil
}

// SetSellPrice records the sale price on an existing transaction row.
// Returns apperrors.ErrTransactionNotFound if the account was never
// purchased.
func (s *TransactionRepository) SetSellPrice(q Queryer, accountID int64, sellPrice float64, now time.Time) error {
	query := "UPDATE transactions SET sell_price = ?, transaction_date = ? WHERE account_id = ?"

	result, err := q.Exec(query, sellPrice, FormatTime(now), accountID)
	if err != nil {
		return fmt.Errorf("failed to set sell price: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read sell update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrTransactionNotFound
	}

	return nil
}

// GetByAccountID retrieves the transaction row for an account. Returns
// apperrors.ErrTransactionNotFound if none exists.
func (s *TransactionRepository) GetByAccountID(q Queryer, accountID int64) (model.Transaction, error) {
	query := `
		SELECT id, account_id, buy_price, sell_price, transaction_date
		FROM transactions
		WHERE account_id = ?
	`

	var t model.Transaction
	var buyPrice, sellPrice sql.NullFloat64
	var dateStr string

	err := q.QueryRow(query, accountID).Scan(&t.ID, &t.AccountID, &buyPrice, &sellPrice, &dateStr)
	if err == sql.ErrNoRows {
		return model.Transaction{}, apperrors.ErrTransactionNotFound
	}
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to scan transactions table results: %w", err)
	}

	if buyPrice.Valid {
		t.BuyPrice = &buyPrice.Float64
	}
	if sellPrice.Valid {
		t.SellPrice = &sellPrice.Float64
	}

	t.TransactionDate, err = ParseTime(dateStr)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to parse transaction date: %w", err)
	}

	return t, nil
}
