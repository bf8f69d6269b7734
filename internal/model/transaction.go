package model

import "time"

// Transaction is the monetary record paired one-to-one with an account.
// It is created on the first purchase and updated in place afterwards;
// deleting the account cascades to this row.
type Transaction struct {
	ID              int64     `json:"id"`
	AccountID       int64     `json:"account_id"`
	BuyPrice        *float64  `json:"buy_price"`
	SellPrice       *float64  `json:"sell_price"`
	TransactionDate time.Time `json:"transaction_date"`
}
