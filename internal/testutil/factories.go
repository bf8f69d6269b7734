package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/ledgerly/ledgerly-backend/internal/model"
	"github.com/ledgerly/ledgerly-backend/internal/repository"
)

// AccountBuilder provides a fluent interface for creating test accounts.
//
// Example usage:
//
//	// Simple creation with defaults
//	account := testutil.NewAccount().Build(t, db)
//
//	// Customized account
//	account := testutil.NewAccount().
//	    WithIdentifier("Rare account").
//	    WithStatus(model.StatusPurchased).
//	    WithNotes("negotiating").
//	    Build(t, db)
type AccountBuilder struct {
	Identifier      string
	Link            string
	Category        string
	Status          model.Status
	ExpectedPrice   float64
	PotentialIncome float64
	LossReason      string
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewAccount creates an AccountBuilder with sensible defaults.
func NewAccount() *AccountBuilder {
	now := time.Now().UTC()
	return &AccountBuilder{
		Identifier: "Test account",
		Status:     model.StatusWatchlist,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// WithIdentifier sets a custom identifier.
func (b *AccountBuilder) WithIdentifier(identifier string) *AccountBuilder {
	b.Identifier = identifier
	return b
}

// WithLink sets a custom link.
func (b *AccountBuilder) WithLink(link string) *AccountBuilder {
	b.Link = link
	return b
}

// WithCategory sets a custom category.
func (b *AccountBuilder) WithCategory(category string) *AccountBuilder {
	b.Category = category
	return b
}

// WithStatus sets the lifecycle status directly, bypassing the engine.
func (b *AccountBuilder) WithStatus(status model.Status) *AccountBuilder {
	b.Status = status
	return b
}

// WithExpectedPrice sets the watchlist price estimate.
func (b *AccountBuilder) WithExpectedPrice(price float64) *AccountBuilder {
	b.ExpectedPrice = price
	return b
}

// WithPotentialIncome sets the resale estimate.
func (b *AccountBuilder) WithPotentialIncome(income float64) *AccountBuilder {
	b.PotentialIncome = income
	return b
}

// WithLossReason sets the write-off explanation.
func (b *AccountBuilder) WithLossReason(reason string) *AccountBuilder {
	b.LossReason = reason
	return b
}

// WithNotes sets the free-text notes.
func (b *AccountBuilder) WithNotes(notes string) *AccountBuilder {
	b.Notes = notes
	return b
}

// WithUpdatedAt sets an explicit updated_at, useful for ordering tests.
func (b *AccountBuilder) WithUpdatedAt(t time.Time) *AccountBuilder {
	b.UpdatedAt = t
	return b
}

// Build creates the account in the database and returns it.
func (b *AccountBuilder) Build(t *testing.T, db *sql.DB) model.Account {
	t.Helper()

	query := `
		INSERT INTO accounts (identifier, link, category, status, expected_price, potential_income, loss_reason, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := db.Exec(query,
		b.Identifier,
		b.Link,
		b.Category,
		string(b.Status),
		b.ExpectedPrice,
		b.PotentialIncome,
		b.LossReason,
		b.Notes,
		repository.FormatTime(b.CreatedAt),
		repository.FormatTime(b.UpdatedAt),
	)
	if err != nil {
		t.Fatalf("Failed to insert test account: %v", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read test account ID: %v", err)
	}

	return model.Account{
		ID:              id,
		Identifier:      b.Identifier,
		Link:            b.Link,
		Category:        b.Category,
		Status:          b.Status,
		ExpectedPrice:   b.ExpectedPrice,
		PotentialIncome: b.PotentialIncome,
		LossReason:      b.LossReason,
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// CreateWatchlistAccount inserts a watchlist account with the given identifier.
func CreateWatchlistAccount(t *testing.T, db *sql.DB, identifier string) model.Account {
	t.Helper()
	return NewAccount().WithIdentifier(identifier).Build(t, db)
}

// CreatePurchasedAccount inserts a purchased account together with its
// transaction row, without going through the lifecycle engine.
func CreatePurchasedAccount(t *testing.T, db *sql.DB, identifier string, buyPrice, potentialIncome float64) model.Account {
	t.Helper()

	account := NewAccount().
		WithIdentifier(identifier).
		WithStatus(model.StatusPurchased).
		WithPotentialIncome(potentialIncome).
		Build(t, db)

	InsertTransaction(t, db, account.ID, &buyPrice, nil)
	return account
}

// CreateSoldAccount inserts a sold account with buy and sell prices recorded.
func CreateSoldAccount(t *testing.T, db *sql.DB, identifier string, buyPrice, sellPrice float64) model.Account {
	t.Helper()

	account := NewAccount().
		WithIdentifier(identifier).
		WithStatus(model.StatusSold).
		Build(t, db)

	InsertTransaction(t, db, account.ID, &buyPrice, &sellPrice)
	return account
}

// CreateLostAccount inserts a written-off account with its buy price recorded.
func CreateLostAccount(t *testing.T, db *sql.DB, identifier string, buyPrice float64, reason string) model.Account {
	t.Helper()

	account := NewAccount().
		WithIdentifier(identifier).
		WithStatus(model.StatusLosses).
		WithLossReason(reason).
		Build(t, db)

	InsertTransaction(t, db, account.ID, &buyPrice, nil)
	return account
}

// InsertTransaction inserts a raw transaction row for an account.
func InsertTransaction(t *testing.T, db *sql.DB, accountID int64, buyPrice, sellPrice *float64) {
	t.Helper()

	query := `
		INSERT INTO transactions (account_id, buy_price, sell_price, transaction_date)
		VALUES (?, ?, ?, ?)
	`

	if _, err := db.Exec(query, accountID, buyPrice, sellPrice, repository.FormatTime(time.Now().UTC())); err != nil {
		t.Fatalf("Failed to insert test transaction: %v", err)
	}
}
