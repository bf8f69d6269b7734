package model

import "time"

// Status is the lifecycle state of an account.
// An account starts on the watchlist, moves to purchased once capital is
// deployed, and ends in exactly one of the two terminal states.
type Status string

const (
	StatusWatchlist Status = "watchlist"
	StatusPurchased Status = "purchased"
	StatusSold      Status = "sold"
	StatusLosses    Status = "losses"
)

// Valid reports whether s is one of the four lifecycle states.
func (s Status) Valid() bool {
	switch s {
	case StatusWatchlist, StatusPurchased, StatusSold, StatusLosses:
		return true
	}
	return false
}

// Terminal reports whether s permits no further transitions.
func (s Status) Terminal() bool {
	return s == StatusSold || s == StatusLosses
}

// Account represents a tracked asset from the database.
type Account struct {
	ID              int64   `json:"id"`
	Identifier      string  `json:"identifier"`
	Link            string  `json:"link,omitempty"`
	Category        string  `json:"category,omitempty"`
	ThumbnailURL    string  `json:"thumbnail_url,omitempty"`
	Status          Status  `json:"status"`
	ExpectedPrice   float64 `json:"expected_price"`
	PotentialIncome float64 `json:"potential_income"`
	LossReason      string  `json:"loss_reason,omitempty"`

	// Credential fields are opaque to the core logic. They are encrypted at
	// rest when a secret key is configured.
	Email              string `json:"email,omitempty"`
	Password           string `json:"password,omitempty"`
	AccountEmail       string `json:"account_email,omitempty"`
	AccountPassword    string `json:"account_password,omitempty"`
	Account2ndEmail    string `json:"account_2nd_email,omitempty"`
	Account2ndPassword string `json:"account_2nd_password,omitempty"`

	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AccountWithTransaction is an account joined with its optional transaction
// record. The transaction fields are nil when the account has never been
// purchased.
type AccountWithTransaction struct {
	Account
	BuyPrice        *float64   `json:"buy_price"`
	SellPrice       *float64   `json:"sell_price"`
	TransactionDate *time.Time `json:"transaction_date"`
}

// AccountFilter selects accounts for listing. An empty Status matches all
// four states; Search is a case-insensitive substring match against
// identifier, category and notes.
type AccountFilter struct {
	Status Status
	Search string
}

// AccountUpdate is the bounded set of patchable account fields. A nil field
// is left untouched. Status is deliberately absent: status only changes
// through lifecycle transitions.
type AccountUpdate struct {
	Identifier         *string
	Link               *string
	Category           *string
	ThumbnailURL       *string
	ExpectedPrice      *float64
	PotentialIncome    *float64
	Email              *string
	Password           *string
	AccountEmail       *string
	AccountPassword    *string
	Account2ndEmail    *string
	Account2ndPassword *string
	Notes              *string
}

// DuplicateCheck is the result of probing a link against existing accounts.
type DuplicateCheck struct {
	Exists     bool   `json:"exists"`
	Identifier string `json:"identifier,omitempty"`
}
