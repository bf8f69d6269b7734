package request

// CreateAccountRequest is the payload for creating a watchlist account.
type CreateAccountRequest struct {
	Identifier    string  `json:"identifier"`
	Link          string  `json:"link"`
	Category      string  `json:"category"`
	ThumbnailURL  string  `json:"thumbnail_url"`
	ExpectedPrice float64 `json:"expected_price"`
	Notes         string  `json:"notes"`
}

// UpdateAccountRequest is a partial update of account fields. Pointer fields
// distinguish "leave unchanged" from "set to zero value". Status is not
// part of this payload; it only changes through lifecycle endpoints.
type UpdateAccountRequest struct {
	Identifier         *string  `json:"identifier,omitempty"`
	Link               *string  `json:"link,omitempty"`
	Category           *string  `json:"category,omitempty"`
	ThumbnailURL       *string  `json:"thumbnail_url,omitempty"`
	ExpectedPrice      *float64 `json:"expected_price,omitempty"`
	PotentialIncome    *float64 `json:"potential_income,omitempty"`
	Email              *string  `json:"email,omitempty"`
	Password           *string  `json:"password,omitempty"`
	AccountEmail       *string  `json:"account_email,omitempty"`
	AccountPassword    *string  `json:"account_password,omitempty"`
	Account2ndEmail    *string  `json:"account_2nd_email,omitempty"`
	Account2ndPassword *string  `json:"account_2nd_password,omitempty"`
	Notes              *string  `json:"notes,omitempty"`
}

// PurchaseRequest records an acquisition.
type PurchaseRequest struct {
	BuyPrice        float64 `json:"buy_price"`
	PotentialIncome float64 `json:"potential_income"`
}

// SellRequest records a completed sale.
type SellRequest struct {
	SellPrice float64 `json:"sell_price"`
}

// LossRequest writes an account off.
type LossRequest struct {
	LossReason string `json:"loss_reason"`
}
