package validation

import (
	"strings"

	"github.com/ledgerly/ledgerly-backend/internal/api/request"
	"github.com/ledgerly/ledgerly-backend/internal/model"
)

// ValidateCreateAccount checks the create payload. Identifier is the only
// required field; prices may not be negative.
func ValidateCreateAccount(req request.CreateAccountRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Identifier) == "" {
		errors["identifier"] = "identifier is required"
	} else if len(req.Identifier) > 200 {
		errors["identifier"] = "identifier must be 200 characters or less"
	}

	if req.ExpectedPrice < 0 {
		errors["expected_price"] = "expected_price cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateUpdateAccount checks only the fields present in a partial update.
func ValidateUpdateAccount(req request.UpdateAccountRequest) error {
	errors := make(map[string]string)

	if req.Identifier != nil {
		if strings.TrimSpace(*req.Identifier) == "" {
			errors["identifier"] = "identifier cannot be empty"
		} else if len(*req.Identifier) > 200 {
			errors["identifier"] = "identifier must be 200 characters or less"
		}
	}

	if req.ExpectedPrice != nil && *req.ExpectedPrice < 0 {
		errors["expected_price"] = "expected_price cannot be negative"
	}
	if req.PotentialIncome != nil && *req.PotentialIncome < 0 {
		errors["potential_income"] = "potential_income cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidatePurchase checks the purchase payload.
func ValidatePurchase(req request.PurchaseRequest) error {
	errors := make(map[string]string)

	if req.BuyPrice < 0 {
		errors["buy_price"] = "buy_price cannot be negative"
	}
	if req.PotentialIncome < 0 {
		errors["potential_income"] = "potential_income cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateSell checks the sell payload.
func ValidateSell(req request.SellRequest) error {
	if req.SellPrice < 0 {
		return &Error{Fields: map[string]string{"sell_price": "sell_price cannot be negative"}}
	}
	return nil
}

// ValidateLoss checks the loss payload. A write-off without a reason is
// rejected rather than silently recorded.
func ValidateLoss(req request.LossRequest) error {
	if strings.TrimSpace(req.LossReason) == "" {
		return &Error{Fields: map[string]string{"loss_reason": "loss_reason is required"}}
	}
	return nil
}

// ValidateStatusFilter checks an optional ?status= query value. Empty means
// no filter and is allowed.
func ValidateStatusFilter(raw string) error {
	if raw == "" {
		return nil
	}
	if !model.Status(raw).Valid() {
		return &Error{Fields: map[string]string{"status": "status must be one of watchlist, purchased, sold, losses"}}
	}
	return nil
}
