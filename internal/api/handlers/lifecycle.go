package handlers

import (
	"errors"
	"net/http"

	"github.com/ledgerly/ledgerly-backend/internal/api/request"
	"github.com/ledgerly/ledgerly-backend/internal/api/response"
	"github.com/ledgerly/ledgerly-backend/internal/apperrors"
	"github.com/ledgerly/ledgerly-backend/internal/service"
	"github.com/ledgerly/ledgerly-backend/internal/validation"
)

// LifecycleHandler handles HTTP requests for status transitions. Each
// endpoint maps one transition of the lifecycle engine.
type LifecycleHandler struct {
	lifecycleService *service.LifecycleService
}

// NewLifecycleHandler creates a new LifecycleHandler with the provided service dependency.
func NewLifecycleHandler(lifecycleService *service.LifecycleService) *LifecycleHandler {
	return &LifecycleHandler{
		lifecycleService: lifecycleService,
	}
}

// Purchase handles POST requests marking an account as purchased.
//
// Endpoint: POST /api/accounts/{id}/purchase
// Request Body: PurchaseRequest (buy_price, potential_income)
// Response: 200 OK with success marker
// Error: 400 Bad Request if prices are invalid
// Error: 404 Not Found if the account does not exist
// Error: 409 Conflict if the account already resolved
func (h *LifecycleHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.PurchaseRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidatePurchase(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	err = h.lifecycleService.Purchase(r.Context(), accountID(r), req.BuyPrice, req.PotentialIncome)
	if err != nil {
		respondTransitionError(w, err, "failed to purchase account")
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Sell handles POST requests marking a purchased account as sold.
//
// Endpoint: POST /api/accounts/{id}/sell
// Request Body: SellRequest (sell_price)
// Response: 200 OK with success marker
// Error: 400 Bad Request if the price is invalid
// Error: 404 Not Found if the account does not exist
// Error: 409 Conflict if the account was never purchased or already resolved
func (h *LifecycleHandler) Sell(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.SellRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateSell(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	err = h.lifecycleService.Sell(r.Context(), accountID(r), req.SellPrice)
	if err != nil {
		respondTransitionError(w, err, "failed to sell account")
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Loss handles POST requests writing a purchased account off.
//
// Endpoint: POST /api/accounts/{id}/loss
// Request Body: LossRequest (loss_reason)
// Response: 200 OK with success marker
// Error: 400 Bad Request if the reason is empty
// Error: 404 Not Found if the account does not exist
// Error: 409 Conflict if the account was never purchased or already resolved
func (h *LifecycleHandler) Loss(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.LossRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateLoss(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	err = h.lifecycleService.ReportLoss(r.Context(), accountID(r), req.LossReason)
	if err != nil {
		respondTransitionError(w, err, "failed to report loss")
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// respondTransitionError maps lifecycle engine errors onto HTTP statuses:
// missing account to 404, illegal transition to 409, everything else 500.
func respondTransitionError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrAccountNotFound):
		response.RespondError(w, http.StatusNotFound, apperrors.ErrAccountNotFound.Error(), "")
	case errors.Is(err, apperrors.ErrNotPurchased):
		response.RespondError(w, http.StatusConflict, apperrors.ErrNotPurchased.Error(), "")
	case errors.Is(err, apperrors.ErrTerminalStatus):
		response.RespondError(w, http.StatusConflict, apperrors.ErrTerminalStatus.Error(), "")
	default:
		response.RespondError(w, http.StatusInternalServerError, fallback, err.Error())
	}
}
