package handlers

import (
	"errors"
	"net/http"

	"github.com/ledgerly/ledgerly-backend/internal/api/request"
	"github.com/ledgerly/ledgerly-backend/internal/api/response"
	"github.com/ledgerly/ledgerly-backend/internal/apperrors"
	"github.com/ledgerly/ledgerly-backend/internal/model"
	"github.com/ledgerly/ledgerly-backend/internal/service"
	"github.com/ledgerly/ledgerly-backend/internal/validation"
)

// AccountHandler handles HTTP requests for account CRUD endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the accountService.
type AccountHandler struct {
	accountService *service.AccountService
}

// NewAccountHandler creates a new AccountHandler with the provided service dependency.
func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

// ListAccounts handles GET requests to list accounts with optional filters.
//
// Endpoint: GET /api/accounts?status={status}&search={text}
// Response: 200 OK with array of AccountWithTransaction, updated_at descending
// Error: 400 Bad Request if status is not a lifecycle state
// Error: 500 Internal Server Error if retrieval fails
func (h *AccountHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	search := r.URL.Query().Get("search")

	if err := validation.ValidateStatusFilter(status); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	accounts, err := h.accountService.ListAccounts(model.AccountFilter{
		Status: model.Status(status),
		Search: search,
	})
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveAccounts.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, accounts)
}

// CreateAccount handles POST requests to create a new watchlist account.
//
// Endpoint: POST /api/accounts
// Request Body: CreateAccountRequest (identifier, link, category, expected_price, notes)
// Response: 201 Created with the new Account
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateAccountRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateAccount(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	account, err := h.accountService.CreateAccount(req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToCreateAccount.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, account)
}

// GetAccount handles GET requests for a single account.
//
// Endpoint: GET /api/accounts/{id}
// Response: 200 OK with AccountWithTransaction
// Error: 400 Bad Request if the ID is invalid (validated by middleware)
// Error: 404 Not Found if the account does not exist
// Error: 500 Internal Server Error if retrieval fails
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	account, err := h.accountService.GetAccount(accountID(r))
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAccountNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveAccount.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, account)
}

// UpdateAccount handles PUT requests for a partial account update. Status is
// never part of the payload; lifecycle endpoints own it.
//
// Endpoint: PUT /api/accounts/{id}
// Request Body: UpdateAccountRequest (any subset of patchable fields)
// Response: 200 OK with success marker
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if the account does not exist
// Error: 500 Internal Server Error if the update fails
func (h *AccountHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.UpdateAccountRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateAccount(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	if err := h.accountService.UpdateAccount(accountID(r), req); err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAccountNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToUpdateAccount.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// DeleteAccount handles DELETE requests. Deletion is idempotent: removing an
// unknown ID reports success because the desired end state holds.
//
// Endpoint: DELETE /api/accounts/{id}
// Response: 200 OK with success marker
// Error: 400 Bad Request if the ID is invalid (validated by middleware)
// Error: 500 Internal Server Error if the delete fails
func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	if err := h.accountService.DeleteAccount(accountID(r)); err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToDeleteAccount.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// CheckDuplicate handles GET requests probing whether a link is already
// tracked. This is a convenience pre-check for the frontend, not a
// uniqueness constraint.
//
// Endpoint: GET /api/accounts/check-duplicate?link={link}
// Response: 200 OK with DuplicateCheck
// Error: 400 Bad Request if link is missing
// Error: 500 Internal Server Error if the lookup fails
func (h *AccountHandler) CheckDuplicate(w http.ResponseWriter, r *http.Request) {
	link := r.URL.Query().Get("link")
	if link == "" {
		response.RespondError(w, http.StatusBadRequest, "link parameter is required", "")
		return
	}

	result, err := h.accountService.CheckDuplicateLink(link)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToCheckDuplicate.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, result)
}
