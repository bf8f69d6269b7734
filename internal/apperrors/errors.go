package apperrors

import "errors"

// Domain entity errors represent missing entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrAccountNotFound indicates that an account with the given ID does not exist.
	ErrAccountNotFound = errors.New("account not found")

	// ErrTransactionNotFound indicates that an account has no transaction record.
	ErrTransactionNotFound = errors.New("transaction not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
// Per-field validation messages live in the validation package; only errors
// that cross package boundaries get a sentinel here.
var (
	// ErrInvalidAccountID indicates that a provided ID is not a positive integer.
	ErrInvalidAccountID = errors.New("invalid account ID")
)

// Lifecycle errors represent transitions attempted from a status that does
// not permit them.
var (
	// ErrNotPurchased indicates a sale or loss was attempted on an account
	// that was never purchased.
	ErrNotPurchased = errors.New("account has not been purchased")

	// ErrTerminalStatus indicates a transition was attempted on an account
	// already sold or written off.
	ErrTerminalStatus = errors.New("account is in a terminal status")
)

// Operation failure errors represent system-level failures when retrieving or
// processing data. These are not caused by missing entities or bad input.
var (
	ErrFailedToRetrieveAccounts = errors.New("failed to retrieve accounts")
	ErrFailedToRetrieveAccount  = errors.New("failed to retrieve account")
	ErrFailedToCreateAccount    = errors.New("failed to create account")
	ErrFailedToUpdateAccount    = errors.New("failed to update account")
	ErrFailedToDeleteAccount    = errors.New("failed to delete account")
	ErrFailedToGetSummary       = errors.New("failed to get financial summary")
	ErrFailedToCheckDuplicate   = errors.New("failed to check for duplicate link")
)
