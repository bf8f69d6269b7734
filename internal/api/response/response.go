// Package response renders the JSON bodies every Ledgerly endpoint returns.
// All handlers go through these two helpers so payloads and error shapes
// stay uniform across the account, lifecycle and summary routes.
package response

import (
	"encoding/json"
	"log"
	"net/http"
)

// ErrorResponse is the error body shared by every endpoint. Error carries
// the short description; Details optionally holds per-field validation
// messages or the underlying failure.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// RespondJSON writes data as JSON with the given status code. A nil data
// sends the status alone. Encoding failures are logged; by then the status
// line is already on the wire, so the response cannot be rewritten.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("failed to encode JSON response: %v", err)
		}
	}
}

// RespondError sends an ErrorResponse with the given status code.
//
// Example:
//
//	response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
//	response.RespondError(w, http.StatusNotFound, apperrors.ErrAccountNotFound.Error(), "")
func RespondError(w http.ResponseWriter, status int, message string, details interface{}) {
	response := ErrorResponse{
		Error:   message,
		Details: details,
	}
	RespondJSON(w, status, response)
}
