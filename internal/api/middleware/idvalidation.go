// Package middleware provides HTTP middleware for request validation and processing.
package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ledgerly/ledgerly-backend/internal/api/response"
	"github.com/ledgerly/ledgerly-backend/internal/validation"
)

// ValidateAccountIDMiddleware validates that the id URL parameter is present
// and is a positive integer. Returns 400 Bad Request otherwise, so handlers
// behind it can parse the parameter without re-checking.
//
// Example usage in router:
//
//	r.Route("/{id}", func(r chi.Router) {
//	    r.Use(middleware.ValidateAccountIDMiddleware)
//	    r.Get("/", handler.GetAccount)
//	    r.Put("/", handler.UpdateAccount)
//	})
func ValidateAccountIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if id == "" {
			response.RespondError(w, http.StatusBadRequest, "account ID is required", "")
			return
		}

		if _, err := validation.ValidateAccountID(id); err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid account ID", err.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}
