package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ledgerly/ledgerly-backend/internal/apperrors"
)

// Error collects per-field validation messages.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(msgs, "; ")
}

// ValidateAccountID checks that a URL parameter is a positive integer ID.
func ValidateAccountID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s", apperrors.ErrInvalidAccountID, raw)
	}
	return id, nil
}
