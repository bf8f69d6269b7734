package repository

import (
	"database/sql"
	"fmt"
	"time"
)

// Queryer is the subset of database operations shared by *sql.DB and
// *sql.Tx. Lifecycle transitions pass a *sql.Tx so both statements of a
// transition commit atomically.
type Queryer interface {
	Exec(query string, args ...any) (sql.Result, error)
	QueryRow(query string, args ...any) *sql.Row
}

// timeLayout is the storage format for timestamps written by the engine.
// Sub-second precision keeps updated_at strictly increasing across
// back-to-back writes, which CURRENT_TIMESTAMP's one-second resolution
// cannot guarantee. The fractional part is zero-padded to a fixed nine
// digits: SQLite compares these columns as strings, and variable-width
// fractions would break ORDER BY for prefix-related values within the
// same second.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// FormatTime renders t in the storage layout.
func FormatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// ParseTime parses a timestamp in the storage layout, falling back to the
// formats SQLite's CURRENT_TIMESTAMP and date-only columns produce.
// time.RFC3339Nano accepts the padded storage layout as well as rows
// written before the fraction width was fixed.
func ParseTime(str string) (time.Time, error) {
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02",
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, str); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("failed to parse timestamp %q", str)
}
