package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/ledgerly/ledgerly-backend/internal/apperrors"
	"github.com/ledgerly/ledgerly-backend/internal/model"
)

// AccountRepository provides data access methods for the accounts table.
// Lifecycle transition writes accept a Queryer so the service layer can run
// them inside a single SQL transaction together with the paired transaction
// row write.
type AccountRepository struct {
	db *sql.DB
}

// NewAccountRepository creates a new AccountRepository with the provided database connection.
func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// accountColumns is the select list shared by GetByID and List. The order
// must match scanAccountRow.
const accountColumns = `
	a.id, a.identifier, a.link, a.thumbnail_url, a.category, a.status,
	a.expected_price, a.potential_income, a.loss_reason,
	a.email, a.password, a.account_email, a.account_password,
	a.account_2nd_email, a.account_2nd_password,
	a.notes, a.created_at, a.updated_at,
	t.buy_price, t.sell_price, t.transaction_date
`

// Create inserts a new account and stores the generated ID back on a.
// CreatedAt and UpdatedAt must already be set by the caller.
func (s *AccountRepository) Create(a *model.Account) error {
	query := `
		INSERT INTO accounts (
			identifier, link, thumbnail_url, category, status,
			expected_price, potential_income, loss_reason,
			email, password, account_email, account_password,
			account_2nd_email, account_2nd_password,
			notes, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := s.db.Exec(query,
		a.Identifier,
		a.Link,
		a.ThumbnailURL,
		a.Category,
		string(a.Status),
		a.ExpectedPrice,
		a.PotentialIncome,
		a.LossReason,
		a.Email,
		a.Password,
		a.AccountEmail,
		a.AccountPassword,
		a.Account2ndEmail,
		a.Account2ndPassword,
		a.Notes,
		FormatTime(a.CreatedAt),
		FormatTime(a.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert account: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read inserted account ID: %w", err)
	}
	a.ID = id

	return nil
}

// GetByID retrieves a single account joined with its optional transaction.
// Returns apperrors.ErrAccountNotFound if the ID does not exist.
func (s *AccountRepository) GetByID(id int64) (model.AccountWithTransaction, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts a
		LEFT JOIN transactions t ON a.id = t.account_id
		WHERE a.id = ?
	`

	row := s.db.QueryRow(query, id)
	account, err := scanAccountRow(row.Scan)
	if err == sql.ErrNoRows {
		return model.AccountWithTransaction{}, apperrors.ErrAccountNotFound
	}
	if err != nil {
		return model.AccountWithTransaction{}, fmt.Errorf("failed to scan account: %w", err)
	}

	return account, nil
}

// List retrieves accounts joined with their transaction fields, most
// recently touched first. The filter's Status narrows to one lifecycle
// state; Search matches identifier, category or notes as a case-insensitive
// substring. An empty search string is a no-op filter.
func (s *AccountRepository) List(filter model.AccountFilter) ([]model.AccountWithTransaction, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts a
		LEFT JOIN transactions t ON a.id = t.account_id
	`

	var conditions []string
	var args []any

	if filter.Status != "" {
		conditions = append(conditions, "a.status = ?")
		args = append(args, string(filter.Status))
	}
	if filter.Search != "" {
		conditions = append(conditions, "(a.identifier LIKE ? OR a.category LIKE ? OR a.notes LIKE ?)")
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern, pattern)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY a.updated_at DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts table: %w", err)
	}
	defer rows.Close()

	accounts := []model.AccountWithTransaction{}
	for rows.Next() {
		account, err := scanAccountRow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan accounts table results: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating accounts table: %w", err)
	}

	return accounts, nil
}

// Update applies the non-nil fields of upd and stamps updated_at with now.
// Status is not updatable through this method. Returns
// apperrors.ErrAccountNotFound if the ID does not exist.
func (s *AccountRepository) Update(id int64, upd model.AccountUpdate, now time.Time) error {
	sets := []string{}
	args := []any{}

	// Bounded column list: each patchable field maps to a fixed column, so
	// callers can never smuggle in arbitrary column names.
	add := func(column string, value any) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}

	if upd.Identifier != nil {
		add("identifier", *upd.Identifier)
	}
	if upd.Link != nil {
		add("link", *upd.Link)
	}
	if upd.Category != nil {
		add("category", *upd.Category)
	}
	if upd.ThumbnailURL != nil {
		add("thumbnail_url", *upd.ThumbnailURL)
	}
	if upd.ExpectedPrice != nil {
		add("expected_price", *upd.ExpectedPrice)
	}
	if upd.PotentialIncome != nil {
		add("potential_income", *upd.PotentialIncome)
	}
	if upd.Email != nil {
		add("email", *upd.Email)
	}
	if upd.Password != nil {
		add("password", *upd.Password)
	}
	if upd.AccountEmail != nil {
		add("account_email", *upd.AccountEmail)
	}
	if upd.AccountPassword != nil {
		add("account_password", *upd.AccountPassword)
	}
	if upd.Account2ndEmail != nil {
		add("account_2nd_email", *upd.Account2ndEmail)
	}
	if upd.Account2ndPassword != nil {
		add("account_2nd_password", *upd.Account2ndPassword)
	}
	if upd.Notes != nil {
		add("notes", *upd.Notes)
	}

	// Every successful mutation refreshes updated_at, even a no-field patch.
	add("updated_at", FormatTime(now))
	args = append(args, id)

	query := "UPDATE accounts SET " + strings.Join(sets, ", ") + " WHERE id = ?"

	result, err := s.db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrAccountNotFound
	}

	return nil
}

// Delete removes an account; the transactions row cascades. Deleting an
// unknown ID is not an error.
func (s *AccountRepository) Delete(id int64) error {
	if _, err := s.db.Exec("DELETE FROM accounts WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return nil
}

// GetStatus reads the current lifecycle status of an account. Returns
// apperrors.ErrAccountNotFound if the ID does not exist.
func (s *AccountRepository) GetStatus(q Queryer, id int64) (model.Status, error) {
	var status string
	err := q.QueryRow("SELECT status FROM accounts WHERE id = ?", id).Scan(&status)
	if err == sql.ErrNoRows {
		return "", apperrors.ErrAccountNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read account status: %w", err)
	}
	return model.Status(status), nil
}

// SetPurchased moves an account to purchased and records the caller's resale
// estimate.
func (s *AccountRepository) SetPurchased(q Queryer, id int64, potentialIncome float64, now time.Time) error {
	query := "UPDATE accounts SET status = ?, potential_income = ?, updated_at = ? WHERE id = ?"
	if _, err := q.Exec(query, string(model.StatusPurchased), potentialIncome, FormatTime(now), id); err != nil {
		return fmt.Errorf("failed to mark account purchased: %w", err)
	}
	return nil
}

// SetSold moves an account to the sold terminal state.
func (s *AccountRepository) SetSold(q Queryer, id int64, now time.Time) error {
	query := "UPDATE accounts SET status = ?, updated_at = ? WHERE id = ?"
	if _, err := q.Exec(query, string(model.StatusSold), FormatTime(now), id); err != nil {
		return fmt.Errorf("failed to mark account sold: %w", err)
	}
	return nil
}

// SetLost moves an account to the losses terminal state and records why.
func (s *AccountRepository) SetLost(q Queryer, id int64, reason string, now time.Time) error {
	query := "UPDATE accounts SET status = ?, loss_reason = ?, updated_at = ? WHERE id = ?"
	if _, err := q.Exec(query, string(model.StatusLosses), reason, FormatTime(now), id); err != nil {
		return fmt.Errorf("failed to mark account lost: %w", err)
	}
	return nil
}

// FindByLink probes for an existing account with the same link. Used as a
// convenience pre-check by the frontend; link uniqueness is not a schema
// constraint.
func (s *AccountRepository) FindByLink(link string) (model.DuplicateCheck, error) {
	var identifier string
	err := s.db.QueryRow("SELECT identifier FROM accounts WHERE link = ? LIMIT 1", link).Scan(&identifier)
	if err == sql.ErrNoRows {
		return model.DuplicateCheck{}, nil
	}
	if err != nil {
		return model.DuplicateCheck{}, fmt.Errorf("failed to query accounts by link: %w", err)
	}

	return model.DuplicateCheck{Exists: true, Identifier: identifier}, nil
}

// scanAccountRow scans one joined account row. It accepts the Scan method of
// either *sql.Row or *sql.Rows.
func scanAccountRow(scan func(dest ...any) error) (model.AccountWithTransaction, error) {
	var a model.AccountWithTransaction
	var link, thumbnailURL, category, lossReason sql.NullString
	var email, password, accountEmail, accountPassword sql.NullString
	var account2ndEmail, account2ndPassword, notes sql.NullString
	var expectedPrice, potentialIncome sql.NullFloat64
	var status, createdAtStr, updatedAtStr string
	var buyPrice, sellPrice sql.NullFloat64
	var transactionDateStr sql.NullString

	err := scan(
		&a.ID,
		&a.Identifier,
		&link,
		&thumbnailURL,
		&category,
		&status,
		&expectedPrice,
		&potentialIncome,
		&lossReason,
		&email,
		&password,
		&accountEmail,
		&accountPassword,
		&account2ndEmail,
		&account2ndPassword,
		&notes,
		&createdAtStr,
		&updatedAtStr,
		&buyPrice,
		&sellPrice,
		&transactionDateStr,
	)
	if err != nil {
		return model.AccountWithTransaction{}, err
	}

	a.Link = link.String
	a.ThumbnailURL = thumbnailURL.String
	a.Category = category.String
	a.Status = model.Status(status)
	a.ExpectedPrice = expectedPrice.Float64
	a.PotentialIncome = potentialIncome.Float64
	a.LossReason = lossReason.String
	a.Email = email.String
	a.Password = password.String
	a.AccountEmail = accountEmail.String
	a.AccountPassword = accountPassword.String
	a.Account2ndEmail = account2ndEmail.String
	a.Account2ndPassword = account2ndPassword.String
	a.Notes = notes.String

	a.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.AccountWithTransaction{}, err
	}
	a.UpdatedAt, err = ParseTime(updatedAtStr)
	if err != nil {
		return model.AccountWithTransaction{}, err
	}

	if buyPrice.Valid {
		a.BuyPrice = &buyPrice.Float64
	}
	if sellPrice.Valid {
		a.SellPrice = &sellPrice.Float64
	}
	if transactionDateStr.Valid {
		transactionDate, err := ParseTime(transactionDateStr.String)
		if err != nil {
			return model.AccountWithTransaction{}, err
		}
		a.TransactionDate = &transactionDate
	}

	return a, nil
}
