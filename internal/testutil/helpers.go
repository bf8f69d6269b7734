package testutil

import (
	"database/sql"
	"testing"

	"github.com/ledgerly/ledgerly-backend/internal/repository"
	"github.com/ledgerly/ledgerly-backend/internal/secrets"
	"github.com/ledgerly/ledgerly-backend/internal/service"
)

// NewTestAccountService creates an AccountService with a pass-through
// encryptor, wired to the given test database.
func NewTestAccountService(t *testing.T, db *sql.DB) *service.AccountService {
	t.Helper()

	encryptor, err := secrets.New("")
	if err != nil {
		t.Fatalf("Failed to create pass-through encryptor: %v", err)
	}

	return service.NewAccountService(repository.NewAccountRepository(db), encryptor)
}

// NewTestAccountServiceWithEncryption creates an AccountService with a fresh
// fernet key, for tests that assert credentials are encrypted at rest.
func NewTestAccountServiceWithEncryption(t *testing.T, db *sql.DB) *service.AccountService {
	t.Helper()

	key, err := secrets.GenerateKey()
	if err != nil {
		t.Fatalf("Failed to generate test key: %v", err)
	}

	encryptor, err := secrets.New(key)
	if err != nil {
		t.Fatalf("Failed to create encryptor: %v", err)
	}

	return service.NewAccountService(repository.NewAccountRepository(db), encryptor)
}

// NewTestLifecycleService creates a LifecycleService wired to the given test database.
func NewTestLifecycleService(t *testing.T, db *sql.DB) *service.LifecycleService {
	t.Helper()

	return service.NewLifecycleService(
		db,
		repository.NewAccountRepository(db),
		repository.NewTransactionRepository(),
	)
}

// NewTestSummaryService creates a SummaryService wired to the given test database.
func NewTestSummaryService(t *testing.T, db *sql.DB) *service.SummaryService {
	t.Helper()

	return service.NewSummaryService(repository.NewSummaryRepository(db))
}
