package service

import (
	"fmt"
	"time"

	"github.com/ledgerly/ledgerly-backend/internal/api/request"
	"github.com/ledgerly/ledgerly-backend/internal/model"
	"github.com/ledgerly/ledgerly-backend/internal/repository"
	"github.com/ledgerly/ledgerly-backend/internal/secrets"
)

// AccountService handles account CRUD business logic. Credential fields pass
// through the encryptor on the way in and out of storage; the rest of the
// system only ever sees ciphertext.
type AccountService struct {
	accountRepo *repository.AccountRepository
	encryptor   *secrets.Encryptor
}

// NewAccountService creates a new AccountService with the provided dependencies.
func NewAccountService(accountRepo *repository.AccountRepository, encryptor *secrets.Encryptor) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		encryptor:   encryptor,
	}
}

// CreateAccount creates a new account on the watchlist. No transaction row
// exists until the account is purchased.
func (s *AccountService) CreateAccount(req request.CreateAccountRequest) (model.Account, error) {
	now := time.Now().UTC()

	account := model.Account{
		Identifier:    req.Identifier,
		Link:          req.Link,
		Category:      req.Category,
		ThumbnailURL:  req.ThumbnailURL,
		Status:        model.StatusWatchlist,
		ExpectedPrice: req.ExpectedPrice,
		Notes:         req.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.accountRepo.Create(&account); err != nil {
		return model.Account{}, fmt.Errorf("failed to create account: %w", err)
	}

	return account, nil
}

// GetAccount retrieves one account with its transaction fields, credentials
// decrypted.
func (s *AccountService) GetAccount(id int64) (model.AccountWithTransaction, error) {
	account, err := s.accountRepo.GetByID(id)
	if err != nil {
		return model.AccountWithTransaction{}, err
	}

	s.decryptCredentials(&account.Account)
	return account, nil
}

// ListAccounts retrieves accounts matching the filter, most recently touched
// first, credentials decrypted.
func (s *AccountService) ListAccounts(filter model.AccountFilter) ([]model.AccountWithTransaction, error) {
	accounts, err := s.accountRepo.List(filter)
	if err != nil {
		return nil, err
	}

	for i := range accounts {
		s.decryptCredentials(&accounts[i].Account)
	}

	return accounts, nil
}

// UpdateAccount applies a partial field update. Status never changes here
// and updated_at is refreshed even when no field is supplied.
func (s *AccountService) UpdateAccount(id int64, req request.UpdateAccountRequest) error {
	upd := model.AccountUpdate{
		Identifier:      req.Identifier,
		Link:            req.Link,
		Category:        req.Category,
		ThumbnailURL:    req.ThumbnailURL,
		ExpectedPrice:   req.ExpectedPrice,
		PotentialIncome: req.PotentialIncome,
		Notes:           req.Notes,
	}

	var err error
	if upd.Email, err = s.encryptField(req.Email); err != nil {
		return err
	}
	if upd.Password, err = s.encryptField(req.Password); err != nil {
		return err
	}
	if upd.AccountEmail, err = s.encryptField(req.AccountEmail); err != nil {
		return err
	}
	if upd.AccountPassword, err = s.encryptField(req.AccountPassword); err != nil {
		return err
	}
	if upd.Account2ndEmail, err = s.encryptField(req.Account2ndEmail); err != nil {
		return err
	}
	if upd.Account2ndPassword, err = s.encryptField(req.Account2ndPassword); err != nil {
		return err
	}

	return s.accountRepo.Update(id, upd, time.Now().UTC())
}

// DeleteAccount removes an account and, via cascade, its transaction row.
// Deleting an unknown ID succeeds; the end state is the same either way.
func (s *AccountService) DeleteAccount(id int64) error {
	return s.accountRepo.Delete(id)
}

// CheckDuplicateLink reports whether another account already carries the
// given link, and which one.
func (s *AccountService) CheckDuplicateLink(link string) (model.DuplicateCheck, error) {
	return s.accountRepo.FindByLink(link)
}

func (s *AccountService) encryptField(value *string) (*string, error) {
	if value == nil {
		return nil, nil
	}

	encrypted, err := s.encryptor.Encrypt(*value)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt credential field: %w", err)
	}

	return &encrypted, nil
}

func (s *AccountService) decryptCredentials(a *model.Account) {
	a.Email = s.encryptor.Decrypt(a.Email)
	a.Password = s.encryptor.Decrypt(a.Password)
	a.AccountEmail = s.encryptor.Decrypt(a.AccountEmail)
	a.AccountPassword = s.encryptor.Decrypt(a.AccountPassword)
	a.Account2ndEmail = s.encryptor.Decrypt(a.Account2ndEmail)
	a.Account2ndPassword = s.encryptor.Decrypt(a.Account2ndPassword)
}
