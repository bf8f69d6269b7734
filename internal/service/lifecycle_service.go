package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ledgerly/ledgerly-backend/internal/apperrors"
	"github.com/ledgerly/ledgerly-backend/internal/model"
	"github.com/ledgerly/ledgerly-backend/internal/repository"
)

// LifecycleService is the status transition engine. It enforces the only
// legal lifecycle:
//
//	watchlist -> purchased -> sold | losses
//
// Terminal states reject every transition, and sold/losses cannot be reached
// without passing through purchased. Each transition touches two tables
// (account status plus the paired transaction row), so every transition runs
// inside a single SQL transaction.
type LifecycleService struct {
	db              *sql.DB
	accountRepo     *repository.AccountRepository
	transactionRepo *repository.TransactionRepository
}

// NewLifecycleService creates a new LifecycleService with the provided dependencies.
func NewLifecycleService(
	db *sql.DB,
	accountRepo *repository.AccountRepository,
	transactionRepo *repository.TransactionRepository,
) *LifecycleService {
	return &LifecycleService{
		db:              db,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

// Purchase moves an account to purchased, records the resale estimate and
// upserts the transaction's buy price. Calling it again while still
// purchased overwrites the buy price; only the latest one survives.
// Fails with apperrors.ErrAccountNotFound for unknown IDs and
// apperrors.ErrTerminalStatus for sold or lost accounts.
func (s *LifecycleService) Purchase(ctx context.Context, id int64, buyPrice, potentialIncome float64) error {
	return s.transition(ctx, func(tx *sql.Tx, status model.Status, now time.Time) error {
		if status.Terminal() {
			return apperrors.ErrTerminalStatus
		}

		if err := s.accountRepo.SetPurchased(tx, id, potentialIncome, now); err != nil {
			return err
		}
		return s.transactionRepo.UpsertBuy(tx, id, buyPrice, now)
	}, id)
}

// Sell moves a purchased account to sold and records the sale price on its
// transaction row. Fails with apperrors.ErrNotPurchased when the account is
// still on the watchlist and apperrors.ErrTerminalStatus when it already
// resolved.
func (s *LifecycleService) Sell(ctx context.Context, id int64, sellPrice float64) error {
	return s.transition(ctx, func(tx *sql.Tx, status model.Status, now time.Time) error {
		if status.Terminal() {
			return apperrors.ErrTerminalStatus
		}
		if status != model.StatusPurchased {
			return apperrors.ErrNotPurchased
		}

		// A purchased account without a transaction row means the two
		// tables disagree; surface it as the state error it is.
		if _, err := s.transactionRepo.GetByAccountID(tx, id); err != nil {
			if errors.Is(err, apperrors.ErrTransactionNotFound) {
				return apperrors.ErrNotPurchased
			}
			return err
		}

		if err := s.transactionRepo.SetSellPrice(tx, id, sellPrice, now); err != nil {
			return err
		}
		return s.accountRepo.SetSold(tx, id, now)
	}, id)
}

// ReportLoss writes a purchased account off. The buy price stays on the
// transaction row untouched: the aggregator derives totalLost from it by
// joining on the losses status, so no zero "sale" is recorded.
func (s *LifecycleService) ReportLoss(ctx context.Context, id int64, reason string) error {
	return s.transition(ctx, func(tx *sql.Tx, status model.Status, now time.Time) error {
		if status.Terminal() {
			return apperrors.ErrTerminalStatus
		}
		if status != model.StatusPurchased {
			return apperrors.ErrNotPurchased
		}

		return s.accountRepo.SetLost(tx, id, reason, now)
	}, id)
}

// transition runs fn inside a transaction after resolving the account's
// current status. The status read and the writes share the transaction, so
// the check cannot race a concurrent transition.
func (s *LifecycleService) transition(ctx context.Context, fn func(tx *sql.Tx, status model.Status, now time.Time) error, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	status, err := s.accountRepo.GetStatus(tx, id)
	if err != nil {
		return err
	}

	if err := fn(tx, status, time.Now().UTC()); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transition: %w", err)
	}

	return nil
}
