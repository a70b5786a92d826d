package services

import (
	"context"
	"errors"
	"time"

	apperrors "github.com/fadhlyaj09/Najwa-Pennywise/internal/errors"
	"github.com/fadhlyaj09/Najwa-Pennywise/internal/ledger"
	"github.com/fadhlyaj09/Najwa-Pennywise/internal/logger"
	"github.com/fadhlyaj09/Najwa-Pennywise/internal/models"
	"github.com/fadhlyaj09/Najwa-Pennywise/internal/uuid"
)

// debtService keeps debts and their paired transactions reconciled. Every
// operation that touches both collections runs under the user's lock and
// rolls partial writes back with compensating actions, since neither storage
// backend offers a cross-collection transaction.
type debtService struct {
	store      ledger.Store
	categories CategoryServicer
	locks      *userLocks
}

// NewDebtService creates a new DebtServicer.
func NewDebtService(store ledger.Store, categories CategoryServicer) DebtServicer {
	return &debtService{
		store:      store,
		categories: categories,
		locks:      newUserLocks(),
	}
}

// CreateDebt records money lent to someone: one "Lending" expense
// transaction and one unpaid debt linking it, created as a pair.
func (s *debtService) CreateDebt(ctx context.Context, userID, debtorName string, amount int64, description string, dueDate time.Time) (*models.Debt, error) {
	if debtorName == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "debtor name is required")
	}
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}

	unlock := s.locks.lock(userID)
	defer unlock()

	if _, err := s.categories.EnsureCategory(ctx, userID, models.CategoryLending, models.CategoryKindExpense); err != nil {
		return nil, err
	}

	lending := &models.Transaction{
		Kind:     models.TransactionKindExpense,
		Category: models.CategoryLending,
		Amount:   amount,
		Date:     today(),
	}
	lending.ID = uuid.New()

	if err := s.store.AppendTransaction(ctx, userID, lending); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}

	debt := &models.Debt{
		DebtorName:           debtorName,
		Amount:               amount,
		Description:          description,
		DueDate:              dueDate,
		Status:               models.DebtStatusUnpaid,
		LendingTransactionID: lending.ID,
	}
	debt.ID = uuid.New()

	if err := s.store.AppendDebt(ctx, userID, debt); err != nil {
		// Roll back the lending transaction so no orphaned expense remains.
		if rbErr := s.store.DeleteTransaction(ctx, lending.ID); rbErr != nil {
			logger.Get().Errorw("failed to roll back lending transaction",
				"user_id", userID,
				"transaction_id", lending.ID,
				"error", rbErr.Error(),
			)
		}
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}

	return debt, nil
}

// SettleDebt marks a debt as paid and records the matching "Debt Repayment"
// income transaction. Settling an already-paid debt fails without writing
// anything; a second repayment transaction is never created.
func (s *debtService) SettleDebt(ctx context.Context, userID, debtID string) (*models.Debt, error) {
	unlock := s.locks.lock(userID)
	defer unlock()

	debt, err := s.findDebt(ctx, userID, debtID)
	if err != nil {
		return nil, err
	}
	if debt.IsPaid() {
		return nil, apperrors.ErrDebtAlreadyPaid
	}

	if _, err := s.categories.EnsureCategory(ctx, userID, models.CategoryDebtRepayment, models.CategoryKindIncome); err != nil {
		return nil, err
	}

	repayment := &models.Transaction{
		Kind:     models.TransactionKindIncome,
		Category: models.CategoryDebtRepayment,
		Amount:   debt.Amount,
		Date:     today(),
	}
	repayment.ID = uuid.New()

	if err := s.store.AppendTransaction(ctx, userID, repayment); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}

	debt.Status = models.DebtStatusPaid
	debt.RepaymentTransactionID = &repayment.ID

	if err := s.store.UpdateDebt(ctx, userID, debt); err != nil {
		// Roll back the repayment transaction; the debt stays unpaid.
		if rbErr := s.store.DeleteTransaction(ctx, repayment.ID); rbErr != nil {
			logger.Get().Errorw("failed to roll back repayment transaction",
				"user_id", userID,
				"transaction_id", repayment.ID,
				"error", rbErr.Error(),
			)
		}
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}

	return debt, nil
}

// DeleteDebt removes a debt together with its lending transaction and, when
// paid, its repayment transaction.
func (s *debtService) DeleteDebt(ctx context.Context, userID, debtID string) error {
	unlock := s.locks.lock(userID)
	defer unlock()

	debt, err := s.findDebt(ctx, userID, debtID)
	if err != nil {
		return err
	}
	return s.deleteDebtCascade(ctx, userID, debt)
}

// DeleteTransaction deletes a transaction from the general list, reconciling
// any debt linked to it. Exactly one branch applies: a lending link cascades
// to the whole debt, a repayment link reverts the debt to unpaid, and an
// unlinked transaction is deleted with no side effects.
func (s *debtService) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	unlock := s.locks.lock(userID)
	defer unlock()

	transactions, err := s.store.ListTransactions(ctx, userID)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	var target *models.Transaction
	for i := range transactions {
		if transactions[i].ID == transactionID {
			target = &transactions[i]
			break
		}
	}
	if target == nil {
		return apperrors.ErrTransactionNotFound
	}

	debts, err := s.store.ListDebts(ctx, userID)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}

	for i := range debts {
		if debts[i].LendingTransactionID == transactionID {
			// Deleting the lending transaction deletes the owning debt too.
			return s.deleteDebtCascade(ctx, userID, &debts[i])
		}
	}

	for i := range debts {
		debt := debts[i]
		if debt.RepaymentTransactionID == nil || *debt.RepaymentTransactionID != transactionID {
			continue
		}

		// Revert the debt before removing its repayment transaction, so a
		// paid debt never points at a transaction that no longer exists.
		reverted := debt
		reverted.Status = models.DebtStatusUnpaid
		reverted.RepaymentTransactionID = nil
		if err := s.store.UpdateDebt(ctx, userID, &reverted); err != nil {
			return apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
		}

		if err := s.store.DeleteTransaction(ctx, transactionID); err != nil && !errors.Is(err, ledger.ErrNotFound) {
			// Restore the paid state; the repayment transaction still exists.
			if rbErr := s.store.UpdateDebt(ctx, userID, &debt); rbErr != nil {
				logger.Get().Errorw("failed to restore debt after repayment delete failure",
					"user_id", userID,
					"debt_id", debt.ID,
					"error", rbErr.Error(),
				)
			}
			return apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
		}
		return nil
	}

	if err := s.store.DeleteTransaction(ctx, transactionID); err != nil && !errors.Is(err, ledger.ErrNotFound) {
		return apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return nil
}

// ListDebts returns the user's debts.
func (s *debtService) ListDebts(ctx context.Context, userID string) ([]models.Debt, error) {
	debts, err := s.store.ListDebts(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return debts, nil
}

// findDebt loads one of the user's debts by ID.
func (s *debtService) findDebt(ctx context.Context, userID, debtID string) (*models.Debt, error) {
	debts, err := s.store.ListDebts(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	for i := range debts {
		if debts[i].ID == debtID {
			return &debts[i], nil
		}
	}
	return nil, apperrors.ErrDebtNotFound
}

// deleteDebtCascade removes the debt record and both linked transactions as
// one logical unit. The debt record goes first so no debt ever references a
// deleted transaction; failures on the transaction side re-append the debt.
func (s *debtService) deleteDebtCascade(ctx context.Context, userID string, debt *models.Debt) error {
	if err := s.store.DeleteDebt(ctx, debt.ID); err != nil && !errors.Is(err, ledger.ErrNotFound) {
		return apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}

	if err := s.store.DeleteTransaction(ctx, debt.LendingTransactionID); err != nil && !errors.Is(err, ledger.ErrNotFound) {
		if rbErr := s.store.AppendDebt(ctx, userID, debt); rbErr != nil {
			logger.Get().Errorw("failed to restore debt after lending delete failure",
				"user_id", userID,
				"debt_id", debt.ID,
				"error", rbErr.Error(),
			)
		}
		return apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}

	if debt.IsPaid() && debt.RepaymentTransactionID != nil {
		if err := s.store.DeleteTransaction(ctx, *debt.RepaymentTransactionID); err != nil && !errors.Is(err, ledger.ErrNotFound) {
			// The lending transaction is already gone; leaving the repayment
			// transaction behind would detach it from any debt. Surface the
			// failure loudly so the orphan can be cleaned up.
			logger.Get().Errorw("repayment transaction left orphaned by partial debt deletion",
				"user_id", userID,
				"debt_id", debt.ID,
				"transaction_id", *debt.RepaymentTransactionID,
				"error", err.Error(),
			)
			return apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
		}
	}

	return nil
}

// today returns the current calendar date with no time component.
func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
