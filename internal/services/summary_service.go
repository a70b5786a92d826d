package services

import (
	"context"
	"errors"

	apperrors "github.com/fadhlyaj09/Najwa-Pennywise/internal/errors"
	"github.com/fadhlyaj09/Najwa-Pennywise/internal/ledger"
	"github.com/fadhlyaj09/Najwa-Pennywise/internal/models"
)

// DefaultSpendingLimit applies to users who have never set a limit,
// in whole rupiah.
const DefaultSpendingLimit int64 = 5_000_000

// summaryService computes aggregate figures over a ledger snapshot.
type summaryService struct {
	store ledger.Store
}

// NewSummaryService creates a new SummaryServicer.
func NewSummaryService(store ledger.Store) SummaryServicer {
	return &summaryService{store: store}
}

// GetSummary folds the user's transactions and debts into totals.
func (s *summaryService) GetSummary(ctx context.Context, userID string) (*Summary, error) {
	transactions, err := s.store.ListTransactions(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	debts, err := s.store.ListDebts(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	limit, err := s.GetSpendingLimit(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := Summarize(transactions, debts)
	summary.SpendingLimit = limit
	return summary, nil
}

// GetSpendingLimit returns the user's limit, or the default when unset.
func (s *summaryService) GetSpendingLimit(ctx context.Context, userID string) (int64, error) {
	limit, err := s.store.GetSpendingLimit(ctx, userID)
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			return DefaultSpendingLimit, nil
		}
		return 0, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return limit, nil
}

// SetSpendingLimit stores a new limit for the user.
func (s *summaryService) SetSpendingLimit(ctx context.Context, userID string, limit int64) error {
	if limit < 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "spending limit cannot be negative")
	}
	if err := s.store.SetSpendingLimit(ctx, userID, limit); err != nil {
		return apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return nil
}

// Summarize computes the aggregate figures for a ledger snapshot. It is a
// pure fold with no failure modes; the spending limit is filled by callers.
func Summarize(transactions []models.Transaction, debts []models.Debt) *Summary {
	summary := &Summary{SpendingByCategory: make(map[string]int64)}

	for i := range transactions {
		switch transactions[i].Kind {
		case models.TransactionKindIncome:
			summary.TotalIncome += transactions[i].Amount
		case models.TransactionKindExpense:
			summary.TotalExpenses += transactions[i].Amount
			summary.SpendingByCategory[transactions[i].Category] += transactions[i].Amount
		}
	}
	summary.Balance = summary.TotalIncome - summary.TotalExpenses

	for i := range debts {
		if debts[i].Status == models.DebtStatusUnpaid {
			summary.TotalUnpaidDebt += debts[i].Amount
		}
	}

	return summary
}
