package services

import (
	"context"
	"sort"
	"time"

	apperrors "github.com/fadhlyaj09/Najwa-Pennywise/internal/errors"
	"github.com/fadhlyaj09/Najwa-Pennywise/internal/ledger"
	"github.com/fadhlyaj09/Najwa-Pennywise/internal/models"
	"github.com/fadhlyaj09/Najwa-Pennywise/internal/pagination"
	"github.com/fadhlyaj09/Najwa-Pennywise/internal/uuid"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	store      ledger.Store
	categories CategoryServicer
	debts      DebtServicer
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(store ledger.Store, categories CategoryServicer, debts DebtServicer) TransactionServicer {
	return &transactionService{
		store:      store,
		categories: categories,
		debts:      debts,
	}
}

// AddTransaction records a user-entered transaction. The category is
// resolved first: referencing an unknown name creates it, as a distinct and
// observable effect, before the transaction is written.
func (s *transactionService) AddTransaction(ctx context.Context, userID string, kind models.TransactionKind, category string, amount int64, date time.Time) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}
	if date.IsZero() {
		date = today()
	}

	if _, err := s.categories.EnsureCategory(ctx, userID, category, models.CategoryKind(kind)); err != nil {
		return nil, err
	}

	tx := &models.Transaction{
		Kind:     kind,
		Category: category,
		Amount:   amount,
		Date:     date,
	}
	tx.ID = uuid.New()

	if err := s.store.AppendTransaction(ctx, userID, tx); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return tx, nil
}

// ListTransactions returns a page of the user's transactions, newest first.
func (s *transactionService) ListTransactions(ctx context.Context, userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	transactions, err := s.store.ListTransactions(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}

	sortTransactionsByDateDesc(transactions)
	resp := pagination.Slice(transactions, page)
	return &resp, nil
}

// GetTransaction returns one of the user's transactions by ID.
func (s *transactionService) GetTransaction(ctx context.Context, userID, transactionID string) (*models.Transaction, error) {
	transactions, err := s.store.ListTransactions(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	for i := range transactions {
		if transactions[i].ID == transactionID {
			return &transactions[i], nil
		}
	}
	return nil, apperrors.ErrTransactionNotFound
}

// DeleteTransaction removes a transaction. Deletion always goes through the
// debt engine, which reconciles any debt linked to the transaction.
func (s *transactionService) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	return s.debts.DeleteTransaction(ctx, userID, transactionID)
}

// sortTransactionsByDateDesc orders transactions newest first, keeping the
// store's creation order within a day.
func sortTransactionsByDateDesc(transactions []models.Transaction) {
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date.After(transactions[j].Date)
	})
}
