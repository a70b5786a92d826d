// Package ledger defines the storage port for a user's ledger: transactions,
// categories, debts, and the monthly spending limit. The production backend
// is Postgres; a Google Sheets backend implements the same contract against
// the spreadsheet the data originally lived in.
package ledger

import (
	"context"
	"errors"

	"github.com/fadhlyaj09/Najwa-Pennywise/internal/models"
)

// ErrNotFound is returned by store implementations when a record does not
// exist. Services translate it into the appropriate AppError.
var ErrNotFound = errors.New("ledger: record not found")

// Store is the persistence port for one user's ledger. Every call can fail:
// both backends sit behind a network. No implementation retries on its own;
// failures surface to the caller.
//
// Store implementations provide single-operation durability only. The debt
// engine composes multi-step operations with compensating actions, so the
// contract deliberately has no transaction primitive.
type Store interface {
	// Users
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error

	// Transactions
	ListTransactions(ctx context.Context, userID string) ([]models.Transaction, error)
	AppendTransaction(ctx context.Context, userID string, tx *models.Transaction) error
	DeleteTransaction(ctx context.Context, transactionID string) error

	// Debts
	ListDebts(ctx context.Context, userID string) ([]models.Debt, error)
	AppendDebt(ctx context.Context, userID string, debt *models.Debt) error
	UpdateDebt(ctx context.Context, userID string, debt *models.Debt) error
	DeleteDebt(ctx context.Context, debtID string) error

	// Categories
	ListCategories(ctx context.Context, userID string) ([]models.Category, error)
	AppendCategory(ctx context.Context, userID string, category *models.Category) error
	DeleteCategory(ctx context.Context, categoryID string) error

	// Spending limit. GetSpendingLimit returns ErrNotFound when the user has
	// never set one; the service layer applies the default.
	GetSpendingLimit(ctx context.Context, userID string) (int64, error)
	SetSpendingLimit(ctx context.Context, userID string, limit int64) error
}
