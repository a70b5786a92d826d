package services

import (
	"context"
	"time"

	"github.com/fadhlyaj09/Najwa-Pennywise/internal/models"
	"github.com/fadhlyaj09/Najwa-Pennywise/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	Register(ctx context.Context, email, password, name string) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// CategoryServicer defines the contract for the category resolver.
type CategoryServicer interface {
	// EnsureCategory returns the category with the given (name, kind),
	// creating a non-fixed one when absent. Lookup is case-insensitive and
	// the call is idempotent.
	EnsureCategory(ctx context.Context, userID, name string, kind models.CategoryKind) (*models.Category, error)
	AddCategory(ctx context.Context, userID, name string, kind models.CategoryKind) (*models.Category, error)
	DeleteCategory(ctx context.Context, userID, categoryID string) error
	ListCategories(ctx context.Context, userID string, kind *models.CategoryKind) ([]models.Category, error)
	// SeedFixedCategories appends exactly the built-in categories the user is
	// missing. Existing same-named categories are never duplicated or removed.
	SeedFixedCategories(ctx context.Context, userID string) error
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	AddTransaction(ctx context.Context, userID string, kind models.TransactionKind, category string, amount int64, date time.Time) (*models.Transaction, error)
	ListTransactions(ctx context.Context, userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	GetTransaction(ctx context.Context, userID, transactionID string) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
}

// DebtServicer is the debt reconciliation engine. All cross-collection
// mutation between debts and transactions goes through these operations and
// nowhere else.
type DebtServicer interface {
	CreateDebt(ctx context.Context, userID, debtorName string, amount int64, description string, dueDate time.Time) (*models.Debt, error)
	SettleDebt(ctx context.Context, userID, debtID string) (*models.Debt, error)
	DeleteDebt(ctx context.Context, userID, debtID string) error
	// DeleteTransaction is the entry point from the general transaction list.
	// Deleting a lending transaction cascades to its debt; deleting a
	// repayment transaction reverts its debt to unpaid.
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
	ListDebts(ctx context.Context, userID string) ([]models.Debt, error)
}

// Summary holds the aggregate figures computed from a ledger snapshot.
type Summary struct {
	TotalIncome        int64            `json:"total_income"`
	TotalExpenses      int64            `json:"total_expenses"`
	Balance            int64            `json:"balance"`
	SpendingByCategory map[string]int64 `json:"spending_by_category"`
	TotalUnpaidDebt    int64            `json:"total_unpaid_debt"`
	SpendingLimit      int64            `json:"spending_limit"`
}

// SummaryServicer computes aggregates and manages the spending limit.
type SummaryServicer interface {
	GetSummary(ctx context.Context, userID string) (*Summary, error)
	GetSpendingLimit(ctx context.Context, userID string) (int64, error)
	SetSpendingLimit(ctx context.Context, userID string, limit int64) error
}

// ReportServicer generates the natural-language monthly report.
type ReportServicer interface {
	MonthlyReport(ctx context.Context, userID string, year int, month time.Month) (string, error)
}
