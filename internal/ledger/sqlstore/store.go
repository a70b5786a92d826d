// Package sqlstore implements the ledger store on a relational database
// through GORM. Postgres in production, SQLite in tests.
package sqlstore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/fadhlyaj09/Najwa-Pennywise/internal/ledger"
	"github.com/fadhlyaj09/Najwa-Pennywise/internal/models"
)

// Store is a GORM-backed ledger store.
type Store struct {
	db *gorm.DB
}

var _ ledger.Store = (*Store)(nil)

// New creates a Store on top of an open GORM connection.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// FindUserByEmail looks a user up by exact email.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledger.ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

// CreateUser inserts a new user row.
func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// ListTransactions returns all of a user's transactions, newest first.
func (s *Store) ListTransactions(ctx context.Context, userID string) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txs, nil
}

// AppendTransaction inserts a transaction for the user.
func (s *Store) AppendTransaction(ctx context.Context, userID string, tx *models.Transaction) error {
	tx.UserID = userID
	if err := s.db.WithContext(ctx).Create(tx).Error; err != nil {
		return fmt.Errorf("append transaction: %w", err)
	}
	return nil
}

// DeleteTransaction removes a transaction by ID.
func (s *Store) DeleteTransaction(ctx context.Context, transactionID string) error {
	res := s.db.WithContext(ctx).Delete(&models.Transaction{}, "id = ?", transactionID)
	if res.Error != nil {
		return fmt.Errorf("delete transaction: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ledger.ErrNotFound
	}
	return nil
}

// ListDebts returns all of a user's debts, newest first.
func (s *Store) ListDebts(ctx context.Context, userID string) ([]models.Debt, error) {
	var debts []models.Debt
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&debts).Error
	if err != nil {
		return nil, fmt.Errorf("list debts: %w", err)
	}
	return debts, nil
}

// AppendDebt inserts a debt for the user.
func (s *Store) AppendDebt(ctx context.Context, userID string, debt *models.Debt) error {
	debt.UserID = userID
	if err := s.db.WithContext(ctx).Create(debt).Error; err != nil {
		return fmt.Errorf("append debt: %w", err)
	}
	return nil
}

// UpdateDebt saves the full debt row, including cleared fields such as a
// removed repayment transaction ID.
func (s *Store) UpdateDebt(ctx context.Context, userID string, debt *models.Debt) error {
	debt.UserID = userID
	res := s.db.WithContext(ctx).
		Model(&models.Debt{}).
		Where("id = ? AND user_id = ?", debt.ID, userID).
		Select("DebtorName", "Amount", "Description", "DueDate", "Status", "LendingTransactionID", "RepaymentTransactionID").
		Updates(debt)
	if res.Error != nil {
		return fmt.Errorf("update debt: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ledger.ErrNotFound
	}
	return nil
}

// DeleteDebt removes a debt by ID.
func (s *Store) DeleteDebt(ctx context.Context, debtID string) error {
	res := s.db.WithContext(ctx).Delete(&models.Debt{}, "id = ?", debtID)
	if res.Error != nil {
		return fmt.Errorf("delete debt: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ledger.ErrNotFound
	}
	return nil
}

// ListCategories returns all of a user's categories, fixed ones first.
func (s *Store) ListCategories(ctx context.Context, userID string) ([]models.Category, error) {
	var categories []models.Category
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_fixed DESC, name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// AppendCategory inserts a category for the user.
func (s *Store) AppendCategory(ctx context.Context, userID string, category *models.Category) error {
	category.UserID = userID
	if err := s.db.WithContext(ctx).Create(category).Error; err != nil {
		return fmt.Errorf("append category: %w", err)
	}
	return nil
}

// DeleteCategory removes a category by ID.
func (s *Store) DeleteCategory(ctx context.Context, categoryID string) error {
	res := s.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", categoryID)
	if res.Error != nil {
		return fmt.Errorf("delete category: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ledger.ErrNotFound
	}
	return nil
}

// GetSpendingLimit returns the user's spending limit, or ErrNotFound when
// the user has never set one.
func (s *Store) GetSpendingLimit(ctx context.Context, userID string) (int64, error) {
	var setting models.Setting
	if err := s.db.WithContext(ctx).First(&setting, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ledger.ErrNotFound
		}
		return 0, fmt.Errorf("get spending limit: %w", err)
	}
	return setting.SpendingLimit, nil
}

// SetSpendingLimit creates or updates the user's spending limit row.
func (s *Store) SetSpendingLimit(ctx context.Context, userID string, limit int64) error {
	setting := models.Setting{UserID: userID, SpendingLimit: limit}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Assign(map[string]interface{}{"spending_limit": limit}).
		FirstOrCreate(&setting).Error
	if err != nil {
		return fmt.Errorf("set spending limit: %w", err)
	}
	return nil
}
