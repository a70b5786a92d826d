package sheetstore

import (
	"context"
	"strconv"
	"strings"

	"github.com/fadhlyaj09/Najwa-Pennywise/internal/ledger"
	"github.com/fadhlyaj09/Najwa-Pennywise/internal/models"
)

// FindUserByEmail scans the Users sheet for a case-insensitive email match.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	rows, err := s.getValues(ctx, usersSheet+"!A:D")
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(rows); i++ {
		if strings.EqualFold(cellString(rows[i], 0), email) {
			return parseUserRow(rows[i]), nil
		}
	}
	return nil, ledger.ErrNotFound
}

// CreateUser appends a user row.
func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	return s.appendRow(ctx, usersSheet, userRowValues(user))
}

// ListTransactions returns the user's transactions in sheet order.
func (s *Store) ListTransactions(ctx context.Context, userID string) ([]models.Transaction, error) {
	rows, err := s.getValues(ctx, transactionsSheet+"!A:F")
	if err != nil {
		return nil, err
	}
	var txs []models.Transaction
	for i := 1; i < len(rows); i++ {
		if cellString(rows[i], 0) != userID {
			continue
		}
		tx, err := parseTransactionRow(rows[i])
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// AppendTransaction appends a transaction row.
func (s *Store) AppendTransaction(ctx context.Context, userID string, tx *models.Transaction) error {
	tx.UserID = userID
	return s.appendRow(ctx, transactionsSheet, transactionRowValues(userID, tx))
}

// DeleteTransaction removes the row holding the transaction.
func (s *Store) DeleteTransaction(ctx context.Context, transactionID string) error {
	rowIndex, _, err := s.findRowByValue(ctx, transactionsSheet, 1, transactionID)
	if err != nil {
		return err
	}
	if rowIndex == 0 {
		return ledger.ErrNotFound
	}
	return s.deleteRow(ctx, transactionsSheet, rowIndex)
}

// ListDebts returns the user's debts in sheet order.
func (s *Store) ListDebts(ctx context.Context, userID string) ([]models.Debt, error) {
	rows, err := s.getValues(ctx, debtsSheet+"!A:I")
	if err != nil {
		return nil, err
	}
	var debts []models.Debt
	for i := 1; i < len(rows); i++ {
		if cellString(rows[i], 0) != userID {
			continue
		}
		debt, err := parseDebtRow(rows[i])
		if err != nil {
			return nil, err
		}
		debts = append(debts, debt)
	}
	return debts, nil
}

// AppendDebt appends a debt row.
func (s *Store) AppendDebt(ctx context.Context, userID string, debt *models.Debt) error {
	debt.UserID = userID
	return s.appendRow(ctx, debtsSheet, debtRowValues(userID, debt))
}

// UpdateDebt overwrites the row holding the debt.
func (s *Store) UpdateDebt(ctx context.Context, userID string, debt *models.Debt) error {
	rowIndex, _, err := s.findRowByValue(ctx, debtsSheet, 1, debt.ID)
	if err != nil {
		return err
	}
	if rowIndex == 0 {
		return ledger.ErrNotFound
	}
	debt.UserID = userID
	return s.updateRow(ctx, debtsSheet, rowIndex, debtRowValues(userID, debt))
}

// DeleteDebt removes the row holding the debt.
func (s *Store) DeleteDebt(ctx context.Context, debtID string) error {
	rowIndex, _, err := s.findRowByValue(ctx, debtsSheet, 1, debtID)
	if err != nil {
		return err
	}
	if rowIndex == 0 {
		return ledger.ErrNotFound
	}
	return s.deleteRow(ctx, debtsSheet, rowIndex)
}

// ListCategories returns the user's categories in sheet order.
func (s *Store) ListCategories(ctx context.Context, userID string) ([]models.Category, error) {
	rows, err := s.getValues(ctx, categoriesSheet+"!A:F")
	if err != nil {
		return nil, err
	}
	var categories []models.Category
	for i := 1; i < len(rows); i++ {
		if cellString(rows[i], 0) != userID {
			continue
		}
		categories = append(categories, parseCategoryRow(rows[i]))
	}
	return categories, nil
}

// AppendCategory appends a category row.
func (s *Store) AppendCategory(ctx context.Context, userID string, category *models.Category) error {
	category.UserID = userID
	return s.appendRow(ctx, categoriesSheet, categoryRowValues(userID, category))
}

// DeleteCategory removes the row holding the category.
func (s *Store) DeleteCategory(ctx context.Context, categoryID string) error {
	rowIndex, _, err := s.findRowByValue(ctx, categoriesSheet, 1, categoryID)
	if err != nil {
		return err
	}
	if rowIndex == 0 {
		return ledger.ErrNotFound
	}
	return s.deleteRow(ctx, categoriesSheet, rowIndex)
}

// GetSpendingLimit reads the user's Settings row.
func (s *Store) GetSpendingLimit(ctx context.Context, userID string) (int64, error) {
	rowIndex, rows, err := s.findRowByValue(ctx, settingsSheet, 0, userID)
	if err != nil {
		return 0, err
	}
	if rowIndex == 0 {
		return 0, ledger.ErrNotFound
	}
	return cellAmount(rows[rowIndex-1], 1)
}

// SetSpendingLimit updates the user's Settings row, appending one when the
// user has never set a limit.
func (s *Store) SetSpendingLimit(ctx context.Context, userID string, limit int64) error {
	rowIndex, _, err := s.findRowByValue(ctx, settingsSheet, 0, userID)
	if err != nil {
		return err
	}
	row := []interface{}{userID, strconv.FormatInt(limit, 10)}
	if rowIndex == 0 {
		return s.appendRow(ctx, settingsSheet, row)
	}
	return s.updateRow(ctx, settingsSheet, rowIndex, row)
}
