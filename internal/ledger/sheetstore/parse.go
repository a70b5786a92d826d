package sheetstore

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fadhlyaj09/Najwa-Pennywise/internal/models"
)

// dateLayout is how dates are written in the spreadsheet.
const dateLayout = "2006-01-02"

// Column layouts. Column A is always the owning user's ID, column B the
// record's own ID, matching the spreadsheet the data was migrated from.
//
//	Users:        A=email    B=password C=id     D=name
//	Transactions: A=user_id  B=id  C=kind       D=category E=amount F=date
//	Categories:   A=user_id  B=id  C=name       D=icon     E=kind   F=is_fixed
//	Debts:        A=user_id  B=id  C=debtor     D=amount   E=description
//	              F=due_date G=status H=lending_tx_id I=repayment_tx_id
//	Settings:     A=user_id  B=spending_limit

func cellString(row []interface{}, i int) string {
	if i >= len(row) || row[i] == nil {
		return ""
	}
	switch v := row[i].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func cellAmount(row []interface{}, i int) (int64, error) {
	raw := strings.TrimSpace(cellString(row, i))
	if raw == "" {
		return 0, nil
	}
	// Amounts may come back as floats when the cell is formatted as a number.
	f, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", raw, err)
	}
	return int64(f), nil
}

func cellDate(row []interface{}, i int) (time.Time, error) {
	raw := strings.TrimSpace(cellString(row, i))
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", raw, err)
	}
	return t, nil
}

func cellBool(row []interface{}, i int) bool {
	return strings.EqualFold(strings.TrimSpace(cellString(row, i)), "TRUE")
}

func parseUserRow(row []interface{}) *models.User {
	u := &models.User{
		Email:    cellString(row, 0),
		Password: cellString(row, 1),
		Name:     cellString(row, 3),
	}
	u.ID = cellString(row, 2)
	return u
}

func userRowValues(user *models.User) []interface{} {
	return []interface{}{user.Email, user.Password, user.ID, user.Name}
}

func parseTransactionRow(row []interface{}) (models.Transaction, error) {
	amount, err := cellAmount(row, 4)
	if err != nil {
		return models.Transaction{}, err
	}
	date, err := cellDate(row, 5)
	if err != nil {
		return models.Transaction{}, err
	}
	tx := models.Transaction{
		UserID:   cellString(row, 0),
		Kind:     models.TransactionKind(cellString(row, 2)),
		Category: cellString(row, 3),
		Amount:   amount,
		Date:     date,
	}
	tx.ID = cellString(row, 1)
	return tx, nil
}

func transactionRowValues(userID string, tx *models.Transaction) []interface{} {
	return []interface{}{userID, tx.ID, string(tx.Kind), tx.Category, tx.Amount, tx.Date.Format(dateLayout)}
}

func parseCategoryRow(row []interface{}) models.Category {
	c := models.Category{
		UserID:  cellString(row, 0),
		Name:    cellString(row, 2),
		Icon:    cellString(row, 3),
		Kind:    models.CategoryKind(cellString(row, 4)),
		IsFixed: cellBool(row, 5),
	}
	c.ID = cellString(row, 1)
	return c
}

func categoryRowValues(userID string, c *models.Category) []interface{} {
	return []interface{}{userID, c.ID, c.Name, c.Icon, string(c.Kind), strings.ToUpper(strconv.FormatBool(c.IsFixed))}
}

func parseDebtRow(row []interface{}) (models.Debt, error) {
	amount, err := cellAmount(row, 3)
	if err != nil {
		return models.Debt{}, err
	}
	dueDate, err := cellDate(row, 5)
	if err != nil {
		return models.Debt{}, err
	}
	d := models.Debt{
		UserID:               cellString(row, 0),
		DebtorName:           cellString(row, 2),
		Amount:               amount,
		Description:          cellString(row, 4),
		DueDate:              dueDate,
		Status:               models.DebtStatus(cellString(row, 6)),
		LendingTransactionID: cellString(row, 7),
	}
	d.ID = cellString(row, 1)
	if repayment := cellString(row, 8); repayment != "" {
		d.RepaymentTransactionID = &repayment
	}
	return d, nil
}

func debtRowValues(userID string, d *models.Debt) []interface{} {
	repayment := ""
	if d.RepaymentTransactionID != nil {
		repayment = *d.RepaymentTransactionID
	}
	return []interface{}{
		userID, d.ID, d.DebtorName, d.Amount, d.Description,
		d.DueDate.Format(dateLayout), string(d.Status), d.LendingTransactionID, repayment,
	}
}
