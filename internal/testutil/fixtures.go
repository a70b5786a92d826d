package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/fadhlyaj09/Najwa-Pennywise/internal/models"
	"github.com/fadhlyaj09/Najwa-Pennywise/internal/uuid"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		Name:     "Test User",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestCategory creates a non-fixed category for the user.
func CreateTestCategory(t *testing.T, db *gorm.DB, userID string, name string, kind models.CategoryKind) *models.Category {
	t.Helper()

	category := &models.Category{
		UserID: userID,
		Name:   name,
		Kind:   kind,
		Icon:   "Tag",
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestTransaction creates a transaction dated today.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID string, kind models.TransactionKind, category string, amount int64) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:   userID,
		Kind:     kind,
		Category: category,
		Amount:   amount,
		Date:     time.Now().UTC().Truncate(24 * time.Hour),
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestDebt creates an unpaid debt paired with its lending transaction.
func CreateTestDebt(t *testing.T, db *gorm.DB, userID string, debtorName string, amount int64) *models.Debt {
	t.Helper()

	lending := CreateTestTransaction(t, db, userID, models.TransactionKindExpense, models.CategoryLending, amount)

	debt := &models.Debt{
		Base:                 models.Base{ID: uuid.New()},
		UserID:               userID,
		DebtorName:           debtorName,
		Amount:               amount,
		Description:          fmt.Sprintf("Test debt %d", nextID()),
		DueDate:              time.Now().UTC().AddDate(0, 1, 0),
		Status:               models.DebtStatusUnpaid,
		LendingTransactionID: lending.ID,
	}
	if err := db.Create(debt).Error; err != nil {
		t.Fatalf("failed to create test debt: %v", err)
	}
	return debt
}
