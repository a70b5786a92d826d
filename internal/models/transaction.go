package models

import "time"

// TransactionKind represents the direction of a transaction
type TransactionKind string

const (
	TransactionKindIncome  TransactionKind = "income"
	TransactionKindExpense TransactionKind = "expense"
)

// Categories owned by the debt engine. A "Lending" expense is written when a
// debt is recorded and a "Debt Repayment" income when it is settled.
const (
	CategoryLending       = "Lending"
	CategoryDebtRepayment = "Debt Repayment"
)

// Transaction represents a single income or expense entry in a user's ledger.
// Transactions reference their category by (name, kind), not by ID; the
// category resolver guarantees the pair exists before a transaction is added.
type Transaction struct {
	Base
	UserID   string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Kind     TransactionKind `gorm:"not null" json:"kind"`
	Category string          `gorm:"not null" json:"category"`
	Amount   int64           `gorm:"type:bigint;not null" json:"amount"`
	Date     time.Time       `gorm:"not null" json:"date"`
}
