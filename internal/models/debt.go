package models

import "time"

// DebtStatus represents the repayment state of a debt
type DebtStatus string

const (
	DebtStatusUnpaid DebtStatus = "unpaid"
	DebtStatusPaid   DebtStatus = "paid"
)

// Debt records money lent to someone. Every debt owns a "Lending" expense
// transaction created with it; a settled debt additionally owns the
// "Debt Repayment" income transaction created at settlement. An unpaid debt
// never carries a repayment transaction ID.
type Debt struct {
	Base
	UserID      string     `gorm:"type:uuid;not null;index" json:"user_id"`
	DebtorName  string     `gorm:"not null" json:"debtor_name"`
	Amount      int64      `gorm:"type:bigint;not null" json:"amount"`
	Description string     `json:"description"`
	DueDate     time.Time  `json:"due_date"`
	Status      DebtStatus `gorm:"not null;default:unpaid" json:"status"`

	LendingTransactionID   string  `gorm:"type:uuid;not null" json:"lending_transaction_id"`
	RepaymentTransactionID *string `gorm:"type:uuid" json:"repayment_transaction_id,omitempty"`
}

// IsPaid reports whether the debt has been settled.
func (d *Debt) IsPaid() bool { return d.Status == DebtStatusPaid }
