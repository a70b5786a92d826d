package models

// CategoryKind represents the kind of category
type CategoryKind string

const (
	CategoryKindIncome  CategoryKind = "income"
	CategoryKindExpense CategoryKind = "expense"
)

// Category represents a transaction category. No two categories of one user
// may share the same (lowercased name, kind) pair. Fixed categories are the
// built-in set seeded on first load and can never be deleted.
type Category struct {
	Base
	UserID  string       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name    string       `gorm:"not null" json:"name"`
	Kind    CategoryKind `gorm:"not null" json:"kind"`
	Icon    string       `json:"icon"`
	IsFixed bool         `gorm:"not null;default:false" json:"is_fixed"`
}
