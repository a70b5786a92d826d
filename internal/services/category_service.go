package services

import (
	"context"
	"strings"

	apperrors "github.com/fadhlyaj09/Najwa-Pennywise/internal/errors"
	"github.com/fadhlyaj09/Najwa-Pennywise/internal/ledger"
	"github.com/fadhlyaj09/Najwa-Pennywise/internal/models"
	"github.com/fadhlyaj09/Najwa-Pennywise/internal/uuid"
)

// fixedCategoryDefs is the built-in category set seeded for every user.
// "Lending" and "Debt Repayment" belong to the debt engine, which writes
// transactions under those names.
var fixedCategoryDefs = []models.Category{
	{Name: "Salary", Icon: "Landmark", Kind: models.CategoryKindIncome, IsFixed: true},
	{Name: models.CategoryDebtRepayment, Icon: "Banknote", Kind: models.CategoryKindIncome, IsFixed: true},
	{Name: models.CategoryLending, Icon: "HandCoins", Kind: models.CategoryKindExpense, IsFixed: true},
	{Name: "Breakfast", Icon: "Coffee", Kind: models.CategoryKindExpense, IsFixed: true},
	{Name: "Lunch", Icon: "Utensils", Kind: models.CategoryKindExpense, IsFixed: true},
	{Name: "Dinner", Icon: "UtensilsCrossed", Kind: models.CategoryKindExpense, IsFixed: true},
	{Name: "Snacking", Icon: "Cookie", Kind: models.CategoryKindExpense, IsFixed: true},
	{Name: "Hangout", Icon: "Users", Kind: models.CategoryKindExpense, IsFixed: true},
	{Name: "Monthly Shopping", Icon: "ShoppingBag", Kind: models.CategoryKindExpense, IsFixed: true},
}

// categoryService handles category resolution and the deletion constraints.
type categoryService struct {
	store ledger.Store
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(store ledger.Store) CategoryServicer {
	return &categoryService{store: store}
}

// findByNameKind scans the user's categories for a case-insensitive
// (name, kind) match.
func (s *categoryService) findByNameKind(ctx context.Context, userID, name string, kind models.CategoryKind) (*models.Category, error) {
	categories, err := s.store.ListCategories(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	for i := range categories {
		if categories[i].Kind == kind && strings.EqualFold(categories[i].Name, name) {
			return &categories[i], nil
		}
	}
	return nil, nil
}

// EnsureCategory returns the (name, kind) category, creating a non-fixed one
// when it does not exist yet.
func (s *categoryService) EnsureCategory(ctx context.Context, userID, name string, kind models.CategoryKind) (*models.Category, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}

	existing, err := s.findByNameKind(ctx, userID, name, kind)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	category := &models.Category{
		Name:    name,
		Kind:    kind,
		Icon:    "Tag",
		IsFixed: false,
	}
	category.ID = uuid.New()

	if err := s.store.AppendCategory(ctx, userID, category); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return category, nil
}

// AddCategory creates a new category, rejecting duplicates.
func (s *categoryService) AddCategory(ctx context.Context, userID, name string, kind models.CategoryKind) (*models.Category, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}

	existing, err := s.findByNameKind(ctx, userID, name, kind)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrCategoryExists
	}

	category := &models.Category{
		Name:    name,
		Kind:    kind,
		Icon:    "Tag",
		IsFixed: false,
	}
	category.ID = uuid.New()

	if err := s.store.AppendCategory(ctx, userID, category); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return category, nil
}

// DeleteCategory removes a category unless it is fixed or still referenced
// by a transaction.
func (s *categoryService) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	categories, err := s.store.ListCategories(ctx, userID)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}

	var category *models.Category
	for i := range categories {
		if categories[i].ID == categoryID {
			category = &categories[i]
			break
		}
	}
	if category == nil {
		return apperrors.ErrCategoryNotFound
	}
	if category.IsFixed {
		return apperrors.ErrCategoryFixed
	}

	transactions, err := s.store.ListTransactions(ctx, userID)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	for i := range transactions {
		if string(transactions[i].Kind) == string(category.Kind) &&
			strings.EqualFold(transactions[i].Category, category.Name) {
			return apperrors.ErrCategoryInUse
		}
	}

	if err := s.store.DeleteCategory(ctx, categoryID); err != nil {
		return apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return nil
}

// ListCategories returns the user's categories, optionally filtered by kind.
func (s *categoryService) ListCategories(ctx context.Context, userID string, kind *models.CategoryKind) ([]models.Category, error) {
	categories, err := s.store.ListCategories(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	if kind == nil {
		return categories, nil
	}

	filtered := make([]models.Category, 0, len(categories))
	for i := range categories {
		if categories[i].Kind == *kind {
			filtered = append(filtered, categories[i])
		}
	}
	return filtered, nil
}

// SeedFixedCategories appends the fixed definitions the user is missing,
// matched by (name, kind). Categories the user already has, fixed or not,
// are left untouched, so repeated calls never duplicate.
func (s *categoryService) SeedFixedCategories(ctx context.Context, userID string) error {
	categories, err := s.store.ListCategories(ctx, userID)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}

	for _, def := range fixedCategoryDefs {
		exists := false
		for i := range categories {
			if categories[i].Kind == def.Kind && strings.EqualFold(categories[i].Name, def.Name) {
				exists = true
				break
			}
		}
		if exists {
			continue
		}

		category := def
		category.ID = uuid.New()
		if err := s.store.AppendCategory(ctx, userID, &category); err != nil {
			return apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
		}
	}
	return nil
}
