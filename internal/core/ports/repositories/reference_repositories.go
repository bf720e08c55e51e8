package repositories

import (
	"context"

	"github.com/SscSPs/caixa_ledger/internal/core/domain"
)

// ExpenseCategoryRepository defines persistence for expense categories
type ExpenseCategoryRepository interface {
	// UpsertExpenseCategories writes every category in one atomic batch.
	UpsertExpenseCategories(ctx context.Context, categories []domain.ExpenseCategory) error

	// FindExpenseCategoryByID returns apperrors.ErrNotFound when absent.
	FindExpenseCategoryByID(ctx context.Context, id string) (*domain.ExpenseCategory, error)

	// ListExpenseCategories retrieves all categories ordered by name.
	ListExpenseCategories(ctx context.Context) ([]domain.ExpenseCategory, error)

	// DeleteExpenseCategoryIfUnused removes a category unless any movement, soft-deleted
	// or not, references it. Check and delete are atomic with respect to movement writes.
	// It returns the number of referencing movements (nothing is removed when positive)
	// and apperrors.ErrNotFound when the category does not exist.
	DeleteExpenseCategoryIfUnused(ctx context.Context, id string) (int, error)
}

// PaymentMethodRepository defines persistence for payment methods
type PaymentMethodRepository interface {
	// UpsertPaymentMethods writes every method in one atomic batch.
	UpsertPaymentMethods(ctx context.Context, methods []domain.PaymentMethod) error

	// FindPaymentMethodByID returns apperrors.ErrNotFound when absent.
	FindPaymentMethodByID(ctx context.Context, id string) (*domain.PaymentMethod, error)

	// ListPaymentMethods retrieves all methods ordered by name.
	ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error)

	// DeletePaymentMethodIfUnused is DeleteExpenseCategoryIfUnused for payment methods,
	// matched against the movement payment form.
	DeletePaymentMethodIfUnused(ctx context.Context, id string) (int, error)
}

// MovementReferenceChecker is the reverse scan used to block deletion of referenced entities.
// Soft-deleted movements still count as references.
type MovementReferenceChecker interface {
	// CountMovementsByCategory counts movements whose category is categoryID.
	CountMovementsByCategory(ctx context.Context, categoryID string) (int, error)

	// CountMovementsByPaymentForm counts movements whose payment form is form.
	CountMovementsByPaymentForm(ctx context.Context, form string) (int, error)
}

// ReferenceRepositoryFacade combines all reference-data repository interfaces
type ReferenceRepositoryFacade interface {
	ExpenseCategoryRepository
	PaymentMethodRepository
	MovementReferenceChecker
}
